package main

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/quizreview-backend/internal/adapter/postgres"
	"github.com/heartmarshall/quizreview-backend/internal/adapter/postgres/reviewer"
	"github.com/heartmarshall/quizreview-backend/internal/domain"
)

func withReviewers(cmd *cobra.Command, load configLoader, fn func(repo *reviewer.Repo) error) error {
	cfg, err := load()
	if err != nil {
		return err
	}
	pool, err := postgres.NewPool(commandContext(cmd), cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()
	return fn(reviewer.New(pool))
}

// newGrantReviewerCmd also bootstraps the first admin: --role=admin.
func newGrantReviewerCmd(load configLoader) *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "grant-reviewer <actor-id>",
		Short: "Give an actor the reviewer capability",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := domain.ReviewerRole(role)
			if !r.IsValid() {
				return fmt.Errorf("invalid role %q: must be reviewer or admin", role)
			}
			return withReviewers(cmd, load, func(repo *reviewer.Repo) error {
				granted, err := repo.Grant(commandContext(cmd), args[0], r)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Actor %q is now %s.\n", granted.ActorID, granted.Role)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&role, "role", string(domain.RoleReviewer), "reviewer or admin")
	return cmd
}

func newRevokeReviewerCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "revoke-reviewer <actor-id>",
		Short: "Remove an actor's reviewer capability",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withReviewers(cmd, load, func(repo *reviewer.Repo) error {
				err := repo.Revoke(commandContext(cmd), args[0])
				if errors.Is(err, domain.ErrNotFound) {
					return fmt.Errorf("actor %q is not a reviewer", args[0])
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Actor %q revoked.\n", args[0])
				return nil
			})
		},
	}
}

func newListReviewersCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "list-reviewers",
		Short: "List actors with the reviewer capability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withReviewers(cmd, load, func(repo *reviewer.Repo) error {
				list, err := repo.List(commandContext(cmd))
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ACTOR\tROLE\tSINCE")
				for _, rv := range list {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", rv.ActorID, rv.Role, rv.CreatedAt.Format(time.RFC3339))
				}
				return tw.Flush()
			})
		},
	}
}
