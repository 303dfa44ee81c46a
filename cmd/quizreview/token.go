package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/quizreview-backend/internal/auth"
	"github.com/heartmarshall/quizreview-backend/internal/domain"
)

func newIssueTokenCmd(load configLoader) *cobra.Command {
	var (
		role string
		ttl  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "issue-token <actor-id>",
		Short: "Print a signed bearer token for an actor",
		Long: `Print a signed bearer token for an actor.

The token only proves identity. Write endpoints still require the actor
to hold the reviewer capability (see grant-reviewer).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if ttl <= 0 {
				return fmt.Errorf("ttl must be positive")
			}
			cfg, err := load()
			if err != nil {
				return err
			}
			token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer).
				GenerateAccessToken(args[0], role, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&role, "role", string(domain.RoleReviewer), "role claim embedded in the token")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	return cmd
}
