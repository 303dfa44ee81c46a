package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/quizreview-backend/internal/adapter/postgres"
)

func newMigrateCmd(load configLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	withMigrator := func(cmd *cobra.Command, fn func(m *postgres.Migrator) error) error {
		cfg, err := load()
		if err != nil {
			return err
		}
		m, err := postgres.NewMigrator(commandContext(cmd), cfg.Database.DSN)
		if err != nil {
			return err
		}
		defer m.Close()
		return fn(m)
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd, func(m *postgres.Migrator) error {
				applied, err := m.Up(commandContext(cmd))
				if err != nil {
					return err
				}
				printVersions(cmd, "applied", applied)
				return nil
			})
		},
	}

	down := &cobra.Command{
		Use:   "down <version>",
		Short: "Roll back migrations newer than version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || version < 0 {
				return fmt.Errorf("invalid version %q", args[0])
			}
			return withMigrator(cmd, func(m *postgres.Migrator) error {
				rolled, err := m.DownTo(commandContext(cmd), version)
				if err != nil {
					return err
				}
				printVersions(cmd, "rolled back", rolled)
				return nil
			})
		},
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd, func(m *postgres.Migrator) error {
				states, err := m.Status(commandContext(cmd))
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "VERSION\tSTATE\tSOURCE")
				for _, s := range states {
					state := "pending"
					if s.Applied {
						state = "applied"
					}
					fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Version, state, s.Source)
				}
				return tw.Flush()
			})
		},
	}

	cmd.AddCommand(up, down, status)
	return cmd
}

func printVersions(cmd *cobra.Command, verb string, versions []int64) {
	if len(versions) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "nothing to do")
		return
	}
	for _, v := range versions {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", verb, v)
	}
}
