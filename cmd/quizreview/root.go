package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/quizreview-backend/internal/app"
	"github.com/heartmarshall/quizreview-backend/internal/config"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "quizreview",
		Short:         "Quiz content verification and audit service",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config (env vars override it)")

	load := func() (*config.Config, error) {
		if configPath != "" {
			return config.LoadFrom(configPath)
		}
		return config.Load()
	}

	root.AddCommand(
		newServeCmd(load),
		newMigrateCmd(load),
		newGrantReviewerCmd(load),
		newRevokeReviewerCmd(load),
		newListReviewersCmd(load),
		newIssueTokenCmd(load),
	)
	return root
}

type configLoader func() (*config.Config, error)
