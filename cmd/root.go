// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/naka-gawa/standup-digest/internal/config"
	"github.com/naka-gawa/standup-digest/internal/gateway"
	"github.com/naka-gawa/standup-digest/internal/logger"
	"github.com/naka-gawa/standup-digest/internal/usecase"
)

var rootCmd = &cobra.Command{
	Use:   "standup-digest",
	Short: "Posts a digest of recent GitHub activity to Slack.",
	Long: `standup-digest summarizes what a GitHub user did since the last standup
(opened pull requests, review comments, issue discussion, wiki edits) and posts
the summary to a Slack channel. It looks back one day, or three on Mondays.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if err := cfg.ValidateForPost(); err != nil {
			return err
		}
		log := newLogger(cmd, cfg)

		githubGateway, err := gateway.NewGitHubGateway(cfg.GitHubToken, log)
		if err != nil {
			return fmt.Errorf("failed to create GitHub gateway: %w", err)
		}
		slackGateway := gateway.NewSlackGateway(cfg.SlackToken, log)

		standup := usecase.NewStandup(githubGateway, slackGateway, log)
		return standup.Run(cmd.Context(), cfg.User, cfg.Org, cfg.Channel)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
}

// newLogger builds the logger from the config; --verbose forces debug level.
func newLogger(cmd *cobra.Command, cfg *config.Config) zerolog.Logger {
	level := cfg.LogLevel
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "debug"
	}
	return logger.New(logger.Options{Level: level, Format: cfg.LogFormat})
}
