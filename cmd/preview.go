package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	naturaldate "github.com/tj/go-naturaldate"

	"github.com/naka-gawa/standup-digest/internal/config"
	"github.com/naka-gawa/standup-digest/internal/gateway"
	"github.com/naka-gawa/standup-digest/internal/usecase"
)

const dateFormat = "2006-01-02"

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Prints the digest to standard output instead of posting it",
	Long: `Builds the same digest as the root command and prints it as plain text.
Nothing is posted to Slack, so SLACK_TOKEN is not required.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		log := newLogger(cmd, cfg)

		githubGateway, err := gateway.NewGitHubGateway(cfg.GitHubToken, log)
		if err != nil {
			return fmt.Errorf("failed to create GitHub gateway: %w", err)
		}
		standup := usecase.NewStandup(githubGateway, nil, log)

		since := standup.Window()
		if sinceStr, _ := cmd.Flags().GetString("since"); sinceStr != "" {
			if since, err = parseSince(sinceStr, time.Now()); err != nil {
				return err
			}
		}

		digest, err := standup.Digest(cmd.Context(), cfg.User, cfg.Org, since, usecase.PlainStyle)
		if err != nil {
			return err
		}
		if digest.IsEmpty() {
			fmt.Fprintln(cmd.OutOrStdout(), "No activity found for this period.")
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), digest.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().String("since", "", `start of the window, e.g. "2026-01-28", "yesterday", "last friday" (default: the standup window)`)
}

// parseSince tries YYYY-MM-DD first, then falls back to natural language
// relative to ref. The result is the start of the resolved day.
func parseSince(s string, ref time.Time) (time.Time, error) {
	t, err := time.ParseInLocation(dateFormat, s, ref.Location())
	if err != nil {
		t, err = naturaldate.Parse(s, ref)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --since value %q: %w", s, err)
		}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()), nil
}
