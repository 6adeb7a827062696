package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nilovelez/wptv-sessions-list/core/render"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions <url>",
	Short: "Print the normalized sessions of a WordCamp site as JSON",
	Long: `Sessions prints the joined, timestamp-ordered session list that every
export starts from. Useful to check what a site publishes.

Example:
  sessionlist sessions https://zaragoza.wordcamp.org/2025/ --timezone Europe/Madrid`,
	Args: cobra.ExactArgs(1),
	RunE: runSessions,
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
}

func runSessions(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	baseURL, sessions, err := svc.Sessions(cmd.Context(), args[0])
	if err != nil {
		return &userError{err: err}
	}

	data, err := render.SessionsJSON(baseURL, sessions, time.Now())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
