package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nilovelez/wptv-sessions-list/core"
	"github.com/nilovelez/wptv-sessions-list/core/export"
	"github.com/nilovelez/wptv-sessions-list/core/output"
)

var (
	flagFormat    string
	flagMode      string
	flagOutputDir string
)

var exportCmd = &cobra.Command{
	Use:   "export <url>",
	Short: "Render the session list of a WordCamp site for one team",
	Long: `Export fetches the speakers, tracks and sessions of a WordCamp site and
renders them for the photos, social or wptv team. The output goes to stdout
unless --output_dir is given.

Output modes:
  photos  google_sheets (default), table
  social  ChatGPT (default), table
  wptv    google_sheets (default), table

Examples:
  sessionlist export https://zaragoza.wordcamp.org/2025/ --format wptv
  sessionlist export zaragoza.wordcamp.org/2025 --format social --output table
  sessionlist export https://events.wordpress.org/lleida/2025/disseny/ --format photos --output_dir ./out`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&flagFormat, "format", "", "Export: photos, social or wptv")
	exportCmd.Flags().StringVar(&flagMode, "output", "", "Output mode (default: the export's default)")
	exportCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Write to a file in this directory instead of stdout")
	_ = exportCmd.MarkFlagRequired("format")
}

func runExport(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	res, err := svc.Export(cmd.Context(), export.Request{
		SiteURL: args[0],
		Format:  flagFormat,
		Mode:    core.OutputMode(flagMode),
	})
	if err != nil {
		return &userError{err: err}
	}

	if flagOutputDir == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), res.Output)
		return err
	}

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}
	path, err := writer.Write(res.BaseURL, res.Format, res.Mode, []byte(res.Output))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s (%d sessions)\n", path, res.Sessions)
	return nil
}
