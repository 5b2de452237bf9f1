package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/Kalmar41k/goit-algo-hw-05/internal/analyzer"
	"github.com/Kalmar41k/goit-algo-hw-05/internal/loader"
	"github.com/Kalmar41k/goit-algo-hw-05/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var logsCmd = &cobra.Command{
	Use:   "logs <file_path> [level]",
	Short: "Count log entries by severity level",
	Long: `Read a whitespace-delimited log file, print a per-level count table,
and optionally list every entry at the given level.

Each log line is expected as: <date> <time> <LEVEL> <message words...>

Examples:
  hw05 logs /var/log/app.log
  hw05 logs app.log error
  hw05 logs app.log --output json`,
	Args: cobra.MaximumNArgs(2),
	RunE: runLogs,
}

func init() {
	rootCmd.AddCommand(logsCmd)
}

func runLogs(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	// Missing file path is a usage hint, not a failure; every path here
	// exits zero.
	if len(args) < 1 {
		fmt.Fprintf(out, "Usage: %s <file_path> [level]\n", cmd.CommandPath())
		return nil
	}

	filePath := args[0]
	level := ""
	if len(args) == 2 {
		level = args[1]
	}

	records := loader.NewWithWriter(out).Load(filePath)
	if len(records) == 0 {
		fmt.Fprintln(out, "No logs to display.")
		return nil
	}

	renderer := selectRenderer(out)

	if err := renderer.RenderCounts(analyzer.CountByLevel(records)); err != nil {
		return fmt.Errorf("failed to render counts: %w", err)
	}

	if level != "" {
		filtered := analyzer.FilterByLevel(records, level)
		if err := renderer.RenderDetails(level, filtered); err != nil {
			return fmt.Errorf("failed to render details: %w", err)
		}
	}

	return nil
}

// selectRenderer picks the output format: flag first, then config/env,
// defaulting to colorized text.
func selectRenderer(w io.Writer) output.Renderer {
	format := outputFmt
	if format == "" {
		format = viper.GetString("output")
	}

	switch strings.ToLower(format) {
	case "json":
		return output.NewJSONRendererWithWriter(w)
	default:
		return output.NewTextRendererWithWriter(w)
	}
}
