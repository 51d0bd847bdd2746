// Package cli wires the benchmatch pipeline to its command-line surface.
// Flags cover only I/O-level knobs; the pipeline's semantics are fixed by its
// package defaults.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/leofalp/benchmatch/internal/pipeline"
	"github.com/spf13/cobra"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "benchmatch",
		Short: "Collect leaderboard results and match models to Hugging Face repos",
		Long: `Benchmatch fetches a public benchmark leaderboard, keeps the runs of a
single agent on open-weight models, resolves each model to its Hugging Face
hub repository, and writes the combined results to a JSON report.`,
		Version: version,
		Args:    cobra.NoArgs,
		RunE:    RunCollect,
	}

	rootCmd.Flags().StringP("output", "o", pipeline.DefaultOutputPath, "Path of the JSON report to write")
	rootCmd.Flags().String("source", pipeline.DefaultSourceURL, "Leaderboard page URL to collect from")
	rootCmd.Flags().Int("limit", 0, "Search candidates scanned per model (default 5)")
	rootCmd.Flags().Int("timeout", 0, "Leaderboard fetch timeout in seconds (default 30)")
	rootCmd.Flags().String("log-level", "info", "Log verbosity: debug|info|warn|error")

	return rootCmd
}

func RunCollect(cmd *cobra.Command, args []string) error {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to read --output flag: %w", err)
	}
	source, err := cmd.Flags().GetString("source")
	if err != nil {
		return fmt.Errorf("failed to read --source flag: %w", err)
	}
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return fmt.Errorf("failed to read --limit flag: %w", err)
	}
	timeout, err := cmd.Flags().GetInt("timeout")
	if err != nil {
		return fmt.Errorf("failed to read --timeout flag: %w", err)
	}
	logLevel, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return fmt.Errorf("failed to read --log-level flag: %w", err)
	}
	if err := configureLogging(logLevel); err != nil {
		return err
	}

	cfg := pipeline.Config{
		SourceURL:      source,
		SearchLimit:    limit,
		TimeoutSeconds: timeout,
	}

	rep, err := pipeline.Run(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	if err := rep.WriteFile(output); err != nil {
		return err
	}
	slog.Info("wrote results", "path", output, "entries", len(rep.Entries))

	rep.Summary(cmd.OutOrStdout(), pipeline.DefaultAgent)
	return nil
}

func configureLogging(level string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
	return nil
}
