package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/MikeSquared-Agency/vidocq/internal/config"
	"github.com/MikeSquared-Agency/vidocq/internal/processor"
	"github.com/MikeSquared-Agency/vidocq/internal/remote"
	"github.com/MikeSquared-Agency/vidocq/internal/staging"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		localOnly bool
		outPath   string
	)

	cmd := &cobra.Command{
		Use:   "analyze <file.json>",
		Short: "Analyse a conversation file from the command line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if localOnly {
				cfg.Remote.Credential = ""
			}
			return runAnalyze(cmd.Context(), cfg, args[0], outPath, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&localOnly, "local", false, "Skip the remote service and use the local analyzer")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the report to this file instead of stdout")

	return cmd
}

func runAnalyze(ctx context.Context, cfg config.Config, path, outPath string, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// Keep library logs off the report output.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if !gjson.ValidBytes(raw) {
		return fmt.Errorf("invalid JSON in %s", path)
	}

	area, err := staging.New(cfg.UploadDir, logger)
	if err != nil {
		return err
	}

	var opts []processor.Option
	if cfg.Remote.Enabled() {
		a, err := remote.New(cfg.Remote)
		if err != nil {
			return fmt.Errorf("remote analyzer: %w", err)
		}
		opts = append(opts, processor.WithRemote(a, cfg.Remote.Timeout))
	}
	proc := processor.New(area, logger, opts...)

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Writer = os.Stderr
	s.Suffix = " Analyse en cours..."
	s.Start()
	res, err := proc.Process(ctx, raw)
	s.Stop()
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	printStatus(res)

	if outPath != "" {
		if err := os.WriteFile(outPath, []byte(res.Analysis), 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		color.New(color.FgGreen).Fprintf(os.Stderr, "✓ Rapport enregistré dans %s\n", outPath)
		return nil
	}

	fmt.Fprintln(stdout, res.Analysis)
	return nil
}

func printStatus(res *processor.Result) {
	c := levelColor(res.Level)
	if res.Source == processor.SourceRemote {
		c.Fprintln(os.Stderr, "Analyse effectuée par le service distant")
		return
	}
	c.Fprintf(os.Stderr, "Analyse locale: niveau %s (%d/%d messages signalés)\n", res.Level, res.Flagged, res.MessageCount)
}

func levelColor(level string) *color.Color {
	switch level {
	case "none":
		return color.New(color.FgGreen, color.Bold)
	case "light", "moderate":
		return color.New(color.FgYellow, color.Bold)
	case "severe", "critical":
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.FgCyan, color.Bold)
	}
}
