package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolate/percolation"
	"github.com/katalvlaran/percolate/replay"
)

type rootFlags struct {
	skipInvalid bool
	stopEarly   bool
	bySize      bool
	asJSON      bool
	showGrid    bool
	verbose     bool
}

func newRootCmd() *cobra.Command {
	var f rootFlags
	cmd := &cobra.Command{
		Use:   "percolate [file]",
		Short: "Replay a percolation trace",
		Long: `Replay a percolation trace: the grid dimension n followed by
"row col" pairs of sites to open, 1-based, whitespace separated.

Examples:
  percolate input10.txt
  percolate --stop-on-percolation --grid input10.txt
  cat input10.txt | percolate --json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if f.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd, args, f)
		},
	}

	cmd.Flags().BoolVar(&f.skipInvalid, "skip-invalid", false, "Skip out-of-range sites instead of failing")
	cmd.Flags().BoolVar(&f.stopEarly, "stop-on-percolation", false, "Stop at the first site that makes the grid percolate")
	cmd.Flags().BoolVar(&f.bySize, "union-by-size", false, "Use union-by-size in the connectivity forest")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "Print the report as JSON")
	cmd.Flags().BoolVar(&f.showGrid, "grid", false, "Include the final grid ('#' blocked, 'o' open, '*' full)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Log debug output to stderr")

	return cmd
}

func runReplay(cmd *cobra.Command, args []string, f rootFlags) error {
	in := cmd.InOrStdin()
	name := "stdin"
	if len(args) == 1 && args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open trace: %w", err)
		}
		defer file.Close()
		in, name = file, args[0]
	}

	tr, err := replay.Parse(in)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	slog.Debug("trace parsed", "source", name, "n", tr.N, "sites", len(tr.Sites))

	var opts []replay.Option
	if f.skipInvalid {
		opts = append(opts, replay.WithSkipInvalid())
	}
	if f.stopEarly {
		opts = append(opts, replay.WithStopOnPercolation())
	}
	if f.bySize {
		opts = append(opts, replay.WithGridOptions(percolation.WithUnionBySize()))
	}
	rep, err := replay.Run(cmd.Context(), tr, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if rep.Skipped > 0 {
		slog.Warn("skipped out-of-range sites", "count", rep.Skipped)
	}

	if f.asJSON {
		doc, err := rep.JSON(f.showGrid)
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), doc)
		return err
	}

	return writeReport(cmd.OutOrStdout(), rep, f.showGrid)
}

func writeReport(w io.Writer, rep *replay.Report, withGrid bool) error {
	var buf bytes.Buffer
	sites := int64(rep.N) * int64(rep.N)
	fmt.Fprintf(&buf, "grid:        %s×%s (%s sites)\n",
		humanize.Comma(int64(rep.N)), humanize.Comma(int64(rep.N)), humanize.Comma(sites))
	fmt.Fprintf(&buf, "steps:       %s (%s skipped)\n",
		humanize.Comma(int64(rep.Steps)), humanize.Comma(int64(rep.Skipped)))
	fmt.Fprintf(&buf, "open sites:  %s (%s%%)\n",
		humanize.Comma(int64(rep.OpenSites)), humanize.FtoaWithDigits(rep.Fraction()*100, 2))
	if rep.PercolatedAt > 0 {
		fmt.Fprintf(&buf, "percolates:  yes, since the %s site\n", humanize.Ordinal(rep.PercolatedAt))
	} else {
		buf.WriteString("percolates:  no\n")
	}
	if withGrid {
		buf.WriteByte('\n')
		buf.WriteString(rep.Grid.String())
	}

	_, err := buf.WriteTo(w)
	return err
}
