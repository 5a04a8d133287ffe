package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	apiError "github.com/jfrkit/heapchart/api/error"
	"github.com/jfrkit/heapchart/internal/config"
	"github.com/jfrkit/heapchart/internal/helper"
	"github.com/jfrkit/heapchart/internal/render"
	"github.com/jfrkit/heapchart/internal/service"
)

var chartCmd = &cobra.Command{
	Use:   "chart <heap-export.csv>",
	Short: "Render an ASCII heap usage chart from a JFR CSV export",
	Args:  cobra.ArbitraryArgs,
	Run:   runChartCmd,
}

func runChartCmd(cmd *cobra.Command, args []string) {
	cfgPath, err := cmd.Flags().GetString("config")
	if err != nil {
		panic(fmt.Sprintf("failed to parse config path; %v", err))
	}

	if err := runChart(cmd.Context(), os.Stdout, cfgPath, args); err != nil {
		os.Exit(1)
	}
}

// runChart is the whole one-shot pipeline: open the source, read the series,
// analyze, render. Every failure writes its message to out (stdout in
// production) and returns a non-nil error so the caller can set the exit
// status; no partial report is ever printed.
func runChart(ctx context.Context, out io.Writer, cfgPath string, args []string) error {
	if len(args) < 1 {
		fmt.Fprintln(out, "Usage: heapchart <heap-export.csv>")
		printExportHint(out)
		return apiError.ErrMissingArgument
	}

	opts := config.Default()
	if cfgPath != "" {
		var err error
		if opts, err = config.Load(cfgPath); err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return err
		}
	}

	sourcePath := args[0]
	src, err := helper.OpenSeriesSource(ctx, sourcePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(out, "File not found: %s\n", sourcePath)
			printExportHint(out)
			return apiError.ErrFileNotFound
		}
		fmt.Fprintf(out, "Error: %v\n", err)
		return err
	}
	defer src.Close()

	samples, err := service.ReadHeapSeries(src)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return err
	}
	if len(samples) == 0 {
		fmt.Fprintf(out, "No valid data found in %s\n", sourcePath)
		return apiError.ErrEmptyDataset
	}

	normalized := service.NormalizeTimes(samples)
	rep, err := service.AnalyzeHeapSeries(normalized, service.WithGCDropRatio(opts.GCDropRatio))
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return err
	}

	fmt.Fprint(out, render.HeapReport(normalized, rep, render.Options{
		BarWidth:            opts.BarWidth,
		Marker:              opts.Marker,
		EfficientRangeRatio: opts.EfficientRangeRatio,
	}))

	return nil
}

func printExportHint(out io.Writer) {
	fmt.Fprintln(out, "\nFirst export heap data:")
	fmt.Fprintln(out, "  ./jfr-commands.sh export-heap recording.jfr")
}
