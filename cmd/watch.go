package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jfrkit/heapchart/internal/config"
	"github.com/jfrkit/heapchart/internal/render"
	"github.com/jfrkit/heapchart/internal/service"
	"github.com/jfrkit/heapchart/internal/tui"
)

var watchCmd = &cobra.Command{
	Use:   "watch <pprof-heap-url>",
	Short: "Sample a live /debug/pprof/heap endpoint and chart it in the terminal",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		interval, err := cmd.Flags().GetDuration("interval")
		if err != nil {
			panic(fmt.Sprintf("failed to parse watch interval; %v", err))
		}
		cfgPath, err := cmd.Flags().GetString("config")
		if err != nil {
			panic(fmt.Sprintf("failed to parse config path; %v", err))
		}

		runWatch(args[0], cfgPath, interval)
	},
}

func initWatchCmdFlags() {
	watchCmd.Flags().DurationP("interval", "i", 0, "Heap sampling interval (default 5s)")
}

func runWatch(sourcePath, cfgPath string, interval time.Duration) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Kill, os.Interrupt)
	defer cancel()

	opts := render.DefaultOptions()
	var analyzeOpts []service.AnalyzeOption
	if cfgPath != "" {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stdout, "Error: %v\n", err)
			os.Exit(1)
		}
		opts = render.Options{BarWidth: cfg.BarWidth, Marker: cfg.Marker, EfficientRangeRatio: cfg.EfficientRangeRatio}
		analyzeOpts = append(analyzeOpts, service.WithGCDropRatio(cfg.GCDropRatio))
	}

	hw, err := service.NewHeapWatcher(sourcePath, service.WithSampleInterval(interval))
	if err != nil {
		fmt.Fprintf(os.Stdout, "Error: %v\n", err)
		os.Exit(1)
	}
	if err = hw.Run(ctx); err != nil {
		fmt.Fprintf(os.Stdout, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	logger.Info("watching heap endpoint", "source", sourcePath, "interval", hw.Interval())

	p := tea.NewProgram(tui.New(hw, opts, analyzeOpts...), tea.WithContext(ctx))
	if _, err = p.Run(); err != nil {
		fmt.Fprintf(os.Stdout, "Error: %v\n", err)
		os.Exit(1)
	}

	if err = hw.Err(); err != nil {
		fmt.Fprintf(os.Stdout, "Error: %v\n", err)
		os.Exit(1)
	}
}
