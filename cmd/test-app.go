package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/jfrkit/heapchart/pkg/extapp"
)

const defaultTestAppAddr = "127.0.0.1:11000"

var testAppCmd = &cobra.Command{
	Use:   "test-app",
	Short: "Run a sawtooth-allocating application to be used for testing the watcher",
	Run: func(cmd *cobra.Command, args []string) {
		addr, err := cmd.Flags().GetString("addr")
		if err != nil {
			panic(fmt.Sprintf("failed to parse test app addr; %v", err))
		}

		if addr == "" {
			addr = defaultTestAppAddr
		}

		runTestApp(addr)
	},
}

func initTestAppCmdFlags() {
	testAppCmd.Flags().StringP("addr", "a", "", "Address to be exposed for clients")
}

func runTestApp(addr string) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Kill, os.Interrupt)
	defer cancel()

	if err := extapp.RunTestApp(ctx, addr); err != nil {
		panic(fmt.Sprintf("failed to run test app; %v", err))
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	logger.Info("test app is running", "addr", addr)
	logger.Info("watch it with", "cmd", fmt.Sprintf("heapchart watch http://%s/debug/pprof/heap", addr))

	<-ctx.Done()
}
