package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "heapchart <heap-export.csv>",
	Short: "Heapchart renders ASCII charts and GC statistics from JFR heap-usage exports",
	Args:  cobra.ArbitraryArgs,
	Run:   runChartCmd,
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a YAML chart options file")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(chartCmd)
	initWatchCmdFlags()
	rootCmd.AddCommand(watchCmd)
	initTestAppCmdFlags()
	rootCmd.AddCommand(testAppCmd)
}

// Execute runs the command tree. Every failure path has already written its
// message to stdout, so this only sets the exit status
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
