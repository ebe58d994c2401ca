// Package cli implements the batterymon command line using Cobra.
package cli

import (
	"fmt"
	"os"

	"github.com/benmeehan/batterymon/internal/utils"
	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "batterymon",
	Short: "Battery life tester",
	Long: `batterymon shows battery, temperature and fan readings once per second,
charts the battery level and logs it to CSV. Optional busy-loop workers
drain the battery faster for rundown tests.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMonitor,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", utils.DefaultConfigFile, "path to the YAML config file")
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
