package cli

import (
	"os"

	"github.com/benmeehan/batterymon/internal/loadgen"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(burnCmd)
}

// burnCmd is the body of one load worker process. It exits when stdin closes.
var burnCmd = &cobra.Command{
	Use:    loadgen.BurnCommand,
	Short:  "Spin one CPU core until stdin closes",
	Hidden: true,
	Args:   cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		loadgen.Burn(os.Stdin)
	},
}
