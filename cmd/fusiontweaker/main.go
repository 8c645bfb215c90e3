package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zekorzgame/fusiontweaker/internal/version"
)

var (
	// Build variables set by ldflags
	buildVersion string
	buildCommit  string
	buildTime    string
)

func main() {
	buildInfo := version.Resolve(buildVersion, buildCommit, buildTime)

	rootCmd := &cobra.Command{
		Use:   "fusiontweaker",
		Short: "FusionTweaker - CPU/Northbridge P-state tuning",
		Long: `FusionTweaker reads and writes the P-state control registers of AMD
family 10h/12h processors: the eight per-core CPU P-states and the two
Northbridge P-states. Raw register values are converted to and from
multiplier, voltage and PLL frequency settings.`,
		Version: buildInfo.Short(),
	}

	rootCmd.AddCommand(versionCmd(buildInfo))
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(setCmd())
	rootCmd.AddCommand(decodeCmd())
	rootCmd.AddCommand(encodeCmd())
	rootCmd.AddCommand(snapshotCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(watchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd(buildInfo version.Info) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(buildInfo.Detailed())
		},
	}
}
