package cmd

import (
	"os"

	"github.com/Nrich-sunny/reviewcrawler/cmd/collect"
	"github.com/Nrich-sunny/reviewcrawler/cmd/harvest"
	"github.com/Nrich-sunny/reviewcrawler/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print version.",
	Long:  "print version.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		version.Printer()
	},
}

func Execute() {
	var rootCmd = &cobra.Command{
		Use:          "reviewcrawler",
		Short:        "collect community reviews into csv.",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(collect.CollectCmd, harvest.HarvestCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
