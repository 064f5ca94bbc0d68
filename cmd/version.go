package cmd

import (
	"github.com/spf13/cobra"
)

const (
	VERSION string = "0.3.0"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show txlens version",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		current.ui.Info("Version: %s", VERSION)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
