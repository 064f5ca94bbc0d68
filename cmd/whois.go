package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/txlens/txlens/util"
	"github.com/txlens/txlens/util/addrbook"
)

var whoisCmd = &cobra.Command{
	Use:   "whois <address or name>",
	Short: "Look up a known protocol or token by address, name or symbol",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := current
		rows := util.DisplaySearchResults(a.ui, addrbook.Search(strings.Join(args, " ")))
		return a.writeJSON(rows)
	},
}

var protocolsCmd = &cobra.Command{
	Use:   "protocols",
	Short: "List every known protocol by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := current
		groups := util.DisplayProtocols(a.ui)
		return a.writeJSON(groups)
	},
}

func init() {
	rootCmd.AddCommand(whoisCmd)
	rootCmd.AddCommand(protocolsCmd)
}
