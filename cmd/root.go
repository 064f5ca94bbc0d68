// Copyright © 2024 The txlens Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/txlens/txlens/config"
	"github.com/txlens/txlens/networks"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "txlens",
	Short: "Explain ethereum transactions in plain language",
	Long: fmt.Sprintf(`txlens fetches a transaction and its receipt from an ethereum node and
explains what happened: what kind of transaction it is, which protocol it
touched, which tokens moved, what it cost and whether it looks like MEV.

Supported networks: %s. Custom networks can be added as json files under
<data-dir>/networks.

By default txlens reads from public nodes. You can point it at your own with
--rpc-url (comma separated) or the %s_RPC_URL env var, or add one node next to
the defaults with the network's node env var, e.g. %s for mainnet.

Every flag can also be set with a %s_ prefixed env var, e.g. %s_NETWORK=sepolia.

USD values use a fixed reference price table and the MEV panel is a heuristic,
not a detector.`,
		strings.Join(networks.GetSupportedNetworkNames(), ", "),
		config.ENV_PREFIX,
		networks.EthereumMainnet.GetNodeVariableName(),
		config.ENV_PREFIX,
		config.ENV_PREFIX,
	),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		teardown()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	initConfig()

	rootCmd.PersistentFlags().StringP(config.Network, "k", "mainnet", fmt.Sprintf("ethereum network name or chain id. Valid names: %s.", strings.Join(networks.GetSupportedNetworkNames(), ", ")))
	rootCmd.PersistentFlags().String(config.RpcUrl, "", `comma separated node urls replacing the defaults, e.g. "http://localhost:8545"`)
	rootCmd.PersistentFlags().Bool(config.Debug, false, "enable debug logging")
	rootCmd.PersistentFlags().String(config.DataDir, config.DefaultDataDir(), "where history, cache and custom networks live")
	rootCmd.PersistentFlags().Duration(config.Timeout, config.DefaultTimeout, "timeout of every node request")
	rootCmd.PersistentFlags().String(config.JSONOutput, "", "also write the result as json to this file")
	rootCmd.PersistentFlags().Bool(config.NoColor, false, "disable colored output")

	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		key := config.KebabToSnakeCase(f.Name)
		viper.BindPFlag(key, f) //nolint:errcheck
		viper.BindEnv(key)      //nolint:errcheck
	})
}

func initConfig() {
	viper.SetEnvPrefix(config.ENV_PREFIX)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()
}
