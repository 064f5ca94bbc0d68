package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/txlens/txlens/netstats"
	"github.com/txlens/txlens/util"
)

var netstatsCmd = &cobra.Command{
	Use:   "netstats",
	Short: "Show live stats of the network: block height, gas price, TPS and health",
	RunE: func(cmd *cobra.Command, args []string) error {
		watch, _ := cmd.Flags().GetBool("watch")
		interval, _ := cmd.Flags().GetDuration("interval")
		metricsPort, _ := cmd.Flags().GetInt("metrics-port")

		a := current
		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		fetcher := netstats.NewFetcher(a.reader(), a.logger)
		var metrics *netstats.Metrics
		if metricsPort > 0 {
			metrics = netstats.NewMetrics(a.network.GetName())
			go func() {
				if err := metrics.Serve(ctx, metricsPort, a.logger); err != nil {
					a.logger.Error("metrics server stopped", zap.Error(err))
				}
			}()
		}

		show := func(s *netstats.Stats, err error) {
			if err != nil {
				a.ui.Error("Failed to fetch network statistics: %s", err)
				return
			}
			if metrics != nil {
				metrics.Observe(s)
			}
			d := util.DisplayNetStats(a.ui, s, a.network)
			if err := a.writeJSON(d); err != nil {
				a.logger.Warn("couldn't write json", zap.Error(err))
			}
		}

		if !watch {
			stop := a.ui.Spinner("Fetching network stats...")
			s, err := fetcher.Fetch(ctx)
			stop()
			show(s, err)
			return err
		}
		a.ui.Info("Refreshing every %s, ctrl+c to stop", interval)
		err := fetcher.Watch(ctx, interval, show)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	netstatsCmd.Flags().Bool("watch", false, "keep polling until interrupted")
	netstatsCmd.Flags().Duration("interval", netstats.DefaultInterval, "polling interval with --watch")
	netstatsCmd.Flags().Int("metrics-port", 0, "serve prometheus metrics on this port, 0 disables")
	rootCmd.AddCommand(netstatsCmd)
}
