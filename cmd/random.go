package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/txlens/txlens/ui"
)

const recentLimit = 10

type recentSource interface {
	RecentTransactions(ctx context.Context, limit int) []string
}

// pickRecent returns "" when no recent transaction could be loaded.
func pickRecent(ctx context.Context, u ui.UI, src recentSource, rnd *rand.Rand) string {
	stop := u.Spinner("Loading recent transactions...")
	hashes := src.RecentTransactions(ctx, recentLimit)
	stop()
	if len(hashes) == 0 {
		return ""
	}
	return hashes[rnd.Intn(len(hashes))]
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Explain a random transaction from the latest blocks",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := current
		r := a.reader()
		hash := pickRecent(cmd.Context(), a.ui, r, rand.New(rand.NewSource(time.Now().UnixNano())))
		if hash == "" {
			a.ui.Error("Failed to load recent transactions")
			return fmt.Errorf("no recent transactions")
		}
		a.ui.Info("Picked %s", hash)
		return a.explainAndSave(cmd.Context(), r, []string{hash})
	},
}

func init() {
	rootCmd.AddCommand(randomCmd)
}
