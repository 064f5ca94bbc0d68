package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	txcommon "github.com/txlens/txlens/common"
	"github.com/txlens/txlens/history"
	"github.com/txlens/txlens/networks"
	"github.com/txlens/txlens/txanalyzer"
	"github.com/txlens/txlens/ui"
	"github.com/txlens/txlens/util"
)

const notFoundMessage = "Transaction not found or invalid hash"

type txSource interface {
	TxInfoFromHash(ctx context.Context, hash string) (txcommon.TxInfo, error)
}

type historyRecorder interface {
	Add(e *txcommon.Explanation) (history.Entry, error)
}

// explainer fetches, analyzes, prints and records transactions.
type explainer struct {
	u        ui.UI
	source   txSource
	analyzer *txanalyzer.TxAnalyzer
	history  historyRecorder
	network  networks.Network
	logger   *zap.Logger
}

func (x *explainer) explain(ctx context.Context, hash string) (*txcommon.Explanation, error) {
	if !util.IsTxHash(hash) {
		return nil, txanalyzer.ErrInvalidHash
	}
	stop := x.u.Spinner(fmt.Sprintf("Analyzing %s...", hash))
	info, err := x.source.TxInfoFromHash(ctx, hash)
	stop()
	if err != nil {
		return nil, fmt.Errorf("couldn't fetch %s: %w", hash, err)
	}
	e, err := x.analyzer.Analyze(&info)
	if err != nil {
		return nil, err
	}
	if x.history != nil {
		if _, err := x.history.Add(e); err != nil {
			x.logger.Warn("couldn't save to history", zap.String("tx", hash), zap.Error(err))
		}
	}
	return e, nil
}

// run explains every hash in turn. A failing hash is reported and skipped.
func (x *explainer) run(ctx context.Context, hashes []string) []*txcommon.Explanation {
	result := []*txcommon.Explanation{}
	for _, h := range hashes {
		e, err := x.explain(ctx, h)
		if err != nil {
			x.report(h, err)
			continue
		}
		util.DisplayExplanation(x.u, e, x.network)
		result = append(result, e)
	}
	return result
}

func (x *explainer) report(hash string, err error) {
	if errors.Is(err, txanalyzer.ErrTxPending) {
		x.u.Warn("%s is still pending, try again once it is mined", hash)
		return
	}
	x.logger.Debug("explain failed", zap.String("tx", hash), zap.Error(err))
	x.u.Error(notFoundMessage)
}

func (a *app) newExplainer(source txSource, h historyRecorder) *explainer {
	return &explainer{
		u:        a.ui,
		source:   source,
		analyzer: a.analyzer(),
		history:  h,
		network:  a.network,
		logger:   a.logger,
	}
}

// explainAndSave is the body shared by explain and random.
func (a *app) explainAndSave(ctx context.Context, source txSource, hashes []string) error {
	store, err := a.openHistory()
	if err != nil {
		a.logger.Warn("history unavailable", zap.Error(err))
	} else {
		defer store.Close()
	}
	var recorder historyRecorder
	if store != nil {
		recorder = store
	}
	explanations := a.newExplainer(source, recorder).run(ctx, hashes)
	if len(explanations) == 0 {
		return fmt.Errorf("no transaction could be explained")
	}
	return a.writeJSON(explanations)
}

// askTxHash prompts until a well formed hash is entered and echoes back what
// will be explained.
func askTxHash(u ui.UI, network networks.Network) string {
	u.Info("Transaction hash:")
	hash := strings.TrimSpace(u.Ask(util.ValidateTxHash))
	u.Interpret(fmt.Sprintf("%s on %s", strings.ToLower(hash), network.GetName()))
	return hash
}

var explainCmd = &cobra.Command{
	Use:     "explain [tx hash...]",
	Aliases: []string{"info", "tx"},
	Short:   "Analyze transactions and explain them in plain language",
	Long: `Scans the arguments for transaction hashes and explains each of them. With no
arguments it asks for one. Explained transactions are added to the history.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := current
		var hashes []string
		if len(args) == 0 {
			hashes = []string{askTxHash(a.ui, a.network)}
		} else {
			hashes = util.ScanForTxs(strings.Join(args, " "))
		}
		if len(hashes) == 0 {
			a.ui.Error(notFoundMessage)
			return fmt.Errorf("couldn't find any tx hash in the params")
		}
		return a.explainAndSave(cmd.Context(), a.reader(), hashes)
	},
}

func init() {
	rootCmd.AddCommand(explainCmd)
}
