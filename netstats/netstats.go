// Package netstats reports the health of the chain a reader points at.
package netstats

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	txcommon "github.com/txlens/txlens/common"
)

const DefaultInterval = 30 * time.Second

type Health string

const (
	HealthExcellent Health = "excellent"
	HealthGood      Health = "good"
	HealthFair      Health = "fair"
	HealthPoor      Health = "poor"
)

// ChainReader is the part of reader.EthReader that netstats needs.
type ChainReader interface {
	BlockByNumber(ctx context.Context, number int64) (*txcommon.BlockSummary, error)
	SuggestedGasPrice(ctx context.Context) (*big.Int, error)
}

type Stats struct {
	BlockNumber     uint64        `json:"block_number"`
	BlockTime       time.Time     `json:"block_time"`
	BlockAge        time.Duration `json:"block_age"`
	GasPrice        *big.Int      `json:"gas_price"`
	BaseFee         *big.Int      `json:"base_fee,omitempty"`
	Difficulty      *big.Int      `json:"difficulty"`
	NetworkHashrate string        `json:"network_hashrate"`
	TxCount         int           `json:"tx_count"`
	TPS             float64       `json:"tps"`
	Health          Health        `json:"network_health"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type Fetcher struct {
	reader ChainReader
	logger *zap.Logger
	now    func() time.Time
}

func NewFetcher(r ChainReader, logger *zap.Logger) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{reader: r, logger: logger, now: time.Now}
}

// HealthFromAge grades the chain by how long ago its latest block was
// produced.
func HealthFromAge(age time.Duration) Health {
	switch {
	case age < 30*time.Second:
		return HealthExcellent
	case age < 60*time.Second:
		return HealthGood
	case age < 120*time.Second:
		return HealthFair
	}
	return HealthPoor
}

// Fetch reads the latest block and the suggested gas price in parallel,
// then the parent block to estimate throughput.
func (f *Fetcher) Fetch(ctx context.Context) (*Stats, error) {
	var (
		latest   *txcommon.BlockSummary
		gasPrice *big.Int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		latest, err = f.reader.BlockByNumber(gctx, -1)
		if err != nil {
			return fmt.Errorf("reading latest block: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		gasPrice, err = f.reader.SuggestedGasPrice(gctx)
		if err != nil {
			return fmt.Errorf("reading gas price: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := f.now()
	blockTime := time.Unix(int64(latest.Timestamp), 0)
	age := now.Sub(blockTime)
	if age < 0 {
		age = 0
	}
	stats := &Stats{
		BlockNumber:     uint64(latest.Number),
		BlockTime:       blockTime.UTC(),
		BlockAge:        age,
		GasPrice:        gasPrice,
		Difficulty:      big.NewInt(0),
		NetworkHashrate: "0",
		TxCount:         len(latest.Transactions),
		Health:          HealthFromAge(age),
		UpdatedAt:       now.UTC(),
	}
	if latest.Difficulty != nil {
		stats.Difficulty = latest.Difficulty.ToInt()
	}
	if latest.BaseFee != nil {
		stats.BaseFee = latest.BaseFee.ToInt()
	}
	stats.TPS = f.tps(ctx, latest)
	return stats, nil
}

// tps is 0 whenever it cannot be derived.
func (f *Fetcher) tps(ctx context.Context, latest *txcommon.BlockSummary) float64 {
	if latest.Number == 0 {
		return 0
	}
	parent, err := f.reader.BlockByNumber(ctx, int64(latest.Number)-1)
	if err != nil {
		f.logger.Debug("couldn't read parent block", zap.Uint64("block", uint64(latest.Number)-1), zap.Error(err))
		return 0
	}
	if latest.Timestamp <= parent.Timestamp {
		return 0
	}
	return float64(len(latest.Transactions)) / float64(latest.Timestamp-parent.Timestamp)
}

// Watch calls fn with fresh stats right away and then every interval until
// ctx is done. A failed poll is passed to fn and the loop keeps going. A poll
// interrupted by ctx is not reported.
func (f *Fetcher) Watch(ctx context.Context, interval time.Duration, fn func(*Stats, error)) error {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		stats, err := f.Fetch(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			f.logger.Warn("network stats poll failed", zap.Error(err))
		}
		fn(stats, err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
