package reader

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	txcommon "github.com/txlens/txlens/common"
	"github.com/txlens/txlens/util/cache"
)

const (
	recentBlocks      = 5
	recentTxsPerBlock = 2

	// per chain
	maxCachedTimestamps = 256
)

// EthReader fans every read out to all of its nodes and returns the first
// successful answer.
type EthReader struct {
	nodes   []EthereumNode
	logger  *zap.Logger
	cache   *cache.Cache
	chainID uint64

	maxTimestamps int
}

type Option func(*options)

type options struct {
	timeout    time.Duration
	httpClient *http.Client
	logger     *zap.Logger
	cache      *cache.Cache
	chainID    uint64
}

func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithCache keeps block timestamps of chain chainID across runs. One cache
// file can be shared by readers of different chains.
func WithCache(c *cache.Cache, chainID uint64) Option {
	return func(o *options) {
		o.cache = c
		o.chainID = chainID
	}
}

// NewEthReader builds a reader over nodes, a map of node name to URL.
func NewEthReader(nodes map[string]string, opts ...Option) *EthReader {
	o := &options{timeout: TIMEOUT, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	names := make([]string, 0, len(nodes))
	for name := range nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	ns := make([]EthereumNode, 0, len(nodes))
	for _, name := range names {
		ns = append(ns, NewOneNodeReader(name, nodes[name], o.timeout, o.httpClient))
	}
	return NewEthReaderWithNodes(ns, o.logger, o.cache, o.chainID)
}

func NewEthReaderWithNodes(nodes []EthereumNode, logger *zap.Logger, c *cache.Cache, chainID uint64) *EthReader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EthReader{
		nodes:         nodes,
		logger:        logger,
		cache:         c,
		chainID:       chainID,
		maxTimestamps: maxCachedTimestamps,
	}
}

func wrapError(e error, name string) error {
	if e == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", name, e)
}

type raceResult[T any] struct {
	Value T
	Error error
}

// race runs read against every node and returns the first success. When all
// nodes fail the returned error joins every node error, so errors.Is still
// sees ethereum.NotFound.
func race[T any](er *EthReader, read func(n EthereumNode) (T, error)) (T, error) {
	var zero T
	if len(er.nodes) == 0 {
		return zero, fmt.Errorf("no nodes configured")
	}
	resCh := make(chan raceResult[T], len(er.nodes))
	for i := range er.nodes {
		n := er.nodes[i]
		go func() {
			v, err := read(n)
			resCh <- raceResult[T]{Value: v, Error: wrapError(err, n.NodeName())}
		}()
	}
	errs := []error{}
	for i := 0; i < len(er.nodes); i++ {
		result := <-resCh
		if result.Error == nil {
			return result.Value, nil
		}
		errs = append(errs, result.Error)
	}
	return zero, fmt.Errorf("couldn't read from any nodes: %w", errors.Join(errs...))
}

func (er *EthReader) TransactionByHash(ctx context.Context, txHash string) (*txcommon.Transaction, error) {
	return race(er, func(n EthereumNode) (*txcommon.Transaction, error) {
		return n.TransactionByHash(ctx, txHash)
	})
}

func (er *EthReader) TransactionReceipt(ctx context.Context, txHash string) (*types.Receipt, error) {
	return race(er, func(n EthereumNode) (*types.Receipt, error) {
		return n.TransactionReceipt(ctx, txHash)
	})
}

func (er *EthReader) HeaderByNumber(ctx context.Context, number int64) (*types.Header, error) {
	return race(er, func(n EthereumNode) (*types.Header, error) {
		return n.HeaderByNumber(ctx, number)
	})
}

func (er *EthReader) BlockByNumber(ctx context.Context, number int64) (*txcommon.BlockSummary, error) {
	return race(er, func(n EthereumNode) (*txcommon.BlockSummary, error) {
		return n.BlockByNumber(ctx, number)
	})
}

func (er *EthReader) SuggestedGasPrice(ctx context.Context) (*big.Int, error) {
	return race(er, func(n EthereumNode) (*big.Int, error) {
		return n.SuggestedGasPrice(ctx)
	})
}

func (er *EthReader) CurrentBlock(ctx context.Context) (uint64, error) {
	return race(er, func(n EthereumNode) (uint64, error) {
		return n.CurrentBlock(ctx)
	})
}

// TxInfoFromHash fetches the transaction and its receipt in parallel and
// derives the transaction status from them.
func (er *EthReader) TxInfoFromHash(ctx context.Context, txHash string) (txcommon.TxInfo, error) {
	var (
		tx         *txcommon.Transaction
		receipt    *types.Receipt
		receiptErr error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tx, err = er.TransactionByHash(gctx, txHash)
		if errors.Is(err, ethereum.NotFound) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		receipt, receiptErr = er.TransactionReceipt(gctx, txHash)
		return nil
	})
	if err := g.Wait(); err != nil {
		return txcommon.TxInfo{Status: txcommon.TxStatusError}, err
	}

	if tx == nil {
		return txcommon.TxInfo{Status: txcommon.TxStatusNotFound}, nil
	}
	if tx.IsPending() || receipt == nil {
		if receiptErr != nil && !errors.Is(receiptErr, ethereum.NotFound) {
			er.logger.Debug("receipt unavailable", zap.String("tx", txHash), zap.Error(receiptErr))
		}
		return txcommon.TxInfo{Status: txcommon.TxStatusPending, Tx: tx}, nil
	}

	info := txcommon.TxInfo{
		Status:    txcommon.TxStatusReverted,
		Tx:        tx,
		Receipt:   receipt,
		Timestamp: er.blockTimestamp(ctx, receipt.BlockNumber),
	}
	// if PostState is a hash, it is pre-byzantium and all
	// txs with PostState are considered done
	if len(receipt.PostState) == len(common.Hash{}) || receipt.Status == types.ReceiptStatusSuccessful {
		info.Status = txcommon.TxStatusDone
	}
	return info, nil
}

func timestampKeyPrefix(chainID uint64) string {
	return fmt.Sprintf("block_%d_", chainID)
}

func timestampCacheKey(chainID, number uint64) string {
	return fmt.Sprintf("%s%d_timestamp", timestampKeyPrefix(chainID), number)
}

// blockTimestamp returns 0 when the timestamp cannot be read.
func (er *EthReader) blockTimestamp(ctx context.Context, number *big.Int) uint64 {
	if number == nil || !number.IsInt64() {
		return 0
	}
	key := timestampCacheKey(er.chainID, number.Uint64())
	if er.cache != nil {
		if ts, found := er.cache.GetUint64(key); found {
			return ts
		}
	}
	header, err := er.HeaderByNumber(ctx, number.Int64())
	if err != nil {
		er.logger.Warn("couldn't read block timestamp", zap.Uint64("block", number.Uint64()), zap.Error(err))
		return 0
	}
	if er.cache != nil {
		er.pruneTimestamps()
		if err := er.cache.SetUint64(key, header.Time); err != nil {
			er.logger.Debug("couldn't cache block timestamp", zap.Error(err))
		}
	}
	return header.Time
}

// pruneTimestamps drops the lowest blocks of this chain so that one more
// timestamp fits under maxTimestamps.
func (er *EthReader) pruneTimestamps() {
	prefix := timestampKeyPrefix(er.chainID)
	keys := er.cache.Keys(prefix)
	if len(keys) < er.maxTimestamps {
		return
	}
	blockOf := func(key string) uint64 {
		var n uint64
		fmt.Sscanf(strings.TrimPrefix(key, prefix), "%d_timestamp", &n) //nolint:errcheck
		return n
	}
	sort.Slice(keys, func(i, j int) bool { return blockOf(keys[i]) < blockOf(keys[j]) })
	stale := keys[:len(keys)-er.maxTimestamps+1]
	if err := er.cache.Delete(stale...); err != nil {
		er.logger.Debug("couldn't prune cached timestamps", zap.Error(err))
	}
}

// RecentTransactions walks back from the latest block over at most 5 blocks
// taking at most 2 hashes from each. Failures are logged and yield an empty
// list.
func (er *EthReader) RecentTransactions(ctx context.Context, limit int) []string {
	result := []string{}
	latest, err := er.CurrentBlock(ctx)
	if err != nil {
		er.logger.Warn("couldn't read latest block", zap.Error(err))
		return []string{}
	}
	for i := 0; i < limit && i < recentBlocks && uint64(i) <= latest; i++ {
		block, err := er.BlockByNumber(ctx, int64(latest)-int64(i))
		if err != nil {
			er.logger.Warn("couldn't read recent block", zap.Uint64("block", latest-uint64(i)), zap.Error(err))
			return []string{}
		}
		for j, h := range block.Transactions {
			if j >= recentTxsPerBlock {
				break
			}
			result = append(result, h.Hex())
		}
	}
	if len(result) > limit {
		result = result[:limit]
	}
	return result
}
