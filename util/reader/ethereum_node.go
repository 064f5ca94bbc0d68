package reader

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"

	txcommon "github.com/txlens/txlens/common"
)

// EthereumNode is the set of reads txlens needs from a single JSON-RPC
// endpoint. Not found results are reported as ethereum.NotFound.
type EthereumNode interface {
	NodeName() string
	NodeURL() string
	TransactionByHash(ctx context.Context, txHash string) (tx *txcommon.Transaction, err error)
	TransactionReceipt(ctx context.Context, txHash string) (receipt *types.Receipt, err error)
	// HeaderByNumber returns the latest header when number is negative.
	HeaderByNumber(ctx context.Context, number int64) (*types.Header, error)
	// BlockByNumber returns the latest block when number is negative.
	BlockByNumber(ctx context.Context, number int64) (*txcommon.BlockSummary, error)
	SuggestedGasPrice(ctx context.Context) (*big.Int, error)
	CurrentBlock(ctx context.Context) (uint64, error)
}
