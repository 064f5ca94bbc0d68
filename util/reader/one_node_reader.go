package reader

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	txcommon "github.com/txlens/txlens/common"
)

const TIMEOUT time.Duration = 4 * time.Second

type OneNodeReader struct {
	nodeName   string
	nodeURL    string
	timeout    time.Duration
	httpClient *http.Client
	client     *rpc.Client
	ethClient  *ethclient.Client
	mu         sync.Mutex
}

// NewOneNodeReader creates a lazily dialed reader. httpClient may be nil to
// use go-ethereum's default transport.
func NewOneNodeReader(name, url string, timeout time.Duration, httpClient *http.Client) *OneNodeReader {
	if timeout <= 0 {
		timeout = TIMEOUT
	}
	return &OneNodeReader{
		nodeName:   name,
		nodeURL:    url,
		timeout:    timeout,
		httpClient: httpClient,
	}
}

func (onr *OneNodeReader) NodeName() string {
	return onr.nodeName
}

func (onr *OneNodeReader) NodeURL() string {
	return onr.nodeURL
}

func (onr *OneNodeReader) clients() (*rpc.Client, *ethclient.Client, error) {
	onr.mu.Lock()
	defer onr.mu.Unlock()
	if onr.client != nil {
		return onr.client, onr.ethClient, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), onr.timeout)
	defer cancel()
	opts := []rpc.ClientOption{}
	if onr.httpClient != nil {
		opts = append(opts, rpc.WithHTTPClient(onr.httpClient))
	}
	client, err := rpc.DialOptions(ctx, onr.nodeURL, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("couldn't connect to %s: %w", onr.nodeName, err)
	}
	onr.client = client
	onr.ethClient = ethclient.NewClient(client)
	return onr.client, onr.ethClient, nil
}

func (onr *OneNodeReader) TransactionByHash(ctx context.Context, txHash string) (*txcommon.Transaction, error) {
	cli, _, err := onr.clients()
	if err != nil {
		return nil, err
	}
	timeout, cancel := context.WithTimeout(ctx, onr.timeout)
	defer cancel()

	var json *txcommon.Transaction
	err = cli.CallContext(timeout, &json, "eth_getTransactionByHash", common.HexToHash(txHash))
	if err != nil {
		return nil, err
	} else if json == nil {
		return nil, ethereum.NotFound
	} else if _, r, _ := json.RawSignatureValues(); r == nil {
		return nil, fmt.Errorf("server returned transaction without signature")
	}
	return json, nil
}

func (onr *OneNodeReader) TransactionReceipt(ctx context.Context, txHash string) (*types.Receipt, error) {
	_, ethcli, err := onr.clients()
	if err != nil {
		return nil, err
	}
	timeout, cancel := context.WithTimeout(ctx, onr.timeout)
	defer cancel()
	return ethcli.TransactionReceipt(timeout, common.HexToHash(txHash))
}

func blockArg(number int64) string {
	if number < 0 {
		return "latest"
	}
	return hexutil.EncodeUint64(uint64(number))
}

func (onr *OneNodeReader) HeaderByNumber(ctx context.Context, number int64) (*types.Header, error) {
	_, ethcli, err := onr.clients()
	if err != nil {
		return nil, err
	}
	var numberBig *big.Int
	if number > -1 {
		numberBig = big.NewInt(number)
	}
	timeout, cancel := context.WithTimeout(ctx, onr.timeout)
	defer cancel()
	return ethcli.HeaderByNumber(timeout, numberBig)
}

// BlockByNumber reads a block with transaction hashes only.
func (onr *OneNodeReader) BlockByNumber(ctx context.Context, number int64) (*txcommon.BlockSummary, error) {
	cli, _, err := onr.clients()
	if err != nil {
		return nil, err
	}
	timeout, cancel := context.WithTimeout(ctx, onr.timeout)
	defer cancel()

	var block *txcommon.BlockSummary
	if err := cli.CallContext(timeout, &block, "eth_getBlockByNumber", blockArg(number), false); err != nil {
		return nil, err
	}
	if block == nil {
		return nil, ethereum.NotFound
	}
	return block, nil
}

func (onr *OneNodeReader) SuggestedGasPrice(ctx context.Context) (*big.Int, error) {
	_, ethcli, err := onr.clients()
	if err != nil {
		return nil, err
	}
	timeout, cancel := context.WithTimeout(ctx, onr.timeout)
	defer cancel()
	return ethcli.SuggestGasPrice(timeout)
}

func (onr *OneNodeReader) CurrentBlock(ctx context.Context) (uint64, error) {
	_, ethcli, err := onr.clients()
	if err != nil {
		return 0, err
	}
	timeout, cancel := context.WithTimeout(ctx, onr.timeout)
	defer cancel()
	return ethcli.BlockNumber(timeout)
}
