package reader

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	txcommon "github.com/txlens/txlens/common"
	"github.com/txlens/txlens/util/cache"
)

const (
	goodNode = "https://good.node.test"
	badNode  = "https://bad.node.test"

	testTxHash = "0x5c504ed432cb51138bcf09aa5e8a410dd4a1e204ef84bfed1be16dfba1b22060"
	pendingTx  = "0x1111111111111111111111111111111111111111111111111111111111111111"
)

type rpcRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

type rpcHandler func(method string, params []json.RawMessage) (interface{}, bool)

// rpcResponder answers single JSON-RPC calls. A handler returning false
// produces a method-not-found error.
func rpcResponder(handler rpcHandler) httpmock.Responder {
	return func(req *http.Request) (*http.Response, error) {
		var msg rpcRequest
		if err := json.NewDecoder(req.Body).Decode(&msg); err != nil {
			return httpmock.NewStringResponse(400, err.Error()), nil
		}
		result, ok := handler(msg.Method, msg.Params)
		if !ok {
			return httpmock.NewJsonResponse(200, map[string]interface{}{
				"jsonrpc": "2.0",
				"id":      msg.ID,
				"error":   map[string]interface{}{"code": -32601, "message": "method not found"},
			})
		}
		return httpmock.NewJsonResponse(200, map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      msg.ID,
			"result":  result,
		})
	}
}

var emptyBloom = "0x" + strings.Repeat("00", 256)

func txFixture(hash string, mined bool) map[string]interface{} {
	tx := map[string]interface{}{
		"type":     "0x0",
		"hash":     hash,
		"nonce":    "0x1",
		"gasPrice": "0x4a817c800",
		"gas":      "0x5208",
		"to":       "0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D",
		"value":    "0xde0b6b3a7640000",
		"input":    "0x",
		"v":        "0x25",
		"r":        "0x1",
		"s":        "0x1",
		"from":     "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045",
	}
	if mined {
		tx["blockNumber"] = "0x10"
		tx["blockHash"] = "0x" + strings.Repeat("ab", 32)
	}
	return tx
}

func receiptFixture(hash string, status string) map[string]interface{} {
	return map[string]interface{}{
		"type":              "0x0",
		"transactionHash":   hash,
		"transactionIndex":  "0x0",
		"blockNumber":       "0x10",
		"blockHash":         "0x" + strings.Repeat("ab", 32),
		"cumulativeGasUsed": "0x5208",
		"gasUsed":           "0x5208",
		"effectiveGasPrice": "0x3b9aca00",
		"logsBloom":         emptyBloom,
		"logs":              []interface{}{},
		"status":            status,
	}
}

func blockFixture(number uint64, timestamp uint64, txs []string) map[string]interface{} {
	return map[string]interface{}{
		"number":           hexutil.EncodeUint64(number),
		"hash":             "0x" + strings.Repeat("cd", 32),
		"parentHash":       "0x" + strings.Repeat("ef", 32),
		"sha3Uncles":       "0x" + strings.Repeat("00", 32),
		"miner":            "0x0000000000000000000000000000000000000000",
		"stateRoot":        "0x" + strings.Repeat("00", 32),
		"transactionsRoot": "0x" + strings.Repeat("00", 32),
		"receiptsRoot":     "0x" + strings.Repeat("00", 32),
		"logsBloom":        emptyBloom,
		"difficulty":       "0x0",
		"gasLimit":         "0x1c9c380",
		"gasUsed":          "0xe4e1c0",
		"timestamp":        hexutil.EncodeUint64(timestamp),
		"extraData":        "0x",
		"baseFeePerGas":    "0x3b9aca00",
		"transactions":     txs,
	}
}

// chain serves a tiny chain: blocks 0..16, the mined testTxHash and the
// pending pendingTx.
func chain(t *testing.T) rpcHandler {
	return func(method string, params []json.RawMessage) (interface{}, bool) {
		switch method {
		case "eth_getTransactionByHash":
			var h string
			require.NoError(t, json.Unmarshal(params[0], &h))
			switch h {
			case testTxHash:
				return txFixture(testTxHash, true), true
			case pendingTx:
				return txFixture(pendingTx, false), true
			}
			return nil, true
		case "eth_getTransactionReceipt":
			var h string
			require.NoError(t, json.Unmarshal(params[0], &h))
			if h == testTxHash {
				return receiptFixture(testTxHash, "0x1"), true
			}
			return nil, true
		case "eth_getBlockByNumber":
			var tag string
			require.NoError(t, json.Unmarshal(params[0], &tag))
			number := uint64(16)
			if tag != "latest" {
				n, err := hexutil.DecodeUint64(tag)
				require.NoError(t, err)
				number = n
			}
			txs := []string{}
			for i := uint64(0); i < 3; i++ {
				txs = append(txs, common.BigToHash(new(big.Int).SetUint64(number*10+i)).Hex())
			}
			return blockFixture(number, 1700000000+number*12, txs), true
		case "eth_blockNumber":
			return "0x10", true
		case "eth_gasPrice":
			return "0x4a817c800", true
		}
		return nil, false
	}
}

func newMockedReader(t *testing.T, nodes map[string]string, opts ...Option) (*EthReader, *httpmock.MockTransport) {
	transport := httpmock.NewMockTransport()
	client := &http.Client{Transport: transport}
	return NewEthReader(nodes, append(opts, WithHTTPClient(client))...), transport
}

func TestTxInfoFromHashDone(t *testing.T) {
	r, transport := newMockedReader(t, map[string]string{"good": goodNode})
	transport.RegisterResponder("POST", goodNode, rpcResponder(chain(t)))

	info, err := r.TxInfoFromHash(context.Background(), testTxHash)
	require.NoError(t, err)
	assert.Equal(t, txcommon.TxStatusDone, info.Status)
	require.NotNil(t, info.Tx)
	require.NotNil(t, info.Receipt)
	assert.Equal(t, "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045", info.Tx.Sender())
	assert.Equal(t, uint64(21000), info.Receipt.GasUsed)
	assert.Equal(t, int64(1000000000), info.GasPrice().Int64())
	assert.Equal(t, uint64(1700000000+16*12), info.Timestamp)
}

func TestTxInfoFromHashReverted(t *testing.T) {
	r, transport := newMockedReader(t, map[string]string{"good": goodNode})
	handler := chain(t)
	transport.RegisterResponder("POST", goodNode, rpcResponder(func(method string, params []json.RawMessage) (interface{}, bool) {
		if method == "eth_getTransactionReceipt" {
			return receiptFixture(testTxHash, "0x0"), true
		}
		return handler(method, params)
	}))

	info, err := r.TxInfoFromHash(context.Background(), testTxHash)
	require.NoError(t, err)
	assert.Equal(t, txcommon.TxStatusReverted, info.Status)
}

func TestTxInfoFromHashPendingAndNotFound(t *testing.T) {
	r, transport := newMockedReader(t, map[string]string{"good": goodNode})
	transport.RegisterResponder("POST", goodNode, rpcResponder(chain(t)))

	info, err := r.TxInfoFromHash(context.Background(), pendingTx)
	require.NoError(t, err)
	assert.Equal(t, txcommon.TxStatusPending, info.Status)
	assert.Nil(t, info.Receipt)

	missing := "0x" + strings.Repeat("99", 32)
	info, err = r.TxInfoFromHash(context.Background(), missing)
	require.NoError(t, err)
	assert.Equal(t, txcommon.TxStatusNotFound, info.Status)
}

func TestReaderRacesPastFailingNode(t *testing.T) {
	r, transport := newMockedReader(t, map[string]string{"bad": badNode, "good": goodNode})
	transport.RegisterResponder("POST", badNode, httpmock.NewStringResponder(500, "boom"))
	transport.RegisterResponder("POST", goodNode, rpcResponder(chain(t)))

	block, err := r.CurrentBlock(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(16), block)

	price, err := r.SuggestedGasPrice(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(20000000000), price.Int64())
}

func TestReaderJoinsErrorsWhenAllNodesFail(t *testing.T) {
	r, transport := newMockedReader(t, map[string]string{"bad1": badNode, "bad2": badNode + "/2"})
	transport.RegisterResponder("POST", badNode, httpmock.NewStringResponder(500, "boom"))
	transport.RegisterResponder("POST", badNode+"/2", httpmock.NewStringResponder(502, "gateway"))

	_, err := r.CurrentBlock(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad1")
	assert.Contains(t, err.Error(), "bad2")

	info, err := r.TxInfoFromHash(context.Background(), testTxHash)
	require.Error(t, err)
	assert.Equal(t, txcommon.TxStatusError, info.Status)
}

func TestBlockByNumberReadsHashes(t *testing.T) {
	r, transport := newMockedReader(t, map[string]string{"good": goodNode})
	transport.RegisterResponder("POST", goodNode, rpcResponder(chain(t)))

	block, err := r.BlockByNumber(context.Background(), -1)
	require.NoError(t, err)
	assert.Equal(t, uint64(16), uint64(block.Number))
	assert.Len(t, block.Transactions, 3)
	assert.Equal(t, uint64(15000000), uint64(block.GasUsed))
	require.NotNil(t, block.BaseFee)
	assert.Equal(t, int64(1000000000), block.BaseFee.ToInt().Int64())
}

func TestRecentTransactions(t *testing.T) {
	r, transport := newMockedReader(t, map[string]string{"good": goodNode})
	transport.RegisterResponder("POST", goodNode, rpcResponder(chain(t)))

	txs := r.RecentTransactions(context.Background(), 10)
	// 5 blocks, 2 hashes each
	assert.Len(t, txs, 10)

	txs = r.RecentTransactions(context.Background(), 3)
	assert.Len(t, txs, 3)
}

func TestRecentTransactionsSwallowsErrors(t *testing.T) {
	r, transport := newMockedReader(t, map[string]string{"bad": badNode})
	transport.RegisterResponder("POST", badNode, httpmock.NewStringResponder(500, "boom"))

	txs := r.RecentTransactions(context.Background(), 10)
	assert.NotNil(t, txs)
	assert.Empty(t, txs)
}

func TestBlockTimestampIsCached(t *testing.T) {
	c := cache.New(filepath.Join(t.TempDir(), "cache.json"))
	var headerCalls atomic.Int32
	handler := chain(t)
	r, transport := newMockedReader(t, map[string]string{"good": goodNode}, WithCache(c, 1))
	transport.RegisterResponder("POST", goodNode, rpcResponder(func(method string, params []json.RawMessage) (interface{}, bool) {
		if method == "eth_getBlockByNumber" {
			headerCalls.Add(1)
		}
		return handler(method, params)
	}))

	for i := 0; i < 2; i++ {
		info, err := r.TxInfoFromHash(context.Background(), testTxHash)
		require.NoError(t, err)
		assert.Equal(t, uint64(1700000000+16*12), info.Timestamp)
	}
	assert.Equal(t, int32(1), headerCalls.Load())
}

// withBlockTime rewrites every block timestamp served by handler to base+number.
func withBlockTime(handler rpcHandler, base uint64) rpcHandler {
	return func(method string, params []json.RawMessage) (interface{}, bool) {
		result, ok := handler(method, params)
		if block, isBlock := result.(map[string]interface{}); isBlock && method == "eth_getBlockByNumber" {
			number, err := hexutil.DecodeUint64(block["number"].(string))
			if err == nil {
				block["timestamp"] = hexutil.EncodeUint64(base + number)
			}
		}
		return result, ok
	}
}

func TestBlockTimestampCacheIsPerChain(t *testing.T) {
	c := cache.New(filepath.Join(t.TempDir(), "cache.json"))
	const otherNode = "https://other.node.test"

	mainnet, transport := newMockedReader(t, map[string]string{"good": goodNode}, WithCache(c, 1))
	transport.RegisterResponder("POST", goodNode, rpcResponder(withBlockTime(chain(t), 1600000000)))
	sepolia, transport := newMockedReader(t, map[string]string{"other": otherNode}, WithCache(c, 11155111))
	transport.RegisterResponder("POST", otherNode, rpcResponder(withBlockTime(chain(t), 1700000000)))

	assert.Equal(t, uint64(1600000100), mainnet.blockTimestamp(context.Background(), big.NewInt(100)))
	assert.Equal(t, uint64(1700000100), sepolia.blockTimestamp(context.Background(), big.NewInt(100)))
	assert.Equal(t, uint64(1600000100), mainnet.blockTimestamp(context.Background(), big.NewInt(100)))
	assert.Len(t, c.Keys("block_"), 2)
}

func TestCachedTimestampsAreBounded(t *testing.T) {
	c := cache.New(filepath.Join(t.TempDir(), "cache.json"))
	require.NoError(t, c.SetUint64(timestampCacheKey(11155111, 1), 1))
	r, transport := newMockedReader(t, map[string]string{"good": goodNode}, WithCache(c, 1))
	transport.RegisterResponder("POST", goodNode, rpcResponder(chain(t)))
	r.maxTimestamps = 3

	for _, n := range []int64{12, 3, 9, 100, 4} {
		r.blockTimestamp(context.Background(), big.NewInt(n))
	}
	assert.Equal(t, []string{
		timestampCacheKey(1, 100),
		timestampCacheKey(1, 12),
		timestampCacheKey(1, 4),
	}, c.Keys(timestampKeyPrefix(1)))
	assert.Len(t, c.Keys(timestampKeyPrefix(11155111)), 1)
}

func TestNotFoundSurvivesRace(t *testing.T) {
	r, transport := newMockedReader(t, map[string]string{"good": goodNode})
	transport.RegisterResponder("POST", goodNode, rpcResponder(chain(t)))

	_, err := r.TransactionByHash(context.Background(), "0x"+strings.Repeat("99", 32))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ethereum.NotFound))
}
