package common

import (
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

const (
	TxStatusDone     = "done"
	TxStatusReverted = "reverted"
	TxStatusPending  = "pending"
	TxStatusNotFound = "notfound"
	TxStatusError    = "error"
)

type TxInfo struct {
	Status  string
	Tx      *Transaction
	Receipt *types.Receipt
	// Timestamp of the including block, 0 when unknown.
	Timestamp uint64
}

// GasPrice is the price the sender actually paid: the receipt's effective
// gas price when the node reports it, the tx gas price otherwise.
func (ti *TxInfo) GasPrice() *big.Int {
	if ti.Receipt != nil && ti.Receipt.EffectiveGasPrice != nil {
		return ti.Receipt.EffectiveGasPrice
	}
	if ti.Tx != nil && ti.Tx.Transaction != nil && ti.Tx.GasPrice() != nil {
		return ti.Tx.GasPrice()
	}
	return big.NewInt(0)
}

func (ti *TxInfo) GasCost() *big.Int {
	if ti.Receipt == nil {
		return big.NewInt(0)
	}
	return big.NewInt(0).Mul(
		new(big.Int).SetUint64(ti.Receipt.GasUsed),
		ti.GasPrice(),
	)
}

// Transaction is a node transaction plus the fields the node adds on top of
// the signed payload (sender and inclusion block).
type Transaction struct {
	*types.Transaction
	Extra TxExtraInfo `json:"extra"`
}

type TxExtraInfo struct {
	BlockNumber *string         `json:"blockNumber,omitempty"`
	BlockHash   *common.Hash    `json:"blockHash,omitempty"`
	From        *common.Address `json:"from,omitempty"`
}

func (tx *Transaction) UnmarshalJSON(msg []byte) error {
	if err := json.Unmarshal(msg, &tx.Transaction); err != nil {
		return err
	}
	return json.Unmarshal(msg, &tx.Extra)
}

func (tx *Transaction) Sender() string {
	if tx.Extra.From == nil {
		return ""
	}
	return tx.Extra.From.Hex()
}

func (tx *Transaction) IsPending() bool {
	return tx.Extra.BlockNumber == nil
}

// BlockSummary is the subset of eth_getBlockByNumber (without full
// transactions) that txlens reads.
type BlockSummary struct {
	Number       hexutil.Uint64 `json:"number"`
	Hash         common.Hash    `json:"hash"`
	ParentHash   common.Hash    `json:"parentHash"`
	Timestamp    hexutil.Uint64 `json:"timestamp"`
	Difficulty   *hexutil.Big   `json:"difficulty"`
	BaseFee      *hexutil.Big   `json:"baseFeePerGas"`
	GasUsed      hexutil.Uint64 `json:"gasUsed"`
	GasLimit     hexutil.Uint64 `json:"gasLimit"`
	Transactions []common.Hash  `json:"transactions"`
}
