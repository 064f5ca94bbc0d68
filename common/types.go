package common

import (
	"math/big"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Address is a hex address enriched with what we know about it.
type Address struct {
	Address string `json:"address"`
	Desc    string `json:"desc"`
	Decimal int64  `json:"decimal,omitempty"`
}

type TxType string

const (
	TxTypeETHTransfer         TxType = "ETH_TRANSFER"
	TxTypeDEXSwap             TxType = "DEX_SWAP"
	TxTypeLending             TxType = "LENDING"
	TxTypeStaking             TxType = "STAKING"
	TxTypeBridge              TxType = "BRIDGE"
	TxTypeNFTTransfer         TxType = "NFT_TRANSFER"
	TxTypeTokenTransfer       TxType = "TOKEN_TRANSFER"
	TxTypeContractInteraction TxType = "CONTRACT_INTERACTION"
	TxTypeUnknown             TxType = "UNKNOWN"
)

type ChangeType string

const (
	ChangeIncrease ChangeType = "increase"
	ChangeDecrease ChangeType = "decrease"
)

type MEVType string

const (
	MEVArbitrage   MEVType = "arbitrage"
	MEVSandwich    MEVType = "sandwich"
	MEVLiquidation MEVType = "liquidation"
	MEVFrontrun    MEVType = "frontrun"
	MEVNone        MEVType = "none"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// FunctionCall is the top level call of a transaction. Arguments are never
// decoded, only the 4-byte selector is looked up.
type FunctionCall struct {
	Function    string        `json:"function"`
	Signature   string        `json:"signature"`
	Arguments   []interface{} `json:"arguments"`
	Protocol    string        `json:"protocol"`
	Description string        `json:"description"`
}

type TokenTransfer struct {
	From         string   `json:"from"`
	To           string   `json:"to"`
	Amount       string   `json:"amount"`
	RawAmount    *big.Int `json:"raw_amount"`
	TokenAddress string   `json:"token_address"`
	TokenName    string   `json:"token_name"`
	TokenSymbol  string   `json:"token_symbol"`
	Decimals     uint64   `json:"decimals"`
	Description  string   `json:"description"`
}

// DecimalAmount is RawAmount scaled by Decimals. Entries saved without a raw
// amount fall back to the formatted Amount, then to zero.
func (t TokenTransfer) DecimalAmount() decimal.Decimal {
	if t.RawAmount != nil {
		return decimal.NewFromBigInt(t.RawAmount, -int32(t.Decimals))
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(t.Amount, ",", ""))
	if err != nil {
		return decimal.Zero
	}
	return d
}

type BalanceChange struct {
	Account     string     `json:"account"`
	PreBalance  float64    `json:"pre_balance"`
	PostBalance float64    `json:"post_balance"`
	Change      float64    `json:"change"`
	ChangeType  ChangeType `json:"change_type"`
	USDValue    string     `json:"usd_value"`
	TokenType   string     `json:"token_type"`
}

type MEVAnalysis struct {
	IsMEV       bool      `json:"is_mev"`
	MEVType     MEVType   `json:"mev_type"`
	Confidence  int       `json:"confidence"`
	Profit      float64   `json:"profit"`
	Description string    `json:"description"`
	RiskLevel   RiskLevel `json:"risk_level"`
}

// Explanation is everything txlens derives from a transaction and its
// receipt.
type Explanation struct {
	Hash        string    `json:"hash"`
	Network     string    `json:"network"`
	Success     bool      `json:"success"`
	Summary     string    `json:"summary"`
	Timestamp   time.Time `json:"timestamp"`
	BlockNumber uint64    `json:"block_number"`

	GasUsed       uint64   `json:"gas_used"`
	GasLimit      uint64   `json:"gas_limit"`
	GasPrice      *big.Int `json:"gas_price"`
	GasFee        float64  `json:"gas_fee"`
	GasEfficiency string   `json:"gas_efficiency"`

	From             string   `json:"from"`
	FromLabel        string   `json:"from_label,omitempty"`
	To               string   `json:"to,omitempty"`
	ToLabel          string   `json:"to_label,omitempty"`
	ContractCreation bool     `json:"contract_creation,omitempty"`
	Value            *big.Int `json:"value"`
	ValueInEth       float64  `json:"value_in_eth"`

	TransactionType TxType `json:"transaction_type"`
	Protocol        string `json:"protocol,omitempty"`

	FunctionCalls      []FunctionCall  `json:"function_calls"`
	TokenTransfers     []TokenTransfer `json:"token_transfers"`
	BalanceChanges     []BalanceChange `json:"balance_changes"`
	EducationalContent []string        `json:"educational_content"`

	Error       string       `json:"error,omitempty"`
	MEVAnalysis *MEVAnalysis `json:"mev_analysis,omitempty"`
}
