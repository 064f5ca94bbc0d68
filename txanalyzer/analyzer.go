package txanalyzer

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	txcommon "github.com/txlens/txlens/common"
	"github.com/txlens/txlens/util/addrbook"
)

type TxAnalyzer struct {
	ctx *AnalysisContext
}

func NewGenericAnalyzer(ctx *AnalysisContext) *TxAnalyzer {
	return &TxAnalyzer{ctx: ctx}
}

func (self *TxAnalyzer) Context() *AnalysisContext {
	return self.ctx
}

// Analyze turns a mined transaction and its receipt into an Explanation.
func (self *TxAnalyzer) Analyze(txinfo *txcommon.TxInfo) (*txcommon.Explanation, error) {
	if txinfo == nil || txinfo.Tx == nil || txinfo.Tx.Transaction == nil {
		return nil, ErrTxNotFound
	}
	if txinfo.Receipt == nil {
		return nil, ErrTxPending
	}
	tx := txinfo.Tx
	receipt := txinfo.Receipt

	result := &txcommon.Explanation{
		Hash:        tx.Hash().Hex(),
		Success:     receipt.Status == types.ReceiptStatusSuccessful || len(receipt.PostState) == len(common.Hash{}),
		BlockNumber: receiptBlock(txinfo),
		GasUsed:     receipt.GasUsed,
		GasLimit:    tx.Gas(),
		GasPrice:    txinfo.GasPrice(),
		From:        tx.Sender(),
		Value:       tx.Value(),
	}
	if self.ctx.Network != nil {
		result.Network = self.ctx.Network.GetName()
	}
	if txinfo.Timestamp > 0 {
		result.Timestamp = time.Unix(int64(txinfo.Timestamp), 0).UTC()
	} else {
		result.Timestamp = self.ctx.now().UTC()
	}
	if tx.To() != nil {
		result.To = tx.To().Hex()
	} else {
		result.ContractCreation = true
	}
	result.FromLabel = self.ctx.Label(result.From)
	result.ToLabel = self.ctx.Label(result.To)

	result.GasFee = txcommon.BigToFloat(txinfo.GasCost(), 18)
	result.ValueInEth = txcommon.BigToFloat(result.Value, 18)
	result.GasEfficiency = GasEfficiency(result.GasUsed, result.GasLimit)

	result.FunctionCalls = parseFunctionCalls(tx.Data(), result.To)
	result.TokenTransfers = parseTokenTransfers(receipt.Logs)
	result.TransactionType = classify(tx.Data(), result.Value, result.To, receipt.Logs)
	if result.To != "" {
		result.Protocol = addrbook.ProtocolName(result.To)
	}
	result.Summary = summarize(
		result.TransactionType,
		len(result.FunctionCalls),
		len(result.TokenTransfers),
		result.ValueInEth,
	)
	result.BalanceChanges = parseBalanceChanges(result.To, result.Value, result.TokenTransfers)
	result.EducationalContent = educationalContent(result.TransactionType)

	mev := AnalyzeMEV(MEVInput{
		GasPrice:       result.GasPrice,
		TxType:         result.TransactionType,
		TokenTransfers: len(result.TokenTransfers),
		FunctionCalls:  len(result.FunctionCalls),
	}, self.ctx.rand)
	result.MEVAnalysis = &mev

	if !result.Success {
		result.Error = "Transaction reverted"
	}

	self.ctx.Logger.Debug("analyzed transaction",
		zap.String("hash", result.Hash),
		zap.String("type", string(result.TransactionType)),
		zap.Int("token_transfers", len(result.TokenTransfers)),
		zap.Bool("mev", mev.IsMEV),
	)
	return result, nil
}

func receiptBlock(txinfo *txcommon.TxInfo) uint64 {
	if txinfo.Receipt.BlockNumber == nil {
		return 0
	}
	return txinfo.Receipt.BlockNumber.Uint64()
}
