package txanalyzer

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	txcommon "github.com/txlens/txlens/common"
	"github.com/txlens/txlens/util/addrbook"
)

// TransferTopic is the ERC-20/ERC-721 Transfer(address,address,uint256)
// event signature. ERC-20 logs carry 3 topics, ERC-721 logs carry 4.
var TransferTopic = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

func isTransferLog(l *types.Log, topics int) bool {
	return l != nil && len(l.Topics) == topics && l.Topics[0] == TransferTopic
}

func topicAddress(topic common.Hash) common.Address {
	return common.BytesToAddress(topic.Bytes()[12:])
}

func parseTokenTransfers(logs []*types.Log) []txcommon.TokenTransfer {
	transfers := []txcommon.TokenTransfer{}
	for _, l := range logs {
		if !isTransferLog(l, 3) {
			continue
		}
		if len(l.Data) != 32 {
			continue
		}
		amount := new(big.Int).SetBytes(l.Data)
		token := addrbook.TokenInfo(l.Address.Hex())
		transfers = append(transfers, txcommon.TokenTransfer{
			From:         topicAddress(l.Topics[1]).Hex(),
			To:           topicAddress(l.Topics[2]).Hex(),
			Amount:       txcommon.FormatUnits(amount, token.Decimals),
			RawAmount:    amount,
			TokenAddress: l.Address.Hex(),
			TokenName:    token.Name,
			TokenSymbol:  token.Symbol,
			Decimals:     token.Decimals,
			Description:  fmt.Sprintf("%s transfer", token.Symbol),
		})
	}
	return transfers
}
