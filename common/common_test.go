package common

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
)

func TestFormatUnits(t *testing.T) {
	cases := []struct {
		value    *big.Int
		decimals uint64
		want     string
	}{
		{big.NewInt(1500000), 6, "1.5"},
		{new(big.Int).Mul(big.NewInt(2), big.NewInt(1e18)), 18, "2.0"},
		{big.NewInt(1), 18, "0.000000000000000001"},
		{big.NewInt(0), 18, "0.0"},
		{nil, 18, "0.0"},
		{big.NewInt(12345), 0, "12345.0"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatUnits(c.value, c.decimals))
	}
}

func TestBigToFloat(t *testing.T) {
	assert.Equal(t, 1.1, BigToFloat(big.NewInt(1100), 3))
	assert.Equal(t, 11.0, BigToFloat(big.NewInt(1100), 2))
	assert.Equal(t, 0.0, BigToFloat(nil, 18))
	assert.Equal(t, 50.0, WeiToGwei(GweiToWei(50)))
}

func TestReadableNumberAndShortAddress(t *testing.T) {
	assert.Equal(t, "21,000", ReadableNumber(21000))
	assert.Equal(t, "7", ReadableNumber(7))
	assert.Equal(t,
		"0x7a250d...59F2488D",
		ShortAddress("0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D"),
	)
	assert.Equal(t, "0xabc", ShortAddress("0xabc"))
}

func TestTxInfoGasPrice(t *testing.T) {
	tx := &Transaction{Transaction: types.NewTx(&types.LegacyTx{GasPrice: big.NewInt(30)})}
	info := &TxInfo{Tx: tx, Receipt: &types.Receipt{GasUsed: 21000}}
	assert.Equal(t, big.NewInt(30), info.GasPrice())
	assert.Equal(t, big.NewInt(630000), info.GasCost())

	info.Receipt.EffectiveGasPrice = big.NewInt(20)
	assert.Equal(t, big.NewInt(20), info.GasPrice())

	empty := &TxInfo{}
	assert.Equal(t, big.NewInt(0), empty.GasPrice())
	assert.Equal(t, big.NewInt(0), empty.GasCost())
}

func TestTokenTransferDecimalAmount(t *testing.T) {
	cases := []struct {
		name     string
		transfer TokenTransfer
		want     string
	}{
		{"raw amount", TokenTransfer{RawAmount: big.NewInt(1500000), Decimals: 6, Amount: "9"}, "1.5"},
		{"formatted fallback", TokenTransfer{Amount: "1,500.25", Decimals: 6}, "1500.25"},
		{"nothing usable", TokenTransfer{Amount: "n/a"}, "0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.transfer.DecimalAmount().String())
		})
	}
}
