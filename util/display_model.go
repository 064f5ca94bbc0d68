package util

import "github.com/txlens/txlens/ui"

// SummaryDisplay is the view-model for the transaction summary card.
// StyledText fields marshal as plain strings.
type SummaryDisplay struct {
	Hash         string        `json:"hash"`
	Network      string        `json:"network"`
	Status       ui.StyledText `json:"status"`
	Type         string        `json:"type"`
	Summary      string        `json:"summary"`
	WhatHappened string        `json:"what_happened"`
	Block        string        `json:"block"`
	Timestamp    string        `json:"timestamp"`
	From         ui.StyledText `json:"from"`
	To           ui.StyledText `json:"to"`
	Value        string        `json:"value"`
	Protocol     string        `json:"protocol,omitempty"`

	GasUsed       string        `json:"gas_used"`
	GasLimit      string        `json:"gas_limit"`
	GasPrice      string        `json:"gas_price"`
	GasFee        string        `json:"gas_fee"`
	GasEfficiency ui.StyledText `json:"gas_efficiency"`

	ExplorerURL string `json:"explorer_url,omitempty"`
	Error       string `json:"error,omitempty"`
}

type FunctionCallDisplay struct {
	Function    string `json:"function"`
	Signature   string `json:"signature"`
	Protocol    string `json:"protocol"`
	Description string `json:"description"`
}

type TokenTransferDisplay struct {
	Token    string `json:"token"`
	From     string `json:"from"`
	To       string `json:"to"`
	Amount   string `json:"amount"`
	USDValue string `json:"usd_value"`
}

type BalanceChangeDisplay struct {
	Account  string        `json:"account"`
	Token    string        `json:"token"`
	Change   ui.StyledText `json:"change"`
	USDValue string        `json:"usd_value"`
}

type FlowStepDisplay struct {
	Step        int    `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Details     string `json:"details"`
}

// FlowDisplay is the five step narrative plus the cost footer.
type FlowDisplay struct {
	Steps     []FlowStepDisplay `json:"steps"`
	TotalCost string            `json:"total_cost"`
	GasRating ui.StyledText     `json:"gas_rating"`
}

// MEVDisplay is the risk panel. Profit and Explanation are empty when
// nothing was detected.
type MEVDisplay struct {
	Detected       bool          `json:"detected"`
	Icon           string        `json:"icon"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Confidence     string        `json:"confidence"`
	Profit         string        `json:"profit,omitempty"`
	Risk           ui.StyledText `json:"risk"`
	Priority       string        `json:"priority"`
	Explanation    string        `json:"explanation,omitempty"`
	ProtectionNote string        `json:"protection_note"`
}

// ExplanationDisplay is everything printed for one analyzed transaction.
type ExplanationDisplay struct {
	Summary        SummaryDisplay         `json:"summary"`
	FunctionCalls  []FunctionCallDisplay  `json:"function_calls,omitempty"`
	TokenTransfers []TokenTransferDisplay `json:"token_transfers,omitempty"`
	BalanceChanges []BalanceChangeDisplay `json:"balance_changes,omitempty"`
	Flow           FlowDisplay            `json:"flow"`
	MEV            *MEVDisplay            `json:"mev,omitempty"`
	Education      []string               `json:"education,omitempty"`
}

type NetStatsDisplay struct {
	Network    string        `json:"network"`
	Block      string        `json:"block"`
	BlockAge   string        `json:"block_age"`
	GasPrice   string        `json:"gas_price"`
	BaseFee    string        `json:"base_fee,omitempty"`
	Difficulty string        `json:"difficulty"`
	TPS        string        `json:"tps"`
	TxCount    string        `json:"tx_count"`
	Health     ui.StyledText `json:"health"`
	UpdatedAt  string        `json:"updated_at"`
}

type HistoryRowDisplay struct {
	Index      int           `json:"index"`
	Hash       string        `json:"hash"`
	Status     ui.StyledText `json:"status"`
	Type       string        `json:"type"`
	Summary    string        `json:"summary"`
	AnalyzedAt string        `json:"analyzed_at"`
}

type WhoisRowDisplay struct {
	Address  string `json:"address"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Category string `json:"category,omitempty"`
	Symbol   string `json:"symbol,omitempty"`
}

type ProtocolGroupDisplay struct {
	Category  string            `json:"category"`
	Protocols []WhoisRowDisplay `json:"protocols"`
}
