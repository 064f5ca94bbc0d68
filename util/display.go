package util

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	txcommon "github.com/txlens/txlens/common"
	"github.com/txlens/txlens/history"
	"github.com/txlens/txlens/netstats"
	"github.com/txlens/txlens/networks"
	"github.com/txlens/txlens/txanalyzer"
	"github.com/txlens/txlens/ui"
	"github.com/txlens/txlens/util/addrbook"
)

const timeLayout = "2006-01-02 15:04:05 UTC"

// ── Severity helpers ─────────────────────────────────────────────────────────

// styledAddress shows the label next to the address. Known addresses are
// green, unknown ones yellow.
func styledAddress(addr, label string) ui.StyledText {
	if addr == "" {
		return ui.StyledText{Text: "Contract Creation", Severity: ui.SeverityWarn}
	}
	if label == "" {
		return ui.StyledText{Text: addr, Severity: ui.SeverityWarn}
	}
	return ui.StyledText{Text: fmt.Sprintf("%s (%s)", addr, label), Severity: ui.SeveritySuccess}
}

func styledStatus(success bool) ui.StyledText {
	if success {
		return ui.StyledText{Text: "✓ Success", Severity: ui.SeveritySuccess}
	}
	return ui.StyledText{Text: "✗ Failed", Severity: ui.SeverityError}
}

func styledRisk(r txcommon.RiskLevel) ui.StyledText {
	switch r {
	case txcommon.RiskHigh:
		return ui.StyledText{Text: string(r), Severity: ui.SeverityError}
	case txcommon.RiskMedium:
		return ui.StyledText{Text: string(r), Severity: ui.SeverityWarn}
	}
	return ui.StyledText{Text: string(r), Severity: ui.SeveritySuccess}
}

func typeLabel(t txcommon.TxType) string {
	return strings.ReplaceAll(string(t), "_", " ")
}

func gweiString(wei *big.Int) string {
	return fmt.Sprintf("%.2f Gwei", txcommon.WeiToGwei(wei))
}

// whatHappened is the plain language paragraph under the summary.
func whatHappened(e *txcommon.Explanation) string {
	switch e.TransactionType {
	case txcommon.TxTypeETHTransfer:
		return fmt.Sprintf("This transaction transferred %.4f ETH from one address to another. "+
			"The transaction cost %.6f ETH in gas fees, which covers network processing and validation.",
			e.ValueInEth, e.GasFee)
	case txcommon.TxTypeDEXSwap:
		return fmt.Sprintf("A token swap was executed through a decentralized exchange. "+
			"This transaction involved %d token transfers and cost %.6f ETH in gas fees.",
			len(e.TokenTransfers), e.GasFee)
	}
	return fmt.Sprintf("This transaction modified blockchain state and cost %.6f ETH in gas fees. "+
		"The cost covers computation and storage operations on the Ethereum network.", e.GasFee)
}

// ── Build phase (pure: no UI side-effects) ──────────────────────────────────

func buildSummaryDisplay(e *txcommon.Explanation, network networks.Network) SummaryDisplay {
	symbol := network.GetNativeTokenSymbol()
	value := txcommon.FormatEther(e.Value) + " " + symbol
	if e.Value != nil && e.Value.Sign() > 0 {
		value += " (" + txanalyzer.USDValue("ETH", decimal.NewFromFloat(e.ValueInEth)) + ")"
	}
	d := SummaryDisplay{
		Hash:         e.Hash,
		Network:      network.GetName(),
		Status:       styledStatus(e.Success),
		Type:         typeLabel(e.TransactionType),
		Summary:      e.Summary,
		WhatHappened: whatHappened(e),
		Block:        txcommon.ReadableNumber(e.BlockNumber),
		Timestamp:    e.Timestamp.UTC().Format(timeLayout),
		From:         styledAddress(e.From, e.FromLabel),
		To:           styledAddress(e.To, e.ToLabel),
		Value:        value,
		Protocol:     e.Protocol,
		GasUsed:      txcommon.ReadableNumber(e.GasUsed),
		GasLimit:     txcommon.ReadableNumber(e.GasLimit),
		GasPrice:     gweiString(e.GasPrice),
		GasFee:       fmt.Sprintf("%.6f %s", e.GasFee, symbol),
		GasEfficiency: ui.StyledText{
			Text:     e.GasEfficiency,
			Severity: ui.SeverityInfo,
		},
		Error: e.Error,
	}
	if network.GetBlockExplorerURL() != "" {
		d.ExplorerURL = network.TxURL(e.Hash)
	}
	return d
}

func buildFunctionCallDisplays(calls []txcommon.FunctionCall) []FunctionCallDisplay {
	result := make([]FunctionCallDisplay, 0, len(calls))
	for _, c := range calls {
		result = append(result, FunctionCallDisplay{
			Function:    c.Function,
			Signature:   c.Signature,
			Protocol:    c.Protocol,
			Description: c.Description,
		})
	}
	return result
}

func buildTokenTransferDisplays(transfers []txcommon.TokenTransfer) []TokenTransferDisplay {
	result := make([]TokenTransferDisplay, 0, len(transfers))
	for _, t := range transfers {
		amount := t.DecimalAmount()
		result = append(result, TokenTransferDisplay{
			Token:    fmt.Sprintf("%s (%s)", t.TokenName, t.TokenSymbol),
			From:     txcommon.ShortAddress(t.From),
			To:       txcommon.ShortAddress(t.To),
			Amount:   t.Amount + " " + t.TokenSymbol,
			USDValue: txanalyzer.USDValue(t.TokenSymbol, amount),
		})
	}
	return result
}

func buildBalanceChangeDisplays(changes []txcommon.BalanceChange) []BalanceChangeDisplay {
	result := make([]BalanceChangeDisplay, 0, len(changes))
	for _, c := range changes {
		amount := decimal.NewFromFloat(c.Change)
		change := ui.StyledText{Text: "+" + amount.String(), Severity: ui.SeveritySuccess}
		if c.ChangeType == txcommon.ChangeDecrease {
			change = ui.StyledText{Text: "-" + amount.Abs().String(), Severity: ui.SeverityError}
		}
		result = append(result, BalanceChangeDisplay{
			Account:  txcommon.ShortAddress(c.Account),
			Token:    c.TokenType,
			Change:   change,
			USDValue: c.USDValue,
		})
	}
	return result
}

func buildFlowDisplay(e *txcommon.Explanation, symbol string) FlowDisplay {
	d := FlowDisplay{
		TotalCost: fmt.Sprintf("%.6f %s", e.GasFee, symbol),
	}
	for i, s := range txanalyzer.Flow(e) {
		d.Steps = append(d.Steps, FlowStepDisplay{
			Step:        i + 1,
			Title:       s.Title,
			Description: s.Description,
			Details:     s.Details,
		})
	}
	rating := txanalyzer.GasRating(e.GasFee)
	severity := ui.SeveritySuccess
	if rating == "Fair" {
		severity = ui.SeverityWarn
	}
	d.GasRating = ui.StyledText{Text: rating, Severity: severity}
	return d
}

func buildMEVDisplay(e *txcommon.Explanation) *MEVDisplay {
	m := e.MEVAnalysis
	if m == nil {
		return nil
	}
	d := &MEVDisplay{
		Detected:       m.IsMEV,
		Icon:           txanalyzer.MEVTypeIcon(m.MEVType),
		Title:          "No MEV Activity Detected",
		Description:    m.Description,
		Confidence:     fmt.Sprintf("%d%%", m.Confidence),
		Risk:           styledRisk(m.RiskLevel),
		Priority:       txanalyzer.PriorityLevel(e.GasPrice),
		ProtectionNote: txanalyzer.MEVProtectionNote,
	}
	if m.IsMEV {
		d.Title = txanalyzer.MEVTypeTitle(m.MEVType) + " Detected"
		d.Profit = "$" + decimal.NewFromFloat(m.Profit).StringFixed(2)
		d.Explanation = txanalyzer.MEVTypeExplanation(m.MEVType)
	}
	return d
}

func buildExplanationDisplay(e *txcommon.Explanation, network networks.Network) *ExplanationDisplay {
	return &ExplanationDisplay{
		Summary:        buildSummaryDisplay(e, network),
		FunctionCalls:  buildFunctionCallDisplays(e.FunctionCalls),
		TokenTransfers: buildTokenTransferDisplays(e.TokenTransfers),
		BalanceChanges: buildBalanceChangeDisplays(e.BalanceChanges),
		Flow:           buildFlowDisplay(e, network.GetNativeTokenSymbol()),
		MEV:            buildMEVDisplay(e),
		Education:      e.EducationalContent,
	}
}

func healthIcon(h netstats.Health) string {
	switch h {
	case netstats.HealthExcellent:
		return "🟢"
	case netstats.HealthGood:
		return "🔵"
	case netstats.HealthFair:
		return "🟡"
	case netstats.HealthPoor:
		return "🔴"
	}
	return "⚪"
}

func buildNetStatsDisplay(s *netstats.Stats, network networks.Network) *NetStatsDisplay {
	d := &NetStatsDisplay{
		Network:    network.GetName(),
		Block:      txcommon.ReadableNumber(s.BlockNumber),
		BlockAge:   s.BlockAge.Round(time.Second).String(),
		GasPrice:   gweiString(s.GasPrice),
		Difficulty: "0.00T",
		TPS:        fmt.Sprintf("%.2f", s.TPS),
		TxCount:    txcommon.ReadableNumber(uint64(s.TxCount)),
		UpdatedAt:  s.UpdatedAt.UTC().Format(timeLayout),
	}
	if s.BaseFee != nil {
		d.BaseFee = gweiString(s.BaseFee)
	}
	if s.Difficulty != nil {
		d.Difficulty = decimal.NewFromBigInt(s.Difficulty, -12).StringFixed(2) + "T"
	}
	severity := ui.SeveritySuccess
	switch s.Health {
	case netstats.HealthFair:
		severity = ui.SeverityWarn
	case netstats.HealthPoor:
		severity = ui.SeverityError
	}
	d.Health = ui.StyledText{Text: healthIcon(s.Health) + " " + string(s.Health), Severity: severity}
	return d
}

func buildHistoryRows(entries []history.Entry) []HistoryRowDisplay {
	rows := make([]HistoryRowDisplay, 0, len(entries))
	for i, e := range entries {
		row := HistoryRowDisplay{
			Index:      i + 1,
			Hash:       txcommon.ShortAddress(e.Hash),
			AnalyzedAt: e.AnalyzedAt.UTC().Format(timeLayout),
		}
		if e.Explanation != nil {
			row.Status = styledStatus(e.Explanation.Success)
			row.Type = typeLabel(e.Explanation.TransactionType)
			row.Summary = e.Explanation.Summary
		}
		rows = append(rows, row)
	}
	return rows
}

// ── Print phase (reads only from the display struct, colours via u.Style) ────

func printSummary(u ui.UI, d SummaryDisplay) {
	u.Section("Transaction Analysis")
	u.Critical("%s  %s", u.Style(d.Status), d.Type)
	u.Info("%s", d.Summary)
	txGroup := [][]string{
		{"Hash", d.Hash},
		{"Network", d.Network},
		{"Block", d.Block},
		{"Time", d.Timestamp},
		{"From", u.Style(d.From)},
		{"To", u.Style(d.To)},
		{"Value", d.Value},
	}
	if d.Protocol != "" {
		txGroup = append(txGroup, []string{"Protocol", d.Protocol})
	}
	gasGroup := [][]string{
		{"Gas used", d.GasUsed + " / " + d.GasLimit},
		{"Gas price", d.GasPrice},
		{"Gas fee", d.GasFee},
		{"Efficiency", u.Style(d.GasEfficiency)},
	}
	u.TableWithGroups(nil, [][][]string{txGroup, gasGroup})
	if d.Error != "" {
		u.Error("%s", d.Error)
	}
	u.Info("💡 What happened: %s", d.WhatHappened)
	if d.ExplorerURL != "" {
		u.Info("View on explorer: %s", d.ExplorerURL)
	}
}

func printFunctionCalls(u ui.UI, calls []FunctionCallDisplay) {
	if len(calls) == 0 {
		return
	}
	u.Section("Function Calls")
	rows := make([][]string, 0, len(calls))
	for _, c := range calls {
		rows = append(rows, []string{c.Function, c.Signature, c.Protocol, c.Description})
	}
	u.Table([]string{"Function", "Selector", "Protocol", "Description"}, rows)
}

func printTokenTransfers(u ui.UI, transfers []TokenTransferDisplay) {
	if len(transfers) == 0 {
		return
	}
	u.Section("Token Transfers")
	rows := make([][]string, 0, len(transfers))
	for _, t := range transfers {
		rows = append(rows, []string{t.Token, t.From, t.To, t.Amount, t.USDValue})
	}
	u.Table([]string{"Token", "From", "To", "Amount", "USD"}, rows)
}

func printBalanceChanges(u ui.UI, changes []BalanceChangeDisplay) {
	if len(changes) == 0 {
		return
	}
	u.Section("Balance Changes")
	rows := make([][]string, 0, len(changes))
	for _, c := range changes {
		rows = append(rows, []string{c.Account, c.Token, u.Style(c.Change), c.USDValue})
	}
	u.Table([]string{"Account", "Token", "Change", "USD"}, rows)
}

func printFlow(u ui.UI, d FlowDisplay) {
	u.Section("Transaction Flow")
	for _, s := range d.Steps {
		u.Critical("%d. %s", s.Step, s.Title)
		child := u.Indent()
		child.Info("%s", s.Description)
		child.Info("%s", s.Details)
	}
	u.KeyValue([][2]string{
		{"Total cost", d.TotalCost},
		{"Gas rating", u.Style(d.GasRating)},
	})
}

func printMEV(u ui.UI, d *MEVDisplay) {
	if d == nil {
		return
	}
	u.Section("MEV Analysis")
	if d.Detected {
		u.Warn("%s %s", d.Icon, d.Title)
	} else {
		u.Success("%s %s", d.Icon, d.Title)
	}
	u.Info("%s", d.Description)
	rows := [][2]string{
		{"Confidence", d.Confidence},
		{"Risk", u.Style(d.Risk)},
		{"Priority", d.Priority},
	}
	if d.Profit != "" {
		rows = append(rows, [2]string{"Est. profit", d.Profit})
	}
	u.KeyValue(rows)
	if d.Explanation != "" {
		u.Info("%s", d.Explanation)
	}
	u.Info("%s", d.ProtectionNote)
}

func printEducation(u ui.UI, lines []string) {
	if len(lines) == 0 {
		return
	}
	u.Section("Learn More")
	for _, l := range lines {
		u.Info("• %s", l)
	}
}

func printNetStats(u ui.UI, d *NetStatsDisplay) {
	u.Section("Network Stats: " + d.Network)
	rows := [][]string{
		{"Block height", d.Block},
		{"Block age", d.BlockAge},
		{"Gas price", d.GasPrice},
	}
	if d.BaseFee != "" {
		rows = append(rows, []string{"Base fee", d.BaseFee})
	}
	rows = append(rows,
		[]string{"Difficulty", d.Difficulty},
		[]string{"Transactions", d.TxCount},
		[]string{"TPS", d.TPS},
		[]string{"Health", u.Style(d.Health)},
	)
	u.Table(nil, rows)
	u.Info("Updated at %s", d.UpdatedAt)
}

// ── Public API ───────────────────────────────────────────────────────────────

// DisplayExplanation builds the view-model for an analyzed transaction and
// writes it to u. The returned value serializes cleanly to JSON.
func DisplayExplanation(u ui.UI, e *txcommon.Explanation, network networks.Network) *ExplanationDisplay {
	d := buildExplanationDisplay(e, network)
	printSummary(u, d.Summary)
	printFunctionCalls(u, d.FunctionCalls)
	printTokenTransfers(u, d.TokenTransfers)
	printBalanceChanges(u, d.BalanceChanges)
	printFlow(u, d.Flow)
	printMEV(u, d.MEV)
	printEducation(u, d.Education)
	return d
}

func DisplayNetStats(u ui.UI, s *netstats.Stats, network networks.Network) *NetStatsDisplay {
	d := buildNetStatsDisplay(s, network)
	printNetStats(u, d)
	return d
}

// DisplayHistory numbers entries from 1, the index `history show` takes.
func DisplayHistory(u ui.UI, entries []history.Entry) []HistoryRowDisplay {
	rows := buildHistoryRows(entries)
	if len(rows) == 0 {
		u.Info("No transactions analyzed yet.")
		return rows
	}
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		table = append(table, []string{
			fmt.Sprintf("%d", r.Index), r.Hash, u.Style(r.Status), r.Type, r.Summary, r.AnalyzedAt,
		})
	}
	u.Table([]string{"#", "Hash", "Status", "Type", "Summary", "Analyzed"}, table)
	return rows
}

func DisplaySearchResults(u ui.UI, results []addrbook.SearchResult) []WhoisRowDisplay {
	rows := make([]WhoisRowDisplay, 0, len(results))
	for _, r := range results {
		rows = append(rows, WhoisRowDisplay{
			Address:  r.Address,
			Name:     r.Name,
			Kind:     r.Kind,
			Category: r.Category,
			Symbol:   r.Symbol,
		})
	}
	if len(rows) == 0 {
		u.Warn("No known protocol or token matches.")
		return rows
	}
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		detail := r.Category
		if r.Symbol != "" {
			detail = r.Symbol
		}
		table = append(table, []string{r.Name, r.Kind, detail, r.Address})
	}
	u.Table([]string{"Name", "Kind", "Category/Symbol", "Address"}, table)
	return rows
}

// DisplayProtocols prints one table group per category, in category order.
func DisplayProtocols(u ui.UI) []ProtocolGroupDisplay {
	var (
		result []ProtocolGroupDisplay
		groups [][][]string
	)
	for pair := addrbook.Categories().Oldest(); pair != nil; pair = pair.Next() {
		if len(pair.Value) == 0 {
			continue
		}
		g := ProtocolGroupDisplay{Category: pair.Key}
		rows := [][]string{}
		for _, p := range pair.Value {
			g.Protocols = append(g.Protocols, WhoisRowDisplay{
				Address:  p.Address,
				Name:     p.Name,
				Kind:     "protocol",
				Category: p.Category,
			})
			rows = append(rows, []string{pair.Key, p.Name, p.Address})
		}
		result = append(result, g)
		groups = append(groups, rows)
	}
	u.TableWithGroups([]string{"Category", "Protocol", "Address"}, groups)
	return result
}
