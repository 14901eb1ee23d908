// Package ledger derives balances and financial reports from a snapshot of
// accounts and journal lines. Every function is pure: inputs in, report
// structures out, no I/O and no retained state. Callers re-run them from
// scratch whenever the snapshot changes.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/tally-books/tally/internal/model"
)

// Warning records a journal line skipped during aggregation because its
// account reference did not resolve. Unknown references are tolerated,
// never fatal; callers decide whether to surface them.
type Warning struct {
	LineID    string
	AccountID string
}

// Diagnostics is the list of warnings produced alongside a report.
type Diagnostics []Warning

// Balances folds journal lines into per-account signed balances, relative
// to each account's normal side. Beginning balances are NOT included;
// the result is pure period activity over the lines given.
func Balances(accounts []model.Account, lines []model.Line) (map[string]decimal.Decimal, Diagnostics) {
	normal := make(map[string]model.Side, len(accounts))
	balances := make(map[string]decimal.Decimal, len(accounts))
	for _, a := range accounts {
		normal[a.ID] = a.NormalSide()
		balances[a.ID] = decimal.Zero
	}

	var diags Diagnostics
	for _, line := range lines {
		side, ok := normal[line.AccountID]
		if !ok {
			diags = append(diags, Warning{LineID: line.LineID, AccountID: line.AccountID})
			continue
		}
		balances[line.AccountID] = balances[line.AccountID].Add(delta(side, line))
	}
	return balances, diags
}

// delta is the line's amount signed relative to the account's normal side.
func delta(normalSide model.Side, line model.Line) decimal.Decimal {
	if line.Side() == normalSide {
		return line.Amount()
	}
	return line.Amount().Neg()
}
