package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-books/tally/internal/model"
)

// TrialBalanceReport summarizes every active account's beginning balance,
// period activity, and ending balance, one row per account in chart order.
type TrialBalanceReport struct {
	Rows        []AccountSummary
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// TrialBalance builds the all-accounts summary. Accounts appear only if
// they carry a non-zero beginning balance or at least one journal line;
// row order follows the chart of accounts. Lines referencing unknown
// accounts are skipped and reported in the diagnostics.
func TrialBalance(accounts []model.Account, lines []model.Line, fiscalYearStart time.Time) (TrialBalanceReport, Diagnostics) {
	known := make(map[string]bool, len(accounts))
	hasLines := make(map[string]bool)
	for _, a := range accounts {
		known[a.ID] = true
	}

	var diags Diagnostics
	for _, line := range lines {
		if !known[line.AccountID] {
			diags = append(diags, Warning{LineID: line.LineID, AccountID: line.AccountID})
			continue
		}
		hasLines[line.AccountID] = true
	}

	report := TrialBalanceReport{
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, a := range accounts {
		if a.BeginningBalance.IsZero() && !hasLines[a.ID] {
			continue
		}
		row := SummarizePeriod(a, lines, fiscalYearStart)
		report.Rows = append(report.Rows, row)
		report.TotalDebit = report.TotalDebit.Add(row.TotalDebit)
		report.TotalCredit = report.TotalCredit.Add(row.TotalCredit)
	}
	return report, diags
}
