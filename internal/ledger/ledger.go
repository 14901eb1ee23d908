package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-books/tally/internal/model"
)

// LedgerRow is one line of a single-account running-balance ledger.
// Exactly one of Debit/Credit is non-zero, mirroring the journal line.
type LedgerRow struct {
	LineID      string
	Date        time.Time
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Balance     decimal.Decimal // running balance after this line
}

// LedgerView is the general-ledger report for one account.
type LedgerView struct {
	AccountID        string
	AccountName      string
	BeginningBalance decimal.Decimal
	Rows             []LedgerRow
	EndingBalance    decimal.Decimal
}

// AccountLedger builds the chronological running-balance view for one
// account. Pre-period lines fold into the beginning balance; in-period
// lines become rows. Same-day lines keep their original relative order.
func AccountLedger(account model.Account, lines []model.Line, fiscalYearStart time.Time) LedgerView {
	normalSide := account.NormalSide()
	beginning := account.BeginningBalance

	var period []model.Line
	for _, line := range lines {
		if line.AccountID != account.ID {
			continue
		}
		if line.Date.Before(fiscalYearStart) {
			beginning = beginning.Add(delta(normalSide, line))
			continue
		}
		period = append(period, line)
	}

	sort.SliceStable(period, func(i, j int) bool {
		return period[i].Date.Before(period[j].Date)
	})

	running := beginning
	rows := make([]LedgerRow, len(period))
	for i, line := range period {
		running = running.Add(delta(normalSide, line))
		rows[i] = LedgerRow{
			LineID:      line.LineID,
			Date:        line.Date,
			Description: line.Description,
			Debit:       line.Debit,
			Credit:      line.Credit,
			Balance:     running,
		}
	}

	return LedgerView{
		AccountID:        account.ID,
		AccountName:      account.Name,
		BeginningBalance: beginning,
		Rows:             rows,
		EndingBalance:    running,
	}
}
