package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-books/tally/internal/model"
)

// AccountSummary is one account's activity split around the fiscal year
// start: pre-period movement folded into the beginning balance, in-period
// movement kept as raw debit/credit totals.
type AccountSummary struct {
	AccountID        string
	AccountName      string
	BeginningBalance decimal.Decimal
	TotalDebit       decimal.Decimal
	TotalCredit      decimal.Decimal
	EndingBalance    decimal.Decimal
}

// SummarizePeriod partitions the account's lines by the fiscal year start.
// Lines dated before it adjust the beginning balance (signed on the normal
// side); lines on or after it accumulate into the raw period totals.
func SummarizePeriod(account model.Account, lines []model.Line, fiscalYearStart time.Time) AccountSummary {
	normalSide := account.NormalSide()
	beginning := account.BeginningBalance
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero

	for _, line := range lines {
		if line.AccountID != account.ID {
			continue
		}
		if line.Date.Before(fiscalYearStart) {
			beginning = beginning.Add(delta(normalSide, line))
			continue
		}
		if line.Side() == model.SideDebit {
			totalDebit = totalDebit.Add(line.Debit)
		} else {
			totalCredit = totalCredit.Add(line.Credit)
		}
	}

	var movement decimal.Decimal
	if normalSide == model.SideDebit {
		movement = totalDebit.Sub(totalCredit)
	} else {
		movement = totalCredit.Sub(totalDebit)
	}

	return AccountSummary{
		AccountID:        account.ID,
		AccountName:      account.Name,
		BeginningBalance: beginning,
		TotalDebit:       totalDebit,
		TotalCredit:      totalCredit,
		EndingBalance:    beginning.Add(movement),
	}
}
