package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-books/tally/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func debit(account string, amount string, on time.Time) model.Line {
	return model.Line{AccountID: account, Debit: dec(amount), Date: on}
}

func credit(account string, amount string, on time.Time) model.Line {
	return model.Line{AccountID: account, Credit: dec(amount), Date: on}
}

func testChart() []model.Account {
	return []model.Account{
		{ID: "1-1110", Name: "Cash", Category: model.CategoryAsset},
		{ID: "1-1130", Name: "Accounts Receivable", Category: model.CategoryAsset, BeginningBalance: dec("1000000")},
		{ID: "2-2110", Name: "Output Tax Payable", Category: model.CategoryLiability},
		{ID: "3-3100", Name: "Owner's Capital", Category: model.CategoryEquity},
		{ID: "3-3200", Name: "Retained Earnings", Category: model.CategoryEquity},
		{ID: "4-4000", Name: "Sales Revenue", Category: model.CategoryIncome},
		{ID: "5-5000", Name: "Cost of Goods Sold", Category: model.CategoryCostOfSales},
		{ID: "6-6100", Name: "Salaries Expense", Category: model.CategoryExpense},
		{ID: "7-7100", Name: "Interest Income", Category: model.CategoryOtherIncome},
	}
}

func account(chart []model.Account, accountID string) model.Account {
	for _, a := range chart {
		if a.ID == accountID {
			return a
		}
	}
	panic("no account " + accountID)
}
