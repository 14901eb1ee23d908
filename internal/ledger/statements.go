package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/tally-books/tally/internal/model"
)

// LineItem is one labeled amount in a statement section.
type LineItem struct {
	Label  string
	Amount decimal.Decimal
}

// Section is a titled group of line items with a total.
type Section struct {
	Title      string
	Items      []LineItem
	TotalLabel string
	Total      decimal.Decimal
}

// Statement is the render-ready shape both statements share: sections of
// line items plus a closing figure. Exporters and the CLI consume this
// structure as-is.
type Statement struct {
	Title       string
	Sections    []Section
	FinalLabel  string
	FinalAmount decimal.Decimal
}

// Statements classifies full-history account balances (beginning balance
// plus all journal activity) into an income statement and a balance sheet.
//
// The retained earnings account named by retainedEarningsID has net income
// rolled into its balance before equity is totaled; when no account carries
// that ID the roll-forward is skipped without error. Accounts with an
// unrecognized category are excluded from both statements.
func Statements(accounts []model.Account, lines []model.Line, retainedEarningsID string) (income, balance Statement, diags Diagnostics) {
	activity, diags := Balances(accounts, lines)

	closing := make(map[string]decimal.Decimal, len(accounts))
	for _, a := range accounts {
		closing[a.ID] = a.BeginningBalance.Add(activity[a.ID])
	}

	revenue := section("Revenue", "Total Revenue", accounts, closing, model.CategoryIncome, model.CategoryOtherIncome)
	expenses := section("Expenses", "Total Expenses", accounts, closing, model.CategoryExpense, model.CategoryCostOfSales, model.CategoryOtherExpense)
	netIncome := revenue.Total.Sub(expenses.Total)

	income = Statement{
		Title:       "Income Statement",
		Sections:    []Section{revenue, expenses},
		FinalLabel:  "Net Income",
		FinalAmount: netIncome,
	}

	// Roll current-period net income into retained earnings before the
	// equity section is built.
	if _, ok := closing[retainedEarningsID]; ok {
		closing[retainedEarningsID] = closing[retainedEarningsID].Add(netIncome)
	}

	assets := section("Assets", "Total Assets", accounts, closing, model.CategoryAsset)
	liabilities := section("Liabilities", "Total Liabilities", accounts, closing, model.CategoryLiability)
	equity := section("Equity", "Total Equity", accounts, closing, model.CategoryEquity)

	balance = Statement{
		Title:       "Balance Sheet",
		Sections:    []Section{assets, liabilities, equity},
		FinalLabel:  "Total Liabilities & Equity",
		FinalAmount: liabilities.Total.Add(equity.Total),
	}
	return income, balance, diags
}

// section builds one statement section from the accounts matching the
// given categories, in chart order.
func section(title, totalLabel string, accounts []model.Account, closing map[string]decimal.Decimal, categories ...model.Category) Section {
	s := Section{Title: title, TotalLabel: totalLabel, Total: decimal.Zero}
	for _, a := range accounts {
		if !matches(a.Category, categories) {
			continue
		}
		amount := closing[a.ID]
		s.Items = append(s.Items, LineItem{Label: a.ID + " " + a.Name, Amount: amount})
		s.Total = s.Total.Add(amount)
	}
	return s
}

func matches(c model.Category, categories []model.Category) bool {
	for _, want := range categories {
		if c == want {
			return true
		}
	}
	return false
}
