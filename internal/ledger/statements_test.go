package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-books/tally/internal/model"
)

const retainedEarnings = "3-3200"

// statementLines books 800,000 of revenue against cash and 300,000 of
// salaries paid from cash: net income 500,000.
func statementLines() []model.Line {
	return []model.Line{
		debit("1-1110", "800000", date(2025, 1, 10)),
		credit("4-4000", "800000", date(2025, 1, 10)),
		debit("6-6100", "300000", date(2025, 1, 20)),
		credit("1-1110", "300000", date(2025, 1, 20)),
	}
}

func findSection(t *testing.T, s Statement, title string) Section {
	t.Helper()
	for _, sec := range s.Sections {
		if sec.Title == title {
			return sec
		}
	}
	t.Fatalf("no section %q", title)
	return Section{}
}

func TestStatements_NetIncome(t *testing.T) {
	income, _, diags := Statements(testChart(), statementLines(), retainedEarnings)
	require.Empty(t, diags)

	revenue := findSection(t, income, "Revenue")
	expenses := findSection(t, income, "Expenses")
	assert.True(t, dec("800000").Equal(revenue.Total), "revenue: %s", revenue.Total)
	assert.True(t, dec("300000").Equal(expenses.Total), "expenses: %s", expenses.Total)
	assert.Equal(t, "Net Income", income.FinalLabel)
	assert.True(t, dec("500000").Equal(income.FinalAmount))
}

func TestStatements_RetainedEarningsRollForward(t *testing.T) {
	_, balance, _ := Statements(testChart(), statementLines(), retainedEarnings)

	equity := findSection(t, balance, "Equity")
	var re *LineItem
	for i := range equity.Items {
		if equity.Items[i].Label == "3-3200 Retained Earnings" {
			re = &equity.Items[i]
		}
	}
	require.NotNil(t, re)
	assert.True(t, dec("500000").Equal(re.Amount), "retained earnings: %s", re.Amount)
	assert.True(t, dec("500000").Equal(equity.Total))
}

func TestStatements_BalanceSheetEquality(t *testing.T) {
	// The engine never enforces assets == liabilities + equity; for
	// balanced books it must hold anyway.
	chart := testChart()
	_, balance, _ := Statements(chart, statementLines(), retainedEarnings)

	assets := findSection(t, balance, "Assets")
	// Cash 500,000 net + receivable 1,000,000 beginning balance.
	assert.True(t, dec("1500000").Equal(assets.Total), "assets: %s", assets.Total)

	// The receivable's beginning balance has no offsetting equity here, so
	// book an opening capital balance to balance the sheet.
	for i := range chart {
		if chart[i].ID == "3-3100" {
			chart[i].BeginningBalance = dec("1000000")
		}
	}
	_, balance, _ = Statements(chart, statementLines(), retainedEarnings)
	assets = findSection(t, balance, "Assets")
	assert.True(t, assets.Total.Equal(balance.FinalAmount),
		"assets %s != liabilities+equity %s", assets.Total, balance.FinalAmount)
}

func TestStatements_MissingRetainedEarningsAccount(t *testing.T) {
	// No account carries the configured ID: the roll-forward is skipped
	// without error and equity holds only booked balances.
	income, balance, _ := Statements(testChart(), statementLines(), "3-9999")

	assert.True(t, dec("500000").Equal(income.FinalAmount))
	equity := findSection(t, balance, "Equity")
	assert.True(t, equity.Total.IsZero(), "equity: %s", equity.Total)
}

func TestStatements_UnrecognizedCategoryExcluded(t *testing.T) {
	chart := append(testChart(), model.Account{ID: "x-1", Name: "Mystery", Category: "contra"})
	lines := append(statementLines(),
		debit("x-1", "123", date(2025, 1, 5)),
		credit("1-1110", "123", date(2025, 1, 5)),
	)

	income, balance, _ := Statements(chart, lines, retainedEarnings)
	for _, s := range append(income.Sections, balance.Sections...) {
		for _, item := range s.Items {
			assert.NotContains(t, item.Label, "Mystery")
		}
	}
}

func TestStatements_EmptyInput(t *testing.T) {
	income, balance, diags := Statements(nil, nil, retainedEarnings)
	assert.Empty(t, diags)
	assert.True(t, income.FinalAmount.IsZero())
	assert.True(t, balance.FinalAmount.IsZero())
}
