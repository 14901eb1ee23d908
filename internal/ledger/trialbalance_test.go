package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-books/tally/internal/model"
)

func TestTrialBalance_RowsAndTotals(t *testing.T) {
	chart := testChart()
	fyStart := date(2025, 1, 1)
	lines := []model.Line{
		debit("1-1130", "555000", date(2025, 1, 10)),
		credit("4-4000", "500000", date(2025, 1, 10)),
		credit("2-2110", "55000", date(2025, 1, 10)),
	}

	report, diags := TrialBalance(chart, lines, fyStart)
	require.Empty(t, diags)

	// Only touched accounts plus 1-1130's beginning balance qualify.
	require.Len(t, report.Rows, 3)
	assert.Equal(t, "1-1130", report.Rows[0].AccountID)
	assert.Equal(t, "2-2110", report.Rows[1].AccountID)
	assert.Equal(t, "4-4000", report.Rows[2].AccountID)

	assert.True(t, dec("555000").Equal(report.TotalDebit), "debit: %s", report.TotalDebit)
	assert.True(t, dec("555000").Equal(report.TotalCredit), "credit: %s", report.TotalCredit)
	assert.True(t, dec("1555000").Equal(report.Rows[0].EndingBalance))
}

func TestTrialBalance_BeginningBalanceAloneIncludesAccount(t *testing.T) {
	chart := testChart()
	report, diags := TrialBalance(chart, nil, date(2025, 1, 1))
	require.Empty(t, diags)

	// 1-1130 is the only account with a non-zero beginning balance.
	require.Len(t, report.Rows, 1)
	assert.Equal(t, "1-1130", report.Rows[0].AccountID)
	assert.True(t, dec("1000000").Equal(report.Rows[0].EndingBalance))
}

func TestTrialBalance_ChartOrderNotAlphabetical(t *testing.T) {
	chart := []model.Account{
		{ID: "z-900", Name: "Last Code First", Category: model.CategoryAsset},
		{ID: "a-100", Name: "First Code Last", Category: model.CategoryExpense},
	}
	lines := []model.Line{
		debit("z-900", "10", date(2025, 1, 5)),
		debit("a-100", "10", date(2025, 1, 5)),
	}

	report, _ := TrialBalance(chart, lines, date(2025, 1, 1))
	require.Len(t, report.Rows, 2)
	assert.Equal(t, "z-900", report.Rows[0].AccountID)
	assert.Equal(t, "a-100", report.Rows[1].AccountID)
}

func TestTrialBalance_UnknownAccountReported(t *testing.T) {
	chart := testChart()
	lines := []model.Line{
		{LineID: "2025-01-001a", AccountID: "9-9999", Debit: dec("10"), Date: date(2025, 1, 5)},
		credit("4-4000", "10", date(2025, 1, 5)),
	}

	report, diags := TrialBalance(chart, lines, date(2025, 1, 1))
	require.Len(t, diags, 1)
	assert.Equal(t, "9-9999", diags[0].AccountID)

	// The unknown line contributes to no row or total.
	assert.True(t, report.TotalDebit.IsZero())
	assert.True(t, dec("10").Equal(report.TotalCredit))
}

func TestTrialBalance_EmptyInput(t *testing.T) {
	report, diags := TrialBalance(nil, nil, date(2025, 1, 1))
	assert.Empty(t, report.Rows)
	assert.Empty(t, diags)
	assert.True(t, report.TotalDebit.IsZero())
	assert.True(t, report.TotalCredit.IsZero())
}
