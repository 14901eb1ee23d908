package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initBooks initializes a books directory with a 2025 fiscal year.
func initBooks(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, err := runTally(t, "init", dir, "--name", "Test Biz", "--fiscal-year", "2025")
	require.NoError(t, err)
	return dir
}

func TestAccountAddAndList(t *testing.T) {
	dir := initBooks(t)

	out, err := runTally(t, "--dir", dir, "account", "add", "6-6400",
		"--name", "Insurance Expense", "--category", "expense")
	require.NoError(t, err, out)
	assert.Contains(t, out, "normal debit")

	out, err = runTally(t, "--dir", dir, "account", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "6-6400")
	assert.Contains(t, out, "Insurance Expense")
}

func TestAccountAdd_DuplicateRejected(t *testing.T) {
	dir := initBooks(t)

	out, err := runTally(t, "--dir", dir, "account", "add", "1-1110",
		"--name", "Petty Cash", "--category", "asset")
	require.Error(t, err)
	assert.Contains(t, out, "already exists")
}

func TestAccountRemove_ReferencedRejected(t *testing.T) {
	dir := initBooks(t)

	_, err := runTally(t, "--dir", dir, "entry", "add",
		"--date", "2025-01-15", "--desc", "Rent",
		"--debit", "6-6200=500.00", "--credit", "1-1110=500.00")
	require.NoError(t, err)

	out, err := runTally(t, "--dir", dir, "account", "rm", "6-6200")
	require.Error(t, err)
	assert.Contains(t, out, "referenced")

	// Untouched accounts can still go.
	_, err = runTally(t, "--dir", dir, "account", "rm", "8-8100")
	require.NoError(t, err)
}

func TestEntryAdd_UnbalancedRejected(t *testing.T) {
	dir := initBooks(t)

	out, err := runTally(t, "--dir", dir, "entry", "add",
		"--date", "2025-01-15", "--desc", "Oops",
		"--debit", "6-6200=100.00", "--credit", "1-1110=90.00")
	require.Error(t, err)
	assert.Contains(t, out, "validation failed")

	// Nothing was written.
	_, err = os.Stat(filepath.Join(dir, "2025", "01", "journal.csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestEntryIncomeAndTrialBalance(t *testing.T) {
	dir := initBooks(t)

	out, err := runTally(t, "--dir", dir, "entry", "income",
		"--date", "2025-01-20", "--desc", "Invoice #1",
		"--account", "4-4000", "--amount", "1000000", "--tax")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Recorded entry 2025-01-001")

	out, err = runTally(t, "--dir", dir, "report", "trial-balance")
	require.NoError(t, err, out)
	assert.Contains(t, out, "1-1130")
	assert.Contains(t, out, "1110000.00")
	assert.Contains(t, out, "1000000.00")
	assert.Contains(t, out, "110000.00")
}

func TestEntryExpenseAndLedger(t *testing.T) {
	dir := initBooks(t)

	_, err := runTally(t, "--dir", dir, "entry", "expense",
		"--date", "2025-02-05", "--desc", "Consulting fee",
		"--account", "6-6100", "--amount", "1000000", "--withhold")
	require.NoError(t, err)

	out, err := runTally(t, "--dir", dir, "report", "ledger", "1-1110")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Consulting fee")
	assert.Contains(t, out, "980000.00")
}

func TestStatements(t *testing.T) {
	dir := initBooks(t)

	_, err := runTally(t, "--dir", dir, "entry", "add",
		"--date", "2025-01-10", "--desc", "Cash sale",
		"--debit", "1-1110=800000", "--credit", "4-4000=800000")
	require.NoError(t, err)
	_, err = runTally(t, "--dir", dir, "entry", "add",
		"--date", "2025-01-20", "--desc", "Payroll",
		"--debit", "6-6100=300000", "--credit", "1-1110=300000")
	require.NoError(t, err)

	out, err := runTally(t, "--dir", dir, "report", "income-statement")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Net Income")
	assert.Contains(t, out, "500000.00")

	out, err = runTally(t, "--dir", dir, "report", "balance-sheet")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Retained Earnings")
	assert.Contains(t, out, "500000.00")
	assert.Contains(t, out, "Total Liabilities & Equity")
}

func TestImport(t *testing.T) {
	dir := initBooks(t)

	statement := "date,description,amount,reference\n" +
		"2025-03-01,Customer payment,1500.00,INV-7\n" +
		"2025-03-02,Bank fee,-25.00,\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "import", "march.csv"), []byte(statement), 0o644))

	out, err := runTally(t, "--dir", dir, "import", "--account", "4-4000")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Processed march.csv (2 rows)")

	// The file moved to processed and the entries landed in the journal.
	_, err = os.Stat(filepath.Join(dir, "import", "processed", "march.csv"))
	assert.NoError(t, err)

	out, err = runTally(t, "--dir", dir, "report", "ledger", "1-1110")
	require.NoError(t, err)
	assert.Contains(t, out, "Customer payment")
	assert.Contains(t, out, "Bank fee")
	assert.Contains(t, out, "1475.00")
}

func TestReportOnMissingBooks(t *testing.T) {
	out, err := runTally(t, "--dir", t.TempDir(), "report", "trial-balance")
	require.Error(t, err)
	assert.Contains(t, out, "not a books directory")
}
