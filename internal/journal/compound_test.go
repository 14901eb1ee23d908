package journal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-books/tally/internal/model"
)

var testCompound = CompoundConfig{
	CashAccount:        "1-1110",
	ReceivableAccount:  "1-1130",
	TaxPayableAccount:  "2-2110",
	WithholdingAccount: "2-2120",
	TaxRate:            dec("0.11"),
	WithholdingRate:    dec("0.02"),
}

func partsBalance(parts []LinePart) (debit, credit decimal.Decimal) {
	for _, p := range parts {
		if p.Side == model.SideDebit {
			debit = debit.Add(p.Amount)
		} else {
			credit = credit.Add(p.Amount)
		}
	}
	return debit, credit
}

func TestExpandIncome_WithTax(t *testing.T) {
	parts, err := ExpandIncome(IncomeParams{
		AccountID: "4-4000",
		Amount:    dec("1000000"),
		ApplyTax:  true,
	}, model.CategoryIncome, testCompound)
	require.NoError(t, err)
	require.Len(t, parts, 3)

	assert.Equal(t, "1-1130", parts[0].AccountID)
	assert.Equal(t, model.SideDebit, parts[0].Side)
	assert.True(t, dec("1110000").Equal(parts[0].Amount), "gross: %s", parts[0].Amount)

	assert.Equal(t, "4-4000", parts[1].AccountID)
	assert.Equal(t, model.SideCredit, parts[1].Side)
	assert.True(t, dec("1000000").Equal(parts[1].Amount))

	assert.Equal(t, "2-2110", parts[2].AccountID)
	assert.Equal(t, model.SideCredit, parts[2].Side)
	assert.True(t, dec("110000").Equal(parts[2].Amount))

	debit, credit := partsBalance(parts)
	assert.True(t, debit.Equal(credit), "debits %s != credits %s", debit, credit)
}

func TestExpandIncome_WithoutTax(t *testing.T) {
	parts, err := ExpandIncome(IncomeParams{
		AccountID: "4-4000",
		Amount:    dec("250000"),
	}, model.CategoryIncome, testCompound)
	require.NoError(t, err)
	require.Len(t, parts, 2)

	assert.True(t, dec("250000").Equal(parts[0].Amount))
	debit, credit := partsBalance(parts)
	assert.True(t, debit.Equal(credit))
}

func TestExpandIncome_WrongCategory(t *testing.T) {
	_, err := ExpandIncome(IncomeParams{
		AccountID: "1-1110",
		Amount:    dec("100"),
	}, model.CategoryAsset, testCompound)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not income")
}

func TestExpandIncome_NonPositiveAmount(t *testing.T) {
	_, err := ExpandIncome(IncomeParams{AccountID: "4-4000", Amount: decimal.Zero}, model.CategoryIncome, testCompound)
	assert.Error(t, err)

	_, err = ExpandIncome(IncomeParams{AccountID: "4-4000", Amount: dec("-5")}, model.CategoryIncome, testCompound)
	assert.Error(t, err)
}

func TestExpandExpense_WithWithholding(t *testing.T) {
	parts, err := ExpandExpense(ExpenseParams{
		AccountID:        "6-6100",
		Amount:           dec("1000000"),
		ApplyWithholding: true,
	}, model.CategoryExpense, testCompound)
	require.NoError(t, err)
	require.Len(t, parts, 3)

	assert.Equal(t, "6-6100", parts[0].AccountID)
	assert.Equal(t, model.SideDebit, parts[0].Side)
	assert.True(t, dec("1000000").Equal(parts[0].Amount))

	assert.Equal(t, "1-1110", parts[1].AccountID)
	assert.Equal(t, model.SideCredit, parts[1].Side)
	assert.True(t, dec("980000").Equal(parts[1].Amount), "paid: %s", parts[1].Amount)

	assert.Equal(t, "2-2120", parts[2].AccountID)
	assert.True(t, dec("20000").Equal(parts[2].Amount))

	debit, credit := partsBalance(parts)
	assert.True(t, debit.Equal(credit))
}

func TestExpandExpense_WithoutWithholding(t *testing.T) {
	parts, err := ExpandExpense(ExpenseParams{
		AccountID: "6-6100",
		Amount:    dec("75.50"),
	}, model.CategoryExpense, testCompound)
	require.NoError(t, err)
	require.Len(t, parts, 2)

	assert.True(t, dec("75.50").Equal(parts[1].Amount))
	debit, credit := partsBalance(parts)
	assert.True(t, debit.Equal(credit))
}

func TestExpandExpense_WrongCategory(t *testing.T) {
	_, err := ExpandExpense(ExpenseParams{
		AccountID: "5-5000",
		Amount:    dec("100"),
	}, model.CategoryCostOfSales, testCompound)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not expense")
}

func TestExpandedPartsRoundToCents(t *testing.T) {
	// 33.33 * 0.11 = 3.6663, rounded to 3.67; the gross must absorb the
	// same rounded tax so the entry still balances.
	parts, err := ExpandIncome(IncomeParams{
		AccountID: "4-4000",
		Amount:    dec("33.33"),
		ApplyTax:  true,
	}, model.CategoryIncome, testCompound)
	require.NoError(t, err)

	assert.True(t, dec("3.67").Equal(parts[2].Amount), "tax: %s", parts[2].Amount)
	assert.True(t, dec("37.00").Equal(parts[0].Amount), "gross: %s", parts[0].Amount)
	debit, credit := partsBalance(parts)
	assert.True(t, debit.Equal(credit))
}
