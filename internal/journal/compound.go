package journal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tally-books/tally/internal/model"
)

// LinePart is one side of an entry before IDs are assigned.
type LinePart struct {
	AccountID string
	Side      model.Side
	Amount    decimal.Decimal
}

// CompoundConfig names the conventional accounts and rates used when a
// simple income or expense entry is expanded into a full entry.
type CompoundConfig struct {
	CashAccount        string
	ReceivableAccount  string
	TaxPayableAccount  string
	WithholdingAccount string
	TaxRate            decimal.Decimal // e.g. 0.11
	WithholdingRate    decimal.Decimal // e.g. 0.02
}

// IncomeParams describes a simple income entry to be expanded.
type IncomeParams struct {
	AccountID string // must be an income-category account
	Amount    decimal.Decimal
	ApplyTax  bool
}

// ExpenseParams describes a simple expense entry to be expanded.
type ExpenseParams struct {
	AccountID        string // must be an expense-category account
	Amount           decimal.Decimal
	ApplyWithholding bool
}

// ExpandIncome expands an income entry into balanced parts: the receivable
// account is debited for the gross amount, the income account credited for
// the net, and any output tax credited to the tax payable account.
func ExpandIncome(p IncomeParams, category model.Category, cfg CompoundConfig) ([]LinePart, error) {
	if category != model.CategoryIncome {
		return nil, fmt.Errorf("account %s is %s, not income; use a plain entry instead", p.AccountID, category)
	}
	if !p.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive")
	}

	gross := p.Amount
	var tax decimal.Decimal
	if p.ApplyTax {
		tax = p.Amount.Mul(cfg.TaxRate).Round(2)
		gross = p.Amount.Add(tax)
	}

	parts := []LinePart{
		{AccountID: cfg.ReceivableAccount, Side: model.SideDebit, Amount: gross},
		{AccountID: p.AccountID, Side: model.SideCredit, Amount: p.Amount},
	}
	if p.ApplyTax {
		parts = append(parts, LinePart{AccountID: cfg.TaxPayableAccount, Side: model.SideCredit, Amount: tax})
	}
	return parts, nil
}

// ExpandExpense expands an expense entry into balanced parts: the expense
// account is debited in full, cash credited net of withholding, and any
// withheld tax credited to the withholding payable account.
func ExpandExpense(p ExpenseParams, category model.Category, cfg CompoundConfig) ([]LinePart, error) {
	if category != model.CategoryExpense {
		return nil, fmt.Errorf("account %s is %s, not expense; use a plain entry instead", p.AccountID, category)
	}
	if !p.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive")
	}

	paid := p.Amount
	var withheld decimal.Decimal
	if p.ApplyWithholding {
		withheld = p.Amount.Mul(cfg.WithholdingRate).Round(2)
		paid = p.Amount.Sub(withheld)
	}

	parts := []LinePart{
		{AccountID: p.AccountID, Side: model.SideDebit, Amount: p.Amount},
		{AccountID: cfg.CashAccount, Side: model.SideCredit, Amount: paid},
	}
	if p.ApplyWithholding {
		parts = append(parts, LinePart{AccountID: cfg.WithholdingAccount, Side: model.SideCredit, Amount: withheld})
	}
	return parts, nil
}
