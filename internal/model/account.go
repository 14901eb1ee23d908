package model

import "github.com/shopspring/decimal"

// Category classifies accounts in the chart of accounts.
type Category string

const (
	CategoryAsset        Category = "asset"
	CategoryLiability    Category = "liability"
	CategoryEquity       Category = "equity"
	CategoryIncome       Category = "income"
	CategoryCostOfSales  Category = "cost_of_sales"
	CategoryExpense      Category = "expense"
	CategoryOtherIncome  Category = "other_income"
	CategoryOtherExpense Category = "other_expense"
)

// Categories lists every valid category in presentation order.
var Categories = []Category{
	CategoryAsset,
	CategoryLiability,
	CategoryEquity,
	CategoryIncome,
	CategoryCostOfSales,
	CategoryExpense,
	CategoryOtherIncome,
	CategoryOtherExpense,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Side is the debit or credit side of a journal line.
type Side string

const (
	SideDebit  Side = "debit"
	SideCredit Side = "credit"
)

// NormalSideFor returns the side on which an account's balance increases.
// The mapping is fixed by category and never stored or edited directly.
func NormalSideFor(c Category) Side {
	switch c {
	case CategoryAsset, CategoryCostOfSales, CategoryExpense, CategoryOtherExpense:
		return SideDebit
	default:
		return SideCredit
	}
}

// Account represents a row in chart-of-accounts.csv.
type Account struct {
	ID               string // account code, e.g. "1-1130"
	Name             string
	Category         Category
	BeginningBalance decimal.Decimal // interpreted on the account's normal side
	Description      string
}

// NormalSide returns the side derived from the account's category.
func (a Account) NormalSide() Side {
	return NormalSideFor(a.Category)
}
