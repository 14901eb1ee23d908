package accounts

import "github.com/tally-books/tally/internal/model"

// DefaultChart returns the default chart of accounts for a new company.
// The cash, receivable, payable, and retained earnings codes match the
// defaults in config.Default.
func DefaultChart() []model.Account {
	return []model.Account{
		{ID: "1-1110", Name: "Cash", Category: model.CategoryAsset, Description: "Cash on hand and in bank"},
		{ID: "1-1130", Name: "Accounts Receivable", Category: model.CategoryAsset, Description: "Amounts owed by customers"},
		{ID: "1-1150", Name: "Inventory", Category: model.CategoryAsset},
		{ID: "1-1210", Name: "Equipment", Category: model.CategoryAsset, Description: "Office and operating equipment"},
		{ID: "2-2100", Name: "Accounts Payable", Category: model.CategoryLiability, Description: "Amounts owed to suppliers"},
		{ID: "2-2110", Name: "Output Tax Payable", Category: model.CategoryLiability, Description: "Output tax collected on sales"},
		{ID: "2-2120", Name: "Withholding Tax Payable", Category: model.CategoryLiability, Description: "Tax withheld on purchases"},
		{ID: "3-3100", Name: "Owner's Capital", Category: model.CategoryEquity},
		{ID: "3-3200", Name: "Retained Earnings", Category: model.CategoryEquity, Description: "Accumulated profits retained in the business"},
		{ID: "4-4000", Name: "Sales Revenue", Category: model.CategoryIncome},
		{ID: "5-5000", Name: "Cost of Goods Sold", Category: model.CategoryCostOfSales},
		{ID: "6-6100", Name: "Salaries Expense", Category: model.CategoryExpense},
		{ID: "6-6200", Name: "Rent Expense", Category: model.CategoryExpense},
		{ID: "6-6300", Name: "Utilities Expense", Category: model.CategoryExpense},
		{ID: "7-7100", Name: "Interest Income", Category: model.CategoryOtherIncome},
		{ID: "8-8100", Name: "Bank Charges", Category: model.CategoryOtherExpense},
	}
}
