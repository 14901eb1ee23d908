package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankRow represents a parsed bank statement CSV row.
type BankRow struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // negative = money out, positive = money in
	Reference   string
}
