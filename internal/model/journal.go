package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Line is a single row in journal.csv (one side of a double-entry).
// Lines carry an explicit EntryID so an entry is always the set of lines
// sharing that key, never reconstructed from date or description.
type Line struct {
	LineID      string    // entry ID plus leg suffix, e.g. "2025-01-001a"
	EntryID     string    // "YYYY-MM-NNN"
	Date        time.Time //nolint:revive // plain field name is clearest
	AccountID   string    //nolint:revive
	Description string    //nolint:revive
	Debit       decimal.Decimal // zero if credit side
	Credit      decimal.Decimal // zero if debit side
	Memo        string
}

// Side returns which side of the entry this line sits on.
func (l Line) Side() Side {
	if !l.Debit.IsZero() {
		return SideDebit
	}
	return SideCredit
}

// Amount returns the line's amount regardless of side.
func (l Line) Amount() decimal.Decimal {
	if !l.Debit.IsZero() {
		return l.Debit
	}
	return l.Credit
}
