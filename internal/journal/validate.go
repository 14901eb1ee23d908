package journal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tally-books/tally/internal/id"
	"github.com/tally-books/tally/internal/model"
)

// balanceTolerance is the largest debit/credit discrepancy accepted for an
// entry group. Amounts are held to two decimal places, so anything beyond
// a rounding cent is a real imbalance.
var balanceTolerance = decimal.NewFromFloat(0.01)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Invariant   int
	EntryID     string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.EntryID, e.Description)
}

// AccountDirectory is the chart-of-accounts view the journal needs.
type AccountDirectory interface {
	Exists(id string) bool
	Get(id string) (model.Account, bool)
}

// ValidateLines enforces 6 invariants on a set of journal lines for a given month.
func ValidateLines(lines []model.Line, accounts AccountDirectory, year, month int) []ValidationError {
	var errs []ValidationError

	// Group lines by entry ID. Grouping never falls back to matching date
	// or description; the entry ID is the only group key.
	groups := make(map[string][]model.Line)
	var groupOrder []string
	for _, line := range lines {
		g := line.EntryID
		if _, seen := groups[g]; !seen {
			groupOrder = append(groupOrder, g)
		}
		groups[g] = append(groups[g], line)
	}

	// Invariant 1: Entry groups balance (sum(debits) == sum(credits) per group).
	for _, g := range groupOrder {
		groupLines := groups[g]
		totalDebit := decimal.Zero
		totalCredit := decimal.Zero
		for _, line := range groupLines {
			totalDebit = totalDebit.Add(line.Debit)
			totalCredit = totalCredit.Add(line.Credit)
		}
		if totalDebit.Sub(totalCredit).Abs().GreaterThan(balanceTolerance) {
			errs = append(errs, ValidationError{
				Invariant:   1,
				EntryID:     g,
				Description: fmt.Sprintf("debits (%s) != credits (%s)", totalDebit.StringFixed(2), totalCredit.StringFixed(2)),
			})
		}
	}

	for _, line := range lines {
		// Invariant 2: Exactly one of debit/credit per row, never negative.
		hasDebit := !line.Debit.IsZero()
		hasCredit := !line.Credit.IsZero()
		if hasDebit == hasCredit {
			errs = append(errs, ValidationError{
				Invariant:   2,
				EntryID:     line.LineID,
				Description: "line must have exactly one of debit or credit",
			})
		}
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			errs = append(errs, ValidationError{
				Invariant:   2,
				EntryID:     line.LineID,
				Description: "amounts must not be negative",
			})
		}

		// Invariant 3: Valid account references.
		if !accounts.Exists(line.AccountID) {
			errs = append(errs, ValidationError{
				Invariant:   3,
				EntryID:     line.LineID,
				Description: fmt.Sprintf("unknown account %s", line.AccountID),
			})
		}

		// Invariant 4: Date within month.
		if line.Date.Year() != year || int(line.Date.Month()) != month {
			errs = append(errs, ValidationError{
				Invariant:   4,
				EntryID:     line.LineID,
				Description: fmt.Sprintf("date %s not in %04d-%02d", line.Date.Format("2006-01-02"), year, month),
			})
		}

		// Invariant 6: amounts carry no more than 2 decimal places.
		two := decimal.NewFromInt(100)
		if !line.Debit.IsZero() && !line.Debit.Mul(two).Equal(line.Debit.Mul(two).Floor()) {
			errs = append(errs, ValidationError{
				Invariant:   6,
				EntryID:     line.LineID,
				Description: fmt.Sprintf("debit %s has more than 2 decimal places", line.Debit),
			})
		}
		if !line.Credit.IsZero() && !line.Credit.Mul(two).Equal(line.Credit.Mul(two).Floor()) {
			errs = append(errs, ValidationError{
				Invariant:   6,
				EntryID:     line.LineID,
				Description: fmt.Sprintf("credit %s has more than 2 decimal places", line.Credit),
			})
		}
	}

	// Invariant 5: entry sequence numbers are contiguous 1..N within the month.
	seqSeen := make(map[int]bool)
	for _, line := range lines {
		_, _, seq, err := id.ParseEntryID(line.EntryID)
		if err != nil {
			errs = append(errs, ValidationError{
				Invariant:   5,
				EntryID:     line.LineID,
				Description: fmt.Sprintf("invalid entry ID: %v", err),
			})
			continue
		}
		seqSeen[seq] = true
	}
	if len(seqSeen) > 0 {
		for i := 1; i <= len(seqSeen); i++ {
			if !seqSeen[i] {
				errs = append(errs, ValidationError{
					Invariant:   5,
					EntryID:     fmt.Sprintf("seq %d", i),
					Description: fmt.Sprintf("missing sequence %d in 1..%d", i, len(seqSeen)),
				})
			}
		}
	}

	return errs
}
