package model

import "time"

// Company identifies the business whose books a project directory holds.
// All accounts and journal lines in a directory belong to its company;
// removing the directory removes them with it.
type Company struct {
	ID              string
	Name            string
	Address         string
	Phone           string
	TaxID           string
	FiscalYearStart time.Time
	FiscalYearEnd   time.Time
}
