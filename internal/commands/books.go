package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/tally-books/tally/internal/accounts"
	"github.com/tally-books/tally/internal/config"
	"github.com/tally-books/tally/internal/journal"
)

// books bundles everything a command needs from an opened books directory.
type books struct {
	dir      string
	cfg      *config.Config
	accounts *accounts.Service
	journal  *journal.Service
}

// openBooks loads the config, chart of accounts, and journal service for
// the directory named by the --dir flag.
func openBooks(cmd *cobra.Command) (*books, error) {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return nil, err
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(absDir, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("not a books directory (run tally init first): %w", err)
	}

	acctSvc, err := accounts.Load(absDir)
	if err != nil {
		return nil, err
	}

	compound := journal.CompoundConfig{
		CashAccount:        cfg.Accounts.Cash,
		ReceivableAccount:  cfg.Accounts.Receivable,
		TaxPayableAccount:  cfg.Accounts.TaxPayable,
		WithholdingAccount: cfg.Accounts.WithholdingPayable,
		TaxRate:            cfg.Tax.Output(),
		WithholdingRate:    cfg.Tax.Withholding(),
	}

	return &books{
		dir:      absDir,
		cfg:      cfg,
		accounts: acctSvc,
		journal:  journal.NewService(absDir, acctSvc, compound),
	}, nil
}

// fiscalYearStart parses the configured fiscal year start date.
func (b *books) fiscalYearStart() (time.Time, error) {
	return b.cfg.Fiscal.Start()
}

const dateFlagFormat = "2006-01-02"

// parseDate parses a --date flag value, defaulting to today when empty.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(dateFlagFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q (want YYYY-MM-DD): %w", value, err)
	}
	return t, nil
}
