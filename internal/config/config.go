package config

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/tally-books/tally/internal/model"
)

// FileName is the config file at the root of a books directory.
const FileName = "tally.yaml"

const dateFormat = "2006-01-02"

// Config represents the top-level tally.yaml configuration.
type Config struct {
	Company  CompanyConfig  `yaml:"company"`
	Fiscal   FiscalConfig   `yaml:"fiscal"`
	Tax      TaxConfig      `yaml:"tax"`
	Accounts AccountsConfig `yaml:"accounts"`
}

// CompanyConfig identifies the business whose books these are.
type CompanyConfig struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Address string `yaml:"address,omitempty"`
	Phone   string `yaml:"phone,omitempty"`
	TaxID   string `yaml:"tax_id,omitempty"`
}

// FiscalConfig defines the fiscal year boundaries as ISO dates.
type FiscalConfig struct {
	YearStart string `yaml:"year_start"` // "2025-01-01"
	YearEnd   string `yaml:"year_end"`   // "2025-12-31"
}

// Start parses the fiscal year start date.
func (f FiscalConfig) Start() (time.Time, error) {
	t, err := time.Parse(dateFormat, f.YearStart)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing fiscal year start %q: %w", f.YearStart, err)
	}
	return t, nil
}

// End parses the fiscal year end date.
func (f FiscalConfig) End() (time.Time, error) {
	t, err := time.Parse(dateFormat, f.YearEnd)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing fiscal year end %q: %w", f.YearEnd, err)
	}
	return t, nil
}

// TaxConfig holds the simplified entry-generation tax rates.
type TaxConfig struct {
	OutputRate      float64 `yaml:"output_rate"`      // applied on income entries
	WithholdingRate float64 `yaml:"withholding_rate"` // applied on expense entries
}

// Output returns the output tax rate as a decimal.
func (t TaxConfig) Output() decimal.Decimal {
	return decimal.NewFromFloat(t.OutputRate)
}

// Withholding returns the withholding rate as a decimal.
func (t TaxConfig) Withholding() decimal.Decimal {
	return decimal.NewFromFloat(t.WithholdingRate)
}

// AccountsConfig names the conventional accounts that generated entries
// and the balance sheet rely on.
type AccountsConfig struct {
	Cash               string `yaml:"cash"`
	Receivable         string `yaml:"receivable"`
	TaxPayable         string `yaml:"tax_payable"`
	WithholdingPayable string `yaml:"withholding_payable"`
	RetainedEarnings   string `yaml:"retained_earnings"`
}

// CompanyInfo materializes the configured company with parsed fiscal dates.
func (c *Config) CompanyInfo() (model.Company, error) {
	start, err := c.Fiscal.Start()
	if err != nil {
		return model.Company{}, err
	}
	end, err := c.Fiscal.End()
	if err != nil {
		return model.Company{}, err
	}
	return model.Company{
		ID:              c.Company.ID,
		Name:            c.Company.Name,
		Address:         c.Company.Address,
		Phone:           c.Company.Phone,
		TaxID:           c.Company.TaxID,
		FiscalYearStart: start,
		FiscalYearEnd:   end,
	}, nil
}

// Load reads a tally.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new company,
// with a fiscal year spanning the given calendar year.
func Default(companyName string, year int) *Config {
	return &Config{
		Company: CompanyConfig{
			ID:   uuid.NewString(),
			Name: companyName,
		},
		Fiscal: FiscalConfig{
			YearStart: fmt.Sprintf("%04d-01-01", year),
			YearEnd:   fmt.Sprintf("%04d-12-31", year),
		},
		Tax: TaxConfig{
			OutputRate:      0.11,
			WithholdingRate: 0.02,
		},
		Accounts: AccountsConfig{
			Cash:               "1-1110",
			Receivable:         "1-1130",
			TaxPayable:         "2-2110",
			WithholdingPayable: "2-2120",
			RetainedEarnings:   "3-3200",
		},
	}
}
