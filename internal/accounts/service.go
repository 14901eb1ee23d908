package accounts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/tally-books/tally/internal/model"
)

// ReferenceChecker reports whether any journal line references an account.
type ReferenceChecker interface {
	References(accountID string) (bool, error)
}

// Service provides in-memory lookup and lifecycle rules over the chart
// of accounts. Listing order is insertion order; reports follow it.
type Service struct {
	accounts []model.Account
	byID     map[string]model.Account
}

// NewService creates a Service from a slice of accounts.
func NewService(accounts []model.Account) *Service {
	byID := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}
	return &Service{accounts: accounts, byID: byID}
}

// Load reads chart-of-accounts.csv from a books directory and returns a Service.
func Load(root string) (*Service, error) {
	path := filepath.Join(root, "accounts", "chart-of-accounts.csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return NewService(accts), nil
}

// All returns all accounts in listing order.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Get returns an account by ID.
func (s *Service) Get(id string) (model.Account, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// Exists reports whether an account ID exists.
func (s *Service) Exists(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// ByCategory returns all accounts of the given category, in listing order.
func (s *Service) ByCategory(category model.Category) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.Category == category {
			result = append(result, a)
		}
	}
	return result
}

// Add appends a new account. The ID must be unused and the category known.
func (s *Service) Add(a model.Account) error {
	if a.ID == "" {
		return fmt.Errorf("account ID is required")
	}
	if a.Name == "" {
		return fmt.Errorf("account name is required")
	}
	if !a.Category.Valid() {
		return fmt.Errorf("unknown category %q", a.Category)
	}
	if s.Exists(a.ID) {
		return fmt.Errorf("account %s already exists", a.ID)
	}
	s.accounts = append(s.accounts, a)
	s.byID[a.ID] = a
	return nil
}

// Rename changes an account's name.
func (s *Service) Rename(id, name string) error {
	return s.update(id, func(a *model.Account) { a.Name = name })
}

// Reclassify changes an account's category. The normal balance side
// follows the category automatically.
func (s *Service) Reclassify(id string, category model.Category) error {
	if !category.Valid() {
		return fmt.Errorf("unknown category %q", category)
	}
	return s.update(id, func(a *model.Account) { a.Category = category })
}

// SetBeginningBalance changes an account's beginning balance.
func (s *Service) SetBeginningBalance(id string, balance decimal.Decimal) error {
	return s.update(id, func(a *model.Account) { a.BeginningBalance = balance })
}

// Remove deletes an account. Removal is refused while any journal line
// still references the account.
func (s *Service) Remove(id string, refs ReferenceChecker) error {
	if !s.Exists(id) {
		return fmt.Errorf("account %s not found", id)
	}
	referenced, err := refs.References(id)
	if err != nil {
		return fmt.Errorf("checking references for %s: %w", id, err)
	}
	if referenced {
		return fmt.Errorf("account %s is referenced by journal entries and cannot be removed", id)
	}
	for i, a := range s.accounts {
		if a.ID == id {
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			break
		}
	}
	delete(s.byID, id)
	return nil
}

func (s *Service) update(id string, mutate func(*model.Account)) error {
	if !s.Exists(id) {
		return fmt.Errorf("account %s not found", id)
	}
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			mutate(&s.accounts[i])
			s.byID[id] = s.accounts[i]
			return nil
		}
	}
	return nil
}

// Save writes the chart of accounts to accounts/chart-of-accounts.csv.
func (s *Service) Save(root string) error {
	dir := filepath.Join(root, "accounts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	path := filepath.Join(dir, "chart-of-accounts.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, s.accounts); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}
