package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tally-books/tally/internal/id"
	"github.com/tally-books/tally/internal/model"
)

// Service provides business logic for journal entries, backed by
// <root>/<YYYY>/<MM>/journal.csv files.
type Service struct {
	root     string
	accounts AccountDirectory
	compound CompoundConfig
}

// NewService creates a journal Service.
func NewService(root string, accounts AccountDirectory, compound CompoundConfig) *Service {
	return &Service{root: root, accounts: accounts, compound: compound}
}

// AddEntry creates a balanced multi-line entry from user-supplied parts,
// validates it against the month's existing lines, and appends it.
// Returns the entry ID.
func (s *Service) AddEntry(date time.Time, description string, parts []LinePart) (string, error) {
	if len(parts) < 2 {
		return "", fmt.Errorf("an entry needs at least two lines")
	}

	year := date.Year()
	month := int(date.Month())

	seq, err := s.NextEntrySeq(year, month)
	if err != nil {
		return "", err
	}

	entryID := id.FormatEntryID(year, month, seq)
	newLines := make([]model.Line, len(parts))
	for i, p := range parts {
		line := model.Line{
			LineID:      id.FormatLineID(entryID, i),
			EntryID:     entryID,
			Date:        date,
			AccountID:   p.AccountID,
			Description: description,
		}
		if p.Side == model.SideDebit {
			line.Debit = p.Amount
		} else {
			line.Credit = p.Amount
		}
		newLines[i] = line
	}

	// Read existing lines for validation.
	existing, err := s.ReadMonth(year, month)
	if err != nil {
		return "", err
	}

	// Validate ALL lines together; nothing is committed on failure.
	allLines := append(existing, newLines...)
	if verrs := ValidateLines(allLines, s.accounts, year, month); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return "", fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}

	// Append to journal file (create dir + header if new).
	journalPath := s.monthPath(year, month)
	dir := filepath.Dir(journalPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating journal dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(journalPath); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(journalPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return "", fmt.Errorf("opening journal: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return "", fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendLines(f, newLines); err != nil {
		return "", fmt.Errorf("appending lines: %w", err)
	}

	return entryID, nil
}

// AddIncome expands a simple income entry (tax-aware) and commits it.
func (s *Service) AddIncome(date time.Time, description string, p IncomeParams) (string, error) {
	acct, ok := s.accounts.Get(p.AccountID)
	if !ok {
		return "", fmt.Errorf("unknown account %s", p.AccountID)
	}
	parts, err := ExpandIncome(p, acct.Category, s.compound)
	if err != nil {
		return "", err
	}
	return s.AddEntry(date, description, parts)
}

// AddExpense expands a simple expense entry (withholding-aware) and commits it.
func (s *Service) AddExpense(date time.Time, description string, p ExpenseParams) (string, error) {
	acct, ok := s.accounts.Get(p.AccountID)
	if !ok {
		return "", fmt.Errorf("unknown account %s", p.AccountID)
	}
	parts, err := ExpandExpense(p, acct.Category, s.compound)
	if err != nil {
		return "", err
	}
	return s.AddEntry(date, description, parts)
}

// ReadMonth reads all lines for a given year/month.
func (s *Service) ReadMonth(year, month int) ([]model.Line, error) {
	path := s.monthPath(year, month)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening journal %s: %w", path, err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("reading journal %s: %w", path, err)
	}
	return lines, nil
}

// ReadYear reads all lines for a year, in month file order.
func (s *Service) ReadYear(year int) ([]model.Line, error) {
	var all []model.Line
	for month := 1; month <= 12; month++ {
		lines, err := s.ReadMonth(year, month)
		if err != nil {
			return nil, err
		}
		all = append(all, lines...)
	}
	return all, nil
}

// ReadAll reads every journal line under the books directory, in
// year/month file order. Within a file, original row order is preserved.
func (s *Service) ReadAll() ([]model.Line, error) {
	years, err := s.yearDirs()
	if err != nil {
		return nil, err
	}

	var all []model.Line
	for _, year := range years {
		lines, err := s.ReadYear(year)
		if err != nil {
			return nil, err
		}
		all = append(all, lines...)
	}
	return all, nil
}

// References reports whether any journal line references the account.
func (s *Service) References(accountID string) (bool, error) {
	all, err := s.ReadAll()
	if err != nil {
		return false, err
	}
	for _, line := range all {
		if line.AccountID == accountID {
			return true, nil
		}
	}
	return false, nil
}

// NextEntrySeq returns the next available sequence number for a month.
func (s *Service) NextEntrySeq(year, month int) (int, error) {
	lines, err := s.ReadMonth(year, month)
	if err != nil {
		return 0, err
	}

	maxSeq := 0
	for _, line := range lines {
		_, _, seq, err := id.ParseEntryID(line.EntryID)
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1, nil
}

func (s *Service) monthPath(year, month int) string {
	return filepath.Join(s.root, fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month), "journal.csv")
}

func (s *Service) yearDirs() ([]int, error) {
	entries, err := os.ReadDir(s.root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading books dir: %w", err)
	}

	var years []int
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		year, err := strconv.Atoi(e.Name())
		if err != nil || year < 1000 || year > 9999 {
			continue
		}
		years = append(years, year)
	}
	sort.Ints(years)
	return years, nil
}
