package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-books/tally/internal/model"
)

// Header is the CSV header for journal.csv.
const Header = "line_id,entry_id,date,account_id,description,debit,credit,memo"

const (
	numFields  = 8
	dateFormat = "2006-01-02"
	colLineID  = 0
	colEntryID = 1
	colDate    = 2
	colAcctID  = 3
	colDesc    = 4
	colDebit   = 5
	colCredit  = 6
	colMemo    = 7
)

// ReadLines reads all journal lines from a journal.csv reader.
func ReadLines(r io.Reader) ([]model.Line, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var lines []model.Line
	for i, rec := range records[1:] {
		line, err := UnmarshalLine(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// WriteLines writes lines to a journal.csv writer (including header).
func WriteLines(w io.Writer, lines []model.Line) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, line := range lines {
		if err := cw.Write(MarshalLine(line)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendLines appends lines to an existing journal.csv writer (no header).
func AppendLines(w io.Writer, lines []model.Line) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, line := range lines {
		if err := cw.Write(MarshalLine(line)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalLine converts a Line to a CSV row ([]string).
func MarshalLine(line model.Line) []string {
	row := make([]string, numFields)
	row[colLineID] = line.LineID
	row[colEntryID] = line.EntryID
	row[colDate] = line.Date.Format(dateFormat)
	row[colAcctID] = line.AccountID
	row[colDesc] = line.Description

	if !line.Debit.IsZero() {
		row[colDebit] = line.Debit.StringFixed(2)
	}
	if !line.Credit.IsZero() {
		row[colCredit] = line.Credit.StringFixed(2)
	}

	row[colMemo] = line.Memo
	return row
}

// UnmarshalLine converts a CSV row to a Line.
func UnmarshalLine(record []string) (model.Line, error) {
	if len(record) != numFields {
		return model.Line{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.Line{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	var debit, credit decimal.Decimal

	if record[colDebit] != "" {
		debit, err = decimal.NewFromString(record[colDebit])
		if err != nil {
			return model.Line{}, fmt.Errorf("parsing debit %q: %w", record[colDebit], err)
		}
	}

	if record[colCredit] != "" {
		credit, err = decimal.NewFromString(record[colCredit])
		if err != nil {
			return model.Line{}, fmt.Errorf("parsing credit %q: %w", record[colCredit], err)
		}
	}

	return model.Line{
		LineID:      record[colLineID],
		EntryID:     record[colEntryID],
		Date:        date,
		AccountID:   record[colAcctID],
		Description: record[colDesc],
		Debit:       debit,
		Credit:      credit,
		Memo:        record[colMemo],
	}, nil
}
