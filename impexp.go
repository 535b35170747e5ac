package fundtrack

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// backup is the wire shape of a JSON export: the funds plus a little
// provenance. Import also accepts a bare fund array.
type backup struct {
	Funds      []*Fund `json:"funds"`
	ExportDate string  `json:"exportDate"`
	Version    string  `json:"version"`
}

const backupVersion = "1.0"

// ExportJSON writes every fund as a JSON backup document.
func ExportJSON(w io.Writer, s *State) error {
	b := backup{
		Funds:      s.Funds,
		ExportDate: time.Now().Format(time.RFC3339),
		Version:    backupVersion,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("cannot export funds: %w", err)
	}
	return nil
}

// ImportJSON reads a JSON backup document, or a bare array of funds, and
// returns the imported funds. The reader is fully parsed and validated
// before anything is returned, so a malformed file imports nothing.
func ImportJSON(r io.Reader) ([]*Fund, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read import: %w", err)
	}

	var b backup
	if err := json.Unmarshal(raw, &b); err != nil || b.Funds == nil {
		// not a backup document, try a bare fund array
		if err := json.Unmarshal(raw, &b.Funds); err != nil {
			return nil, fmt.Errorf("cannot parse import: %w", err)
		}
	}
	if len(b.Funds) == 0 {
		return nil, fmt.Errorf("import holds no funds")
	}
	for _, f := range b.Funds {
		if f.Name == "" || f.Code == "" {
			return nil, fmt.Errorf("imported fund is missing a name or code")
		}
		if f.ID == "" {
			f.ID = uuid.NewString()
		}
		if f.Transactions == nil {
			f.Transactions = []Transaction{}
		}
		if f.PriceHistory == nil {
			f.PriceHistory = []PricePoint{}
		}
	}
	return b.Funds, nil
}

// tabular column layout shared by the CSV and XLSX adapters. One row per
// transaction; fund-level fields repeat on every row of the same fund.
var tabularHeader = []string{
	"fund", "code", "date", "type", "units", "price", "amount", "fee", "current price",
}

// rows flattens the state into the tabular layout, header first. A fund
// without transactions still gets one row, with the ledger columns empty,
// so it survives a round trip.
func rows(s *State) [][]string {
	out := [][]string{tabularHeader}
	for _, f := range s.Funds {
		if len(f.Transactions) == 0 {
			out = append(out, []string{f.Name, f.Code, "", "", "", "", "", "", f.Price.String()})
			continue
		}
		for _, tx := range f.Transactions {
			out = append(out, []string{
				f.Name,
				f.Code,
				tx.Date.String(),
				string(tx.Type),
				strconv.FormatInt(tx.Units, 10),
				tx.Price.String(),
				tx.Gross().String(),
				f.Fee(tx).String(),
				f.Price.String(),
			})
		}
	}
	return out
}

// ExportCSV writes the state in the tabular layout as CSV.
func ExportCSV(w io.Writer, s *State) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows(s)); err != nil {
		return fmt.Errorf("cannot export csv: %w", err)
	}
	return nil
}

// ImportCSV reads a tabular CSV and rebuilds funds from it.
func ImportCSV(r io.Reader) ([]*Fund, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse csv: %w", err)
	}
	return fromRows(records)
}

// ExportXLSX writes the state in the tabular layout as an xlsx workbook
// with a single "Funds" sheet.
func ExportXLSX(w io.Writer, s *State) error {
	x := excelize.NewFile()
	defer x.Close()

	const sheet = "Funds"
	x.SetSheetName(x.GetSheetName(0), sheet)
	for i, row := range rows(s) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("cannot export xlsx: %w", err)
		}
		if err := x.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("cannot export xlsx: %w", err)
		}
	}
	if err := x.Write(w); err != nil {
		return fmt.Errorf("cannot export xlsx: %w", err)
	}
	return nil
}

// ImportXLSX reads the first sheet of an xlsx workbook in the tabular
// layout and rebuilds funds from it.
func ImportXLSX(r io.Reader) ([]*Fund, error) {
	x, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("cannot open xlsx: %w", err)
	}
	defer x.Close()

	records, err := x.GetRows(x.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("cannot read xlsx: %w", err)
	}
	return fromRows(records)
}

// fromRows rebuilds funds from tabular records. Rows are grouped by the
// fund name and code pair, in first-appearance order. The tabular layout
// carries no fee schedule, so imported funds get zero fees, and no price
// history, so it starts empty. Every imported fund gets a fresh id.
func fromRows(records [][]string) ([]*Fund, error) {
	if len(records) < 2 {
		return nil, fmt.Errorf("import holds no data rows")
	}

	var funds []*Fund
	byKey := map[string]*Fund{}
	for i, rec := range records[1:] {
		line := i + 2
		if len(rec) < 2 {
			return nil, fmt.Errorf("line %d: expected at least a fund name and code", line)
		}
		name := strings.TrimSpace(rec[0])
		code := strings.ToUpper(strings.TrimSpace(rec[1]))
		if name == "" || code == "" {
			return nil, fmt.Errorf("line %d: fund name and code are required", line)
		}

		key := name + "\x00" + code
		f := byKey[key]
		if f == nil {
			f = &Fund{
				ID:           uuid.NewString(),
				Name:         name,
				Code:         code,
				Transactions: []Transaction{},
				PriceHistory: []PricePoint{},
			}
			byKey[key] = f
			funds = append(funds, f)
		}

		if len(rec) > 8 && strings.TrimSpace(rec[8]) != "" {
			price, err := decimal.NewFromString(strings.TrimSpace(rec[8]))
			if err != nil {
				return nil, fmt.Errorf("line %d: bad current price %q: %v", line, rec[8], err)
			}
			f.Price = price
		}

		// ledger columns are optional: a row may only carry the fund
		if len(rec) < 6 || strings.TrimSpace(rec[3]) == "" {
			continue
		}
		day, err := ParseDate(strings.TrimSpace(rec[2]))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad date %q: %v", line, rec[2], err)
		}
		typ, err := ParseTxType(strings.ToLower(strings.TrimSpace(rec[3])))
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", line, err)
		}
		units, err := strconv.ParseInt(strings.TrimSpace(rec[4]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad units %q: %v", line, rec[4], err)
		}
		price, err := decimal.NewFromString(strings.TrimSpace(rec[5]))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad price %q: %v", line, rec[5], err)
		}
		tx, err := newTransaction(day, typ, units, price)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", line, err)
		}
		f.Transactions = append(f.Transactions, tx)
	}
	return funds, nil
}

// ImportFile parses the reader according to the file extension (.json,
// .csv or .xlsx) and returns the funds it holds. Nothing is modified on
// error: the caller replaces its state only with a fully parsed result.
func ImportFile(name string, r io.Reader) ([]*Fund, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".json":
		return ImportJSON(r)
	case ".csv":
		return ImportCSV(r)
	case ".xlsx":
		return ImportXLSX(r)
	default:
		return nil, fmt.Errorf("unsupported import format %q, want .json, .csv or .xlsx", ext)
	}
}

// Replace swaps the state's funds for the imported set and selects the
// first one.
func (s *State) Replace(funds []*Fund) {
	s.Funds = funds
	s.CurrentFundID = ""
	if len(funds) > 0 {
		s.CurrentFundID = funds[0].ID
	}
}
