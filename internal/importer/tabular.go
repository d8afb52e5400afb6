// Package importer parses external input into normalized orders. Both
// variants return a batch for the caller to hand to the store; neither
// mutates anything itself.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/taxops/perdcomp/internal/model"
)

// ErrEmptyFile means the table had a header but no data rows, or no
// content at all. Tabular import is all-or-nothing at the file level.
var ErrEmptyFile = errors.New("planilha vazia ou sem linhas de dados")

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"02/01/2006 15:04",
	"02/01/2006",
}

// ReadTabular parses the first (and only) table of a CSV export. Column
// meaning comes from the header via the alias map; unknown headers are
// ignored. Missing optional fields take the manual-entry defaults.
func ReadTabular(r io.Reader, aliases Aliases) ([]model.Order, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ler planilha: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyFile
	}

	cr := csv.NewReader(strings.NewReader(string(raw)))
	cr.Comma = detectDelimiter(string(raw))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("ler cabeçalho: %w", err)
	}

	// column index -> logical field
	cols := map[int]Field{}
	for i, h := range header {
		if f, ok := aliases[normalizeHeader(h)]; ok {
			cols[i] = f
		}
	}

	now := time.Now().UTC()
	var orders []model.Order
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ler linha: %w", err)
		}
		orders = append(orders, rowToOrder(record, cols, now))
	}

	if len(orders) == 0 {
		return nil, ErrEmptyFile
	}
	return orders, nil
}

func rowToOrder(record []string, cols map[int]Field, now time.Time) model.Order {
	o := model.Order{
		ID:               model.NewID(),
		Number:           "N/A",
		TransmissionDate: now,
		CreditType:       "N/A",
		DocumentType:     "N/A",
		Status:           model.StatusUnderReview,
		ImportedAt:       now,
	}

	for i, field := range cols {
		if i >= len(record) {
			continue
		}
		cell := strings.TrimSpace(record[i])
		if cell == "" {
			continue
		}
		switch field {
		case FieldNumber:
			o.Number = cell
		case FieldDate:
			o.TransmissionDate = parseDate(cell, now)
		case FieldCredit:
			o.CreditType = cell
		case FieldDocument:
			o.DocumentType = cell
		case FieldStatus:
			o.Status = cell
		case FieldValue:
			o.Value = ParseValue(cell)
		case FieldBank:
			o.Bank = cell
		}
	}
	return o
}

func parseDate(cell string, fallback time.Time) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return t.UTC()
		}
	}
	return fallback
}

// detectDelimiter picks between the comma and the semicolon Brazilian
// spreadsheets commonly export, judged on the header line.
func detectDelimiter(data string) rune {
	line := data
	if i := strings.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if strings.Count(line, ";") >= strings.Count(line, ",") && strings.Contains(line, ";") {
		return ';'
	}
	return ','
}
