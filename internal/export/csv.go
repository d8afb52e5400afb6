// Package export serializes a collection for download: tabular CSV, a
// PDF report, or a raw backup snapshot. The tabular and report variants
// take the currently filtered view; only the backup takes the whole
// repository.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/taxops/perdcomp/internal/model"
)

// ErrNoRecords refuses to produce an empty file; the caller shows the
// notice instead.
var ErrNoRecords = errors.New("não há dados filtrados para exportar")

// CSVHeader is the fixed column order of the tabular export.
var CSVHeader = []string{
	"PER/DCOMP",
	"Data de Transmissão",
	"Tipo de Crédito",
	"Tipo de Documento",
	"Situação",
	"Valor",
	"Baixado",
	"Banco",
}

// WriteCSV writes one row per record, semicolon-delimited so the comma
// decimal separator survives. Values round-trip through the importer's
// ParseValue.
func WriteCSV(w io.Writer, orders []model.Order) error {
	if len(orders) == 0 {
		return ErrNoRecords
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("escrever cabeçalho: %w", err)
	}
	for _, o := range orders {
		row := []string{
			o.Number,
			model.FormatDate(o.TransmissionDate),
			o.CreditType,
			o.DocumentType,
			o.Status,
			csvValue(o.Value),
			paidLabel(o.Paid),
			o.Bank,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("escrever linha: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvValue(v float64) string {
	return strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1)
}

func paidLabel(paid bool) string {
	if paid {
		return "SIM"
	}
	return "NÃO"
}
