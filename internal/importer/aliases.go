package importer

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Field names a logical column of the tabular format.
type Field string

const (
	FieldNumber   Field = "number"
	FieldDate     Field = "date"
	FieldCredit   Field = "credit"
	FieldDocument Field = "document"
	FieldStatus   Field = "status"
	FieldValue    Field = "value"
	FieldBank     Field = "bank"
)

// Aliases maps normalized header labels to logical fields. Headers not
// present here are ignored by the reader.
type Aliases map[string]Field

// DefaultAliases covers the spellings and casings seen in the
// spreadsheets users actually upload.
func DefaultAliases() Aliases {
	a := Aliases{}
	add := func(f Field, labels ...string) {
		for _, l := range labels {
			a[normalizeHeader(l)] = f
		}
	}
	add(FieldNumber, "PER/DCOMP", "PERDCOMP", "PER DCOMP", "Nº PER/DCOMP", "Numero PER/DCOMP", "Número PER/DCOMP")
	add(FieldDate, "Data de Transmissão", "Data de Transmissao", "Data Transmissão", "Data Transmissao")
	add(FieldCredit, "Tipo de Crédito", "Tipo de Credito")
	add(FieldDocument, "Tipo de Documento", "Documento")
	add(FieldStatus, "Situação", "Situacao", "Status")
	add(FieldValue, "Valor", "Valor (R$)", "Valor Total")
	add(FieldBank, "Banco")
	return a
}

// MergeFile layers extra aliases from a YAML file on top, keyed by
// logical field:
//
//	number: ["Num Pedido"]
//	status: ["Estado"]
func (a Aliases) MergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read alias file: %w", err)
	}
	var extra map[Field][]string
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return fmt.Errorf("parse alias file: %w", err)
	}
	for field, labels := range extra {
		for _, l := range labels {
			a[normalizeHeader(l)] = field
		}
	}
	return nil
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}
