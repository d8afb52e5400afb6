package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/taxops/perdcomp/internal/filter"
	"github.com/taxops/perdcomp/internal/model"
)

// ReportHeader is the fixed column set of the PDF table. Credit and
// document type share one cell.
var ReportHeader = []string{
	"PER/DCOMP", "Transmissão", "Crédito / Documento", "Situação", "Valor", "Pago", "Banco",
}

// ReportTitle varies with the active view type.
func ReportTitle(view filter.View) string {
	switch view {
	case filter.ViewCompensation:
		return "Relatório de Compensações (DCOMP)"
	case filter.ViewRestitution:
		return "Relatório de Restituições/Ressarcimentos"
	default:
		return "Relatório Geral de Fluxo PER/DCOMP"
	}
}

// The report document is a pdfcpu "create" description: a landscape A4
// page with a header block and one table over the filtered collection.

type reportDoc struct {
	Paper  string                `json:"paper"`
	Origin string                `json:"origin"`
	Pages  map[string]reportPage `json:"pages"`
}

type reportPage struct {
	Content reportContent `json:"content"`
}

type reportContent struct {
	Text  []textBox  `json:"text"`
	Table []tableBox `json:"table"`
}

type reportFont struct {
	Name  string `json:"name"`
	Size  int    `json:"size"`
	Color string `json:"color,omitempty"`
}

type textBox struct {
	Value  string     `json:"value"`
	Anchor string     `json:"anchor"`
	Dx     float64    `json:"dx"`
	Dy     float64    `json:"dy"`
	Font   reportFont `json:"font"`
}

type tableHeader struct {
	Values          []string   `json:"values"`
	BackgroundColor string     `json:"backgroundColor"`
	Font            reportFont `json:"font"`
}

type tableBox struct {
	Anchor     string      `json:"anchor"`
	Dy         float64     `json:"dy"`
	Width      float64     `json:"width"`
	Rows       int         `json:"rows"`
	Cols       int         `json:"cols"`
	ColWidths  []int       `json:"colWidths"`
	ColAnchors []string    `json:"colAnchors"`
	LineHeight int         `json:"lineHeight"`
	Font       reportFont  `json:"font"`
	Header     tableHeader `json:"header"`
	Values     [][]string  `json:"values"`
}

// BuildReport assembles the create-JSON document for the filtered
// collection. Pure: the same input and clock produce the same bytes.
func BuildReport(orders []model.Order, view filter.View, now time.Time) ([]byte, error) {
	if len(orders) == 0 {
		return nil, ErrNoRecords
	}

	var total float64
	for _, o := range orders {
		total += o.Value
	}

	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		bank := o.Bank
		if bank == "" {
			bank = "-"
		}
		rows = append(rows, []string{
			o.Number,
			model.FormatDate(o.TransmissionDate),
			fmt.Sprintf("%s (%s)", o.CreditType, o.DocumentType),
			o.Status,
			model.FormatBRL(o.Value),
			paidLabel(o.Paid),
			bank,
		})
	}

	doc := reportDoc{
		Paper:  "A4L",
		Origin: "upperLeft",
		Pages: map[string]reportPage{
			"1": {Content: reportContent{
				Text: []textBox{
					{Value: ReportTitle(view), Anchor: "tl", Dx: 40, Dy: 40,
						Font: reportFont{Name: "Helvetica-Bold", Size: 20, Color: "#064E3B"}},
					{Value: "Gerado em: " + model.FormatDate(now), Anchor: "tl", Dx: 40, Dy: 70,
						Font: reportFont{Name: "Helvetica", Size: 10, Color: "#646464"}},
					{Value: fmt.Sprintf("Total de registros: %d", len(orders)), Anchor: "tl", Dx: 40, Dy: 84,
						Font: reportFont{Name: "Helvetica", Size: 10, Color: "#646464"}},
					{Value: "Valor Total do Período: " + model.FormatBRL(total), Anchor: "tl", Dx: 40, Dy: 98,
						Font: reportFont{Name: "Helvetica", Size: 10, Color: "#646464"}},
				},
				Table: []tableBox{{
					Anchor:     "tc",
					Dy:         120,
					Width:      760,
					Rows:       len(rows),
					Cols:       len(ReportHeader),
					ColWidths:  []int{18, 10, 26, 12, 14, 8, 12},
					ColAnchors: []string{"Left", "Left", "Left", "Center", "Right", "Center", "Left"},
					LineHeight: 14,
					Font:       reportFont{Name: "Helvetica", Size: 8},
					Header: tableHeader{
						Values:          ReportHeader,
						BackgroundColor: "#065F46",
						Font:            reportFont{Name: "Helvetica-Bold", Size: 8, Color: "#FFFFFF"},
					},
					Values: rows,
				}},
			}},
		},
	}

	return json.MarshalIndent(doc, "", "  ")
}

// WritePDF materializes the report through pdfcpu.
func WritePDF(w io.Writer, orders []model.Order, view filter.View, now time.Time) error {
	doc, err := BuildReport(orders, view, now)
	if err != nil {
		return err
	}
	conf := pdfmodel.NewDefaultConfiguration()
	if err := api.Create(nil, bytes.NewReader(doc), w, conf); err != nil {
		return fmt.Errorf("gerar PDF: %w", err)
	}
	return nil
}
