package export

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taxops/perdcomp/internal/filter"
)

func TestReportTitleByView(t *testing.T) {
	cases := map[filter.View]string{
		filter.ViewAll:          "Relatório Geral de Fluxo PER/DCOMP",
		filter.ViewCompensation: "Relatório de Compensações (DCOMP)",
		filter.ViewRestitution:  "Relatório de Restituições/Ressarcimentos",
		"":                      "Relatório Geral de Fluxo PER/DCOMP",
	}
	for view, want := range cases {
		if got := ReportTitle(view); got != want {
			t.Errorf("ReportTitle(%q) = %q, want %q", view, got, want)
		}
	}
}

func TestBuildReport(t *testing.T) {
	now := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)
	data, err := BuildReport(sampleOrders(), filter.ViewAll, now)
	require.NoError(t, err)

	var doc reportDoc
	require.NoError(t, json.Unmarshal(data, &doc))

	require.Equal(t, "A4L", doc.Paper, "report page is landscape A4")
	page := doc.Pages["1"]

	// Header block: title, generation date, record count, total value.
	var texts []string
	for _, tb := range page.Content.Text {
		texts = append(texts, tb.Value)
	}
	require.Contains(t, texts, "Relatório Geral de Fluxo PER/DCOMP")
	require.Contains(t, texts, "Gerado em: 20/05/2024")
	require.Contains(t, texts, "Total de registros: 2")
	require.Contains(t, texts, "Valor Total do Período: R$ 1.734,56")

	require.Len(t, page.Content.Table, 1)
	table := page.Content.Table[0]
	require.Equal(t, ReportHeader, table.Header.Values)
	require.Equal(t, len(ReportHeader), table.Cols)
	require.Len(t, table.Values, 2)

	// Credit and document types share one cell; value column is
	// right-aligned, status and paid centered.
	require.Equal(t, "PIS (Declaração de Compensação)", table.Values[0][2])
	require.Equal(t, "R$ 1.234,56", table.Values[0][4])
	require.Equal(t, "SIM", table.Values[0][5])
	require.Equal(t, "-", table.Values[1][6], "empty bank renders as a dash")
	require.Equal(t, "Right", table.ColAnchors[4])
	require.Equal(t, "Center", table.ColAnchors[3])
	require.Equal(t, "Center", table.ColAnchors[5])
}

func TestBuildReportRefusesEmpty(t *testing.T) {
	_, err := BuildReport(nil, filter.ViewAll, time.Now())
	if !errors.Is(err, ErrNoRecords) {
		t.Fatalf("err = %v", err)
	}
}
