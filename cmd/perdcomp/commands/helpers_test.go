package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxops/perdcomp/internal/filter"
	"github.com/taxops/perdcomp/internal/model"
	"github.com/taxops/perdcomp/internal/store"
)

func TestParseFlagDate(t *testing.T) {
	iso, err := parseFlagDate("2024-03-15")
	require.NoError(t, err)
	br, err := parseFlagDate("15/03/2024")
	require.NoError(t, err)
	assert.True(t, iso.Equal(br))

	_, err = parseFlagDate("ontem")
	assert.Error(t, err)
}

func TestFilterFlagsQuery(t *testing.T) {
	f := filterFlags{search: "banco", from: "2024-01-01", view: "compensation"}
	q, err := f.query()
	require.NoError(t, err)
	assert.Equal(t, "banco", q.Search)
	assert.Equal(t, filter.ViewCompensation, q.View)
	require.NotNil(t, q.From)
	assert.Nil(t, q.To)

	_, err = filterFlags{view: "tudo"}.query()
	assert.Error(t, err)
}

func TestResolveOrder(t *testing.T) {
	s := store.Open(&store.Memory{Orders: []model.Order{
		{ID: "aaaa-1111", Number: "001/2024"},
		{ID: "aaab-2222", Number: "002/2024"},
	}}, nil)

	o, err := resolveOrder(s, "aaaa-1111")
	require.NoError(t, err)
	assert.Equal(t, "001/2024", o.Number)

	o, err = resolveOrder(s, "aaab")
	require.NoError(t, err)
	assert.Equal(t, "002/2024", o.Number)

	_, err = resolveOrder(s, "aaa")
	assert.Error(t, err, "prefixo ambíguo")

	o, err = resolveOrder(s, "001/2024")
	require.NoError(t, err)
	assert.Equal(t, "aaaa-1111", o.ID)

	_, err = resolveOrder(s, "999/2024")
	assert.Error(t, err)
}

func TestExportFileNames(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "relatorio_perdcomp_2024-03-15.csv", csvFileName(filter.ViewAll, now))
	assert.Equal(t, "relatorio_perdcomp_COMP_2024-03-15.csv", csvFileName(filter.ViewCompensation, now))
	assert.Equal(t, "relatorio_perdcomp_REST_2024-03-15.csv", csvFileName(filter.ViewRestitution, now))

	assert.Equal(t, "relatorio_geral_2024-03-15.pdf", pdfFileName(filter.ViewAll, now))
	assert.Equal(t, "relatorio_compensacao_2024-03-15.pdf", pdfFileName(filter.ViewCompensation, now))
	assert.Equal(t, "relatorio_restituicao_2024-03-15.pdf", pdfFileName(filter.ViewRestitution, now))
}
