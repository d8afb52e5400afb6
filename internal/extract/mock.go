package extract

import (
	"context"

	"github.com/taxops/perdcomp/internal/importer"
)

// Mock satisfies importer.Extractor without network access. Used by
// tests and by --mock runs.
type Mock struct {
	Result importer.Extraction
	Err    error
	Calls  int
}

func (m *Mock) Extract(_ context.Context, _ string) (*importer.Extraction, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	r := m.Result
	return &r, nil
}
