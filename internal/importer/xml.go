package importer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/taxops/perdcomp/internal/model"
)

// MaxExtractInput bounds how much of an XML filing is handed to the
// extraction collaborator, to keep request size in check.
const MaxExtractInput = 15000

// ErrExtraction wraps any failure of the collaborator call. The file is
// not retried; the user re-attempts the upload.
var ErrExtraction = errors.New("falha ao extrair dados do XML")

// Extraction is the collaborator's best-effort structured guess. It is
// untrusted: any field may come back empty regardless of the schema the
// collaborator claims to honor.
type Extraction struct {
	Number           string  `json:"perDcompNumber"`
	TransmissionDate string  `json:"transmissionDate"`
	CreditType       string  `json:"creditType"`
	DocumentType     string  `json:"documentType"`
	Status           string  `json:"status"`
	Value            float64 `json:"value"`
}

// Extractor is the narrow seam to the external extraction service.
type Extractor interface {
	Extract(ctx context.Context, content string) (*Extraction, error)
}

// ImportXML runs one filing document through the collaborator and
// normalizes the answer. Omitted fields take the same defaults as the
// tabular variant, except status, which defaults to "Em Processamento"
// for freshly transmitted filings.
func ImportXML(ctx context.Context, content string, ex Extractor) (model.Order, error) {
	res, err := ex.Extract(ctx, Truncate(content))
	if err != nil {
		return model.Order{}, fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	now := time.Now().UTC()
	o := model.Order{
		ID:               model.NewID(),
		Number:           "N/A",
		TransmissionDate: now,
		CreditType:       "N/A",
		DocumentType:     "N/A",
		Status:           model.StatusProcessing,
		Value:            res.Value,
		ImportedAt:       now,
	}
	if res.Number != "" {
		o.Number = res.Number
	}
	if res.TransmissionDate != "" {
		o.TransmissionDate = parseDate(res.TransmissionDate, now)
	}
	if res.CreditType != "" {
		o.CreditType = res.CreditType
	}
	if res.DocumentType != "" {
		o.DocumentType = res.DocumentType
	}
	if res.Status != "" {
		o.Status = res.Status
	}
	return o, nil
}

// Truncate caps collaborator input at MaxExtractInput runes.
func Truncate(content string) string {
	runes := []rune(content)
	if len(runes) <= MaxExtractInput {
		return content
	}
	return string(runes[:MaxExtractInput])
}
