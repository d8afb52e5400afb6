package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status vocabulary used by the entry form and the extraction schema.
// Stored as free text: imported spreadsheets may carry anything.
const (
	StatusUnderReview = "Em análise"
	StatusApproved    = "Deferido"
	StatusRejected    = "Indeferido"
	StatusCancelled   = "Cancelado"
	StatusProcessing  = "Em Processamento"
	StatusRectified   = "Retificado"
)

// Order is a single PER/DCOMP filing record. JSON tags match the
// original snapshot layout so old backups restore unchanged.
type Order struct {
	ID               string    `json:"id"`
	Number           string    `json:"perDcompNumber"`
	TransmissionDate time.Time `json:"transmissionDate"`
	CreditType       string    `json:"creditType"`
	DocumentType     string    `json:"documentType"`
	Status           string    `json:"status"`
	Value            float64   `json:"value"`
	ImportedAt       time.Time `json:"importedAt"`
	Paid             bool      `json:"isPaid"`
	Bank             string    `json:"bank,omitempty"`
}

// NewID returns a fresh opaque record identifier.
func NewID() string {
	return uuid.NewString()
}

// Kind is the outcome of classifying a filing by its document type.
type Kind int

const (
	Restitution Kind = iota
	Compensation
)

func (k Kind) String() string {
	if k == Compensation {
		return "compensation"
	}
	return "restitution"
}

// Classify decides whether a filing offsets a liability (Compensation)
// or claims a refund (Restitution). The match is case-insensitive and
// by substring; anything without a compensation marker counts as
// Restitution, including empty document types.
func Classify(documentType string) Kind {
	dt := strings.ToLower(documentType)
	if strings.Contains(dt, "compensação") || strings.Contains(dt, "dcomp") {
		return Compensation
	}
	return Restitution
}

// Kind reports the classification of the order itself.
func (o Order) Kind() Kind {
	return Classify(o.DocumentType)
}

// FormatBRL renders a value the way the reports print money:
// R$ 1.234,56 (thousands dot, decimal comma).
func FormatBRL(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.2f", v)
	intPart := s[:len(s)-3]
	frac := s[len(s)-2:]

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	out := "R$ " + b.String() + "," + frac
	if neg {
		out = "-" + out
	}
	return out
}

// FormatDate renders dates in day/month/year order for exports.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("02/01/2006")
}
