package export

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"

	"github.com/taxops/perdcomp/internal/model"
)

func sampleOrders() []model.Order {
	return []model.Order{
		{
			ID:               "a",
			Number:           "12345.67890.123456.1.3.01-2345",
			TransmissionDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			CreditType:       "PIS",
			DocumentType:     "Declaração de Compensação",
			Status:           model.StatusApproved,
			Value:            1234.56,
			Paid:             true,
			Bank:             "Banco do Brasil",
		},
		{
			ID:               "b",
			Number:           "98765.43210.654321.1.1.02-9876",
			TransmissionDate: time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
			CreditType:       "COFINS",
			DocumentType:     "Pedido de Ressarcimento",
			Status:           model.StatusUnderReview,
			Value:            500,
		},
	}
}

func TestWriteCSVGolden(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleOrders()); err != nil {
		t.Fatal(err)
	}

	g := goldie.New(t)
	g.Assert(t, "orders_csv", buf.Bytes())
}

func TestWriteCSVRefusesEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); !errors.Is(err, ErrNoRecords) {
		t.Fatalf("err = %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("no file content may be produced on refusal")
	}
}
