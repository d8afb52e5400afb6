package importer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/taxops/perdcomp/internal/model"
)

func TestReadTabularScenario(t *testing.T) {
	in := "PER/DCOMP;Valor;Tipo de Documento\n001;R$ 500,00;Declaração de Compensação\n"

	orders, err := ReadTabular(strings.NewReader(in), DefaultAliases())
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 1 {
		t.Fatalf("got %d orders", len(orders))
	}

	o := orders[0]
	if o.Number != "001" {
		t.Errorf("Number = %q", o.Number)
	}
	if o.Value != 500 {
		t.Errorf("Value = %v", o.Value)
	}
	if o.Kind() != model.Compensation {
		t.Errorf("expected Compensation, got %v", o.Kind())
	}
	if o.ID == "" || o.ImportedAt.IsZero() {
		t.Errorf("id/importedAt not assigned: %+v", o)
	}
	if o.Paid {
		t.Errorf("imported records start unpaid")
	}
}

func TestReadTabularDefaultsAndAliases(t *testing.T) {
	in := "PERDCOMP,Data de Transmissao,Situacao,Coluna Desconhecida\n" +
		"007,2024-03-10,Deferido,ignorada\n" +
		"008,10/03/2024,,\n"

	orders, err := ReadTabular(strings.NewReader(in), DefaultAliases())
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 2 {
		t.Fatalf("got %d orders", len(orders))
	}

	first := orders[0]
	if first.Status != "Deferido" {
		t.Errorf("Status = %q", first.Status)
	}
	want := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	if !first.TransmissionDate.Equal(want) {
		t.Errorf("TransmissionDate = %v", first.TransmissionDate)
	}
	if first.DocumentType != "N/A" || first.CreditType != "N/A" {
		t.Errorf("missing optional fields must default: %+v", first)
	}

	second := orders[1]
	if second.Status != model.StatusUnderReview {
		t.Errorf("empty status must default, got %q", second.Status)
	}
	if !second.TransmissionDate.Equal(want) {
		t.Errorf("dd/mm/yyyy date: %v", second.TransmissionDate)
	}
}

func TestReadTabularBadValueDegradesToZero(t *testing.T) {
	in := "PER/DCOMP;Valor\n001;isso não é um número\n"
	orders, err := ReadTabular(strings.NewReader(in), DefaultAliases())
	if err != nil {
		t.Fatal(err)
	}
	if orders[0].Value != 0 {
		t.Fatalf("Value = %v, want 0", orders[0].Value)
	}
}

func TestReadTabularEmpty(t *testing.T) {
	if _, err := ReadTabular(strings.NewReader(""), DefaultAliases()); !errors.Is(err, ErrEmptyFile) {
		t.Fatalf("empty input: %v", err)
	}
	if _, err := ReadTabular(strings.NewReader("PER/DCOMP;Valor\n"), DefaultAliases()); !errors.Is(err, ErrEmptyFile) {
		t.Fatalf("header-only input: %v", err)
	}
}

func TestAliasFileMerge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases.yaml")
	content := "number: [\"Num Pedido\"]\nstatus: [\"Estado\"]\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	a := DefaultAliases()
	if err := a.MergeFile(path); err != nil {
		t.Fatal(err)
	}

	in := "Num Pedido;Estado\n123;Cancelado\n"
	orders, err := ReadTabular(strings.NewReader(in), a)
	if err != nil {
		t.Fatal(err)
	}
	if orders[0].Number != "123" || orders[0].Status != "Cancelado" {
		t.Fatalf("merged aliases not applied: %+v", orders[0])
	}
}
