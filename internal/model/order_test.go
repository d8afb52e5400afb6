package model

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		docType string
		want    Kind
	}{
		{"Declaração de Compensação", Compensation},
		{"DECLARAÇÃO DE COMPENSAÇÃO", Compensation},
		{"dcomp retificadora", Compensation},
		{"PER/DCOMP", Compensation},
		{"Pedido de Ressarcimento", Restitution},
		{"Pedido de Restituição", Restitution},
		// No marker at all defaults to Restitution.
		{"N/A", Restitution},
		{"", Restitution},
	}

	for _, c := range cases {
		if got := Classify(c.docType); got != c.want {
			t.Errorf("Classify(%q) = %v, want %v", c.docType, got, c.want)
		}
	}
}

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{1234.56, "R$ 1.234,56"},
		{500, "R$ 500,00"},
		{1500000.1, "R$ 1.500.000,10"},
		{-42.5, "-R$ 42,50"},
	}
	for _, c := range cases {
		if got := FormatBRL(c.in); got != c.want {
			t.Errorf("FormatBRL(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
