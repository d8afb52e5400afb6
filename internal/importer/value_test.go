package importer

import "testing"

func TestParseValue(t *testing.T) {
	cases := []struct {
		in   any
		want float64
	}{
		{"R$ 1.234,56", 1234.56},
		{"R$ 500,00", 500},
		{"1.500.000,10", 1500000.10},
		{"1234,5", 1234.5},
		{"", 0},
		{"garbage", 0},
		{nil, 0},
		{1500, 1500},
		{int64(42), 42},
		{99.9, 99.9},
		{"  R$  10,00 ", 10},
	}
	for _, c := range cases {
		if got := ParseValue(c.in); got != c.want {
			t.Errorf("ParseValue(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
