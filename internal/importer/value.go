package importer

import (
	"strconv"
	"strings"
)

// ParseValue normalizes a monetary cell into a float. Accepts values
// that are already numeric, or strings in the Brazilian convention
// (currency symbol, dot thousands separator, comma decimal separator).
// Anything unparsable degrades to 0; a bad value never fails the row.
func ParseValue(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case nil:
		return 0
	}

	s, ok := v.(string)
	if !ok || s == "" {
		return 0
	}

	s = strings.ReplaceAll(s, "R$", "")
	s = strings.Join(strings.Fields(s), "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return n
}
