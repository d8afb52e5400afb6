// Package filter derives views over the order collection. Apply is pure:
// it never mutates its input and depends only on its arguments.
package filter

import (
	"strings"
	"time"

	"github.com/taxops/perdcomp/internal/model"
)

// View selects which classification side of the collection passes.
type View string

const (
	ViewAll          View = "all"
	ViewCompensation View = "compensation"
	ViewRestitution  View = "restitution"
)

// Query is the filter input. Nil date bounds impose no constraint on
// that side; both bounds are inclusive of the whole day they name.
type Query struct {
	Search string
	From   *time.Time
	To     *time.Time
	View   View
}

// IsZero reports whether the query filters nothing.
func (q Query) IsZero() bool {
	return q.Search == "" && q.From == nil && q.To == nil &&
		(q.View == "" || q.View == ViewAll)
}

// Apply returns the records matching all three predicates.
func Apply(orders []model.Order, q Query) []model.Order {
	var from, to time.Time
	if q.From != nil {
		from = startOfDay(*q.From)
	}
	if q.To != nil {
		to = endOfDay(*q.To)
	}
	search := strings.ToLower(q.Search)

	out := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if !matchSearch(o, search) {
			continue
		}
		if q.From != nil && o.TransmissionDate.Before(from) {
			continue
		}
		if q.To != nil && o.TransmissionDate.After(to) {
			continue
		}
		if !matchView(o, q.View) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// matchSearch checks filing number OR bank. An empty bank never matches
// a non-empty term.
func matchSearch(o model.Order, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(o.Number), term) ||
		strings.Contains(strings.ToLower(o.Bank), term)
}

func matchView(o model.Order, v View) bool {
	switch v {
	case ViewCompensation:
		return o.Kind() == model.Compensation
	case ViewRestitution:
		return o.Kind() == model.Restitution
	default:
		return true
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, t.Location())
}
