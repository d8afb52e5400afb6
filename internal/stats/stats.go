// Package stats computes the summary figures shown on the dashboard
// cards. Everything is recomputed from scratch on every call; the
// collection is small enough that a full scan is the right design.
package stats

import "github.com/taxops/perdcomp/internal/model"

// Stats aggregates a collection, usually the currently filtered view.
type Stats struct {
	TotalCompensated float64
	TotalRestitution float64
	TotalPaid        float64
	TotalPending     float64
	GrossTotal       float64
	PaidCount        int
	TotalCount       int
}

// Aggregate reduces the given collection. TotalPending deliberately
// nets the restitution total against the paid total of any record,
// compensation ones included; that is how the books have always been
// kept here, so keep it that way.
func Aggregate(orders []model.Order) Stats {
	var s Stats
	for _, o := range orders {
		if o.Kind() == model.Compensation {
			s.TotalCompensated += o.Value
		} else {
			s.TotalRestitution += o.Value
		}
		if o.Paid {
			s.TotalPaid += o.Value
			s.PaidCount++
		}
	}
	s.TotalPending = s.TotalRestitution - s.TotalPaid
	if s.TotalPending < 0 {
		s.TotalPending = 0
	}
	s.GrossTotal = s.TotalCompensated + s.TotalPending
	s.TotalCount = len(orders)
	return s
}
