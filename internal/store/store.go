// Package store owns the canonical order collection. Every mutation is
// synchronous and immediately followed by a full-collection write to the
// backend; there is no partial persistence and no cross-process locking
// (last writer wins, as the original tool behaves with concurrent tabs).
package store

import (
	"github.com/taxops/perdcomp/internal/model"
)

// Backend is the persistence port. Load returns the stored collection or
// (nil, nil) when nothing has been stored yet.
type Backend interface {
	Load() ([]model.Order, error)
	Save(orders []model.Order) error
}

// WarnFunc receives non-fatal persistence problems. Writes are
// best-effort: a failed save never fails the mutation that caused it.
type WarnFunc func(err error)

// Store holds the in-memory collection, most-recent-first.
type Store struct {
	orders  []model.Order
	backend Backend
	warn    WarnFunc
}

// Open loads the collection from the backend. Absent or unreadable data
// fails open to an empty collection; the problem is reported via warn.
func Open(b Backend, warn WarnFunc) *Store {
	s := &Store{backend: b, warn: warn}
	orders, err := b.Load()
	if err != nil {
		s.report(err)
		orders = nil
	}
	s.orders = orders
	return s
}

func (s *Store) report(err error) {
	if s.warn != nil && err != nil {
		s.warn(err)
	}
}

func (s *Store) persist() {
	s.report(s.backend.Save(s.orders))
}

// Orders returns a copy of the collection; callers never mutate the
// store's slice directly.
func (s *Store) Orders() []model.Order {
	out := make([]model.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Len reports the number of records held.
func (s *Store) Len() int {
	return len(s.orders)
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (model.Order, bool) {
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return model.Order{}, false
}

// Add prepends a single record.
func (s *Store) Add(o model.Order) {
	s.orders = append([]model.Order{o}, s.orders...)
	s.persist()
}

// AddBatch prepends a batch as a contiguous block, preserving its order.
func (s *Store) AddBatch(batch []model.Order) {
	if len(batch) == 0 {
		return
	}
	merged := make([]model.Order, 0, len(batch)+len(s.orders))
	merged = append(merged, batch...)
	merged = append(merged, s.orders...)
	s.orders = merged
	s.persist()
}

// Update replaces the record whose ID matches. A miss is a no-op: update
// never inserts.
func (s *Store) Update(o model.Order) {
	for i := range s.orders {
		if s.orders[i].ID == o.ID {
			s.orders[i] = o
			s.persist()
			return
		}
	}
}

// Remove deletes the record with the given id. Removing an absent id is
// a no-op, not an error.
func (s *Store) Remove(id string) {
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			s.persist()
			return
		}
	}
}

// RestorePrepend prepends an externally supplied collection, as the
// backup restore does. No dedup, no field validation.
func (s *Store) RestorePrepend(batch []model.Order) {
	s.AddBatch(batch)
}

// Clear empties the collection.
func (s *Store) Clear() {
	s.orders = nil
	s.persist()
}
