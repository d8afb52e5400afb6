package paginate

import (
	"fmt"
	"testing"

	"github.com/taxops/perdcomp/internal/model"
)

func sequence(n int) []model.Order {
	out := make([]model.Order, n)
	for i := range out {
		out[i] = model.Order{ID: fmt.Sprintf("id-%03d", i)}
	}
	return out
}

func TestPaginateTotalPages(t *testing.T) {
	cases := []struct {
		n, size, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{100, 30, 4},
	}
	for _, c := range cases {
		p := Paginate(sequence(c.n), 1, c.size)
		if p.TotalPages != c.want {
			t.Errorf("n=%d size=%d: TotalPages = %d, want %d", c.n, c.size, p.TotalPages, c.want)
		}
	}
}

// Concatenating every page reconstructs the sequence exactly, no gaps
// and no overlaps.
func TestPaginateReconstructs(t *testing.T) {
	for _, size := range []int{1, 3, 10, 20, 50} {
		orders := sequence(47)
		total := Paginate(orders, 1, size).TotalPages

		var rebuilt []model.Order
		for p := 1; p <= total; p++ {
			rebuilt = append(rebuilt, Paginate(orders, p, size).Items...)
		}
		if len(rebuilt) != len(orders) {
			t.Fatalf("size %d: rebuilt %d of %d", size, len(rebuilt), len(orders))
		}
		for i := range orders {
			if rebuilt[i].ID != orders[i].ID {
				t.Fatalf("size %d: element %d out of place", size, i)
			}
		}
	}
}

func TestPaginateBeyondEnd(t *testing.T) {
	p := Paginate(sequence(5), 3, 10)
	if len(p.Items) != 0 {
		t.Fatalf("out-of-range page must be empty, got %d items", len(p.Items))
	}
	if p.TotalPages != 1 {
		t.Fatalf("TotalPages = %d", p.TotalPages)
	}

	if p := Paginate(nil, 1, 10); len(p.Items) != 0 || p.TotalPages != 0 {
		t.Fatalf("empty sequence: %+v", p)
	}
}
