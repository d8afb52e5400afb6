package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/taxops/perdcomp/internal/model"
)

// FileName carries the schema version, the same convention the original
// tool used for its storage key. A schema change means a new file name.
const FileName = "orders_v4.json"

// JSONFile persists the whole collection as one indented JSON document.
type JSONFile struct {
	Path string
}

// DefaultPath returns ~/.perdcomp/orders_v4.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".perdcomp", FileName), nil
}

func (f JSONFile) Load() ([]model.Order, error) {
	data, err := os.ReadFile(f.Path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}
	var orders []model.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("decode store: %w", err)
	}
	return orders, nil
}

func (f JSONFile) Save(orders []model.Order) error {
	if orders == nil {
		orders = []model.Order{}
	}
	data, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.Path), 0755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	if err := os.WriteFile(f.Path, data, 0644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	return nil
}

// Memory is an in-process backend for tests and dry runs.
type Memory struct {
	Orders  []model.Order
	LoadErr error
	SaveErr error
	Saves   int
}

func (m *Memory) Load() ([]model.Order, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	out := make([]model.Order, len(m.Orders))
	copy(out, m.Orders)
	return out, nil
}

func (m *Memory) Save(orders []model.Order) error {
	m.Saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Orders = make([]model.Order, len(orders))
	copy(m.Orders, orders)
	return nil
}
