package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/taxops/perdcomp/internal/model"
)

// ErrBadSnapshot means the restore input is not a top-level array.
// State is left untouched when it is returned.
var ErrBadSnapshot = errors.New("arquivo de backup inválido")

// WriteBackup serializes the entire collection as an indented snapshot.
// Unlike the other exports, an empty collection is a valid backup.
func WriteBackup(w io.Writer, orders []model.Order) error {
	if orders == nil {
		orders = []model.Order{}
	}
	data, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar backup: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("gravar backup: %w", err)
	}
	return nil
}

// ReadBackup parses a previously exported snapshot. If and only if the
// input is a sequence its elements come back for the store to prepend;
// no dedup, no per-field validation.
func ReadBackup(r io.Reader) ([]model.Order, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ler backup: %w", err)
	}

	var orders []model.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	return orders, nil
}
