package todo

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/idilsaglam/tada/internal/model"
)

// Encode serializes the list as a JSON array of {id, text, completed}.
// An empty list encodes as [] rather than null.
func Encode(items []model.Item) ([]byte, error) {
	if items == nil {
		items = []model.Item{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}

// Decode parses a stored list. Blank input and JSON null decode to an
// empty list.
func Decode(b []byte) ([]model.Item, error) {
	if len(bytes.TrimSpace(b)) == 0 {
		return []model.Item{}, nil
	}
	var items []model.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}
