package todo

import (
	"time"

	"github.com/idilsaglam/tada/internal/model"
)

// IDSource yields candidate ids. Candidates need not be unique; the manager
// bumps them until they are.
type IDSource func() int64

// ClockIDs uses wall-clock milliseconds.
func ClockIDs(now func() time.Time) IDSource {
	return func() int64 { return now().UnixMilli() }
}

// nextID returns a candidate that is above last and absent from items.
func nextID(src IDSource, last int64, items []model.Item) int64 {
	id := src()
	if id <= last {
		id = last + 1
	}
	for indexOf(items, id) >= 0 {
		id++
	}
	return id
}
