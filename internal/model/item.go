package model

// Item is the domain model for a todo entry.
// Text is fixed once the item exists; only Completed changes.
type Item struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}
