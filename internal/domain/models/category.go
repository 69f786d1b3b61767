package models

// Category is a lookup-table entry for item categorisation. Ids are chosen by
// the operator, not assigned by the store, and deleting a category does not
// cascade to documents referencing it.
type Category struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
