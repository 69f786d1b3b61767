package models

import "time"

// CandidateDocument is author-submitted content pending editorial review.
// Exactly one candidate may exist per (item, faction, language) triple; the
// row id is a synthetic identifier assigned by the store, never exposed as an
// addressing scheme.
type CandidateDocument struct {
	RowID      uint64 `json:"row_id"`
	ItemID     uint64 `json:"item_id"`
	FactionID  uint32 `json:"faction_id"`
	LanguageID uint32 `json:"language_id"`
	CategoryID uint64 `json:"category_id"`
	Author     string `json:"author"`
	Title      string `json:"title"`
	Content    string `json:"content"`
}

// PublishedDocument is editor-approved content visible to consumers. It is
// created by copying a candidate during publish and stamping the approval.
type PublishedDocument struct {
	RowID      uint64    `json:"row_id"`
	ItemID     uint64    `json:"item_id"`
	FactionID  uint32    `json:"faction_id"`
	LanguageID uint32    `json:"language_id"`
	CategoryID uint64    `json:"category_id"`
	Author     string    `json:"author"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	ApprovedAt time.Time `json:"approved_at"`
	ApprovedBy string    `json:"approved_by"`
}
