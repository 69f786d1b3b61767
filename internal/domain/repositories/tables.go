package repositories

import (
	"context"

	"lorebook/internal/domain/models"
)

// The repositories persist the five lorebook tables. The in-memory store is
// authoritative for reads and uniqueness checks; repositories only mirror
// committed rows durably and reload them at boot, so each exposes the minimal
// insert/delete/load surface.

// CandidateRepository persists candidate documents.
type CandidateRepository interface {
	Insert(ctx context.Context, doc *models.CandidateDocument) error
	Delete(ctx context.Context, rowID uint64) error
	LoadAll(ctx context.Context) ([]models.CandidateDocument, error)
}

// PublishedRepository persists published documents.
type PublishedRepository interface {
	Insert(ctx context.Context, doc *models.PublishedDocument) error
	Delete(ctx context.Context, rowID uint64) error
	LoadAll(ctx context.Context) ([]models.PublishedDocument, error)
}

// CategoryRepository persists the category lookup table.
type CategoryRepository interface {
	Upsert(ctx context.Context, c *models.Category) error
	Delete(ctx context.Context, id uint64) error
	LoadAll(ctx context.Context) ([]models.Category, error)
}

// AuthorRepository persists author grants.
type AuthorRepository interface {
	Insert(ctx context.Context, a *models.Author) error
	Delete(ctx context.Context, rowID uint64) error
	LoadAll(ctx context.Context) ([]models.Author, error)
}

// EditorRepository persists editor grants.
type EditorRepository interface {
	Insert(ctx context.Context, e *models.Editor) error
	Delete(ctx context.Context, rowID uint64) error
	LoadAll(ctx context.Context) ([]models.Editor, error)
}

// Set bundles the five table repositories with the transaction manager that
// spans them. Wiring passes one Set from the chosen backend to the services.
type Set struct {
	Candidates CandidateRepository
	Published  PublishedRepository
	Categories CategoryRepository
	Authors    AuthorRepository
	Editors    EditorRepository
	Tx         TransactionManager
}
