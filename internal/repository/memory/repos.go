// Package memory provides a non-durable repository set. It backs tests and
// local runs without a database; the in-memory docstore already serves reads,
// so these repositories only have to remember rows for LoadAll.
package memory

import (
	"context"

	"lorebook/internal/domain/models"
	"lorebook/internal/domain/repositories"
)

// NewSet returns a repository set keeping rows in process memory. Callers
// serialize access through the store mutex, so the maps are unguarded.
func NewSet() repositories.Set {
	return repositories.Set{
		Candidates: &candidateRepo{rows: make(map[uint64]models.CandidateDocument)},
		Published:  &publishedRepo{rows: make(map[uint64]models.PublishedDocument)},
		Categories: &categoryRepo{rows: make(map[uint64]models.Category)},
		Authors:    &authorRepo{rows: make(map[uint64]models.Author)},
		Editors:    &editorRepo{rows: make(map[uint64]models.Editor)},
		Tx:         txManager{},
	}
}

// txManager satisfies repositories.TransactionManager; with no database there
// is nothing to commit or roll back.
type txManager struct{}

func (txManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx)
}

type candidateRepo struct {
	rows map[uint64]models.CandidateDocument
}

func (r *candidateRepo) Insert(_ context.Context, doc *models.CandidateDocument) error {
	r.rows[doc.RowID] = *doc
	return nil
}

func (r *candidateRepo) Delete(_ context.Context, rowID uint64) error {
	delete(r.rows, rowID)
	return nil
}

func (r *candidateRepo) LoadAll(context.Context) ([]models.CandidateDocument, error) {
	out := make([]models.CandidateDocument, 0, len(r.rows))
	for _, doc := range r.rows {
		out = append(out, doc)
	}
	return out, nil
}

type publishedRepo struct {
	rows map[uint64]models.PublishedDocument
}

func (r *publishedRepo) Insert(_ context.Context, doc *models.PublishedDocument) error {
	r.rows[doc.RowID] = *doc
	return nil
}

func (r *publishedRepo) Delete(_ context.Context, rowID uint64) error {
	delete(r.rows, rowID)
	return nil
}

func (r *publishedRepo) LoadAll(context.Context) ([]models.PublishedDocument, error) {
	out := make([]models.PublishedDocument, 0, len(r.rows))
	for _, doc := range r.rows {
		out = append(out, doc)
	}
	return out, nil
}

type categoryRepo struct {
	rows map[uint64]models.Category
}

func (r *categoryRepo) Upsert(_ context.Context, c *models.Category) error {
	r.rows[c.ID] = *c
	return nil
}

func (r *categoryRepo) Delete(_ context.Context, id uint64) error {
	delete(r.rows, id)
	return nil
}

func (r *categoryRepo) LoadAll(context.Context) ([]models.Category, error) {
	out := make([]models.Category, 0, len(r.rows))
	for _, c := range r.rows {
		out = append(out, c)
	}
	return out, nil
}

type authorRepo struct {
	rows map[uint64]models.Author
}

func (r *authorRepo) Insert(_ context.Context, a *models.Author) error {
	r.rows[a.RowID] = *a
	return nil
}

func (r *authorRepo) Delete(_ context.Context, rowID uint64) error {
	delete(r.rows, rowID)
	return nil
}

func (r *authorRepo) LoadAll(context.Context) ([]models.Author, error) {
	out := make([]models.Author, 0, len(r.rows))
	for _, a := range r.rows {
		out = append(out, a)
	}
	return out, nil
}

type editorRepo struct {
	rows map[uint64]models.Editor
}

func (r *editorRepo) Insert(_ context.Context, e *models.Editor) error {
	r.rows[e.RowID] = *e
	return nil
}

func (r *editorRepo) Delete(_ context.Context, rowID uint64) error {
	delete(r.rows, rowID)
	return nil
}

func (r *editorRepo) LoadAll(context.Context) ([]models.Editor, error) {
	out := make([]models.Editor, 0, len(r.rows))
	for _, e := range r.rows {
		out = append(out, e)
	}
	return out, nil
}
