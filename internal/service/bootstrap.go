package service

import (
	"context"
	"fmt"

	"lorebook/internal/docstore"
	"lorebook/internal/domain/repositories"
)

// LoadStore rebuilds the in-memory store from the persisted tables. Run once
// at boot before the services accept calls.
func LoadStore(ctx context.Context, store *docstore.Store, repos repositories.Set) error {
	store.Lock()
	defer store.Unlock()

	candidates, err := repos.Candidates.LoadAll(ctx)
	if err != nil {
		return err
	}
	for _, doc := range candidates {
		if !store.PutCandidate(doc) {
			return fmt.Errorf("load candidates: duplicate composite key for row %d", doc.RowID)
		}
	}

	published, err := repos.Published.LoadAll(ctx)
	if err != nil {
		return err
	}
	for _, doc := range published {
		if !store.PutPublished(doc) {
			return fmt.Errorf("load published documents: duplicate composite key for row %d", doc.RowID)
		}
	}

	categories, err := repos.Categories.LoadAll(ctx)
	if err != nil {
		return err
	}
	for _, c := range categories {
		store.UpsertCategory(c)
	}

	authors, err := repos.Authors.LoadAll(ctx)
	if err != nil {
		return err
	}
	for _, a := range authors {
		if !store.PutAuthor(a) {
			return fmt.Errorf("load authors: duplicate grant for row %d", a.RowID)
		}
	}

	editors, err := repos.Editors.LoadAll(ctx)
	if err != nil {
		return err
	}
	for _, e := range editors {
		store.PutEditor(e)
	}

	return nil
}
