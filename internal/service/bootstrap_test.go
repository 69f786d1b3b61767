package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lorebook/internal/docstore"
	"lorebook/internal/domain/models"
	"lorebook/internal/repository/memory"
)

func TestLoadStoreRebuildsState(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewSet()

	require.NoError(t, repos.Candidates.Insert(ctx, &models.CandidateDocument{
		RowID: 3, ItemID: 10, FactionID: 1, LanguageID: 2, Author: "alice", Title: "t", Content: "c",
	}))
	require.NoError(t, repos.Published.Insert(ctx, &models.PublishedDocument{
		RowID: 5, ItemID: 11, FactionID: 1, LanguageID: 2, CategoryID: 7, Author: "alice", Title: "t", Content: "c", ApprovedBy: "ed",
	}))
	require.NoError(t, repos.Categories.Upsert(ctx, &models.Category{ID: 7, Name: "History"}))
	require.NoError(t, repos.Authors.Insert(ctx, &models.Author{RowID: 2, Account: "alice", FactionID: 1, LanguageID: 2}))
	require.NoError(t, repos.Editors.Insert(ctx, &models.Editor{RowID: 4, Account: "ed", FactionID: 1}))

	store := docstore.New()
	require.NoError(t, LoadStore(ctx, store, repos))

	store.Lock()
	defer store.Unlock()

	_, ok := store.CandidateByKey(10, 1, 2)
	assert.True(t, ok)
	_, ok = store.PublishedByKey(11, 1, 2)
	assert.True(t, ok)
	_, ok = store.CategoryByID(7)
	assert.True(t, ok)
	_, ok = store.AuthorByKey("alice", 1, 2)
	assert.True(t, ok)
	assert.Len(t, store.EditorsByAccount("ed"), 1)

	// Id sequences resume past the restored rows.
	assert.Equal(t, uint64(4), store.NextCandidateID())
	assert.Equal(t, uint64(6), store.NextPublishedID())
	assert.Equal(t, uint64(3), store.NextAuthorID())
	assert.Equal(t, uint64(5), store.NextEditorID())
}

func TestLoadStoreRejectsDuplicateTriples(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewSet()

	require.NoError(t, repos.Candidates.Insert(ctx, &models.CandidateDocument{
		RowID: 1, ItemID: 10, FactionID: 1, LanguageID: 2,
	}))
	require.NoError(t, repos.Candidates.Insert(ctx, &models.CandidateDocument{
		RowID: 2, ItemID: 10, FactionID: 1, LanguageID: 2,
	}))

	err := LoadStore(ctx, docstore.New(), repos)
	assert.Error(t, err)
}
