package docstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lorebook/internal/domain/models"
)

func TestStoreCandidateUniqueTriple(t *testing.T) {
	st := New()

	doc := models.CandidateDocument{RowID: st.NextCandidateID(), ItemID: 10, FactionID: 1, LanguageID: 2, Author: "alice"}
	require.True(t, st.PutCandidate(doc))

	// Same triple, fresh row id.
	dup := doc
	dup.RowID = st.NextCandidateID()
	assert.False(t, st.PutCandidate(dup))

	got, ok := st.CandidateByKey(10, 1, 2)
	require.True(t, ok)
	assert.Equal(t, doc, got)

	st.EraseCandidate(doc.RowID)
	_, ok = st.CandidateByKey(10, 1, 2)
	assert.False(t, ok)

	// The triple is free again once the row is gone.
	assert.True(t, st.PutCandidate(dup))
}

func TestStorePublishedCategoryIndex(t *testing.T) {
	st := New()

	first := models.PublishedDocument{RowID: 1, ItemID: 10, FactionID: 1, LanguageID: 2, CategoryID: 7}
	second := models.PublishedDocument{RowID: 2, ItemID: 11, FactionID: 1, LanguageID: 2, CategoryID: 7}
	other := models.PublishedDocument{RowID: 3, ItemID: 12, FactionID: 1, LanguageID: 2, CategoryID: 8}

	require.True(t, st.PutPublished(first))
	require.True(t, st.PutPublished(second))
	require.True(t, st.PutPublished(other))

	assert.Equal(t, []models.PublishedDocument{first, second}, st.PublishedByCategory(7))
	assert.Equal(t, []models.PublishedDocument{other}, st.PublishedByCategory(8))
	assert.Empty(t, st.PublishedByCategory(9))

	st.ErasePublished(first.RowID)
	assert.Equal(t, []models.PublishedDocument{second}, st.PublishedByCategory(7))
	assert.Len(t, st.Published(), 2)
}

func TestStoreAuthorGrants(t *testing.T) {
	st := New()

	grant := models.Author{RowID: st.NextAuthorID(), Account: "alice", FactionID: 1, LanguageID: 2}
	require.True(t, st.PutAuthor(grant))
	assert.False(t, st.PutAuthor(models.Author{RowID: 99, Account: "alice", FactionID: 1, LanguageID: 2}))

	// A different language is a different grant.
	assert.True(t, st.PutAuthor(models.Author{RowID: 2, Account: "alice", FactionID: 1, LanguageID: 3}))

	got, ok := st.AuthorByKey("alice", 1, 2)
	require.True(t, ok)
	assert.Equal(t, grant, got)

	st.EraseAuthor(grant.RowID)
	_, ok = st.AuthorByKey("alice", 1, 2)
	assert.False(t, ok)
	assert.Len(t, st.Authors(), 1)
}

func TestStoreEditorsByAccount(t *testing.T) {
	st := New()

	a := models.Editor{RowID: 1, Account: "ed", FactionID: 1}
	b := models.Editor{RowID: 2, Account: "ed", FactionID: 2}
	c := models.Editor{RowID: 3, Account: "other", FactionID: 1}

	st.PutEditor(a)
	st.PutEditor(b)
	st.PutEditor(c)

	assert.Equal(t, []models.Editor{a, b}, st.EditorsByAccount("ed"))
	assert.Equal(t, []models.Editor{c}, st.EditorsByAccount("other"))
	assert.Empty(t, st.EditorsByAccount("nobody"))

	st.EraseEditor(a.RowID)
	assert.Equal(t, []models.Editor{b}, st.EditorsByAccount("ed"))
}

func TestStoreEditorDuplicateRowsAccumulate(t *testing.T) {
	st := New()

	st.PutEditor(models.Editor{RowID: st.NextEditorID(), Account: "ed", FactionID: 1})
	st.PutEditor(models.Editor{RowID: 2, Account: "ed", FactionID: 1})

	assert.Len(t, st.EditorsByAccount("ed"), 2)
}
