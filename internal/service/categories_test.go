package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lorebook/internal/domain"
	"lorebook/internal/domain/services"
)

func TestSetCategoryUpsert(t *testing.T) {
	e := newEnv(t)

	_, err := e.categories.SetCategory(context.Background(), testOperator, &services.SetCategoryRequest{
		ID:   7,
		Name: "History",
	})
	require.NoError(t, err)

	// Setting the same id again replaces in place.
	updated, err := e.categories.SetCategory(context.Background(), testOperator, &services.SetCategoryRequest{
		ID:          7,
		Name:        "Ancient History",
		Description: "Pre-war records",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ancient History", updated.Name)

	list, err := e.categories.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ancient History", list[0].Name)
	assert.Equal(t, "Pre-war records", list[0].Description)
}

func TestSetCategoryOperatorOnly(t *testing.T) {
	e := newEnv(t)
	e.grantEditor(t, "ed", 1)

	_, err := e.categories.SetCategory(context.Background(), "ed", &services.SetCategoryRequest{
		ID:   7,
		Name: "History",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestDeleteCategory(t *testing.T) {
	e := newEnv(t)

	_, err := e.categories.SetCategory(context.Background(), testOperator, &services.SetCategoryRequest{
		ID:   7,
		Name: "History",
	})
	require.NoError(t, err)

	require.NoError(t, e.categories.DeleteCategory(context.Background(), testOperator, 7))

	list, err := e.categories.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)

	err = e.categories.DeleteCategory(context.Background(), testOperator, 7)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteCategoryLeavesDocuments(t *testing.T) {
	e := newEnv(t)
	e.grantEditor(t, "ed", 1)
	e.grantAuthor(t, "ed", "alice", 1, 2)

	_, err := e.categories.SetCategory(context.Background(), testOperator, &services.SetCategoryRequest{
		ID:   7,
		Name: "History",
	})
	require.NoError(t, err)

	e.addDoc(t, "alice", 10, 1, 2, 7)
	_, err = e.publications.Publish(context.Background(), "ed", &services.PublishRequest{
		ItemID: 10, FactionID: 1, LanguageID: 2, Editor: "ed",
	})
	require.NoError(t, err)

	require.NoError(t, e.categories.DeleteCategory(context.Background(), testOperator, 7))

	// The published row keeps its dangling category id.
	pub, err := e.publications.GetPublished(context.Background(), 10, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), pub.CategoryID)
}
