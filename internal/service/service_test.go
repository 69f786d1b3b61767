package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"lorebook/internal/docstore"
	"lorebook/internal/domain/services"
	"lorebook/internal/repository/memory"
)

const testOperator = "operator"

var testClock = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

// env wires all four services over a fresh in-memory store and repository
// set, with a fixed wall-clock.
type env struct {
	store        *docstore.Store
	candidates   services.CandidateService
	publications services.PublicationService
	roles        services.RoleService
	categories   services.CategoryService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	repos := memory.NewSet()
	store := docstore.New()
	gate := NewGate(testOperator)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &env{
		store:        store,
		candidates:   NewCandidateService(store, gate, repos.Candidates, logger),
		publications: NewPublicationService(store, gate, repos.Candidates, repos.Published, repos.Tx, func() time.Time { return testClock }, logger),
		roles:        NewRoleService(store, gate, repos.Authors, repos.Editors, logger),
		categories:   NewCategoryService(store, gate, repos.Categories, logger),
	}
}

// grantEditor registers an editor grant acting as the operator.
func (e *env) grantEditor(t *testing.T, account string, factionID uint32) {
	t.Helper()
	_, err := e.roles.RegisterEditor(context.Background(), testOperator, &services.RegisterEditorRequest{
		Editor:    account,
		FactionID: factionID,
	})
	require.NoError(t, err)
}

// grantAuthor registers an author grant acting as the given editor.
func (e *env) grantAuthor(t *testing.T, editor, author string, factionID, languageID uint32) {
	t.Helper()
	_, err := e.roles.RegisterAuthor(context.Background(), editor, &services.RegisterAuthorRequest{
		Author:     author,
		FactionID:  factionID,
		LanguageID: languageID,
		Editor:     editor,
	})
	require.NoError(t, err)
}

// addDoc submits a candidate acting as the given author.
func (e *env) addDoc(t *testing.T, author string, itemID uint64, factionID, languageID uint32, categoryID uint64) {
	t.Helper()
	_, err := e.candidates.AddDocument(context.Background(), author, &services.AddDocumentRequest{
		ItemID:     itemID,
		FactionID:  factionID,
		LanguageID: languageID,
		CategoryID: categoryID,
		Author:     author,
		Title:      "title",
		Content:    "content",
	})
	require.NoError(t, err)
}
