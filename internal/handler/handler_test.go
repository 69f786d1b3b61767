package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lorebook/internal/docstore"
	"lorebook/internal/domain/models"
	"lorebook/internal/httputil"
	"lorebook/internal/repository/memory"
	"lorebook/internal/service"
)

const testOperator = "operator"

// newTestRouter builds the full route table over in-memory services. The
// auth middleware is replaced by a shim that trusts the X-Test-Caller header.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	repos := memory.NewSet()
	store := docstore.New()
	gate := service.NewGate(testOperator)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	candidates := service.NewCandidateService(store, gate, repos.Candidates, logger)
	publications := service.NewPublicationService(store, gate, repos.Candidates, repos.Published, repos.Tx, time.Now, logger)
	roles := service.NewRoleService(store, gate, repos.Authors, repos.Editors, logger)
	categories := service.NewCategoryService(store, gate, repos.Categories, logger)

	documentHandler := NewDocumentHandler(candidates, logger)
	publicationHandler := NewPublicationHandler(publications, logger)
	roleHandler := NewRoleHandler(roles, logger)
	categoryHandler := NewCategoryHandler(categories, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", HealthCheck)
	mux.HandleFunc("POST /api/documents", documentHandler.AddDocument)
	mux.HandleFunc("GET /api/documents", documentHandler.ListDocuments)
	mux.HandleFunc("GET /api/documents/{item}/{faction}/{language}", documentHandler.GetDocument)
	mux.HandleFunc("DELETE /api/documents/{item}/{faction}/{language}", documentHandler.DeleteDocument)
	mux.HandleFunc("POST /api/published", publicationHandler.Publish)
	mux.HandleFunc("GET /api/published", publicationHandler.ListPublished)
	mux.HandleFunc("GET /api/published/{item}/{faction}/{language}", publicationHandler.GetPublished)
	mux.HandleFunc("DELETE /api/published/{item}/{faction}/{language}", publicationHandler.Unpublish)
	mux.HandleFunc("POST /api/authors", roleHandler.RegisterAuthor)
	mux.HandleFunc("GET /api/authors", roleHandler.ListAuthors)
	mux.HandleFunc("DELETE /api/authors/{account}/{faction}/{language}", roleHandler.DeleteAuthor)
	mux.HandleFunc("POST /api/editors", roleHandler.RegisterEditor)
	mux.HandleFunc("GET /api/editors", roleHandler.ListEditors)
	mux.HandleFunc("DELETE /api/editors/{account}/{faction}", roleHandler.DeleteEditor)
	mux.HandleFunc("PUT /api/categories/{id}", categoryHandler.SetCategory)
	mux.HandleFunc("GET /api/categories", categoryHandler.ListCategories)
	mux.HandleFunc("DELETE /api/categories/{id}", categoryHandler.DeleteCategory)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if caller := r.Header.Get("X-Test-Caller"); caller != "" {
			r = httputil.WithCaller(r, caller)
		}
		mux.ServeHTTP(w, r)
	})
}

func do(t *testing.T, router http.Handler, caller, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if caller != "" {
		req.Header.Set("X-Test-Caller", caller)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// seedGrants registers an editor for faction 1 and an author for (1, 2)
// through the API itself.
func seedGrants(t *testing.T, router http.Handler) {
	t.Helper()

	rec := do(t, router, testOperator, http.MethodPost, "/api/editors", map[string]any{
		"editor": "ed", "faction_id": 1,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, router, "ed", http.MethodPost, "/api/authors", map[string]any{
		"author": "alice", "faction_id": 1, "language_id": 2, "editor": "ed",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestDocumentRoutes(t *testing.T) {
	router := newTestRouter(t)
	seedGrants(t, router)

	rec := do(t, router, "alice", http.MethodPost, "/api/documents", map[string]any{
		"item_id": 10, "faction_id": 1, "language_id": 2, "category_id": 7,
		"author": "alice", "title": "t", "content": "c",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var doc models.CandidateDocument
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, uint64(1), doc.RowID)
	assert.Equal(t, "alice", doc.Author)

	rec = do(t, router, "alice", http.MethodGet, "/api/documents/10/1/2", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, "alice", http.MethodGet, "/api/documents?faction_id=1&language_id=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var docs []models.CandidateDocument
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &docs))
	assert.Len(t, docs, 1)

	rec = do(t, router, "alice", http.MethodDelete, "/api/documents/10/1/2", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, router, "alice", http.MethodGet, "/api/documents/10/1/2", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDocumentRouteErrorMapping(t *testing.T) {
	router := newTestRouter(t)
	seedGrants(t, router)

	submit := map[string]any{
		"item_id": 10, "faction_id": 1, "language_id": 2,
		"author": "alice", "title": "t", "content": "c",
	}

	// Caller is not the named author.
	rec := do(t, router, "mallory", http.MethodPost, "/api/documents", submit)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	// No author grant for this facet.
	rec = do(t, router, "ed", http.MethodPost, "/api/documents", map[string]any{
		"item_id": 10, "faction_id": 1, "language_id": 2,
		"author": "ed", "title": "t", "content": "c",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, router, "alice", http.MethodPost, "/api/documents", submit)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Duplicate triple.
	rec = do(t, router, "alice", http.MethodPost, "/api/documents", submit)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Validation failure.
	rec = do(t, router, "alice", http.MethodPost, "/api/documents", map[string]any{
		"item_id": 11, "faction_id": 1, "language_id": 2, "author": "alice",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var problem httputil.ProblemDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, http.StatusBadRequest, problem.Status)
	assert.NotEmpty(t, problem.Detail)
}

func TestPublicationRoutes(t *testing.T) {
	router := newTestRouter(t)
	seedGrants(t, router)

	rec := do(t, router, "alice", http.MethodPost, "/api/documents", map[string]any{
		"item_id": 10, "faction_id": 1, "language_id": 2, "category_id": 7,
		"author": "alice", "title": "t", "content": "c",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, router, "ed", http.MethodPost, "/api/published", map[string]any{
		"item_id": 10, "faction_id": 1, "language_id": 2, "editor": "ed",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var pub models.PublishedDocument
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pub))
	assert.Equal(t, "ed", pub.ApprovedBy)
	assert.False(t, pub.ApprovedAt.IsZero())

	// Candidate consumed.
	rec = do(t, router, "alice", http.MethodGet, "/api/documents/10/1/2", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, "ed", http.MethodGet, "/api/published?category_id=7", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var pubs []models.PublishedDocument
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pubs))
	assert.Len(t, pubs, 1)

	// Unpublish defaults the editor to the caller.
	rec = do(t, router, "ed", http.MethodDelete, "/api/published/10/1/2", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, router, "ed", http.MethodGet, "/api/published/10/1/2", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoleAndCategoryRoutes(t *testing.T) {
	router := newTestRouter(t)
	seedGrants(t, router)

	// Role listings are operator only.
	rec := do(t, router, "ed", http.MethodGet, "/api/editors", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, router, testOperator, http.MethodGet, "/api/editors", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var editors []models.Editor
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &editors))
	assert.Len(t, editors, 1)

	// Author revocation defaults the acting editor to the caller.
	rec = do(t, router, "ed", http.MethodDelete, "/api/authors/alice/1/2", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, router, testOperator, http.MethodDelete, "/api/editors/ed/1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, router, testOperator, http.MethodDelete, "/api/editors/ed/1", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Categories.
	rec = do(t, router, testOperator, http.MethodPut, "/api/categories/7", map[string]any{
		"name": "History", "description": "Pre-war records",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, "alice", http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var cats []models.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cats))
	require.Len(t, cats, 1)
	assert.Equal(t, uint64(7), cats[0].ID)

	rec = do(t, router, "alice", http.MethodPut, "/api/categories/8", map[string]any{"name": "x"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, router, testOperator, http.MethodDelete, "/api/categories/7", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, router, testOperator, http.MethodDelete, "/api/categories/7", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthRoute(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, "", http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestBadPathSegments(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, "alice", http.MethodGet, "/api/documents/ten/1/2", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, "alice", http.MethodGet, "/api/documents?faction_id=1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
