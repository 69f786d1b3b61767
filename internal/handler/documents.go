package handler

import (
	"log/slog"
	"net/http"

	"lorebook/internal/domain/services"
	"lorebook/internal/httputil"
)

// DocumentHandler serves the candidate document routes.
type DocumentHandler struct {
	candidates services.CandidateService
	logger     *slog.Logger
}

// NewDocumentHandler creates a candidate document handler.
func NewDocumentHandler(candidates services.CandidateService, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{candidates: candidates, logger: logger}
}

// AddDocument submits a candidate document.
// POST /api/documents
func (h *DocumentHandler) AddDocument(w http.ResponseWriter, r *http.Request) {
	var req services.AddDocumentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := h.candidates.AddDocument(r.Context(), httputil.Caller(r), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, doc)
}

// DeleteDocument removes a candidate document. The author defaults to the
// caller; naming someone else fails the self check in the service.
// DELETE /api/documents/{item}/{faction}/{language}
func (h *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	itemID, factionID, languageID, err := compositeTriple(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	author := r.URL.Query().Get("author")
	if author == "" {
		author = httputil.Caller(r)
	}

	req := services.DeleteDocumentRequest{
		ItemID:     itemID,
		FactionID:  factionID,
		LanguageID: languageID,
		Author:     author,
	}

	if err := h.candidates.DeleteDocument(r.Context(), httputil.Caller(r), &req); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetDocument returns the candidate for a composite triple.
// GET /api/documents/{item}/{faction}/{language}
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	itemID, factionID, languageID, err := compositeTriple(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := h.candidates.GetDocument(r.Context(), itemID, factionID, languageID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}

// ListDocuments returns all candidates for a faction and language.
// GET /api/documents?faction_id=&language_id=
func (h *DocumentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	factionID, err := httputil.QueryUint32(r, "faction_id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	languageID, err := httputil.QueryUint32(r, "language_id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	docs, err := h.candidates.ListDocuments(r.Context(), factionID, languageID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, docs)
}
