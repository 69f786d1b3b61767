package handler

import (
	"log/slog"
	"net/http"

	"lorebook/internal/domain/services"
	"lorebook/internal/httputil"
)

// PublicationHandler serves the published document routes.
type PublicationHandler struct {
	publications services.PublicationService
	logger       *slog.Logger
}

// NewPublicationHandler creates a publication handler.
func NewPublicationHandler(publications services.PublicationService, logger *slog.Logger) *PublicationHandler {
	return &PublicationHandler{publications: publications, logger: logger}
}

// Publish promotes a candidate to the published table.
// POST /api/published
func (h *PublicationHandler) Publish(w http.ResponseWriter, r *http.Request) {
	var req services.PublishRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := h.publications.Publish(r.Context(), httputil.Caller(r), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, doc)
}

// Unpublish removes a published document. The editor defaults to the caller.
// DELETE /api/published/{item}/{faction}/{language}
func (h *PublicationHandler) Unpublish(w http.ResponseWriter, r *http.Request) {
	itemID, factionID, languageID, err := compositeTriple(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	editor := r.URL.Query().Get("editor")
	if editor == "" {
		editor = httputil.Caller(r)
	}

	req := services.UnpublishRequest{
		ItemID:     itemID,
		FactionID:  factionID,
		LanguageID: languageID,
		Editor:     editor,
	}

	if err := h.publications.Unpublish(r.Context(), httputil.Caller(r), &req); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetPublished returns the published document for a composite triple.
// GET /api/published/{item}/{faction}/{language}
func (h *PublicationHandler) GetPublished(w http.ResponseWriter, r *http.Request) {
	itemID, factionID, languageID, err := compositeTriple(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := h.publications.GetPublished(r.Context(), itemID, factionID, languageID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}

// ListPublished returns published documents, optionally filtered by category.
// GET /api/published?category_id=
func (h *PublicationHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	var categoryID *uint64
	if r.URL.Query().Has("category_id") {
		id, err := httputil.QueryUint64(r, "category_id")
		if err != nil {
			httputil.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		categoryID = &id
	}

	docs, err := h.publications.ListPublished(r.Context(), categoryID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, docs)
}
