package handler

import (
	"log/slog"
	"net/http"

	"lorebook/internal/domain/services"
	"lorebook/internal/httputil"
)

// CategoryHandler serves the category catalog routes.
type CategoryHandler struct {
	categories services.CategoryService
	logger     *slog.Logger
}

// NewCategoryHandler creates a category handler.
func NewCategoryHandler(categories services.CategoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{categories: categories, logger: logger}
}

// SetCategory creates or updates a category. Operator only.
// PUT /api/categories/{id}
func (h *CategoryHandler) SetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathUint64(r, "id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req services.SetCategoryRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.ID = id

	category, err := h.categories.SetCategory(r.Context(), httputil.Caller(r), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, category)
}

// DeleteCategory removes a category. Operator only.
// DELETE /api/categories/{id}
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathUint64(r, "id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.categories.DeleteCategory(r.Context(), httputil.Caller(r), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListCategories returns all categories.
// GET /api/categories
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.ListCategories(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, categories)
}
