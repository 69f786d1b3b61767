package handler

import (
	"log/slog"
	"net/http"

	"lorebook/internal/domain/services"
	"lorebook/internal/httputil"
)

// RoleHandler serves the author and editor grant routes.
type RoleHandler struct {
	roles  services.RoleService
	logger *slog.Logger
}

// NewRoleHandler creates a role handler.
func NewRoleHandler(roles services.RoleService, logger *slog.Logger) *RoleHandler {
	return &RoleHandler{roles: roles, logger: logger}
}

// RegisterAuthor grants author rights for a faction and language.
// POST /api/authors
func (h *RoleHandler) RegisterAuthor(w http.ResponseWriter, r *http.Request) {
	var req services.RegisterAuthorRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	author, err := h.roles.RegisterAuthor(r.Context(), httputil.Caller(r), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, author)
}

// DeleteAuthor revokes an author grant. The acting editor defaults to the
// caller.
// DELETE /api/authors/{account}/{faction}/{language}
func (h *RoleHandler) DeleteAuthor(w http.ResponseWriter, r *http.Request) {
	factionID, err := httputil.PathUint32(r, "faction")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	languageID, err := httputil.PathUint32(r, "language")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	editor := r.URL.Query().Get("editor")
	if editor == "" {
		editor = httputil.Caller(r)
	}

	req := services.DeleteAuthorRequest{
		Author:     r.PathValue("account"),
		FactionID:  factionID,
		LanguageID: languageID,
		Editor:     editor,
	}

	if err := h.roles.DeleteAuthor(r.Context(), httputil.Caller(r), &req); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListAuthors returns all author grants. Operator only.
// GET /api/authors
func (h *RoleHandler) ListAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := h.roles.ListAuthors(r.Context(), httputil.Caller(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, authors)
}

// RegisterEditor grants editor rights for a faction. Operator only.
// POST /api/editors
func (h *RoleHandler) RegisterEditor(w http.ResponseWriter, r *http.Request) {
	var req services.RegisterEditorRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	editor, err := h.roles.RegisterEditor(r.Context(), httputil.Caller(r), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, editor)
}

// DeleteEditor revokes one editor grant for a faction. Operator only.
// DELETE /api/editors/{account}/{faction}
func (h *RoleHandler) DeleteEditor(w http.ResponseWriter, r *http.Request) {
	factionID, err := httputil.PathUint32(r, "faction")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	req := services.DeleteEditorRequest{
		Editor:    r.PathValue("account"),
		FactionID: factionID,
	}

	if err := h.roles.DeleteEditor(r.Context(), httputil.Caller(r), &req); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListEditors returns all editor grants. Operator only.
// GET /api/editors
func (h *RoleHandler) ListEditors(w http.ResponseWriter, r *http.Request) {
	editors, err := h.roles.ListEditors(r.Context(), httputil.Caller(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, editors)
}
