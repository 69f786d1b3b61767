package handler

import (
	"errors"
	"net/http"

	"lorebook/internal/domain"
	"lorebook/internal/httputil"
)

// handleError converts domain errors to HTTP responses. NotRegistered maps to
// 403: the caller authenticated fine but lacks the required role row.
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrNotRegistered):
		httputil.RespondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		httputil.RespondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrDuplicateKey):
		httputil.RespondError(w, http.StatusConflict, err.Error())
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// compositeTriple parses the {item}/{faction}/{language} path segments shared
// by the document routes.
func compositeTriple(r *http.Request) (itemID uint64, factionID, languageID uint32, err error) {
	if itemID, err = httputil.PathUint64(r, "item"); err != nil {
		return
	}
	if factionID, err = httputil.PathUint32(r, "faction"); err != nil {
		return
	}
	languageID, err = httputil.PathUint32(r, "language")
	return
}
