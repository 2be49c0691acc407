package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/VincentPrime/Survey-client/internal/backend"
	"github.com/VincentPrime/Survey-client/internal/service"
)

// writeServiceError translates service and upstream errors into HTTP
// responses. Expired sessions and duplicate submissions carry a
// redirect hint so the client can route the user away.
func writeServiceError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	switch {
	case errors.Is(err, service.ErrInvalidToken), errors.Is(err, service.ErrNoSession):
		writeRedirect(w, http.StatusUnauthorized, err.Error(), "/login")
	case errors.Is(err, service.ErrAlreadySubmitted):
		writeRedirect(w, http.StatusConflict, err.Error(), "/student/dashboard")
	case errors.Is(err, service.ErrNoAttempt), errors.Is(err, service.ErrNoDraft):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotDraftOwner):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrUnknownQuestion),
		errors.Is(err, service.ErrAnswerMismatch),
		errors.Is(err, service.ErrInvalidChoice),
		errors.Is(err, service.ErrOutOfRange),
		errors.Is(err, service.ErrRequiredUnanswered),
		errors.Is(err, service.ErrBlankTitle),
		errors.Is(err, service.ErrNoOptions),
		errors.Is(err, service.ErrBadScale),
		errors.Is(err, service.ErrBadIndex),
		errors.Is(err, service.ErrEmptyDraft):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeUpstreamError(w, err)
	}
}

func writeUpstreamError(w http.ResponseWriter, err error) {
	switch backend.KindOf(err) {
	case backend.KindAuth:
		writeRedirect(w, http.StatusUnauthorized, err.Error(), "/login")
	case backend.KindNotFound:
		writeError(w, http.StatusNotFound, err.Error())
	case backend.KindAlreadySubmitted:
		writeRedirect(w, http.StatusConflict, err.Error(), "/student/dashboard")
	case backend.KindValidation:
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusBadGateway, "upstream request failed")
	}
}

func writeRedirect(w http.ResponseWriter, status int, message, redirect string) {
	writeJSON(w, status, map[string]string{"error": message, "redirect": redirect})
}
