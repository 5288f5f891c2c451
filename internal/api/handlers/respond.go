package handlers

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/tomiwaje/stayfinder/pkg/errors"
)

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondWithAppError maps a business error onto its HTTP status. Anything
// outside the known kinds is reported as an internal error without leaking
// the cause.
func respondWithAppError(w http.ResponseWriter, err error) {
	switch apperrors.TypeOf(err) {
	case apperrors.ErrorTypeValidation:
		respondWithError(w, http.StatusBadRequest, appErrorMessage(err))
	case apperrors.ErrorTypeNotFound:
		respondWithError(w, http.StatusNotFound, appErrorMessage(err))
	case apperrors.ErrorTypeConflict:
		respondWithError(w, http.StatusConflict, appErrorMessage(err))
	case apperrors.ErrorTypeUnauthorized:
		respondWithError(w, http.StatusUnauthorized, appErrorMessage(err))
	default:
		respondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}

func appErrorMessage(err error) string {
	if appErr, ok := err.(*apperrors.AppError); ok {
		return appErr.Message
	}
	return err.Error()
}
