package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/expense-tracker/internal/logger"
	"github.com/MKhiriev/expense-tracker/internal/service"
	"github.com/MKhiriev/expense-tracker/internal/utils"
	"github.com/MKhiriev/expense-tracker/internal/validators"
)

type errorResponse struct {
	status  int
	message string
}

var errorResponseMap = map[error]errorResponse{
	ErrInvalidJSON:                      {http.StatusBadRequest, msgInvalidJSON},
	ErrRequestBodyTooLarge:              {http.StatusBadRequest, msgRequestBodyTooLarge},
	service.ErrEmailAlreadyRegistered:   {http.StatusBadRequest, msgEmailAlreadyRegistered},
	service.ErrInvalidCredentials:       {http.StatusUnauthorized, msgInvalidCredentials},
	ErrEmptyAuthorizationHeader:         {http.StatusUnauthorized, msgNoToken},
	utils.ErrInvalidAuthorizationHeader: {http.StatusUnauthorized, msgInvalidToken},
	service.ErrTokenIsExpiredOrInvalid:  {http.StatusUnauthorized, msgInvalidToken},
	service.ErrInvalidOwner:             {http.StatusUnauthorized, msgInvalidToken},
	service.ErrExpenseNotFound:          {http.StatusForbidden, msgExpenseNotFound},
}

// responseFromError maps err to a status code and a client-safe message.
// Validation failures carry their field-level messages; anything unknown is
// a 500 with a generic message.
func responseFromError(err error) errorResponse {
	if errors.Is(err, service.ErrInvalidDataProvided) {
		var validationErrors validators.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			return errorResponse{http.StatusBadRequest, validationErrors.Error()}
		}
		return errorResponse{http.StatusBadRequest, "All fields are required"}
	}

	for target, response := range errorResponseMap {
		if errors.Is(err, target) {
			return response
		}
	}
	return errorResponse{http.StatusInternalServerError, msgServerError}
}

// writeError logs err and writes the mapped {"message": ...} response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	response := responseFromError(err)

	if response.status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", response.status).Msg("request rejected")
	}

	utils.WriteMessage(w, response.message, response.status)
}
