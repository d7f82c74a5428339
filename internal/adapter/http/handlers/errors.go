package handlers

import (
	"errors"
	"net/http"

	"quickquote/internal/domain/entities"
	"quickquote/internal/usecase"
	"quickquote/internal/usecase/interfaces"
	"quickquote/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
)

// mapError translates use case errors to the API error envelope.
func mapError(err error) *pkg.AppError {
	var verr *entities.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest).WithFields(verr.FieldMap())
	case errors.Is(err, usecase.ErrInvalidSortKey):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "sort must be date or price", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrImageIndexOutOfRange):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Image index out of range", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRateCardNotConfigured):
		return pkg.NewDomainErrorSimple("RATES_NOT_CONFIGURED", "Set up your rates before creating quotes", http.StatusConflict)
	case errors.Is(err, interfaces.ErrNoProvider):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Sign in to continue", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrImageUploadFailed):
		return pkg.NewDomainError("IMAGE_UPLOAD_FAILED", "Images could not be uploaded, the quote was not saved", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func abortWithError(c *gin.Context, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
