package httpHandler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"room-rental-server/apperrors"

	"github.com/gin-gonic/gin"
)

func statusFor(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation:
		return http.StatusBadRequest
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindConflict:
		return http.StatusConflict
	case apperrors.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps a taxonomy error onto an HTTP response. Unclassified
// store failures are logged with the request id; they are never swallowed.
func writeError(c *gin.Context, err error) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		appErr = apperrors.Store("unexpected failure", err)
	}

	if appErr.Kind == apperrors.KindStore {
		log.Printf("store failure (request_id=%s): %v", c.GetString("request_id"), appErr.Unwrap())
		appErr.Message = "internal storage failure"
	}

	c.JSON(statusFor(appErr.Kind), gin.H{
		"error": appErr.Message,
		"kind":  appErr.Kind,
	})
}

// idParam parses a positive integer path parameter.
func idParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.Validation(name + " must be a positive integer")
	}
	return uint(id), nil
}

// idQuery parses a positive integer query parameter; 0 means absent.
func idQuery(c *gin.Context, name string) (uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.Validation(name + " must be a positive integer")
	}
	return uint(id), nil
}
