package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ierr "github.com/skelectricals/backend/internal/errors"
	"github.com/skelectricals/backend/internal/model"
)

// Common error messages
const (
	ErrInvalidInput     = "Invalid input format"
	ErrInvalidID        = "Invalid ID provided"
	ErrResourceNotFound = "Resource not found"
	ErrInternalServer   = "Internal server error"
)

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, message string, details ...model.ErrorDetail) {
	response := model.ErrorResponse{
		Status:  http.StatusText(statusCode),
		Message: message,
		Details: details,
	}
	c.JSON(statusCode, response)
}

// respondError resolves a marked domain error to its HTTP status and hint.
// Unmarked errors come out as 500 with a generic message.
func respondError(c *gin.Context, err error) {
	status := ierr.HTTPStatusFromErr(err)
	message := ierr.Hint(err)
	if status == http.StatusInternalServerError {
		message = ErrInternalServer
	}
	respondWithError(c, status, message)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...model.ErrorDetail) {
	respondWithError(c, http.StatusBadRequest, message, details...)
}

// respondUnauthorized sends a 401 Unauthorized response
func respondUnauthorized(c *gin.Context, message string) {
	respondWithError(c, http.StatusUnauthorized, message)
}

// respondForbidden sends a 403 Forbidden response
func respondForbidden(c *gin.Context, message string) {
	respondWithError(c, http.StatusForbidden, message)
}

// respondSuccess sends a standardized success response with data
func respondSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// respondCreated sends a 201 Created response with data
func respondCreated(c *gin.Context, data interface{}) {
	respondSuccess(c, http.StatusCreated, data)
}

// respondOK sends a 200 OK response with data
func respondOK(c *gin.Context, data interface{}) {
	respondSuccess(c, http.StatusOK, data)
}
