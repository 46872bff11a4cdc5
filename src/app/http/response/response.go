// Package response defines consistent HTTP response structures.
// Successful responses carry the resource itself as the body; failures
// always use the Error envelope.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pokemonreview/src/core/domain"
)

// Message is the body of responses that have no resource to return.
type Message struct {
	Message string `json:"message"`
}

// Error represents an error response.
type Error struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "NOT_FOUND", "VALIDATION_ERROR")
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Field is the field that caused the error (for validation errors)
	Field string `json:"field,omitempty"`

	// RequestID is the request ID for debugging
	RequestID string `json:"request_id,omitempty"`
}

// OK sends a 200 response with data as the body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response with the created resource as the body.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Deleted sends a 200 response confirming a deletion.
func Deleted(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Message{Message: message})
}

func abortWith(c *gin.Context, status int, detail ErrorDetail) {
	c.AbortWithStatusJSON(status, Error{Error: detail})
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, message string, requestID string) {
	abortWith(c, http.StatusBadRequest, ErrorDetail{
		Code:      "BAD_REQUEST",
		Message:   message,
		RequestID: requestID,
	})
}

// ValidationError sends a 400 response for validation failures.
func ValidationError(c *gin.Context, field, message, requestID string) {
	abortWith(c, http.StatusBadRequest, ErrorDetail{
		Code:      "VALIDATION_ERROR",
		Message:   message,
		Field:     field,
		RequestID: requestID,
	})
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message, requestID string) {
	abortWith(c, http.StatusNotFound, ErrorDetail{
		Code:      "NOT_FOUND",
		Message:   message,
		RequestID: requestID,
	})
}

// Unauthorized sends a 401 response.
func Unauthorized(c *gin.Context, message, requestID string) {
	abortWith(c, http.StatusUnauthorized, ErrorDetail{
		Code:      "UNAUTHORIZED",
		Message:   message,
		RequestID: requestID,
	})
}

// InternalError sends a 500 response. Details stay in the logs.
func InternalError(c *gin.Context, requestID string) {
	abortWith(c, http.StatusInternalServerError, ErrorDetail{
		Code:      "INTERNAL_ERROR",
		Message:   "An unexpected error occurred",
		RequestID: requestID,
	})
}

// FromDomainError converts a domain error to the matching HTTP response.
// Anything that is not a domain error kind is treated as a store failure.
func FromDomainError(c *gin.Context, err error, requestID string) {
	_ = c.Error(err)

	switch {
	case domain.IsNotFound(err):
		NotFound(c, err.Error(), requestID)
	case domain.IsValidationError(err):
		if domainErr, ok := err.(*domain.DomainError); ok {
			ValidationError(c, domainErr.Field, domainErr.Message, requestID)
		} else {
			BadRequest(c, err.Error(), requestID)
		}
	case domain.IsUnauthorized(err):
		Unauthorized(c, err.Error(), requestID)
	default:
		InternalError(c, requestID)
	}
}
