// Package response defines consistent HTTP response structures.
//
// Successful responses carry the resource itself as the JSON body. Errors use
// one envelope:
//
//	{"error": {"code": "NOT_FOUND", "message": "joke not found", "request_id": "..."}}
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jokebox/src/core/domain"
)

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

	// Details lists every failed field of a validation error
	Details []domain.FieldError `json:"details,omitempty"`

	// RequestID is the request ID for debugging
	RequestID string `json:"request_id,omitempty"`
}

// Error codes.
const (
	CodeBadRequest      = "BAD_REQUEST"
	CodeValidationError = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeInternalError   = "INTERNAL_ERROR"
)

// Generic client-facing messages. They never carry internal detail.
const (
	MessageNotFound         = "joke not found"
	MessageRouteNotFound    = "the requested resource was not found"
	MessageValidationFailed = "request validation failed"
	MessageInternalError    = "an unexpected error occurred"
)

// OK sends a 200 response with data as the body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response with the created resource.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, message, requestID string) {
	c.JSON(http.StatusBadRequest, Error{
		Error: ErrorDetail{
			Code:      CodeBadRequest,
			Message:   message,
			RequestID: requestID,
		},
	})
}

// ValidationFailed sends a 400 response listing every field failure.
func ValidationFailed(c *gin.Context, fields []domain.FieldError, requestID string) {
	c.JSON(http.StatusBadRequest, Error{
		Error: ErrorDetail{
			Code:      CodeValidationError,
			Message:   MessageValidationFailed,
			Details:   fields,
			RequestID: requestID,
		},
	})
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message, requestID string) {
	c.JSON(http.StatusNotFound, Error{
		Error: ErrorDetail{
			Code:      CodeNotFound,
			Message:   message,
			RequestID: requestID,
		},
	})
}

// InternalError sends a 500 response.
func InternalError(c *gin.Context, requestID string) {
	c.JSON(http.StatusInternalServerError, Error{
		Error: ErrorDetail{
			Code:      CodeInternalError,
			Message:   MessageInternalError,
			RequestID: requestID,
		},
	})
}

// FromDomainError converts a domain error to an appropriate HTTP response.
// Storage and unknown errors become a generic 500; their detail is logged by
// the service that saw them.
func FromDomainError(c *gin.Context, err error, requestID string) {
	switch {
	case domain.IsNotFound(err):
		NotFound(c, MessageNotFound, requestID)
	case domain.IsValidationError(err):
		ValidationFailed(c, domain.FieldErrors(err), requestID)
	default:
		InternalError(c, requestID)
	}
}
