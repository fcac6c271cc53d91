// Package errors provides standardized errors for the transport layers around
// the query engine: HTTP handlers, the session store and the job worker.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	ErrCodeInvalidRole    ErrorCode = "INVALID_ROLE"

	ErrCodeSessionNotFound    ErrorCode = "SESSION_NOT_FOUND"
	ErrCodeSessionLoadFailed  ErrorCode = "SESSION_LOAD_FAILED"
	ErrCodeSessionSaveFailed  ErrorCode = "SESSION_SAVE_FAILED"
	ErrCodeSessionResetFailed ErrorCode = "SESSION_RESET_FAILED"

	ErrCodeQueryProcessingFailed ErrorCode = "QUERY_PROCESSING_FAILED"
	ErrCodeInternal              ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`

	cause error
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying failure, when there is one.
func (e *StandardError) Unwrap() error {
	return e.cause
}

// WithMetadata attaches a key to the error and returns it for chaining.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// AsStandardError finds a StandardError anywhere in err's chain.
func AsStandardError(err error) (*StandardError, bool) {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr, true
	}
	return nil, false
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}
	for k, v := range e.ErrorVariables {
		vars[k] = v
	}
	return vars
}

// ==========================
// 3. Error Constructors
// ==========================

func newError(code ErrorCode, message, details string, retryable bool, cause error) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Details:   details,
		Retryable: retryable,
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
}

// NewInvalidRequestError reports a malformed request body or job variables.
func NewInvalidRequestError(details string) *StandardError {
	return newError(ErrCodeInvalidRequest, "Invalid request", details, false, nil)
}

// NewInvalidRoleError reports a role outside the closed role vocabulary.
func NewInvalidRoleError(role string) *StandardError {
	return newError(ErrCodeInvalidRole, "Unknown user role", fmt.Sprintf("role: %s", role), false, nil)
}

func NewSessionNotFoundError(sessionID string) *StandardError {
	return newError(ErrCodeSessionNotFound, "Session not found", fmt.Sprintf("sessionId: %s", sessionID), false, nil)
}

// NewSessionLoadFailedError wraps a store read failure. Retryable.
func NewSessionLoadFailedError(sessionID string, err error) *StandardError {
	return newError(ErrCodeSessionLoadFailed, "Failed to load conversation context",
		fmt.Sprintf("sessionId: %s, error: %v", sessionID, err), true, err)
}

// NewSessionSaveFailedError wraps a store write failure. Retryable.
func NewSessionSaveFailedError(sessionID string, err error) *StandardError {
	return newError(ErrCodeSessionSaveFailed, "Failed to save conversation context",
		fmt.Sprintf("sessionId: %s, error: %v", sessionID, err), true, err)
}

// NewSessionResetFailedError wraps a store reset failure. Retryable.
func NewSessionResetFailedError(sessionID string, err error) *StandardError {
	return newError(ErrCodeSessionResetFailed, "Failed to reset conversation context",
		fmt.Sprintf("sessionId: %s, error: %v", sessionID, err), true, err)
}

// NewQueryProcessingFailedError marks a defect inside synthesis. Never retried.
func NewQueryProcessingFailedError(details string) *StandardError {
	return newError(ErrCodeQueryProcessingFailed, "Query processing failed", details, false, nil)
}

// ==========================
// 4. Error Conversion to BPMN
// ==========================

// BPMNErrorMapping maps internal error codes to BPMN error codes.
var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeInvalidRequest:        "INVALID_REQUEST",
	ErrCodeInvalidRole:           "INVALID_ROLE",
	ErrCodeSessionNotFound:       "SESSION_NOT_FOUND",
	ErrCodeSessionLoadFailed:     "SESSION_LOAD_FAILED",
	ErrCodeSessionSaveFailed:     "SESSION_SAVE_FAILED",
	ErrCodeSessionResetFailed:    "SESSION_RESET_FAILED",
	ErrCodeQueryProcessingFailed: "QUERY_PROCESSING_FAILED",
	ErrCodeInternal:              "INTERNAL_ERROR",
}

// GetRetryCount returns the recommended retry count for a job failing with code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeSessionLoadFailed,
		ErrCodeSessionSaveFailed,
		ErrCodeSessionResetFailed:
		return 3
	default:
		return 0
	}
}

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code)
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	return &BPMNError{
		Code:      bpmnCode,
		Message:   stdErr.Message,
		Details:   stdErr.Details,
		Retryable: stdErr.Retryable,
		Retries:   retries,
		ErrorVariables: map[string]interface{}{
			"originalErrorCode": string(stdErr.Code),
			"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
		},
	}
}

// ==========================
// 5. Utility Functions
// ==========================

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.HasPrefix(codeStr, "SESSION"):
		return "SESSION"
	case strings.Contains(codeStr, "QUERY"):
		return "ENGINE"
	case strings.Contains(codeStr, "INVALID"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}

// HTTPStatus maps an error code to the status the HTTP API answers with.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeInvalidRequest, ErrCodeInvalidRole:
		return http.StatusBadRequest
	case ErrCodeSessionNotFound:
		return http.StatusNotFound
	case ErrCodeSessionLoadFailed, ErrCodeSessionSaveFailed, ErrCodeSessionResetFailed:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
