package backend

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorKind classifies a failed backend call so views can pick the
// right reaction: redirect, blocking notice, or surfaced alert.
type ErrorKind string

const (
	KindAuth             ErrorKind = "auth"
	KindNotFound         ErrorKind = "not_found"
	KindAlreadySubmitted ErrorKind = "already_submitted"
	KindValidation       ErrorKind = "validation"
	KindTransient        ErrorKind = "transient"
)

// APIError is the normalized error every backend call propagates
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("backend error %d (%s): %s", e.Status, e.Kind, e.Message)
	}
	return fmt.Sprintf("backend error (%s): %s", e.Kind, e.Message)
}

// KindOf extracts the error kind from a (possibly wrapped) backend
// error, defaulting to transient for anything unrecognized.
func KindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindTransient
}

// transientError wraps a network-level failure
func transientError(err error) *APIError {
	return &APIError{Kind: KindTransient, Message: err.Error()}
}

// statusError normalizes an HTTP error status into an APIError
func statusError(status int, body []byte) *APIError {
	kind := KindTransient
	switch {
	case status == 401 || status == 403:
		kind = KindAuth
	case status == 404:
		kind = KindNotFound
	case status == 409:
		kind = KindAlreadySubmitted
	case status >= 400 && status < 500:
		kind = KindValidation
	}
	return &APIError{Kind: kind, Status: status, Message: extractMessage(body)}
}

// extractMessage pulls a human-readable message out of the backend's
// error body, falling back to the raw body.
func extractMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Message != "":
			return payload.Message
		case payload.Detail != "":
			return payload.Detail
		case payload.Error != "":
			return payload.Error
		}
	}
	if len(body) > 200 {
		body = body[:200]
	}
	return string(body)
}
