// Package apperr defines the typed errors services return and the HTTP status
// each one maps to at the request boundary.
package apperr

import (
	"errors"
	"net/http"
)

// Error is a status-aware application error.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Status  int    `json:"-"`
	Fields  any    `json:"fields,omitempty"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Code
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches another *Error by code so errors.Is(err, apperr.ErrNotFound)
// holds for every copy derived from the sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// With returns a copy of base carrying message.
func With(base *Error, message string) *Error {
	if base == nil {
		base = ErrInternal
	}
	cp := *base
	cp.Message = message
	return &cp
}

// Wrap returns a copy of base wrapping err. An empty message keeps base's.
func Wrap(err error, base *Error, message string) *Error {
	if err == nil {
		return nil
	}
	if base == nil {
		base = ErrInternal
	}
	cp := *base
	if message != "" {
		cp.Message = message
	}
	cp.Err = err
	return &cp
}

// WithFields returns a copy of base with structured detail attached.
func WithFields(base *Error, message string, fields any) *Error {
	if base == nil {
		return nil
	}
	cp := *base
	if message != "" {
		cp.Message = message
	}
	cp.Fields = fields
	return &cp
}

func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e, true
	}
	return nil, false
}

func Status(err error) int {
	if e, ok := As(err); ok && e.Status != 0 {
		return e.Status
	}
	return http.StatusInternalServerError
}

func Code(err error) string {
	if e, ok := As(err); ok && e.Code != "" {
		return e.Code
	}
	return ErrInternal.Code
}

func Message(err error) string {
	if e, ok := As(err); ok {
		return e.Error()
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

// Payload renders err as the JSON body sent to clients.
func Payload(err error) map[string]any {
	if err == nil {
		return map[string]any{}
	}
	payload := map[string]any{
		"code":    Code(err),
		"message": Message(err),
	}
	if e, ok := As(err); ok && e.Fields != nil {
		payload["fields"] = e.Fields
	}
	return payload
}

var (
	ErrValidation         = New("validation_error", http.StatusBadRequest, "validation failed")
	ErrBadRequest         = New("bad_request", http.StatusBadRequest, "bad request")
	ErrInvalidCredentials = New("invalid_credentials", http.StatusBadRequest, "Invalid credentials")
	ErrUnauthorized       = New("unauthorized", http.StatusUnauthorized, "Authentication required")
	ErrNotFound           = New("not_found", http.StatusNotFound, "not found")
	ErrConflict           = New("conflict", http.StatusConflict, "already exists")
	ErrStore              = New("store_error", http.StatusInternalServerError, "database operation failed")
	ErrUnavailable        = New("service_unavailable", http.StatusServiceUnavailable, "service unavailable")
	ErrInternal           = New("internal_error", http.StatusInternalServerError, "internal error")
)
