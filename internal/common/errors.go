// Package common defines shared constants and sentinel errors used across
// client and stub-server layers of payrollview. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Session errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrNoToken        = errors.New("no access token stored")

	// Validation errors.
	ErrorInvalidUploadID = errors.New("invalid upload id")
	ErrorRowOutOfRange   = errors.New("row out of range")
	ErrorUnknownFormat   = errors.New("unknown export format")
)
