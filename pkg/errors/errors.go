// Package errors provides structured error handling for cashin.
// It defines sentinel errors, exit codes, and helpers for adding
// context, details, and suggestions to errors.
//
//nolint:revive // Package name intentionally shadows stdlib for domain-specific error handling
package errors

import (
	"errors"
	"fmt"
	"sort"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess  = 0 // Successful execution
	ExitGeneral  = 1 // General/unknown error
	ExitInput    = 2 // Invalid input
	ExitNotFound = 4 // Resource not found
	ExitStorage  = 6 // Persisted state could not be read or written
)

// CashinError is the structured error type for cashin.
type CashinError struct {
	Code       string            // Machine-readable error code
	Message    string            // Human-readable message
	Details    map[string]string // Additional context
	Suggestion string            // Actionable suggestion for user
	Cause      error             // Underlying error
	ExitCode   int               // Exit code for CLI
}

func (e *CashinError) Error() string {
	msg := e.Message

	// Include details in error message (sorted for deterministic output)
	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			msg = fmt.Sprintf("%s (%s: %s)", msg, k, e.Details[k])
		}
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *CashinError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for CashinError.
func (e *CashinError) Is(target error) bool {
	var t *CashinError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Sentinel errors.
var (
	ErrGeneral = &CashinError{
		Code:     "GENERAL_ERROR",
		Message:  "an error occurred",
		ExitCode: ExitGeneral,
	}

	ErrInvalidInput = &CashinError{
		Code:     "INVALID_INPUT",
		Message:  "invalid input",
		ExitCode: ExitInput,
	}

	// Transaction and address errors.
	ErrInvalidTxHash = &CashinError{
		Code:     "INVALID_TX_HASH",
		Message:  "invalid transaction hash",
		ExitCode: ExitInput,
	}

	ErrInvalidAddress = &CashinError{
		Code:     "INVALID_ADDRESS",
		Message:  "invalid address format",
		ExitCode: ExitInput,
	}

	ErrUnknownCurrency = &CashinError{
		Code:     "UNKNOWN_CURRENCY",
		Message:  "unknown currency code",
		ExitCode: ExitInput,
	}

	ErrInvalidKind = &CashinError{
		Code:     "INVALID_KIND",
		Message:  "invalid transaction kind",
		ExitCode: ExitInput,
	}

	// Provider errors.
	ErrInvalidProviderLogo = &CashinError{
		Code:     "INVALID_PROVIDER_LOGO",
		Message:  "invalid provider logo mapping",
		ExitCode: ExitInput,
	}

	ErrProviderNotFound = &CashinError{
		Code:     "PROVIDER_NOT_FOUND",
		Message:  "provider has no registered logo",
		ExitCode: ExitNotFound,
	}

	// Config errors.
	ErrConfigNotFound = &CashinError{
		Code:     "CONFIG_NOT_FOUND",
		Message:  "configuration file not found",
		ExitCode: ExitNotFound,
	}

	ErrConfigInvalid = &CashinError{
		Code:     "CONFIG_INVALID",
		Message:  "configuration file is invalid",
		ExitCode: ExitInput,
	}

	ErrUnknownConfigKey = &CashinError{
		Code:     "UNKNOWN_CONFIG_KEY",
		Message:  "unknown config key",
		ExitCode: ExitInput,
	}

	// Storage errors.
	ErrStorage = &CashinError{
		Code:     "STORAGE_ERROR",
		Message:  "persisted state could not be accessed",
		ExitCode: ExitStorage,
	}

	ErrUnknownBackend = &CashinError{
		Code:     "UNKNOWN_STORAGE_BACKEND",
		Message:  "unknown storage backend",
		ExitCode: ExitInput,
	}

	ErrCatalogInvalid = &CashinError{
		Code:     "CATALOG_INVALID",
		Message:  "translation catalog is invalid",
		ExitCode: ExitInput,
	}
)

// Wrap wraps an error with additional context.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, args...)

	var ce *CashinError
	if errors.As(err, &ce) {
		return &CashinError{
			Code:       ce.Code,
			Message:    fmt.Sprintf("%s: %s", msg, ce.Message),
			Details:    ce.Details,
			Suggestion: ce.Suggestion,
			Cause:      err,
			ExitCode:   ce.ExitCode,
		}
	}

	return &CashinError{
		Code:     "GENERAL_ERROR",
		Message:  msg,
		Cause:    err,
		ExitCode: ExitGeneral,
	}
}

// WithDetails adds details to an error.
func WithDetails(err error, details map[string]string) error {
	if err == nil {
		return nil
	}

	var ce *CashinError
	if errors.As(err, &ce) {
		return &CashinError{
			Code:       ce.Code,
			Message:    ce.Message,
			Details:    details,
			Suggestion: ce.Suggestion,
			Cause:      ce.Cause,
			ExitCode:   ce.ExitCode,
		}
	}

	return &CashinError{
		Code:     "GENERAL_ERROR",
		Message:  err.Error(),
		Details:  details,
		Cause:    err,
		ExitCode: ExitGeneral,
	}
}

// WithSuggestion adds a suggestion to an error.
func WithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}

	var ce *CashinError
	if errors.As(err, &ce) {
		return &CashinError{
			Code:       ce.Code,
			Message:    ce.Message,
			Details:    ce.Details,
			Suggestion: suggestion,
			Cause:      ce.Cause,
			ExitCode:   ce.ExitCode,
		}
	}

	return &CashinError{
		Code:       "GENERAL_ERROR",
		Message:    err.Error(),
		Suggestion: suggestion,
		Cause:      err,
		ExitCode:   ExitGeneral,
	}
}

// ExitCode returns the appropriate exit code for an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var ce *CashinError
	if errors.As(err, &ce) {
		return ce.ExitCode
	}

	return ExitGeneral
}

// Code returns the error code for an error.
func Code(err error) string {
	var ce *CashinError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return "GENERAL_ERROR"
}

// Is wraps errors.Is for convenience.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience.
func As(err error, target any) bool {
	return errors.As(err, target)
}
