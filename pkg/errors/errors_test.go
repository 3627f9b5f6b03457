package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cashinerr "github.com/mrz1836/cashin/pkg/errors"
)

var (
	errInner = errors.New("inner")
	errPlain = errors.New("plain error")
)

func TestExitCodes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"success", nil, cashinerr.ExitSuccess},
		{"general error", cashinerr.ErrGeneral, cashinerr.ExitGeneral},
		{"input error", cashinerr.ErrInvalidInput, cashinerr.ExitInput},
		{"tx hash error", cashinerr.ErrInvalidTxHash, cashinerr.ExitInput},
		{"provider not found", cashinerr.ErrProviderNotFound, cashinerr.ExitNotFound},
		{"storage error", cashinerr.ErrStorage, cashinerr.ExitStorage},
		{"plain error", errPlain, cashinerr.ExitGeneral},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, cashinerr.ExitCode(tt.err))
		})
	}
}

func TestExitCodeWrappedError(t *testing.T) {
	t.Parallel()
	wrapped := cashinerr.Wrap(cashinerr.ErrStorage, "loading state")
	assert.Equal(t, cashinerr.ExitStorage, cashinerr.ExitCode(wrapped))
}

func TestSentinelErrors(t *testing.T) {
	t.Parallel()
	for _, sentinel := range []error{
		cashinerr.ErrGeneral,
		cashinerr.ErrInvalidInput,
		cashinerr.ErrInvalidTxHash,
		cashinerr.ErrUnknownCurrency,
		cashinerr.ErrStorage,
	} {
		wrapped := cashinerr.Wrap(sentinel, "wrapped")
		require.ErrorIs(t, wrapped, sentinel)
	}
}

func TestErrorCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err      error
		expected string
	}{
		{cashinerr.ErrGeneral, "GENERAL_ERROR"},
		{cashinerr.ErrInvalidTxHash, "INVALID_TX_HASH"},
		{cashinerr.ErrUnknownCurrency, "UNKNOWN_CURRENCY"},
		{cashinerr.ErrUnknownBackend, "UNKNOWN_STORAGE_BACKEND"},
		{errPlain, "GENERAL_ERROR"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, cashinerr.Code(tt.err))
		})
	}
}

func TestWithDetailsAndSuggestion(t *testing.T) {
	t.Parallel()
	details := map[string]string{"provider": "Moonpy"}
	err := cashinerr.WithDetails(cashinerr.ErrProviderNotFound, details)
	err = cashinerr.WithSuggestion(err, "did you mean 'Moonpay'?")

	var ce *cashinerr.CashinError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, details, ce.Details)
	assert.Equal(t, "did you mean 'Moonpay'?", ce.Suggestion)
	assert.Equal(t, "PROVIDER_NOT_FOUND", ce.Code)
}

func TestCashinError_Error(t *testing.T) {
	t.Parallel()
	err := &cashinerr.CashinError{
		Message: "bad",
		Details: map[string]string{"b": "2", "a": "1"},
		Cause:   errInner,
	}
	assert.Equal(t, "bad (a: 1) (b: 2): inner", err.Error())
	assert.Equal(t, errInner, err.Unwrap())
}

func TestWrap_plainError(t *testing.T) {
	t.Parallel()
	assert.NoError(t, cashinerr.Wrap(nil, "ignored"))

	err := cashinerr.Wrap(errPlain, "reading %s", "state.json")
	require.ErrorIs(t, err, errPlain)
	assert.Equal(t, "reading state.json: plain error", err.Error())
	assert.Equal(t, cashinerr.ExitGeneral, cashinerr.ExitCode(err))
}

func TestWithHelpers_nil(t *testing.T) {
	t.Parallel()
	assert.NoError(t, cashinerr.WithDetails(nil, map[string]string{"a": "b"}))
	assert.NoError(t, cashinerr.WithSuggestion(nil, "x"))
}

func TestIsMatchesCode(t *testing.T) {
	t.Parallel()
	other := &cashinerr.CashinError{Code: "INVALID_TX_HASH", Message: "other message"}
	assert.True(t, cashinerr.Is(cashinerr.ErrInvalidTxHash, other))
	assert.False(t, cashinerr.Is(cashinerr.ErrInvalidTxHash, cashinerr.ErrInvalidAddress))

	var ce *cashinerr.CashinError
	require.True(t, cashinerr.As(cashinerr.Wrap(cashinerr.ErrStorage, "ctx"), &ce))
	assert.Equal(t, "STORAGE_ERROR", ce.Code)
}
