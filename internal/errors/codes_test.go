package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		code ErrorCode
		want string
	}{
		{"missing file", IngestMissingFile, "Input file is missing or unreadable"},
		{"missing column", IngestMissingColumn, "Input file is missing a required column"},
		{"store write", StoreWriteFailed, "Record store write failed"},
		{"invalid date", ParseInvalidDate, "Invoice date could not be parsed"},
		{"unknown code falls back", ErrorCode("NOPE_999"), "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetErrorMessage(tt.code))
		})
	}
}

func TestIsValidErrorCode(t *testing.T) {
	assert.True(t, IsValidErrorCode(IngestMissingFile))
	assert.True(t, IsValidErrorCode(StoreQueryFailed))
	assert.True(t, IsValidErrorCode(ParseInvalidCustomerID))
	assert.True(t, IsValidErrorCode(SystemConfigurationError))
	assert.False(t, IsValidErrorCode(ErrorCode("NOPE_999")))
	assert.False(t, IsValidErrorCode(ErrorCode("")))
}

func TestNew(t *testing.T) {
	err := New(IngestMissingFile)
	assert.Equal(t, IngestMissingFile, err.Code)
	assert.Equal(t, "Input file is missing or unreadable", err.Message)
	assert.Nil(t, err.Err)
	assert.Equal(t, "INGEST_001: Input file is missing or unreadable", err.Error())
}

func TestNew_WithMessage(t *testing.T) {
	err := New(ParseInvalidDate, WithMessage("invoice 536365: bad date"))
	assert.Equal(t, ParseInvalidDate, err.Code)
	assert.Equal(t, "invoice 536365: bad date", err.Message)
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(StoreWriteFailed, cause)

	assert.Equal(t, StoreWriteFailed, err.Code)
	assert.Equal(t, cause, err.Err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "STORE_002")
	assert.Contains(t, err.Error(), "disk full")
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, StoreQueryFailed, CodeOf(New(StoreQueryFailed)))

	wrapped := fmt.Errorf("stage failed: %w", Wrap(IngestMissingColumn, stderrors.New("no header")))
	assert.Equal(t, IngestMissingColumn, CodeOf(wrapped))

	assert.Equal(t, SystemUnexpectedError, CodeOf(stderrors.New("plain")))
	assert.Equal(t, SystemUnexpectedError, CodeOf(nil))
}

func TestHasCode(t *testing.T) {
	err := Wrap(ParseInvalidNumber, stderrors.New("line 12"))

	assert.True(t, HasCode(err, ParseInvalidNumber))
	assert.False(t, HasCode(err, ParseInvalidDate))
	assert.False(t, HasCode(stderrors.New("plain"), ParseInvalidNumber))
	assert.False(t, HasCode(nil, ParseInvalidNumber))
}
