package errors

import (
	stdErrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("content.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "content.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: content.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("config.yaml", 0, fmt.Errorf("boom"))
	require.Equal(t, "parse error: config.yaml: boom", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("email", "must be a valid email address", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "email", validationErr.Field)
	require.Contains(t, err.Error(), "must be a valid email address")

	bare := NewValidationError("", "form is empty", nil)
	require.Equal(t, "validation error: form is empty", bare.Error())
}

func TestStorageErrorIncludesOperation(t *testing.T) {
	t.Parallel()

	err := NewStorageError("write", "/tmp/prefs.yaml", fs.ErrPermission)

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	require.Equal(t, "write", storageErr.Op)
	require.True(t, stdErrors.Is(err, fs.ErrPermission))
	require.Contains(t, err.Error(), "/tmp/prefs.yaml")
}

func TestNilReceiversAreSafe(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var storageErr *StorageError

	require.Empty(t, parseErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Empty(t, validationErr.Error())
	require.Nil(t, validationErr.Unwrap())
	require.Empty(t, storageErr.Error())
	require.Nil(t, storageErr.Unwrap())
}
