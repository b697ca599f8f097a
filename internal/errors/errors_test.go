package errors

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{"parse", NewParseError(12, 2, 3, "Unmatched ')'."), ErrParse, "parse error at offset 12 (line 2, column 3): Unmatched ')'."},
		{"parse without line", NewParseError(4, 0, 0, "Empty input."), ErrParse, "parse error at offset 4: Empty input."},
		{"not found", NewOutgroupNotFoundError("Z"), ErrOutgroupNotFound, `outgroup not found: no clade labeled "Z"`},
		{"invalid", NewInvalidOutgroupError("R"), ErrInvalidOutgroup, `invalid outgroup: clade "R" is the current root`},
		{"io", NewIOError("read", "in.nwk", os.ErrNotExist), ErrIO, "i/o error: read in.nwk: file does not exist"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.EqualError(t, tt.err, tt.message)
			wrapped := fmt.Errorf("tree 1: %w", tt.err)
			require.True(t, errors.Is(wrapped, tt.sentinel))
		})
	}
}

func TestErrorKindsDoNotOverlap(t *testing.T) {
	t.Parallel()

	err := NewOutgroupNotFoundError("Z")
	require.False(t, errors.Is(err, ErrInvalidOutgroup))
	require.False(t, errors.Is(err, ErrParse))

	var perr *ParseError
	require.False(t, errors.As(err, &perr))
}

func TestIOErrorUnwraps(t *testing.T) {
	t.Parallel()

	err := NewIOError("write", "out.tre", os.ErrPermission)
	require.ErrorIs(t, err, os.ErrPermission)
	require.ErrorIs(t, err, ErrIO)
}
