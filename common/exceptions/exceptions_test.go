package exceptions_test

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"

	E "github.com/sagernet/sing-wlan/common/exceptions"

	"github.com/stretchr/testify/require"
)

type codeError struct {
	code uint32
}

func (e *codeError) Error() string {
	return "code"
}

func TestCause(t *testing.T) {
	t.Parallel()
	err := E.Cause(io.EOF, "read profile ", "home")
	require.EqualError(t, err, "read profile home: EOF")
	require.ErrorIs(t, err, io.EOF)
}

func TestErrors(t *testing.T) {
	t.Parallel()
	require.NoError(t, E.Errors(nil, nil))
	require.Equal(t, io.EOF, E.Errors(nil, io.EOF))

	joined := E.Errors(io.EOF, nil, os.ErrNotExist)
	require.ErrorIs(t, joined, io.EOF)
	require.ErrorIs(t, joined, os.ErrNotExist)
	require.Contains(t, joined.Error(), " | ")
}

func TestCast(t *testing.T) {
	t.Parallel()
	inner := &codeError{code: 5023}
	err := E.Errors(io.EOF, E.Cause(inner, "query"))

	found, ok := E.Cast[*codeError](err)
	require.True(t, ok)
	require.Equal(t, uint32(5023), found.code)

	_, ok = E.Cast[*codeError](errors.New("plain"))
	require.False(t, ok)

	_, ok = E.Cast[*codeError](nil)
	require.False(t, ok)
}

func TestIsCanceled(t *testing.T) {
	t.Parallel()
	require.True(t, E.IsCanceled(E.Cause(context.Canceled, "watch")))
	require.True(t, E.IsCanceled(context.DeadlineExceeded))
	require.False(t, E.IsCanceled(io.EOF))
}
