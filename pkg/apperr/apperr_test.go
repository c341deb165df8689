package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	err := New(KindNotFound, "User does not exist.")
	assert.Equal(t, KindNotFound, KindOf(err))

	wrapped := fmt.Errorf("lookup: %w", err)
	assert.Equal(t, KindNotFound, KindOf(wrapped))

	assert.Equal(t, KindExternalService, KindOf(errors.New("pg: connection refused")))
}

func TestMessageOf(t *testing.T) {
	err := Wrap(KindAuth, "Invalid session.", errors.New("token expired"))
	assert.Equal(t, "Invalid session.", MessageOf(err))

	// unknown errors never leak their detail
	assert.Equal(t, "Something went wrong. Please try again.", MessageOf(errors.New("secret detail")))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(KindExternalService, "Failed to save feedback.", cause)
	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "boom")
}

func TestIsKind(t *testing.T) {
	err := New(KindDuplicateIdentity, "User already exists. Please sign in instead.")
	assert.True(t, IsKind(err, KindDuplicateIdentity))
	assert.False(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(errors.New("plain"), KindDuplicateIdentity))
}
