package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindInvalidRequest, KindOf(NewInvalidRequest("bad cart")))
	assert.Equal(t, KindNotFound, KindOf(NewNotFound("no such product")))
	assert.Equal(t, KindConflict, KindOf(NewConflict("sold out")))
	assert.Equal(t, KindInternal, KindOf(NewInternal("save order", errors.New("boom"))))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain error")))
}

func TestKindOf_Wrapped(t *testing.T) {
	inner := NewNotFound("no such product")
	wrapped := fmt.Errorf("checkout: %w", inner)
	assert.Equal(t, KindNotFound, KindOf(wrapped))
}

func TestNewInternal_HidesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternal("save order", cause)

	assert.Equal(t, "failed to save order", err.Message)
	assert.ErrorIs(t, err, cause)
}
