package testfixtures

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_Records(t *testing.T) {
	d := NewDispatcher(nil)
	require.NoError(t, d.Dispatch(context.Background(), "one"))
	require.NoError(t, d.Dispatch(context.Background(), "two"))

	assert.Equal(t, []string{"one", "two"}, d.Messages())
	assert.Equal(t, 2, d.Calls())
}

func TestDispatcher_Fails(t *testing.T) {
	boom := errors.New("boom")
	d := NewDispatcher(boom)

	assert.ErrorIs(t, d.Dispatch(context.Background(), "one"), boom)
	assert.Equal(t, 1, d.Calls())
}

func TestDispatcher_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := NewDispatcher(nil)
	assert.ErrorIs(t, d.Dispatch(ctx, "one"), context.Canceled)
	assert.Zero(t, d.Calls())
}

func TestLines(t *testing.T) {
	assert.Equal(t, "xx\nxx\nxx", Lines(3, 2))
	assert.Len(t, Line(72), 72)
}
