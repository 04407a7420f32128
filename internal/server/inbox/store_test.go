package inbox

import (
	"testing"

	"github.com/dmitrijs2005/gophchat/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PushRequiresOpenInbox(t *testing.T) {
	s := NewStore()

	assert.ErrorIs(t, s.Push("nobody", "hi"), common.ErrInvalidRecipient)

	s.Open("b")
	require.NoError(t, s.Push("b", "hi"))
	assert.Equal(t, 1, s.Len("b"))
}

func TestStore_PopIsFIFO(t *testing.T) {
	s := NewStore()
	s.Open("b")
	for _, m := range []string{"one", "two", "three"} {
		require.NoError(t, s.Push("b", m))
	}

	for _, want := range []string{"one", "two", "three"} {
		got, ok := s.Pop("b")
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := s.Pop("b")
	assert.False(t, ok)
	assert.True(t, s.Exists("b"))
}

func TestStore_DrainTakesEverythingOnce(t *testing.T) {
	s := NewStore()
	s.Open("b")
	require.NoError(t, s.Push("b", "one"))
	require.NoError(t, s.Push("b", "two"))

	assert.Equal(t, []string{"one", "two"}, s.Drain("b"))
	assert.Empty(t, s.Drain("b"))
	assert.True(t, s.Exists("b"))

	require.NoError(t, s.Push("b", "three"))
	assert.Equal(t, []string{"three"}, s.Drain("b"))
}

func TestStore_RemoveDropsPending(t *testing.T) {
	s := NewStore()
	s.Open("a")
	s.Open("b")
	require.NoError(t, s.Push("a", "x"))
	require.NoError(t, s.Push("b", "y"))
	require.NoError(t, s.Push("b", "z"))
	assert.Equal(t, 3, s.Pending())

	s.Remove("b")

	assert.False(t, s.Exists("b"))
	assert.ErrorIs(t, s.Push("b", "late"), common.ErrInvalidRecipient)
	assert.Equal(t, 1, s.Pending())
	assert.Nil(t, s.Drain("b"))
}
