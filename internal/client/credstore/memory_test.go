package credstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	s := NewMemoryStore("")
	_, ok, err := s.Read(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Write(ctx, "tok-A"))
	tok, ok, _ := s.Read(ctx)
	require.True(t, ok)
	require.Equal(t, "tok-A", tok)

	require.NoError(t, s.Clear(ctx))
	_, ok, _ = s.Read(ctx)
	require.False(t, ok)
}

func TestMemoryStore_Preloaded(t *testing.T) {
	tok, ok, err := NewMemoryStore("tok-B").Read(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "tok-B", tok)
}
