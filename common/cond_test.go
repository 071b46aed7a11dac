package common

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollections(t *testing.T) {
	t.Parallel()
	values := []int{1, 2, 3, 4}
	require.True(t, Contains(values, 3))
	require.False(t, Contains(values, 5))
	require.Equal(t, []int{2, 4}, Filter(values, func(it int) bool { return it%2 == 0 }))
	require.Equal(t, []int{2, 4, 6, 8}, Map(values, func(it int) int { return it * 2 }))
	require.Empty(t, Map([]int(nil), func(it int) int { return it }))
}

func TestDone(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	require.False(t, Done(ctx))
	cancel()
	require.True(t, Done(ctx))
}
