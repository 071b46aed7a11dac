package task_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sagernet/sing-wlan/common/task"

	"github.com/stretchr/testify/require"
)

func TestRunAllSucceed(t *testing.T) {
	t.Parallel()
	var first, second bool
	err := task.Run(context.Background(), func(ctx context.Context) error {
		first = true
		return nil
	}, func(ctx context.Context) error {
		second = true
		return nil
	})
	require.NoError(t, err)
	require.True(t, first)
	require.True(t, second)
}

func TestRunFailureCancelsOthers(t *testing.T) {
	t.Parallel()
	failure := errors.New("failure")
	err := task.Run(context.Background(), func(ctx context.Context) error {
		return failure
	}, func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	require.ErrorIs(t, err, failure)
}

func TestRunCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	err := task.Run(ctx, func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	require.ErrorIs(t, err, context.Canceled)
}
