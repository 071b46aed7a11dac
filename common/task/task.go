package task

import (
	"context"
	"sync"

	"github.com/sagernet/sing-wlan/common"
)

// Run runs tasks concurrently until all return, one fails, or parent is done.
// Each task receives a context that is canceled on the first failure. The
// first failure is returned; parent's error is returned otherwise.
func Run(parent context.Context, tasks ...func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	var (
		wg      sync.WaitGroup
		errOnce sync.Once
		retErr  error
		done    = make(chan struct{})
	)
	wg.Add(len(tasks))
	for _, task := range tasks {
		task := task
		go func() {
			defer wg.Done()
			if err := task(ctx); err != nil {
				if !common.Done(ctx) {
					errOnce.Do(func() {
						retErr = err
					})
				}
				cancel()
			}
		}()
	}
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		<-done
	}
	if retErr != nil {
		return retErr
	}
	return parent.Err()
}
