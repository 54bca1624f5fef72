package backoff_test

import (
	"context"
	"errors"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoomgrab/zoomgrab/internal/core/domain"
	"github.com/zoomgrab/zoomgrab/internal/core/ports/mocks"
	"github.com/zoomgrab/zoomgrab/internal/engine/backoff"
	"go.uber.org/mock/gomock"
)

func policy(attempts int, base time.Duration) domain.BackoffPolicy {
	return domain.BackoffPolicy{MaxAttempts: attempts, BaseInterval: base}
}

func TestExecutor_FirstAttemptSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	action := mocks.NewMockAction(ctrl)

	action.EXPECT().
		Run(gomock.Any()).
		Return(&domain.ActionResult{ExitCode: 0}, nil)

	e := backoff.NewExecutor(nil)
	ok, res, attempts := e.Execute(context.Background(), action, policy(3, 5*time.Second))

	require.True(t, ok)
	assert.True(t, res.Ok())
	assert.Equal(t, 1, attempts)
}

func TestExecutor_CompletedFailureIsNotRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	action := mocks.NewMockAction(ctrl)

	// The tool ran and rejected the download; exactly one invocation.
	action.EXPECT().
		Run(gomock.Any()).
		Return(&domain.ActionResult{ExitCode: 1, Output: "HTTP 403"}, nil)

	e := backoff.NewExecutor(nil)
	ok, res, attempts := e.Execute(context.Background(), action, policy(3, 5*time.Second))

	require.True(t, ok)
	assert.False(t, res.Ok())
	assert.Equal(t, 1, attempts)
}

func TestExecutor_RetriesWithDoublingInterval(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		action := mocks.NewMockAction(ctrl)

		gomock.InOrder(
			action.EXPECT().Run(gomock.Any()).Return(nil, errors.New("spawn failed")),
			action.EXPECT().Run(gomock.Any()).Return(nil, errors.New("spawn failed")),
			action.EXPECT().Run(gomock.Any()).Return(&domain.ActionResult{ExitCode: 0}, nil),
		)

		e := backoff.NewExecutor(nil)

		start := time.Now()
		ok, res, attempts := e.Execute(context.Background(), action, policy(3, 5*time.Second))

		require.True(t, ok)
		assert.True(t, res.Ok())
		assert.Equal(t, 3, attempts)
		// Two pauses: 5s then 10s.
		assert.Equal(t, 15*time.Second, time.Since(start))
	})
}

func TestExecutor_ExhaustsAttempts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		action := mocks.NewMockAction(ctrl)

		action.EXPECT().
			Run(gomock.Any()).
			Return(nil, errors.New("spawn failed")).
			Times(3)

		e := backoff.NewExecutor(nil)

		start := time.Now()
		ok, res, attempts := e.Execute(context.Background(), action, policy(3, 5*time.Second))

		require.False(t, ok)
		assert.Nil(t, res)
		assert.Equal(t, 3, attempts)
		// No pause after the final attempt.
		assert.Equal(t, 15*time.Second, time.Since(start))
	})
}

func TestExecutor_ContextCancelsPause(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		action := mocks.NewMockAction(ctrl)

		action.EXPECT().
			Run(gomock.Any()).
			Return(nil, errors.New("spawn failed"))

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(time.Second)
			cancel()
		}()

		e := backoff.NewExecutor(nil)
		ok, res, _ := e.Execute(ctx, action, policy(3, 5*time.Second))

		require.False(t, ok)
		assert.Nil(t, res)
	})
}

func TestExecutor_SingleAttemptPolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	action := mocks.NewMockAction(ctrl)

	action.EXPECT().
		Run(gomock.Any()).
		Return(nil, errors.New("spawn failed"))

	e := backoff.NewExecutor(nil)
	ok, _, attempts := e.Execute(context.Background(), action, policy(1, time.Second))

	assert.False(t, ok)
	assert.Equal(t, 1, attempts)
}
