package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zoomgrab/zoomgrab/internal/adapters/input"
	"github.com/zoomgrab/zoomgrab/internal/adapters/logger"
	"github.com/zoomgrab/zoomgrab/internal/app"
	"github.com/zoomgrab/zoomgrab/internal/core/domain"
	"github.com/zoomgrab/zoomgrab/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newTestProvider(t *testing.T) (ComponentProvider, *mocks.MockConfigLoader) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockRunner := mocks.NewMockCommandRunner(ctrl)
	mockTools := mocks.NewMockToolManager(ctrl)

	log := logger.New()
	log.SetOutput(new(bytes.Buffer))

	application := app.New(
		mockLoader,
		input.NewParser(log),
		mockRunner,
		mockTools,
		log,
	)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: log,
		}, func() {}, nil
	}
	return provider, mockLoader
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	provider, _ := newTestProvider(t)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 when the command execution fails.
func TestRun_ExecutionError(t *testing.T) {
	provider, mockLoader := newTestProvider(t)

	// Config load failing makes the status command fail.
	mockLoader.EXPECT().Load("").Return(domain.Config{}, errors.New("load failed"))

	t.Chdir(t.TempDir())

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"status"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
}
