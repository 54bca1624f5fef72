package shell_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoomgrab/zoomgrab/internal/adapters/shell"
	"github.com/zoomgrab/zoomgrab/internal/core/domain"
)

func TestRunner_Success(t *testing.T) {
	r := shell.NewRunner(nil)

	var out bytes.Buffer
	res, err := r.Run(context.Background(), []string{"echo", "hello"}, &out)

	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 0, res.ExitCode)
	assert.True(t, res.Ok())
	assert.Contains(t, out.String(), "hello")
}

func TestRunner_NonZeroExitIsNotAnError(t *testing.T) {
	r := shell.NewRunner(nil)

	res, err := r.Run(context.Background(), []string{"sh", "-c", "exit 3"}, nil)

	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 3, res.ExitCode)
	assert.False(t, res.Ok())
}

func TestRunner_OutputTailOnFailure(t *testing.T) {
	r := shell.NewRunner(nil)

	res, err := r.Run(context.Background(), []string{"sh", "-c", "echo boom >&2; exit 1"}, nil)

	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Contains(t, res.Output, "boom")
}

func TestRunner_MissingTool(t *testing.T) {
	r := shell.NewRunner(nil)

	res, err := r.Run(context.Background(), []string{"definitely-not-a-real-tool-xyz"}, nil)

	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrToolMissing)
}

func TestRunner_EmptyCommand(t *testing.T) {
	r := shell.NewRunner(nil)

	_, err := r.Run(context.Background(), nil, nil)
	require.Error(t, err)
}
