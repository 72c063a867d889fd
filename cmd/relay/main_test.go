package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/relay/internal/adapters/report"
	"go.trai.ch/relay/internal/adapters/telemetry"
	"go.trai.ch/relay/internal/app"
	"go.trai.ch/relay/internal/core/ports/mocks"
	"go.trai.ch/relay/internal/engine/runner"
	"go.uber.org/mock/gomock"
)

func testProvider(t *testing.T, ctrl *gomock.Controller) (ComponentProvider, *mocks.MockConfigLoader, *mocks.MockLogger) {
	t.Helper()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockExecutor := mocks.NewMockExecutor(ctrl)

	store, err := report.NewStore(filepath.Join(t.TempDir(), "report.json"))
	require.NoError(t, err)

	r := runner.NewRunner(mockExecutor, store, telemetry.NewNoop(), mockLogger)
	application := app.New(mockLoader, r, mockLogger)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: mockLogger}, func() {}, nil
	}
	return provider, mockLoader, mockLogger
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider, _, _ := testProvider(t, ctrl)

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
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider, mockLoader, mockLogger := testProvider(t, ctrl)

	mockLoader.EXPECT().Load("relay.yaml").Return(nil, errors.New("load failed"))
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"run", "-r", "master"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
}
