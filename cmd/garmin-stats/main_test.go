package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/paulohenriquegf/garmin-statistics/internal/app"
	"github.com/paulohenriquegf/garmin-statistics/internal/core/domain"
	"github.com/paulohenriquegf/garmin-statistics/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestProvider(ctrl *gomock.Controller) (ComponentProvider, *mocks.MockInstaller) {
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockInstaller := mocks.NewMockInstaller(ctrl)
	mockExecutor := mocks.NewMockExecutor(ctrl)
	mockReader := mocks.NewMockExportReader(ctrl)
	mockCache := mocks.NewMockSummaryCache(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	mockLoader.EXPECT().Load(gomock.Any()).Return(domain.DefaultLaunchConfig(), nil).AnyTimes()

	application := app.New(
		mockLoader,
		mockInstaller,
		mockExecutor,
		mockReader,
		mockCache,
		mockLogger,
	)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}
	return provider, mockInstaller
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider, _ := newTestProvider(ctrl)

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

// TestRun_MissingPrerequisite verifies that a failed prerequisite check maps to exit code 1.
func TestRun_MissingPrerequisite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider, installer := newTestProvider(ctrl)
	installer.EXPECT().
		CheckPrerequisites(gomock.Any(), gomock.Any()).
		Return(domain.ErrMissingPrerequisite)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"launch"}, stderr, provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_ExitStatusPassthrough verifies that the dashboard's own exit status
// becomes the process exit code.
func TestRun_ExitStatusPassthrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider, installer := newTestProvider(ctrl)
	installer.EXPECT().
		CheckPrerequisites(gomock.Any(), gomock.Any()).
		Return(nil)
	installer.EXPECT().
		Install(gomock.Any(), gomock.Any()).
		Return(&domain.ExitStatusError{Code: 7})

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"launch"}, stderr, provider)
	assert.Equal(t, 7, exitCode)
}
