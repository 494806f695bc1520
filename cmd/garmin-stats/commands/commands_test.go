package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/paulohenriquegf/garmin-statistics/cmd/garmin-stats/commands"
	"github.com/paulohenriquegf/garmin-statistics/internal/app"
	"github.com/paulohenriquegf/garmin-statistics/internal/build"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockApp struct {
	launchFunc func(ctx context.Context) error
	statsFunc  func(ctx context.Context, path string, opts app.StatsOptions) error
}

func (m *mockApp) Launch(ctx context.Context) error {
	if m.launchFunc != nil {
		return m.launchFunc(ctx)
	}
	return nil
}

func (m *mockApp) Stats(ctx context.Context, path string, opts app.StatsOptions) error {
	if m.statsFunc != nil {
		return m.statsFunc(ctx, path, opts)
	}
	return nil
}

func TestCommands_Launch(t *testing.T) {
	t.Run("invokes launch", func(t *testing.T) {
		called := false
		mock := &mockApp{
			launchFunc: func(_ context.Context) error {
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"launch"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("returns error on launch failure", func(t *testing.T) {
		mock := &mockApp{
			launchFunc: func(_ context.Context) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"launch"})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		mock := &mockApp{
			launchFunc: func(_ context.Context) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"launch", "extra"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
	})
}

func TestCommands_Stats(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.StatsOptions
		var capturedPath string
		called := false

		mock := &mockApp{
			statsFunc: func(_ context.Context, path string, opts app.StatsOptions) error {
				capturedOpts = opts
				capturedPath = path
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"stats", "export.zip", "--no-cache", "--watch", "--output-mode", "tui"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "export.zip", capturedPath)
		assert.True(t, capturedOpts.NoCache)
		assert.True(t, capturedOpts.Watch)
		assert.Equal(t, "tui", capturedOpts.OutputMode)
	})

	t.Run("ci flag forces linear output", func(t *testing.T) {
		var capturedOpts app.StatsOptions

		mock := &mockApp{
			statsFunc: func(_ context.Context, _ string, opts app.StatsOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"stats", "export", "--ci"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "linear", capturedOpts.OutputMode)
	})

	t.Run("shows usage when no export provided", func(t *testing.T) {
		mock := &mockApp{
			statsFunc: func(_ context.Context, _ string, _ app.StatsOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"stats"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Usage:")
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
