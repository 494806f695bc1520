// Package shell provides a PTY-backed executor for external processes.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/creack/pty"
	"github.com/paulohenriquegf/garmin-statistics/internal/core/domain"
	"github.com/paulohenriquegf/garmin-statistics/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec and pty.
//
// Running the child under a PTY keeps interactive programs (pip progress
// bars, the Streamlit banner) rendering the way they do in a plain shell.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{logger: logger}
}

// Execute runs the command and blocks until it exits. Child output is
// mirrored line-by-line through the structured logger and copied to stdout.
// A non-zero exit status is returned as *domain.ExitStatusError wrapped with
// context.
func (e *Executor) Execute(ctx context.Context, cmd domain.Command, stdout, _ io.Writer) error {
	if len(cmd.Argv) == 0 {
		return nil
	}

	log := &logWriter{logger: e.logger}
	sink := io.MultiWriter(log, stdout)

	//nolint:gosec // argv comes from launcher configuration
	proc := exec.CommandContext(ctx, cmd.Argv[0], cmd.Argv[1:]...)
	if cmd.Dir != "" {
		proc.Dir = cmd.Dir
	}
	if len(cmd.Env) > 0 {
		proc.Env = mergeEnv(os.Environ(), cmd.Env)
	}

	ptmx, err := pty.Start(proc)
	if err != nil {
		return zerr.Wrap(err, "failed to start pty")
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		defer func() { _ = ptmx.Close() }()
		defer func() { _ = log.Close() }()

		// The PTY merges stdout and stderr into one stream.
		_, _ = io.Copy(sink, ptmx)
	}()

	waitErr := proc.Wait()
	<-ioDone

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) && exitErr.ExitCode() > 0 {
			return &domain.ExitStatusError{Code: exitErr.ExitCode()}
		}
		return zerr.Wrap(waitErr, "command failed")
	}

	return nil
}

// mergeEnv overlays extra variables onto the base environment.
func mergeEnv(base []string, extra map[string]string) []string {
	merged := make([]string, 0, len(base)+len(extra))
	for _, entry := range base {
		k, _, ok := strings.Cut(entry, "=")
		if ok {
			if _, overridden := extra[k]; overridden {
				continue
			}
		}
		merged = append(merged, entry)
	}
	for k, v := range extra {
		merged = append(merged, k+"="+v)
	}
	return merged
}

// logWriter buffers child output and forwards complete lines to the logger.
type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	// PTYs may introduce \r. Remove it.
	msg := strings.TrimSuffix(string(line), "\r")
	w.logger.Info(msg)
}
