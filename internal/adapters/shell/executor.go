// Package shell provides the shell step executor adapter.
package shell

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"go.trai.ch/relay/internal/core/domain"
	"go.trai.ch/relay/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec and the platform shell.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new shell Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the step's command with the specified environment.
// It merges environments with the following priority (low to high):
// 1. os.Environ() (system base)
// 2. env (matrix variables of the enclosing job instance)
// 3. step.Environment (per-step overrides)
//
// Output is streamed line-wise to the logger and mirrored to the provided
// stdout/stderr writers.
func (e *Executor) Execute(ctx context.Context, step *domain.Step, env []string, stdout, stderr io.Writer) error {
	if step.Run == "" {
		return nil
	}

	shell, flag := platformShell()
	cmd := exec.CommandContext(ctx, shell, flag, step.Run) //nolint:gosec // user provided command

	cmd.Env = resolveEnvironment(os.Environ(), env, step.Environment)

	outLines := newLineWriter(func(line string) { e.logger.Info(line) })
	errLines := newLineWriter(func(line string) { e.logger.Error(zerr.New(line)) })
	cmd.Stdout = io.MultiWriter(stdout, outLines)
	cmd.Stderr = io.MultiWriter(stderr, errLines)

	err := cmd.Run()
	outLines.Flush()
	errLines.Flush()
	if err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		e := zerr.Wrap(err, "step command failed")
		e = zerr.With(e, "step", step.Name)
		e = zerr.With(e, "exit_code", exitCode)
		return e
	}

	return nil
}

func platformShell() (name, flag string) {
	if runtime.GOOS == "windows" {
		return "cmd", "/c"
	}
	return "sh", "-c"
}

// lineWriter buffers writes and emits complete lines. Partial lines are
// held until the next newline or an explicit Flush.
type lineWriter struct {
	mu   sync.Mutex
	buf  bytes.Buffer
	emit func(string)
}

func newLineWriter(emit func(string)) *lineWriter {
	return &lineWriter{emit: emit}
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		data := w.buf.Bytes()
		idx := bytes.IndexByte(data, '\n')
		if idx < 0 {
			return len(p), nil
		}
		line := strings.TrimSuffix(string(data[:idx]), "\r")
		w.buf.Next(idx + 1)
		w.emit(line)
	}
}

// Flush emits any buffered partial line.
func (w *lineWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buf.Len() > 0 {
		w.emit(w.buf.String())
		w.buf.Reset()
	}
}

// resolveEnvironment merges environment variables with the defined priority.
func resolveEnvironment(sysEnv, matrixEnv []string, stepEnv map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(matrixEnv)+len(stepEnv))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}
	for _, entry := range matrixEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}
	for k, v := range stepEnv {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}
