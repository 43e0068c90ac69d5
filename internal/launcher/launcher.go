// Package launcher wraps the external phpup binary: locating it, invoking it
// with derived argument vectors, capturing its output, and terminating the
// server processes it spawned. The launcher's text output is the only
// discovery channel for server state, so all parsing here is best-effort.
package launcher

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/phpup/phpup-tui/internal/logging"
)

// MaxOutputLines caps how much launcher output is retained per invocation.
const MaxOutputLines = 1000

// ErrNotFound indicates the phpup binary is missing from its expected path.
var ErrNotFound = errors.New("phpup binary not found")

// Launcher invokes the external phpup binary.
type Launcher struct {
	// Path is the resolved location of the phpup binary.
	Path string
}

// Result holds the captured outcome of one launcher invocation.
type Result struct {
	Args      []string
	Lines     []string
	ExitCode  int
	Truncated bool
}

// Find resolves the phpup binary. An explicit path wins; otherwise ./phpup in
// the working directory is tried, then $PATH.
func Find(explicit string) (*Launcher, error) {
	if explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve launcher path: %w", err)
		}
		if _, err := os.Stat(abs); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, abs)
		}
		return &Launcher{Path: abs}, nil
	}

	if abs, err := filepath.Abs("phpup"); err == nil {
		if _, err := os.Stat(abs); err == nil {
			return &Launcher{Path: abs}, nil
		}
	}

	if path, err := exec.LookPath("phpup"); err == nil {
		return &Launcher{Path: path}, nil
	}

	return nil, ErrNotFound
}

// Run executes phpup with the given arguments, blocking until it exits or the
// output cap is reached. Stdout and stderr are combined and captured
// line-by-line. A non-zero exit status is reported in the Result, not as an
// error; only failure to start the process is an error.
func (l *Launcher) Run(ctx context.Context, args []string) (*Result, error) {
	cmd := exec.CommandContext(ctx, l.Path, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open launcher pipe: %w", err)
	}
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, l.Path)
		}
		return nil, fmt.Errorf("failed to start launcher: %w", err)
	}

	res := &Result{Args: args}
	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		res.Lines = append(res.Lines, scanner.Text())
		if len(res.Lines) >= MaxOutputLines {
			res.Truncated = true
			break
		}
	}

	// Drain the rest so Wait does not block on a full pipe.
	for scanner.Scan() {
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
		} else {
			return nil, fmt.Errorf("launcher did not exit cleanly: %w", err)
		}
	}

	logging.Debug("launcher finished", "args", args, "exit", res.ExitCode, "lines", len(res.Lines))
	return res, nil
}

// ListProcesses runs `phpup --list` and parses the output. A failed or
// non-zero invocation yields an empty list; the process manager treats that
// the same as no servers running.
func (l *Launcher) ListProcesses(ctx context.Context) ([]ProcessRecord, error) {
	res, err := l.Run(ctx, []string{"--list"})
	if err != nil {
		return nil, err
	}
	if res.ExitCode != 0 {
		return nil, nil
	}
	return ParseProcessList(res.Lines), nil
}
