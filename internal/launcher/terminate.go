package launcher

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/phpup/phpup-tui/internal/logging"
)

// ProcessKiller issues a termination request for a single PID.
type ProcessKiller interface {
	Kill(ctx context.Context, pid string) error
}

// systemKiller terminates processes with the system kill command, surfacing
// the tool's diagnostic text when it fails.
type systemKiller struct{}

func (systemKiller) Kill(ctx context.Context, pid string) error {
	cmd := exec.CommandContext(ctx, "kill", pid)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("kill %s: %s", pid, msg)
		}
		return fmt.Errorf("kill %s: %w", pid, err)
	}
	return nil
}

// DefaultKiller is the production ProcessKiller.
var DefaultKiller ProcessKiller = systemKiller{}

// KillOutcome records the result of one termination attempt.
type KillOutcome struct {
	PID string
	Err error
}

// KillReport summarizes a batch termination.
type KillReport struct {
	Outcomes []KillOutcome
}

// Succeeded returns how many terminations succeeded.
func (r KillReport) Succeeded() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Err == nil {
			n++
		}
	}
	return n
}

// Attempted returns how many terminations were attempted.
func (r KillReport) Attempted() int {
	return len(r.Outcomes)
}

// BatchTerminate issues one termination request per PID. Individual failures
// are recorded and never short-circuit the batch.
func BatchTerminate(ctx context.Context, killer ProcessKiller, pids []string) KillReport {
	report := KillReport{Outcomes: make([]KillOutcome, 0, len(pids))}
	for _, pid := range pids {
		err := killer.Kill(ctx, pid)
		if err != nil {
			logging.Warn("failed to kill process", "pid", pid, "error", err)
		}
		report.Outcomes = append(report.Outcomes, KillOutcome{PID: pid, Err: err})
	}
	logging.Info("batch termination finished", "succeeded", report.Succeeded(), "attempted", report.Attempted())
	return report
}
