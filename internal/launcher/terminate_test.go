package launcher

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeKiller records attempted PIDs and fails for those listed in failPIDs.
type fakeKiller struct {
	attempted []string
	failPIDs  map[string]bool
}

func (f *fakeKiller) Kill(_ context.Context, pid string) error {
	f.attempted = append(f.attempted, pid)
	if f.failPIDs[pid] {
		return errors.New("operation not permitted")
	}
	return nil
}

func TestBatchTerminate(t *testing.T) {
	ctx := context.Background()

	t.Run("all succeed", func(t *testing.T) {
		killer := &fakeKiller{}
		report := BatchTerminate(ctx, killer, []string{"1", "2", "3"})
		assert.Equal(t, 3, report.Succeeded())
		assert.Equal(t, 3, report.Attempted())
		assert.Equal(t, []string{"1", "2", "3"}, killer.attempted)
	})

	t.Run("all fail", func(t *testing.T) {
		killer := &fakeKiller{failPIDs: map[string]bool{"1": true, "2": true}}
		report := BatchTerminate(ctx, killer, []string{"1", "2"})
		assert.Equal(t, 0, report.Succeeded())
		assert.Equal(t, 2, report.Attempted())
	})

	t.Run("failures do not short-circuit", func(t *testing.T) {
		killer := &fakeKiller{failPIDs: map[string]bool{"1": true}}
		report := BatchTerminate(ctx, killer, []string{"1", "2"})
		assert.Equal(t, 1, report.Succeeded())
		assert.Len(t, killer.attempted, 2)
		assert.Error(t, report.Outcomes[0].Err)
		assert.NoError(t, report.Outcomes[1].Err)
	})

	t.Run("empty batch", func(t *testing.T) {
		report := BatchTerminate(ctx, &fakeKiller{}, nil)
		assert.Equal(t, 0, report.Attempted())
	})
}
