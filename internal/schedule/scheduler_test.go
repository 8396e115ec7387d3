package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTask struct {
	runs    int
	errAt   int
	err     error
	panicAt int
	observe func(runs int)
}

func (t *fakeTask) Run(ctx context.Context) error {
	t.runs++
	if t.observe != nil {
		t.observe(t.runs)
	}
	if t.panicAt == t.runs {
		panic("boom")
	}
	if t.errAt == t.runs {
		return t.err
	}
	return nil
}

func (t *fakeTask) Name() string {
	return "fake"
}

// cancelAfter returns a SleepFunc that records waits and cancels ctx after n sleeps.
func cancelAfter(n int, cancel context.CancelFunc, waits *[]time.Duration) SleepFunc {
	return func(ctx context.Context, d time.Duration) error {
		*waits = append(*waits, d)
		if len(*waits) >= n {
			cancel()
			return ctx.Err()
		}
		return nil
	}
}

func TestScheduler_RunOnce(t *testing.T) {
	task := &fakeTask{}
	s := NewScheduler(task, time.Minute)

	require.NoError(t, s.RunOnce(context.Background()))
	assert.Equal(t, 1, task.runs)
	assert.Equal(t, StateStopped, s.State())
}

func TestScheduler_RunOncePanic(t *testing.T) {
	s := NewScheduler(&fakeTask{panicAt: 1}, time.Minute)

	err := s.RunOnce(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked")
}

func TestScheduler_RunForeverStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var waits []time.Duration
	var setupCalls int
	var states []State

	task := &fakeTask{}
	s := NewScheduler(task, 300*time.Second,
		WithSleep(cancelAfter(3, cancel, &waits)),
		WithSetup(func(ctx context.Context) error {
			setupCalls++
			return nil
		}),
		WithSetup(func(ctx context.Context) error {
			return errors.New("schema failed")
		}),
	)
	task.observe = func(int) {
		states = append(states, s.State())
	}

	err := s.RunForever(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, task.runs)
	assert.Equal(t, 1, setupCalls)
	assert.Equal(t, []time.Duration{300 * time.Second, 300 * time.Second, 300 * time.Second}, waits)
	assert.Equal(t, []State{StateRunning, StateRunning, StateRunning}, states)
	assert.Equal(t, StateStopped, s.State())
}

func TestScheduler_RunForeverFatalError(t *testing.T) {
	fatal := errors.New("unexpected")
	task := &fakeTask{errAt: 2, err: fatal}

	var waits []time.Duration
	s := NewScheduler(task, time.Second, WithSleep(func(ctx context.Context, d time.Duration) error {
		waits = append(waits, d)
		return nil
	}))

	err := s.RunForever(context.Background())
	assert.ErrorIs(t, err, fatal)
	assert.Equal(t, 2, task.runs)
	assert.Len(t, waits, 1)
	assert.Equal(t, StateStopped, s.State())
}

func TestScheduler_RunForeverPanicIsFatal(t *testing.T) {
	s := NewScheduler(&fakeTask{panicAt: 1}, time.Second, WithSleep(func(ctx context.Context, d time.Duration) error {
		return nil
	}))

	err := s.RunForever(context.Background())
	assert.Error(t, err)
}

func TestScheduler_TaskErrorAfterInterrupt(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	task := &fakeTask{errAt: 1, err: errors.New("request canceled")}
	task.observe = func(int) { cancel() }

	s := NewScheduler(task, time.Second)
	assert.NoError(t, s.RunForever(ctx))
}

func TestSleep(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Sleep(ctx, time.Hour), context.Canceled)

	assert.NoError(t, Sleep(context.Background(), time.Millisecond))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "RUNNING", StateRunning.String())
	assert.Equal(t, "STOPPED", StateStopped.String())
}
