package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"
)

type State int32

const (
	StateStopped State = iota
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "RUNNING"
	default:
		return "STOPPED"
	}
}

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the real SleepFunc.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Scheduler runs a task, sleeps a fixed interval, and repeats until the context ends.
type Scheduler struct {
	task     Task
	interval time.Duration
	sleep    SleepFunc
	setups   []func(ctx context.Context) error
	state    atomic.Int32
}

type Option func(s *Scheduler)

func WithSleep(sleep SleepFunc) Option {
	return func(s *Scheduler) {
		s.sleep = sleep
	}
}

// WithSetup registers a hook run once before the first cycle, e.g. schema creation.
// A failing hook is logged and does not prevent the loop from starting.
func WithSetup(setup func(ctx context.Context) error) Option {
	return func(s *Scheduler) {
		s.setups = append(s.setups, setup)
	}
}

func NewScheduler(task Task, interval time.Duration, opts ...Option) *Scheduler {
	s := &Scheduler{
		task:     task,
		interval: interval,
		sleep:    Sleep,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scheduler) State() State {
	return State(s.state.Load())
}

// RunOnce runs a single pass of the task. A panic is converted into an error.
func (s *Scheduler) RunOnce(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task %q panicked: %v", s.task.Name(), r)
		}
	}()
	return s.task.Run(ctx)
}

// RunForever returns nil when ctx is cancelled and the task's error otherwise.
func (s *Scheduler) RunForever(ctx context.Context) error {
	for _, setup := range s.setups {
		if err := setup(ctx); err != nil {
			slog.Error("scheduler setup failed", "task", s.task.Name(), "error", err)
		}
	}

	s.state.Store(int32(StateRunning))
	defer s.state.Store(int32(StateStopped))

	for {
		if err := s.RunOnce(ctx); err != nil {
			// 被中断时任务返回的错误不算致命
			if ctx.Err() != nil {
				slog.Info("scheduler stopped", "task", s.task.Name())
				return nil
			}
			return err
		}

		slog.Info("cycle complete", "task", s.task.Name(), "wait", s.interval)
		if err := s.sleep(ctx, s.interval); err != nil {
			slog.Info("scheduler stopped", "task", s.task.Name())
			return nil
		}
	}
}
