// Package brainclock periodically scans the task list for overdue work and
// emits events the UI turns into warnings and desktop notifications.
package brainclock

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/shiren23/focusflow/internal/model"
)

// Event carries the overdue tasks found by one scan.
type Event struct {
	At    time.Time
	Tasks []model.Task
}

// Overdue returns the tasks whose deadline has passed and that are not done.
func Overdue(tasks []model.Task, now time.Time) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if t.IsOverdue(now) {
			out = append(out, t)
		}
	}
	return out
}

// Monitor runs the overdue scan on a ticker. It does not own the task list;
// it reads a snapshot through the function it was constructed with, so the
// UI keeps sole ownership of mutation.
type Monitor struct {
	snapshot func() []model.Task

	mu       sync.Mutex
	interval time.Duration
	out      chan Event
	wakeup   chan struct{}
	stopCh   chan struct{}
	doneCh   chan struct{}
	started  bool
	stopped  bool
	dropped  uint64
}

// NewMonitor builds a monitor that scans snapshot() every interval. An
// interval <= 0 starts the monitor paused.
func NewMonitor(snapshot func() []model.Task, interval time.Duration) *Monitor {
	return &Monitor{
		snapshot: snapshot,
		interval: interval,
		out:      make(chan Event, 1),
		wakeup:   make(chan struct{}, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

func (m *Monitor) C() <-chan Event {
	return m.out
}

func (m *Monitor) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.started {
		return
	}
	m.started = true
	go m.loop()
}

// Stop shuts the loop down and waits for it to exit. Safe to call more than
// once and before Start.
func (m *Monitor) Stop() {
	m.mu.Lock()
	if !m.started || m.stopped {
		m.mu.Unlock()
		return
	}
	m.stopped = true
	close(m.stopCh)
	m.mu.Unlock()
	<-m.doneCh
}

// SetInterval reschedules the next scan. A value <= 0 pauses checking; the
// loop stays up and resumes on the next positive interval.
func (m *Monitor) SetInterval(d time.Duration) {
	m.mu.Lock()
	m.interval = d
	m.mu.Unlock()
	m.signalWakeup()
}

// Dropped counts events discarded because the consumer lagged.
func (m *Monitor) Dropped() uint64 {
	return atomic.LoadUint64(&m.dropped)
}

func (m *Monitor) loop() {
	defer close(m.doneCh)
	defer close(m.out)

	var timer *time.Timer
	for {
		wait := m.currentInterval()
		if wait <= 0 {
			// Paused: wait for SetInterval or Stop.
			select {
			case <-m.wakeup:
				continue
			case <-m.stopCh:
				stopTimer(timer)
				return
			}
		}

		timer = resetTimer(timer, wait)
		select {
		case now := <-timer.C:
			overdue := Overdue(m.snapshot(), now)
			if len(overdue) == 0 {
				continue
			}
			select {
			case m.out <- Event{At: now, Tasks: overdue}:
			default:
				atomic.AddUint64(&m.dropped, 1)
			}
		case <-m.wakeup:
			continue
		case <-m.stopCh:
			stopTimer(timer)
			return
		}
	}
}

func (m *Monitor) currentInterval() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.interval
}

func (m *Monitor) signalWakeup() {
	select {
	case m.wakeup <- struct{}{}:
	default:
	}
}

func resetTimer(timer *time.Timer, d time.Duration) *time.Timer {
	if timer == nil {
		return time.NewTimer(d)
	}
	stopTimer(timer)
	timer.Reset(d)
	return timer
}

func stopTimer(timer *time.Timer) {
	if timer == nil {
		return
	}
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
