package brainclock

import (
	"testing"
	"time"

	"github.com/shiren23/focusflow/internal/model"
)

func overdueTask(id string, deadline time.Time) model.Task {
	return model.Task{
		ID:       id,
		Title:    "task " + id,
		Priority: model.PriorityImportant,
		Status:   model.StatusTodo,
		Deadline: &deadline,
	}
}

func TestOverdueScan(t *testing.T) {
	now := time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	done := overdueTask("done", past)
	done.Status = model.StatusDone
	noDeadline := model.Task{ID: "none", Title: "no deadline", Priority: model.PriorityImportant, Status: model.StatusTodo}

	tasks := []model.Task{
		overdueTask("late", past),
		overdueTask("future", future),
		done,
		noDeadline,
	}

	got := Overdue(tasks, now)
	if len(got) != 1 || got[0].ID != "late" {
		t.Fatalf("expected only the late task, got %+v", got)
	}
}

func TestMonitorEmitsOverdueEvents(t *testing.T) {
	deadline := time.Now().Add(-time.Hour)
	snapshot := func() []model.Task {
		return []model.Task{overdueTask("late", deadline)}
	}

	mon := NewMonitor(snapshot, 10*time.Millisecond)
	mon.Start()
	defer mon.Stop()

	ev := waitEvent(t, mon.C(), time.Second)
	if len(ev.Tasks) != 1 || ev.Tasks[0].ID != "late" {
		t.Fatalf("unexpected event tasks: %+v", ev.Tasks)
	}
	if ev.At.IsZero() {
		t.Fatal("event timestamp not set")
	}
}

func TestMonitorSkipsEventWhenNothingOverdue(t *testing.T) {
	snapshot := func() []model.Task { return nil }

	mon := NewMonitor(snapshot, 5*time.Millisecond)
	mon.Start()
	defer mon.Stop()

	select {
	case ev := <-mon.C():
		t.Fatalf("unexpected event with no overdue tasks: %+v", ev)
	case <-time.After(60 * time.Millisecond):
	}
}

func TestMonitorPauseAndResume(t *testing.T) {
	deadline := time.Now().Add(-time.Hour)
	snapshot := func() []model.Task {
		return []model.Task{overdueTask("late", deadline)}
	}

	mon := NewMonitor(snapshot, 0)
	mon.Start()
	defer mon.Stop()

	select {
	case ev := <-mon.C():
		t.Fatalf("paused monitor must not emit, got %+v", ev)
	case <-time.After(60 * time.Millisecond):
	}

	mon.SetInterval(10 * time.Millisecond)
	waitEvent(t, mon.C(), time.Second)
}

func TestMonitorStopIsIdempotent(t *testing.T) {
	mon := NewMonitor(func() []model.Task { return nil }, time.Millisecond)
	mon.Stop() // before Start: no-op
	mon.Start()
	mon.Stop()
	mon.Stop()

	// The output channel is closed after the loop exits.
	select {
	case _, ok := <-mon.C():
		if ok {
			t.Fatal("expected closed channel after Stop")
		}
	case <-time.After(time.Second):
		t.Fatal("channel not closed after Stop")
	}
}

func TestMonitorDropsWhenConsumerIsSlow(t *testing.T) {
	deadline := time.Now().Add(-time.Hour)
	snapshot := func() []model.Task {
		return []model.Task{overdueTask("late", deadline)}
	}

	mon := NewMonitor(snapshot, time.Millisecond)
	mon.Start()
	defer mon.Stop()

	time.Sleep(120 * time.Millisecond)
	if mon.Dropped() == 0 {
		t.Fatalf("expected dropped events > 0, got %d", mon.Dropped())
	}
}

func waitEvent(t *testing.T, ch <-chan Event, timeout time.Duration) Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for event")
		return Event{}
	}
}
