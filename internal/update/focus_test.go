package update

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shiren23/focusflow/internal/model"
)

func openFocusOnTask(t *testing.T, m Model) Model {
	t.Helper()
	seedTask(t, m, "a", model.PriorityUrgentImportant)
	m = pressRune(t, m, 'f')
	if !m.Focus.Active {
		t.Fatal("expected focus overlay")
	}
	return m
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	updated, _ := m.Update(FocusTickMsg{Generation: m.Focus.Generation})
	return updated.(Model)
}

func TestFocusRequiresSelection(t *testing.T) {
	m := newTestModel(t)
	m = pressRune(t, m, 'f')
	if m.Focus.Active {
		t.Fatal("focus must not open without a selected task")
	}
	if !m.Status.IsError {
		t.Fatal("expected error status")
	}
}

func TestFocusOpensRunningAtFullBudget(t *testing.T) {
	m := newTestModel(t)
	m = openFocusOnTask(t, m)
	if m.Focus.Phase != FocusRunning {
		t.Fatalf("expected running, got %q", m.Focus.Phase)
	}
	if m.Focus.RemainingSec != FocusTotalSec {
		t.Fatalf("expected %d seconds, got %d", FocusTotalSec, m.Focus.RemainingSec)
	}
}

func TestFocusTickCountsDown(t *testing.T) {
	m := newTestModel(t)
	m = openFocusOnTask(t, m)
	m = tick(t, m)
	if m.Focus.RemainingSec != FocusTotalSec-1 {
		t.Fatalf("expected %d, got %d", FocusTotalSec-1, m.Focus.RemainingSec)
	}
}

func TestFocusPauseResumeKeepsRemaining(t *testing.T) {
	m := newTestModel(t)
	m = openFocusOnTask(t, m)
	m = tick(t, m)
	m = tick(t, m)

	m = press(t, m, tea.KeySpace)
	if m.Focus.Phase != FocusPaused {
		t.Fatalf("expected paused, got %q", m.Focus.Phase)
	}
	remaining := m.Focus.RemainingSec

	// Ticks from the pre-pause chain must not count while paused.
	m = tick(t, m)
	if m.Focus.RemainingSec != remaining {
		t.Fatalf("paused timer ticked: %d", m.Focus.RemainingSec)
	}

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = updated.(Model)
	if m.Focus.Phase != FocusRunning || m.Focus.RemainingSec != remaining {
		t.Fatalf("resume changed remaining: %q %d", m.Focus.Phase, m.Focus.RemainingSec)
	}
	if cmd == nil {
		t.Fatal("resume must restart the tick chain")
	}
}

func TestFocusResetKeepsRunState(t *testing.T) {
	m := newTestModel(t)
	m = openFocusOnTask(t, m)
	m = tick(t, m)

	m = pressRune(t, m, 'r')
	if m.Focus.RemainingSec != FocusTotalSec {
		t.Fatalf("expected full budget after reset, got %d", m.Focus.RemainingSec)
	}
	if m.Focus.Phase != FocusRunning {
		t.Fatalf("reset must keep the running state, got %q", m.Focus.Phase)
	}
}

func TestFocusFinishesAtZero(t *testing.T) {
	m := newTestModel(t)
	m = openFocusOnTask(t, m)
	m.Focus.RemainingSec = 1

	m = tick(t, m)
	if m.Focus.Phase != FocusFinished {
		t.Fatalf("expected finished, got %q", m.Focus.Phase)
	}
	if len(m.Notifications) == 0 {
		t.Fatal("expected completion notification")
	}

	// c restarts a full session.
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	m = updated.(Model)
	if m.Focus.Phase != FocusRunning || m.Focus.RemainingSec != FocusTotalSec {
		t.Fatalf("continue must restart at full budget: %q %d", m.Focus.Phase, m.Focus.RemainingSec)
	}
	if cmd == nil {
		t.Fatal("continue must start the tick chain")
	}
}

func TestFocusStaleTickIgnoredAfterClose(t *testing.T) {
	m := newTestModel(t)
	m = openFocusOnTask(t, m)
	staleGen := m.Focus.Generation

	m = press(t, m, tea.KeyEsc)
	if m.Focus.Active {
		t.Fatal("expected overlay closed")
	}

	updated, cmd := m.Update(FocusTickMsg{Generation: staleGen})
	m = updated.(Model)
	if m.Focus.RemainingSec != FocusTotalSec || cmd != nil {
		t.Fatalf("stale tick must be dropped: remaining=%d cmd=%v", m.Focus.RemainingSec, cmd)
	}
}

func TestFocusResetIgnoredWhenFinished(t *testing.T) {
	m := newTestModel(t)
	m = openFocusOnTask(t, m)
	m.Focus.RemainingSec = 1
	m = tick(t, m)

	m = pressRune(t, m, 'r')
	if m.Focus.Phase != FocusFinished {
		t.Fatalf("r must not leave the finished state, got %q", m.Focus.Phase)
	}
	if m.Focus.RemainingSec != 0 {
		t.Fatalf("r must not rewind a finished session, got %d", m.Focus.RemainingSec)
	}
}
