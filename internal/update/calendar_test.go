package update

import (
	"testing"
	"time"
)

func TestCalendarMonthNavigation(t *testing.T) {
	m := newTestModel(t)
	m = pressRune(t, m, '2')

	m = pressRune(t, m, 'l')
	want := time.Date(2026, time.April, 1, 0, 0, 0, 0, testNow.Location())
	if !m.Calendar.FocusMonth.Equal(want) {
		t.Fatalf("next month = %v, want %v", m.Calendar.FocusMonth, want)
	}

	m = pressRune(t, m, 'h')
	m = pressRune(t, m, 'h')
	want = time.Date(2026, time.February, 1, 0, 0, 0, 0, testNow.Location())
	if !m.Calendar.FocusMonth.Equal(want) {
		t.Fatalf("previous month = %v, want %v", m.Calendar.FocusMonth, want)
	}
}

func TestCalendarYearRollover(t *testing.T) {
	m := newTestModel(t)
	m = pressRune(t, m, '2')
	m.Calendar.FocusMonth = time.Date(2026, time.January, 1, 0, 0, 0, 0, testNow.Location())

	m = pressRune(t, m, 'h')
	want := time.Date(2025, time.December, 1, 0, 0, 0, 0, testNow.Location())
	if !m.Calendar.FocusMonth.Equal(want) {
		t.Fatalf("rollover = %v, want %v", m.Calendar.FocusMonth, want)
	}
}

func TestCalendarTodayKey(t *testing.T) {
	m := newTestModel(t)
	m = pressRune(t, m, '2')
	m.Calendar.FocusMonth = time.Date(2024, time.July, 1, 0, 0, 0, 0, testNow.Location())

	m = pressRune(t, m, 't')
	if !m.Calendar.FocusMonth.Equal(firstOfMonth(testNow)) {
		t.Fatalf("t should jump to the current month, got %v", m.Calendar.FocusMonth)
	}
}
