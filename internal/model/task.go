package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidPriority = errors.New("model: invalid task priority")
	ErrInvalidStatus   = errors.New("model: invalid task status")
	ErrInvalidRepeat   = errors.New("model: invalid repeat type")
)

// Priority is one of the four Eisenhower quadrants.
type Priority int

const (
	PriorityUrgentImportant Priority = 1
	PriorityImportant       Priority = 2
	PriorityUrgent          Priority = 3
	PriorityNeither         Priority = 4
)

func (p Priority) IsValid() bool {
	return p >= PriorityUrgentImportant && p <= PriorityNeither
}

// Label returns the quadrant label used on the kanban board.
func (p Priority) Label() string {
	switch p {
	case PriorityUrgentImportant:
		return "重要且紧急"
	case PriorityImportant:
		return "重要不紧急"
	case PriorityUrgent:
		return "紧急不重要"
	case PriorityNeither:
		return "不重要不紧急"
	default:
		return "unknown"
	}
}

type RepeatType string

const (
	RepeatNone    RepeatType = "none"
	RepeatDaily   RepeatType = "daily"
	RepeatWeekly  RepeatType = "weekly"
	RepeatMonthly RepeatType = "monthly"
)

func (r RepeatType) IsValid() bool {
	switch r {
	case RepeatNone, RepeatDaily, RepeatWeekly, RepeatMonthly:
		return true
	default:
		return false
	}
}

type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in-progress"
	StatusDone       TaskStatus = "done"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

type SubTask struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Attachment content is base64. The type is part of the stored schema and of
// import files; no UI path currently produces one.
type Attachment struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Content string `json:"content"`
}

type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Category    string       `json:"category"`
	Priority    Priority     `json:"priority"`
	Deadline    *time.Time   `json:"deadline,omitempty"`
	Repeat      RepeatType   `json:"repeat"`
	SubTasks    []SubTask    `json:"subTasks"`
	Note        string       `json:"note"`
	Attachments []Attachment `json:"attachments"`
	Status      TaskStatus   `json:"status"`
	CreatedAt   Millis       `json:"createdAt"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidPriority, t.Priority)
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	if !t.Repeat.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidRepeat, t.Repeat)
	}
	seen := make(map[string]bool, len(t.SubTasks))
	for _, st := range t.SubTasks {
		if strings.TrimSpace(st.ID) == "" {
			return errors.New("model: subtask id is required")
		}
		if seen[st.ID] {
			return fmt.Errorf("model: duplicate subtask id %q", st.ID)
		}
		seen[st.ID] = true
	}
	return nil
}

// IsOverdue reports whether the task has a deadline in the past and is not
// done. Tasks without a deadline are never overdue.
func (t Task) IsOverdue(now time.Time) bool {
	if t.Deadline == nil || t.Status == StatusDone {
		return false
	}
	return t.Deadline.Before(now)
}

func (t Task) SubTaskProgress() (done, total int) {
	for _, st := range t.SubTasks {
		if st.Completed {
			done++
		}
	}
	return done, len(t.SubTasks)
}

// Millis is a point in time stored as integer epoch milliseconds, the format
// the persisted data uses for createdAt.
type Millis int64

func MillisFrom(t time.Time) Millis {
	return Millis(t.UnixMilli())
}

func (m Millis) Time() time.Time {
	return time.UnixMilli(int64(m)).UTC()
}

func (m Millis) IsZero() bool { return m == 0 }

func (m Millis) String() string {
	return strconv.FormatInt(int64(m), 10)
}
