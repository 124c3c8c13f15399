package taskstore

import (
	"fmt"
	"strings"
	"time"

	"github.com/shiren23/focusflow/internal/model"
	"github.com/shiren23/focusflow/internal/storage"
)

// Store holds the in-memory working set of tasks. Every mutation replaces the
// whole persisted list through the gateway; there is no partial write path.
type Store struct {
	tasks []model.Task
	gw    *storage.Gateway
}

func New(gw *storage.Gateway) *Store {
	return &Store{gw: gw}
}

// Load reads the persisted task list. On a corrupt blob the gateway already
// substituted sample data; the error is returned so the caller can warn once.
func (s *Store) Load() error {
	tasks, err := s.gw.Tasks()
	s.tasks = tasks
	return err
}

// Tasks returns a snapshot copy; callers may sort or filter it freely.
func (s *Store) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Get(id string) (model.Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

func (s *Store) Add(t model.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if _, ok := s.Get(t.ID); ok {
		return fmt.Errorf("taskstore: duplicate id %q", t.ID)
	}
	s.tasks = append(s.tasks, t)
	return s.persist()
}

// Update replaces the entry with a matching id. Unknown ids are a no-op so a
// stale editor submit cannot resurrect a deleted task.
func (s *Store) Update(t model.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}
	for i := range s.tasks {
		if s.tasks[i].ID == t.ID {
			s.tasks[i] = t
			return s.persist()
		}
	}
	return nil
}

// Delete removes the task and reports whether anything was removed, so the UI
// can close an editor that was showing it.
func (s *Store) Delete(id string) (bool, error) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true, s.persist()
		}
	}
	return false, nil
}

// ToggleStatus flips between exactly two states: done goes back to todo, and
// everything else (todo or in-progress) becomes done.
func (s *Store) ToggleStatus(id string) error {
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		if s.tasks[i].Status == model.StatusDone {
			s.tasks[i].Status = model.StatusTodo
		} else {
			s.tasks[i].Status = model.StatusDone
		}
		return s.persist()
	}
	return nil
}

// ReassignPriority moves a task to another quadrant. An unchanged or invalid
// priority skips the write entirely.
func (s *Store) ReassignPriority(id string, p model.Priority) error {
	if !p.IsValid() {
		return nil
	}
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		if s.tasks[i].Priority == p {
			return nil
		}
		s.tasks[i].Priority = p
		return s.persist()
	}
	return nil
}

// ByQuadrant lists open tasks in one priority quadrant; done tasks are
// excluded so finished work drops off the board.
func (s *Store) ByQuadrant(p model.Priority) []model.Task {
	var out []model.Task
	for _, t := range s.tasks {
		if t.Priority == p && t.Status != model.StatusDone {
			out = append(out, t)
		}
	}
	return out
}

// MatchTitle filters by case-insensitive substring; an empty query matches
// everything.
func (s *Store) MatchTitle(query string) []model.Task {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.Tasks()
	}
	var out []model.Task
	for _, t := range s.tasks {
		if strings.Contains(strings.ToLower(t.Title), q) {
			out = append(out, t)
		}
	}
	return out
}

// OnDay lists tasks whose deadline falls on the given calendar day in the
// day's location.
func (s *Store) OnDay(day time.Time) []model.Task {
	y, m, d := day.Date()
	var out []model.Task
	for _, t := range s.tasks {
		if t.Deadline == nil {
			continue
		}
		ty, tm, td := t.Deadline.In(day.Location()).Date()
		if ty == y && tm == m && td == d {
			out = append(out, t)
		}
	}
	return out
}

func (s *Store) Overdue(now time.Time) []model.Task {
	var out []model.Task
	for _, t := range s.tasks {
		if t.IsOverdue(now) {
			out = append(out, t)
		}
	}
	return out
}

func (s *Store) persist() error {
	return s.gw.SaveTasks(s.tasks)
}
