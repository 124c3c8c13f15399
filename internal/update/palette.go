package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shiren23/focusflow/internal/ai"
	"github.com/shiren23/focusflow/internal/commands"
	"github.com/shiren23/focusflow/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			task := model.Task{
				ID:        m.newID(),
				Title:     a.Title,
				Category:  ai.DefaultCategory,
				Priority:  model.PriorityImportant,
				Repeat:    model.RepeatNone,
				Status:    model.StatusTodo,
				CreatedAt: model.MillisFrom(m.now()),
			}
			if err := m.Store.Add(task); err != nil {
				return commands.Result{}, err
			}
			m.CurrentView = ViewKanban
			m.Kanban.Column = task.Priority
			return commands.Result{Message: fmt.Sprintf("added task: %s", a.Title)}, nil
		},
		Done: func(d commands.DoneArgs) (commands.Result, error) {
			task, err := m.taskByIDPrefix(d.IDPrefix)
			if err != nil {
				return commands.Result{}, err
			}
			if err := m.Store.ToggleStatus(task.ID); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("toggled: %s", task.Title)}, nil
		},
		Move: func(mv commands.MoveArgs) (commands.Result, error) {
			task, err := m.taskByIDPrefix(mv.IDPrefix)
			if err != nil {
				return commands.Result{}, err
			}
			if err := m.Store.ReassignPriority(task.ID, mv.Priority); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("moved %s to %s", task.Title, mv.Priority.Label())}, nil
		},
		Theme: func(t commands.ThemeArgs) (commands.Result, error) {
			m.Settings.ThemeColor = t.Name
			if err := m.Gateway.SaveSettings(m.Settings); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("theme: %s", t.Name)}, nil
		},
		Export: func() (commands.Result, error) {
			m.exportBackup()
			if m.Status.IsError {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: m.Status.Text}
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
		m.notify("Command", res.Message, "info")
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.clampKanbanCursor()
	return m
}

// taskByIDPrefix resolves a case-insensitive id prefix; it must match exactly
// one task.
func (m Model) taskByIDPrefix(prefix string) (model.Task, error) {
	prefix = strings.ToLower(prefix)
	var found []model.Task
	for _, t := range m.Store.Tasks() {
		if strings.HasPrefix(strings.ToLower(t.ID), prefix) {
			found = append(found, t)
		}
	}
	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return model.Task{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task with id prefix %q", prefix)}
	default:
		return model.Task{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("id prefix %q is ambiguous (%d matches)", prefix, len(found))}
	}
}
