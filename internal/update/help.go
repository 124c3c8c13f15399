package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/shiren23/focusflow/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.viewBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentView: string(m.CurrentView),
		Bindings:    plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Kanban, Action: "kanban board"},
		{Key: m.Keys.Calendar, Action: "calendar"},
		{Key: m.Keys.Settings, Action: "settings"},
		{Key: m.Keys.New, Action: "new task"},
		{Key: m.Keys.Capture, Action: "capture (AI)"},
		{Key: m.Keys.Focus, Action: "focus timer"},
		{Key: "/", Action: "command palette"},
		{Key: m.Keys.Help, Action: "toggle help"},
		{Key: m.Keys.Quit, Action: "quit"},
	}
}

func (m Model) viewBindings() []KeyBinding {
	switch m.CurrentView {
	case ViewKanban:
		return []KeyBinding{
			{Key: "h/l", Action: "change column"},
			{Key: "j/k", Action: "move cursor"},
			{Key: "enter", Action: "edit task"},
			{Key: "space", Action: "toggle done"},
			{Key: "x", Action: "delete task"},
			{Key: "m 1-4", Action: "move to quadrant"},
			{Key: "s", Action: "search titles"},
		}
	case ViewCalendar:
		return []KeyBinding{
			{Key: "h/l", Action: "previous/next month"},
			{Key: "t", Action: "jump to today"},
		}
	case ViewSettings:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "enter", Action: "edit or toggle"},
			{Key: "a/x", Action: "add/remove category"},
			{Key: "E/I", Action: "export/import backup"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.viewBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.viewBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
