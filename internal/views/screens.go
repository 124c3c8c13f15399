package views

import (
	"fmt"
	"sort"
	"strings"
)

type KanbanItemData struct {
	ID           string
	Title        string
	Selected     bool
	Category     string
	DeadlineText string
	DeadlinePast bool
	SubTaskDone  int
	SubTaskTotal int
}

type KanbanColumnData struct {
	Label   string
	Focused bool
	Items   []KanbanItemData
}

type KanbanPanelData struct {
	Columns    []KanbanColumnData
	Query      string
	SearchView string
	Searching  bool
	DetailMode bool
}

type CalendarCellData struct {
	Day       int
	Today     bool
	TaskCount int
}

type CalendarPanelData struct {
	MonthTitle string
	// Weeks is a Sunday-first grid; a zero Day is a filler cell.
	Weeks   [][7]CalendarCellData
	DayRows []CalendarDayRowData
}

type CalendarDayRowData struct {
	Day    int
	Titles []string
}

type SettingsRowData struct {
	Label    string
	Value    string
	Selected bool
}

type SettingsPanelData struct {
	Rows       []SettingsRowData
	Categories []string
	CatCursor  int
	CatFocused bool
	InputView  string
	InputOpen  bool
}

type EditorFieldData struct {
	Label    string
	Value    string
	Selected bool
}

type EditorSubTaskData struct {
	Text      string
	Completed bool
	Selected  bool
}

type EditorPanelData struct {
	IsNew       bool
	Fields      []EditorFieldData
	SubTasks    []EditorSubTaskData
	NoteView    string
	PreviewView string
	ErrorText   string
}

type FocusPanelData struct {
	TaskTitle    string
	Phase        string
	Timer        string
	ProgressView string
	ProgressPct  int
	Finished     bool
}

type CapturePanelData struct {
	InputView   string
	Busy        bool
	SpinnerView string
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderKanbanPanel(data KanbanPanelData) string {
	var b strings.Builder
	b.WriteString("kanban:\n")
	b.WriteString("actions: [h/l]column [j/k]row [enter]edit [space]done [x]delete [m]move [s]search\n")
	if data.Searching {
		b.WriteString(data.SearchView + "\n")
	} else if data.Query != "" {
		b.WriteString(fmt.Sprintf("filter: %q\n", data.Query))
	}
	for _, col := range data.Columns {
		marker := " "
		if col.Focused {
			marker = "*"
		}
		b.WriteString(fmt.Sprintf("\n%s %s (%d)\n", marker, col.Label, len(col.Items)))
		if len(col.Items) == 0 {
			b.WriteString("  (none)\n")
			continue
		}
		for _, item := range col.Items {
			cursor := " "
			if item.Selected {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %s", cursor, item.Title))
			if data.DetailMode {
				if item.Category != "" {
					b.WriteString(fmt.Sprintf(" #%s", item.Category))
				}
				if item.DeadlineText != "" {
					if item.DeadlinePast {
						b.WriteString(fmt.Sprintf(" due:%s(!)", item.DeadlineText))
					} else {
						b.WriteString(fmt.Sprintf(" due:%s", item.DeadlineText))
					}
				}
				if item.SubTaskTotal > 0 {
					b.WriteString(" " + subTaskBar(item.SubTaskDone, item.SubTaskTotal))
				}
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimSpace(b.String())
}

func subTaskBar(done, total int) string {
	const width = 8
	filled := 0
	if total > 0 {
		filled = done * width / total
	}
	return fmt.Sprintf("[%s%s] %d/%d", strings.Repeat("#", filled), strings.Repeat("-", width-filled), done, total)
}

func RenderCalendarPanel(data CalendarPanelData) string {
	var b strings.Builder
	b.WriteString("calendar:\n")
	b.WriteString(fmt.Sprintf("month: %s\n", data.MonthTitle))
	b.WriteString("actions: [h/l]month [t]today\n\n")
	b.WriteString(" Su  Mo  Tu  We  Th  Fr  Sa\n")
	for _, week := range data.Weeks {
		for _, cell := range week {
			switch {
			case cell.Day == 0:
				b.WriteString("    ")
			case cell.Today:
				b.WriteString(fmt.Sprintf("[%2d]", cell.Day))
			case cell.TaskCount > 0:
				b.WriteString(fmt.Sprintf("%3d*", cell.Day))
			default:
				b.WriteString(fmt.Sprintf("%3d ", cell.Day))
			}
		}
		b.WriteString("\n")
	}

	rows := append([]CalendarDayRowData(nil), data.DayRows...)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Day < rows[j].Day })
	if len(rows) == 0 {
		b.WriteString("\n(no deadlines this month)")
		return strings.TrimSpace(b.String())
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("\nday %d:\n", row.Day))
		for _, title := range row.Titles {
			b.WriteString("- " + title + "\n")
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderSettingsPanel(data SettingsPanelData) string {
	var b strings.Builder
	b.WriteString("settings:\n")
	b.WriteString("actions: [j/k]row [enter]edit/toggle [a]add-cat [x]del-cat [E]export [I]import\n")
	for _, row := range data.Rows {
		cursor := " "
		if row.Selected {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s: %s\n", cursor, row.Label, row.Value))
	}
	b.WriteString("\ncategories:")
	if len(data.Categories) == 0 {
		b.WriteString(" (none)")
	}
	for i, c := range data.Categories {
		if data.CatFocused && i == data.CatCursor {
			b.WriteString(fmt.Sprintf(" [%s]", c))
		} else {
			b.WriteString(" " + c)
		}
	}
	b.WriteString("\n")
	if data.InputOpen {
		b.WriteString("\n" + data.InputView)
	}
	return strings.TrimSpace(b.String())
}

func RenderEditorPanel(data EditorPanelData) string {
	var b strings.Builder
	if data.IsNew {
		b.WriteString("editor (new task):\n")
	} else {
		b.WriteString("editor:\n")
	}
	b.WriteString("keys: [tab]field [enter]edit [h/l]cycle [ctrl+s]save [ctrl+d]delete [esc]close\n")
	for _, field := range data.Fields {
		cursor := " "
		if field.Selected {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s: %s\n", cursor, field.Label, field.Value))
	}
	if len(data.SubTasks) > 0 {
		b.WriteString("subtasks:\n")
		for _, st := range data.SubTasks {
			cursor := " "
			if st.Selected {
				cursor = ">"
			}
			check := "[ ]"
			if st.Completed {
				check = "[x]"
			}
			b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, check, st.Text))
		}
	}
	if data.NoteView != "" {
		b.WriteString("note:\n" + data.NoteView + "\n")
	}
	if data.PreviewView != "" {
		b.WriteString("preview:\n" + data.PreviewView + "\n")
	}
	if data.ErrorText != "" {
		b.WriteString("error: " + data.ErrorText)
	}
	return strings.TrimSpace(b.String())
}

func RenderFocusPanel(data FocusPanelData) string {
	var b strings.Builder
	b.WriteString("focus:\n")
	b.WriteString(fmt.Sprintf("task: %s\n", data.TaskTitle))
	b.WriteString(fmt.Sprintf("state: %s\n", strings.ToUpper(data.Phase)))
	b.WriteString(fmt.Sprintf("timer: %s\n", data.Timer))
	b.WriteString(fmt.Sprintf("progress: %s %d%%\n", data.ProgressView, data.ProgressPct))
	b.WriteString("actions: [space]pause/resume [r]reset [esc]close\n")
	if data.Finished {
		b.WriteString("prompt: session complete, [c]ontinue or [esc] close")
	}
	return strings.TrimSpace(b.String())
}

func RenderCapturePanel(data CapturePanelData) string {
	var b strings.Builder
	b.WriteString("capture:\n")
	b.WriteString(data.InputView + "\n")
	if data.Busy {
		b.WriteString("parsing: " + data.SpinnerView + "\n")
	}
	b.WriteString("actions: [enter]parse [esc]close")
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\nglobal:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}
