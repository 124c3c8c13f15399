package update

import (
	"strconv"
	"time"

	"github.com/shiren23/focusflow/internal/model"
	"github.com/shiren23/focusflow/internal/views"
)

func (m Model) renderKanbanView() string {
	now := m.now()
	columns := make([]views.KanbanColumnData, 0, 4)
	for p := model.PriorityUrgentImportant; p <= model.PriorityNeither; p++ {
		focused := p == m.Kanban.Column
		tasks := m.kanbanColumnFor(p)
		items := make([]views.KanbanItemData, 0, len(tasks))
		for i, t := range tasks {
			done, total := t.SubTaskProgress()
			item := views.KanbanItemData{
				ID:           t.ID,
				Title:        t.Title,
				Selected:     focused && i == m.Kanban.Cursor,
				Category:     t.Category,
				SubTaskDone:  done,
				SubTaskTotal: total,
			}
			if t.Deadline != nil {
				item.DeadlineText = t.Deadline.Format("2006-01-02")
				item.DeadlinePast = t.Deadline.Before(now)
			}
			items = append(items, item)
		}
		columns = append(columns, views.KanbanColumnData{
			Label:   p.Label(),
			Focused: focused,
			Items:   items,
		})
	}
	return views.RenderKanbanPanel(views.KanbanPanelData{
		Columns:    columns,
		Query:      m.Kanban.Query,
		SearchView: m.searchInput.View(),
		Searching:  m.Kanban.Searching,
		DetailMode: m.Settings.IsDetailMode,
	})
}

func (m Model) renderCalendarView() string {
	month := m.Calendar.FocusMonth
	now := m.now()
	daysInMonth := month.AddDate(0, 1, -1).Day()

	counts := make(map[int]int, daysInMonth)
	var dayRows []views.CalendarDayRowData
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, month.Location())
		tasks := m.Store.OnDay(date)
		if len(tasks) == 0 {
			continue
		}
		counts[day] = len(tasks)
		titles := make([]string, 0, len(tasks))
		for _, t := range tasks {
			titles = append(titles, t.Title)
		}
		dayRows = append(dayRows, views.CalendarDayRowData{Day: day, Titles: titles})
	}

	var weeks [][7]views.CalendarCellData
	var week [7]views.CalendarCellData
	col := int(month.Weekday())
	for day := 1; day <= daysInMonth; day++ {
		week[col] = views.CalendarCellData{
			Day:       day,
			Today:     sameDay(time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, month.Location()), now),
			TaskCount: counts[day],
		}
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = [7]views.CalendarCellData{}
			col = 0
		}
	}
	if col != 0 {
		weeks = append(weeks, week)
	}

	return views.RenderCalendarPanel(views.CalendarPanelData{
		MonthTitle: month.Format("January 2006"),
		Weeks:      weeks,
		DayRows:    dayRows,
	})
}

func (m Model) renderSettingsView() string {
	boolText := func(v bool) string {
		if v {
			return "on"
		}
		return "off"
	}
	maskedKey := ""
	if m.Settings.AIAPIKey != "" {
		maskedKey = "(set)"
	}
	rows := []views.SettingsRowData{
		{Label: "detail mode", Value: boolText(m.Settings.IsDetailMode)},
		{Label: "dark mode", Value: boolText(m.Settings.IsDarkMode)},
		{Label: "theme", Value: m.Settings.ThemeColor},
		{Label: "brain clock (min)", Value: strconv.Itoa(m.Settings.BrainClockInterval)},
		{Label: "user name", Value: m.Settings.UserName},
		{Label: "ai provider", Value: string(m.Settings.AIProvider)},
		{Label: "ai key", Value: maskedKey},
		{Label: "ai base url", Value: m.Settings.AIBaseURL},
		{Label: "ai model", Value: m.Settings.AIModel},
		{Label: "categories", Value: strconv.Itoa(len(m.Categories))},
	}
	for i := range rows {
		rows[i].Selected = SettingsRow(i) == m.SettingsUI.Cursor
	}
	return views.RenderSettingsPanel(views.SettingsPanelData{
		Rows:       rows,
		Categories: m.Categories,
		CatCursor:  m.SettingsUI.CatCursor,
		CatFocused: m.SettingsUI.Cursor == RowCategories,
		InputView:  m.settingsInput.View(),
		InputOpen:  m.settingsInputActive(),
	})
}

func (m Model) renderEditorIfVisible() string {
	if !m.Editor.Active {
		return ""
	}
	fields := []views.EditorFieldData{
		{Label: "title", Value: m.titleInput.View()},
		{Label: "category", Value: m.Editor.Category},
		{Label: "priority", Value: m.Editor.Priority.Label()},
		{Label: "deadline", Value: m.deadlineInput.View()},
		{Label: "repeat", Value: string(m.Editor.Repeat)},
		{Label: "subtasks", Value: m.subtaskInput.View()},
		{Label: "note", Value: ""},
	}
	for i := range fields {
		fields[i].Selected = EditorField(i) == m.Editor.Field
	}
	subTasks := make([]views.EditorSubTaskData, 0, len(m.Editor.SubTasks))
	for i, st := range m.Editor.SubTasks {
		subTasks = append(subTasks, views.EditorSubTaskData{
			Text:      st.Text,
			Completed: st.Completed,
			Selected:  m.Editor.Field == FieldSubTasks && i == m.Editor.SubCursor,
		})
	}
	return views.RenderEditorPanel(views.EditorPanelData{
		IsNew:       m.Editor.TaskID == "",
		Fields:      fields,
		SubTasks:    subTasks,
		NoteView:    m.noteArea.View(),
		PreviewView: m.notePreview.View(),
		ErrorText:   m.Editor.Err,
	})
}

func (m Model) renderFocusIfVisible() string {
	if !m.Focus.Active {
		return ""
	}
	pct := float64(FocusTotalSec-m.Focus.RemainingSec) / float64(FocusTotalSec)
	return views.RenderFocusPanel(views.FocusPanelData{
		TaskTitle:    m.Focus.TaskTitle,
		Phase:        string(m.Focus.Phase),
		Timer:        formatDuration(m.Focus.RemainingSec),
		ProgressView: m.focusProgress.ViewAs(pct),
		ProgressPct:  int(pct * 100),
		Finished:     m.Focus.Phase == FocusFinished,
	})
}

func (m Model) renderCaptureIfVisible() string {
	if !m.Capture.Active {
		return ""
	}
	return views.RenderCapturePanel(views.CapturePanelData{
		InputView:   m.captureInput.View(),
		Busy:        m.Capture.Busy,
		SpinnerView: m.captureSpinner.View(),
	})
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	n := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(n.Level, n.Body)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}
