package views

import (
	"strings"
	"testing"
)

func TestThemeByNameFallsBackToSage(t *testing.T) {
	unknown := ThemeByName("plaid", false)
	sage := ThemeByName("sage", false)
	if unknown != sage {
		t.Fatalf("unknown theme should render as sage, got %+v", unknown)
	}
	if ThemeByName("ocean", true) == ThemeByName("ocean", false) {
		t.Fatal("dark and light ocean palettes should differ")
	}
}

func TestRenderKanbanPanelDetailMode(t *testing.T) {
	data := KanbanPanelData{
		DetailMode: true,
		Columns: []KanbanColumnData{
			{Label: "紧急且重要", Focused: true, Items: []KanbanItemData{
				{Title: "交报告", Selected: true, Category: "职务", DeadlineText: "2026-03-10", DeadlinePast: true, SubTaskDone: 1, SubTaskTotal: 2},
			}},
			{Label: "重要不紧急"},
		},
	}
	out := RenderKanbanPanel(data)
	for _, want := range []string{"> 交报告", "#职务", "due:2026-03-10(!)", "1/2", "(none)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderKanbanPanelCompactModeHidesDetail(t *testing.T) {
	data := KanbanPanelData{
		Columns: []KanbanColumnData{
			{Label: "紧急且重要", Items: []KanbanItemData{{Title: "交报告", Category: "职务"}}},
		},
	}
	out := RenderKanbanPanel(data)
	if strings.Contains(out, "#职务") {
		t.Fatalf("compact mode must not show the category:\n%s", out)
	}
}

func TestRenderCalendarPanelMarksTodayAndTasks(t *testing.T) {
	var week [7]CalendarCellData
	week[0] = CalendarCellData{Day: 14, Today: true}
	week[1] = CalendarCellData{Day: 15, TaskCount: 2}
	data := CalendarPanelData{
		MonthTitle: "March 2026",
		Weeks:      [][7]CalendarCellData{week},
		DayRows:    []CalendarDayRowData{{Day: 15, Titles: []string{"交报告"}}},
	}
	out := RenderCalendarPanel(data)
	for _, want := range []string{"[14]", "15*", "day 15:", "- 交报告"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderFocusPanelFinishedPrompt(t *testing.T) {
	out := RenderFocusPanel(FocusPanelData{TaskTitle: "交报告", Phase: "finished", Timer: "00:00", Finished: true})
	if !strings.Contains(out, "FINISHED") || !strings.Contains(out, "[c]ontinue") {
		t.Fatalf("missing finished prompt:\n%s", out)
	}
}

func TestSubTaskBarBounds(t *testing.T) {
	if got := subTaskBar(0, 0); !strings.Contains(got, "0/0") {
		t.Fatalf("empty bar: %q", got)
	}
	if got := subTaskBar(3, 3); !strings.Contains(got, "########") {
		t.Fatalf("full bar: %q", got)
	}
}
