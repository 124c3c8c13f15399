package storage

import (
	"bytes"
	"reflect"
	"testing"
	"time"

	"github.com/shiren23/focusflow/internal/model"
)

func newTestGateway(t *testing.T) (*Gateway, *FileKV) {
	t.Helper()
	kv, err := NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("new file kv: %v", err)
	}
	return NewGateway(kv), kv
}

func seedState(t *testing.T, g *Gateway) []model.Task {
	t.Helper()
	deadline := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		{
			ID:          "a",
			Title:       "prepare slides",
			Category:    "职务",
			Priority:    model.PriorityUrgentImportant,
			Deadline:    &deadline,
			Repeat:      model.RepeatNone,
			SubTasks:    []model.SubTask{{ID: "s1", Text: "outline", Completed: true}},
			Note:        "# agenda",
			Attachments: []model.Attachment{},
			Status:      model.StatusTodo,
			CreatedAt:   model.Millis(1756000000000),
		},
		{
			ID:          "b",
			Title:       "water plants",
			Category:    "生活",
			Priority:    model.PriorityNeither,
			Repeat:      model.RepeatWeekly,
			SubTasks:    []model.SubTask{},
			Note:        "",
			Attachments: []model.Attachment{},
			Status:      model.StatusDone,
			CreatedAt:   model.Millis(1756000001000),
		},
	}
	if err := g.SaveTasks(tasks); err != nil {
		t.Fatalf("save tasks: %v", err)
	}
	settings := model.DefaultSettings()
	settings.ThemeColor = "ocean"
	settings.UserName = "Lin"
	if err := g.SaveSettings(settings); err != nil {
		t.Fatalf("save settings: %v", err)
	}
	if err := g.SaveCategories([]string{"职务", "生活"}); err != nil {
		t.Fatalf("save categories: %v", err)
	}
	return tasks
}

func TestTasksReturnsSampleSetWhenEmpty(t *testing.T) {
	g, _ := newTestGateway(t)
	tasks, err := g.Tasks()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 4 {
		t.Fatalf("expected 4 sample tasks, got %d", len(tasks))
	}
	for _, task := range tasks {
		if err := task.Validate(); err != nil {
			t.Fatalf("sample task %s invalid: %v", task.ID, err)
		}
	}
}

func TestTasksRoundTrip(t *testing.T) {
	g, _ := newTestGateway(t)
	saved := seedState(t, g)
	loaded, err := g.Tasks()
	if err != nil {
		t.Fatalf("load tasks: %v", err)
	}
	if !reflect.DeepEqual(saved, loaded) {
		t.Fatalf("tasks changed across save/load:\nsaved:  %#v\nloaded: %#v", saved, loaded)
	}
}

func TestSettingsMergeIsTotal(t *testing.T) {
	g, kv := newTestGateway(t)
	// Old persisted data knowing only one field.
	if err := kv.Put(KeySettings, []byte(`{"themeColor":"ocean"}`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	s, err := g.Settings()
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if s.ThemeColor != "ocean" {
		t.Fatalf("stored value lost: %q", s.ThemeColor)
	}
	defaults := model.DefaultSettings()
	if s.AIProvider != defaults.AIProvider {
		t.Fatalf("expected default provider %q, got %q", defaults.AIProvider, s.AIProvider)
	}
	if s.BrainClockInterval != defaults.BrainClockInterval {
		t.Fatalf("expected default interval %d, got %d", defaults.BrainClockInterval, s.BrainClockInterval)
	}
	if s.UserName != defaults.UserName {
		t.Fatalf("expected default user name %q, got %q", defaults.UserName, s.UserName)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	g, _ := newTestGateway(t)
	seedState(t, g)

	exported, err := g.Export()
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	tasksBefore, _ := g.Tasks()
	settingsBefore, _ := g.Settings()
	categoriesBefore, _ := g.Categories()

	if err := g.Import(exported); err != nil {
		t.Fatalf("import of own export failed: %v", err)
	}

	tasksAfter, _ := g.Tasks()
	settingsAfter, _ := g.Settings()
	categoriesAfter, _ := g.Categories()

	if !reflect.DeepEqual(tasksBefore, tasksAfter) {
		t.Fatal("tasks changed across export/import")
	}
	if settingsBefore != settingsAfter {
		t.Fatalf("settings changed across export/import: %+v != %+v", settingsBefore, settingsAfter)
	}
	if !reflect.DeepEqual(categoriesBefore, categoriesAfter) {
		t.Fatal("categories changed across export/import")
	}
}

func TestPartialImportNeverDeletes(t *testing.T) {
	g, kv := newTestGateway(t)
	seedState(t, g)
	tasksRaw, _, _ := kv.Get(KeyTasks)
	settingsRaw, _, _ := kv.Get(KeySettings)

	if err := g.Import(`{"categories":["x"]}`); err != nil {
		t.Fatalf("partial import: %v", err)
	}

	categories, _ := g.Categories()
	if len(categories) != 1 || categories[0] != "x" {
		t.Fatalf("expected categories [x], got %#v", categories)
	}
	tasksAfter, _, _ := kv.Get(KeyTasks)
	settingsAfter, _, _ := kv.Get(KeySettings)
	if !bytes.Equal(tasksRaw, tasksAfter) {
		t.Fatal("tasks blob mutated by categories-only import")
	}
	if !bytes.Equal(settingsRaw, settingsAfter) {
		t.Fatal("settings blob mutated by categories-only import")
	}
}

func TestInvalidImportLeavesStateUntouched(t *testing.T) {
	g, kv := newTestGateway(t)
	seedState(t, g)
	tasksRaw, _, _ := kv.Get(KeyTasks)
	settingsRaw, _, _ := kv.Get(KeySettings)
	categoriesRaw, _, _ := kv.Get(KeyCategories)

	if err := g.Import("not json"); err == nil {
		t.Fatal("expected error for invalid import payload")
	}

	tasksAfter, _, _ := kv.Get(KeyTasks)
	settingsAfter, _, _ := kv.Get(KeySettings)
	categoriesAfter, _, _ := kv.Get(KeyCategories)
	if !bytes.Equal(tasksRaw, tasksAfter) || !bytes.Equal(settingsRaw, settingsAfter) || !bytes.Equal(categoriesRaw, categoriesAfter) {
		t.Fatal("stored blobs mutated by failed import")
	}
}

func TestImportWithMalformedSectionMutatesNothing(t *testing.T) {
	g, kv := newTestGateway(t)
	seedState(t, g)
	categoriesRaw, _, _ := kv.Get(KeyCategories)

	// Top-level JSON is valid but tasks cannot parse into the task schema.
	err := g.Import(`{"tasks":"oops","categories":["x"]}`)
	if err == nil {
		t.Fatal("expected error for malformed tasks section")
	}
	categoriesAfter, _, _ := kv.Get(KeyCategories)
	if !bytes.Equal(categoriesRaw, categoriesAfter) {
		t.Fatal("categories written despite failed import")
	}
}

func TestCorruptBlobFallsBackToDefaults(t *testing.T) {
	g, kv := newTestGateway(t)
	if err := kv.Put(KeyTasks, []byte("{broken")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := kv.Put(KeySettings, []byte("{broken")); err != nil {
		t.Fatalf("put: %v", err)
	}

	tasks, err := g.Tasks()
	if err == nil {
		t.Fatal("expected parse error for corrupt tasks blob")
	}
	if len(tasks) != 4 {
		t.Fatalf("expected sample fallback, got %d tasks", len(tasks))
	}

	settings, err := g.Settings()
	if err == nil {
		t.Fatal("expected parse error for corrupt settings blob")
	}
	if settings != model.DefaultSettings() {
		t.Fatalf("expected default settings fallback, got %+v", settings)
	}
}

func TestExportFileName(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)
	name := ExportFileName(now)
	if name != "focusflow-backup-2026-08-29T10:30:00Z.json" {
		t.Fatalf("unexpected export file name: %q", name)
	}
}
