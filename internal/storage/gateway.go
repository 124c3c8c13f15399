package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shiren23/focusflow/internal/model"
)

// Gateway reads and writes the three persisted blobs (tasks, settings,
// categories) through a KV backend. Every save is a whole-blob overwrite;
// there are no partial updates and no versioning.
type Gateway struct {
	kv  KV
	now func() time.Time
}

func NewGateway(kv KV) *Gateway {
	return &Gateway{kv: kv, now: time.Now}
}

// Tasks returns the stored task list verbatim, or the sample set when no data
// exists yet. A corrupt blob falls back to the sample set and reports the
// parse error so the caller can warn once at startup.
func (g *Gateway) Tasks() ([]model.Task, error) {
	raw, ok, err := g.kv.Get(KeyTasks)
	if err != nil {
		return SampleTasks(g.now()), fmt.Errorf("read tasks: %w", err)
	}
	if !ok {
		return SampleTasks(g.now()), nil
	}
	var tasks []model.Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		return SampleTasks(g.now()), fmt.Errorf("parse stored tasks: %w", err)
	}
	return tasks, nil
}

func (g *Gateway) SaveTasks(tasks []model.Task) error {
	raw, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	return g.kv.Put(KeyTasks, raw)
}

// Settings loads stored settings merged over the hardcoded defaults: the blob
// is unmarshaled on top of a defaults-initialized struct, so any field absent
// from old data keeps its default value.
func (g *Gateway) Settings() (model.Settings, error) {
	defaults := model.DefaultSettings()
	raw, ok, err := g.kv.Get(KeySettings)
	if err != nil {
		return defaults, fmt.Errorf("read settings: %w", err)
	}
	if !ok {
		return defaults, nil
	}
	merged := defaults
	if err := json.Unmarshal(raw, &merged); err != nil {
		return defaults, fmt.Errorf("parse stored settings: %w", err)
	}
	return merged, nil
}

func (g *Gateway) SaveSettings(s model.Settings) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return g.kv.Put(KeySettings, raw)
}

func (g *Gateway) Categories() ([]string, error) {
	raw, ok, err := g.kv.Get(KeyCategories)
	if err != nil {
		return append([]string(nil), DefaultCategories...), fmt.Errorf("read categories: %w", err)
	}
	if !ok {
		return append([]string(nil), DefaultCategories...), nil
	}
	var categories []string
	if err := json.Unmarshal(raw, &categories); err != nil {
		return append([]string(nil), DefaultCategories...), fmt.Errorf("parse stored categories: %w", err)
	}
	return categories, nil
}

func (g *Gateway) SaveCategories(categories []string) error {
	raw, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("encode categories: %w", err)
	}
	return g.kv.Put(KeyCategories, raw)
}

type backup struct {
	Tasks      []model.Task   `json:"tasks"`
	Settings   model.Settings `json:"settings"`
	Categories []string       `json:"categories"`
	ExportedAt string         `json:"exportedAt"`
}

// Export serializes all three blobs plus an export timestamp as
// pretty-printed JSON.
func (g *Gateway) Export() (string, error) {
	tasks, err := g.Tasks()
	if err != nil {
		return "", err
	}
	settings, err := g.Settings()
	if err != nil {
		return "", err
	}
	categories, err := g.Categories()
	if err != nil {
		return "", err
	}
	doc := backup{
		Tasks:      tasks,
		Settings:   settings,
		Categories: categories,
		ExportedAt: g.now().UTC().Format(time.RFC3339),
	}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode backup: %w", err)
	}
	return string(raw), nil
}

// ExportFileName names a backup file for the given moment.
func ExportFileName(now time.Time) string {
	return "focusflow-backup-" + now.UTC().Format(time.RFC3339) + ".json"
}

type importDoc struct {
	Tasks      json.RawMessage `json:"tasks"`
	Settings   json.RawMessage `json:"settings"`
	Categories json.RawMessage `json:"categories"`
}

// Import applies a backup document. Only the top-level keys present in the
// document are overwritten; absent keys leave the stored data untouched.
// Any parse failure aborts before the first write, so a bad file never
// mutates anything.
func (g *Gateway) Import(jsonString string) error {
	var doc importDoc
	if err := json.Unmarshal([]byte(jsonString), &doc); err != nil {
		return fmt.Errorf("parse import file: %w", err)
	}

	var tasks []model.Task
	if doc.Tasks != nil {
		if err := json.Unmarshal(doc.Tasks, &tasks); err != nil {
			return fmt.Errorf("parse imported tasks: %w", err)
		}
	}
	var settings model.Settings
	if doc.Settings != nil {
		settings = model.DefaultSettings()
		if err := json.Unmarshal(doc.Settings, &settings); err != nil {
			return fmt.Errorf("parse imported settings: %w", err)
		}
	}
	var categories []string
	if doc.Categories != nil {
		if err := json.Unmarshal(doc.Categories, &categories); err != nil {
			return fmt.Errorf("parse imported categories: %w", err)
		}
	}

	if doc.Tasks != nil {
		if err := g.SaveTasks(tasks); err != nil {
			return err
		}
	}
	if doc.Settings != nil {
		if err := g.SaveSettings(settings); err != nil {
			return err
		}
	}
	if doc.Categories != nil {
		if err := g.SaveCategories(categories); err != nil {
			return err
		}
	}
	return nil
}
