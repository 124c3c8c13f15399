package update

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shiren23/focusflow/internal/model"
	"github.com/shiren23/focusflow/internal/storage"
)

func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.SettingsUI.Cursor > 0 {
			m.SettingsUI.Cursor--
		}
	case "down", "j":
		if m.SettingsUI.Cursor < rowCount-1 {
			m.SettingsUI.Cursor++
		}
	case "left", "h":
		if m.SettingsUI.Cursor == RowCategories && m.SettingsUI.CatCursor > 0 {
			m.SettingsUI.CatCursor--
		}
	case "right", "l":
		if m.SettingsUI.Cursor == RowCategories && m.SettingsUI.CatCursor < len(m.Categories)-1 {
			m.SettingsUI.CatCursor++
		}
	case "enter":
		m.activateSettingsRow()
	case "a":
		if m.SettingsUI.Cursor == RowCategories {
			m.SettingsUI.AddingCategory = true
			m.settingsInput.SetValue("")
			m.settingsInput.Focus()
			m.Status = StatusBar{Text: "new category name", IsError: false}
		}
	case "x":
		if m.SettingsUI.Cursor == RowCategories {
			m.removeCategoryAtCursor()
		}
	case "E":
		m.exportBackup()
	case "I":
		m.SettingsUI.Importing = true
		m.settingsInput.SetValue("")
		m.settingsInput.Focus()
		m.Status = StatusBar{Text: "path of backup file to import", IsError: false}
	}
	return m, nil
}

func (m *Model) activateSettingsRow() {
	switch m.SettingsUI.Cursor {
	case RowDetailMode:
		m.Settings.IsDetailMode = !m.Settings.IsDetailMode
		m.saveSettings()
	case RowDarkMode:
		m.Settings.IsDarkMode = !m.Settings.IsDarkMode
		m.saveSettings()
	case RowTheme:
		m.Settings.ThemeColor = nextTheme(m.Settings.ThemeColor)
		m.saveSettings()
	case RowAIProvider:
		m.Settings.AIProvider = nextProvider(m.Settings.AIProvider)
		m.saveSettings()
	case RowBrainClock, RowUserName, RowAIKey, RowAIBaseURL, RowAIModel:
		m.SettingsUI.Editing = true
		m.settingsInput.SetValue(m.settingsRowValue(m.SettingsUI.Cursor))
		m.settingsInput.Focus()
	}
}

func (m Model) settingsInputActive() bool {
	return m.SettingsUI.Editing || m.SettingsUI.AddingCategory || m.SettingsUI.Importing
}

func (m Model) handleSettingsInputKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.SettingsUI.Editing = false
		m.SettingsUI.AddingCategory = false
		m.SettingsUI.Importing = false
		m.settingsInput.SetValue("")
		m.settingsInput.Blur()
	case "enter":
		value := strings.TrimSpace(m.settingsInput.Value())
		switch {
		case m.SettingsUI.Importing:
			m.SettingsUI.Importing = false
			m.importBackup(value)
		case m.SettingsUI.AddingCategory:
			m.SettingsUI.AddingCategory = false
			m.addCategory(value)
		case m.SettingsUI.Editing:
			m.SettingsUI.Editing = false
			m.commitSettingsEdit(m.SettingsUI.Cursor, value)
		}
		m.settingsInput.SetValue("")
		m.settingsInput.Blur()
	default:
		var cmd tea.Cmd
		m.settingsInput, cmd = m.settingsInput.Update(msg)
		_ = cmd
	}
	return m
}

func (m *Model) commitSettingsEdit(row SettingsRow, value string) {
	switch row {
	case RowBrainClock:
		n, err := strconv.Atoi(value)
		if err != nil {
			m.Status = StatusBar{Text: fmt.Sprintf("invalid interval %q, want minutes", value), IsError: true}
			return
		}
		m.Settings.BrainClockInterval = n
		if m.saveSettings() && m.Monitor != nil {
			m.Monitor.SetInterval(time.Duration(n) * time.Minute)
		}
	case RowUserName:
		m.Settings.UserName = value
		m.saveSettings()
	case RowAIKey:
		m.Settings.AIAPIKey = value
		m.saveSettings()
	case RowAIBaseURL:
		m.Settings.AIBaseURL = value
		m.saveSettings()
	case RowAIModel:
		m.Settings.AIModel = value
		m.saveSettings()
	}
}

// saveSettings persists the current settings and reports success; failures
// land on the status bar and keep the in-memory value.
func (m *Model) saveSettings() bool {
	if err := m.Settings.Validate(); err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return false
	}
	if err := m.Gateway.SaveSettings(m.Settings); err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("save settings: %v", err), IsError: true}
		return false
	}
	m.Status = StatusBar{Text: "settings saved", IsError: false}
	return true
}

func (m *Model) addCategory(name string) {
	if name == "" {
		return
	}
	for _, c := range m.Categories {
		if c == name {
			m.Status = StatusBar{Text: fmt.Sprintf("category %q already exists", name), IsError: true}
			return
		}
	}
	m.Categories = append(m.Categories, name)
	if err := m.Gateway.SaveCategories(m.Categories); err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("save categories: %v", err), IsError: true}
		return
	}
	m.Status = StatusBar{Text: fmt.Sprintf("category added: %s", name), IsError: false}
}

// removeCategoryAtCursor deletes the category only; tasks keep whatever
// category string they carry.
func (m *Model) removeCategoryAtCursor() {
	i := m.SettingsUI.CatCursor
	if i < 0 || i >= len(m.Categories) {
		return
	}
	name := m.Categories[i]
	m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
	if m.SettingsUI.CatCursor >= len(m.Categories) && m.SettingsUI.CatCursor > 0 {
		m.SettingsUI.CatCursor--
	}
	if err := m.Gateway.SaveCategories(m.Categories); err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("save categories: %v", err), IsError: true}
		return
	}
	m.Status = StatusBar{Text: fmt.Sprintf("category removed: %s", name), IsError: false}
}

func (m *Model) exportBackup() {
	payload, err := m.Gateway.Export()
	if err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("export: %v", err), IsError: true}
		return
	}
	dir := m.DataDir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, storage.ExportFileName(m.now()))
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("export: %v", err), IsError: true}
		return
	}
	m.Status = StatusBar{Text: fmt.Sprintf("exported to %s", path), IsError: false}
	m.notify("Export", path, "info")
}

// importBackup replaces state from a backup file. A bad file is reported and
// changes nothing; a good one reloads tasks, settings and categories and
// reschedules the brain clock.
func (m *Model) importBackup(path string) {
	if path == "" {
		m.Status = StatusBar{Text: "import cancelled", IsError: false}
		return
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("import: %v", err), IsError: true}
		return
	}
	if err := m.Gateway.Import(string(raw)); err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("import: %v", err), IsError: true}
		return
	}
	if err := m.Store.Load(); err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("reload tasks: %v", err), IsError: true}
		return
	}
	if settings, err := m.Gateway.Settings(); err == nil {
		m.Settings = settings
	}
	if categories, err := m.Gateway.Categories(); err == nil {
		m.Categories = categories
		m.SettingsUI.CatCursor = 0
	}
	if m.Monitor != nil {
		m.Monitor.SetInterval(time.Duration(m.Settings.BrainClockInterval) * time.Minute)
	}
	m.clampKanbanCursor()
	m.Status = StatusBar{Text: fmt.Sprintf("imported %s", path), IsError: false}
	m.notify("Import", path, "info")
}

func (m Model) settingsRowValue(row SettingsRow) string {
	switch row {
	case RowBrainClock:
		return strconv.Itoa(m.Settings.BrainClockInterval)
	case RowUserName:
		return m.Settings.UserName
	case RowAIKey:
		return m.Settings.AIAPIKey
	case RowAIBaseURL:
		return m.Settings.AIBaseURL
	case RowAIModel:
		return m.Settings.AIModel
	default:
		return ""
	}
}

func nextTheme(current string) string {
	for i, name := range model.ThemeColors {
		if name == current {
			return model.ThemeColors[(i+1)%len(model.ThemeColors)]
		}
	}
	return model.ThemeColors[0]
}

func nextProvider(current model.AIProvider) model.AIProvider {
	order := []model.AIProvider{model.ProviderGemini, model.ProviderOpenAI, model.ProviderCustom}
	for i, p := range order {
		if p == current {
			return order[(i+1)%len(order)]
		}
	}
	return model.ProviderGemini
}
