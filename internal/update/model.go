package update

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/google/uuid"

	"github.com/shiren23/focusflow/internal/ai"
	"github.com/shiren23/focusflow/internal/brainclock"
	"github.com/shiren23/focusflow/internal/model"
	"github.com/shiren23/focusflow/internal/storage"
	"github.com/shiren23/focusflow/internal/taskstore"
)

type View string

const (
	ViewKanban   View = "Kanban"
	ViewCalendar View = "Calendar"
	ViewSettings View = "Settings"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Kanban   string
	Calendar string
	Settings string
	New      string
	Capture  string
	Focus    string
	Help     string
	Quit     string
}

type KanbanState struct {
	Column model.Priority
	Cursor int
	Query  string
	// Searching routes typed runes into the search input.
	Searching bool
	// PendingMove is set after "m"; the next digit picks the target quadrant.
	PendingMove bool
}

type CalendarState struct {
	// FocusMonth is normalized to the first day of the displayed month.
	FocusMonth time.Time
}

type SettingsRow int

const (
	RowDetailMode SettingsRow = iota
	RowDarkMode
	RowTheme
	RowBrainClock
	RowUserName
	RowAIProvider
	RowAIKey
	RowAIBaseURL
	RowAIModel
	RowCategories
	rowCount
)

type SettingsState struct {
	Cursor SettingsRow
	// Editing routes typed runes into the settings input for the cursor row.
	Editing bool
	// AddingCategory and Importing reuse the same input with different commits.
	AddingCategory bool
	Importing      bool
	CatCursor      int
}

type EditorField int

const (
	FieldTitle EditorField = iota
	FieldCategory
	FieldPriority
	FieldDeadline
	FieldRepeat
	FieldSubTasks
	FieldNote
	fieldCount
)

type EditorState struct {
	Active bool
	// TaskID is empty for a new task.
	TaskID      string
	Field       EditorField
	Editing     bool
	Priority    model.Priority
	Repeat      model.RepeatType
	Status      model.TaskStatus
	Category    string
	SubTasks    []model.SubTask
	SubCursor   int
	Attachments []model.Attachment
	CreatedAt   model.Millis
	Err         string
}

type CaptureState struct {
	Active bool
	// Busy blocks input while a parse is in flight.
	Busy bool
}

type FocusPhase string

const (
	FocusIdle     FocusPhase = "idle"
	FocusRunning  FocusPhase = "running"
	FocusPaused   FocusPhase = "paused"
	FocusFinished FocusPhase = "finished"
)

// FocusTotalSec is the fixed budget of one focus session.
const FocusTotalSec = 300

type FocusState struct {
	Active       bool
	TaskID       string
	TaskTitle    string
	RemainingSec int
	Phase        FocusPhase
	// Generation invalidates tick messages from closed or restarted sessions.
	Generation int
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type DesktopNotifier interface {
	Send(Notification) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(Notification) error { return nil }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

type Model struct {
	CurrentView View
	Kanban      KanbanState
	Calendar    CalendarState
	SettingsUI  SettingsState
	Editor      EditorState
	Capture     CaptureState
	Focus       FocusState
	Palette     CommandPaletteState
	HelpVisible bool

	Settings   model.Settings
	Categories []string

	Store   *taskstore.Store
	Gateway *storage.Gateway
	Monitor *brainclock.Monitor

	DataDir        string
	DesktopEnabled bool
	notifier       DesktopNotifier
	Notifications  []Notification
	OverdueLog     []brainclock.Event
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error

	// Bubble components used for rich TUI controls
	titleInput     textinput.Model
	deadlineInput  textinput.Model
	subtaskInput   textinput.Model
	settingsInput  textinput.Model
	searchInput    textinput.Model
	commandInput   textinput.Model
	captureInput   textinput.Model
	noteArea       textarea.Model
	notePreview    viewport.Model
	captureSpinner spinner.Model
	focusProgress  progress.Model
	helpModel      help.Model

	now   func() time.Time
	newID func() string
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type SwitchViewMsg struct {
	View View
}

type FocusTickMsg struct {
	Generation int
}

type OverdueDueMsg struct {
	Event brainclock.Event
}

type CaptureDoneMsg struct {
	Draft *ai.Draft
	Err   error
}

// NewModel builds a model over an already-loaded store. Settings and
// categories are read from the gateway; read errors surface on the status
// bar once the program starts.
func NewModel(store *taskstore.Store, gw *storage.Gateway) Model {
	m := Model{
		CurrentView: ViewKanban,
		Kanban:      KanbanState{Column: model.PriorityUrgentImportant},
		Store:       store,
		Gateway:     gw,
		notifier:    NoopDesktopNotifier{},
		Keys: GlobalKeyMap{
			Kanban:   "1",
			Calendar: "2",
			Settings: "3",
			New:      "n",
			Capture:  "v",
			Focus:    "f",
			Help:     "?",
			Quit:     "q",
		},
		now:   time.Now,
		newID: uuid.NewString,
	}
	m.Focus.Phase = FocusIdle
	m.Focus.RemainingSec = FocusTotalSec

	settings, err := gw.Settings()
	m.Settings = settings
	if err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("settings unreadable, using defaults: %v", err), IsError: true}
	}
	categories, err := gw.Categories()
	m.Categories = categories
	if err != nil && !m.Status.IsError {
		m.Status = StatusBar{Text: fmt.Sprintf("categories unreadable, using defaults: %v", err), IsError: true}
	}

	m.Calendar.FocusMonth = firstOfMonth(m.now())
	m.initBubbleComponents()
	return m
}

func NewModelWithConfig(store *taskstore.Store, gw *storage.Gateway, monitor *brainclock.Monitor, notifier DesktopNotifier, cfg RuntimeConfig) Model {
	m := NewModel(store, gw)
	m.Monitor = monitor
	m.DataDir = strings.TrimSpace(cfg.DataDir)
	m.DesktopEnabled = cfg.DesktopNotifications
	if notifier != nil {
		m.notifier = notifier
	}
	return m
}

func (m *Model) initBubbleComponents() {
	m.titleInput = textinput.New()
	m.titleInput.Prompt = "title> "
	m.titleInput.CharLimit = 256
	m.titleInput.Width = 42

	m.deadlineInput = textinput.New()
	m.deadlineInput.Prompt = "deadline (YYYY-MM-DD)> "
	m.deadlineInput.CharLimit = 10
	m.deadlineInput.Width = 16

	m.subtaskInput = textinput.New()
	m.subtaskInput.Prompt = "subtask> "
	m.subtaskInput.CharLimit = 256
	m.subtaskInput.Width = 42

	m.settingsInput = textinput.New()
	m.settingsInput.Prompt = "> "
	m.settingsInput.CharLimit = 512
	m.settingsInput.Width = 48

	m.searchInput = textinput.New()
	m.searchInput.Prompt = "search> "
	m.searchInput.CharLimit = 128
	m.searchInput.Width = 32

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.captureInput = textinput.New()
	m.captureInput.Prompt = "describe> "
	m.captureInput.CharLimit = 512
	m.captureInput.Width = 48

	m.noteArea = textarea.New()
	m.noteArea.SetWidth(54)
	m.noteArea.SetHeight(8)
	m.noteArea.ShowLineNumbers = false
	m.noteArea.Placeholder = "Task note (markdown)"

	m.notePreview = viewport.New(54, 10)

	m.captureSpinner = spinner.New()
	m.captureSpinner.Spinner = spinner.Dot

	m.focusProgress = progress.New(progress.WithDefaultGradient())
	m.helpModel = help.New()
}

func (m *Model) notify(title, body, level string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	n := Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    m.now().UTC(),
	}
	m.Notifications = append(m.Notifications, n)
	if len(m.Notifications) > 40 {
		m.Notifications = m.Notifications[len(m.Notifications)-40:]
	}
	if m.DesktopEnabled && m.notifier != nil {
		_ = m.notifier.Send(n)
	}
}

func firstOfMonth(t time.Time) time.Time {
	y, mo, _ := t.Date()
	return time.Date(y, mo, 1, 0, 0, 0, 0, t.Location())
}

func isKnownView(v View) bool {
	switch v {
	case ViewKanban, ViewCalendar, ViewSettings:
		return true
	default:
		return false
	}
}
