// Package tui provides a Bubble Tea terminal user interface for audiobook-downloader.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/audiobook-downloader/internal/config"
	"github.com/handiism/audiobook-downloader/internal/download"
	"github.com/handiism/audiobook-downloader/internal/logger"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	bookStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateScanning
	StateDownloading
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   download.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	logs      []LogEntry
	titles    []string
	err       error

	// Download context
	ctx    context.Context
	cancel context.CancelFunc

	// Pipeline manager reference
	manager *download.Manager

	// Run progress
	itemsDone   int32
	itemsFailed int32
	itemsTotal  int32

	// Options
	playlist bool
	verbose  bool
	convert  bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel() Model {
	settings := config.DefaultSettings()

	ti := textinput.New()
	ti.Placeholder = settings.DownloadsPath
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		logs:      make([]LogEntry, 0),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg is sent when pipeline progress updates.
	ProgressMsg struct {
		Event download.ProgressEvent
	}

	// ScanDoneMsg is sent when the catalog scan completes.
	ScanDoneMsg struct {
		Titles  []string
		Manager *download.Manager
		Err     error
	}

	// RunDoneMsg is sent when the whole run completes.
	RunDoneMsg struct {
		Done   int32
		Failed int32
		Total  int32
		Err    error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateDownloading || m.state == StateScanning {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateInput {
				m.state = StateScanning
				return m, tea.Batch(m.scanCatalog(), m.spinner.Tick)
			}

		case "p":
			if m.state == StateInput {
				m.playlist = !m.playlist
			}

		case "v":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "c":
			if m.state == StateInput {
				m.convert = !m.convert
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for a new run
				m.state = StateInput
				m.logs = nil
				m.titles = nil
				m.err = nil
				m.itemsDone = 0
				m.itemsFailed = 0
				m.itemsTotal = 0
				m.manager = nil
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.Focus()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		// Filter verbose messages if not in verbose mode
		if msg.Event.Level == download.LevelVerbose && !m.verbose {
			return m, nil
		}
		m.logs = append(m.logs, LogEntry{
			Message: msg.Event.Message,
			Level:   msg.Event.Level,
		})
		// Keep only last 10 logs
		if len(m.logs) > 10 {
			m.logs = m.logs[len(m.logs)-10:]
		}

	case ScanDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.titles = msg.Titles
			m.manager = msg.Manager
			m.state = StateDownloading
			// Start the run and tick for progress updates
			cmds = append(cmds, m.startRun(), m.tickProgress())
		}

	case RunDoneMsg:
		m.itemsDone = msg.Done
		m.itemsFailed = msg.Failed
		m.itemsTotal = msg.Total
		if msg.Err != nil && m.ctx.Err() == nil {
			m.state = StateError
			m.err = msg.Err
		} else if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.state = StateComplete
		}

	case TickMsg:
		// Update progress from manager
		if m.manager != nil && m.state == StateDownloading {
			done, failed, total := m.manager.Progress()
			m.itemsDone = done
			m.itemsFailed = failed
			m.itemsTotal = total

			var percent float64
			if total > 0 {
				percent = float64(done+failed) / float64(total)
			}
			progressCmd := m.progress.SetPercent(percent)
			cmds = append(cmds, progressCmd, m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("📚 Audiobook Downloader"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Download audiobooks from the catalog"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateScanning:
		b.WriteString(m.viewScanning())
	case StateDownloading:
		b.WriteString(m.viewDownloading())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Destination folder (empty for default):"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	// Options
	playlistCheck := "[ ]"
	if m.playlist {
		playlistCheck = "[×]"
	}
	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[×]"
	}
	convertCheck := "[ ]"
	if m.convert {
		convertCheck = "[×]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Create playlist (p)\n", playlistCheck))
	b.WriteString(fmt.Sprintf("  %s Verbose/debug output (v)\n", verboseCheck))
	b.WriteString(fmt.Sprintf("  %s Convert covers to JPEG (c)\n", convertCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Catalog: %s", m.settings.CatalogURL)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewScanning() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Scanning catalog..."))
	b.WriteString("\n\n")

	// Show logs
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewDownloading() string {
	var b strings.Builder

	// Audiobooks found
	if len(m.titles) > 0 {
		b.WriteString(successStyle.Render(fmt.Sprintf("Found %d audiobook(s):", len(m.titles))))
		b.WriteString("\n")
		shown := m.titles
		if len(shown) > 8 {
			shown = shown[:8]
		}
		for _, title := range shown {
			b.WriteString(bookStyle.Render(fmt.Sprintf("  ♪ %s", title)))
			b.WriteString("\n")
		}
		if len(m.titles) > len(shown) {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  … and %d more", len(m.titles)-len(shown))))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Progress bar
	var percent float64
	if m.itemsTotal > 0 {
		percent = float64(m.itemsDone+m.itemsFailed) / float64(m.itemsTotal)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf(
		"Audiobooks: %d/%d | Failed: %d",
		m.itemsDone+m.itemsFailed,
		m.itemsTotal,
		m.itemsFailed,
	)))
	b.WriteString("\n\n")

	// Logs
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	box := boxStyle.Render(fmt.Sprintf(
		"✨ Run Complete!\n\n"+
			"Audiobooks: %d\n"+
			"Completed: %d\n"+
			"Failed: %d",
		m.itemsTotal,
		m.itemsDone,
		m.itemsFailed,
	))
	b.WriteString(box)

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case download.LevelError:
			style = errorStyle
			prefix = "✗"
		case download.LevelWarning:
			style = warningStyle
			prefix = "!"
		case download.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case download.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: start • p: playlist • v: verbose • c: convert covers • esc: quit"
	case StateScanning, StateDownloading:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new run • q: quit"
	}
	return ""
}

// scanCatalog fetches the catalog and creates the manager.
func (m *Model) scanCatalog() tea.Cmd {
	return func() tea.Msg {
		destRoot := strings.TrimSpace(m.textInput.Value())

		// Apply options
		settings := config.DefaultSettings()
		if m.playlist {
			settings.CreatePlaylist = true
		}
		if m.convert {
			settings.ConvertCoverToJPEG = true
		}
		if destRoot == "" {
			destRoot = settings.DownloadsPath
		}

		// Progress events are collected but not rendered directly;
		// the TUI polls counters via TickMsg.
		manager := download.NewManager(settings, destRoot, logger.Discard(), nil)

		if err := manager.Initialize(m.ctx); err != nil {
			return ScanDoneMsg{Err: err}
		}

		return ScanDoneMsg{
			Titles:  manager.Titles(),
			Manager: manager,
			Err:     nil,
		}
	}
}

// startRun runs the pipeline in the background.
func (m *Model) startRun() tea.Cmd {
	return func() tea.Msg {
		if m.manager == nil {
			return RunDoneMsg{Err: fmt.Errorf("no manager")}
		}

		err := m.manager.Run(m.ctx)
		done, failed, total := m.manager.Progress()

		return RunDoneMsg{
			Done:   done,
			Failed: failed,
			Total:  total,
			Err:    err,
		}
	}
}

// Run starts the TUI application.
func Run() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
