// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-voyager/internal/assets"
	"github.com/litescript/ls-voyager/internal/engine"
	"github.com/litescript/ls-voyager/internal/progress"
	"github.com/litescript/ls-voyager/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewMap ViewMode = iota
	ViewJourney
)

// Msg types for Bubble Tea
type (
	// FrameTickMsg drives the frame scheduler.
	FrameTickMsg time.Time

	// AutosaveTickMsg triggers a profile save if anything changed.
	AutosaveTickMsg time.Time
)

// frameInterval is the display refresh cadence (~30 fps).
const frameInterval = 33 * time.Millisecond

const autosaveInterval = 5 * time.Second

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	engine *engine.Engine
	store  *progress.Manager

	// UI state
	viewMode ViewMode
	width    int
	height   int
	ready    bool
	showHelp bool
	animTick int

	// Sub-models
	mapView MapModel
	journey JourneyModel

	// Data snapshot (refreshed each frame tick)
	snapshot progress.Snapshot
}

// New creates a new root UI model.
func New(eng *engine.Engine, store *progress.Manager, textures *assets.Store) Model {
	return Model{
		engine:   eng,
		store:    store,
		viewMode: ViewMap,
		mapView:  NewMapModel(eng, textures),
		journey:  NewJourneyModel(eng),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	m.engine.Focus(true)
	return tea.Batch(frameTickCmd(), autosaveTickCmd())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.engine.Teardown()
			_ = m.store.Save()
			return m, tea.Quit

		case "1":
			m.setView(ViewMap)
		case "2":
			m.setView(ViewJourney)
		case "tab":
			m.setView((m.viewMode + 1) % 2)

		case "?":
			m.showHelp = !m.showHelp
		case "esc":
			m.showHelp = false

		case " ":
			// Habit completion is the external mutation the map
			// animates; available from either view.
			m.store.CompleteHabit(time.Now())

		case "T":
			m.store.SetShowTrails(!m.snapshot.ShowTrails)
		case "X":
			m.store.SetShowTextures(!m.snapshot.ShowTextures)
		case "O":
			m.store.SetShowOutlines(!m.snapshot.ShowOutlines)

		default:
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.MouseMsg:
		cmds = append(cmds, m.updateActiveView(msg))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Logo takes 4 lines, tabs 1, footer 2.
		contentHeight := msg.Height - 7
		m.engine.Resize(msg.Width, contentHeight)
		m.mapView = m.mapView.SetSize(msg.Width, contentHeight)
		m.journey = m.journey.SetSize(msg.Width, contentHeight)

	case FrameTickMsg:
		cmds = append(cmds, frameTickCmd())
		m.animTick++
		m.engine.Frame(time.Time(msg))
		m.snapshot = m.store.Snapshot()
		m.mapView = m.mapView.UpdateData(m.snapshot)
		m.journey = m.journey.UpdateData(m.snapshot)

	case AutosaveTickMsg:
		cmds = append(cmds, autosaveTickCmd())
		if err := m.store.Save(); err != nil {
			m.journey = m.journey.SetStatus("save failed: " + err.Error())
		}

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

// setView switches the visible tab, keeping the engine's focus state
// aligned so travel animation freezes while the map is hidden.
func (m *Model) setView(v ViewMode) {
	m.viewMode = v
	m.engine.Focus(v == ViewMap)
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewMap:
		m.mapView, cmd = m.mapView.Update(msg)
	case ViewJourney:
		m.journey, cmd = m.journey.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch {
	case m.showHelp:
		content = m.renderHelp()
	case m.viewMode == ViewMap:
		content = m.mapView.View()
	default:
		content = m.journey.View()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	return m.renderLogo() + m.renderTabs()
}

func (m Model) renderLogo() string {
	logo := []string{
		`  ██╗   ██╗ ██████╗ ██╗   ██╗ █████╗  ██████╗ ███████╗██████╗ `,
		`  ██║   ██║██╔═══██╗╚██╗ ██╔╝██╔══██╗██╔════╝ ██╔════╝██╔══██╗`,
		`  ╚██╗ ██╔╝██║   ██║ ╚████╔╝ ███████║██║  ███╗█████╗  ██████╔╝`,
		`   ╚████╔╝  ╚██████╔╝  ╚██╔╝  ██║  ██║╚██████╔╝███████╗██║  ██║`,
	}

	var b strings.Builder
	for row, line := range logo {
		runes := []rune(line)
		for col, r := range runes {
			color := logoGradient(col, row, len(runes), len(logo))
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(string(r)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// logoGradient sweeps deep blue to violet across the logo, dimming
// toward the bottom rows.
func logoGradient(col, row, width, height int) string {
	x := float64(col) / float64(width)
	y := float64(row) / float64(height)

	r := 59 + x*(139-59)
	g := 130 - x*60
	b := 246.0

	dim := 1.0 - y*0.4
	return fmt.Sprintf("#%02X%02X%02X", int(r*dim), int(g*dim), int(b*dim))
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Map", "[2] Journey"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

// renderHelp is the full keybinding overlay, toggled with '?'.
func (m Model) renderHelp() string {
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Width(14)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	sections := []struct {
		title string
		rows  [][2]string
	}{
		{"GENERAL", [][2]string{
			{"1 / 2 / tab", "switch view"},
			{"space", "complete a habit (adds fuel + XP)"},
			{"?", "toggle this help"},
			{"q", "save and quit"},
		}},
		{"MAP", [][2]string{
			{"drag / arrows", "orbit the camera"},
			{"wheel / + -", "zoom"},
			{"0", "reset zoom"},
			{"T / X / O", "toggle trails / textures / outlines"},
		}},
		{"JOURNEY", [][2]string{
			{"j / k", "select destination"},
			{"enter", "launch toward selection"},
		}},
	}

	var b strings.Builder
	for _, s := range sections {
		b.WriteString("  " + headerStyle.Render(s.title) + "\n")
		for _, row := range s.rows {
			b.WriteString("  " + keyStyle.Render(row[0]) + descStyle.Render(row[1]) + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))

	spinnerFrames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	spinner := spinnerFrames[m.animTick%len(spinnerFrames)]

	var status string
	if m.snapshot.Position.Traveling() {
		pct := 0.0
		if m.snapshot.Position.InitialDistance > 0 {
			pct = m.snapshot.Position.DistanceTraveled / m.snapshot.Position.InitialDistance * 100
		}
		status = accentStyle.Render(spinner) +
			dimStyle.Render(fmt.Sprintf(" en route to %s (%.0f%%)", m.snapshot.Position.Target, pct))
	} else {
		status = dimStyle.Render(fmt.Sprintf("docked at %s", m.snapshot.Position.StartingLocation))
	}

	var help string
	switch m.viewMode {
	case ViewMap:
		help = dimStyle.Render("drag: orbit | wheel: zoom | 0: reset | space: complete habit | ?: help")
	case ViewJourney:
		help = dimStyle.Render("j/k: destination | enter: launch | space: complete habit | ?: help")
	}

	footer := "  " + status + "  " + dimStyle.Render("|") + "  " + help
	footer += "\n  " + dimStyle.Render(fmt.Sprintf("ls-voyager v%s | lvl %d | %d XP",
		version.Version, m.snapshot.Level, m.snapshot.XP))
	return footer
}

func frameTickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameTickMsg(t)
	})
}

func autosaveTickCmd() tea.Cmd {
	return tea.Tick(autosaveInterval, func(t time.Time) tea.Msg {
		return AutosaveTickMsg(t)
	})
}
