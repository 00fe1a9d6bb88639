package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-voyager/internal/cosmos"
	"github.com/litescript/ls-voyager/internal/engine"
	"github.com/litescript/ls-voyager/internal/progress"
)

// JourneyModel shows travel status and lets the player pick the next
// destination. Habit completion and launches mutate the progress store
// here; the map view animates the result.
type JourneyModel struct {
	engine   *engine.Engine
	snapshot progress.Snapshot

	width  int
	height int

	selIdx int
	status string
}

// NewJourneyModel creates the journey view.
func NewJourneyModel(eng *engine.Engine) JourneyModel {
	return JourneyModel{engine: eng}
}

// SetSize updates the viewport size.
func (m JourneyModel) SetSize(width, height int) JourneyModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a fresh progress snapshot.
func (m JourneyModel) UpdateData(snapshot progress.Snapshot) JourneyModel {
	m.snapshot = snapshot
	return m
}

// SetStatus sets the one-line status message.
func (m JourneyModel) SetStatus(s string) JourneyModel {
	m.status = s
	return m
}

// destinations lists landable bodies other than the current location,
// in registry order.
func (m JourneyModel) destinations() []*cosmos.Body {
	var out []*cosmos.Body
	for _, b := range m.engine.Registry().All() {
		if b.Landable && b.Name != m.snapshot.Position.StartingLocation {
			out = append(out, b)
		}
	}
	return out
}

// Update handles input messages.
func (m JourneyModel) Update(msg tea.Msg) (JourneyModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	dests := m.destinations()
	switch keyMsg.String() {
	case "j", "down":
		if m.selIdx < len(dests)-1 {
			m.selIdx++
		}
	case "k", "up":
		if m.selIdx > 0 {
			m.selIdx--
		}
	case "enter":
		if m.selIdx < len(dests) {
			target := dests[m.selIdx].Name
			if err := m.engine.StartTravel(target, time.Now()); err != nil {
				m.status = err.Error()
			} else {
				m.status = "launched toward " + target
			}
		}
	}
	return m, nil
}

// View renders the journey view.
func (m JourneyModel) View() string {
	if m.width < 40 || m.height < 8 {
		return "Terminal too small for the journey view"
	}

	var b strings.Builder
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderDestinations())

	if m.status != "" {
		dim := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
		b.WriteString("\n  " + dim.Render(m.status))
	}
	return b.String()
}

func (m JourneyModel) renderStatus() string {
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Width(14)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	var b strings.Builder
	b.WriteString("  " + headerStyle.Render("VOYAGE") + "\n")

	pos := m.snapshot.Position
	b.WriteString("  " + labelStyle.Render("Location") + valueStyle.Render(pos.StartingLocation) + "\n")

	if pos.Traveling() {
		b.WriteString("  " + labelStyle.Render("Destination") + valueStyle.Render(pos.Target) + "\n")
		frac := 0.0
		if pos.InitialDistance > 0 {
			frac = pos.DistanceTraveled / pos.InitialDistance
		}
		b.WriteString("  " + labelStyle.Render("Progress") +
			renderBar(frac, 30) + valueStyle.Render(fmt.Sprintf(" %.0f%%", frac*100)) + "\n")
		b.WriteString("  " + labelStyle.Render("Remaining") +
			valueStyle.Render(fmt.Sprintf("%.2f units", pos.DistanceRemaining())) + "\n")
		if m.snapshot.PendingLanding {
			b.WriteString("  " + labelStyle.Render("Landing") + valueStyle.Render("pending animation") + "\n")
		}
	} else {
		b.WriteString("  " + labelStyle.Render("Destination") + valueStyle.Render("—") + "\n")
	}

	b.WriteString("  " + labelStyle.Render("Level") +
		valueStyle.Render(fmt.Sprintf("%d", m.snapshot.Level)) + "  " +
		renderBar(progress.LevelProgress(m.snapshot.XP), 20) +
		valueStyle.Render(fmt.Sprintf(" %d XP", m.snapshot.XP)) + "\n")
	b.WriteString("  " + labelStyle.Render("Visited") +
		valueStyle.Render(fmt.Sprintf("%d bodies", len(m.snapshot.CompletedPlanets))) + "\n")

	return b.String()
}

func (m JourneyModel) renderDestinations() string {
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	selStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	lockStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	var b strings.Builder
	b.WriteString("  " + headerStyle.Render("DESTINATIONS") + "\n")

	for i, body := range m.destinations() {
		marker := "  "
		style := rowStyle
		if i == m.selIdx {
			marker = "▶ "
			style = selStyle
		}

		var note string
		switch {
		case body.MinLevel > m.snapshot.Level:
			note = fmt.Sprintf("locked until lvl %d", body.MinLevel)
			style = lockStyle
		case m.snapshot.CompletedPlanets[body.Name]:
			note = "visited ✓"
		}

		line := fmt.Sprintf("%s%-10s %-8s %s", marker, body.Name, body.Kind, note)
		b.WriteString("  " + style.Render(line) + "\n")
	}
	return b.String()
}

// renderBar draws a fixed-width progress bar.
func renderBar(frac float64, width int) string {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac * float64(width))

	fillStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))
	emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	return fillStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", width-filled))
}
