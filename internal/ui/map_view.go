package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-voyager/internal/assets"
	"github.com/litescript/ls-voyager/internal/astro"
	"github.com/litescript/ls-voyager/internal/engine"
	"github.com/litescript/ls-voyager/internal/progress"
)

// cellAspect corrects for terminal cells being roughly twice as tall
// as they are wide.
const cellAspect = 2.0

// starShellRadius places background stars well outside the planetary
// scene, in scene units.
const starShellRadius = 5000.0

// MapModel renders the orbital map: bodies, trails, outlines, the
// traveling ship, and a background starfield, all projected through
// the orbit camera. Terminal mouse events become the camera's
// normalized gestures here; the camera itself never sees raw input.
type MapModel struct {
	engine   *engine.Engine
	textures *assets.Store
	snapshot progress.Snapshot

	width  int
	height int

	// Drag state for pan gesture synthesis.
	dragging     bool
	lastX, lastY int
	velX, velY   float64
}

// NewMapModel creates the map view.
func NewMapModel(eng *engine.Engine, textures *assets.Store) MapModel {
	return MapModel{engine: eng, textures: textures}
}

// SetSize updates the viewport size.
func (m MapModel) SetSize(width, height int) MapModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a fresh progress snapshot.
func (m MapModel) UpdateData(snapshot progress.Snapshot) MapModel {
	m.snapshot = snapshot
	return m
}

// Update handles input messages.
func (m MapModel) Update(msg tea.Msg) (MapModel, tea.Cmd) {
	cam := m.engine.Camera()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cam == nil {
			return m, nil
		}
		switch msg.String() {
		// Arrow keys synthesize small pan deltas.
		case "left":
			cam.Pan(-4, 0)
			cam.EndPan(0, 0)
		case "right":
			cam.Pan(4, 0)
			cam.EndPan(0, 0)
		case "up":
			cam.Pan(0, -2)
			cam.EndPan(0, 0)
		case "down":
			cam.Pan(0, 2)
			cam.EndPan(0, 0)
		case "+", "=":
			cam.Pinch(1.15)
			cam.EndPinch()
		case "-":
			cam.Pinch(1 / 1.15)
			cam.EndPinch()
		case "0":
			cam.DoubleTap()
		}

	case tea.MouseMsg:
		if cam == nil {
			return m, nil
		}
		switch msg.Action {
		case tea.MouseActionPress:
			switch msg.Button {
			case tea.MouseButtonLeft:
				m.dragging = true
				m.lastX, m.lastY = msg.X, msg.Y
				m.velX, m.velY = 0, 0
			case tea.MouseButtonWheelUp:
				cam.Pinch(1.1)
				cam.EndPinch()
			case tea.MouseButtonWheelDown:
				cam.Pinch(1 / 1.1)
				cam.EndPinch()
			}
		case tea.MouseActionMotion:
			if m.dragging {
				dx := float64(msg.X - m.lastX)
				dy := float64(msg.Y - m.lastY)
				cam.Pan(dx, dy)
				m.velX, m.velY = dx, dy
				m.lastX, m.lastY = msg.X, msg.Y
			}
		case tea.MouseActionRelease:
			if m.dragging {
				m.dragging = false
				cam.EndPan(m.velX, m.velY)
			}
		}
	}
	return m, nil
}

// cell is one drawn canvas cell.
type cell struct {
	ch    rune
	color string
	bold  bool
}

// View renders the map view.
func (m MapModel) View() string {
	if m.width < 40 || m.height < 8 {
		return "Terminal too small for the orbital map"
	}
	cam := m.engine.Camera()
	if cam == nil {
		return "Waiting for viewport..."
	}

	canvasH := m.height - 2
	grid := make([][]cell, canvasH)
	for y := range grid {
		grid[y] = make([]cell, m.width)
	}

	m.drawStarfield(grid)
	m.drawTrails(grid)
	m.drawBodies(grid)
	m.drawShip(grid)

	return m.renderGrid(grid) + m.renderHUD()
}

// project maps a world point to canvas coordinates through the camera.
func (m MapModel) project(world astro.Vec3, canvasH int) (sx, sy int, depth float64, ok bool) {
	cam := m.engine.Camera()
	x, y, depth, ok := cam.Project(world)
	if !ok {
		return 0, 0, depth, false
	}

	half := float64(canvasH) / 2
	sx = m.width/2 + int(x*half*cellAspect)
	sy = canvasH/2 - int(y*half)
	if sx < 0 || sx >= m.width || sy < 0 || sy >= canvasH {
		return 0, 0, depth, false
	}
	return sx, sy, depth, true
}

func (m MapModel) drawStarfield(grid [][]cell) {
	canvasH := len(grid)
	cam := m.engine.Camera()

	for _, star := range astro.DefaultStarCatalog().Stars {
		world := cam.Pivot().Add(star.Direction().Scale(starShellRadius))
		sx, sy, _, ok := m.project(world, canvasH)
		if !ok || grid[sy][sx].ch != 0 {
			continue
		}
		glyph := '˙'
		if star.Mag < 0.5 {
			glyph = '∗'
		}
		grid[sy][sx] = cell{ch: glyph, color: "#3A3A4A"}
	}
}

func (m MapModel) drawTrails(grid [][]cell) {
	if !m.snapshot.ShowTrails {
		return
	}
	canvasH := len(grid)

	for _, node := range m.engine.Scene().Nodes().All() {
		if !node.Visible || !node.HasTrail() {
			continue
		}
		body, ok := m.engine.Registry().Get(node.Name)
		if !ok {
			continue
		}
		for _, p := range node.TrailWorldPoints() {
			if p.Alpha <= 0.01 {
				continue
			}
			sx, sy, _, ok := m.project(p.Pos, canvasH)
			if !ok || grid[sy][sx].ch != 0 {
				continue
			}
			grid[sy][sx] = cell{ch: '·', color: assets.Fade(body.Color, p.Alpha)}
		}
	}
}

func (m MapModel) drawBodies(grid [][]cell) {
	canvasH := len(grid)

	for _, node := range m.engine.Scene().Nodes().All() {
		if !node.Visible {
			continue
		}
		body, ok := m.engine.Registry().Get(node.Name)
		if !ok {
			continue
		}

		sx, sy, depth, visible := m.project(node.Pos, canvasH)
		if !visible {
			continue
		}

		// Apparent radius in cells from the projected visual radius.
		cellR := node.Radius / (2 * depth * math.Tan(m.engine.Camera().Config().FOVRad/2)) * float64(canvasH)

		tex := m.textures.Texture(body.Name, body.Color)
		if !m.snapshot.ShowTextures {
			tex = assets.Texture{Glyphs: []rune{'●'}, Colors: []string{body.Color}}
		}

		m.drawDisc(grid, sx, sy, cellR, tex)

		if node.OutlineEnabled && node.Outline > 0 {
			m.drawOutline(grid, sx, sy, cellR+1, body.Color, node.Outline)
		}

		m.drawLabel(grid, sx, sy, int(cellR), body.Name)
	}
}

// drawDisc fills a shaded disc, brightest at center.
func (m MapModel) drawDisc(grid [][]cell, cx, cy int, r float64, tex assets.Texture) {
	canvasH := len(grid)
	if r < 0.5 {
		// Sub-cell body: single glyph in the brightest shade.
		if cx >= 0 && cx < m.width && cy >= 0 && cy < canvasH {
			last := len(tex.Glyphs) - 1
			grid[cy][cx] = cell{ch: tex.Glyphs[last], color: tex.Colors[last], bold: true}
		}
		return
	}

	ri := int(r) + 1
	for dy := -ri; dy <= ri; dy++ {
		for dx := -ri * int(cellAspect); dx <= ri*int(cellAspect); dx++ {
			x, y := cx+dx, cy+dy
			if x < 0 || x >= m.width || y < 0 || y >= canvasH {
				continue
			}
			d := math.Hypot(float64(dx)/cellAspect, float64(dy))
			if d > r {
				continue
			}
			// Shade by distance from center.
			f := 1 - d/r
			idx := int(f * float64(len(tex.Glyphs)-1))
			grid[y][x] = cell{ch: tex.Glyphs[idx], color: tex.Colors[idx]}
		}
	}
}

// drawOutline rings a body with emphasis dots, blended toward white by
// intensity.
func (m MapModel) drawOutline(grid [][]cell, cx, cy int, r float64, baseColor string, intensity float64) {
	canvasH := len(grid)
	color := assets.Blend(baseColor, "#FFFFFF", intensity*0.7)

	steps := int(2 * math.Pi * r * cellAspect)
	if steps < 8 {
		steps = 8
	}
	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + int(r*math.Cos(theta)*cellAspect)
		y := cy - int(r*math.Sin(theta))
		if x < 0 || x >= m.width || y < 0 || y >= canvasH || grid[y][x].ch != 0 {
			continue
		}
		grid[y][x] = cell{ch: '·', color: color}
	}
}

func (m MapModel) drawLabel(grid [][]cell, cx, cy, r int, name string) {
	canvasH := len(grid)
	y := cy - r - 1
	if y < 0 || y >= canvasH {
		return
	}
	x := cx - len(name)/2
	for i, ch := range name {
		if x+i < 0 || x+i >= m.width || grid[y][x+i].ch != 0 {
			continue
		}
		grid[y][x+i] = cell{ch: ch, color: "#8A8A9A"}
	}
}

func (m MapModel) drawShip(grid [][]cell) {
	canvasH := len(grid)
	ship := m.engine.Ship()

	sx, sy, _, ok := m.project(ship.Pos, canvasH)
	if !ok {
		return
	}
	glyph := '◆'
	if !ship.EnRoute {
		glyph = '▲'
	}
	grid[sy][sx] = cell{ch: glyph, color: "#E8E84A", bold: true}
}

func (m MapModel) renderGrid(grid [][]cell) string {
	var b strings.Builder
	for _, row := range grid {
		for _, c := range row {
			if c.ch == 0 {
				b.WriteRune(' ')
				continue
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.color))
			if c.bold {
				style = style.Bold(true)
			}
			b.WriteString(style.Render(string(c.ch)))
		}
		b.WriteRune('\n')
	}
	return b.String()
}

func (m MapModel) renderHUD() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	cam := m.engine.Camera()
	line1 := dimStyle.Render("  cam ") +
		valueStyle.Render(fmt.Sprintf("yaw %.2f pitch %.2f radius %.1f", cam.Yaw(), cam.Pitch(), cam.Radius())) +
		dimStyle.Render("  mode ") + valueStyle.Render(cam.Mode().String())

	pos := m.snapshot.Position
	var line2 string
	if pos.Traveling() {
		line2 = dimStyle.Render("  leg ") +
			valueStyle.Render(fmt.Sprintf("%s → %s  %.2f/%.2f", pos.StartingLocation, pos.Target,
				m.engine.Ship().Displayed, pos.InitialDistance))
	} else {
		line2 = dimStyle.Render("  docked at ") + valueStyle.Render(pos.StartingLocation)
	}

	return line1 + "\n" + line2
}
