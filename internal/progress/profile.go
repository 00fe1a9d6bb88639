package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// profileData is the on-disk JSON form of persisted voyage state.
type profileData struct {
	Position         UserPosition `json:"position"`
	PendingLanding   bool         `json:"pending_landing,omitempty"`
	CompletedPlanets []string     `json:"completed_planets"`
	XP               int          `json:"xp"`
	ShowTrails       bool         `json:"show_trails"`
	ShowTextures     bool         `json:"show_textures"`
	ShowOutlines     bool         `json:"show_outlines"`
	SavedAt          time.Time    `json:"saved_at"`
}

// Load restores persisted state from the configured profile path. A
// missing file is not an error; the manager keeps its fresh-start
// state. A corrupt file is reported so the caller can decide whether
// to reset.
func (m *Manager) Load() error {
	if m.cfg.ProfilePath == "" {
		return nil
	}

	raw, err := os.ReadFile(m.cfg.ProfilePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading profile: %w", err)
	}

	var data profileData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("parsing profile %s: %w", m.cfg.ProfilePath, err)
	}
	if data.Position.StartingLocation == "" {
		return fmt.Errorf("profile %s has no starting location", m.cfg.ProfilePath)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.position = data.Position
	m.pendingLanding = data.PendingLanding
	m.xp = data.XP
	m.showTrails = data.ShowTrails
	m.showTextures = data.ShowTextures
	m.showOutlines = data.ShowOutlines
	m.completed = make(map[string]bool, len(data.CompletedPlanets))
	for _, name := range data.CompletedPlanets {
		m.completed[name] = true
	}
	m.completed[m.position.StartingLocation] = true
	m.dirty = false

	m.log.Info("profile loaded: at %s, %d XP, %d bodies visited",
		m.position.StartingLocation, m.xp, len(m.completed))
	return nil
}

// Save writes the profile if anything changed since the last save.
// Writes go through a temp file and rename so a crash mid-write never
// corrupts the profile.
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cfg.ProfilePath == "" || !m.dirty {
		return nil
	}

	data := profileData{
		Position:       m.position,
		PendingLanding: m.pendingLanding,
		XP:             m.xp,
		ShowTrails:     m.showTrails,
		ShowTextures:   m.showTextures,
		ShowOutlines:   m.showOutlines,
		SavedAt:        time.Now().UTC(),
	}
	for name := range m.completed {
		data.CompletedPlanets = append(data.CompletedPlanets, name)
	}
	sort.Strings(data.CompletedPlanets)

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}

	dir := filepath.Dir(m.cfg.ProfilePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating profile dir: %w", err)
	}
	tmp := m.cfg.ProfilePath + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}
	if err := os.Rename(tmp, m.cfg.ProfilePath); err != nil {
		return fmt.Errorf("replacing profile: %w", err)
	}

	m.dirty = false
	return nil
}

// Dirty reports whether unsaved mutations exist.
func (m *Manager) Dirty() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dirty
}
