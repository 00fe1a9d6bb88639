// Package progress owns the persisted voyage state: where the ship is,
// where it is going, how far habit fuel has carried it, and the unlock
// state (level, visited bodies) the renderer consults. All access is
// thread-safe; the frame loop reads one Snapshot per frame and mutates
// only through the named commit operations.
package progress

import (
	"sync"
	"time"

	"github.com/litescript/ls-voyager/internal/logging"
)

// EventType represents the type of voyage event.
type EventType string

const (
	EventTravelBegun EventType = "TRAVEL_BEGUN"
	EventFuelApplied EventType = "FUEL_APPLIED"
	EventSynced      EventType = "SYNCED"
	EventLanded      EventType = "LANDED"
	EventLevelUp     EventType = "LEVEL_UP"
	EventReset       EventType = "RESET"
)

// Event represents a change in voyage state.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Body      string    `json:"body,omitempty"`
	XP        int       `json:"xp,omitempty"`
	Level     int       `json:"level,omitempty"`
}

// UserPosition describes where the ship is and, while traveling, the
// active leg. Distances are scene units between the two surface
// endpoints. Target is empty when the ship is parked.
type UserPosition struct {
	StartingLocation         string    `json:"starting_location"`
	Target                   string    `json:"target,omitempty"`
	InitialDistance          float64   `json:"initial_distance,omitempty"`
	DistanceTraveled         float64   `json:"distance_traveled,omitempty"`
	PreviousDistanceTraveled float64   `json:"previous_distance_traveled,omitempty"`
	LaunchTime               time.Time `json:"launch_time,omitempty"`
}

// Traveling reports whether a travel leg is active.
func (p UserPosition) Traveling() bool {
	return p.Target != ""
}

// DistanceRemaining returns how much of the leg is left.
func (p UserPosition) DistanceRemaining() float64 {
	r := p.InitialDistance - p.DistanceTraveled
	if r < 0 {
		return 0
	}
	return r
}

// Config holds configuration for the progress manager.
type Config struct {
	ProfilePath string
	MaxEvents   int

	// FuelFraction is the fraction of the leg's initial distance one
	// habit completion advances the ship.
	FuelFraction float64

	XPPerHabit   int
	XPPerLanding int
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MaxEvents:    50,
		FuelFraction: 0.25,
		XPPerHabit:   20,
		XPPerLanding: 150,
	}
}

// Manager handles all shared voyage state with thread-safe access.
type Manager struct {
	mu  sync.RWMutex
	cfg Config
	log *logging.Logger

	position               UserPosition
	pendingLanding         bool
	pendingTravelAnimation bool

	completed map[string]bool
	xp        int

	showTrails   bool
	showTextures bool
	showOutlines bool

	// Event log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int

	dirty bool
}

// NewManager creates a progress manager starting at the given root body.
func NewManager(cfg Config, root string, log *logging.Logger) *Manager {
	if log == nil {
		log = logging.Discard()
	}
	maxEvents := cfg.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}
	return &Manager{
		cfg:          cfg,
		log:          log,
		position:     UserPosition{StartingLocation: root},
		completed:    map[string]bool{root: true},
		maxEvents:    maxEvents,
		events:       make([]Event, 0, maxEvents),
		showTrails:   true,
		showTextures: true,
		showOutlines: true,
	}
}

// Snapshot is an immutable copy of voyage state, read once per frame.
type Snapshot struct {
	Position               UserPosition
	PendingLanding         bool
	PendingTravelAnimation bool
	CompletedPlanets       map[string]bool
	XP                     int
	Level                  int
	ShowTrails             bool
	ShowTextures           bool
	ShowOutlines           bool
	Events                 []Event
}

// Snapshot returns a consistent snapshot of current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	completed := make(map[string]bool, len(m.completed))
	for k, v := range m.completed {
		completed[k] = v
	}

	return Snapshot{
		Position:               m.position,
		PendingLanding:         m.pendingLanding,
		PendingTravelAnimation: m.pendingTravelAnimation,
		CompletedPlanets:       completed,
		XP:                     m.xp,
		Level:                  LevelForXP(m.xp),
		ShowTrails:             m.showTrails,
		ShowTextures:           m.showTextures,
		ShowOutlines:           m.showOutlines,
		Events:                 m.eventsOrdered(),
	}
}

// BeginTravel starts a leg toward target over the given surface-to-
// surface distance. Fails if a leg is already active or the distance is
// not positive.
func (m *Manager) BeginTravel(target string, distance float64, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.position.Traveling() {
		return &ErrTravelActive{Target: m.position.Target}
	}
	if target == "" || target == m.position.StartingLocation {
		return &ErrBadTarget{Target: target}
	}
	if distance <= 0 {
		return &ErrBadTarget{Target: target}
	}

	m.position.Target = target
	m.position.InitialDistance = distance
	m.position.DistanceTraveled = 0
	m.position.PreviousDistanceTraveled = 0
	m.position.LaunchTime = now
	m.dirty = true

	m.addEvent(Event{Type: EventTravelBegun, Timestamp: now, Body: target})
	m.log.Info("travel begun: %s -> %s (%.2f units)", m.position.StartingLocation, target, distance)
	return nil
}

// CompleteHabit records one habit completion: XP always, fuel if a leg
// is active. When the leg's distance fills, the landing becomes pending
// until the animation layer finalizes it.
func (m *Manager) CompleteHabit(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	before := LevelForXP(m.xp)
	m.xp += m.cfg.XPPerHabit
	m.dirty = true
	if after := LevelForXP(m.xp); after > before {
		m.addEvent(Event{Type: EventLevelUp, Timestamp: now, Level: after})
		m.log.Info("level up: %d", after)
	}

	if !m.position.Traveling() {
		return
	}

	step := m.cfg.FuelFraction * m.position.InitialDistance
	m.position.DistanceTraveled += step
	if m.position.DistanceTraveled >= m.position.InitialDistance {
		m.position.DistanceTraveled = m.position.InitialDistance
		m.pendingLanding = true
	}
	m.pendingTravelAnimation = true

	m.addEvent(Event{Type: EventFuelApplied, Timestamp: now, Body: m.position.Target})
	m.log.Debug("fuel applied: %.2f / %.2f toward %s",
		m.position.DistanceTraveled, m.position.InitialDistance, m.position.Target)
}

// SyncTravelVisuals commits the displayed batch: previous becomes
// current. Idempotent; calling it again without an intervening delta
// changes nothing. Clears the pending-animation hint.
func (m *Manager) SyncTravelVisuals() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.position.PreviousDistanceTraveled != m.position.DistanceTraveled {
		m.position.PreviousDistanceTraveled = m.position.DistanceTraveled
		m.addEvent(Event{Type: EventSynced, Timestamp: time.Now(), Body: m.position.Target})
		m.dirty = true
	}
	m.pendingTravelAnimation = false
}

// FinalizeLandingAfterAnimation completes an arrival exactly once: the
// ship's location becomes the target, the leg clears, the body counts
// as visited, and landing XP is awarded. A no-op unless a landing is
// actually pending with a filled leg.
func (m *Manager) FinalizeLandingAfterAnimation(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.pendingLanding || m.position.DistanceTraveled < m.position.InitialDistance {
		return
	}

	arrived := m.position.Target
	m.position = UserPosition{StartingLocation: arrived}
	m.pendingLanding = false
	m.completed[arrived] = true

	before := LevelForXP(m.xp)
	m.xp += m.cfg.XPPerLanding
	m.dirty = true

	m.addEvent(Event{Type: EventLanded, Timestamp: now, Body: arrived, XP: m.cfg.XPPerLanding})
	if after := LevelForXP(m.xp); after > before {
		m.addEvent(Event{Type: EventLevelUp, Timestamp: now, Level: after})
	}
	m.log.Info("landed on %s", arrived)
}

// ResetTravelState is the corrupt-state escape hatch: it clears the
// active leg and both pending flags, keeping location, XP and visits.
func (m *Manager) ResetTravelState(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.position = UserPosition{StartingLocation: m.position.StartingLocation}
	m.pendingLanding = false
	m.pendingTravelAnimation = false
	m.dirty = true
	m.addEvent(Event{Type: EventReset, Timestamp: now})
	m.log.Warn("travel state reset")
}

// SetShowTrails toggles orbital trail rendering.
func (m *Manager) SetShowTrails(on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.showTrails = on
}

// SetShowTextures toggles body glyph shading.
func (m *Manager) SetShowTextures(on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.showTextures = on
}

// SetShowOutlines toggles outline emphasis rendering.
func (m *Manager) SetShowOutlines(on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.showOutlines = on
}

// RecentEvents returns the last n events, oldest first.
func (m *Manager) RecentEvents(n int) []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := m.eventsOrdered()
	if len(all) <= n {
		return all
	}
	return all[len(all)-n:]
}

// addEvent adds an event to the ring buffer. Callers hold the lock.
func (m *Manager) addEvent(e Event) {
	if len(m.events) < m.maxEvents {
		m.events = append(m.events, e)
	} else {
		m.events[m.eventWriteAt] = e
		m.eventWriteAt = (m.eventWriteAt + 1) % m.maxEvents
	}
}

// eventsOrdered returns events oldest to newest. Callers hold the lock.
func (m *Manager) eventsOrdered() []Event {
	if len(m.events) == 0 {
		return nil
	}
	if len(m.events) < m.maxEvents {
		result := make([]Event, len(m.events))
		copy(result, m.events)
		return result
	}
	result := make([]Event, m.maxEvents)
	for i := 0; i < m.maxEvents; i++ {
		result[i] = m.events[(m.eventWriteAt+i)%m.maxEvents]
	}
	return result
}
