package progress

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

// SnapshotExport is the JSON-serializable representation of voyage
// state, written by the headless snapshot mode.
type SnapshotExport struct {
	ExportedAt       time.Time    `json:"exported_at"`
	Position         UserPosition `json:"position"`
	DistanceLeft     float64      `json:"distance_remaining,omitempty"`
	PendingLanding   bool         `json:"pending_landing,omitempty"`
	XP               int          `json:"xp"`
	Level            int          `json:"level"`
	LevelProgress    float64      `json:"level_progress"`
	CompletedPlanets []string     `json:"completed_planets"`
	Events           []Event      `json:"events,omitempty"`
}

// ExportSnapshot converts a voyage snapshot to an exportable format.
func ExportSnapshot(s Snapshot, exportedAt time.Time) *SnapshotExport {
	export := &SnapshotExport{
		ExportedAt:     exportedAt,
		Position:       s.Position,
		DistanceLeft:   s.Position.DistanceRemaining(),
		PendingLanding: s.PendingLanding,
		XP:             s.XP,
		Level:          s.Level,
		LevelProgress:  LevelProgress(s.XP),
		Events:         s.Events,
	}
	for name := range s.CompletedPlanets {
		export.CompletedPlanets = append(export.CompletedPlanets, name)
	}
	sort.Strings(export.CompletedPlanets)
	return export
}

// WriteJSON writes the snapshot as JSON to the given writer.
func (s *SnapshotExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteSummary writes a text travel status to the given writer.
func WriteSummary(w io.Writer, s Snapshot, now time.Time) {
	fmt.Fprintf(w, "Voyage Status @ %s\n", now.Format(time.RFC3339))
	fmt.Fprintln(w, strings.Repeat("─", 60))

	fmt.Fprintf(w, "Location:  %s\n", s.Position.StartingLocation)
	if s.Position.Traveling() {
		pct := 0.0
		if s.Position.InitialDistance > 0 {
			pct = s.Position.DistanceTraveled / s.Position.InitialDistance * 100
		}
		fmt.Fprintf(w, "En route:  %s (%.0f%%, %.2f units remaining)\n",
			s.Position.Target, pct, s.Position.DistanceRemaining())
		if s.PendingLanding {
			fmt.Fprintln(w, "Landing:   pending animation")
		}
	} else {
		fmt.Fprintln(w, "En route:  —")
	}
	fmt.Fprintf(w, "Level:     %d (%d XP, %.0f%% to next)\n",
		s.Level, s.XP, LevelProgress(s.XP)*100)
	fmt.Fprintf(w, "Visited:   %d bodies\n", len(s.CompletedPlanets))

	if n := len(s.Events); n > 0 {
		fmt.Fprintln(w, strings.Repeat("─", 60))
		start := n - 5
		if start < 0 {
			start = 0
		}
		for _, e := range s.Events[start:] {
			fmt.Fprintf(w, "%s  %-13s %s\n",
				e.Timestamp.Format("15:04:05"), e.Type, e.Body)
		}
	}
}
