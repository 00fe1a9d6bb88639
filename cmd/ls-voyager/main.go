// Command ls-voyager is a terminal orrery: habit completions fuel a
// ship traveling between celestial bodies on a navigable 3D map.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-voyager/internal/assets"
	"github.com/litescript/ls-voyager/internal/cosmos"
	"github.com/litescript/ls-voyager/internal/engine"
	"github.com/litescript/ls-voyager/internal/ephem"
	"github.com/litescript/ls-voyager/internal/logging"
	"github.com/litescript/ls-voyager/internal/progress"
	"github.com/litescript/ls-voyager/internal/ui"
	"github.com/litescript/ls-voyager/internal/version"
)

// CLI flags for headless mode
var (
	summaryMode   bool
	watchInterval time.Duration
	snapshotPath  string
	beepMode      bool
	versionMode   bool
)

func main() {
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	logFile := flag.String("log-file", "", "Log to file instead of stderr (TUI runs default to a file)")
	profilePath := flag.String("profile", defaultProfilePath(), "Voyage profile path")
	flag.BoolVar(&summaryMode, "summary", false, "Print text travel status instead of TUI")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat summary at interval (e.g., 30s)")
	flag.StringVar(&snapshotPath, "snapshot-path", "", "Export JSON snapshot to file (use - for stdout)")
	flag.BoolVar(&beepMode, "beep", false, "Terminal bell when a landing is pending (TTY only)")
	flag.BoolVar(&versionMode, "version", false, "Print version and exit")
	flag.Parse()

	if versionMode {
		fmt.Printf("ls-voyager v%s\n", version.Version)
		return
	}

	headless := summaryMode || snapshotPath != ""

	logger, closeLog, err := setupLogging(*logLevel, *logFile, headless)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	reg, err := cosmos.NewRegistry(cosmos.DefaultBodies(), ephem.NewTableProvider())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := progress.DefaultConfig()
	cfg.ProfilePath = *profilePath
	store := progress.NewManager(cfg, reg.Root().Name, logger)
	if err := store.Load(); err != nil {
		// Corrupt profiles degrade to a fresh voyage, never a crash.
		logger.Error("profile load: %v (starting fresh)", err)
	}

	if headless {
		runHeadless(store)
		return
	}

	eng := engine.New(reg, store, logger)
	model := ui.New(eng, store, assets.NewStore(logger))

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// Handle signals: save before exiting.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		_ = store.Save()
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	_ = store.Save()
}

// setupLogging picks the log destination: an explicit file, stderr for
// headless runs, or a default file when the TUI owns the terminal.
func setupLogging(level, file string, headless bool) (*logging.Logger, func() error, error) {
	lvl := logging.ParseLevel(level)

	if file != "" {
		return openLogFile(file, lvl)
	}
	if headless {
		return logging.New(lvl), func() error { return nil }, nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return logging.Discard(), func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Join(dir, "ls-voyager"), 0o755); err != nil {
		return logging.Discard(), func() error { return nil }, nil
	}
	return openLogFile(filepath.Join(dir, "ls-voyager", "voyager.log"), lvl)
}

func openLogFile(path string, lvl logging.Level) (*logging.Logger, func() error, error) {
	l, closeFn, err := logging.NewFile(path, lvl)
	if err != nil {
		return nil, nil, err
	}
	return l, closeFn, nil
}

func defaultProfilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "voyager-profile.json"
	}
	return filepath.Join(dir, "ls-voyager", "profile.json")
}

// runHeadless serves the -summary / -snapshot-path / -watch modes.
func runHeadless(store *progress.Manager) {
	emit := func() {
		now := time.Now()
		snap := store.Snapshot()

		if snapshotPath != "" {
			export := progress.ExportSnapshot(snap, now)
			if snapshotPath == "-" {
				if err := export.WriteJSON(os.Stdout); err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				}
			} else if err := writeSnapshotFile(export); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
		if summaryMode {
			progress.WriteSummary(os.Stdout, snap, now)
			if beepMode && snap.PendingLanding && term.IsTerminal(int(os.Stdout.Fd())) {
				fmt.Print("\a")
			}
		}
	}

	emit()
	if watchInterval <= 0 {
		return
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			fmt.Println()
			emit()
		case <-sigCh:
			return
		}
	}
}

func writeSnapshotFile(export *progress.SnapshotExport) error {
	f, err := os.Create(snapshotPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return export.WriteJSON(f)
}
