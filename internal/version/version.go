// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Orbital trails, outline emphasis, scripted travel camera, side-on lock
// 0.2.0 - Travel animation batches, landing finalization, journey view
// 0.1.0 - Initial release: orbit camera, Keplerian ephemeris, map view, headless modes
