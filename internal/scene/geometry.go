// Package scene owns per-body render state: surface-relative geometry,
// visibility, outline emphasis, and orbital trails.
package scene

import (
	"math"

	"github.com/litescript/ls-voyager/internal/astro"
)

// LandingClearance is how far short of a target's display surface the
// ship stops, in scene units. Keeps the hull from intersecting terrain.
const LandingClearance = 0.05

// friendLateralFactor scales a companion's in-flight lateral offset by
// the start body's visual radius.
const friendLateralFactor = 0.35

// SurfaceEndpoints returns the travel segment between two bodies as
// surface points, not centers: the launch point on the start body's
// display surface and the arrival point just above the target's.
//
// Coincident centers are degenerate; the centers come back unmodified.
func SurfaceEndpoints(startCenter astro.Vec3, startRadius float64, targetCenter astro.Vec3, targetRadius float64) (astro.Vec3, astro.Vec3) {
	dir := targetCenter.Sub(startCenter).Normalized()
	if dir == (astro.Vec3{}) {
		return startCenter, targetCenter
	}

	start := startCenter.Add(dir.Scale(startRadius))
	end := targetCenter.Sub(dir.Scale(targetRadius + LandingClearance))
	return start, end
}

// AimPosition returns the point just short of the target surface that a
// traveler at startCenter should orient toward. Identical to the arrival
// endpoint of SurfaceEndpoints; split out because aiming happens from
// positions that are not surface points.
func AimPosition(startCenter, targetCenter astro.Vec3, targetRadius float64) astro.Vec3 {
	dir := targetCenter.Sub(startCenter).Normalized()
	if dir == (astro.Vec3{}) {
		return targetCenter
	}
	return targetCenter.Sub(dir.Scale(targetRadius + LandingClearance))
}

// FriendSurfacePosAim places a companion traveler on the start body's
// surface at lateral angle theta from the travel axis, rotated by yaw
// about that axis, and returns its position and aim point. The aim leans
// toward the target so companions face roughly the same way as the ship.
func FriendSurfacePosAim(start, target astro.Vec3, startRadius, targetRadius, theta, yaw float64) (pos, aim astro.Vec3) {
	axis := target.Sub(start).Normalized()
	if axis == (astro.Vec3{}) {
		return start, target
	}

	u, _ := axis.Perpendiculars()
	posDir := axis.Scale(math.Cos(theta)).Add(u.Scale(math.Sin(theta)))
	posDir = posDir.RotateAbout(axis, yaw)

	pos = start.Add(posDir.Scale(startRadius))
	aim = AimPosition(pos, target, targetRadius)
	return pos, aim
}

// FriendTravelPosAim offsets an in-flight base position laterally by
// 0.35x the start body's visual radius, along a perpendicular basis
// vector selected by theta, and aims along the primary travel axis.
func FriendTravelPosAim(start, target, base astro.Vec3, startRadius, theta float64) (pos, aim astro.Vec3) {
	axis := target.Sub(start).Normalized()
	if axis == (astro.Vec3{}) {
		return base, target
	}

	u, w := axis.Perpendiculars()
	lateral := u.Scale(math.Cos(theta)).Add(w.Scale(math.Sin(theta)))

	pos = base.Add(lateral.Scale(friendLateralFactor * startRadius))
	aim = pos.Add(axis)
	return pos, aim
}

// PixelRadius returns a body's apparent on-screen radius in pixels given
// its scene-unit visual radius, its distance from the camera, the
// camera's vertical field of view, and the viewport height.
func PixelRadius(visualRadius, distance, fovRad float64, viewportHeightPx int) float64 {
	if distance <= 0 || fovRad <= 0 {
		return 0
	}
	return visualRadius / (2 * distance * math.Tan(fovRad/2)) * float64(viewportHeightPx)
}
