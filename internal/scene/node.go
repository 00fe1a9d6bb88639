package scene

import (
	"github.com/litescript/ls-voyager/internal/astro"
)

// TrailPoint is one sampled vertex of an orbital trail. Pos is either
// absolute scene space (top-level bodies) or parent-relative (moons);
// see VisualNode.TrailRelative.
type TrailPoint struct {
	Pos   astro.Vec3
	Alpha float64 // 0 (invisible) .. trail max alpha (newest)
}

// VisualNode is the mutable per-body render state. Nodes are owned by
// the node registry and mutated only during the engine's frame pass.
type VisualNode struct {
	Name string

	// Updated every frame
	Pos     astro.Vec3 // scene-space display position
	Radius  float64    // scene-space display radius
	Visible bool

	// Outline emphasis
	Outline        float64 // smoothed intensity in [0,1]
	OutlineEnabled bool    // false below the minimum-intensity threshold

	// Trail geometry, rebuilt lazily
	Trail         []TrailPoint
	TrailRelative bool       // points are offsets from TrailOrigin
	TrailOrigin   astro.Vec3 // parent's current visual position (moons)
	TrailAnchor   astro.Vec3 // body position at last rebuild
	hasTrail      bool

	disposed bool
}

// HasTrail reports whether trail geometry has been built.
func (n *VisualNode) HasTrail() bool {
	return n.hasTrail
}

// Dispose releases the node's geometry. Safe to call more than once.
func (n *VisualNode) Dispose() {
	if n.disposed {
		return
	}
	n.disposed = true
	n.Trail = nil
	n.hasTrail = false
	n.Visible = false
	n.Outline = 0
	n.OutlineEnabled = false
}

// Disposed reports whether the node has been torn down.
func (n *VisualNode) Disposed() bool {
	return n.disposed
}

// NodeRegistry owns the visual nodes, keyed by body name. Entries are
// created lazily when a body first enters the renderable set and
// disposed exactly once at teardown.
type NodeRegistry struct {
	nodes map[string]*VisualNode
	order []string
}

// NewNodeRegistry creates an empty node registry.
func NewNodeRegistry() *NodeRegistry {
	return &NodeRegistry{nodes: make(map[string]*VisualNode)}
}

// Node returns the node for a body, creating it on first use.
func (r *NodeRegistry) Node(name string) *VisualNode {
	if n, ok := r.nodes[name]; ok {
		return n
	}
	n := &VisualNode{Name: name}
	r.nodes[name] = n
	r.order = append(r.order, name)
	return n
}

// Lookup returns an existing node without creating one.
func (r *NodeRegistry) Lookup(name string) (*VisualNode, bool) {
	n, ok := r.nodes[name]
	return n, ok
}

// All returns all nodes in creation order.
func (r *NodeRegistry) All() []*VisualNode {
	out := make([]*VisualNode, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.nodes[name])
	}
	return out
}

// DisposeAll disposes every node. Idempotent.
func (r *NodeRegistry) DisposeAll() {
	for _, n := range r.nodes {
		n.Dispose()
	}
}
