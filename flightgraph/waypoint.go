package flightgraph

// Waypoint is a node in a search tree. It captures the vertex it
// represents, the waypoint it was reached from and the cost accumulated
// along the way (hop count or summed edge weight, depending on the
// search variant). Waypoints are never mutated after construction:
// trace snapshots and terminal results may safely share them.
type Waypoint struct {
	vertex *Vertex
	parent *Waypoint
	cost   float64
}

// NewWaypoint creates a waypoint for vertex v reached from parent at
// the given accumulated cost. A nil parent marks the root of the
// search tree.
func NewWaypoint(v *Vertex, parent *Waypoint, cost float64) *Waypoint {
	return &Waypoint{
		vertex: v,
		parent: parent,
		cost:   cost,
	}
}

// Vertex returns the airport this waypoint represents.
func (w *Waypoint) Vertex() *Vertex {
	return w.vertex
}

// Parent returns the waypoint this waypoint was reached from, or nil
// for the root of the search tree.
func (w *Waypoint) Parent() *Waypoint {
	return w.parent
}

// Cost returns the cost accumulated between the search tree root and
// this waypoint.
func (w *Waypoint) Cost() float64 {
	return w.cost
}

// Path walks the parent back-references up to the root of the search
// tree and returns the ordered vertex sequence from the start vertex
// to this waypoint, inclusive.
func (w *Waypoint) Path() []*Vertex {
	var path []*Vertex
	for wp := w; wp != nil; wp = wp.parent {
		path = append(path, wp.vertex)
	}

	// Reverse the path in place to order it start -> this waypoint.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
