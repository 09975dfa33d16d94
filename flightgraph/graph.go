/*
	flightgraph package defines the flight network data model: airports
	(vertices), directed flights (edges) and the graph container that
	owns them. The package holds no search logic; it only provides the
	adjacency structure the search variants traverse.
*/

package flightgraph

import "fmt"

// Vertex represents a single airport in the flight network.
type Vertex struct {
	// Name uniquely identifies the airport within a graph.
	Name string

	// ID is the vertex's build-order index. Renderers use it to look up
	// display positions; the search algorithms never read it.
	ID int

	edges []*Edge
}

// Edges returns the vertex's outgoing edges in insertion order. The
// returned slice is shared with the vertex and must be treated as
// read-only by callers.
func (v *Vertex) Edges() []*Edge {
	return v.edges
}

// EdgeTo returns the first outgoing edge that terminates at dst, or
// false when no such edge exists.
func (v *Vertex) EdgeTo(dst *Vertex) (*Edge, bool) {
	for _, e := range v.edges {
		if e.To == dst {
			return e, true
		}
	}

	return nil, false
}

// Edge represents a directed flight from one airport to another. Flight
// connections are undirected in the source data, so edges are always
// created in symmetric pairs carrying identical weights.
type Edge struct {
	From *Vertex
	To   *Vertex

	// Time is the flight duration weight.
	Time float64

	// Price is the ticket price weight.
	Price float64
}

// Graph owns the set of airports that make up the flight network. Once
// built, a graph is read-only from the perspective of the search
// variants: they only follow edges, they never mutate adjacency.
type Graph struct {
	vertices []*Vertex
	byName   map[string]*Vertex
}

// New creates an empty flight graph.
func New() *Graph {
	return &Graph{
		byName: make(map[string]*Vertex),
	}
}

// AddVertex appends a new airport to the graph and assigns it the next
// build-order ID. Airport names must be unique within a graph.
func (g *Graph) AddVertex(name string) (*Vertex, error) {
	if _, exists := g.byName[name]; exists {
		return nil, fmt.Errorf("add vertex %q: %w", name, ErrDuplicateVertex)
	}

	v := &Vertex{
		Name: name,
		ID:   len(g.vertices),
	}

	g.vertices = append(g.vertices, v)
	g.byName[name] = v

	return v, nil
}

// AddUndirectedEdge records a flight connection between a and b by
// appending an a->b edge and a b->a edge, each carrying the provided
// weights. Negative weights are rejected since the cost-based search
// variant is only correct for non-negative weights.
func (g *Graph) AddUndirectedEdge(a, b *Vertex, time, price float64) error {
	if time < 0 || price < 0 {
		return fmt.Errorf("edge %s - %s: %w", a.Name, b.Name, ErrNegativeWeight)
	}

	a.edges = append(a.edges, &Edge{From: a, To: b, Time: time, Price: price})
	b.edges = append(b.edges, &Edge{From: b, To: a, Time: time, Price: price})

	return nil
}

// VertexByName performs an airport lookup by name.
func (g *Graph) VertexByName(name string) (*Vertex, error) {
	v, exists := g.byName[name]
	if !exists {
		return nil, fmt.Errorf("vertex lookup %q: %w", name, ErrNotFound)
	}

	return v, nil
}

// Vertices returns the graph's airports in build order. The returned
// slice is shared with the graph and must be treated as read-only.
func (g *Graph) Vertices() []*Vertex {
	return g.vertices
}

// Route is a positional flight record used as graph build input. From
// and To reference the airport name list by position.
type Route struct {
	From  int
	To    int
	Time  float64
	Price float64
}

// Build assembles a flight graph from an ordered airport name list and
// a set of positional route records.
func Build(names []string, routes []Route) (*Graph, error) {
	g := New()

	for _, name := range names {
		if _, err := g.AddVertex(name); err != nil {
			return nil, err
		}
	}

	for _, r := range routes {
		if r.From < 0 || r.From >= len(g.vertices) {
			return nil, fmt.Errorf("route airport index %d: %w", r.From, ErrNotFound)
		}
		if r.To < 0 || r.To >= len(g.vertices) {
			return nil, fmt.Errorf("route airport index %d: %w", r.To, ErrNotFound)
		}

		err := g.AddUndirectedEdge(g.vertices[r.From], g.vertices[r.To], r.Time, r.Price)
		if err != nil {
			return nil, err
		}
	}

	return g, nil
}
