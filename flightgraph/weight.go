package flightgraph

// Weight selects which edge weight field a cost-based search minimizes.
type Weight int

const (
	// Price selects the ticket price weight. It is the default.
	Price Weight = iota

	// ElapsedTime selects the flight duration weight.
	ElapsedTime
)

// Of returns e's weight under the selector.
func (w Weight) Of(e *Edge) float64 {
	if w == ElapsedTime {
		return e.Time
	}

	return e.Price
}

// String returns the external tag for the weight selector.
func (w Weight) String() string {
	if w == ElapsedTime {
		return "time"
	}

	return "price"
}

// ParseWeight maps an external weight tag to a Weight selector. The
// tag "time" selects ElapsedTime; any other value selects Price.
func ParseWeight(tag string) Weight {
	if tag == "time" {
		return ElapsedTime
	}

	return Price
}
