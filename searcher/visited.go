package searcher

// visitSet is an insertion-ordered set of vertex names. The order is
// preserved so that trace snapshots can show visited airports in the
// order the search reached them.
type visitSet struct {
	members map[string]struct{}
	order   []string
}

func newVisitSet() *visitSet {
	return &visitSet{
		members: make(map[string]struct{}),
	}
}

func (s *visitSet) add(name string) {
	if _, exists := s.members[name]; exists {
		return
	}

	s.members[name] = struct{}{}
	s.order = append(s.order, name)
}

func (s *visitSet) contains(name string) bool {
	_, exists := s.members[name]

	return exists
}

// names returns an independent copy of the set members in insertion
// order, safe to retain in trace snapshots.
func (s *visitSet) names() []string {
	cp := make([]string, len(s.order))
	copy(cp, s.order)

	return cp
}
