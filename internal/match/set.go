package match

// Set is a string set that remembers insertion order. The matcher probes
// article numbers in a fixed order, so runs over the same input are
// deterministic.
type Set struct {
	order  []string
	member map[string]struct{}
}

func NewSet(values ...string) *Set {
	s := &Set{member: make(map[string]struct{})}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v and reports whether it was not already present.
func (s *Set) Add(v string) bool {
	if _, ok := s.member[v]; ok {
		return false
	}
	s.member[v] = struct{}{}
	s.order = append(s.order, v)
	return true
}

func (s *Set) Contains(v string) bool {
	_, ok := s.member[v]
	return ok
}

func (s *Set) Len() int {
	return len(s.order)
}

// Values returns the members in insertion order. The slice is a copy.
func (s *Set) Values() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
