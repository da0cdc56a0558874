// Package sparse provides a sparse set over automaton state ids.
//
// Subset construction repeatedly computes epsilon closures and symbol
// moves over sets of NFA states. A sparse set gives O(1) insertion and
// membership testing plus a dense slice for iteration, and clears in
// O(1), so one set can be reused across the whole determinization.
package sparse

// Set is a set of uint32 state ids.
//
// It keeps a sparse array mapping an id to its position in a dense
// array of members. The universe (maximum storable id, exclusive) is
// fixed at construction; inserting an id outside it panics on the
// slice index.
type Set struct {
	sparse []uint32
	dense  []uint32
}

// NewSet creates an empty set able to hold ids in [0, universe).
func NewSet(universe uint32) *Set {
	return &Set{
		sparse: make([]uint32, universe),
		dense:  make([]uint32, 0, universe),
	}
}

// Insert adds an id to the set. No-op if already present.
func (s *Set) Insert(id uint32) {
	if s.Contains(id) {
		return
	}
	s.sparse[id] = uint32(len(s.dense))
	s.dense = append(s.dense, id)
}

// Contains returns true if the id is in the set.
func (s *Set) Contains(id uint32) bool {
	if id >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[id]
	return idx < uint32(len(s.dense)) && s.dense[idx] == id
}

// Len returns the number of ids in the set.
func (s *Set) Len() int {
	return len(s.dense)
}

// Clear removes all ids in O(1), retaining capacity.
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Values returns the members in insertion order.
// The slice is valid until the next mutation.
func (s *Set) Values() []uint32 {
	return s.dense
}
