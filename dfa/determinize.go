package dfa

import (
	"github.com/coregx/redfa/internal/graph"
	"github.com/coregx/redfa/internal/sparse"
	"github.com/coregx/redfa/nfa"
)

// Config bounds determinization.
type Config struct {
	// MaxStates caps the number of DFA states (0 = unlimited).
	// Subset construction is worst-case exponential in the NFA size;
	// exceeding the cap surfaces graph.ErrCapacity from Determinize.
	MaxStates uint32

	// DeterminizationLimit caps the number of NFA states in a single
	// subset (0 = unlimited). Exceeding it also surfaces
	// graph.ErrCapacity.
	DeterminizationLimit int
}

// DefaultConfig returns bounds suitable for typical patterns.
func DefaultConfig() Config {
	return Config{
		MaxStates:            10_000,
		DeterminizationLimit: 1_000,
	}
}

// Determinize converts an NFA into an equivalent DFA using default
// bounds.
func Determinize(n *nfa.NFA) (*DFA, error) {
	return DeterminizeWithConfig(n, DefaultConfig())
}

// DeterminizeWithConfig converts an NFA into an equivalent DFA.
//
// The DFA start state is the epsilon-closure of the NFA start state.
// A worklist of unprocessed subsets is drained: for each subset and
// each alphabet symbol, the symbol-move of the subset is computed and
// epsilon-closed; an empty result adds no transition (implicit
// reject), a known result reuses its DFA state, a new result is
// assigned the next state id and enqueued. A DFA state accepts iff its
// subset contains the NFA accept state.
//
// Termination follows from materializing only reachable subsets of a
// finite state set; the configured bounds cut off pathological
// blow-ups with graph.ErrCapacity.
func DeterminizeWithConfig(n *nfa.NFA, cfg Config) (*DFA, error) {
	d := &determinizer{
		nfa: n,
		cfg: cfg,
		g:   graph.New(cfg.MaxStates),
		// seen maps a canonical subset key to its DFA state,
		// collapsing duplicate subsets.
		seen: make(map[string]graph.NodeID),
		set:  sparse.NewSet(uint32(n.States())),
	}
	if err := d.run(); err != nil {
		return nil, err
	}
	return &DFA{g: d.g, start: 0, accept: d.accept}, nil
}

// subsetState is a DFA state awaiting processing, with the sorted NFA
// state ids it represents.
type subsetState struct {
	id  graph.NodeID
	ids []uint32
}

type determinizer struct {
	nfa    *nfa.NFA
	cfg    Config
	g      *graph.Graph
	seen   map[string]graph.NodeID
	accept []bool

	// set is the scratch sparse set reused for every closure and move
	// computation.
	set *sparse.Set

	worklist []subsetState
}

func (d *determinizer) run() error {
	// Seed with the closure of the NFA start state; it becomes DFA
	// state 0.
	d.set.Clear()
	d.set.Insert(uint32(d.nfa.Start()))
	d.closure()
	if _, err := d.intern(); err != nil {
		return err
	}

	alphabet := d.nfa.Alphabet()
	for len(d.worklist) > 0 {
		cur := d.worklist[len(d.worklist)-1]
		d.worklist = d.worklist[:len(d.worklist)-1]

		for _, sym := range alphabet {
			d.move(cur.ids, sym)
			if d.set.Len() == 0 {
				continue
			}
			d.closure()
			target, err := d.intern()
			if err != nil {
				return err
			}
			d.g.AddEdge(cur.id, graph.ByteLabel(sym), target)
		}
	}
	return nil
}

// move fills the scratch set with the NFA states reachable from any id
// in the subset by one transition on sym.
func (d *determinizer) move(ids []uint32, sym byte) {
	g := d.nfa.Graph()
	label := graph.ByteLabel(sym)
	d.set.Clear()
	for _, id := range ids {
		for _, e := range g.Edges(graph.NodeID(id)) {
			if e.Label == label {
				d.set.Insert(uint32(e.To))
			}
		}
	}
}

// closure expands the scratch set in place to its epsilon-closure.
// The sparse set doubles as the visited set: members already present
// are never re-expanded, so epsilon cycles terminate.
func (d *determinizer) closure() {
	g := d.nfa.Graph()
	// Values grows as we insert; index iteration doubles as the stack.
	for i := 0; i < d.set.Len(); i++ {
		id := d.set.Values()[i]
		for _, e := range g.Edges(graph.NodeID(id)) {
			if e.Label == graph.Epsilon {
				d.set.Insert(uint32(e.To))
			}
		}
	}
}

// intern returns the DFA state for the subset in the scratch set,
// creating and enqueueing it if the subset is new.
func (d *determinizer) intern() (graph.NodeID, error) {
	if limit := d.cfg.DeterminizationLimit; limit > 0 && d.set.Len() > limit {
		return graph.InvalidNode, graph.ErrCapacity
	}

	ids := make([]uint32, d.set.Len())
	copy(ids, d.set.Values())
	sortIDs(ids)

	key := subsetKey(ids)
	if id, ok := d.seen[key]; ok {
		return id, nil
	}

	id, err := d.g.AddNode()
	if err != nil {
		return graph.InvalidNode, err
	}
	d.seen[key] = id
	d.accept = append(d.accept, containsID(ids, uint32(d.nfa.Accept())))
	d.worklist = append(d.worklist, subsetState{id: id, ids: ids})
	return id, nil
}

// subsetKey encodes sorted ids as a byte string. Unlike a hash, the
// key is exact: distinct subsets can never collide and silently merge
// DFA states.
func subsetKey(ids []uint32) string {
	buf := make([]byte, 0, len(ids)*4)
	for _, id := range ids {
		buf = append(buf, byte(id), byte(id>>8), byte(id>>16), byte(id>>24))
	}
	return string(buf)
}

// sortIDs performs insertion sort. Subsets are typically small and
// nearly sorted, making this cheaper than sort.Slice.
func sortIDs(ids []uint32) {
	for i := 1; i < len(ids); i++ {
		key := ids[i]
		j := i - 1
		for j >= 0 && ids[j] > key {
			ids[j+1] = ids[j]
			j--
		}
		ids[j+1] = key
	}
}

func containsID(ids []uint32, id uint32) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
