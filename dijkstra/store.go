package dijkstra

// Funcs adapts four plain functions into a Traversal, for callers that would
// rather not declare a type. Every field must be set.
type Funcs[P comparable, B any, D Distance] struct {
	NeighboursFn   func(p P, b B) []Edge[P, D]
	IsImpossibleFn func(p P) bool
	DistFn         func(p P) (D, bool)
	SetDistFn      func(p P, d D)
}

// Neighbours implements Traversal.
func (f Funcs[P, B, D]) Neighbours(p P, b B) []Edge[P, D] { return f.NeighboursFn(p, b) }

// IsImpossible implements Traversal.
func (f Funcs[P, B, D]) IsImpossible(p P) bool { return f.IsImpossibleFn(p) }

// Dist implements Traversal.
func (f Funcs[P, B, D]) Dist(p P) (D, bool) { return f.DistFn(p) }

// SetDist implements Traversal.
func (f Funcs[P, B, D]) SetDist(p P, d D) { f.SetDistFn(p, d) }

// MapStore is a sparse distance store keyed by point. Unlike a dense grid it
// accepts any point, so Neighbours may yield points with no bounds at all.
// The zero value is not usable; call NewMapStore.
type MapStore[P comparable, D Distance] struct {
	m map[P]D
}

// NewMapStore returns an empty store with room for sizeHint points.
func NewMapStore[P comparable, D Distance](sizeHint int) *MapStore[P, D] {
	return &MapStore[P, D]{m: make(map[P]D, sizeHint)}
}

// Dist returns the stored distance of p.
func (s *MapStore[P, D]) Dist(p P) (D, bool) {
	d, ok := s.m[p]
	return d, ok
}

// SetDist records d for p.
func (s *MapStore[P, D]) SetDist(p P, d D) { s.m[p] = d }

// Len is the number of discovered points.
func (s *MapStore[P, D]) Len() int { return len(s.m) }

// Reset forgets every distance so the store can back a fresh search.
func (s *MapStore[P, D]) Reset() { clear(s.m) }

// Each calls fn for every discovered point, in no particular order.
func (s *MapStore[P, D]) Each(fn func(p P, d D)) {
	for p, d := range s.m {
		fn(p, d)
	}
}
