// Package dijkstra implements Dijkstra's shortest-path algorithm over implicit
// graphs described by a Traversal.
//
// Run computes the minimum-cost distance from one source to every reachable
// point, writing results into the caller's distance store. It processes points
// in order of increasing distance using a min-heap priority queue.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each successful relaxation pushes one entry: up to E pushes.
//   - Each heap operation (Push/Pop) costs O(log N), N ≤ V + E.
//   - Space: O(E) worst-case heap entries under “lazy-decrease-key”.
//     Distances live in the caller's store, not here.
//
// Notes on implementation choices:
//
//   - There is no decrease-key. An improved point is pushed again and the older
//     entry is recognised as stale when popped (its distance no longer matches).
//   - A point for which IsImpossible reports true has infinite entry cost and is
//     never relaxed.
//   - Sums that would overflow D are treated as infinite, never wrapped.
//   - There is no target: the full single-source map is always computed.
package dijkstra

import (
	"container/heap"
)

// Run explores outward from source and leaves the minimum distance of every
// reachable point in t. Points that cannot be reached keep no distance.
//
// The source is seeded with initial unless t already holds a distance for it
// that is not larger; in that case the stored value is used. Calling Run twice
// with the same arguments on an unmodified store therefore changes nothing.
//
// Panics with ErrNilTraversal's message if t is nil.
func Run[P comparable, B any, D Distance](t Traversal[P, B, D], source P, initial D, bounds B, opts ...Option[P, D]) Stats {
	if t == nil {
		panic(ErrNilTraversal.Error())
	}

	cfg := DefaultOptions[P, D]()
	var opt Option[P, D]
	for _, opt = range opts {
		opt(&cfg)
	}

	r := &runner[P, B, D]{
		t:       t,
		bounds:  bounds,
		options: cfg,
		pq:      make(entryPQ[P, D], 0, cfg.InitialCapacity),
	}
	r.init(source, initial)
	r.process()

	return r.stats
}

// runner holds the mutable state for a single Run.
type runner[P comparable, B any, D Distance] struct {
	t       Traversal[P, B, D]
	bounds  B
	options Options[P, D]
	pq      entryPQ[P, D]
	stats   Stats
}

// init seeds the source distance and pushes it onto the heap.
func (r *runner[P, B, D]) init(source P, initial D) {
	start := initial
	if d, ok := r.t.Dist(source); ok && d <= initial {
		start = d
	} else {
		r.t.SetDist(source, initial)
	}

	heap.Init(&r.pq)
	r.push(source, start)
}

// process is the main loop: pop the closest entry, drop it if stale,
// otherwise relax its outgoing edges. Ends when the heap is empty.
func (r *runner[P, B, D]) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*entry[P, D])
		r.stats.Popped++

		if best, ok := r.t.Dist(item.point); ok && best < item.dist {
			r.stats.Stale++
			continue
		}

		r.relax(item.point, item.dist)
	}
}

// relax tries every edge leaving u, whose distance is d.
func (r *runner[P, B, D]) relax(u P, d D) {
	var e Edge[P, D]
	for _, e = range r.t.Neighbours(u, r.bounds) {
		if r.t.IsImpossible(e.To) {
			continue
		}

		nd := d + e.Cost
		if nd < d {
			// wrapped: treat as +inf
			continue
		}
		if r.options.HasMaxDistance && nd > r.options.MaxDistance {
			continue
		}

		old, hadOld := r.t.Dist(e.To)
		if hadOld && nd >= old {
			continue
		}

		r.t.SetDist(e.To, nd)
		r.stats.Relaxed++
		if r.options.OnRelax != nil {
			r.options.OnRelax(e.To, old, hadOld, nd)
		}
		r.push(e.To, nd)
	}
}

func (r *runner[P, B, D]) push(p P, d D) {
	heap.Push(&r.pq, &entry[P, D]{point: p, dist: d})
	r.stats.Pushed++
	if n := r.pq.Len(); n > r.stats.MaxQueue {
		r.stats.MaxQueue = n
	}
}

// entry is a (point, distance) pair stored in the priority queue.
type entry[P comparable, D Distance] struct {
	point P
	dist  D
}

// entryPQ is a min-heap of *entry ordered by dist ascending. Ties are broken
// by whatever container/heap happens to do.
type entryPQ[P comparable, D Distance] []*entry[P, D]

// Len returns the number of items in the heap.
func (pq entryPQ[P, D]) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq entryPQ[P, D]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq entryPQ[P, D]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. x must be *entry[P, D].
func (pq *entryPQ[P, D]) Push(x any) { *pq = append(*pq, x.(*entry[P, D])) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *entryPQ[P, D]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
