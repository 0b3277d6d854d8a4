package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Search computes a shortest path from start to end on g.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (grid.ErrNilGrid).
//  3. Endpoints must be on the board, distinct and not obstacles.
//
// Returns the interior path, its total cost and the number of settled cells,
// or an error wrapping grid.ErrUnreachable when no path exists. No partial
// result is returned on failure. g is never modified.
func Search(g *grid.Grid, start, end grid.Coord, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if err := grid.ValidateEndpoints(g, start, end); err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}

	r := newRunner(g, start, end, cfg)
	r.init()
	found, err := r.process()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("dijkstra: %w: %v→%v after %d settled cells", grid.ErrUnreachable, start, end, r.settled)
	}

	return &Result{
		Path:    r.interior(),
		Cost:    r.dist[r.end],
		Settled: r.settled,
	}, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	geo     *grid.Grid // geometry only; cell states are read once in newRunner
	opts    Options
	start   int
	end     int
	dist    []float64       // best known distance per cell
	prev    []int           // predecessor per cell, -1 if none
	visited []bool          // settled
	blocked []bool          // obstacle snapshot
	queued  []*frontierItem // frontier entry per cell, nil if not queued
	pq      frontier
	seq     uint64
	settled int
}

func newRunner(g *grid.Grid, start, end grid.Coord, opts Options) *runner {
	n := g.Size() * g.Size()
	r := &runner{
		geo:     g,
		opts:    opts,
		start:   g.Index(start),
		end:     g.Index(end),
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		blocked: make([]bool, n),
		queued:  make([]*frontierItem, n),
		pq:      make(frontier, 0, g.Size()*4),
	}
	for i := 0; i < n; i++ {
		s, _ := g.At(g.Coordinate(i))
		r.blocked[i] = s == grid.Obstacle
	}

	return r
}

// init sets every distance to +∞ except the start, and seeds the frontier.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = -1
	}
	r.dist[r.start] = 0
	heap.Init(&r.pq)
	r.enqueue(r.start)
}

// process settles cells until the goal is settled or the frontier empties.
func (r *runner) process() (bool, error) {
	for r.pq.Len() > 0 {
		if err := r.opts.Ctx.Err(); err != nil {
			return false, err
		}
		item := heap.Pop(&r.pq).(*frontierItem)
		u := item.cell
		r.queued[u] = nil

		if item.dist > r.opts.MaxDistance {
			return false, nil
		}
		r.visited[u] = true
		r.settled++
		if r.opts.OnSettle != nil {
			r.opts.OnSettle(r.geo.Coordinate(u), item.dist)
		}
		if u == r.end {
			return true, nil
		}
		r.relax(u)
	}

	return false, nil
}

// relax improves the distance of every open, unsettled neighbour of u.
func (r *runner) relax(u int) {
	from := r.geo.Coordinate(u)
	for _, d := range grid.Offsets {
		to := from.Add(d)
		if !r.geo.InBounds(to) {
			continue
		}
		v := r.geo.Index(to)
		if r.visited[v] || r.blocked[v] {
			continue
		}
		w := 1.0
		if d.X != 0 && d.Y != 0 {
			w = math.Sqrt2
		}
		nd := r.dist[u] + w
		if nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		r.enqueue(v)
	}
}

// enqueue inserts v, or moves it to its new position with a fresh sequence
// number when it is already queued.
func (r *runner) enqueue(v int) {
	r.seq++
	if it := r.queued[v]; it != nil {
		it.dist = r.dist[v]
		it.seq = r.seq
		heap.Fix(&r.pq, it.index)
		return
	}
	it := &frontierItem{cell: v, dist: r.dist[v], seq: r.seq}
	heap.Push(&r.pq, it)
	r.queued[v] = it
}

// interior rebuilds start→end through prev and drops both endpoints.
func (r *runner) interior() []grid.Coord {
	var chain []int
	for at := r.end; at >= 0; at = r.prev[at] {
		chain = append(chain, at)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	path := make([]grid.Coord, 0, len(chain))
	for _, idx := range chain[1 : len(chain)-1] {
		path = append(path, r.geo.Coordinate(idx))
	}

	return path
}

// frontierItem is one queued cell.
type frontierItem struct {
	cell  int
	dist  float64
	seq   uint64 // insertion order, refreshed on decrease-key
	index int    // position in the heap
}

// frontier is a min-heap of *frontierItem ordered by (dist, seq).
type frontier []*frontierItem

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq frontier) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *frontier) Push(x interface{}) {
	it := x.(*frontierItem)
	it.index = len(*pq)
	*pq = append(*pq, it)
}

func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*pq = old[:n-1]

	return it
}
