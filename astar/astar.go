package astar

import (
	"fmt"
	"math"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
)

// node is one open-set entry. Entries are never updated in place.
type node struct {
	cell int
	g, f float64
	seq  uint64
}

func lessNode(a, b node) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.seq < b.seq
}

type searcher struct {
	geo     *grid.Grid
	opts    Options
	h       heuristic.Func
	start   int
	end     int
	goal    grid.Coord
	gScore  []float64
	prev    []int
	blocked []bool
	open    *heap.Heap[node]
	closed  mapset.Set[int]
	seq     uint64
}

// Search runs A* from start to end on g.
// It returns an error wrapping grid.ErrUnreachable when the open set empties
// before the goal is expanded, and ctx.Err() on cancellation.
// g is never modified.
func Search(g *grid.Grid, start, end grid.Coord, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := grid.ValidateEndpoints(g, start, end); err != nil {
		return nil, fmt.Errorf("astar: %w", err)
	}

	s := newSearcher(g, start, end, o)
	found, err := s.run()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("astar: %w: %v→%v after %d expansions", grid.ErrUnreachable, start, end, s.closed.Size())
	}

	return &Result{
		Path:     s.interior(),
		Cost:     s.gScore[s.end],
		Expanded: s.closed.Size(),
	}, nil
}

func newSearcher(g *grid.Grid, start, end grid.Coord, o Options) *searcher {
	n := g.Size() * g.Size()
	s := &searcher{
		geo:     g,
		opts:    o,
		h:       o.Heuristic.Func(),
		start:   g.Index(start),
		end:     g.Index(end),
		goal:    end,
		gScore:  make([]float64, n),
		prev:    make([]int, n),
		blocked: make([]bool, n),
		open:    heap.New[node](lessNode),
		closed:  mapset.New[int](),
	}
	for i := range s.gScore {
		s.gScore[i] = math.Inf(1)
		s.prev[i] = -1
		st, _ := g.At(g.Coordinate(i))
		s.blocked[i] = st == grid.Obstacle
	}
	s.gScore[s.start] = 0
	s.push(s.start, 0)

	return s
}

func (s *searcher) push(cell int, g float64) {
	s.seq++
	s.open.Push(node{cell: cell, g: g, f: g + s.h(s.geo.Coordinate(cell), s.goal), seq: s.seq})
}

// run expands cells until the goal is closed or the open set is empty.
func (s *searcher) run() (bool, error) {
	for s.open.Size() > 0 {
		if err := s.opts.Ctx.Err(); err != nil {
			return false, err
		}
		cur, _ := s.open.Pop()
		if s.closed.Has(cur.cell) || cur.g > s.gScore[cur.cell] {
			continue // stale
		}
		s.closed.Put(cur.cell)
		if s.opts.OnExpand != nil {
			s.opts.OnExpand(s.geo.Coordinate(cur.cell), cur.g, cur.f)
		}
		if cur.cell == s.end {
			return true, nil
		}
		s.expand(cur)
	}

	return false, nil
}

func (s *searcher) expand(cur node) {
	from := s.geo.Coordinate(cur.cell)
	for _, d := range grid.Offsets {
		to := from.Add(d)
		if !s.geo.InBounds(to) {
			continue
		}
		v := s.geo.Index(to)
		if s.blocked[v] || s.closed.Has(v) {
			continue
		}
		w := 1.0
		if d.X != 0 && d.Y != 0 {
			w = math.Sqrt2
		}
		tentative := cur.g + w
		if tentative >= s.gScore[v] {
			continue
		}
		s.gScore[v] = tentative
		s.prev[v] = cur.cell
		s.push(v, tentative)
	}
}

// interior walks prev back from the goal and returns the cells strictly
// between start and end, in travel order.
func (s *searcher) interior() []grid.Coord {
	var rev []grid.Coord
	for at := s.prev[s.end]; at >= 0 && at != s.start; at = s.prev[at] {
		rev = append(rev, s.geo.Coordinate(at))
	}
	path := make([]grid.Coord, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}

	return path
}
