// Package compose builds conversion functions between named nodes from a
// sparse set of directed edges.
//
// Each edge carries a function from its source node to its destination
// node. Build runs Floyd–Warshall over hop counts and, whenever a strictly
// shorter path through an intermediate node is found, stores the
// composition of the two shorter functions. The result answers Convert for
// every reachable pair with the fewest-hop chain of edge functions.
//
// Ties between equally short chains are resolved by discovery order: the
// first chain found in the fixed k, i, j iteration order is kept and never
// replaced by a later chain of the same length. Node ids follow first
// appearance in the edge list, so the chosen chain depends only on the
// order edges were given.
package compose

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"
)

var (
	// ErrNoComposition is returned when no chain of edges joins two nodes,
	// or when either node was never registered.
	ErrNoComposition = errors.New("compose: composition does not exist")

	// ErrNilFunc is returned by Build for an edge without a function.
	ErrNilFunc = errors.New("compose: edge has nil function")
)

// Func converts a value. Errors stop a composed chain.
type Func[T any] func(T) (T, error)

// Edge is a directed conversion from Src to Dst.
type Edge[K comparable, T any] struct {
	Fn  Func[T]
	Src K
	Dst K
}

// Compose returns a function applying fns left to right.
func Compose[T any](fns ...Func[T]) Func[T] {
	return func(v T) (T, error) {
		var err error
		for _, f := range fns {
			if v, err = f(v); err != nil {
				return v, err
			}
		}
		return v, nil
	}
}

// Identity returns its input unchanged.
func Identity[T any](v T) (T, error) { return v, nil }

// Option configures Build.
type Option func(*options)

type options struct {
	logger hclog.Logger
}

// WithLogger sets the logger used to trace path relaxations.
func WithLogger(l hclog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Graph holds the composed function for every reachable node pair.
// It is immutable once built and safe for concurrent use.
type Graph[K comparable, T any] struct {
	ids   map[K]int
	nodes []K
	cost  [][]int
	fns   [][]Func[T]
	route [][][]K
}

// Build assigns each node a dense id, seeds direct edges with cost 1 and
// self loops with cost 0 (identity), then relaxes all pairs.
//
// Unreachable pairs keep the sentinel cost n, which is larger than any real
// path length (at most n-1). A later edge for an already registered pair
// replaces the earlier one.
func Build[K comparable, T any](edges []Edge[K, T], opts ...Option) (*Graph[K, T], error) {
	o := options{logger: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	g := &Graph[K, T]{ids: make(map[K]int)}
	for i, e := range edges {
		if e.Fn == nil {
			return nil, fmt.Errorf("Build: edge %d (%v -> %v): %w", i, e.Src, e.Dst, ErrNilFunc)
		}
		g.add(e.Src)
		g.add(e.Dst)
	}

	n := len(g.nodes)
	g.cost = make([][]int, n)
	g.fns = make([][]Func[T], n)
	g.route = make([][][]K, n)
	for i := 0; i < n; i++ {
		g.cost[i] = make([]int, n)
		g.fns[i] = make([]Func[T], n)
		g.route[i] = make([][]K, n)
		for j := 0; j < n; j++ {
			g.cost[i][j] = n
		}
	}
	for _, e := range edges {
		i, j := g.ids[e.Src], g.ids[e.Dst]
		g.cost[i][j] = 1
		g.fns[i][j] = e.Fn
		g.route[i][j] = []K{e.Src, e.Dst}
	}
	for i, node := range g.nodes {
		g.cost[i][i] = 0
		g.fns[i][i] = Identity[T]
		g.route[i][i] = []K{node}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				c := g.cost[i][k] + g.cost[k][j]
				if c >= g.cost[i][j] {
					continue
				}
				g.cost[i][j] = c
				g.fns[i][j] = Compose(g.fns[i][k], g.fns[k][j])
				g.route[i][j] = joinRoute(g.route[i][k], g.route[k][j])
				o.logger.Trace("composed conversion",
					"from", g.nodes[i], "to", g.nodes[j], "via", g.nodes[k], "hops", c)
			}
		}
	}

	o.logger.Debug("conversion graph built", "nodes", n, "edges", len(edges))
	return g, nil
}

func (g *Graph[K, T]) add(node K) {
	if _, ok := g.ids[node]; ok {
		return
	}
	g.ids[node] = len(g.nodes)
	g.nodes = append(g.nodes, node)
}

// joinRoute concatenates two routes that share their middle node.
func joinRoute[K any](a, b []K) []K {
	out := make([]K, 0, len(a)+len(b)-1)
	out = append(out, a...)
	return append(out, b[1:]...)
}

// lookup returns the dense ids for a reachable pair.
func (g *Graph[K, T]) lookup(src, dst K) (int, int, error) {
	i, ok := g.ids[src]
	if !ok {
		return 0, 0, fmt.Errorf("%v -> %v: unknown source: %w", src, dst, ErrNoComposition)
	}
	j, ok := g.ids[dst]
	if !ok {
		return 0, 0, fmt.Errorf("%v -> %v: unknown destination: %w", src, dst, ErrNoComposition)
	}
	if g.fns[i][j] == nil {
		return 0, 0, fmt.Errorf("%v -> %v: %w", src, dst, ErrNoComposition)
	}
	return i, j, nil
}

// Convert applies the composed function for (src, dst) to v.
func (g *Graph[K, T]) Convert(v T, src, dst K) (T, error) {
	i, j, err := g.lookup(src, dst)
	if err != nil {
		var zero T
		return zero, err
	}
	return g.fns[i][j](v)
}

// Route returns the nodes visited by the composed function for (src, dst),
// both ends included.
func (g *Graph[K, T]) Route(src, dst K) ([]K, error) {
	i, j, err := g.lookup(src, dst)
	if err != nil {
		return nil, err
	}
	return append([]K(nil), g.route[i][j]...), nil
}

// Hops returns the number of edges behind the composition for (src, dst).
func (g *Graph[K, T]) Hops(src, dst K) (int, bool) {
	i, j, err := g.lookup(src, dst)
	if err != nil {
		return 0, false
	}
	return g.cost[i][j], true
}

// Reachable reports whether a composition exists for (src, dst).
func (g *Graph[K, T]) Reachable(src, dst K) bool {
	_, _, err := g.lookup(src, dst)
	return err == nil
}

// Nodes returns the registered nodes in id order.
func (g *Graph[K, T]) Nodes() []K {
	return append([]K(nil), g.nodes...)
}
