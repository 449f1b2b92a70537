package model

import "github.com/martinemde/dotgraph/attribute"

// RootCluster is a top-level graph or digraph.
type RootCluster struct {
	cluster

	// Strict marks a strict graph. It is advisory: the model does not merge
	// or reject duplicate edges. DuplicateEdges reports them.
	Strict   bool
	Directed bool
}

func newRoot(strict, directed bool, opts []Option) *RootCluster {
	g, err := NewRoot(strict, directed, opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// NewDigraph returns an empty directed graph. It panics if an option fails,
// which only happens for a forbidden attribute key or a mistyped callback.
func NewDigraph(opts ...Option) *RootCluster { return newRoot(false, true, opts) }

// NewGraph returns an empty undirected graph. Options are handled as in
// NewDigraph.
func NewGraph(opts ...Option) *RootCluster { return newRoot(false, false, opts) }

// NewStrictDigraph returns an empty strict directed graph.
func NewStrictDigraph(opts ...Option) *RootCluster { return newRoot(true, true, opts) }

// NewStrictGraph returns an empty strict undirected graph.
func NewStrictGraph(opts ...Option) *RootCluster { return newRoot(true, false, opts) }

// NewRoot is the error-returning form of the constructors above.
func NewRoot(strict, directed bool, opts ...Option) (*RootCluster, error) {
	g := &RootCluster{cluster: newCluster(attribute.RootGraph), Strict: strict, Directed: directed}
	if err := applyOptions(g, opts); err != nil {
		return nil, err
	}
	return g, nil
}

// DuplicateEdges returns the edges, anywhere in the graph, that connect an
// endpoint pair already connected by an earlier edge. In an undirected graph
// a -- b and b -- a are the same pair. Group endpoints are expanded. Strict
// graphs are expected to have none.
func (g *RootCluster) DuplicateEdges() []*Edge {
	seen := make(map[[2]string]bool)
	var dups []*Edge
	var visit func(c *cluster)
	visit = func(c *cluster) {
		for _, e := range c.edges {
			dup := false
			for _, p := range e.endpointPairs() {
				if !g.Directed && p[1] < p[0] {
					p[0], p[1] = p[1], p[0]
				}
				if seen[p] {
					dup = true
				}
				seen[p] = true
			}
			if dup {
				dups = append(dups, e)
			}
		}
		for _, s := range c.subgraphs {
			visit(&s.cluster)
		}
	}
	visit(&g.cluster)
	return dups
}
