package model

// Builder wraps a cluster with chainable construction methods. The first
// error stops all further changes and is reported by Err.
type Builder struct {
	c   Cluster
	err error
}

// Build returns a Builder that adds to c.
func Build(c Cluster) *Builder {
	return &Builder{c: c}
}

// Cluster returns the cluster being built.
func (b *Builder) Cluster() Cluster { return b.c }

// Err returns the first error encountered, if any.
func (b *Builder) Err() error { return b.err }

// Set sets the cluster's own attributes.
func (b *Builder) Set(attrs ...Attr[GraphKey]) *Builder {
	if b.err == nil {
		b.err = b.c.Attributes().Apply(attrs...)
	}
	return b
}

// Graph sets graph defaults, as a graph [...] statement does.
func (b *Builder) Graph(attrs ...Attr[GraphKey]) *Builder {
	if b.err == nil {
		b.err = b.c.GraphAttributes().Apply(attrs...)
	}
	return b
}

// NodeDefaults sets node defaults, as a node [...] statement does.
func (b *Builder) NodeDefaults(attrs ...Attr[NodeKey]) *Builder {
	if b.err == nil {
		b.err = b.c.NodeAttributes().Apply(attrs...)
	}
	return b
}

// EdgeDefaults sets edge defaults, as an edge [...] statement does.
func (b *Builder) EdgeDefaults(attrs ...Attr[EdgeKey]) *Builder {
	if b.err == nil {
		b.err = b.c.EdgeAttributes().Apply(attrs...)
	}
	return b
}

// Node creates or updates a node. See Cluster.CreateNode.
func (b *Builder) Node(id string, opts ...Option) *Builder {
	if b.err == nil {
		_, b.err = b.c.CreateNode(id, opts...)
	}
	return b
}

// Edge creates an edge between targets given as "id[:port[:compass]]"
// strings. Use EdgeTo for groups or prebuilt references.
func (b *Builder) Edge(targets []string, opts ...Option) *Builder {
	refs := make([]EdgeTarget, len(targets))
	for i, t := range targets {
		refs[i] = ParseNodeRef(t)
	}
	return b.EdgeTo(refs, opts...)
}

// EdgeTo creates an edge between arbitrary targets.
func (b *Builder) EdgeTo(targets []EdgeTarget, opts ...Option) *Builder {
	if b.err == nil {
		_, b.err = b.c.CreateEdge(targets, opts...)
	}
	return b
}

// Subgraph creates or reopens a subgraph and, when fn is non-nil, builds
// inside it. Errors from fn's builder are reported by b.
func (b *Builder) Subgraph(fn func(*Builder), opts ...Option) *Builder {
	if b.err != nil {
		return b
	}
	s, err := b.c.CreateSubgraph(opts...)
	if err != nil {
		b.err = err
		return b
	}
	if fn != nil {
		inner := Build(s)
		fn(inner)
		b.err = inner.err
	}
	return b
}
