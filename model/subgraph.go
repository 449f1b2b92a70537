package model

import (
	"strings"

	"github.com/martinemde/dotgraph/attribute"
)

// Subgraph is a nested cluster scope. A subgraph whose id starts with
// "cluster" is drawn as a boxed cluster by layout engines.
type Subgraph struct {
	cluster
}

// NewSubgraph returns a detached subgraph. Most callers use
// Cluster.CreateSubgraph.
func NewSubgraph(opts ...Option) (*Subgraph, error) {
	s := &Subgraph{cluster: newCluster(attribute.Subgraph)}
	if err := applyOptions(s, opts); err != nil {
		return nil, err
	}
	return s, nil
}

// IsCluster reports whether the subgraph is a cluster by naming convention.
func (s *Subgraph) IsCluster() bool {
	return strings.HasPrefix(s.id, "cluster")
}
