package ast

// Walk traverses the tree rooted at n in pre-order, calling fn for each node.
// If fn returns false the children of that node are skipped.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	switch n := n.(type) {
	case *Dot:
		for _, c := range n.Body {
			Walk(c, fn)
		}
	case *Graph:
		if n.ID != nil {
			Walk(n.ID, fn)
		}
		for _, s := range n.Body {
			Walk(s, fn)
		}
	case *Subgraph:
		if n.ID != nil {
			Walk(n.ID, fn)
		}
		for _, s := range n.Body {
			Walk(s, fn)
		}
	case *NodeStmt:
		Walk(n.ID, fn)
		if n.Port != nil {
			Walk(n.Port, fn)
		}
		for _, a := range n.Body {
			Walk(a, fn)
		}
	case *Edge:
		for _, t := range n.Targets {
			Walk(t, fn)
		}
		for _, a := range n.Body {
			Walk(a, fn)
		}
	case *Attributes:
		for _, a := range n.Body {
			Walk(a, fn)
		}
	case *Attribute:
		Walk(n.Key, fn)
		Walk(n.Value, fn)
	case *NodeRef:
		Walk(n.ID, fn)
		if n.Port != nil {
			Walk(n.Port, fn)
		}
	case *NodeRefGroup:
		for _, r := range n.Body {
			Walk(r, fn)
		}
	}
}

// Inspect is like Walk but passes each node's enclosing container (the
// nearest Graph or Subgraph, nil at the document level) alongside it.
func Inspect(n Node, fn func(node Node, parent Node) bool) {
	inspect(n, nil, fn)
}

func inspect(n, parent Node, fn func(Node, Node) bool) {
	if n == nil || !fn(n, parent) {
		return
	}
	switch c := n.(type) {
	case *Dot:
		for _, s := range c.Body {
			inspect(s, nil, fn)
		}
	case *Graph:
		for _, s := range c.Body {
			inspect(s, c, fn)
		}
	case *Subgraph:
		for _, s := range c.Body {
			inspect(s, c, fn)
		}
	}
}
