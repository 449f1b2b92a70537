package convert

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/martinemde/dotgraph/ast"
	"github.com/martinemde/dotgraph/model"
)

// Models holds the constructors plugins use to create model objects.
type Models struct {
	Root     func(strict, directed bool, opts ...model.Option) (*model.RootCluster, error)
	Subgraph func(opts ...model.Option) (*model.Subgraph, error)
	Node     func(id string, opts ...model.Option) (*model.Node, error)
	Edge     func(targets []model.EdgeTarget, opts ...model.Option) (*model.Edge, error)
}

// DefaultModels returns the model package constructors.
func DefaultModels() Models {
	return Models{
		Root:     model.NewRoot,
		Subgraph: model.NewSubgraph,
		Node:     model.NewNode,
		Edge:     model.NewEdge,
	}
}

func (m Models) merge(o Models) Models {
	if o.Root != nil {
		m.Root = o.Root
	}
	if o.Subgraph != nil {
		m.Subgraph = o.Subgraph
	}
	if o.Node != nil {
		m.Node = o.Node
	}
	if o.Edge != nil {
		m.Edge = o.Edge
	}
	return m
}

// Context is the state of one conversion. It is created per call and never
// shared between calls.
type Context struct {
	Models Models

	converter *Converter
	logger    *log.Logger
	scopes    []*scope
}

// scope is a cluster body being converted and the comments waiting for its
// next statement.
type scope struct {
	cluster  model.Cluster
	comments []string
}

// Convert dispatches n to the converter's plugins.
func (c *Context) Convert(n ast.Node) (any, error) {
	p, err := c.converter.Resolve(n)
	if err != nil {
		c.logger.Error("conversion failed", "kind", n.Kind(), "pos", n.Position(), "err", err)
		return nil, err
	}
	return p.Convert(c, n)
}

// Logger returns the converter's logger.
func (c *Context) Logger() *log.Logger { return c.logger }

// Cluster returns the cluster whose body is being converted, or nil outside
// any body.
func (c *Context) Cluster() model.Cluster {
	if s := c.top(); s != nil {
		return s.cluster
	}
	return nil
}

// HoldComment queues a comment for the next statement converted in the
// current body. Outside a body it is ignored.
func (c *Context) HoldComment(text string) {
	if s := c.top(); s != nil {
		s.comments = append(s.comments, text)
	}
}

// ConvertBody converts stmts with cl as the current cluster. Held comments
// are attached to the value produced by the following statement when that
// value can carry a comment.
func (c *Context) ConvertBody(cl model.Cluster, stmts []ast.Statement) error {
	s := &scope{cluster: cl}
	c.scopes = append(c.scopes, s)
	defer func() { c.scopes = c.scopes[:len(c.scopes)-1] }()

	for _, stmt := range stmts {
		res, err := c.Convert(stmt)
		if err != nil {
			return err
		}
		if _, ok := stmt.(*ast.Comment); ok || len(s.comments) == 0 {
			continue
		}
		if target, ok := res.(commenter); ok {
			attachComment(target, strings.Join(s.comments, "\n"))
			s.comments = nil
		}
	}
	if len(s.comments) > 0 {
		c.logger.Debug("dropping trailing comments", "cluster", cl.ID(), "count", len(s.comments))
	}
	return nil
}

func (c *Context) top() *scope {
	if len(c.scopes) == 0 {
		return nil
	}
	return c.scopes[len(c.scopes)-1]
}

// commenter is satisfied by model entities and attribute containers.
type commenter interface {
	Comment() string
	SetComment(string)
}

func attachComment(target commenter, text string) {
	if prev := target.Comment(); prev != "" {
		text = prev + "\n" + text
	}
	target.SetComment(text)
}
