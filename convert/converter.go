package convert

import (
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/martinemde/dotgraph/ast"
	"github.com/martinemde/dotgraph/model"
)

// Converter turns AST nodes into model objects by dispatching each node to
// the first plugin that matches it.
type Converter struct {
	plugins []Plugin
	models  Models
	logger  *log.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithPlugins registers plugins ahead of those already present, keeping
// their relative order. Later calls take precedence over earlier ones.
func WithPlugins(plugins ...Plugin) Option {
	return func(c *Converter) {
		c.plugins = append(slices.Clone(plugins), c.plugins...)
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithModels overrides the constructors used to create model objects. Nil
// fields keep the defaults.
func WithModels(m Models) Option {
	return func(c *Converter) {
		c.models = c.models.merge(m)
	}
}

// NewConverter returns a converter with the default plugins registered.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		plugins: DefaultPlugins(),
		models:  DefaultModels(),
		logger:  log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Register adds a plugin ahead of all registered plugins, so it overrides any
// existing plugin matching the same nodes.
func (c *Converter) Register(p Plugin) {
	c.plugins = append([]Plugin{p}, c.plugins...)
}

// Plugins returns the registered plugins in resolution order.
func (c *Converter) Plugins() []Plugin {
	return slices.Clone(c.plugins)
}

// Resolve returns the first plugin matching n.
func (c *Converter) Resolve(n ast.Node) (Plugin, error) {
	for _, p := range c.plugins {
		if p.Match(n) {
			return p, nil
		}
	}
	return nil, &ConversionError{Kind: n.Kind()}
}

// Convert converts a single AST node with a fresh context.
func (c *Converter) Convert(n ast.Node) (any, error) {
	return c.newContext().Convert(n)
}

// ToModel converts a Dot document or a Graph into a root graph model. For a
// document holding several graphs only the first is converted.
func (c *Converter) ToModel(n ast.Node) (*model.RootCluster, error) {
	switch n.(type) {
	case *ast.Dot, *ast.Graph:
	default:
		return nil, fmt.Errorf("cannot convert %s node to a graph model", n.Kind())
	}
	res, err := c.Convert(n)
	if err != nil {
		return nil, err
	}
	g, ok := res.(*model.RootCluster)
	if !ok {
		return nil, fmt.Errorf("plugin for %s returned %T, want *model.RootCluster", n.Kind(), res)
	}
	return g, nil
}

func (c *Converter) newContext() *Context {
	return &Context{
		Models:    c.models,
		converter: c,
		logger:    c.logger,
	}
}

// ToModel converts n with a default converter.
func ToModel(n ast.Node) (*model.RootCluster, error) {
	return NewConverter().ToModel(n)
}
