package model

import "fmt"

// Entity is any model object an Option can configure: *Node, *Edge,
// *Subgraph or *RootCluster.
type Entity interface {
	Comment() string
	SetComment(string)
}

// Option configures an entity as it is created or looked up by a builder
// method.
type Option interface {
	apply(Entity) error
}

type optionFunc func(Entity) error

func (f optionFunc) apply(e Entity) error { return f(e) }

type idOption string

func (o idOption) apply(e Entity) error {
	switch e := e.(type) {
	case *Subgraph:
		if e.id != "" && e.id != string(o) {
			return fmt.Errorf("subgraph %q cannot be renamed to %q", e.id, string(o))
		}
		e.id = string(o)
	case *RootCluster:
		e.id = string(o)
	default:
		return fmt.Errorf("WithID does not apply to %T", e)
	}
	return nil
}

// WithID names a subgraph or root graph. CreateSubgraph uses the id to find
// an existing subgraph before creating a new one.
func WithID(id string) Option { return idOption(id) }

// WithComment attaches a comment that is written before the entity.
func WithComment(comment string) Option {
	return optionFunc(func(e Entity) error {
		e.SetComment(comment)
		return nil
	})
}

// WithAttributes sets attributes on the entity. For clusters these are the
// cluster's own graph attributes. A typed key for another entity family (an
// EdgeKey on a node, say) is an error, as is any key the knowledge base does
// not permit.
func WithAttributes[K ~string](attrs ...Attr[K]) Option {
	return optionFunc(func(e Entity) error {
		switch e := e.(type) {
		case *Node:
			return applyFrom(e.attrs, attrs)
		case *Edge:
			return applyFrom(e.attrs, attrs)
		case *Subgraph:
			return applyFrom(e.attrs, attrs)
		case *RootCluster:
			return applyFrom(e.attrs, attrs)
		}
		return fmt.Errorf("WithAttributes does not apply to %T", e)
	})
}

// WithCallback runs fn on the entity once the other options have been
// applied. The entity type is inferred from fn; a callback for a different
// type is an error.
func WithCallback[T Entity](fn func(T)) Option {
	return callbackOption(optionFunc(func(e Entity) error {
		t, ok := e.(T)
		if !ok {
			var want T
			return fmt.Errorf("callback expects %T, got %T", want, e)
		}
		fn(t)
		return nil
	}))
}

type callbackOption optionFunc

func (o callbackOption) apply(e Entity) error { return o(e) }

// applyOptions applies options in order, deferring callbacks until the
// entity is fully configured.
func applyOptions(e Entity, opts []Option) error {
	var callbacks []Option
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if _, ok := opt.(callbackOption); ok {
			callbacks = append(callbacks, opt)
			continue
		}
		if err := opt.apply(e); err != nil {
			return err
		}
	}
	for _, cb := range callbacks {
		if err := cb.apply(e); err != nil {
			return err
		}
	}
	return nil
}

func optionID(opts []Option) string {
	var id string
	for _, opt := range opts {
		if o, ok := opt.(idOption); ok {
			id = string(o)
		}
	}
	return id
}
