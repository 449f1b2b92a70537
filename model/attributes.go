package model

import (
	"fmt"
	"slices"

	"github.com/martinemde/dotgraph/attribute"
)

// Attr is one key/value pair.
type Attr[K ~string] struct {
	Key   K
	Value Value
}

// A builds an Attr. The key type is inferred from key.
func A[K ~string](key K, value Value) Attr[K] {
	return Attr[K]{Key: key, Value: value}
}

// Attributes is an ordered attribute container. Keys are unique, the last
// Set wins, and insertion order is kept for rendering.
type Attributes[K ~string] struct {
	kind    attribute.Kind
	keys    []K
	values  map[K]Value
	comment string
}

func newAttributes[K ~string](kind attribute.Kind) *Attributes[K] {
	return &Attributes[K]{kind: kind, values: make(map[K]Value)}
}

// Kind returns the entity kind the keys are validated against.
func (a *Attributes[K]) Kind() attribute.Kind { return a.kind }

// Get returns the value for key.
func (a *Attributes[K]) Get(key K) (Value, bool) {
	v, ok := a.values[key]
	return v, ok
}

// Set stores value under key. It returns an *attribute.KeyError if key is not
// permitted for this container's entity kind.
func (a *Attributes[K]) Set(key K, value Value) error {
	if err := attribute.ValidateKey(a.kind, string(key)); err != nil {
		return err
	}
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
	return nil
}

// MustSet is like Set but panics if the key is not permitted.
func (a *Attributes[K]) MustSet(key K, value Value) {
	if err := a.Set(key, value); err != nil {
		panic(err)
	}
}

// Delete removes key. Deleting a missing key is a no-op.
func (a *Attributes[K]) Delete(key K) {
	if _, ok := a.values[key]; !ok {
		return
	}
	delete(a.values, key)
	a.keys = slices.DeleteFunc(a.keys, func(k K) bool { return k == key })
}

// Clear removes every attribute.
func (a *Attributes[K]) Clear() {
	a.keys = nil
	a.values = make(map[K]Value)
}

// Apply sets each attribute in order. It stops at the first forbidden key;
// attributes before it remain set.
func (a *Attributes[K]) Apply(attrs ...Attr[K]) error {
	for _, attr := range attrs {
		if err := a.Set(attr.Key, attr.Value); err != nil {
			return err
		}
	}
	return nil
}

// ApplyMap sets every entry of m, in key order so the result is
// deterministic.
func (a *Attributes[K]) ApplyMap(m map[K]Value) error {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if err := a.Set(k, m[k]); err != nil {
			return err
		}
	}
	return nil
}

// Size returns the number of attributes.
func (a *Attributes[K]) Size() int { return len(a.keys) }

// Keys returns the keys in insertion order.
func (a *Attributes[K]) Keys() []K { return slices.Clone(a.keys) }

// Values returns an ordered snapshot of the attributes.
func (a *Attributes[K]) Values() []Attr[K] {
	out := make([]Attr[K], len(a.keys))
	for i, k := range a.keys {
		out[i] = Attr[K]{Key: k, Value: a.values[k]}
	}
	return out
}

// Comment returns the comment attached to this attribute group.
func (a *Attributes[K]) Comment() string { return a.comment }

// SetComment attaches a comment to this attribute group.
func (a *Attributes[K]) SetComment(c string) { a.comment = c }

// SetString is Set for an untyped key. Converters working from parsed text
// use it.
func (a *Attributes[K]) SetString(key string, value Value) error {
	return a.Set(K(key), value)
}

// applyFrom copies attrs whose key type may differ from K. A typed key from a
// different entity family is rejected before any runtime check.
func applyFrom[K, S ~string](dst *Attributes[K], attrs []Attr[S]) error {
	if fam := keyFamily[S](); fam != "" && fam != kindFamily(dst.kind) {
		return fmt.Errorf("%s attributes cannot be applied to a %s", fam, dst.kind)
	}
	for _, attr := range attrs {
		if err := dst.Set(K(attr.Key), attr.Value); err != nil {
			return err
		}
	}
	return nil
}
