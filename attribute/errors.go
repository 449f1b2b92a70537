package attribute

import (
	"fmt"
	"strings"
)

// KeyError is returned when an attribute key is not permitted for an entity
// kind.
type KeyError struct {
	Kind Kind
	Key  string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("attribute %q is not permitted on %s", e.Key, e.Kind)
}

// ValueError is returned by CheckValue when a value matches none of the
// shapes its key accepts.
type ValueError struct {
	Key    string
	Value  string
	Shapes []Shape
}

func (e *ValueError) Error() string {
	names := make([]string, len(e.Shapes))
	for i, s := range e.Shapes {
		names[i] = string(s)
	}
	return fmt.Sprintf("value %q for %q is not a valid %s", e.Value, e.Key, strings.Join(names, " or "))
}
