package attribute

import (
	"fmt"
	"strings"

	"github.com/martinemde/dotgraph/ast"
)

// Severity represents the severity level of a lint diagnostic.
type Severity int

const (
	// Error means a layout engine will reject the document.
	Error Severity = iota
	// Warning means the document renders but the attribute is likely ignored.
	Warning
	// Info is an informational note.
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "ERROR"
	case Warning:
		return "WARNING"
	case Info:
		return "INFO"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic is a single lint finding.
type Diagnostic struct {
	Rule     string       // rule identifier (e.g., "unknown_key")
	Severity Severity     // ERROR, WARNING, or INFO
	Message  string       // human-readable description
	Key      string       // related attribute key (optional)
	Pos      ast.Position // source location of the attribute
}

func (d Diagnostic) String() string {
	var b strings.Builder
	if d.Pos.Line > 0 {
		fmt.Fprintf(&b, "%s: ", d.Pos)
	}
	fmt.Fprintf(&b, "[%s] %s: %s", d.Severity, d.Rule, d.Message)
	return b.String()
}

// Use is one attribute occurrence together with the kind of entity it
// applies to.
type Use struct {
	Kind      Kind
	Attribute *ast.Attribute
}

// Rule is the interface for a single lint rule.
type Rule interface {
	Name() string
	Apply(uses []Use) []Diagnostic
}

// LintError is returned by LintOrError when error-severity diagnostics exist.
type LintError struct {
	Diagnostics []Diagnostic
}

func (e *LintError) Error() string {
	var msgs []string
	for _, d := range e.Diagnostics {
		msgs = append(msgs, d.String())
	}
	return fmt.Sprintf("lint failed with %d error(s):\n  %s", len(e.Diagnostics), strings.Join(msgs, "\n  "))
}

// Lint runs the built-in rules (and any extra rules) against every attribute
// in the document. Returns all diagnostics regardless of severity.
func Lint(dot *ast.Dot, extraRules ...Rule) []Diagnostic {
	uses := Collect(dot)
	rules := append(builtInRules(), extraRules...)

	var diagnostics []Diagnostic
	for _, rule := range rules {
		diagnostics = append(diagnostics, rule.Apply(uses)...)
	}
	return diagnostics
}

// LintOrError runs Lint and returns an error if any error-severity
// diagnostics are found. Non-error diagnostics are still returned.
func LintOrError(dot *ast.Dot, extraRules ...Rule) ([]Diagnostic, error) {
	diagnostics := Lint(dot, extraRules...)

	var errs []Diagnostic
	for _, d := range diagnostics {
		if d.Severity == Error {
			errs = append(errs, d)
		}
	}
	if len(errs) > 0 {
		return diagnostics, &LintError{Diagnostics: errs}
	}
	return diagnostics, nil
}

// Collect lists every attribute in the document in source order, tagged with
// the entity kind it applies to.
func Collect(dot *ast.Dot) []Use {
	var uses []Use
	add := func(kind Kind, attrs []*ast.Attribute) {
		for _, a := range attrs {
			uses = append(uses, Use{Kind: kind, Attribute: a})
		}
	}
	ast.Inspect(dot, func(n, parent ast.Node) bool {
		switch n := n.(type) {
		case *ast.NodeStmt:
			add(Node, n.Body)
		case *ast.Edge:
			add(Edge, n.Body)
		case *ast.Attributes:
			switch n.Type {
			case ast.AttributesNode:
				add(Node, n.Body)
			case ast.AttributesEdge:
				add(Edge, n.Body)
			default:
				add(graphKind(parent), n.Body)
			}
		case *ast.Attribute:
			add(graphKind(parent), []*ast.Attribute{n})
		}
		return true
	})
	return uses
}

func graphKind(parent ast.Node) Kind {
	if _, ok := parent.(*ast.Subgraph); ok {
		return Subgraph
	}
	return RootGraph
}

func builtInRules() []Rule {
	return []Rule{
		unknownKeyRule{},
		valueShapeRule{},
	}
}

type unknownKeyRule struct{}

func (unknownKeyRule) Name() string { return "unknown_key" }

func (r unknownKeyRule) Apply(uses []Use) []Diagnostic {
	var diags []Diagnostic
	for _, u := range uses {
		key := u.Attribute.Key.Value
		if Allowed(u.Kind, key) {
			continue
		}
		msg := fmt.Sprintf("attribute %q is not a %s attribute", key, u.Kind)
		if kinds := KindsFor(key); len(kinds) > 0 {
			names := make([]string, len(kinds))
			for i, k := range kinds {
				names[i] = k.String()
			}
			msg += fmt.Sprintf(" (valid on: %s)", strings.Join(names, ", "))
		}
		diags = append(diags, Diagnostic{
			Rule:     r.Name(),
			Severity: Warning,
			Message:  msg,
			Key:      key,
			Pos:      u.Attribute.Pos,
		})
	}
	return diags
}

type valueShapeRule struct{}

func (valueShapeRule) Name() string { return "value_shape" }

func (r valueShapeRule) Apply(uses []Use) []Diagnostic {
	var diags []Diagnostic
	for _, u := range uses {
		key := u.Attribute.Key.Value
		value := u.Attribute.Value
		if value.Quoted == ast.HTMLLike {
			if AcceptsHTML(key) {
				continue
			}
			diags = append(diags, Diagnostic{
				Rule:     r.Name(),
				Severity: Warning,
				Message:  fmt.Sprintf("attribute %q does not accept an HTML-like value", key),
				Key:      key,
				Pos:      u.Attribute.Pos,
			})
			continue
		}
		if err := CheckValue(key, value.Value); err != nil {
			diags = append(diags, Diagnostic{
				Rule:     r.Name(),
				Severity: Warning,
				Message:  err.Error(),
				Key:      key,
				Pos:      u.Attribute.Pos,
			})
		}
	}
	return diags
}
