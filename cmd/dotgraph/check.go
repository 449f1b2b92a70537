package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/martinemde/dotgraph/ast"
	"github.com/martinemde/dotgraph/attribute"
	"github.com/martinemde/dotgraph/convert"
	"github.com/martinemde/dotgraph/dot"
	"github.com/martinemde/dotgraph/dotparser"
	"github.com/martinemde/dotgraph/model"
)

var (
	colorRed    = lipgloss.Color("167")
	colorYellow = lipgloss.Color("220")
	colorGray   = lipgloss.Color("245")
	colorGreen  = lipgloss.Color("35")

	styleError   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleDim     = lipgloss.NewStyle().Foreground(colorGray)
)

var errCheckFailed = errors.New("check failed")

var checkCmd = &cobra.Command{
	Use:   "check [file.dot...]",
	Short: "Report syntax errors and attribute problems",
	Long:  "Parse each file (or stdin), check attribute keys and values against the Graphviz tables and report duplicate edges in strict graphs.",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Bool("strict", false, "Treat warnings as errors")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	logger := loggerFrom(cmd.Context())

	if len(args) == 0 {
		args = []string{"-"}
	}
	failed := false
	for _, name := range args {
		src, err := readInput(cmd, name)
		if err != nil {
			return fmt.Errorf("reading %s: %w", name, err)
		}
		diags := checkSource(string(src), convert.WithLogger(logger))
		printDiagnostics(cmd.OutOrStdout(), displayName(name), diags)
		for _, d := range diags {
			if d.Severity == attribute.Error || (strict && d.Severity == attribute.Warning) {
				failed = true
			}
		}
	}
	if failed {
		return errCheckFailed
	}
	return nil
}

// checkSource collects every problem found in src. A syntax error is the
// only diagnostic when parsing fails.
func checkSource(src string, opts ...convert.Option) []attribute.Diagnostic {
	doc, err := dot.ParseAST(src)
	if err != nil {
		pos, _ := dotparser.IsSyntaxError(err)
		return []attribute.Diagnostic{{
			Rule:     "syntax",
			Severity: attribute.Error,
			Message:  syntaxMessage(err),
			Pos:      pos,
		}}
	}

	diags := attribute.Lint(doc)

	// Forbidden keys are already reported by the lint rules. Conversion
	// rejects them, so retry without them to still check the edges.
	conv := convert.NewConverter(opts...)
	g, err := conv.ToModel(doc)
	var keyErr *attribute.KeyError
	if errors.As(err, &keyErr) {
		g, err = conv.ToModel(dropForbiddenKeys(doc))
	}
	switch {
	case err != nil:
		diags = append(diags, attribute.Diagnostic{Rule: "convert", Severity: attribute.Error, Message: err.Error()})
	case g.Strict:
		diags = append(diags, duplicateEdgeDiagnostics(g)...)
	}
	return diags
}

// dropForbiddenKeys removes, in place, every attribute whose key is not
// permitted on the entity it applies to.
func dropForbiddenKeys(doc *ast.Dot) *ast.Dot {
	forbidden := make(map[*ast.Attribute]bool)
	for _, u := range attribute.Collect(doc) {
		if !attribute.Allowed(u.Kind, u.Attribute.Key.Value) {
			forbidden[u.Attribute] = true
		}
	}
	keep := func(a *ast.Attribute) bool { return !forbidden[a] }
	keepStmt := func(s ast.Statement) bool {
		a, ok := s.(*ast.Attribute)
		return !ok || !forbidden[a]
	}
	ast.Walk(doc, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.Graph:
			n.Body = filter(n.Body, keepStmt)
		case *ast.Subgraph:
			n.Body = filter(n.Body, keepStmt)
		case *ast.NodeStmt:
			n.Body = filter(n.Body, keep)
		case *ast.Edge:
			n.Body = filter(n.Body, keep)
		case *ast.Attributes:
			n.Body = filter(n.Body, keep)
		}
		return true
	})
	return doc
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := items[:0]
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// syntaxMessage is the error text without its "line, col" prefix, which
// printDiagnostics adds back in file:line:col form.
func syntaxMessage(err error) string {
	var serr *dotparser.SyntaxError
	if errors.As(err, &serr) {
		if serr.Expected != "" {
			return fmt.Sprintf("expected %s, got %s", serr.Expected, serr.Got)
		}
		return serr.Message
	}
	var lerr *dotparser.LexError
	if errors.As(err, &lerr) {
		return lerr.Message
	}
	return err.Error()
}

func duplicateEdgeDiagnostics(g *model.RootCluster) []attribute.Diagnostic {
	var diags []attribute.Diagnostic
	for _, e := range g.DuplicateEdges() {
		diags = append(diags, attribute.Diagnostic{
			Rule:     "strict_duplicate_edge",
			Severity: attribute.Warning,
			Message:  fmt.Sprintf("edge %s repeats an endpoint pair in a strict graph", describeEdge(e, g.Directed)),
		})
	}
	return diags
}

func describeEdge(e *model.Edge, directed bool) string {
	op := " -- "
	if directed {
		op = " -> "
	}
	var parts []string
	for _, t := range e.Targets() {
		switch t := t.(type) {
		case model.NodeRef:
			parts = append(parts, t.String())
		case model.NodeRefGroup:
			refs := make([]string, len(t))
			for i, r := range t {
				refs[i] = r.String()
			}
			parts = append(parts, "{"+strings.Join(refs, " ")+"}")
		}
	}
	return strings.Join(parts, op)
}

func printDiagnostics(w io.Writer, name string, diags []attribute.Diagnostic) {
	if len(diags) == 0 {
		fmt.Fprintf(w, "%s %s\n", styleSuccess.Render("✓"), name)
		return
	}
	for _, d := range diags {
		loc := name
		if d.Pos.Line > 0 {
			loc = fmt.Sprintf("%s:%s", name, d.Pos)
		}
		fmt.Fprintf(w, "%s %s %s %s\n",
			styleDim.Render(loc),
			severityStyle(d.Severity).Render(strings.ToLower(d.Severity.String())),
			d.Message,
			styleDim.Render("("+d.Rule+")"),
		)
	}
}

func severityStyle(s attribute.Severity) lipgloss.Style {
	switch s {
	case attribute.Error:
		return styleError
	case attribute.Warning:
		return styleWarning
	default:
		return styleInfo
	}
}
