// Package layout hands DOT text to Graphviz, compiled to WebAssembly by
// go-graphviz, and returns the rendered output.
package layout

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/goccy/go-graphviz"
)

// Output formats accepted by Render.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatJPG = "jpg"
	FormatDOT = "dot"
)

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatSVG, FormatPNG, FormatJPG, FormatDOT}
}

// Options controls a Render call.
type Options struct {
	// Format is one of Formats. Empty means svg.
	Format string
	// Output, when set, is a file path the result is also written to.
	Output string
}

// Render lays out dotText and renders it in the requested format.
func Render(ctx context.Context, dotText string, opts Options) ([]byte, error) {
	format := strings.ToLower(opts.Format)
	if format == "" {
		format = FormatSVG
	}
	if !slices.Contains(Formats(), format) {
		return nil, fmt.Errorf("unsupported format %q (want one of %s)", opts.Format, strings.Join(Formats(), ", "))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dotText))
	if err != nil {
		return nil, fmt.Errorf("parse dot: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.Format(format), &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}

	out := buf.Bytes()
	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, out, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", opts.Output, err)
		}
	}
	return out, nil
}
