package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/martinemde/dotgraph/dot"
	"github.com/martinemde/dotgraph/layout"
)

var renderCmd = &cobra.Command{
	Use:   "render <file.dot>",
	Short: "Lay out and render a DOT file with Graphviz",
	Long:  "Parse the file to report syntax errors with positions, then render it with the embedded Graphviz. The result goes to --output, or stdout.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	name := "-"
	if len(args) == 1 {
		name = args[0]
	}
	output, _ := cmd.Flags().GetString("output")
	format := viper.GetString("format")
	logger := loggerFrom(cmd.Context())

	src, err := readInput(cmd, name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if _, err := dot.ParseAST(string(src)); err != nil {
		return fmt.Errorf("%s: %w", displayName(name), err)
	}

	logger.Debug("rendering", "file", displayName(name), "format", format)
	out, err := layout.Render(cmd.Context(), string(src), layout.Options{Format: format, Output: output})
	if err != nil {
		return err
	}
	if output != "" {
		logger.Info("wrote", "file", output, "bytes", len(out))
		return nil
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
