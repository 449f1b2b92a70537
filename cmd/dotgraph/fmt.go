package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/martinemde/dotgraph/convert"
	"github.com/martinemde/dotgraph/dot"
	"github.com/martinemde/dotgraph/render"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [file.dot...]",
	Short: "Print DOT files in canonical form",
	Long:  "Parse each file (or stdin) and print it back with canonical layout. Comments and every graph in the file are kept.",
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().BoolP("write", "w", false, "Write the result back to the source file")
	fmtCmd.Flags().Bool("via-model", false, "Round-trip through the object model (first graph only, ids quoted)")

	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	write, _ := cmd.Flags().GetBool("write")
	viaModel, _ := cmd.Flags().GetBool("via-model")
	logger := loggerFrom(cmd.Context())

	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, name := range args {
		src, err := readInput(cmd, name)
		if err != nil {
			return fmt.Errorf("reading %s: %w", name, err)
		}
		out, err := formatSource(string(src), viper.GetInt("indent"), viaModel, convert.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("%s: %w", displayName(name), err)
		}
		if write && name != "-" {
			logger.Debug("rewriting", "file", name)
			if err := os.WriteFile(name, []byte(out+"\n"), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", name, err)
			}
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return nil
}

func formatSource(src string, indent int, viaModel bool, opts ...convert.Option) (string, error) {
	if !viaModel {
		return dot.Format(src, render.WithIndentSize(indent))
	}
	g, err := dot.Parse(src, opts...)
	if err != nil {
		return "", err
	}
	return dot.ToDot(g, render.WithIndentSize(indent)), nil
}

func displayName(name string) string {
	if name == "" || name == "-" {
		return "<stdin>"
	}
	return name
}
