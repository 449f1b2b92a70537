package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:          "dotgraph",
	Short:        "Format, check and render Graphviz DOT files",
	Long:         "dotgraph parses DOT source, prints it in canonical form, checks attributes against the Graphviz attribute tables and renders graphs through an embedded Graphviz.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := log.InfoLevel
		if viper.GetBool("verbose") {
			level = log.DebugLevel
		}
		cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().Int("indent", 2, "Spaces per indentation level")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringP("format", "T", "svg", "Output format for render (svg, png, jpg, dot)")

	_ = viper.BindPFlag("indent", rootCmd.PersistentFlags().Lookup("indent"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
}

func initConfig() {
	viper.SetEnvPrefix("DOTGRAPH")
	viper.AutomaticEnv()
}

// readInput reads the named file, or stdin when name is "-" or empty.
func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "" || name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(name)
}
