package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/webcarrot/tsemit/internal/config"
	"github.com/webcarrot/tsemit/internal/errors"
	"github.com/webcarrot/tsemit/internal/exitcode"
	"github.com/webcarrot/tsemit/internal/logger"
)

type rootFlags struct {
	configPath string
	jsonLog    bool
	verbose    bool
	color      string
}

func (flags *rootFlags) loadOptions() (config.Options, error) {
	options, err := config.Load(flags.configPath)
	if err != nil {
		return config.Options{}, exitcode.Set(err, exitcode.InvalidArguments)
	}
	return options, nil
}

func (flags *rootFlags) terminalInfo() logger.TerminalInfo {
	color, _ := logger.ParseColor(flags.color)
	return color.Apply(logger.GetTerminalInfo(os.Stderr))
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "tsemit",
		Short: "Print syntax trees as JavaScript and TypeScript source",
		Long: `tsemit turns syntax tree documents into source text.

A document is a YAML (or JSON) description of a tree, one mapping per node
with its "kind" and fields. The emitter writes the JavaScript output of each
document, with optional source maps, declaration files and bundling, as
configured by a TOML file and TSEMIT_* environment variables.

Examples:
  tsemit print expr.yaml --hint expression   # Print one node to stdout
  tsemit emit src/*.ts.yaml                  # Write outputs for every document
  tsemit emit --watch src/*.ts.yaml          # Re-emit when a document changes
  tsemit config --print                      # Show the effective options`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := logger.ParseColor(flags.color); !ok {
				return exitcode.Set(errors.Newf("invalid value %q for --color", flags.color), exitcode.InvalidArguments)
			}
			if err := logger.Initialize(flags.jsonLog, flags.verbose); err != nil {
				return errors.Wrap(err, "initializing logger")
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "TOML file with compiler options")
	root.PersistentFlags().BoolVar(&flags.jsonLog, "json-log", false, "Write log lines as JSON")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log debug details")
	root.PersistentFlags().StringVar(&flags.color, "color", "auto", "Use color in diagnostics (auto, always, never)")

	root.AddCommand(newPrintCommand(flags))
	root.AddCommand(newEmitCommand(flags))
	root.AddCommand(newConfigCommand(flags))
	return root
}

func main() {
	root := newRootCommand()
	err := root.Execute()
	logger.Sync()
	if err != nil && exitcode.Get(err) != exitcode.OutputsGenerated {
		root.PrintErrln("error: " + err.Error())
		for _, hint := range errors.GetAllHints(err) {
			root.PrintErrln("hint: " + hint)
		}
	}
	exitcode.Exit(err)
}
