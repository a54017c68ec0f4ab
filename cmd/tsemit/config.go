package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webcarrot/tsemit/internal/config"
)

func newConfigCommand(flags *rootFlags) *cobra.Command {
	var printOptions bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Check the compiler options",
		Long: `Check the compiler options read from --config and TSEMIT_* environment
variables. With --print the effective options are written as TOML.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := flags.loadOptions()
			if err != nil {
				return err
			}
			if printOptions {
				return config.Encode(cmd.OutOrStdout(), options)
			}
			source := "defaults and environment"
			if flags.configPath != "" {
				source = flags.configPath
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Options from %s are valid\n", source)
			return nil
		},
	}

	cmd.Flags().BoolVar(&printOptions, "print", false, "Write the effective options as TOML")
	return cmd
}
