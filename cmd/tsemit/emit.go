package main

import (
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/webcarrot/tsemit/internal/ast"
	"github.com/webcarrot/tsemit/internal/astio"
	"github.com/webcarrot/tsemit/internal/config"
	"github.com/webcarrot/tsemit/internal/emitter"
	"github.com/webcarrot/tsemit/internal/errors"
	"github.com/webcarrot/tsemit/internal/exitcode"
	"github.com/webcarrot/tsemit/internal/fs"
	"github.com/webcarrot/tsemit/internal/logger"
)

// Documents carry no binding information, so only well-known globals count
// as taken names and there are no aliases to mark.
type cliResolver struct{}

func (cliResolver) HasGlobalName(name string) bool          { return config.IsKnownGlobal(name) }
func (cliResolver) CollectLinkedAliases(id *ast.Identifier) {}

func newEmitCommand(flags *rootFlags) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "emit <documents...>",
		Short: "Write the outputs of syntax tree documents",
		Long: `Write the JavaScript, source map and declaration outputs of each document.

Every document describes one source file. "a.ts.yaml" describes "a.ts", which
is emitted next to it, or under out_dir when one is configured.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := flags.loadOptions()
			if err != nil {
				return err
			}
			run := func() error {
				return emitDocuments(cmd.OutOrStdout(), cmd.ErrOrStderr(), fs.RealFS(), args, options, flags.terminalInfo())
			}
			if !watch {
				return run()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			if err := run(); err != nil && exitcode.Get(err) != exitcode.OutputsGenerated {
				logger.Logger.Errorw("Emit failed", "error", err)
			}
			return watchDocuments(ctx, fs.RealFS(), args, func() {
				if err := run(); err != nil && exitcode.Get(err) != exitcode.OutputsGenerated {
					logger.Logger.Errorw("Emit failed", "error", err)
				}
			})
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Emit again whenever a document changes")
	return cmd
}

func emitDocuments(stdout io.Writer, stderr io.Writer, files fs.FS, paths []string, options config.Options, info logger.TerminalInfo) error {
	decoder := astio.NewDecoder()
	sourceFiles := make([]*ast.SourceFile, 0, len(paths))
	inputs := make([]string, 0, 2*len(paths))

	for _, path := range paths {
		contents, err := files.ReadFile(path)
		if err != nil {
			return exitcode.Set(err, exitcode.InvalidArguments)
		}
		name := sourceFileName(path)
		sourceFile, err := decoder.DecodeSourceFile(name, []byte(contents))
		if err != nil {
			return exitcode.Set(errors.Wrapf(err, "reading %q", path), exitcode.InvalidArguments)
		}
		sourceFiles = append(sourceFiles, sourceFile)
		inputs = append(inputs, sourceFile.FileName, path)
	}

	host := emitter.NewHost(files, options, inputs)
	result, err := emitter.EmitFiles(cliResolver{}, host, sourceFiles, emitter.EmitOptions{})
	if err != nil {
		return err
	}

	logger.PrintMessages(stderr, result.Diagnostics, info)
	for _, path := range result.EmittedFiles {
		fmt.Fprintf(stdout, "TSFILE: %s\n", path)
	}

	if result.EmitSkipped {
		return exitcode.Set(result.Err(), exitcode.OutputsSkipped)
	}
	if len(result.Diagnostics) > 0 {
		return exitcode.Set(errors.Newf("emitted with %d diagnostics", len(result.Diagnostics)), exitcode.OutputsGenerated)
	}
	return nil
}
