package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/webcarrot/tsemit/internal/astio"
	"github.com/webcarrot/tsemit/internal/config"
	"github.com/webcarrot/tsemit/internal/errors"
	"github.com/webcarrot/tsemit/internal/exitcode"
	"github.com/webcarrot/tsemit/internal/fs"
	"github.com/webcarrot/tsemit/internal/printer"
)

func newPrintCommand(flags *rootFlags) *cobra.Command {
	var hintName string
	var removeComments bool

	cmd := &cobra.Command{
		Use:   "print <document>",
		Short: "Print one syntax tree document to stdout",
		Long: `Print one syntax tree document to stdout.

With the default "source-file" hint the document is a source file, or a list
of its statements. Any other hint prints a single node of any kind.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hint, err := printer.ParseHint(hintName)
			if err != nil {
				return exitcode.Set(err, exitcode.InvalidArguments)
			}
			options, err := flags.loadOptions()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("remove-comments") {
				options.RemoveComments = removeComments
			}
			return printDocument(cmd.OutOrStdout(), fs.RealFS(), args[0], hint, options)
		},
	}

	cmd.Flags().StringVar(&hintName, "hint", printer.HintSourceFile.String(), "Syntactic role of the printed node")
	cmd.Flags().BoolVar(&removeComments, "remove-comments", false, "Leave out all comments")
	return cmd
}

func printDocument(out io.Writer, files fs.FS, path string, hint printer.Hint, options config.Options) (err error) {
	contents, err := files.ReadFile(path)
	if err != nil {
		return err
	}

	printerOptions := printer.OptionsFromConfig(&options)
	printerOptions.SourceMap = false
	p := printer.Get(printerOptions, printer.Handlers{HasGlobalName: config.IsKnownGlobal})
	defer printer.Put(p)

	// A document can put a node where its hint does not allow it
	defer func() {
		if r := recover(); r != nil {
			internal, ok := r.(printer.InternalError)
			if !ok {
				panic(r)
			}
			err = errors.Mark(errors.Wrapf(internal, "printing %q", path), printer.ErrInternal)
		}
	}()

	decoder := astio.NewDecoder()
	var text string
	if hint == printer.HintSourceFile {
		file, err := decoder.DecodeSourceFile(sourceFileName(path), []byte(contents))
		if err != nil {
			return errors.Wrapf(err, "reading %q", path)
		}
		text = p.PrintFile(file)
	} else {
		node, err := decoder.Decode([]byte(contents))
		if err != nil {
			return errors.Wrapf(err, "reading %q", path)
		}
		text = p.PrintNode(hint, node, nil)
	}

	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, err = io.WriteString(out, text)
	return err
}

var documentExtensions = []string{".yaml", ".yml", ".ast.json"}

// sourceFileName names the source file a document describes: "a.ts.yaml"
// describes "a.ts", and "a.yaml" describes "a.ts".
func sourceFileName(documentPath string) string {
	name := documentPath
	for _, ext := range documentExtensions {
		if strings.HasSuffix(name, ext) {
			name = strings.TrimSuffix(name, ext)
			break
		}
	}
	for _, ext := range []string{".ts", ".tsx", ".js", ".jsx", ".mjs", ".cjs", ".json"} {
		if strings.HasSuffix(name, ext) {
			return name
		}
	}
	return name + ".ts"
}
