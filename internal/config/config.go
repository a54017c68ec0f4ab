package config

import (
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/webcarrot/tsemit/internal/errors"
)

var ErrInvalidOption = errors.New("invalid compiler option")

type ScriptTarget uint8

const (
	// These are arranged such that later releases compare greater than
	// earlier ones
	ES3 ScriptTarget = iota
	ES5
	ES2015
	ES2016
	ES2017
	ES2018
	ESNext
)

var scriptTargetNames = []string{"es3", "es5", "es2015", "es2016", "es2017", "es2018", "esnext"}

type ModuleKind uint8

const (
	ModuleNone ModuleKind = iota
	ModuleCommonJS
	ModuleAMD
	ModuleUMD
	ModuleSystem
	ModuleES2015
	ModuleESNext
)

var moduleKindNames = []string{"none", "commonjs", "amd", "umd", "system", "es2015", "esnext"}

type NewLineKind uint8

const (
	NewLineLF NewLineKind = iota
	NewLineCRLF
)

var newLineKindNames = []string{"lf", "crlf"}

type JSXEmit uint8

const (
	JSXNone JSXEmit = iota
	JSXPreserve
	JSXReact
)

var jsxEmitNames = []string{"none", "preserve", "react"}

func parseEnum(names []string, what string, text string) (uint8, error) {
	lower := strings.ToLower(text)
	for i, name := range names {
		if name == lower {
			return uint8(i), nil
		}
	}
	return 0, errors.WithHintf(
		errors.Mark(errors.Newf("unknown %s %q", what, text), ErrInvalidOption),
		"valid values are: %s", strings.Join(names, ", "))
}

func (t ScriptTarget) String() string               { return scriptTargetNames[t] }
func (t ScriptTarget) MarshalText() ([]byte, error) { return []byte(t.String()), nil }
func (k ModuleKind) String() string                 { return moduleKindNames[k] }
func (k ModuleKind) MarshalText() ([]byte, error)   { return []byte(k.String()), nil }
func (k NewLineKind) String() string                { return newLineKindNames[k] }
func (k NewLineKind) MarshalText() ([]byte, error)  { return []byte(k.String()), nil }
func (j JSXEmit) String() string                    { return jsxEmitNames[j] }
func (j JSXEmit) MarshalText() ([]byte, error)      { return []byte(j.String()), nil }

func (t *ScriptTarget) UnmarshalText(text []byte) error {
	v, err := parseEnum(scriptTargetNames, "target", string(text))
	*t = ScriptTarget(v)
	return err
}

func (k *ModuleKind) UnmarshalText(text []byte) error {
	v, err := parseEnum(moduleKindNames, "module kind", string(text))
	*k = ModuleKind(v)
	return err
}

func (k *NewLineKind) UnmarshalText(text []byte) error {
	v, err := parseEnum(newLineKindNames, "new line kind", string(text))
	*k = NewLineKind(v)
	return err
}

func (j *JSXEmit) UnmarshalText(text []byte) error {
	v, err := parseEnum(jsxEmitNames, "jsx mode", string(text))
	*j = JSXEmit(v)
	return err
}

// Options holds the compiler options read by the emitter. Everything else
// a compiler would be configured with (type checking, module resolution) is
// decided before the tree reaches this module.
type Options struct {
	Target     ScriptTarget `mapstructure:"target" toml:"target"`
	Module     ModuleKind   `mapstructure:"module" toml:"module"`
	NewLine    NewLineKind  `mapstructure:"new_line" toml:"new_line"`
	IndentSize int          `mapstructure:"indent_size" toml:"indent_size"`
	JSX        JSXEmit      `mapstructure:"jsx" toml:"jsx"`

	RemoveComments bool `mapstructure:"remove_comments" toml:"remove_comments"`
	NoEmitHelpers  bool `mapstructure:"no_emit_helpers" toml:"no_emit_helpers"`
	NoEmit         bool `mapstructure:"no_emit" toml:"no_emit"`
	EmitBOM        bool `mapstructure:"emit_bom" toml:"emit_bom"`

	Declaration         bool   `mapstructure:"declaration" toml:"declaration"`
	EmitDeclarationOnly bool   `mapstructure:"emit_declaration_only" toml:"emit_declaration_only"`
	DeclarationMap      bool   `mapstructure:"declaration_map" toml:"declaration_map"`
	DeclarationDir      string `mapstructure:"declaration_dir" toml:"declaration_dir"`

	SourceMap       bool   `mapstructure:"source_map" toml:"source_map"`
	InlineSourceMap bool   `mapstructure:"inline_source_map" toml:"inline_source_map"`
	InlineSources   bool   `mapstructure:"inline_sources" toml:"inline_sources"`
	MapRoot         string `mapstructure:"map_root" toml:"map_root"`
	SourceRoot      string `mapstructure:"source_root" toml:"source_root"`

	OutFile string `mapstructure:"out_file" toml:"out_file"`
	OutDir  string `mapstructure:"out_dir" toml:"out_dir"`
	RootDir string `mapstructure:"root_dir" toml:"root_dir"`

	// Write a bundle info file next to an "out_file" bundle
	References bool `mapstructure:"references" toml:"references"`

	ListEmittedFiles    bool `mapstructure:"list_emitted_files" toml:"list_emitted_files"`
	ExtendedDiagnostics bool `mapstructure:"extended_diagnostics" toml:"extended_diagnostics"`
}

func Default() Options {
	return Options{
		Target:     ES5,
		Module:     ModuleCommonJS,
		IndentSize: 4,
	}
}

func (o *Options) NewLineString() string {
	if o.NewLine == NewLineCRLF {
		return "\r\n"
	}
	return "\n"
}

// SourceMapsEnabled reports whether JavaScript outputs get a source map in
// any form.
func (o *Options) SourceMapsEnabled() bool {
	return o.SourceMap || o.InlineSourceMap
}

func (o *Options) Validate() error {
	invalid := func(format string, args ...interface{}) error {
		return errors.Mark(errors.Newf(format, args...), ErrInvalidOption)
	}
	if o.SourceMap && o.InlineSourceMap {
		return invalid("options \"source_map\" and \"inline_source_map\" cannot be used together")
	}
	if o.InlineSources && !o.SourceMapsEnabled() {
		return invalid("option \"inline_sources\" requires \"source_map\" or \"inline_source_map\"")
	}
	if o.MapRoot != "" && !o.SourceMap {
		return invalid("option \"map_root\" requires \"source_map\"")
	}
	if o.DeclarationMap && !o.Declaration {
		return invalid("option \"declaration_map\" requires \"declaration\"")
	}
	if o.EmitDeclarationOnly && !o.Declaration {
		return invalid("option \"emit_declaration_only\" requires \"declaration\"")
	}
	if o.OutFile != "" {
		switch o.Module {
		case ModuleNone, ModuleAMD, ModuleSystem:
		default:
			return errors.WithHint(
				invalid("option \"out_file\" cannot be used with module kind %q", o.Module),
				"only \"amd\" and \"system\" modules can be concatenated")
		}
	}
	if o.References && o.OutFile == "" {
		return invalid("option \"references\" requires \"out_file\"")
	}
	if o.IndentSize < 0 {
		return invalid("option \"indent_size\" must not be negative")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("target", d.Target.String())
	v.SetDefault("module", d.Module.String())
	v.SetDefault("new_line", d.NewLine.String())
	v.SetDefault("indent_size", d.IndentSize)
	v.SetDefault("jsx", d.JSX.String())
}

// NewViper returns a viper instance with defaults and "TSEMIT_" environment
// variables bound. A non-empty "path" names a TOML file to read.
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("TSEMIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	// AutomaticEnv only affects keys viper already knows about
	for _, key := range optionKeys() {
		if err := v.BindEnv(key); err != nil {
			return nil, errors.Wrapf(err, "binding environment variable for %q", key)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %q", path)
		}
	}
	return v, nil
}

// FromViper decodes and validates the options held by "v".
func FromViper(v *viper.Viper) (Options, error) {
	var options Options
	hook := viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc())
	if err := v.Unmarshal(&options, hook); err != nil {
		return Options{}, errors.Mark(errors.Wrap(err, "decoding compiler options"), ErrInvalidOption)
	}
	if err := options.Validate(); err != nil {
		return Options{}, err
	}
	return options, nil
}

func Load(path string) (Options, error) {
	v, err := NewViper(path)
	if err != nil {
		return Options{}, err
	}
	return FromViper(v)
}

// Encode writes "options" as TOML in the same shape Load reads.
func Encode(w io.Writer, options Options) error {
	if err := toml.NewEncoder(w).Encode(options); err != nil {
		return errors.Wrap(err, "encoding compiler options")
	}
	return nil
}

func optionKeys() []string {
	return []string{
		"target", "module", "new_line", "indent_size", "jsx",
		"remove_comments", "no_emit_helpers", "no_emit", "emit_bom",
		"declaration", "emit_declaration_only", "declaration_map", "declaration_dir",
		"source_map", "inline_source_map", "inline_sources", "map_root", "source_root",
		"out_file", "out_dir", "root_dir", "references",
		"list_emitted_files", "extended_diagnostics",
	}
}
