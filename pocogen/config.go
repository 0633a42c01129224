package pocogen

import (
	"fmt"
	"strings"
)

// A Config holds user-defined overrides that are used when generating
// source code from an xsd document.
type Config struct {
	logger    Logger
	loglevel  int
	namespace string
	lang      Language
	outdir    string
}

func (cfg *Config) logf(format string, v ...interface{}) {
	if cfg.logger != nil && cfg.loglevel > 0 {
		cfg.logger.Printf(format, v...)
	}
}
func (cfg *Config) debugf(format string, v ...interface{}) {
	if cfg.logger != nil && cfg.loglevel > 3 {
		cfg.logger.Printf(format, v...)
	}
}

// An Option is used to customize a Config.
type Option func(*Config) Option

// DefaultOptions are the default options for code generation: C#
// classes in a namespace named after each schema file, written next
// to the schema.
var DefaultOptions = []Option{
	OutputLanguage(CSharp),
	Namespace(""),
	OutputDir(""),
}

// The Option method is used to configure an existing configuration.
// The return value of the Option method can be used to revert the
// final option to its previous setting.
func (cfg *Config) Option(opts ...Option) (previous Option) {
	for _, opt := range opts {
		previous = opt(cfg)
	}
	return previous
}

// Types implementing the Logger interface can receive
// debug information from the code generation process.
// The Logger interface is implemented by *log.Logger.
type Logger interface {
	Printf(format string, v ...interface{})
}

// LogOutput specifies an optional Logger for progress and debug
// information about the code generation process.
func LogOutput(l Logger) Option {
	return func(cfg *Config) Option {
		prev := cfg.logger
		cfg.logger = l
		return LogOutput(prev)
	}
}

// LogLevel sets the verbosity of messages sent to the error log
// configured with the LogOutput option. The level parameter should
// be a positive integer between 1 and 5, with 5 providing the greatest
// verbosity.
func LogLevel(level int) Option {
	return func(cfg *Config) Option {
		prev := cfg.loglevel
		cfg.loglevel = level
		return LogLevel(prev)
	}
}

// Namespace sets the root namespace. The namespace of each generated
// file is the root namespace and the base name of the schema file,
// joined with a dot. A blank root namespace is ignored.
func Namespace(root string) Option {
	return func(cfg *Config) Option {
		prev := cfg.namespace
		cfg.namespace = root
		return Namespace(prev)
	}
}

// OutputDir sets the directory generated files are written to. If
// dir is empty, files are written alongside their schema.
func OutputDir(dir string) Option {
	return func(cfg *Config) Option {
		prev := cfg.outdir
		cfg.outdir = dir
		return OutputDir(prev)
	}
}

// OutputLanguage selects the language of the generated source.
func OutputLanguage(lang Language) Option {
	return func(cfg *Config) Option {
		prev := cfg.lang
		cfg.lang = lang
		return OutputLanguage(prev)
	}
}

// A Language is a target language for generated source code.
type Language int

const (
	// CSharp generates partial classes with XmlSerializer attributes.
	CSharp Language = iota
	// Go generates struct types with encoding/xml field tags.
	Go
)

func (l Language) String() string {
	switch l {
	case CSharp:
		return "csharp"
	case Go:
		return "go"
	}
	return fmt.Sprintf("Language(%d)", int(l))
}

// Ext returns the file extension of source files in the language.
func (l Language) Ext() string {
	if l == Go {
		return ".go"
	}
	return ".cs"
}

// ParseLanguage returns the Language with the given name. Matching
// is case-insensitive.
func ParseLanguage(name string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "csharp", "c#", "cs":
		return CSharp, nil
	case "go", "golang":
		return Go, nil
	}
	return 0, fmt.Errorf("unsupported language %q", name)
}

// module returns the dotted namespace of the file generated for the
// schema with the given base name.
func (cfg *Config) module(base string) string {
	if strings.TrimSpace(cfg.namespace) == "" {
		return base
	}
	return cfg.namespace + "." + base
}
