package pocogen

import (
	"github.com/urfave/cli/v2"

	"github.com/CognitoIQ/xsd2poco/internal/commandline"
)

// App returns the command-line application of the xsd2poco command.
// Options given on the command line are applied to cfg before any
// schema is converted.
func (cfg *Config) App() *cli.App {
	return &cli.App{
		Name:            "xsd2poco",
		Usage:           "generate class declarations from XML Schema documents",
		UsageText:       "xsd2poco (-f file.xsd | -d dir) [-n namespace] [-l lang] [-o dir]",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "schema `FILE` to convert",
			},
			&cli.StringFlag{
				Name:    "directory",
				Aliases: []string{"d"},
				Usage:   "convert every *.xsd file in `DIR`",
			},
			&cli.StringFlag{
				Name:    "namespace",
				Aliases: []string{"n"},
				Usage:   "root namespace of the generated code",
			},
			&cli.StringFlag{
				Name:    "lang",
				Aliases: []string{"l"},
				Usage:   "output language (csharp, go)",
				Value:   cfg.lang.String(),
			},
			&cli.StringFlag{
				Name:    "output-dir",
				Aliases: []string{"o"},
				Usage:   "write generated files to `DIR` instead of next to each schema",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log debug information",
			},
		},
		Action: cfg.run,
	}
}

func (cfg *Config) run(cctx *cli.Context) error {
	files, err := commandline.Sources(cctx.String("file"), cctx.String("directory"))
	if err != nil {
		return err
	}
	lang, err := ParseLanguage(cctx.String("lang"))
	if err != nil {
		return err
	}
	cfg.Option(OutputLanguage(lang))
	if cctx.IsSet("namespace") {
		cfg.Option(Namespace(cctx.String("namespace")))
	}
	if cctx.IsSet("output-dir") {
		cfg.Option(OutputDir(cctx.String("output-dir")))
	}
	if cctx.Bool("verbose") {
		cfg.Option(LogLevel(5))
	}
	cfg.debugf("converting %d schema file(s) to %s", len(files), lang)
	return cfg.GenFiles(files...)
}

// GenCLI creates source files from XML Schema documents. It is meant
// to be called as part of a command, and can be used to change the
// behavior of the xsd2poco command in ways that its command-line
// arguments do not allow. The arguments are the same as those passed
// to the xsd2poco command.
func (cfg *Config) GenCLI(arguments ...string) error {
	return cfg.App().Run(append([]string{"xsd2poco"}, arguments...))
}
