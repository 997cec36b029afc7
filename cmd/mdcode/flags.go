package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/peterbourgon/ff/v3"
	"go.abhg.dev/mdcode/internal/flagvalue"
)

var errInvalidArguments = errors.New("invalid arguments")

const _usage = `USAGE: mdcode [OPTIONS] FILE

Renders the markdown document FILE to HTML,
syntax-highlighting its fenced code blocks.
Pass "-" as FILE to read from stdin.

OPTIONS

  -out FILE       write output to FILE instead of stdout
  -standalone     wrap the output in a complete HTML page
  -title TITLE    title of the page generated by -standalone
  -chroma LANG    also highlight LANG with a Chroma lexer; repeatable
  -debug[=FILE]   print debugging output to stderr or FILE
  -version        report the tool version
  -h, -help       print this message

Options may also be set with MDCODE_* environment variables,
e.g. MDCODE_TITLE for -title.
`

// params holds all arguments for mdcode.
type params struct {
	version bool

	Output     string
	Title      string
	Standalone bool
	Chroma     []chromaLang
	Debug      flagvalue.FileSwitch

	File string
}

// chromaLang names a Chroma lexer to add to the language registry.
type chromaLang string

var _ flag.Getter = (*chromaLang)(nil)

func (cl *chromaLang) Get() any       { return string(*cl) }
func (cl *chromaLang) String() string { return string(*cl) }

func (cl *chromaLang) Set(s string) error {
	if s == "" {
		return errors.New("language name must not be empty")
	}
	*cl = chromaLang(s)
	return nil
}

// cliParser parses the command line arguments for mdcode.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	fset := flag.NewFlagSet("mdcode", flag.ContinueOnError)
	fset.SetOutput(cmd.Stderr)
	fset.Usage = func() {
		fmt.Fprint(cmd.Stderr, _usage)
	}

	var p params

	// Output:
	fset.StringVar(&p.Output, "out", "", "")
	fset.BoolVar(&p.Standalone, "standalone", false, "")
	fset.StringVar(&p.Title, "title", "", "")

	// Highlighting:
	fset.Var(flagvalue.ListOf(&p.Chroma), "chroma", "")

	// Program-level:
	fset.Var(&p.Debug, "debug", "")
	fset.BoolVar(&p.version, "version", false, "")

	return &p, fset
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, fset := cmd.newFlagSet()
	if err := ff.Parse(fset, args, ff.WithEnvVarPrefix("MDCODE")); err != nil {
		return nil, err
	}

	if p.version {
		fmt.Fprintln(cmd.Stdout, "mdcode", _version)
		return nil, flag.ErrHelp
	}

	args = fset.Args()
	switch len(args) {
	case 0:
		fmt.Fprintln(cmd.Stderr, "Please provide a file to render.")
		fset.Usage()
		return nil, errInvalidArguments
	case 1:
		p.File = args[0]
	default:
		fmt.Fprintf(cmd.Stderr, "Too many arguments: %q\n", args[1:])
		fset.Usage()
		return nil, errInvalidArguments
	}

	return p, nil
}
