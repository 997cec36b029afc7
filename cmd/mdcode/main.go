// mdcode renders a markdown document to HTML,
// syntax-highlighting its fenced code blocks.
//
//	mdcode [options] FILE
//
// Pass "-" as FILE to read from stdin.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"html/template"
	"io"
	"log"
	"os"

	"braces.dev/errtrace"
	"go.abhg.dev/mdcode/internal/errdefer"
	"go.abhg.dev/mdcode/markdown"
	"go.abhg.dev/mdcode/syntax/chromalang"
	"go.abhg.dev/mdcode/syntax/languages"
)

var _version = "dev"

func main() {
	cmd := mainCmd{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdin  io.Reader // == os.Stdin
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		// Parse already printed the error.
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("mdcode: %+v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) (err error) {
	debugw, closeDebug, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer func() {
		err = errors.Join(err, closeDebug())
	}()
	debugLog := log.New(debugw, "", 0)

	src, err := cmd.readInput(opts.File)
	if err != nil {
		return errtrace.Wrap(err)
	}

	langs := languages.New()
	for _, name := range opts.Chroma {
		fn, ok := chromalang.Func(string(name))
		if !ok {
			cmd.log.Printf("mdcode: skipping unknown chroma language %q", name)
			continue
		}
		langs.Register(fn, string(name))
	}
	debugLog.Printf("languages: %v", langs.Tags())

	var body bytes.Buffer
	conv := markdown.Converter{Languages: langs}
	if err := conv.Convert(src, &body); err != nil {
		return errtrace.Wrap(fmt.Errorf("convert %v: %w", opts.File, err))
	}

	out := cmd.Stdout
	if opts.Output != "" {
		f, err := os.Create(opts.Output)
		if err != nil {
			return errtrace.Wrap(err)
		}
		defer errdefer.Close(&err, f)
		out = f
	}

	if !opts.Standalone {
		_, err := out.Write(body.Bytes())
		return errtrace.Wrap(err)
	}

	return errtrace.Wrap(_pageTmpl.Execute(out, pageData{
		Title: opts.Title,
		Body:  template.HTML(body.String()),
	}))
}

func (cmd *mainCmd) readInput(name string) ([]byte, error) {
	if name == "-" {
		return errtrace.Wrap2(io.ReadAll(cmd.Stdin))
	}
	return errtrace.Wrap2(os.ReadFile(name))
}

type pageData struct {
	Title string
	Body  template.HTML
}

var _pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{ .Title }}</title>
</head>
<body>
{{ .Body }}</body>
</html>
`))
