// Package repl implements the interactive Basalt shell. Variables,
// functions, classes and instances persist across lines; interpreter
// errors are printed but do not end the session.
package repl

import (
	"bufio"
	"fmt"
	"io"

	berrors "github.com/BasaltDev/BasaltLang/internal/errors"
	"github.com/BasaltDev/BasaltLang/internal/interp"
	"github.com/BasaltDev/BasaltLang/internal/lexer"
	"github.com/BasaltDev/BasaltLang/internal/parser"
)

// Prompt is printed before each input line.
const Prompt = "> "

// Options configures a REPL session.
type Options struct {
	Host  interp.Host
	Args  []string
	Dir   string
	Color bool
}

// Start reads lines from in and interprets each one, writing program
// output to out and errors to errOut. It returns when the input is
// exhausted or the script calls exit; the returned int is the exit code.
func Start(in io.Reader, out, errOut io.Writer, opts Options) int {
	i := interp.New(out,
		interp.WithHost(opts.Host),
		interp.WithArgs(opts.Args),
		interp.WithBaseDir(opts.Dir),
		interp.WithErrorOutput(errOut),
		interp.WithColor(opts.Color),
	)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, Prompt)
		if !scanner.Scan() {
			return 0
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		l := lexer.New(line)
		p := parser.New(l)
		program := p.ParseProgram()
		if errs := p.Errors(); len(errs) > 0 {
			fmt.Fprint(errOut, berrors.FormatAll(berrors.FromParserErrors(errs), opts.Color))
			continue
		}

		if err := i.Run(program); err != nil {
			if exit, ok := err.(*interp.ExitError); ok {
				return exit.Code
			}
			if rerr, ok := err.(*berrors.RuntimeError); ok {
				fmt.Fprintln(errOut, rerr.Format(opts.Color))
				continue
			}
			fmt.Fprintln(errOut, err)
			continue
		}
		fmt.Fprintln(out)
	}
}
