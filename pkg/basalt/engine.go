// Package basalt is the embedding API for the Basalt interpreter. It
// wires the lexer, parser and interpreter together with OS-backed host
// services and turns script results into process exit codes.
package basalt

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	berrors "github.com/BasaltDev/BasaltLang/internal/errors"
	"github.com/BasaltDev/BasaltLang/internal/interp"
	"github.com/BasaltDev/BasaltLang/internal/lexer"
	"github.com/BasaltDev/BasaltLang/internal/parser"
	"github.com/BasaltDev/BasaltLang/pkg/platform"
)

// Engine runs Basalt programs. The zero value is not usable; create one
// with NewEngine and override fields before the first Run call as
// needed.
type Engine struct {
	Output    io.Writer
	ErrOutput io.Writer
	Host      interp.Host
	Args      []string
	Color     bool
}

// NewEngine creates an Engine bound to the process's standard streams
// and the OS host services.
func NewEngine() *Engine {
	return &Engine{
		Output:    os.Stdout,
		ErrOutput: os.Stderr,
		Host:      platform.NewConsole(),
		Color:     true,
	}
}

// RunFile interprets a script file. The script's directory becomes the
// base for file and import paths. The returned int is the process exit
// code: 0 on success, 1 on any interpreter error, or the status passed
// to an explicit exit(n).
func (e *Engine) RunFile(path string) int {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		fmt.Fprintf(e.ErrOutput, "Error: cannot read file '%s'\n", path)
		return 1
	}
	return e.RunSource(string(data), filepath.Dir(abs))
}

// RunSource interprets source text with the given base directory for
// file and import paths.
func (e *Engine) RunSource(source, dir string) int {
	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		fmt.Fprint(e.ErrOutput, berrors.FormatAll(berrors.FromParserErrors(errs), e.Color))
		return 1
	}

	i := interp.New(e.Output,
		interp.WithHost(e.Host),
		interp.WithArgs(e.Args),
		interp.WithBaseDir(dir),
		interp.WithErrorOutput(e.ErrOutput),
		interp.WithColor(e.Color),
	)
	if err := i.Run(program); err != nil {
		return e.report(err)
	}
	return 0
}

// report renders an interpreter error and maps it to an exit code.
func (e *Engine) report(err error) int {
	switch v := err.(type) {
	case *interp.ExitError:
		return v.Code
	case *berrors.RuntimeError:
		fmt.Fprintln(e.ErrOutput, v.Format(e.Color))
		return 1
	default:
		fmt.Fprintln(e.ErrOutput, err)
		return 1
	}
}
