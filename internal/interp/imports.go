package interp

import (
	"path/filepath"

	"github.com/BasaltDev/BasaltLang/internal/ast"
	berrors "github.com/BasaltDev/BasaltLang/internal/errors"
	"github.com/BasaltDev/BasaltLang/internal/lexer"
	"github.com/BasaltDev/BasaltLang/internal/parser"
)

// execImport lexes and interprets the target file, then merges its
// variable, function, class and instance tables into the caller's.
// Imported entries override caller entries on conflict — one rule for
// all four tables.
func (i *Interpreter) execImport(s *ast.ImportStatement) error {
	pathValue, err := i.evalExpression(s.Path)
	if err != nil {
		return err
	}
	str, ok := pathValue.(*StringValue)
	if !ok {
		return i.errorf("invalid argument '%s' passed to import", pathValue.String())
	}
	path := filepath.Join(i.baseDir, filepath.FromSlash(str.Value))
	data, err := i.host.ReadFile(path)
	if err != nil {
		return i.errorf("cannot import file '%s'", str.Value)
	}

	l := lexer.New(string(data))
	p := parser.New(l)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		first := berrors.FromParserErrors(errs)[0]
		return i.errorf("import of '%s' failed at line %d: %s", str.Value, first.Line, first.Message)
	}

	sub := i.nested(i.importEnvironment())
	sub.functions = make(map[string]*FunctionValue)
	sub.classes = make(map[string]*ClassValue)
	sub.instances = make(map[string]*InstanceValue)
	sub.baseDir = filepath.Dir(path)
	sub.line = 1
	if err := sub.Run(program); err != nil {
		if rerr, ok := err.(*berrors.RuntimeError); ok {
			return i.errorf("import of '%s' failed at line %d: %s", str.Value, rerr.Line, rerr.Message)
		}
		return err
	}

	i.env.Merge(sub.env)
	for name, fn := range sub.functions {
		i.functions[name] = fn
	}
	for name, class := range sub.classes {
		i.classes[name] = class
	}
	for name, instance := range sub.instances {
		i.instances[name] = instance
	}
	return nil
}

// importEnvironment seeds the imported file's top level the same way a
// directly-run script is seeded, copying the caller's argv/argc.
func (i *Interpreter) importEnvironment() *Environment {
	env := NewEnvironment()
	env.Declare("null", Null, false)
	for _, name := range []string{"argv", "argc"} {
		if b, ok := i.env.Get(name); ok {
			env.Declare(name, b.Value, false)
		}
	}
	return env
}
