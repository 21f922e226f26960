package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/BasaltDev/BasaltLang/internal/ast"
	berrors "github.com/BasaltDev/BasaltLang/internal/errors"
)

// ExitError is returned when a script executes exit(n). It carries the
// requested process exit status; embedders decide how to honor it.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit with status %d", e.Code)
}

// Interpreter walks a Basalt AST and executes it.
//
// One Interpreter instance owns one environment. Loop bodies run in the
// same instance (shared environment); function and method calls spawn a
// nested instance with an isolated environment. Function calls share the
// function, class and instance tables; method calls share the class and
// instance tables and use the instance's method table as their function
// table.
type Interpreter struct {
	output    io.Writer
	errOutput io.Writer
	host      Host

	env       *Environment
	functions map[string]*FunctionValue
	classes   map[string]*ClassValue
	instances map[string]*InstanceValue

	baseDir  string
	colorize bool

	// execution state
	line        int
	inFunction  bool
	returnValue Value
	breaking    bool
	continuing  bool

	// set while executing a class method; self-field installs go here
	self *Environment
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithHost injects the environment services.
func WithHost(h Host) Option {
	return func(i *Interpreter) { i.host = h }
}

// WithArgs seeds the immutable argv/argc bindings with the program
// arguments.
func WithArgs(args []string) Option {
	return func(i *Interpreter) {
		elements := make([]Value, len(args))
		for n, a := range args {
			elements[n] = &StringValue{Value: a}
		}
		i.env.Declare("argv", &ListValue{Elements: elements}, false)
		i.env.Declare("argc", &IntegerValue{Value: int64(len(args))}, false)
	}
}

// WithBaseDir sets the directory file and import paths resolve against,
// normally the directory of the running script.
func WithBaseDir(dir string) Option {
	return func(i *Interpreter) { i.baseDir = dir }
}

// WithErrorOutput redirects issue (warning) output; defaults to stderr.
func WithErrorOutput(w io.Writer) Option {
	return func(i *Interpreter) { i.errOutput = w }
}

// WithColor enables ANSI color on issue output.
func WithColor(enabled bool) Option {
	return func(i *Interpreter) { i.colorize = enabled }
}

// New creates an interpreter writing program output to the given writer.
func New(output io.Writer, opts ...Option) *Interpreter {
	i := &Interpreter{
		output:    output,
		errOutput: os.Stderr,
		host:      nopHost{},
		env:       NewEnvironment(),
		functions: make(map[string]*FunctionValue),
		classes:   make(map[string]*ClassValue),
		instances: make(map[string]*InstanceValue),
		line:      1,
	}
	i.env.Declare("null", Null, false)
	for _, opt := range opts {
		opt(i)
	}
	if _, ok := i.env.Get("argv"); !ok {
		WithArgs(nil)(i)
	}
	return i
}

// Run executes a program. It returns nil on success, an *ExitError when
// the script called exit, or a *errors.RuntimeError on the first fatal
// error.
func (i *Interpreter) Run(program *ast.Program) error {
	return i.execBlock(program.Statements)
}

// execBlock runs statements in order, stopping early when a break or
// continue signal is raised; the innermost loop driver consumes the
// signal.
func (i *Interpreter) execBlock(stmts []ast.Statement) error {
	for _, stmt := range stmts {
		if err := i.execStatement(stmt); err != nil {
			return err
		}
		if i.breaking || i.continuing {
			return nil
		}
	}
	return nil
}

func (i *Interpreter) execStatement(stmt ast.Statement) error {
	i.line = stmt.Pos().Line
	switch s := stmt.(type) {
	case *ast.LetStatement:
		return i.execLet(s)
	case *ast.MutabilityStatement:
		return i.execMutability(s)
	case *ast.PrintStatement:
		return i.execPrint(s)
	case *ast.InputStatement:
		return i.execInput(s)
	case *ast.ClearStatement:
		i.host.ClearTerminal()
		return nil
	case *ast.WaitStatement:
		return i.execWait(s)
	case *ast.ExitStatement:
		return i.execExit(s)
	case *ast.IfStatement:
		return i.execIf(s)
	case *ast.WhileStatement:
		return i.execWhile(s)
	case *ast.RepeatStatement:
		return i.execRepeat(s)
	case *ast.ForeachStatement:
		return i.execForeach(s)
	case *ast.BreakStatement:
		i.breaking = true
		return nil
	case *ast.ContinueStatement:
		i.continuing = true
		return nil
	case *ast.FunctionStatement:
		return i.execFunctionDecl(s)
	case *ast.CallStatement:
		return i.execCall(s)
	case *ast.ReturnStatement:
		return i.execReturn(s)
	case *ast.ClassStatement:
		return i.execClassDecl(s)
	case *ast.NewStatement:
		return i.execNew(s)
	case *ast.MethodCallStatement:
		return i.execMethodCall(s)
	case *ast.SelfSetStatement:
		return i.execSelfSet(s)
	case *ast.ImportStatement:
		return i.execImport(s)
	case *ast.FileStatement:
		return i.execFile(s)
	case *ast.SystemStatement:
		return i.execSystem(s)
	case *ast.StringOpStatement:
		return i.execStringOp(s)
	case *ast.ListOpStatement:
		return i.execListOp(s)
	case *ast.DictOpStatement:
		return i.execDictOp(s)
	case *ast.AsciiStatement:
		return i.execAscii(s)
	case *ast.CoerceStatement:
		return i.execCoerce(s)
	case *ast.RandomStatement:
		return i.execRandom(s)
	case *ast.SplitStatement:
		return i.execSplit(s)
	case *ast.ClassifyStatement:
		return i.execClassify(s)
	case *ast.AssignStatement:
		return i.execAssign(s)
	case *ast.ArithmeticAssignStatement:
		return i.execArithmeticAssign(s)
	case *ast.CrementStatement:
		return i.execCrement(s)
	case *ast.BlockStatement:
		return i.execBlock(s.Statements)
	default:
		return i.errorf("unexpected statement")
	}
}

// errorf raises a fatal runtime error at the current line.
func (i *Interpreter) errorf(format string, args ...any) error {
	return berrors.New(i.line, format, args...)
}

// issuef prints a non-fatal yellow issue and continues.
func (i *Interpreter) issuef(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(i.errOutput, berrors.FormatIssue(i.line, msg, i.colorize))
}

// evalExpression evaluates a value expression: literals, identifiers,
// list and dict literals.
func (i *Interpreter) evalExpression(expr ast.Expression) (Value, error) {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return &IntegerValue{Value: e.Value}, nil
	case *ast.FloatLiteral:
		return &FloatValue{Value: e.Value}, nil
	case *ast.StringLiteral:
		return &StringValue{Value: e.Value}, nil
	case *ast.BooleanLiteral:
		return &BooleanValue{Value: e.Value}, nil
	case *ast.Identifier:
		binding, ok := i.env.Get(e.Value)
		if !ok {
			return nil, i.errorf("inexistent variable '%s'", e.Value)
		}
		return binding.Value, nil
	case *ast.ListLiteral:
		list := &ListValue{}
		for _, elem := range e.Elements {
			v, err := i.evalExpression(elem)
			if err != nil {
				return nil, err
			}
			list.Elements = append(list.Elements, v)
		}
		return list, nil
	case *ast.DictLiteral:
		dict := NewDict()
		for _, entry := range e.Entries {
			k, err := i.evalExpression(entry.Key)
			if err != nil {
				return nil, err
			}
			v, err := i.evalExpression(entry.Value)
			if err != nil {
				return nil, err
			}
			if !dict.Set(k, v) {
				return nil, i.errorf("invalid dict key of type %s", k.Type())
			}
		}
		return dict, nil
	default:
		return nil, i.errorf("unexpected expression")
	}
}

// evalCondition evaluates a condition to a boolean. Precedence
// (not > and > or) is structural in the AST; comparisons use numeric
// ordering for numbers, lexicographic ordering for strings, and
// cross-type equality is false.
func (i *Interpreter) evalCondition(expr ast.Expression) (bool, error) {
	switch e := expr.(type) {
	case *ast.LogicalExpression:
		left, err := i.evalCondition(e.Left)
		if err != nil {
			return false, err
		}
		if e.Operator == "and" {
			if !left {
				return false, nil
			}
			return i.evalCondition(e.Right)
		}
		if left {
			return true, nil
		}
		return i.evalCondition(e.Right)
	case *ast.NotExpression:
		v, err := i.evalCondition(e.Operand)
		if err != nil {
			return false, err
		}
		return !v, nil
	case *ast.ComparisonExpression:
		left, err := i.evalExpression(e.Left)
		if err != nil {
			return false, err
		}
		right, err := i.evalExpression(e.Right)
		if err != nil {
			return false, err
		}
		return i.compare(e.Operator, left, right)
	default:
		v, err := i.evalExpression(expr)
		if err != nil {
			return false, err
		}
		return truthy(v), nil
	}
}

func (i *Interpreter) execLet(s *ast.LetStatement) error {
	if s.Undef {
		i.env.Declare(s.Name, Null, true)
		return nil
	}
	value, err := i.evalExpression(s.Value)
	if err != nil {
		return err
	}
	i.env.Declare(s.Name, value, s.Mutable)
	return nil
}

func (i *Interpreter) execMutability(s *ast.MutabilityStatement) error {
	binding, ok := i.env.Get(s.Name)
	if !ok {
		return i.errorf("inexistent variable '%s'", s.Name)
	}
	binding.Mutable = s.Mutable
	return nil
}

func (i *Interpreter) execIf(s *ast.IfStatement) error {
	truth, err := i.evalCondition(s.Condition)
	if err != nil {
		return err
	}
	if truth {
		return i.execBlock(s.Consequence.Statements)
	}
	for _, arm := range s.ElseIfs {
		i.line = arm.Token.Pos.Line
		truth, err := i.evalCondition(arm.Condition)
		if err != nil {
			return err
		}
		if truth {
			return i.execBlock(arm.Body.Statements)
		}
	}
	if s.Else != nil {
		return i.execBlock(s.Else.Statements)
	}
	return nil
}

// execLoopBody runs a loop body in the environment the loop shares with
// its caller, so mutations inside the body stay visible after it.
func (i *Interpreter) execLoopBody(body *ast.BlockStatement) error {
	prev := i.env
	i.env = prev.ShareForLoop()
	defer func() { i.env = prev }()
	return i.execBlock(body.Statements)
}

func (i *Interpreter) execWhile(s *ast.WhileStatement) error {
	for {
		i.line = s.Token.Pos.Line
		truth, err := i.evalCondition(s.Condition)
		if err != nil {
			return err
		}
		if !truth {
			return nil
		}
		if err := i.execLoopBody(s.Body); err != nil {
			return err
		}
		if i.breaking {
			i.breaking = false
			return nil
		}
		i.continuing = false
	}
}

func (i *Interpreter) execRepeat(s *ast.RepeatStatement) error {
	count, err := i.evalExpression(s.Count)
	if err != nil {
		return err
	}
	n, ok := count.(*IntegerValue)
	if !ok {
		return i.errorf("invalid repeat amount '%s' (expects an integer)", count.String())
	}
	for it := int64(0); it < n.Value; it++ {
		if err := i.execLoopBody(s.Body); err != nil {
			return err
		}
		if i.breaking {
			i.breaking = false
			return nil
		}
		i.continuing = false
	}
	return nil
}

func (i *Interpreter) execForeach(s *ast.ForeachStatement) error {
	iterable, err := i.evalExpression(s.Iterable)
	if err != nil {
		return err
	}
	var items []Value
	switch v := iterable.(type) {
	case *ListValue:
		items = v.Elements
	case *DictValue:
		items = v.Keys()
	case *StringValue:
		for _, r := range v.Value {
			items = append(items, &StringValue{Value: string(r)})
		}
	default:
		return i.errorf("cannot iterate over a value of type %s", iterable.Type())
	}
	for _, item := range items {
		// the loop variable lives in the shared environment and stays
		// visible after the loop
		i.env.ShareForLoop().Declare(s.Name, item, true)
		if err := i.execLoopBody(s.Body); err != nil {
			return err
		}
		if i.breaking {
			i.breaking = false
			return nil
		}
		i.continuing = false
	}
	return nil
}

func (i *Interpreter) execFunctionDecl(s *ast.FunctionStatement) error {
	i.functions[s.Name] = &FunctionValue{
		Name:   s.Name,
		Params: s.Params,
		Body:   s.Body,
		Line:   s.Token.Pos.Line,
	}
	return nil
}

func (i *Interpreter) execCall(s *ast.CallStatement) error {
	fn, ok := i.functions[s.Name]
	if !ok {
		return i.errorf("call of undeclared function '%s'", s.Name)
	}
	args, err := i.evalArgs(s.Args)
	if err != nil {
		return err
	}
	returned, err := i.callFunction(fn, args)
	if err != nil {
		return err
	}
	if s.Target != "" {
		return i.storeTarget(s.Target, returned)
	}
	return nil
}

func (i *Interpreter) evalArgs(exprs []ast.Expression) ([]Value, error) {
	args := make([]Value, 0, len(exprs))
	for _, e := range exprs {
		v, err := i.evalExpression(e)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return args, nil
}

// callFunction runs a function body in a nested interpreter with an
// isolated environment holding the parameters only. The function, class
// and instance tables are shared.
func (i *Interpreter) callFunction(fn *FunctionValue, args []Value) (Value, error) {
	if len(args) != len(fn.Params) {
		return nil, i.errorf("function '%s' expects %d argument(s), got %d",
			fn.Name, len(fn.Params), len(args))
	}
	env := i.env.ForkForCall()
	env.Declare("null", Null, false)
	for n, param := range fn.Params {
		env.Declare(param, args[n], true)
	}
	sub := i.nested(env)
	sub.inFunction = true
	sub.line = fn.Line
	if err := sub.execBlock(fn.Body.Statements); err != nil {
		return nil, err
	}
	if sub.returnValue == nil {
		return Null, nil
	}
	return sub.returnValue, nil
}

// nested creates an interpreter sharing everything but the environment
// and execution state.
func (i *Interpreter) nested(env *Environment) *Interpreter {
	return &Interpreter{
		output:    i.output,
		errOutput: i.errOutput,
		host:      i.host,
		env:       env,
		functions: i.functions,
		classes:   i.classes,
		instances: i.instances,
		baseDir:   i.baseDir,
		colorize:  i.colorize,
		line:      i.line,
	}
}

func (i *Interpreter) execReturn(s *ast.ReturnStatement) error {
	if !i.inFunction {
		return i.errorf("can't use return keyword outside of a function")
	}
	value, err := i.evalExpression(s.Value)
	if err != nil {
		return err
	}
	// the return value is recorded; execution continues to the end of
	// the body
	i.returnValue = value
	return nil
}

// storeTarget writes a captured value into a `-> target` binding:
// existing bindings must be mutable, absent ones are declared mutable.
func (i *Interpreter) storeTarget(name string, value Value) error {
	if binding, ok := i.env.Get(name); ok {
		if !binding.Mutable {
			return i.errorf("can't change immutable variable %s's value", name)
		}
		binding.Value = value
		return nil
	}
	i.env.Declare(name, value, true)
	return nil
}

func (i *Interpreter) execAssign(s *ast.AssignStatement) error {
	binding, ok := i.env.Get(s.Name)
	if !ok {
		return i.errorf("inexistent variable '%s'", s.Name)
	}
	if !binding.Mutable {
		return i.errorf("can't change immutable variable %s's value", s.Name)
	}
	value, err := i.evalExpression(s.Value)
	if err != nil {
		return err
	}
	binding.Value = value
	return nil
}

func (i *Interpreter) execArithmeticAssign(s *ast.ArithmeticAssignStatement) error {
	binding, ok := i.env.Get(s.Name)
	if !ok {
		return i.errorf("inexistent variable '%s'", s.Name)
	}
	if !binding.Mutable {
		return i.errorf("can't change immutable variable %s's value", s.Name)
	}
	value, err := i.evalExpression(s.Value)
	if err != nil {
		return err
	}
	result, err := i.applyArithmetic(s.Operator, binding.Value, value)
	if err != nil {
		return err
	}
	binding.Value = result
	return nil
}

func (i *Interpreter) execCrement(s *ast.CrementStatement) error {
	binding, ok := i.env.Get(s.Name)
	if !ok {
		return i.errorf("inexistent variable '%s'", s.Name)
	}
	if !binding.Mutable {
		return i.errorf("cannot change value of immutable variable %s", s.Name)
	}
	delta := int64(1)
	if s.Operator == "--" {
		delta = -1
	}
	switch v := binding.Value.(type) {
	case *IntegerValue:
		binding.Value = &IntegerValue{Value: v.Value + delta}
	case *FloatValue:
		binding.Value = &FloatValue{Value: v.Value + float64(delta)}
	default:
		return i.errorf("cannot increment/decrement a value of type %s", binding.Value.Type())
	}
	return nil
}
