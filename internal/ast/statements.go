package ast

import (
	"bytes"
	"strings"

	"github.com/BasaltDev/BasaltLang/internal/lexer"
)

// LetStatement declares a binding: `let [mut|undef] name [= expr]`.
// Undef declarations have no Value and produce a null, mutable binding.
type LetStatement struct {
	Token   lexer.Token // the 'let' keyword
	Name    string
	Mutable bool
	Undef   bool
	Value   Expression
}

func (ls *LetStatement) statementNode()       {}
func (ls *LetStatement) TokenLiteral() string { return ls.Token.Literal }
func (ls *LetStatement) Pos() lexer.Position  { return ls.Token.Pos }
func (ls *LetStatement) String() string {
	var out bytes.Buffer
	out.WriteString("let ")
	if ls.Undef {
		out.WriteString("undef " + ls.Name)
		return out.String()
	}
	if ls.Mutable {
		out.WriteString("mut ")
	}
	out.WriteString(ls.Name + " = " + ls.Value.String())
	return out.String()
}

// MutabilityStatement flips a binding's mutability: `mut(name)` / `immut(name)`.
type MutabilityStatement struct {
	Token   lexer.Token
	Name    string
	Mutable bool
}

func (ms *MutabilityStatement) statementNode()       {}
func (ms *MutabilityStatement) TokenLiteral() string { return ms.Token.Literal }
func (ms *MutabilityStatement) Pos() lexer.Position  { return ms.Token.Pos }
func (ms *MutabilityStatement) String() string {
	return ms.Token.Literal + "(" + ms.Name + ")"
}

// PrintStatement is print(x), println(x) or printf(fmt).
type PrintStatement struct {
	Token lexer.Token // the print/println/printf keyword
	Kind  string
	Value Expression
}

func (ps *PrintStatement) statementNode()       {}
func (ps *PrintStatement) TokenLiteral() string { return ps.Token.Literal }
func (ps *PrintStatement) Pos() lexer.Position  { return ps.Token.Pos }
func (ps *PrintStatement) String() string {
	return ps.Kind + "(" + ps.Value.String() + ")"
}

// InputStatement reads a line: `input(prompt [, target])`.
type InputStatement struct {
	Token  lexer.Token
	Prompt Expression
	Target string // optional; empty when the input is discarded
}

func (is *InputStatement) statementNode()       {}
func (is *InputStatement) TokenLiteral() string { return is.Token.Literal }
func (is *InputStatement) Pos() lexer.Position  { return is.Token.Pos }
func (is *InputStatement) String() string {
	if is.Target == "" {
		return "input(" + is.Prompt.String() + ")"
	}
	return "input(" + is.Prompt.String() + ", " + is.Target + ")"
}

// ClearStatement clears the terminal.
type ClearStatement struct {
	Token lexer.Token
}

func (cs *ClearStatement) statementNode()       {}
func (cs *ClearStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *ClearStatement) Pos() lexer.Position  { return cs.Token.Pos }
func (cs *ClearStatement) String() string       { return "clear()" }

// WaitStatement sleeps for a number of milliseconds.
type WaitStatement struct {
	Token    lexer.Token
	Duration Expression
}

func (ws *WaitStatement) statementNode()       {}
func (ws *WaitStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WaitStatement) Pos() lexer.Position  { return ws.Token.Pos }
func (ws *WaitStatement) String() string       { return "wait(" + ws.Duration.String() + ")" }

// ExitStatement terminates the program with an optional status code.
type ExitStatement struct {
	Token lexer.Token
	Code  Expression // nil means exit 0
}

func (es *ExitStatement) statementNode()       {}
func (es *ExitStatement) TokenLiteral() string { return es.Token.Literal }
func (es *ExitStatement) Pos() lexer.Position  { return es.Token.Pos }
func (es *ExitStatement) String() string {
	if es.Code == nil {
		return "exit()"
	}
	return "exit(" + es.Code.String() + ")"
}

// ElseIfClause is one `elseif cond { … }` arm of an if chain.
type ElseIfClause struct {
	Token     lexer.Token
	Condition Expression
	Body      *BlockStatement
}

// IfStatement is a full if/elseif*/else chain. Parsing the chain into one
// node makes arm exclusivity structural: at most one arm executes, and the
// else arm runs iff every condition before it was false.
type IfStatement struct {
	Token       lexer.Token
	Condition   Expression
	Consequence *BlockStatement
	ElseIfs     []ElseIfClause
	Else        *BlockStatement
}

func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Literal }
func (is *IfStatement) Pos() lexer.Position  { return is.Token.Pos }
func (is *IfStatement) String() string {
	var out bytes.Buffer
	out.WriteString("if " + is.Condition.String() + " " + is.Consequence.String())
	for _, ei := range is.ElseIfs {
		out.WriteString(" elseif " + ei.Condition.String() + " " + ei.Body.String())
	}
	if is.Else != nil {
		out.WriteString(" else " + is.Else.String())
	}
	return out.String()
}

// WhileStatement re-runs its body while the condition holds.
type WhileStatement struct {
	Token     lexer.Token
	Condition Expression
	Body      *BlockStatement
}

func (ws *WhileStatement) statementNode()       {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WhileStatement) Pos() lexer.Position  { return ws.Token.Pos }
func (ws *WhileStatement) String() string {
	return "while " + ws.Condition.String() + " " + ws.Body.String()
}

// RepeatStatement runs its body a fixed number of times.
type RepeatStatement struct {
	Token lexer.Token
	Count Expression
	Body  *BlockStatement
}

func (rs *RepeatStatement) statementNode()       {}
func (rs *RepeatStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *RepeatStatement) Pos() lexer.Position  { return rs.Token.Pos }
func (rs *RepeatStatement) String() string {
	return "repeat " + rs.Count.String() + " " + rs.Body.String()
}

// ForeachStatement iterates a list, dict or string: `foreach x in xs { … }`.
type ForeachStatement struct {
	Token    lexer.Token
	Name     string
	Iterable Expression
	Body     *BlockStatement
}

func (fs *ForeachStatement) statementNode()       {}
func (fs *ForeachStatement) TokenLiteral() string { return fs.Token.Literal }
func (fs *ForeachStatement) Pos() lexer.Position  { return fs.Token.Pos }
func (fs *ForeachStatement) String() string {
	return "foreach " + fs.Name + " in " + fs.Iterable.String() + " " + fs.Body.String()
}

// BreakStatement terminates the innermost loop.
type BreakStatement struct {
	Token lexer.Token
}

func (bs *BreakStatement) statementNode()       {}
func (bs *BreakStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BreakStatement) Pos() lexer.Position  { return bs.Token.Pos }
func (bs *BreakStatement) String() string       { return "break" }

// ContinueStatement skips to the next loop iteration.
type ContinueStatement struct {
	Token lexer.Token
}

func (cs *ContinueStatement) statementNode()       {}
func (cs *ContinueStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *ContinueStatement) Pos() lexer.Position  { return cs.Token.Pos }
func (cs *ContinueStatement) String() string       { return "continue" }

// FunctionStatement declares a function (or, inside a class body, a
// method): `fn name(params) { … }`. Parameter and argument lists accept
// both () and [] brackets.
type FunctionStatement struct {
	Token  lexer.Token
	Name   string
	Params []string
	Body   *BlockStatement
}

func (fs *FunctionStatement) statementNode()       {}
func (fs *FunctionStatement) TokenLiteral() string { return fs.Token.Literal }
func (fs *FunctionStatement) Pos() lexer.Position  { return fs.Token.Pos }
func (fs *FunctionStatement) String() string {
	return "fn " + fs.Name + "(" + strings.Join(fs.Params, " ") + ") " + fs.Body.String()
}

// CallStatement invokes a function: `call name(args) [-> target]`.
type CallStatement struct {
	Token  lexer.Token
	Name   string
	Args   []Expression
	Target string // optional return capture
}

func (cs *CallStatement) statementNode()       {}
func (cs *CallStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *CallStatement) Pos() lexer.Position  { return cs.Token.Pos }
func (cs *CallStatement) String() string {
	var out bytes.Buffer
	out.WriteString("call " + cs.Name + "(")
	parts := make([]string, len(cs.Args))
	for i, a := range cs.Args {
		parts[i] = a.String()
	}
	out.WriteString(strings.Join(parts, " ") + ")")
	if cs.Target != "" {
		out.WriteString(" -> " + cs.Target)
	}
	return out.String()
}

// ReturnStatement records the function's return value. Execution continues
// to the end of the body; there is no early exit.
type ReturnStatement struct {
	Token lexer.Token
	Value Expression
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReturnStatement) Pos() lexer.Position  { return rs.Token.Pos }
func (rs *ReturnStatement) String() string       { return "return " + rs.Value.String() }

// ClassStatement declares a class: `class Name(params) { fn init(…){…} … }`.
type ClassStatement struct {
	Token   lexer.Token
	Name    string
	Params  []string
	Methods []*FunctionStatement
}

func (cs *ClassStatement) statementNode()       {}
func (cs *ClassStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *ClassStatement) Pos() lexer.Position  { return cs.Token.Pos }
func (cs *ClassStatement) String() string {
	var out bytes.Buffer
	out.WriteString("class " + cs.Name + "(" + strings.Join(cs.Params, " ") + ") { ")
	for _, m := range cs.Methods {
		out.WriteString(m.String() + " ")
	}
	out.WriteString("}")
	return out.String()
}

// NewStatement instantiates a class: `@class(Name) new(args) [-> inst]`.
type NewStatement struct {
	Token  lexer.Token
	Class  string
	Args   []Expression
	Target string
}

func (ns *NewStatement) statementNode()       {}
func (ns *NewStatement) TokenLiteral() string { return ns.Token.Literal }
func (ns *NewStatement) Pos() lexer.Position  { return ns.Token.Pos }
func (ns *NewStatement) String() string {
	parts := make([]string, len(ns.Args))
	for i, a := range ns.Args {
		parts[i] = a.String()
	}
	s := "@class(" + ns.Class + ") new(" + strings.Join(parts, " ") + ")"
	if ns.Target != "" {
		s += " -> " + ns.Target
	}
	return s
}

// MethodCallStatement invokes a method on an instance:
// `@class_variable(inst) call m(args) [-> target]`.
type MethodCallStatement struct {
	Token    lexer.Token
	Instance string
	Method   string
	Args     []Expression
	Target   string
}

func (ms *MethodCallStatement) statementNode()       {}
func (ms *MethodCallStatement) TokenLiteral() string { return ms.Token.Literal }
func (ms *MethodCallStatement) Pos() lexer.Position  { return ms.Token.Pos }
func (ms *MethodCallStatement) String() string {
	parts := make([]string, len(ms.Args))
	for i, a := range ms.Args {
		parts[i] = a.String()
	}
	s := "@class_variable(" + ms.Instance + ") call " + ms.Method + "(" + strings.Join(parts, " ") + ")"
	if ms.Target != "" {
		s += " -> " + ms.Target
	}
	return s
}

// SelfSetStatement installs a field into the instance's self map:
// `self set(name, value)`. Valid only inside class methods.
type SelfSetStatement struct {
	Token lexer.Token
	Name  string
	Value Expression
}

func (ss *SelfSetStatement) statementNode()       {}
func (ss *SelfSetStatement) TokenLiteral() string { return ss.Token.Literal }
func (ss *SelfSetStatement) Pos() lexer.Position  { return ss.Token.Pos }
func (ss *SelfSetStatement) String() string {
	return "self set(" + ss.Name + ", " + ss.Value.String() + ")"
}

// ImportStatement interprets another file and merges its tables:
// `import "path"`.
type ImportStatement struct {
	Token lexer.Token
	Path  Expression
}

func (is *ImportStatement) statementNode()       {}
func (is *ImportStatement) TokenLiteral() string { return is.Token.Literal }
func (is *ImportStatement) Pos() lexer.Position  { return is.Token.Pos }
func (is *ImportStatement) String() string       { return "import " + is.Path.String() }

// FileStatement is `file read(path target)`, `file write(path content)` or
// `file append(path content)`.
type FileStatement struct {
	Token   lexer.Token
	Op      string     // read, write, append
	Path    Expression
	Content Expression // write/append payload
	Target  string     // read destination
}

func (fs *FileStatement) statementNode()       {}
func (fs *FileStatement) TokenLiteral() string { return fs.Token.Literal }
func (fs *FileStatement) Pos() lexer.Position  { return fs.Token.Pos }
func (fs *FileStatement) String() string {
	if fs.Op == "read" {
		return "file read(" + fs.Path.String() + " " + fs.Target + ")"
	}
	return "file " + fs.Op + "(" + fs.Path.String() + " " + fs.Content.String() + ")"
}

// SystemStatement runs a shell command in the script's directory.
type SystemStatement struct {
	Token   lexer.Token
	Command Expression
}

func (ss *SystemStatement) statementNode()       {}
func (ss *SystemStatement) TokenLiteral() string { return ss.Token.Literal }
func (ss *SystemStatement) Pos() lexer.Position  { return ss.Token.Pos }
func (ss *SystemStatement) String() string       { return "system(" + ss.Command.String() + ")" }

// StringOpStatement mutates a string binding in place:
// `string upper|lower|trim(name)` or `string replace(name old new)`.
type StringOpStatement struct {
	Token lexer.Token
	Op    string
	Name  string
	Args  []Expression // replace arguments
}

func (ss *StringOpStatement) statementNode()       {}
func (ss *StringOpStatement) TokenLiteral() string { return ss.Token.Literal }
func (ss *StringOpStatement) Pos() lexer.Position  { return ss.Token.Pos }
func (ss *StringOpStatement) String() string {
	parts := []string{ss.Name}
	for _, a := range ss.Args {
		parts = append(parts, a.String())
	}
	return "string " + ss.Op + "(" + strings.Join(parts, " ") + ")"
}

// ListOpStatement operates on a list binding. Depending on Op the optional
// fields carry an index, a value, or a target binding name:
//
//	list add(xs v)        Value
//	list remove(xs i)     Index
//	list len(xs out)      Target
//	list get(xs i out)    Index, Target
//	list pop(xs i out)    Index, Target
//	list set(xs i src)    Index, Value
type ListOpStatement struct {
	Token  lexer.Token
	Op     string
	Name   string
	Index  Expression
	Value  Expression
	Target string
}

func (ls *ListOpStatement) statementNode()       {}
func (ls *ListOpStatement) TokenLiteral() string { return ls.Token.Literal }
func (ls *ListOpStatement) Pos() lexer.Position  { return ls.Token.Pos }
func (ls *ListOpStatement) String() string {
	parts := []string{ls.Name}
	if ls.Index != nil {
		parts = append(parts, ls.Index.String())
	}
	if ls.Value != nil {
		parts = append(parts, ls.Value.String())
	}
	if ls.Target != "" {
		parts = append(parts, ls.Target)
	}
	return "list " + ls.Op + "(" + strings.Join(parts, " ") + ")"
}

// DictOpStatement operates on a dict binding:
//
//	dict get(d key out)   Key, Target
//	dict set(d key v)     Key, Value
//	dict delete(d key)    Key
type DictOpStatement struct {
	Token  lexer.Token
	Op     string
	Name   string
	Key    Expression
	Value  Expression
	Target string
}

func (ds *DictOpStatement) statementNode()       {}
func (ds *DictOpStatement) TokenLiteral() string { return ds.Token.Literal }
func (ds *DictOpStatement) Pos() lexer.Position  { return ds.Token.Pos }
func (ds *DictOpStatement) String() string {
	parts := []string{ds.Name, ds.Key.String()}
	if ds.Value != nil {
		parts = append(parts, ds.Value.String())
	}
	if ds.Target != "" {
		parts = append(parts, ds.Target)
	}
	return "dict " + ds.Op + "(" + strings.Join(parts, " ") + ")"
}

// AsciiStatement converts a binding between integer code point and
// single-character string: `ascii_char(name)` / `char_ascii(name)`.
type AsciiStatement struct {
	Token lexer.Token
	Op    string
	Name  string
}

func (as *AsciiStatement) statementNode()       {}
func (as *AsciiStatement) TokenLiteral() string { return as.Token.Literal }
func (as *AsciiStatement) Pos() lexer.Position  { return as.Token.Pos }
func (as *AsciiStatement) String() string       { return as.Op + "(" + as.Name + ")" }

// CoerceStatement coerces a binding in place: `int(x)`, `float(x)`, `str(x)`.
type CoerceStatement struct {
	Token lexer.Token
	Kind  string
	Name  string
}

func (cs *CoerceStatement) statementNode()       {}
func (cs *CoerceStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *CoerceStatement) Pos() lexer.Position  { return cs.Token.Pos }
func (cs *CoerceStatement) String() string       { return cs.Kind + "(" + cs.Name + ")" }

// RandomStatement writes a uniform integer in [Low, High] into Target.
type RandomStatement struct {
	Token  lexer.Token
	Target string
	Low    Expression
	High   Expression
}

func (rs *RandomStatement) statementNode()       {}
func (rs *RandomStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *RandomStatement) Pos() lexer.Position  { return rs.Token.Pos }
func (rs *RandomStatement) String() string {
	return "random(" + rs.Target + " " + rs.Low.String() + " " + rs.High.String() + ")"
}

// SplitStatement replaces a string binding with a list of substrings.
// An empty separator splits on whitespace.
type SplitStatement struct {
	Token     lexer.Token
	Name      string
	Separator Expression
}

func (ss *SplitStatement) statementNode()       {}
func (ss *SplitStatement) TokenLiteral() string { return ss.Token.Literal }
func (ss *SplitStatement) Pos() lexer.Position  { return ss.Token.Pos }
func (ss *SplitStatement) String() string {
	return "split(" + ss.Name + " " + ss.Separator.String() + ")"
}

// ClassifyStatement writes 1 or 0 into Target depending on whether the
// value is alphabetic / numeric / alphanumeric:
// `alpha(v out)`, `digit(v out)`, `alnum(v out)`.
type ClassifyStatement struct {
	Token  lexer.Token
	Kind   string
	Value  Expression
	Target string
}

func (cs *ClassifyStatement) statementNode()       {}
func (cs *ClassifyStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *ClassifyStatement) Pos() lexer.Position  { return cs.Token.Pos }
func (cs *ClassifyStatement) String() string {
	return cs.Kind + "(" + cs.Value.String() + " " + cs.Target + ")"
}

// AssignStatement is a bare `name = expr`.
type AssignStatement struct {
	Token lexer.Token // the identifier token
	Name  string
	Value Expression
}

func (as *AssignStatement) statementNode()       {}
func (as *AssignStatement) TokenLiteral() string { return as.Token.Literal }
func (as *AssignStatement) Pos() lexer.Position  { return as.Token.Pos }
func (as *AssignStatement) String() string       { return as.Name + " = " + as.Value.String() }

// ArithmeticAssignStatement is `name op expr` for += -= *= /= //= %= ^=.
type ArithmeticAssignStatement struct {
	Token    lexer.Token // the identifier token
	Name     string
	Operator string
	Value    Expression
}

func (as *ArithmeticAssignStatement) statementNode()       {}
func (as *ArithmeticAssignStatement) TokenLiteral() string { return as.Token.Literal }
func (as *ArithmeticAssignStatement) Pos() lexer.Position  { return as.Token.Pos }
func (as *ArithmeticAssignStatement) String() string {
	return as.Name + " " + as.Operator + " " + as.Value.String()
}

// CrementStatement is `name++` or `name--`.
type CrementStatement struct {
	Token    lexer.Token // the identifier token
	Name     string
	Operator string
}

func (cs *CrementStatement) statementNode()       {}
func (cs *CrementStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *CrementStatement) Pos() lexer.Position  { return cs.Token.Pos }
func (cs *CrementStatement) String() string       { return cs.Name + cs.Operator }
