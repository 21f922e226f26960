package interp

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BasaltDev/BasaltLang/internal/ast"
)

// unescape interprets the \n, \t and \b escape sequences. String literals
// keep their raw content until they are printed or written.
func unescape(s string) string {
	r := strings.NewReplacer(`\n`, "\n", `\t`, "\t", `\b`, "\b")
	return r.Replace(s)
}

func (i *Interpreter) execPrint(s *ast.PrintStatement) error {
	value, err := i.evalExpression(s.Value)
	if err != nil {
		return err
	}
	var out string
	switch s.Kind {
	case "printf":
		str, ok := value.(*StringValue)
		if !ok {
			return i.errorf("printf expects a format string")
		}
		out, err = i.formatPrintf(unescape(str.Value))
		if err != nil {
			return err
		}
	default:
		if str, ok := value.(*StringValue); ok {
			out = unescape(str.Value)
		} else {
			out = value.String()
		}
	}
	if s.Kind == "println" {
		out += "\n"
	}
	fmt.Fprint(i.output, out)
	return nil
}

// formatPrintf substitutes [name] with the named variable's rendered
// value. A backslash before '[' escapes the substitution. Undefined
// values render as [?] and emit a non-fatal issue; unknown names are
// fatal.
func (i *Interpreter) formatPrintf(format string) (string, error) {
	var out strings.Builder
	var name strings.Builder
	bracketing := false
	runes := []rune(format)
	for n := 0; n < len(runes); n++ {
		ch := runes[n]
		if bracketing {
			if ch == ']' {
				bracketing = false
				rendered, err := i.renderVariable(name.String())
				if err != nil {
					return "", err
				}
				out.WriteString(rendered)
				name.Reset()
				continue
			}
			name.WriteRune(ch)
			continue
		}
		if ch == '\\' && n+1 < len(runes) && runes[n+1] == '[' {
			out.WriteRune('[')
			n++
			continue
		}
		if ch == '[' {
			bracketing = true
			continue
		}
		out.WriteRune(ch)
	}
	return out.String(), nil
}

func (i *Interpreter) renderVariable(name string) (string, error) {
	binding, ok := i.env.Get(name)
	if !ok {
		return "", i.errorf("inexistent variable '%s'", name)
	}
	if _, isNull := binding.Value.(*NullValue); isNull {
		i.issuef("variable '%s' is undefined", name)
		return "[?]", nil
	}
	return binding.Value.String(), nil
}

func (i *Interpreter) execInput(s *ast.InputStatement) error {
	prompt, err := i.evalExpression(s.Prompt)
	if err != nil {
		return err
	}
	promptText := ""
	if str, ok := prompt.(*StringValue); ok {
		promptText = unescape(str.Value)
	} else {
		promptText = prompt.String()
	}
	if s.Target != "" {
		binding, ok := i.env.Get(s.Target)
		if !ok {
			return i.errorf("inexistent variable '%s'", s.Target)
		}
		if !binding.Mutable {
			return i.errorf("can't assign input value to immutable variable %s", s.Target)
		}
		line, err := i.host.ReadLine(promptText)
		if err != nil {
			return i.errorf("cannot read input: %s", err)
		}
		binding.Value = &StringValue{Value: line}
		return nil
	}
	if _, err := i.host.ReadLine(promptText); err != nil {
		return i.errorf("cannot read input: %s", err)
	}
	return nil
}

func (i *Interpreter) execWait(s *ast.WaitStatement) error {
	duration, err := i.evalExpression(s.Duration)
	if err != nil {
		return err
	}
	ms, ok := duration.(*IntegerValue)
	if !ok {
		return i.errorf("invalid waiting time '%s' for wait function (expects an integer of milliseconds)", duration.String())
	}
	i.host.Sleep(ms.Value)
	return nil
}

func (i *Interpreter) execExit(s *ast.ExitStatement) error {
	if s.Code == nil {
		return &ExitError{Code: 0}
	}
	code, err := i.evalExpression(s.Code)
	if err != nil {
		return err
	}
	n, ok := code.(*IntegerValue)
	if !ok {
		return i.errorf("invalid error code '%s' for exit() function (expects an integer)", code.String())
	}
	return &ExitError{Code: int(n.Value)}
}

// resolvePath confines file operations to the script's directory: only
// the base name of the given path is used.
func (i *Interpreter) resolvePath(v Value) (string, error) {
	str, ok := v.(*StringValue)
	if !ok {
		return "", i.errorf("invalid file path '%s'", v.String())
	}
	return filepath.Join(i.baseDir, filepath.Base(str.Value)), nil
}

func (i *Interpreter) execFile(s *ast.FileStatement) error {
	pathValue, err := i.evalExpression(s.Path)
	if err != nil {
		return err
	}
	path, err := i.resolvePath(pathValue)
	if err != nil {
		return err
	}
	switch s.Op {
	case "read":
		binding, ok := i.env.Get(s.Target)
		if !ok {
			return i.errorf("inexistent variable '%s'", s.Target)
		}
		if !binding.Mutable {
			return i.errorf("cannot change value of immutable variable '%s'", s.Target)
		}
		data, err := i.host.ReadFile(path)
		if err != nil {
			return i.errorf("cannot read file '%s'", path)
		}
		binding.Value = &StringValue{Value: string(data)}
		return nil
	case "write", "append":
		content, err := i.evalExpression(s.Content)
		if err != nil {
			return err
		}
		text := content.String()
		if str, ok := content.(*StringValue); ok {
			text = str.Value
		}
		data := []byte(unescape(text))
		if s.Op == "write" {
			err = i.host.WriteFile(path, data)
		} else {
			err = i.host.AppendFile(path, data)
		}
		if err != nil {
			return i.errorf("cannot %s file '%s'", s.Op, path)
		}
		return nil
	}
	return i.errorf("invalid file operation '%s'", s.Op)
}

func (i *Interpreter) execSystem(s *ast.SystemStatement) error {
	command, err := i.evalExpression(s.Command)
	if err != nil {
		return err
	}
	str, ok := command.(*StringValue)
	if !ok {
		return i.errorf("invalid command '%s' for system() function", command.String())
	}
	if err := i.host.ShellExec(i.baseDir, str.Value); err != nil {
		return i.errorf("command failed: %s", err)
	}
	return nil
}
