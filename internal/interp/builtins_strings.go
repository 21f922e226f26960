package interp

import (
	"strings"
	"unicode"

	"github.com/BasaltDev/BasaltLang/internal/ast"
)

// stringBinding fetches a mutable string binding for the in-place string
// operations.
func (i *Interpreter) stringBinding(name string) (*Binding, *StringValue, error) {
	binding, ok := i.env.Get(name)
	if !ok {
		return nil, nil, i.errorf("inexistent variable '%s'", name)
	}
	if !binding.Mutable {
		return nil, nil, i.errorf("cannot change value of immutable variable '%s'", name)
	}
	str, ok := binding.Value.(*StringValue)
	if !ok {
		return nil, nil, i.errorf("string function on non-string variable '%s'", name)
	}
	return binding, str, nil
}

func (i *Interpreter) execStringOp(s *ast.StringOpStatement) error {
	binding, str, err := i.stringBinding(s.Name)
	if err != nil {
		return err
	}
	switch s.Op {
	case "upper":
		binding.Value = &StringValue{Value: strings.ToUpper(str.Value)}
	case "lower":
		binding.Value = &StringValue{Value: strings.ToLower(str.Value)}
	case "trim":
		binding.Value = &StringValue{Value: strings.TrimSpace(str.Value)}
	case "replace":
		old, err := i.stringArg(s.Args[0])
		if err != nil {
			return err
		}
		repl, err := i.stringArg(s.Args[1])
		if err != nil {
			return err
		}
		binding.Value = &StringValue{Value: strings.ReplaceAll(str.Value, old, repl)}
	}
	return nil
}

// stringArg evaluates a replace argument, interpreting escape sequences.
func (i *Interpreter) stringArg(expr ast.Expression) (string, error) {
	value, err := i.evalExpression(expr)
	if err != nil {
		return "", err
	}
	str, ok := value.(*StringValue)
	if !ok {
		return "", i.errorf("cannot use non-string value for string function")
	}
	return strings.NewReplacer(`\n`, "\n", `\t`, "\t", `\"`, `"`).Replace(str.Value), nil
}

func (i *Interpreter) execSplit(s *ast.SplitStatement) error {
	binding, str, err := i.stringBinding(s.Name)
	if err != nil {
		return err
	}
	sepValue, err := i.evalExpression(s.Separator)
	if err != nil {
		return err
	}
	sep, ok := sepValue.(*StringValue)
	if !ok {
		return i.errorf("invalid separator '%s' for split() function", sepValue.String())
	}
	var parts []string
	if sep.Value == "" {
		parts = strings.Fields(str.Value)
	} else {
		parts = strings.Split(str.Value, sep.Value)
	}
	list := &ListValue{Elements: make([]Value, len(parts))}
	for n, p := range parts {
		list.Elements[n] = &StringValue{Value: p}
	}
	binding.Value = list
	return nil
}

func (i *Interpreter) execClassify(s *ast.ClassifyStatement) error {
	value, err := i.evalExpression(s.Value)
	if err != nil {
		return err
	}
	str, ok := value.(*StringValue)
	if !ok {
		return i.errorf("cannot classify a value of type %s", value.Type())
	}
	binding, ok := i.env.Get(s.Target)
	if !ok {
		return i.errorf("inexistent variable '%s'", s.Target)
	}
	if !binding.Mutable {
		return i.errorf("cannot change value of immutable variable '%s'", s.Target)
	}
	var pred func(rune) bool
	switch s.Kind {
	case "alpha":
		pred = unicode.IsLetter
	case "digit":
		pred = unicode.IsDigit
	case "alnum":
		pred = func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }
	}
	result := int64(0)
	if str.Value != "" && allRunes(str.Value, pred) {
		result = 1
	}
	binding.Value = &IntegerValue{Value: result}
	return nil
}

func allRunes(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}

func (i *Interpreter) execAscii(s *ast.AsciiStatement) error {
	binding, ok := i.env.Get(s.Name)
	if !ok {
		return i.errorf("inexistent variable '%s'", s.Name)
	}
	if !binding.Mutable {
		return i.errorf("cannot change value of immutable variable '%s'", s.Name)
	}
	switch s.Op {
	case "ascii_char":
		code, ok := binding.Value.(*IntegerValue)
		if !ok {
			return i.errorf("ascii_char expects an integer code point in '%s'", s.Name)
		}
		binding.Value = &StringValue{Value: string(rune(code.Value))}
	case "char_ascii":
		str, ok := binding.Value.(*StringValue)
		if !ok {
			return i.errorf("char_ascii expects a single-character string in '%s'", s.Name)
		}
		runes := []rune(str.Value)
		if len(runes) != 1 {
			return i.errorf("char_ascii expects a single-character string in '%s'", s.Name)
		}
		binding.Value = &IntegerValue{Value: int64(runes[0])}
	}
	return nil
}
