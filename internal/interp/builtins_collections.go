package interp

import (
	"github.com/BasaltDev/BasaltLang/internal/ast"
)

// listBinding fetches a list binding. Operations that mutate the list in
// place additionally require the binding to be mutable; the flag gates
// the mutation at the top-level slot.
func (i *Interpreter) listBinding(name string, mutating bool) (*ListValue, error) {
	binding, ok := i.env.Get(name)
	if !ok {
		return nil, i.errorf("inexistent variable '%s'", name)
	}
	list, ok := binding.Value.(*ListValue)
	if !ok {
		return nil, i.errorf("list function on non-list variable '%s'", name)
	}
	if mutating && !binding.Mutable {
		return nil, i.errorf("cannot change value of immutable variable '%s'", name)
	}
	return list, nil
}

// mutableTarget fetches an existing, mutable binding for builtins that
// write their result into a named variable.
func (i *Interpreter) mutableTarget(name string) (*Binding, error) {
	binding, ok := i.env.Get(name)
	if !ok {
		return nil, i.errorf("inexistent variable '%s'", name)
	}
	if !binding.Mutable {
		return nil, i.errorf("cannot change immutable value of variable '%s'", name)
	}
	return binding, nil
}

func (i *Interpreter) listIndex(expr ast.Expression, length int) (int, error) {
	value, err := i.evalExpression(expr)
	if err != nil {
		return 0, err
	}
	idx, ok := value.(*IntegerValue)
	if !ok {
		return 0, i.errorf("invalid list index '%s' (expects an integer)", value.String())
	}
	if idx.Value < 0 || idx.Value >= int64(length) {
		return 0, i.errorf("list index %d missing", idx.Value)
	}
	return int(idx.Value), nil
}

func (i *Interpreter) execListOp(s *ast.ListOpStatement) error {
	switch s.Op {
	case "add":
		list, err := i.listBinding(s.Name, true)
		if err != nil {
			return err
		}
		value, err := i.evalExpression(s.Value)
		if err != nil {
			return err
		}
		list.Elements = append(list.Elements, value)
	case "remove":
		list, err := i.listBinding(s.Name, true)
		if err != nil {
			return err
		}
		idx, err := i.listIndex(s.Index, len(list.Elements))
		if err != nil {
			return err
		}
		list.Elements = append(list.Elements[:idx], list.Elements[idx+1:]...)
	case "len":
		list, err := i.listBinding(s.Name, false)
		if err != nil {
			return err
		}
		target, err := i.mutableTarget(s.Target)
		if err != nil {
			return err
		}
		target.Value = &IntegerValue{Value: int64(len(list.Elements))}
	case "get":
		list, err := i.listBinding(s.Name, false)
		if err != nil {
			return err
		}
		idx, err := i.listIndex(s.Index, len(list.Elements))
		if err != nil {
			return err
		}
		target, err := i.mutableTarget(s.Target)
		if err != nil {
			return err
		}
		target.Value = list.Elements[idx]
	case "pop":
		list, err := i.listBinding(s.Name, true)
		if err != nil {
			return err
		}
		idx, err := i.listIndex(s.Index, len(list.Elements))
		if err != nil {
			return err
		}
		target, err := i.mutableTarget(s.Target)
		if err != nil {
			return err
		}
		target.Value = list.Elements[idx]
		list.Elements = append(list.Elements[:idx], list.Elements[idx+1:]...)
	case "set":
		list, err := i.listBinding(s.Name, true)
		if err != nil {
			return err
		}
		idx, err := i.listIndex(s.Index, len(list.Elements))
		if err != nil {
			return err
		}
		value, err := i.evalExpression(s.Value)
		if err != nil {
			return err
		}
		list.Elements[idx] = value
	}
	return nil
}

func (i *Interpreter) dictBinding(name string, mutating bool) (*DictValue, error) {
	binding, ok := i.env.Get(name)
	if !ok {
		return nil, i.errorf("inexistent variable '%s'", name)
	}
	dict, ok := binding.Value.(*DictValue)
	if !ok {
		return nil, i.errorf("dict function on non-dict variable '%s'", name)
	}
	if mutating && !binding.Mutable {
		return nil, i.errorf("cannot change value of immutable variable '%s'", name)
	}
	return dict, nil
}

func (i *Interpreter) execDictOp(s *ast.DictOpStatement) error {
	mutating := s.Op != "get"
	dict, err := i.dictBinding(s.Name, mutating)
	if err != nil {
		return err
	}
	key, err := i.evalExpression(s.Key)
	if err != nil {
		return err
	}
	switch s.Op {
	case "get":
		value, ok := dict.Get(key)
		if !ok {
			return i.errorf("dict key '%s' missing", key.String())
		}
		target, err := i.mutableTarget(s.Target)
		if err != nil {
			return err
		}
		target.Value = value
	case "set":
		value, err := i.evalExpression(s.Value)
		if err != nil {
			return err
		}
		if !dict.Set(key, value) {
			return i.errorf("invalid dict key of type %s", key.Type())
		}
	case "delete":
		if !dict.Delete(key) {
			return i.errorf("dict key '%s' missing", key.String())
		}
	}
	return nil
}
