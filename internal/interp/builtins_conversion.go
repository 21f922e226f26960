package interp

import (
	"strconv"
	"strings"

	"github.com/BasaltDev/BasaltLang/internal/ast"
)

func (i *Interpreter) execCoerce(s *ast.CoerceStatement) error {
	binding, ok := i.env.Get(s.Name)
	if !ok {
		return i.errorf("inexistent variable '%s'", s.Name)
	}
	if !binding.Mutable {
		return i.errorf("cannot change value of immutable variable '%s'", s.Name)
	}
	switch s.Kind {
	case "int":
		converted, err := i.coerceInt(binding.Value)
		if err != nil {
			return err
		}
		binding.Value = converted
	case "float":
		converted, err := i.coerceFloat(binding.Value)
		if err != nil {
			return err
		}
		binding.Value = converted
	case "str":
		binding.Value = &StringValue{Value: binding.Value.String()}
	}
	return nil
}

// coerceInt truncates floats toward zero and parses strings.
func (i *Interpreter) coerceInt(v Value) (Value, error) {
	switch val := v.(type) {
	case *IntegerValue:
		return val, nil
	case *FloatValue:
		return &IntegerValue{Value: int64(val.Value)}, nil
	case *BooleanValue:
		if val.Value {
			return &IntegerValue{Value: 1}, nil
		}
		return &IntegerValue{Value: 0}, nil
	case *StringValue:
		n, err := strconv.ParseInt(strings.TrimSpace(val.Value), 10, 64)
		if err != nil {
			return nil, i.errorf("cannot convert '%s' to an integer", val.Value)
		}
		return &IntegerValue{Value: n}, nil
	}
	return nil, i.errorf("cannot convert a value of type %s to an integer", v.Type())
}

func (i *Interpreter) coerceFloat(v Value) (Value, error) {
	switch val := v.(type) {
	case *FloatValue:
		return val, nil
	case *IntegerValue:
		return &FloatValue{Value: float64(val.Value)}, nil
	case *BooleanValue:
		if val.Value {
			return &FloatValue{Value: 1}, nil
		}
		return &FloatValue{Value: 0}, nil
	case *StringValue:
		f, err := strconv.ParseFloat(strings.TrimSpace(val.Value), 64)
		if err != nil {
			return nil, i.errorf("cannot convert '%s' to a float", val.Value)
		}
		return &FloatValue{Value: f}, nil
	}
	return nil, i.errorf("cannot convert a value of type %s to a float", v.Type())
}

func (i *Interpreter) execRandom(s *ast.RandomStatement) error {
	binding, ok := i.env.Get(s.Target)
	if !ok {
		return i.errorf("inexistent variable '%s'", s.Target)
	}
	if !binding.Mutable {
		return i.errorf("cannot change immutable value of variable '%s'", s.Target)
	}
	low, err := i.intArg(s.Low)
	if err != nil {
		return err
	}
	high, err := i.intArg(s.High)
	if err != nil {
		return err
	}
	if low > high {
		return i.errorf("invalid range [%d, %d] for random() function", low, high)
	}
	binding.Value = &IntegerValue{Value: i.host.UniformInt(low, high)}
	return nil
}

func (i *Interpreter) intArg(expr ast.Expression) (int64, error) {
	value, err := i.evalExpression(expr)
	if err != nil {
		return 0, err
	}
	n, ok := value.(*IntegerValue)
	if !ok {
		return 0, i.errorf("invalid argument '%s' (expects an integer)", value.String())
	}
	return n.Value, nil
}
