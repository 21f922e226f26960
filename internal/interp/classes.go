package interp

import (
	"github.com/BasaltDev/BasaltLang/internal/ast"
)

func (i *Interpreter) execClassDecl(s *ast.ClassStatement) error {
	methods := make(map[string]*FunctionValue, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name] = &FunctionValue{
			Name:   m.Name,
			Params: m.Params,
			Body:   m.Body,
			Line:   m.Token.Pos.Line,
		}
	}
	if _, ok := methods["init"]; !ok {
		return i.errorf("missing init() method for class '%s'", s.Name)
	}
	i.classes[s.Name] = &ClassValue{
		Name:    s.Name,
		Params:  s.Params,
		Methods: methods,
		Line:    s.Token.Pos.Line,
	}
	return nil
}

// execNew instantiates a class: a fresh instance gets its own self map
// and a copy of the method table, init runs once with the constructor
// parameters bound, and init is then removed from the instance's method
// map. The class itself stays instantiable.
func (i *Interpreter) execNew(s *ast.NewStatement) error {
	class, ok := i.classes[s.Class]
	if !ok {
		return i.errorf("instantiation of unknown class '%s'", s.Class)
	}
	args, err := i.evalArgs(s.Args)
	if err != nil {
		return err
	}
	if len(args) != len(class.Params) {
		return i.errorf("class '%s' expects %d argument(s), got %d",
			class.Name, len(class.Params), len(args))
	}
	methods := make(map[string]*FunctionValue, len(class.Methods))
	for name, m := range class.Methods {
		methods[name] = m
	}
	instance := &InstanceValue{
		Class:   class.Name,
		Methods: methods,
		Self:    NewEnvironment(),
	}
	init := methods["init"]
	if _, err := i.runMethod(instance, init, args); err != nil {
		return err
	}
	// the initializer is one-shot
	delete(instance.Methods, "init")
	if s.Target != "" {
		i.instances[s.Target] = instance
	}
	return nil
}

func (i *Interpreter) execMethodCall(s *ast.MethodCallStatement) error {
	instance, ok := i.instances[s.Instance]
	if !ok {
		return i.errorf("inexistent instance '%s'", s.Instance)
	}
	method, ok := instance.Methods[s.Method]
	if !ok {
		return i.errorf("inexistent method '%s' for instance '%s'", s.Method, s.Instance)
	}
	args, err := i.evalArgs(s.Args)
	if err != nil {
		return err
	}
	returned, err := i.runMethod(instance, method, args)
	if err != nil {
		return err
	}
	if s.Target != "" {
		return i.storeTarget(s.Target, returned)
	}
	return nil
}

// runMethod executes a method body with the instance's self bindings as
// the enclosing scope, so field reads fall through and field writes
// persist on the instance. Parameters are local to the call. Within a
// method the callable function table is the instance's method table.
func (i *Interpreter) runMethod(instance *InstanceValue, method *FunctionValue, args []Value) (Value, error) {
	if len(args) != len(method.Params) {
		return nil, i.errorf("method '%s' expects %d argument(s), got %d",
			method.Name, len(method.Params), len(args))
	}
	env := NewEnclosedEnvironment(instance.Self)
	env.Declare("null", Null, false)
	for n, param := range method.Params {
		env.Declare(param, args[n], true)
	}
	sub := i.nested(env)
	sub.inFunction = true
	sub.self = instance.Self
	sub.functions = functionTable(instance.Methods)
	sub.line = method.Line
	if err := sub.execBlock(method.Body.Statements); err != nil {
		return nil, err
	}
	if sub.returnValue == nil {
		return Null, nil
	}
	return sub.returnValue, nil
}

func functionTable(methods map[string]*FunctionValue) map[string]*FunctionValue {
	table := make(map[string]*FunctionValue, len(methods))
	for name, m := range methods {
		table[name] = m
	}
	return table
}

// execSelfSet installs a field into the instance's self map. Fields are
// immutable bindings; the value is also visible in the method's own
// scope, shadowing nothing that matters beyond the call.
func (i *Interpreter) execSelfSet(s *ast.SelfSetStatement) error {
	if i.self == nil {
		return i.errorf("can't use self outside of a class method")
	}
	value, err := i.evalExpression(s.Value)
	if err != nil {
		return err
	}
	i.self.Declare(s.Name, value, false)
	if i.env != i.self {
		i.env.Declare(s.Name, value, false)
	}
	return nil
}
