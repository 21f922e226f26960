// Package interp provides the tree-walking interpreter and runtime for
// Basalt.
package interp

import (
	"strconv"
	"strings"

	"github.com/BasaltDev/BasaltLang/internal/ast"
)

// Value represents a runtime value in the Basalt interpreter.
// All runtime values implement this interface.
type Value interface {
	// Type returns the type name of the value (e.g. "INTEGER", "STRING")
	Type() string
	// String returns the display representation of the value
	String() string
}

// NullValue is the null value. The pre-seeded `null` binding holds one.
type NullValue struct{}

func (n *NullValue) Type() string   { return "NULL" }
func (n *NullValue) String() string { return "null" }

// Null is the shared null instance.
var Null = &NullValue{}

// BooleanValue is True or False.
type BooleanValue struct {
	Value bool
}

func (b *BooleanValue) Type() string { return "BOOLEAN" }
func (b *BooleanValue) String() string {
	if b.Value {
		return "True"
	}
	return "False"
}

// IntegerValue is a signed 64-bit integer.
type IntegerValue struct {
	Value int64
}

func (i *IntegerValue) Type() string   { return "INTEGER" }
func (i *IntegerValue) String() string { return strconv.FormatInt(i.Value, 10) }

// FloatValue is an IEEE-754 double.
type FloatValue struct {
	Value float64
}

func (f *FloatValue) Type() string { return "FLOAT" }

// String keeps a decimal point so floats stay visually distinct from
// integers: 2.0 renders as "2.0", not "2".
func (f *FloatValue) String() string {
	s := strconv.FormatFloat(f.Value, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// StringValue is a Unicode string.
type StringValue struct {
	Value string
}

func (s *StringValue) Type() string   { return "STRING" }
func (s *StringValue) String() string { return s.Value }

// ListValue is an ordered, mutable list. Lists are aliased by reference:
// assigning a list to another name shares the same elements.
type ListValue struct {
	Elements []Value
}

func (l *ListValue) Type() string { return "LIST" }

func (l *ListValue) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = renderElement(e)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// DictValue is an insertion-ordered mapping with value keys. Key equality
// is defined over null, booleans, integers, floats and strings.
type DictValue struct {
	keys    []Value
	entries map[string]Value
}

// NewDict creates an empty dict.
func NewDict() *DictValue {
	return &DictValue{entries: make(map[string]Value)}
}

func (d *DictValue) Type() string { return "DICT" }

func (d *DictValue) String() string {
	parts := make([]string, len(d.keys))
	for i, k := range d.keys {
		v, _ := d.Get(k)
		parts[i] = `"` + k.String() + `": ` + renderElement(v)
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// hashKey returns a type-tagged key string, or false for values that
// cannot be dict keys (lists, dicts, functions).
func hashKey(v Value) (string, bool) {
	switch val := v.(type) {
	case *NullValue:
		return "n:", true
	case *BooleanValue:
		return "b:" + val.String(), true
	case *IntegerValue:
		return "i:" + val.String(), true
	case *FloatValue:
		return "f:" + strconv.FormatFloat(val.Value, 'b', -1, 64), true
	case *StringValue:
		return "s:" + val.Value, true
	}
	return "", false
}

// Get looks up a key.
func (d *DictValue) Get(key Value) (Value, bool) {
	hk, ok := hashKey(key)
	if !ok {
		return nil, false
	}
	v, ok := d.entries[hk]
	return v, ok
}

// Set inserts or updates a key, preserving insertion order.
func (d *DictValue) Set(key, value Value) bool {
	hk, ok := hashKey(key)
	if !ok {
		return false
	}
	if _, exists := d.entries[hk]; !exists {
		d.keys = append(d.keys, key)
	}
	d.entries[hk] = value
	return true
}

// Delete removes a key. Reports whether the key was present.
func (d *DictValue) Delete(key Value) bool {
	hk, ok := hashKey(key)
	if !ok {
		return false
	}
	if _, exists := d.entries[hk]; !exists {
		return false
	}
	delete(d.entries, hk)
	for i, k := range d.keys {
		if khk, _ := hashKey(k); khk == hk {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of entries.
func (d *DictValue) Len() int { return len(d.keys) }

// Keys returns the keys in insertion order.
func (d *DictValue) Keys() []Value { return d.keys }

// FunctionValue is a user-defined function: a parameter list and a body.
type FunctionValue struct {
	Name   string
	Params []string
	Body   *ast.BlockStatement
	Line   int
}

func (f *FunctionValue) Type() string { return "FUNCTION" }
func (f *FunctionValue) String() string {
	return "fn " + f.Name + "(" + strings.Join(f.Params, " ") + ")"
}

// ClassValue is a class declaration: constructor parameters and a method
// table. Instantiation clones the method table into the instance.
type ClassValue struct {
	Name    string
	Params  []string
	Methods map[string]*FunctionValue
	Line    int
}

func (c *ClassValue) Type() string   { return "CLASS" }
func (c *ClassValue) String() string { return "class " + c.Name }

// InstanceValue is a concrete realization of a class: its own self
// bindings plus a method table with the one-shot init removed after
// construction.
type InstanceValue struct {
	Class   string
	Methods map[string]*FunctionValue
	Self    *Environment
}

func (i *InstanceValue) Type() string   { return "INSTANCE" }
func (i *InstanceValue) String() string { return "instance of " + i.Class }

// renderElement renders a value for display inside a list or dict, where
// strings keep their quotes.
func renderElement(v Value) string {
	if s, ok := v.(*StringValue); ok {
		return `"` + s.Value + `"`
	}
	return v.String()
}

// truthy converts a value to a boolean for bare conditions.
func truthy(v Value) bool {
	switch val := v.(type) {
	case *NullValue:
		return false
	case *BooleanValue:
		return val.Value
	case *IntegerValue:
		return val.Value != 0
	case *FloatValue:
		return val.Value != 0
	case *StringValue:
		return val.Value != ""
	case *ListValue:
		return len(val.Elements) > 0
	case *DictValue:
		return val.Len() > 0
	}
	return true
}
