package interp

import "testing"

func TestValueStrings(t *testing.T) {
	tests := []struct {
		value    Value
		expected string
	}{
		{&IntegerValue{Value: 42}, "42"},
		{&IntegerValue{Value: -3}, "-3"},
		{&FloatValue{Value: 2.5}, "2.5"},
		{&FloatValue{Value: 2.0}, "2.0"},
		{&BooleanValue{Value: true}, "True"},
		{&BooleanValue{Value: false}, "False"},
		{Null, "null"},
		{&StringValue{Value: "hi"}, "hi"},
		{&ListValue{Elements: []Value{
			&IntegerValue{Value: 1},
			&StringValue{Value: "a"},
		}}, `[1 "a"]`},
	}
	for _, tt := range tests {
		if got := tt.value.String(); got != tt.expected {
			t.Errorf("%s: got %q, want %q", tt.value.Type(), got, tt.expected)
		}
	}
}

func TestDictInsertionOrder(t *testing.T) {
	d := NewDict()
	d.Set(&StringValue{Value: "b"}, &IntegerValue{Value: 1})
	d.Set(&StringValue{Value: "a"}, &IntegerValue{Value: 2})
	d.Set(&StringValue{Value: "b"}, &IntegerValue{Value: 3}) // update keeps position
	want := `{"b": 3 "a": 2}`
	if got := d.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDictDelete(t *testing.T) {
	d := NewDict()
	d.Set(&StringValue{Value: "a"}, &IntegerValue{Value: 1})
	d.Set(&StringValue{Value: "b"}, &IntegerValue{Value: 2})
	if !d.Delete(&StringValue{Value: "a"}) {
		t.Fatal("delete reported missing key")
	}
	if d.Len() != 1 {
		t.Errorf("len = %d", d.Len())
	}
	if d.Delete(&StringValue{Value: "a"}) {
		t.Error("second delete should report missing")
	}
}

func TestDictKeyTypesAreDistinct(t *testing.T) {
	d := NewDict()
	d.Set(&IntegerValue{Value: 1}, &StringValue{Value: "int"})
	d.Set(&StringValue{Value: "1"}, &StringValue{Value: "str"})
	if d.Len() != 2 {
		t.Errorf("len = %d, want 2", d.Len())
	}
	v, ok := d.Get(&IntegerValue{Value: 1})
	if !ok || v.String() != "int" {
		t.Errorf("integer key lookup = %v", v)
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		value    Value
		expected bool
	}{
		{Null, false},
		{&BooleanValue{Value: true}, true},
		{&BooleanValue{Value: false}, false},
		{&IntegerValue{Value: 0}, false},
		{&IntegerValue{Value: 7}, true},
		{&StringValue{Value: ""}, false},
		{&StringValue{Value: "x"}, true},
		{&ListValue{}, false},
		{&ListValue{Elements: []Value{Null}}, true},
	}
	for _, tt := range tests {
		if got := truthy(tt.value); got != tt.expected {
			t.Errorf("truthy(%s %q) = %v", tt.value.Type(), tt.value.String(), got)
		}
	}
}
