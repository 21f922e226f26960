package interp

import "testing"

func TestEnvironmentDeclareGet(t *testing.T) {
	env := NewEnvironment()
	env.Declare("x", &IntegerValue{Value: 1}, true)
	b, ok := env.Get("x")
	if !ok {
		t.Fatal("binding not found")
	}
	if !b.Mutable {
		t.Error("expected mutable binding")
	}
	if b.Value.String() != "1" {
		t.Errorf("value = %s", b.Value.String())
	}
}

func TestEnvironmentMissing(t *testing.T) {
	env := NewEnvironment()
	if _, ok := env.Get("ghost"); ok {
		t.Error("expected missing binding")
	}
}

func TestShareForLoopIsSameHandle(t *testing.T) {
	env := NewEnvironment()
	if env.ShareForLoop() != env {
		t.Error("ShareForLoop must return the same environment")
	}
}

func TestForkForCallIsIsolated(t *testing.T) {
	env := NewEnvironment()
	env.Declare("x", &IntegerValue{Value: 1}, true)
	fork := env.ForkForCall()
	if _, ok := fork.Get("x"); ok {
		t.Error("forked environment must not see caller bindings")
	}
	fork.Declare("y", &IntegerValue{Value: 2}, true)
	if _, ok := env.Get("y"); ok {
		t.Error("caller must not see forked bindings")
	}
}

func TestEnclosedEnvironmentFallsThrough(t *testing.T) {
	outer := NewEnvironment()
	outer.Declare("field", &IntegerValue{Value: 9}, false)
	inner := NewEnclosedEnvironment(outer)
	b, ok := inner.Get("field")
	if !ok || b.Value.String() != "9" {
		t.Fatal("expected fall-through lookup")
	}
	// local declarations shadow without touching the outer binding
	inner.Declare("field", &IntegerValue{Value: 1}, true)
	outerB, _ := outer.Get("field")
	if outerB.Value.String() != "9" {
		t.Error("outer binding must be unchanged")
	}
}

func TestCloneCopiesBindingRecords(t *testing.T) {
	env := NewEnvironment()
	env.Declare("x", &IntegerValue{Value: 1}, true)
	clone := env.Clone()
	cb, _ := clone.Get("x")
	cb.Value = &IntegerValue{Value: 2}
	ob, _ := env.Get("x")
	if ob.Value.String() != "1" {
		t.Error("clone write leaked into the original binding")
	}
}

func TestMergeOverrides(t *testing.T) {
	a := NewEnvironment()
	a.Declare("x", &IntegerValue{Value: 1}, false)
	b := NewEnvironment()
	b.Declare("x", &IntegerValue{Value: 2}, true)
	b.Declare("y", &IntegerValue{Value: 3}, false)
	a.Merge(b)
	xb, _ := a.Get("x")
	if xb.Value.String() != "2" {
		t.Error("merge must override existing names")
	}
	if _, ok := a.Get("y"); !ok {
		t.Error("merge must add new names")
	}
}
