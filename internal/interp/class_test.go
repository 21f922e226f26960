package interp

import (
	"strings"
	"testing"
)

func TestClassScenario(t *testing.T) {
	input := `class P(a) {
    fn init(a) {
        self set(a, a)
    }
    fn show() {
        printf("[a]")
    }
}
@class(P) new(7) -> p
@class_variable(p) call show()`
	out := testRun(t, input)
	if out != "7" {
		t.Errorf("got %q", out)
	}
}

func TestMissingInitIsError(t *testing.T) {
	input := `class Broken() {
    fn helper() {
        return 1
    }
}`
	err := testRunError(t, input)
	if !strings.Contains(err.Message, "missing init() method for class 'Broken'") {
		t.Errorf("wrong message: %q", err.Message)
	}
}

func TestUnknownClass(t *testing.T) {
	err := testRunError(t, "@class(Ghost) new()")
	if !strings.Contains(err.Message, "unknown class 'Ghost'") {
		t.Errorf("wrong message: %q", err.Message)
	}
}

func TestInitIsOneShotPerInstance(t *testing.T) {
	input := `class C(v) {
    fn init(v) {
        self set(stored, v)
    }
}
@class(C) new(1) -> a
@class_variable(a) call init(2)`
	err := testRunError(t, input)
	if !strings.Contains(err.Message, "inexistent method 'init'") {
		t.Errorf("wrong message: %q", err.Message)
	}
}

func TestClassStaysInstantiable(t *testing.T) {
	// removing init from the instance must not break later instantiation
	input := `class C(v) {
    fn init(v) {
        self set(stored, v)
    }
    fn show() {
        printf("[stored] ")
    }
}
@class(C) new(1) -> a
@class(C) new(2) -> b
@class_variable(a) call show()
@class_variable(b) call show()`
	out := testRun(t, input)
	if out != "1 2 " {
		t.Errorf("got %q", out)
	}
}

func TestInstancesOwnTheirSelf(t *testing.T) {
	input := `class Counter(start) {
    fn init(start) {
        self set(label, start)
    }
    fn show() {
        printf("[label]\n")
    }
}
@class(Counter) new("a") -> one
@class(Counter) new("b") -> two
@class_variable(one) call show()
@class_variable(two) call show()`
	out := testRun(t, input)
	if out != "a\nb\n" {
		t.Errorf("got %q", out)
	}
}

func TestMethodArgumentsBindPositionally(t *testing.T) {
	input := `class Adder(base) {
    fn init(base) {
        self set(base, base)
    }
    fn plus(n) {
        let mut sum = base
        sum += n
        return sum
    }
}
@class(Adder) new(10) -> a
@class_variable(a) call plus(5) -> r
printf("[r]")`
	out := testRun(t, input)
	if out != "15" {
		t.Errorf("got %q", out)
	}
}

func TestMethodReturnCapture(t *testing.T) {
	input := `class Box(v) {
    fn init(v) {
        self set(v, v)
    }
    fn fetch() {
        return v
    }
}
@class(Box) new(9) -> b
@class_variable(b) call fetch() -> out
println(out)`
	out := testRun(t, input)
	if out != "9\n" {
		t.Errorf("got %q", out)
	}
}

func TestUnknownInstance(t *testing.T) {
	err := testRunError(t, "@class_variable(ghost) call show()")
	if !strings.Contains(err.Message, "inexistent instance 'ghost'") {
		t.Errorf("wrong message: %q", err.Message)
	}
}

func TestSelfOutsideMethod(t *testing.T) {
	err := testRunError(t, `self set(x, 1)`)
	if !strings.Contains(err.Message, "outside of a class method") {
		t.Errorf("wrong message: %q", err.Message)
	}
}

func TestMethodsCallSiblingMethods(t *testing.T) {
	input := `class Greeter(name) {
    fn init(name) {
        self set(name, name)
    }
    fn greet() {
        call decorate(name) -> msg
        return msg
    }
    fn decorate(n) {
        let mut out = "hi "
        out += n
        return out
    }
}
@class(Greeter) new("ada") -> g
@class_variable(g) call greet() -> r
println(r)`
	out := testRun(t, input)
	if out != "hi ada\n" {
		t.Errorf("got %q", out)
	}
}
