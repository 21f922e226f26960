package interp

import (
	"strings"
	"testing"
)

func TestFactorial(t *testing.T) {
	input := `fn f[n] {
    let mut result = 1
    let mut c = n
    while c > 1 {
        result *= c
        c--
    }
    return result
}
call f[5] -> r
println(r)`
	out := testRun(t, input)
	if out != "120\n" {
		t.Errorf("got %q", out)
	}
}

func TestCallStoresReturnValue(t *testing.T) {
	input := `fn answer() {
    return 42
}
call answer() -> r
printf("[r]")`
	out := testRun(t, input)
	if out != "42" {
		t.Errorf("got %q", out)
	}
}

func TestCallWithoutTargetDiscardsReturn(t *testing.T) {
	input := `fn noisy() {
    println("ran")
    return 1
}
call noisy()`
	out := testRun(t, input)
	if out != "ran\n" {
		t.Errorf("got %q", out)
	}
}

func TestReturnDoesNotExitEarly(t *testing.T) {
	// statements after return still run; the recorded value wins
	input := `fn f() {
    return 1
    println("after")
}
call f() -> r
printf("[r]")`
	out := testRun(t, input)
	if out != "after\n1" {
		t.Errorf("got %q", out)
	}
}

func TestLastReturnWins(t *testing.T) {
	input := `fn f() {
    return 1
    return 2
}
call f() -> r
printf("[r]")`
	out := testRun(t, input)
	if out != "2" {
		t.Errorf("got %q", out)
	}
}

func TestReturnOutsideFunction(t *testing.T) {
	err := testRunError(t, "return 5")
	if !strings.Contains(err.Message, "outside of a function") {
		t.Errorf("wrong message: %q", err.Message)
	}
}

func TestFunctionEnvironmentIsolation(t *testing.T) {
	// functions see their parameters only, and their mutations are not
	// visible to the caller
	input := `let secret = 10
fn f(n) {
    n = 99
    return n
}
call f(1) -> r
printf("[secret] [r]")`
	out := testRun(t, input)
	if out != "10 99" {
		t.Errorf("got %q", out)
	}
}

func TestFunctionCannotSeeCallerVariables(t *testing.T) {
	input := `let hidden = 1
fn peek() {
    return hidden
}
call peek() -> r`
	err := testRunError(t, input)
	if !strings.Contains(err.Message, "inexistent variable 'hidden'") {
		t.Errorf("wrong message: %q", err.Message)
	}
}

func TestFunctionsCallFunctions(t *testing.T) {
	input := `fn double(n) {
    let mut out = n
    out *= 2
    return out
}
fn quadruple(n) {
    call double(n) -> twice
    call double(twice) -> four
    return four
}
call quadruple(3) -> r
printf("[r]")`
	out := testRun(t, input)
	if out != "12" {
		t.Errorf("got %q", out)
	}
}

func TestCallUndeclaredFunction(t *testing.T) {
	err := testRunError(t, "call ghost()")
	if !strings.Contains(err.Message, "undeclared function 'ghost'") {
		t.Errorf("wrong message: %q", err.Message)
	}
}

func TestArgumentCountMismatch(t *testing.T) {
	input := `fn f(a b) {
    return a
}
call f(1)`
	err := testRunError(t, input)
	if !strings.Contains(err.Message, "expects 2 argument(s), got 1") {
		t.Errorf("wrong message: %q", err.Message)
	}
}

func TestFunctionWithoutReturnYieldsNull(t *testing.T) {
	input := `fn quiet() {
    let x = 1
}
call quiet() -> r
println(r)`
	out := testRun(t, input)
	if out != "null\n" {
		t.Errorf("got %q", out)
	}
}

func TestReturnInsideLoop(t *testing.T) {
	input := `fn firstBig(xs) {
    foreach x in xs {
        if x > 10 {
            return x
            break
        }
    }
}
call firstBig([2 20 30]) -> r
printf("[r]")`
	out := testRun(t, input)
	if out != "20" {
		t.Errorf("got %q", out)
	}
}
