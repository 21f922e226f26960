package repl

import (
	"bytes"
	"strings"
	"testing"
)

func runSession(input string) (string, string, int) {
	var out, errOut bytes.Buffer
	code := Start(strings.NewReader(input), &out, &errOut, Options{Dir: "."})
	return out.String(), errOut.String(), code
}

func TestStatePersistsAcrossLines(t *testing.T) {
	out, errOut, code := runSession("let mut c = 1\nc++\nprintf(\"[c]\")\n")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if errOut != "" {
		t.Fatalf("unexpected errors: %q", errOut)
	}
	if !strings.Contains(out, "2") {
		t.Errorf("output = %q", out)
	}
}

func TestFunctionsPersist(t *testing.T) {
	out, _, _ := runSession("fn f(n) { return n }\ncall f(9) -> r\nprintf(\"[r]\")\n")
	if !strings.Contains(out, "9") {
		t.Errorf("output = %q", out)
	}
}

func TestErrorsDoNotEndSession(t *testing.T) {
	out, errOut, code := runSession("boom = 1\nprintf(\"still here\")\n")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(errOut, "inexistent variable 'boom'") {
		t.Errorf("error output = %q", errOut)
	}
	if !strings.Contains(out, "still here") {
		t.Errorf("output = %q", out)
	}
}

func TestExitEndsSession(t *testing.T) {
	out, _, code := runSession("exit(5)\nprintf(\"unreachable\")\n")
	if code != 5 {
		t.Fatalf("exit code = %d, want 5", code)
	}
	if strings.Contains(out, "unreachable") {
		t.Errorf("session continued past exit: %q", out)
	}
}

func TestBlankLinesIgnored(t *testing.T) {
	_, errOut, code := runSession("\n\nlet x = 1\n")
	if code != 0 || errOut != "" {
		t.Errorf("code = %d, errors = %q", code, errOut)
	}
}
