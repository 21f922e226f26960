package interp

import (
	"bytes"
	"strings"
	"testing"
	"time"

	berrors "github.com/BasaltDev/BasaltLang/internal/errors"
	"github.com/BasaltDev/BasaltLang/internal/lexer"
	"github.com/BasaltDev/BasaltLang/internal/parser"
)

// testHost is a scriptable Host for tests: canned input lines, in-memory
// files, deterministic randomness.
type testHost struct {
	inputs   []string
	files    map[string][]byte
	slept    []int64
	commands []string
	randomFn func(lo, hi int64) int64
}

func newTestHost() *testHost {
	return &testHost{files: make(map[string][]byte)}
}

func (h *testHost) ReadLine(string) (string, error) {
	if len(h.inputs) == 0 {
		return "", nil
	}
	line := h.inputs[0]
	h.inputs = h.inputs[1:]
	return line, nil
}

func (h *testHost) ClearTerminal() {}

func (h *testHost) Sleep(ms int64) { h.slept = append(h.slept, ms) }

func (h *testHost) ReadFile(path string) ([]byte, error) {
	data, ok := h.files[path]
	if !ok {
		return nil, &fileMissingError{path}
	}
	return data, nil
}

func (h *testHost) WriteFile(path string, data []byte) error {
	h.files[path] = append([]byte(nil), data...)
	return nil
}

func (h *testHost) AppendFile(path string, data []byte) error {
	h.files[path] = append(h.files[path], data...)
	return nil
}

func (h *testHost) ShellExec(_, cmdline string) error {
	h.commands = append(h.commands, cmdline)
	return nil
}

func (h *testHost) UniformInt(lo, hi int64) int64 {
	if h.randomFn != nil {
		return h.randomFn(lo, hi)
	}
	return lo
}

func (h *testHost) Now() time.Time { return time.Unix(0, 0) }

type fileMissingError struct{ path string }

func (e *fileMissingError) Error() string { return "no such file: " + e.path }

// testRun parses and runs input, returning the captured output. Parser
// and runtime errors fail the test.
func testRun(t *testing.T, input string) string {
	t.Helper()
	out, _, err := testRunHost(t, input, newTestHost())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out
}

// testRunError parses and runs input, returning the runtime error. A
// successful run fails the test.
func testRunError(t *testing.T, input string) *berrors.RuntimeError {
	t.Helper()
	_, _, err := testRunHost(t, input, newTestHost())
	if err == nil {
		t.Fatalf("expected a runtime error, got none")
	}
	rerr, ok := err.(*berrors.RuntimeError)
	if !ok {
		t.Fatalf("expected a RuntimeError, got %T: %v", err, err)
	}
	return rerr
}

// testRunHost runs input against the given host, returning output,
// issue output, and the run error (nil on success).
func testRunHost(t *testing.T, input string, host Host) (string, string, error) {
	t.Helper()
	return testRunWith(t, input, host, nil)
}

func testRunWith(t *testing.T, input string, host Host, args []string) (string, string, error) {
	t.Helper()
	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("parser errors: %s", strings.Join(errs, "; "))
	}
	var out, issues bytes.Buffer
	i := New(&out, WithHost(host), WithArgs(args), WithErrorOutput(&issues))
	err := i.Run(program)
	return out.String(), issues.String(), err
}
