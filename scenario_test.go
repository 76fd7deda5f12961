package forth83_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	forth83 "github.com/go-forth/forth83"
)

// newSink builds a VM with a write-sink that accumulates output, for
// asserting on diagnostics as well as stack results.
func newSink(t *testing.T) (*forth83.VM, *strings.Builder) {
	t.Helper()
	var out strings.Builder
	vm, err := forth83.New(forth83.WithWriteFunc(func(s string) { out.WriteString(s) }))
	require.NoError(t, err)
	return vm, &out
}

func TestScenarioDepth(t *testing.T) {
	vm, _ := newSink(t)
	require.NoError(t, vm.Interpret("42 43 DEPTH\n"))
	depth, err := vm.Pop()
	require.NoError(t, err)
	assert.Equal(t, 2.0, depth)
	top, err := vm.Pop()
	require.NoError(t, err)
	assert.Equal(t, 43.0, top)
}

func TestScenarioCreateComma(t *testing.T) {
	vm, _ := newSink(t)
	require.NoError(t, vm.Interpret("CREATE foo   42 ,  foo @\n"))
	top, err := vm.Pop()
	require.NoError(t, err)
	assert.Equal(t, 42.0, top)
}

func TestScenarioVariable(t *testing.T) {
	vm, _ := newSink(t)
	require.NoError(t, vm.Interpret("VARIABLE v   42 v !   v @\n"))
	top, err := vm.Pop()
	require.NoError(t, err)
	assert.Equal(t, 42.0, top)
}

func TestScenarioConstant(t *testing.T) {
	vm, _ := newSink(t)
	require.NoError(t, vm.Interpret("42 CONSTANT c   ' c EXECUTE\n"))
	top, err := vm.Pop()
	require.NoError(t, err)
	assert.Equal(t, 42.0, top)
}

func TestScenarioColonSquare(t *testing.T) {
	vm, _ := newSink(t)
	require.NoError(t, vm.Interpret(": sq DUP * ;   6 sq\n"))
	top, err := vm.Pop()
	require.NoError(t, err)
	assert.Equal(t, 36.0, top)
}

func TestScenarioColonFortyTwoAndExecute(t *testing.T) {
	vm, _ := newSink(t)
	require.NoError(t, vm.Interpret(": fortytwo 21 DUP + ;   fortytwo\n"))
	top, err := vm.Pop()
	require.NoError(t, err)
	assert.Equal(t, 42.0, top)

	require.NoError(t, vm.Interpret("' fortytwo EXECUTE\n"))
	top, err = vm.Pop()
	require.NoError(t, err)
	assert.Equal(t, 42.0, top)
}

func TestScenarioTuckChain(t *testing.T) {
	vm, _ := newSink(t)
	require.NoError(t, vm.Interpret("10 2 : f TUCK DUP + * + ;   f\n"))
	top, err := vm.Pop()
	require.NoError(t, err)
	assert.Equal(t, 42.0, top)
}

func TestScenarioUndefinedWord(t *testing.T) {
	vm, out := newSink(t)
	require.NoError(t, vm.Interpret("foo\n"))
	assert.Contains(t, out.String(), "foo ?\n")
	_, err := vm.Pop()
	assert.Error(t, err, "stack should be empty after an aborted line")
}

func TestScenarioDotUnderflow(t *testing.T) {
	vm, out := newSink(t)
	require.NoError(t, vm.Interpret(".\n"))
	assert.Contains(t, out.String(), ". Stack underflow\n")
}

func TestScenarioStringLiteral(t *testing.T) {
	vm, _ := newSink(t)
	require.NoError(t, vm.Interpret(`S" Hello" SWAP DROP`+"\n"))
	top, err := vm.Pop()
	require.NoError(t, err)
	assert.Equal(t, 5.0, top)
}

func TestScenarioOkDiagnostic(t *testing.T) {
	vm, out := newSink(t)
	require.NoError(t, vm.Interpret("1 2 +\n"))
	assert.Equal(t, " ok\n", out.String())
}

func TestScenarioDotSFormat(t *testing.T) {
	vm, out := newSink(t)
	require.NoError(t, vm.Interpret("1 2 3 .S\n"))
	assert.Contains(t, out.String(), "1 2 3 <top")
}

func TestScenarioAbortClearsStacksOnly(t *testing.T) {
	vm, _ := newSink(t)
	require.NoError(t, vm.Interpret(": w 1 2 3 ;\n"))
	require.NoError(t, vm.Interpret("w ABORT\n"))
	_, err := vm.Pop()
	assert.Error(t, err)

	require.NoError(t, vm.Interpret("w\n"))
	top, err := vm.Pop()
	require.NoError(t, err)
	assert.Equal(t, 3.0, top)
}
