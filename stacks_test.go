package forth83

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVM(t *testing.T) *VM {
	t.Helper()
	vm, err := New()
	require.NoError(t, err)
	return vm
}

func TestDataStackPushPopOrder(t *testing.T) {
	vm := newTestVM(t)
	require.NoError(t, vm.push(1))
	require.NoError(t, vm.push(2))
	assert.Equal(t, uint(2), vm.depth())

	top, err := vm.pop()
	require.NoError(t, err)
	assert.Equal(t, 2.0, top)

	bottom, err := vm.pop()
	require.NoError(t, err)
	assert.Equal(t, 1.0, bottom)
}

func TestDataStackUnderflow(t *testing.T) {
	vm := newTestVM(t)
	_, err := vm.pop()
	assert.Error(t, err, "expected an underflow error popping an empty stack")
}

func TestDataStackPick(t *testing.T) {
	vm := newTestVM(t)
	for _, v := range []float64{10, 20, 30} {
		require.NoError(t, vm.push(v))
	}
	top, err := vm.pick(0)
	require.NoError(t, err)
	assert.Equal(t, 30.0, top)

	third, err := vm.pick(2)
	require.NoError(t, err)
	assert.Equal(t, 10.0, third)
}

func TestReturnStackPushPopPeek(t *testing.T) {
	vm := newTestVM(t)
	require.NoError(t, vm.rPush(99))
	peeked, err := vm.rPeek()
	require.NoError(t, err)
	assert.Equal(t, 99.0, peeked)

	popped, err := vm.rPop()
	require.NoError(t, err)
	assert.Equal(t, 99.0, popped)

	_, err = vm.rPop()
	assert.Error(t, err, "expected an underflow error on an empty return stack")
}

func TestStateToggle(t *testing.T) {
	vm := newTestVM(t)
	compiling, err := vm.state()
	require.NoError(t, err)
	assert.False(t, compiling, "a fresh VM should start in interpret state")

	require.NoError(t, vm.setState(true))
	compiling, err = vm.state()
	require.NoError(t, err)
	assert.True(t, compiling, "expected compile state after setState(true)")
}

func TestToInRoundTrip(t *testing.T) {
	vm := newTestVM(t)
	require.NoError(t, vm.setToIn(42))
	got, err := vm.toIn()
	require.NoError(t, err)
	assert.Equal(t, uint(42), got)
}

// TestQuitLeavesDataStackUntouched matches spec.md's §3/§4.7 split: QUIT
// resets the return stack, >IN, and STATE, but never the data stack.
func TestQuitLeavesDataStackUntouched(t *testing.T) {
	vm := newTestVM(t)
	require.NoError(t, vm.push(1))
	require.NoError(t, vm.push(2))
	require.NoError(t, vm.rPush(9))
	require.NoError(t, vm.setState(true))
	require.NoError(t, vm.setToIn(5))

	require.NoError(t, vm.quit())

	assert.Equal(t, uint(2), vm.depth(), "QUIT must not clear the data stack")
	_, err := vm.rPeek()
	assert.Error(t, err, "QUIT must clear the return stack")
	compiling, err := vm.state()
	require.NoError(t, err)
	assert.False(t, compiling, "QUIT must return to interpret state")
	in, err := vm.toIn()
	require.NoError(t, err)
	assert.Equal(t, uint(0), in, "QUIT must reset >IN")
}

// TestAbortAlsoClearsDataStack matches spec.md's "ABORT empties the data
// stack and calls QUIT."
func TestAbortAlsoClearsDataStack(t *testing.T) {
	vm := newTestVM(t)
	require.NoError(t, vm.push(1))
	require.NoError(t, vm.rPush(9))

	vm.abort()

	assert.Equal(t, uint(0), vm.depth(), "ABORT must clear the data stack")
	_, err := vm.rPeek()
	assert.Error(t, err, "ABORT must clear the return stack")
}
