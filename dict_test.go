package forth83

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateHeaderEmptyName(t *testing.T) {
	vm := newTestVM(t)
	_, _, err := vm.createHeader("")
	assert.Error(t, err, "expected an empty-name error")
}

func TestCreateHeaderCaseFoldAndLookup(t *testing.T) {
	vm := newTestVM(t)
	nfa, _, err := vm.createHeader("foo")
	require.NoError(t, err)
	name, err := vm.headerName(nfa)
	require.NoError(t, err)
	assert.Equal(t, "FOO", name)

	found, ok, err := vm.find("fOo")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, nfa, found)
}

func TestFindSkipsHiddenEntries(t *testing.T) {
	vm := newTestVM(t)
	nfa, _, err := vm.createHeader("secret")
	require.NoError(t, err)
	require.NoError(t, vm.setHeaderHidden(nfa, true))

	_, ok, err := vm.find("secret")
	require.NoError(t, err)
	assert.False(t, ok, "expected a hidden header not to be found")
}

func TestFindPrefersMostRecentDefinition(t *testing.T) {
	vm := newTestVM(t)
	_, _, err := vm.createHeader("dup2")
	require.NoError(t, err)
	second, _, err := vm.createHeader("dup2")
	require.NoError(t, err)

	got, ok, err := vm.find("dup2")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, second, got, "expected the most recent definition to win")
}

func TestHeaderImmediateFlag(t *testing.T) {
	vm := newTestVM(t)
	nfa, _, err := vm.createHeader("imm")
	require.NoError(t, err)
	immediate, err := vm.headerImmediate(nfa)
	require.NoError(t, err)
	assert.False(t, immediate, "a fresh header should not be Immediate")

	require.NoError(t, vm.setHeaderImmediate(nfa, true))
	immediate, err = vm.headerImmediate(nfa)
	require.NoError(t, err)
	assert.True(t, immediate, "expected Immediate after setHeaderImmediate(true)")
}

func TestWordsListsVisibleEntriesMostRecentFirst(t *testing.T) {
	vm := newTestVM(t)
	before, err := vm.words()
	require.NoError(t, err)
	baseline := len(before)

	_, _, err = vm.createHeader("alpha")
	require.NoError(t, err)
	_, _, err = vm.createHeader("beta")
	require.NoError(t, err)

	names, err := vm.words()
	require.NoError(t, err)
	require.Len(t, names, baseline+2)
	assert.Equal(t, []string{"BETA", "ALPHA"}, names[0:2])
}

// TestColonHidesHeaderUntilSemicolon matches spec.md §4.5: a word must not
// be able to find (and self-call) its own still-incomplete header.
func TestColonHidesHeaderUntilSemicolon(t *testing.T) {
	vm := newTestVM(t)
	require.NoError(t, vm.Interpret(": foo foo ;\n"))
	_, ok, err := vm.find("foo")
	require.NoError(t, err)
	assert.False(t, ok, "a definition must not be able to find its own still-incomplete header")
}

func TestSemicolonUnhidesCompletedDefinition(t *testing.T) {
	vm := newTestVM(t)
	require.NoError(t, vm.Interpret(": foo 1 ;\n"))
	_, ok, err := vm.find("foo")
	require.NoError(t, err)
	assert.True(t, ok, "a completed definition must be visible after ;")
}

// TestFindWordHitReportsImmediatePolarity matches spec.md §4.2: "+1 if
// Immediate, -1 otherwise."
func TestFindWordHitReportsImmediatePolarity(t *testing.T) {
	vm := newTestVM(t)
	require.NoError(t, vm.Interpret("FIND DUP\n"))
	flag, err := vm.Pop()
	require.NoError(t, err)
	assert.Equal(t, -1.0, flag, "DUP is not Immediate, so FIND should report -1")

	require.NoError(t, vm.Interpret("FIND ;\n"))
	flag, err = vm.Pop()
	require.NoError(t, err)
	assert.Equal(t, 1.0, flag, "; is Immediate, so FIND should report +1")
}

func TestFindWordMissReportsNonzeroAddress(t *testing.T) {
	vm := newTestVM(t)
	require.NoError(t, vm.Interpret("FIND nonesuch\n"))
	flag, err := vm.Pop()
	require.NoError(t, err)
	assert.Equal(t, 0.0, flag)
	addr, err := vm.Pop()
	require.NoError(t, err)
	assert.NotEqual(t, 0.0, addr, "a miss should report the original counted-string address, not a bare 0")
}
