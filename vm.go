// Package forth83 implements a small Forth-83/94-style interpreter core: a
// flat memory image, a linked dictionary, execution tokens, and the
// interpret/compile outer loop, exposed to a host through exactly two
// operations: Interpret and Pop.
package forth83

import (
	"github.com/go-forth/forth83/internal/xt"
)

// primitive is one entry of the native-action table: a dictionary header
// backed by Go code instead of a compiled body.
type primitive struct {
	name      string
	immediate bool
	action    func(vm *VM, pfa uint) error
}

// VM is a single Forth-83/94 image and interpreter. The zero value is not
// usable; construct one with New.
type VM struct {
	mem *image
	registers

	actions []func(vm *VM, pfa uint) error

	writeFunc func(string)
	logf      func(format string, args ...interface{})

	busy bool

	// lastToken is the most recently parsed name or literal text, set by
	// interpretWord, echoed ahead of an error diagnostic.
	lastToken string
}

// New constructs a VM with its fixed-size image initialized, its system
// variables reset, and every built-in primitive installed.
func New(opts ...Option) (*VM, error) {
	vm := &VM{
		mem:       newImage(),
		writeFunc: func(string) {},
		logf:      func(string, ...interface{}) {},
	}
	vm.registers.reset()

	for _, opt := range opts {
		opt.apply(vm)
	}

	if err := vm.bootstrap(); err != nil {
		return nil, err
	}
	return vm, nil
}

// bootstrap installs the seven internal runtimes (entries 0-6, empty and
// Hidden) followed by every named primitive, in declaration order, through
// the same header allocation CREATE uses for a user word: align
// HERE, allocate a header, store the XT as 100000*(header+48) + RID where
// RID = nativeXTBase + the entry's index in vm.actions.
func (vm *VM) bootstrap() error {
	runtimes := []func(vm *VM, pfa uint) error{
		ridVariable: variableRTS,
		ridConstant: constantRTS,
		ridValue:    valueRTS,
		ridNest:     nestRTS,
		ridUnNest:   unNestRTS,
		ridNext:     nextRTS,
		ridCell:     cellRTS,
	}
	for i := 0; i < len(runtimes); i++ {
		if err := vm.installRuntime(runtimes[i]); err != nil {
			return err
		}
	}

	for _, p := range primitiveTable {
		if err := vm.installPrimitive(p); err != nil {
			return err
		}
	}
	return nil
}

// installRuntime installs one of the seven internal runtimes under an
// empty, Hidden header.
func (vm *VM) installRuntime(action func(vm *VM, pfa uint) error) error {
	nfa, pfa, err := vm.newHeader("")
	if err != nil {
		return err
	}
	if err := vm.setHeaderHidden(nfa, true); err != nil {
		return err
	}
	rid := uint(len(vm.actions)) + nativeXTBase
	vm.actions = append(vm.actions, action)
	return vm.setHeaderXT(nfa, xt.Pack(pfa, rid))
}

// installPrimitive installs one named, visible built-in.
func (vm *VM) installPrimitive(p primitive) error {
	nfa, pfa, err := vm.createHeader(p.name)
	if err != nil {
		return err
	}
	if p.immediate {
		if err := vm.setHeaderImmediate(nfa, true); err != nil {
			return err
		}
	}
	rid := uint(len(vm.actions)) + nativeXTBase
	vm.actions = append(vm.actions, p.action)
	return vm.setHeaderXT(nfa, xt.Pack(pfa, rid))
}

// execute dispatches an XT: decode its runtime id and call the
// corresponding native action with the XT's parameter-field address.
func (vm *VM) execute(token float64) error {
	pfa, rid := xt.Unpack(token)
	if rid < nativeXTBase {
		return errNonExecutable{token}
	}
	idx := rid - nativeXTBase
	if idx >= uint(len(vm.actions)) {
		return errNonExecutable{token}
	}
	return vm.actions[idx](vm, pfa)
}

// Interpret feeds text through the outer interpreter: it parses and runs or
// compiles words and numbers until text is exhausted, emitting diagnostics
// (" ok", error reports) through the VM's write sink. Interpret never
// returns an error for bad Forth source; malformed input is reported to the
// sink and interpretation continues from the next line, matching a real
// Forth's abort/quit behavior. It only returns an error for host-level
// misuse, such as calling Interpret re-entrantly from within a write-sink
// callback.
func (vm *VM) Interpret(text string) error {
	if vm.busy {
		return errReentrant{}
	}
	vm.busy = true
	defer func() { vm.busy = false }()

	return vm.outerLoop(text)
}

// Pop removes and returns the top of the data stack. It is the only way a
// host reads a result back out of the VM.
func (vm *VM) Pop() (float64, error) {
	return vm.pop()
}

// WriteFunc installed via WithWriteFunc receives every character or line
// the VM emits (via EMIT, TYPE, ., diagnostics, and so on).
func (vm *VM) write(s string) {
	if s == "" {
		return
	}
	vm.writeFunc(s)
}
