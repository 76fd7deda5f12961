package forth83

import (
	"fmt"
	"strings"

	"github.com/go-forth/forth83/internal/panicerr"
	"github.com/go-forth/forth83/internal/xt"
)

// abort clears the data stack and calls quit, matching spec's "ABORT
// empties the data stack and calls QUIT." The dictionary and HERE are
// left untouched.
func (vm *VM) abort() {
	vm.sp = dataStackAddr
	_ = vm.quit()
}

// quit clears the return stack, the input buffer's parse position and
// char count, and returns to interpret state, matching a classic Forth
// QUIT. Unlike abort, the data stack is left untouched.
func (vm *VM) quit() error {
	vm.rp = returnStackAddr
	if err := vm.setToIn(0); err != nil {
		return err
	}
	if err := vm.setInCount(0); err != nil {
		return err
	}
	return vm.setState(false)
}

// outerLoop is the outer interpreter: for each line of text, parse a name
// at a time, and either execute it, compile it, push it as a numeric
// literal, or compile it as one, reporting any error as a diagnostic and
// aborting back to interpret state rather than propagating the error to
// the host. Each line runs through panicerr.Recover so a bug in a
// primitive's Go code surfaces as an ordinary diagnostic instead of
// crashing the embedding host.
func (vm *VM) outerLoop(text string) error {
	lines := strings.Split(text, "\n")
	// A source line conventionally ends with "\n"; strip the resulting
	// trailing empty segment so it isn't interpreted as one more (blank)
	// line with its own " ok" diagnostic.
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for _, line := range lines {
		if err := vm.setInputLine(line); err != nil {
			return err
		}
		if err := panicerr.Recover("interpret", vm.interpretLine); err != nil {
			switch err.(type) {
			case errAbortSignal, errQuitSignal:
				// quiet: ABORT/QUIT already performed their own reset.
			case errExitWord:
				// quiet: a bare EXIT at the top level simply ends the line
				// early, with no reset at all.
			default:
				vm.write(fmt.Sprintf("%s %s\n", vm.lastToken, err.Error()))
				vm.abort()
			}
			continue
		}
		compiling, err := vm.state()
		if err != nil {
			return err
		}
		if !compiling {
			vm.write(" ok\n")
		}
	}
	return nil
}

// interpretLine drains one line's worth of names from the input buffer.
func (vm *VM) interpretLine() error {
	for {
		name, ok, err := vm.parseName()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := vm.interpretWord(name); err != nil {
			return err
		}
	}
}

func (vm *VM) interpretWord(name string) error {
	vm.lastToken = name

	if r, ok := parseRuneLiteral(name); ok {
		return vm.interpretValue(float64(r))
	}

	nfa, found, err := vm.find(name)
	if err != nil {
		return err
	}
	if found {
		return vm.interpretHeader(nfa)
	}

	val, ok := parseNumber(name)
	if !ok {
		return errUnknownWord{name}
	}
	return vm.interpretValue(val)
}

// interpretHeader runs or compiles a found dictionary entry depending on
// STATE and its Immediate flag.
func (vm *VM) interpretHeader(nfa uint) error {
	token, err := vm.headerXT(nfa)
	if err != nil {
		return err
	}
	immediate, err := vm.headerImmediate(nfa)
	if err != nil {
		return err
	}
	compiling, err := vm.state()
	if err != nil {
		return err
	}
	if !compiling || immediate {
		return vm.execute(token)
	}
	return vm.compileCall(token)
}

// interpretValue pushes or compiles a literal numeric (or character) value
// depending on STATE.
func (vm *VM) interpretValue(val float64) error {
	compiling, err := vm.state()
	if err != nil {
		return err
	}
	if !compiling {
		return vm.push(val)
	}
	return vm.compileLiteral(val)
}

// compileCall compiles a call to an already-resolved XT: the XT cell
// itself, followed by a nextRTS trailer whose PFA is its own (self
// -referential) address so nestRTS's dispatch loop can chain to the slot
// after it.
func (vm *VM) compileCall(token float64) error {
	a := vm.here
	if err := vm.mem.storeCell(a, token); err != nil {
		return err
	}
	vm.here += cellSize

	trailer := xt.Pack(vm.here, nativeXTBase+ridNext)
	if err := vm.mem.storeCell(vm.here, trailer); err != nil {
		return err
	}
	vm.here += cellSize
	return nil
}

// compileLiteral compiles a cellRTS slot: a cellRTS-tagged cell whose PFA
// points one cell past itself, followed by the literal value.
func (vm *VM) compileLiteral(val float64) error {
	a := vm.here
	head := xt.Pack(a+cellSize, nativeXTBase+ridCell)
	if err := vm.mem.storeCell(a, head); err != nil {
		return err
	}
	vm.here += cellSize

	if err := vm.mem.storeCell(vm.here, val); err != nil {
		return err
	}
	vm.here += cellSize
	return nil
}

// compileExit compiles the unNestRTS-tagged terminator cell that ends a
// colon definition's body.
func (vm *VM) compileExit() error {
	token := xt.Pack(vm.here, nativeXTBase+ridUnNest)
	if err := vm.mem.storeCell(vm.here, token); err != nil {
		return err
	}
	vm.here += cellSize
	return nil
}
