package forth83

import "github.com/go-forth/forth83/internal/xt"

// create implements CREATE ( "name" -- ): a bare header whose body starts
// empty, running variableRTS (push my own address) by default.
func create(vm *VM, pfa uint) error {
	name, ok, err := vm.parseName()
	if err != nil {
		return err
	}
	if !ok {
		return errEmptyName{}
	}
	nfa, bodyPFA, err := vm.createHeader(name)
	if err != nil {
		return err
	}
	return vm.setHeaderXT(nfa, xt.Pack(bodyPFA, nativeXTBase+ridVariable))
}

// variable implements VARIABLE ( "name" -- ): CREATE plus one zero-valued
// cell of storage.
func variable(vm *VM, pfa uint) error {
	name, ok, err := vm.parseName()
	if err != nil {
		return err
	}
	if !ok {
		return errEmptyName{}
	}
	nfa, bodyPFA, err := vm.createHeader(name)
	if err != nil {
		return err
	}
	if err := vm.setHeaderXT(nfa, xt.Pack(bodyPFA, nativeXTBase+ridVariable)); err != nil {
		return err
	}
	if err := vm.mem.storeCell(bodyPFA, 0); err != nil {
		return err
	}
	vm.here = bodyPFA + cellSize
	return nil
}

// constant implements CONSTANT ( value "name" -- ): a header whose single
// body cell holds value, immutable by convention (only VALUE's body is
// meant to be rewritten, by TO).
func constant(vm *VM, pfa uint) error {
	val, err := vm.pop()
	if err != nil {
		return err
	}
	name, ok, err := vm.parseName()
	if err != nil {
		return err
	}
	if !ok {
		return errEmptyName{}
	}
	nfa, bodyPFA, err := vm.createHeader(name)
	if err != nil {
		return err
	}
	if err := vm.setHeaderXT(nfa, xt.Pack(bodyPFA, nativeXTBase+ridConstant)); err != nil {
		return err
	}
	if err := vm.mem.storeCell(bodyPFA, val); err != nil {
		return err
	}
	vm.here = bodyPFA + cellSize
	return nil
}

// value implements VALUE ( value "name" -- ): like CONSTANT, but runs
// valueRTS so TO can later overwrite its body cell.
func value(vm *VM, pfa uint) error {
	val, err := vm.pop()
	if err != nil {
		return err
	}
	name, ok, err := vm.parseName()
	if err != nil {
		return err
	}
	if !ok {
		return errEmptyName{}
	}
	nfa, bodyPFA, err := vm.createHeader(name)
	if err != nil {
		return err
	}
	if err := vm.setHeaderXT(nfa, xt.Pack(bodyPFA, nativeXTBase+ridValue)); err != nil {
		return err
	}
	if err := vm.mem.storeCell(bodyPFA, val); err != nil {
		return err
	}
	vm.here = bodyPFA + cellSize
	return nil
}

// to implements TO ( value "name" -- ): overwrite the body cell of a VALUE
// (or VARIABLE) word with a new value, without touching the stack's depth
// beyond consuming value.
func to(vm *VM, pfa uint) error {
	name, ok, err := vm.parseName()
	if err != nil {
		return err
	}
	if !ok {
		return errEmptyName{}
	}
	nfa, found, err := vm.find(name)
	if err != nil {
		return err
	}
	if !found {
		return errUnknownWord{name}
	}
	token, err := vm.headerXT(nfa)
	if err != nil {
		return err
	}
	targetPFA, _ := xt.Unpack(token)

	val, err := vm.pop()
	if err != nil {
		return err
	}
	return vm.mem.storeCell(targetPFA, val)
}

// colon implements : ( "name" -- ): opens a new definition, compiling into
// its body until ; closes it.
func colon(vm *VM, pfa uint) error {
	name, ok, err := vm.parseName()
	if err != nil {
		return err
	}
	if !ok {
		return errEmptyName{}
	}
	nfa, bodyPFA, err := vm.createHeader(name)
	if err != nil {
		return err
	}
	if err := vm.setHeaderXT(nfa, xt.Pack(bodyPFA, nativeXTBase+ridNest)); err != nil {
		return err
	}
	// Hidden until ; closes the definition, so a word can't find (and
	// self-call) its own still-incomplete header mid-definition.
	if err := vm.setHeaderHidden(nfa, true); err != nil {
		return err
	}
	return vm.setState(true)
}

// semicolon implements ; ( -- ): closes the current definition. It is
// Immediate so it runs even while compiling.
func semicolon(vm *VM, pfa uint) error {
	if err := vm.compileExit(); err != nil {
		return err
	}
	nfa, err := vm.latest()
	if err != nil {
		return err
	}
	if err := vm.setHeaderHidden(nfa, false); err != nil {
		return err
	}
	return vm.setState(false)
}

// immediateWord implements IMMEDIATE ( -- ): marks the most recently
// defined header so the outer interpreter executes it during compilation
// instead of compiling a call to it.
func immediateWord(vm *VM, pfa uint) error {
	nfa, err := vm.latest()
	if err != nil {
		return err
	}
	return vm.setHeaderImmediate(nfa, true)
}

// tick implements ' ( "name" -- xt ): looks up name and pushes its XT.
func tick(vm *VM, pfa uint) error {
	name, ok, err := vm.parseName()
	if err != nil {
		return err
	}
	if !ok {
		return errEmptyName{}
	}
	nfa, found, err := vm.find(name)
	if err != nil {
		return err
	}
	if !found {
		return errUnknownWord{name}
	}
	token, err := vm.headerXT(nfa)
	if err != nil {
		return err
	}
	return vm.push(token)
}

// findWord implements FIND ( "name" -- xt flag ): like ', but reports a miss
// as the original parsed-word address and 0 instead of aborting, and
// reports a hit's Immediate-ness via flag (+1 immediate, -1 normal).
func findWord(vm *VM, pfa uint) error {
	name, ok, err := vm.parseName()
	if err != nil {
		return err
	}
	if !ok {
		return errEmptyName{}
	}
	nfa, found, err := vm.find(name)
	if err != nil {
		return err
	}
	if !found {
		// On miss, FIND reports the original counted-string address and 0;
		// stash name as a counted string at parsedWordAddr so the address
		// is live, matching WORD/PARSE-NAME's convention.
		buf := []byte(name)
		if len(buf) > parsedWordSize-1 {
			buf = buf[:parsedWordSize-1]
		}
		if err := vm.mem.storeByte(parsedWordAddr, byte(len(buf))); err != nil {
			return err
		}
		if err := vm.mem.storeBytes(parsedWordAddr+1, buf); err != nil {
			return err
		}
		if err := vm.push(float64(parsedWordAddr)); err != nil {
			return err
		}
		return vm.push(0)
	}
	token, err := vm.headerXT(nfa)
	if err != nil {
		return err
	}
	imm, err := vm.headerImmediate(nfa)
	if err != nil {
		return err
	}
	if err := vm.push(token); err != nil {
		return err
	}
	// On hit, FIND reports +1 if Immediate, -1 otherwise.
	flag := -1.0
	if imm {
		flag = 1
	}
	return vm.push(flag)
}

// execute implements EXECUTE ( xt -- ): pop an XT and dispatch it.
func execute(vm *VM, pfa uint) error {
	token, err := vm.pop()
	if err != nil {
		return err
	}
	return vm.execute(token)
}
