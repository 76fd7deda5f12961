package forth83

import "github.com/go-forth/forth83/internal/xt"

// The seven internal runtimes, identified by runtime id (RID). Each is
// installed as dictionary entry 0-6 with an empty, Hidden header so FIND
// never resolves one by name; only the defining words and the compiler ever
// produce XTs that name one.
const (
	ridVariable = iota
	ridConstant
	ridValue
	ridNest
	ridUnNest
	ridNext
	ridCell
)

// variableRTS pushes pfa itself: a VARIABLE's body is its own storage cell.
func variableRTS(vm *VM, pfa uint) error {
	return vm.push(float64(pfa))
}

// constantRTS and valueRTS both fetch and push the cell at pfa; VALUE's
// body is later overwritable by TO, where a CONSTANT's is not meant to be.
func constantRTS(vm *VM, pfa uint) error {
	v, err := vm.mem.fetchCell(pfa)
	if err != nil {
		return err
	}
	return vm.push(v)
}

func valueRTS(vm *VM, pfa uint) error {
	return constantRTS(vm, pfa)
}

// nestRTS enters a colon definition's body. It pushes a return-stack marker
// (so R@/>R/R> observe an active call the way they would the source's own
// design, see the XT-chaining note below) then drives the body with an
// explicit dispatch loop rather than per-cell Go recursion through nextRTS:
// behaviorally identical to chaining through nextRTS/cellRTS one cell at a
// time, but bounded to one Go stack frame per *nested* colon call instead of
// per compiled step.
func nestRTS(vm *VM, pfa uint) error {
	if err := vm.rPush(float64(pfa)); err != nil {
		return err
	}

	ip := pfa
	for {
		cell, err := vm.mem.fetchCell(ip)
		if err != nil {
			return err
		}
		cellPFA, rid := xt.Unpack(cell)

		switch rid {
		case nativeXTBase + ridUnNest:
			_, err := vm.rPop()
			return err
		case nativeXTBase + ridCell:
			lit, err := vm.mem.fetchCell(cellPFA)
			if err != nil {
				return err
			}
			if err := vm.push(lit); err != nil {
				return err
			}
			ip = cellPFA + cellSize
		case nativeXTBase + ridNext:
			ip = cellPFA + cellSize
		default:
			if err := vm.execute(cell); err != nil {
				if _, ok := err.(errExitWord); ok {
					_, popErr := vm.rPop()
					return popErr
				}
				return err
			}
			ip += cellSize
		}
	}
}

// unNestRTS balances the return-stack marker nestRTS pushed, ending the
// enclosing colon body.
func unNestRTS(vm *VM, pfa uint) error {
	_, err := vm.rPop()
	return err
}

// nextRTS is compiled as a trailer immediately after every ordinary
// compiled XT, at a self-referential PFA (its own storage address). Its job
// is to continue to the slot after it: fetch the XT one cell past its own
// address and EXECUTE it.
func nextRTS(vm *VM, pfa uint) error {
	next, err := vm.mem.fetchCell(pfa + cellSize)
	if err != nil {
		return err
	}
	return vm.execute(next)
}

// cellRTS is compiled for a literal: the compiler points its PFA one cell
// past its own address, stores the literal value there, and leaves the XT
// one cell further still. cellRTS pushes the literal, then chains onward.
func cellRTS(vm *VM, pfa uint) error {
	lit, err := vm.mem.fetchCell(pfa)
	if err != nil {
		return err
	}
	if err := vm.push(lit); err != nil {
		return err
	}
	next, err := vm.mem.fetchCell(pfa + cellSize)
	if err != nil {
		return err
	}
	return vm.execute(next)
}
