package forth83

import (
	"fmt"
	"strings"

	"github.com/go-forth/forth83/internal/xt"
)

// see implements the supplemental debug word SEE ( "name" -- ), adapted
// from the teacher's vmDumper: it reports a header's flags, link, and XT
// decomposition without attempting to decompile its body.
func see(vm *VM, pfa uint) error {
	name, ok, err := vm.parseName()
	if err != nil {
		return err
	}
	if !ok || name == "" {
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
	bodyPFA, rid := xt.Unpack(token)
	immediate, err := vm.headerImmediate(nfa)
	if err != nil {
		return err
	}
	link, err := vm.headerLink(nfa)
	if err != nil {
		return err
	}

	var flags []string
	if immediate {
		flags = append(flags, "immediate")
	}

	vm.write(fmt.Sprintf("%s nfa=%d pfa=%d rid=%d link=%d flags=[%s]\n",
		name, nfa, bodyPFA, rid, link, strings.Join(flags, ",")))
	return nil
}

// dumpWord implements the supplemental debug word DUMP ( addr len -- ): a
// simple hex dump of len bytes starting at addr.
func dumpWord(vm *VM, pfa uint) error {
	length, err := vm.pop()
	if err != nil {
		return err
	}
	addr, err := vm.pop()
	if err != nil {
		return err
	}

	buf, err := vm.mem.fetchBytes(uint(addr), uint(length))
	if err != nil {
		return err
	}

	var b strings.Builder
	for i, by := range buf {
		if i%16 == 0 {
			if i > 0 {
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "%08d: ", uint(addr)+uint(i))
		}
		fmt.Fprintf(&b, "%02x ", by)
	}
	b.WriteByte('\n')
	vm.write(b.String())
	return nil
}
