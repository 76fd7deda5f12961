package forth83

import (
	"strconv"
	"strings"
)

// errExitWord is returned by EXIT: nestRTS's dispatch loop recognizes it,
// balances its return-stack marker, and stops the current body without
// treating it as a real error.
type errExitWord struct{}

func (errExitWord) Error() string { return "exit" }

// errAbortSignal is returned by ABORT. Unlike errExitWord it is not caught
// by nestRTS: it propagates all the way up to the outer loop, which
// recognizes it and skips printing a diagnostic (the reset already
// happened).
type errAbortSignal struct{}

func (errAbortSignal) Error() string { return "" }

// errQuitSignal is returned by QUIT. Like errAbortSignal it propagates to
// the outer loop without a diagnostic, but QUIT's reset (vm.quit) leaves
// the data stack untouched, unlike ABORT's.
type errQuitSignal struct{}

func (errQuitSignal) Error() string { return "" }

func toFlag(b bool) float64 {
	if b {
		return -1
	}
	return 0
}

// formatNumber renders a cell the way . and .S do: as a plain integer when
// it has no fractional part, otherwise with Go's default float formatting.
func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// arithmetic

func add(vm *VM, pfa uint) error { return binOp(vm, func(a, b float64) float64 { return a + b }) }
func sub(vm *VM, pfa uint) error { return binOp(vm, func(a, b float64) float64 { return a - b }) }
func mul(vm *VM, pfa uint) error { return binOp(vm, func(a, b float64) float64 { return a * b }) }
func div(vm *VM, pfa uint) error { return binOp(vm, func(a, b float64) float64 { return a / b }) }

func mod(vm *VM, pfa uint) error {
	return binOp(vm, func(a, b float64) float64 {
		if b == 0 {
			return 0
		}
		m := a - b*float64(int64(a/b))
		return m
	})
}

func divMod(vm *VM, pfa uint) error {
	b, err := vm.pop()
	if err != nil {
		return err
	}
	a, err := vm.pop()
	if err != nil {
		return err
	}
	var q, r float64
	if b != 0 {
		q = float64(int64(a / b))
		r = a - b*q
	}
	if err := vm.push(r); err != nil {
		return err
	}
	return vm.push(q)
}

func negate(vm *VM, pfa uint) error { return unOp(vm, func(a float64) float64 { return -a }) }
func abs(vm *VM, pfa uint) error {
	return unOp(vm, func(a float64) float64 {
		if a < 0 {
			return -a
		}
		return a
	})
}
func oneIncr(vm *VM, pfa uint) error { return unOp(vm, func(a float64) float64 { return a + 1 }) }
func oneDecr(vm *VM, pfa uint) error { return unOp(vm, func(a float64) float64 { return a - 1 }) }
func twoMul(vm *VM, pfa uint) error  { return unOp(vm, func(a float64) float64 { return a * 2 }) }
func twoDiv(vm *VM, pfa uint) error  { return unOp(vm, func(a float64) float64 { return a / 2 }) }

func minWord(vm *VM, pfa uint) error {
	return binOp(vm, func(a, b float64) float64 {
		if a < b {
			return a
		}
		return b
	})
}

func maxWord(vm *VM, pfa uint) error {
	return binOp(vm, func(a, b float64) float64 {
		if a > b {
			return a
		}
		return b
	})
}

func binOp(vm *VM, f func(a, b float64) float64) error {
	b, err := vm.pop()
	if err != nil {
		return err
	}
	a, err := vm.pop()
	if err != nil {
		return err
	}
	return vm.push(f(a, b))
}

func unOp(vm *VM, f func(a float64) float64) error {
	a, err := vm.pop()
	if err != nil {
		return err
	}
	return vm.push(f(a))
}

// comparison & logic

func eq(vm *VM, pfa uint) error  { return binCmp(vm, func(a, b float64) bool { return a == b }) }
func ne(vm *VM, pfa uint) error  { return binCmp(vm, func(a, b float64) bool { return a != b }) }
func lt(vm *VM, pfa uint) error  { return binCmp(vm, func(a, b float64) bool { return a < b }) }
func gt(vm *VM, pfa uint) error  { return binCmp(vm, func(a, b float64) bool { return a > b }) }
func le(vm *VM, pfa uint) error  { return binCmp(vm, func(a, b float64) bool { return a <= b }) }
func ge(vm *VM, pfa uint) error  { return binCmp(vm, func(a, b float64) bool { return a >= b }) }
func zeroEq(vm *VM, pfa uint) error {
	return unCmp(vm, func(a float64) bool { return a == 0 })
}
func zeroLt(vm *VM, pfa uint) error {
	return unCmp(vm, func(a float64) bool { return a < 0 })
}
func zeroGt(vm *VM, pfa uint) error {
	return unCmp(vm, func(a float64) bool { return a > 0 })
}

func binCmp(vm *VM, f func(a, b float64) bool) error {
	b, err := vm.pop()
	if err != nil {
		return err
	}
	a, err := vm.pop()
	if err != nil {
		return err
	}
	return vm.push(toFlag(f(a, b)))
}

func unCmp(vm *VM, f func(a float64) bool) error {
	a, err := vm.pop()
	if err != nil {
		return err
	}
	return vm.push(toFlag(f(a)))
}

func isTrue(v float64) bool { return v != 0 }

func andWord(vm *VM, pfa uint) error {
	return binCmp(vm, func(a, b float64) bool { return isTrue(a) && isTrue(b) })
}
func orWord(vm *VM, pfa uint) error {
	return binCmp(vm, func(a, b float64) bool { return isTrue(a) || isTrue(b) })
}
func xorWord(vm *VM, pfa uint) error {
	return binCmp(vm, func(a, b float64) bool { return isTrue(a) != isTrue(b) })
}
func notWord(vm *VM, pfa uint) error { return unCmp(vm, func(a float64) bool { return !isTrue(a) }) }

// data stack

func dup(vm *VM, pfa uint) error {
	v, err := vm.pick(0)
	if err != nil {
		return err
	}
	return vm.push(v)
}

func drop(vm *VM, pfa uint) error {
	_, err := vm.pop()
	return err
}

func swap(vm *VM, pfa uint) error {
	b, err := vm.pop()
	if err != nil {
		return err
	}
	a, err := vm.pop()
	if err != nil {
		return err
	}
	if err := vm.push(b); err != nil {
		return err
	}
	return vm.push(a)
}

func over(vm *VM, pfa uint) error {
	v, err := vm.pick(1)
	if err != nil {
		return err
	}
	return vm.push(v)
}

func rot(vm *VM, pfa uint) error {
	c, err := vm.pop()
	if err != nil {
		return err
	}
	b, err := vm.pop()
	if err != nil {
		return err
	}
	a, err := vm.pop()
	if err != nil {
		return err
	}
	if err := vm.push(b); err != nil {
		return err
	}
	if err := vm.push(c); err != nil {
		return err
	}
	return vm.push(a)
}

func minusRot(vm *VM, pfa uint) error {
	c, err := vm.pop()
	if err != nil {
		return err
	}
	b, err := vm.pop()
	if err != nil {
		return err
	}
	a, err := vm.pop()
	if err != nil {
		return err
	}
	if err := vm.push(c); err != nil {
		return err
	}
	if err := vm.push(a); err != nil {
		return err
	}
	return vm.push(b)
}

func questionDup(vm *VM, pfa uint) error {
	v, err := vm.pick(0)
	if err != nil {
		return err
	}
	if v == 0 {
		return nil
	}
	return vm.push(v)
}

func pickWord(vm *VM, pfa uint) error {
	n, err := vm.pop()
	if err != nil {
		return err
	}
	v, err := vm.pick(uint(n))
	if err != nil {
		return err
	}
	return vm.push(v)
}

func rollWord(vm *VM, pfa uint) error {
	n, err := vm.pop()
	if err != nil {
		return err
	}
	idx := uint(n)
	v, err := vm.pick(idx)
	if err != nil {
		return err
	}
	top := vm.sp - cellSize
	addr := vm.sp - cellSize*(idx+1)
	for a := addr; a < top; a += cellSize {
		cell, err := vm.mem.fetchCell(a + cellSize)
		if err != nil {
			return err
		}
		if err := vm.mem.storeCell(a, cell); err != nil {
			return err
		}
	}
	return vm.mem.storeCell(top, v)
}

func depthWord(vm *VM, pfa uint) error {
	return vm.push(float64(vm.depth()))
}

func twoDup(vm *VM, pfa uint) error {
	b, err := vm.pick(0)
	if err != nil {
		return err
	}
	a, err := vm.pick(1)
	if err != nil {
		return err
	}
	if err := vm.push(a); err != nil {
		return err
	}
	return vm.push(b)
}

func twoDrop(vm *VM, pfa uint) error {
	if _, err := vm.pop(); err != nil {
		return err
	}
	_, err := vm.pop()
	return err
}

func twoSwap(vm *VM, pfa uint) error {
	d, err := vm.pop()
	if err != nil {
		return err
	}
	c, err := vm.pop()
	if err != nil {
		return err
	}
	b, err := vm.pop()
	if err != nil {
		return err
	}
	a, err := vm.pop()
	if err != nil {
		return err
	}
	for _, v := range []float64{c, d, a, b} {
		if err := vm.push(v); err != nil {
			return err
		}
	}
	return nil
}

func twoOver(vm *VM, pfa uint) error {
	a, err := vm.pick(3)
	if err != nil {
		return err
	}
	b, err := vm.pick(2)
	if err != nil {
		return err
	}
	if err := vm.push(a); err != nil {
		return err
	}
	return vm.push(b)
}

func nip(vm *VM, pfa uint) error {
	b, err := vm.pop()
	if err != nil {
		return err
	}
	if _, err := vm.pop(); err != nil {
		return err
	}
	return vm.push(b)
}

func tuck(vm *VM, pfa uint) error {
	b, err := vm.pop()
	if err != nil {
		return err
	}
	a, err := vm.pop()
	if err != nil {
		return err
	}
	if err := vm.push(b); err != nil {
		return err
	}
	if err := vm.push(a); err != nil {
		return err
	}
	return vm.push(b)
}

// return stack

func toR(vm *VM, pfa uint) error {
	v, err := vm.pop()
	if err != nil {
		return err
	}
	return vm.rPush(v)
}

func rFrom(vm *VM, pfa uint) error {
	v, err := vm.rPop()
	if err != nil {
		return err
	}
	return vm.push(v)
}

func rFetch(vm *VM, pfa uint) error {
	v, err := vm.rPeek()
	if err != nil {
		return err
	}
	return vm.push(v)
}

// memory

func fetch(vm *VM, pfa uint) error {
	addr, err := vm.pop()
	if err != nil {
		return err
	}
	v, err := vm.mem.fetchCell(uint(addr))
	if err != nil {
		return err
	}
	return vm.push(v)
}

func store(vm *VM, pfa uint) error {
	addr, err := vm.pop()
	if err != nil {
		return err
	}
	v, err := vm.pop()
	if err != nil {
		return err
	}
	return vm.mem.storeCell(uint(addr), v)
}

func cFetch(vm *VM, pfa uint) error {
	addr, err := vm.pop()
	if err != nil {
		return err
	}
	b, err := vm.mem.fetchByte(uint(addr))
	if err != nil {
		return err
	}
	return vm.push(float64(b))
}

func cStore(vm *VM, pfa uint) error {
	addr, err := vm.pop()
	if err != nil {
		return err
	}
	v, err := vm.pop()
	if err != nil {
		return err
	}
	return vm.mem.storeByte(uint(addr), byte(int64(v)))
}

func plusStore(vm *VM, pfa uint) error {
	addr, err := vm.pop()
	if err != nil {
		return err
	}
	n, err := vm.pop()
	if err != nil {
		return err
	}
	old, err := vm.mem.fetchCell(uint(addr))
	if err != nil {
		return err
	}
	return vm.mem.storeCell(uint(addr), old+n)
}

func comma(vm *VM, pfa uint) error {
	v, err := vm.pop()
	if err != nil {
		return err
	}
	if err := vm.mem.storeCell(vm.here, v); err != nil {
		return err
	}
	vm.here += cellSize
	return nil
}

func cComma(vm *VM, pfa uint) error {
	v, err := vm.pop()
	if err != nil {
		return err
	}
	if err := vm.mem.storeByte(vm.here, byte(int64(v))); err != nil {
		return err
	}
	vm.here++
	return nil
}

func allot(vm *VM, pfa uint) error {
	n, err := vm.pop()
	if err != nil {
		return err
	}
	next := int64(vm.here) + int64(n)
	if next < 0 {
		return errOutOfBounds{vm.here, "allot"}
	}
	vm.here = uint(next)
	return nil
}

func alignWord(vm *VM, pfa uint) error {
	vm.here = align(vm.here)
	return nil
}

func alignedWord(vm *VM, pfa uint) error {
	addr, err := vm.pop()
	if err != nil {
		return err
	}
	return vm.push(float64(align(uint(addr))))
}

func hereWord(vm *VM, pfa uint) error {
	return vm.push(float64(vm.here))
}

// I/O

// emit writes one character cell to the output sink, replacing anything
// outside [32, 126] with '?' per the write sink's literal EMIT contract.
func emit(vm *VM, pfa uint) error {
	v, err := vm.pop()
	if err != nil {
		return err
	}
	r := int64(v)
	c := byte('?')
	if r >= 32 && r <= 126 {
		c = byte(r)
	}
	vm.write(string(c))
	return nil
}

func typeWord(vm *VM, pfa uint) error {
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
	vm.write(string(buf))
	return nil
}

func cr(vm *VM, pfa uint) error {
	vm.write("\n")
	return nil
}

func space(vm *VM, pfa uint) error {
	vm.write(" ")
	return nil
}

func spaces(vm *VM, pfa uint) error {
	n, err := vm.pop()
	if err != nil {
		return err
	}
	vm.write(strings.Repeat(" ", int(n)))
	return nil
}

func dot(vm *VM, pfa uint) error {
	v, err := vm.pop()
	if err != nil {
		return err
	}
	vm.write(formatNumber(v) + " ")
	return nil
}

// dotS prints the data stack bottom-to-top followed by the literal "<top",
// per the spec's diagnostic format (not the traditional "<n>" depth prefix
// some Forths use).
func dotS(vm *VM, pfa uint) error {
	depth := vm.depth()
	var b strings.Builder
	for i := depth; i > 0; i-- {
		v, err := vm.pick(i - 1)
		if err != nil {
			return err
		}
		b.WriteString(formatNumber(v))
		b.WriteByte(' ')
	}
	b.WriteString("<top")
	vm.write(b.String())
	return nil
}

func key(vm *VM, pfa uint) error {
	in, err := vm.toIn()
	if err != nil {
		return err
	}
	count, err := vm.inCount()
	if err != nil {
		return err
	}
	if in >= count {
		return vm.push(-1)
	}
	b, err := vm.mem.fetchByte(inputBufAddr + in)
	if err != nil {
		return err
	}
	if err := vm.setToIn(in + 1); err != nil {
		return err
	}
	return vm.push(float64(b))
}

func keyQuestion(vm *VM, pfa uint) error {
	in, err := vm.toIn()
	if err != nil {
		return err
	}
	count, err := vm.inCount()
	if err != nil {
		return err
	}
	return vm.push(toFlag(in < count))
}

// parsing

func parseWord(vm *VM, pfa uint) error {
	delim, err := vm.pop()
	if err != nil {
		return err
	}
	text, err := vm.parseDelim(byte(int64(delim)))
	if err != nil {
		return err
	}
	addr, err := vm.stashPOD(text)
	if err != nil {
		return err
	}
	if err := vm.push(float64(addr)); err != nil {
		return err
	}
	return vm.push(float64(len(text)))
}

func parseNamePrim(vm *VM, pfa uint) error {
	name, ok, err := vm.parseName()
	if err != nil {
		return err
	}
	if !ok {
		name = ""
	}
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
	if err := vm.push(float64(parsedWordAddr + 1)); err != nil {
		return err
	}
	return vm.push(float64(len(buf)))
}

func wordPrim(vm *VM, pfa uint) error {
	delim, err := vm.pop()
	if err != nil {
		return err
	}
	text, err := vm.parseDelim(byte(int64(delim)))
	if err != nil {
		return err
	}
	if len(text) > parsedWordSize-1 {
		text = text[:parsedWordSize-1]
	}
	if err := vm.mem.storeByte(parsedWordAddr, byte(len(text))); err != nil {
		return err
	}
	if err := vm.mem.storeBytes(parsedWordAddr+1, []byte(text)); err != nil {
		return err
	}
	return vm.push(float64(parsedWordAddr))
}

// stringLit implements the supplemental S" ( "ccc<quote>" -- addr len )
// word: skip exactly one separating space after the S" token, then parse
// up to (not including) the next double-quote, stashing the text in POD.
func stringLit(vm *VM, pfa uint) error {
	in, err := vm.toIn()
	if err != nil {
		return err
	}
	count, err := vm.inCount()
	if err != nil {
		return err
	}
	buf, err := vm.mem.fetchBytes(inputBufAddr, count)
	if err != nil {
		return err
	}
	if int(in) < len(buf) && buf[in] == ' ' {
		if err := vm.setToIn(in + 1); err != nil {
			return err
		}
	}

	text, err := vm.parseDelim('"')
	if err != nil {
		return err
	}
	addr, err := vm.stashPOD(text)
	if err != nil {
		return err
	}
	if err := vm.push(float64(addr)); err != nil {
		return err
	}
	return vm.push(float64(len(text)))
}

func charPrim(vm *VM, pfa uint) error {
	name, ok, err := vm.parseName()
	if err != nil {
		return err
	}
	if !ok || name == "" {
		return errEmptyName{}
	}
	return vm.push(float64(name[0]))
}

func toNumber(vm *VM, pfa uint) error {
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
	val, ok := parseNumber(string(buf))
	if !ok {
		if err := vm.push(0); err != nil {
			return err
		}
		return vm.push(0)
	}
	if err := vm.push(val); err != nil {
		return err
	}
	return vm.push(-1)
}

func toUppercase(vm *VM, pfa uint) error {
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
	return vm.mem.storeBytes(uint(addr), []byte(strings.ToUpper(string(buf))))
}

func source(vm *VM, pfa uint) error {
	count, err := vm.inCount()
	if err != nil {
		return err
	}
	if err := vm.push(float64(inputBufAddr)); err != nil {
		return err
	}
	return vm.push(float64(count))
}

func toInWord(vm *VM, pfa uint) error {
	return vm.push(float64(toInAddr))
}

func stateWord(vm *VM, pfa uint) error {
	return vm.push(float64(stateAddr))
}

// stashPOD writes text into the POD (pictured-output/scratch) region,
// truncating to its capacity, and returns its address.
func (vm *VM) stashPOD(text string) (uint, error) {
	buf := []byte(text)
	if len(buf) > podSize {
		buf = buf[:podSize]
	}
	if err := vm.mem.storeBytes(podAddr, buf); err != nil {
		return 0, err
	}
	return podAddr, nil
}

// control & system

func exitWord(vm *VM, pfa uint) error {
	return errExitWord{}
}

func abortWord(vm *VM, pfa uint) error {
	vm.abort()
	return errAbortSignal{}
}

func quitWord(vm *VM, pfa uint) error {
	if err := vm.quit(); err != nil {
		return err
	}
	return errQuitSignal{}
}

func bye(vm *VM, pfa uint) error {
	return nil
}

func trueWord(vm *VM, pfa uint) error  { return vm.push(-1) }
func falseWord(vm *VM, pfa uint) error { return vm.push(0) }

func wordsPrim(vm *VM, pfa uint) error {
	names, err := vm.words()
	if err != nil {
		return err
	}
	vm.write(strings.Join(names, " "))
	vm.write("\n")
	return nil
}

// primitiveTable lists every named built-in in installation order. Order
// matters: it fixes each word's runtime id (RID = nativeXTBase + index in
// this table, after the seven internal runtimes).
var primitiveTable = []primitive{
	{name: "+", action: add},
	{name: "-", action: sub},
	{name: "*", action: mul},
	{name: "/", action: div},
	{name: "MOD", action: mod},
	{name: "/MOD", action: divMod},
	{name: "NEGATE", action: negate},
	{name: "ABS", action: abs},
	{name: "1+", action: oneIncr},
	{name: "1-", action: oneDecr},
	{name: "2*", action: twoMul},
	{name: "2/", action: twoDiv},
	{name: "MIN", action: minWord},
	{name: "MAX", action: maxWord},

	{name: "=", action: eq},
	{name: "<>", action: ne},
	{name: "<", action: lt},
	{name: ">", action: gt},
	{name: "<=", action: le},
	{name: ">=", action: ge},
	{name: "0=", action: zeroEq},
	{name: "0<", action: zeroLt},
	{name: "0>", action: zeroGt},
	{name: "AND", action: andWord},
	{name: "OR", action: orWord},
	{name: "XOR", action: xorWord},
	{name: "NOT", action: notWord},
	{name: "INVERT", action: notWord},

	{name: "DUP", action: dup},
	{name: "DROP", action: drop},
	{name: "SWAP", action: swap},
	{name: "OVER", action: over},
	{name: "ROT", action: rot},
	{name: "-ROT", action: minusRot},
	{name: "?DUP", action: questionDup},
	{name: "PICK", action: pickWord},
	{name: "ROLL", action: rollWord},
	{name: "DEPTH", action: depthWord},
	{name: "2DUP", action: twoDup},
	{name: "2DROP", action: twoDrop},
	{name: "2SWAP", action: twoSwap},
	{name: "2OVER", action: twoOver},
	{name: "NIP", action: nip},
	{name: "TUCK", action: tuck},

	{name: ">R", action: toR},
	{name: "R>", action: rFrom},
	{name: "R@", action: rFetch},

	{name: "@", action: fetch},
	{name: "!", action: store},
	{name: "C@", action: cFetch},
	{name: "C!", action: cStore},
	{name: "+!", action: plusStore},
	{name: ",", action: comma},
	{name: "C,", action: cComma},
	{name: "ALLOT", action: allot},
	{name: "ALIGN", action: alignWord},
	{name: "ALIGNED", action: alignedWord},
	{name: "HERE", action: hereWord},

	{name: "EMIT", action: emit},
	{name: "TYPE", action: typeWord},
	{name: "CR", action: cr},
	{name: "SPACE", action: space},
	{name: "SPACES", action: spaces},
	{name: ".", action: dot},
	{name: ".S", action: dotS},
	{name: "KEY", action: key},
	{name: "KEY?", action: keyQuestion},

	{name: "PARSE", action: parseWord},
	{name: "PARSE-NAME", action: parseNamePrim},
	{name: "WORD", action: wordPrim},
	{name: "S\"", action: stringLit},
	{name: "CHAR", action: charPrim},
	{name: ">NUMBER", action: toNumber},
	{name: ">UPPERCASE", action: toUppercase},
	{name: "SOURCE", action: source},
	{name: ">IN", action: toInWord},
	{name: "STATE", action: stateWord},

	{name: "CREATE", action: create},
	{name: "VARIABLE", action: variable},
	{name: "CONSTANT", action: constant},
	{name: "VALUE", action: value},
	{name: "TO", action: to},
	{name: ":", action: colon},
	{name: ";", immediate: true, action: semicolon},
	{name: "IMMEDIATE", action: immediateWord},
	{name: "'", action: tick},
	{name: "FIND", action: findWord},
	{name: "EXECUTE", action: execute},

	{name: "EXIT", action: exitWord},
	{name: "ABORT", action: abortWord},
	{name: "QUIT", action: quitWord},
	{name: "BYE", action: bye},
	{name: "TRUE", action: trueWord},
	{name: "FALSE", action: falseWord},
	{name: "WORDS", action: wordsPrim},
	{name: "SEE", action: see},
	{name: "DUMP", action: dumpWord},
}
