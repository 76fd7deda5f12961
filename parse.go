package forth83

import (
	"github.com/go-forth/forth83/internal/runeio"
)

// inputUsableLen is the usable source length per interpret() call: the
// input buffer holds up to inputUsableLen characters of source, a trailing
// separator space, and is otherwise padded with ASCII 32.
const inputUsableLen = inputBufSize - 2

// setInputLine truncates line to inputUsableLen characters, appends a
// single trailing separator space (byte 255 of the buffer), pads any
// remaining unused bytes among the usable range with ASCII 32, zeroes the
// buffer's final reserved byte, sets the char count to the effective
// length (line length plus the trailing space), and resets >IN to 0.
func (vm *VM) setInputLine(line string) error {
	if len(line) > inputUsableLen {
		line = line[:inputUsableLen]
	}
	buf := make([]byte, inputBufSize)
	for i := 0; i < inputBufSize-1; i++ {
		buf[i] = ' '
	}
	copy(buf, line)

	if err := vm.mem.storeBytes(inputBufAddr, buf); err != nil {
		return err
	}
	if err := vm.setInCount(uint(len(line) + 1)); err != nil {
		return err
	}
	return vm.setToIn(0)
}

// parseName skips leading spaces then returns the next space-delimited
// token from the input buffer, advancing >IN past it. ok is false once the
// buffer is exhausted.
func (vm *VM) parseName() (name string, ok bool, err error) {
	in, err := vm.toIn()
	if err != nil {
		return "", false, err
	}
	count, err := vm.inCount()
	if err != nil {
		return "", false, err
	}
	buf, err := vm.mem.fetchBytes(inputBufAddr, count)
	if err != nil {
		return "", false, err
	}

	i := int(in)
	for i < len(buf) && buf[i] == ' ' {
		i++
	}
	start := i
	for i < len(buf) && buf[i] != ' ' {
		i++
	}
	if start == i {
		return "", false, vm.setToIn(uint(i))
	}
	name = string(buf[start:i])
	return name, true, vm.setToIn(uint(i))
}

// parseDelim returns everything up to (not including) the next occurrence
// of delim, or the rest of the buffer if delim does not appear again. Used
// by the PARSE, WORD and S" primitives.
func (vm *VM) parseDelim(delim byte) (text string, err error) {
	in, err := vm.toIn()
	if err != nil {
		return "", err
	}
	count, err := vm.inCount()
	if err != nil {
		return "", err
	}
	buf, err := vm.mem.fetchBytes(inputBufAddr, count)
	if err != nil {
		return "", err
	}

	i := int(in)
	if i < len(buf) && buf[i] == delim {
		i++ // skip exactly one leading delimiter, e.g. the space after WORD
	}
	start := i
	for i < len(buf) && buf[i] != delim {
		i++
	}
	text = string(buf[start:i])
	if i < len(buf) {
		i++ // consume the trailing delimiter
	}
	return text, vm.setToIn(uint(i))
}

// parseNumber implements >NUMBER's signed-decimal-integer accumulator: an
// optional leading +/-, then digits accumulated as res += (c-'0')*10^(len-
// position). Any non-digit character, or an empty digit run, is a parse
// failure — unlike strconv.ParseFloat, tokens such as "3.5", "1e3", or
// "0x1p0" do not parse as numbers here, matching the outer loop's "not
// fully consumed -> ABORT with ?" contract.
func parseNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	neg := false
	i := 0
	switch s[0] {
	case '-':
		neg = true
		i++
	case '+':
		i++
	}
	if i == len(s) {
		return 0, false
	}
	var res float64
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		res = res*10 + float64(c-'0')
	}
	if neg {
		res = -res
	}
	return res, true
}

// parseRuneLiteral recognizes the supplemental rune-literal syntax, grounded
// on the teacher's runeio.UnquoteRune: a Go-style 'x' quoted literal, a
// "<NAME>" control mnemonic (e.g. "<ESC>"), or a caret form ("^C"), with no
// embedded spaces since PARSE-NAME already cut the token on whitespace.
func parseRuneLiteral(tok string) (r rune, ok bool) {
	val, err := runeio.UnquoteRune(tok)
	if err != nil {
		return 0, false
	}
	return val, true
}
