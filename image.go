package forth83

import (
	"encoding/binary"
	"math"

	"github.com/go-forth/forth83/internal/mem"
)

// image is the flat, fixed-size byte-addressable memory that backs a VM.
// Unlike the teacher's growable paged memCore, the image never grows: its
// size is fixed by the layout (MemorySize), so plain bounds checking
// (internal/mem.Bounds) replaces the teacher's page-allocation machinery.
type image struct {
	bytes  []byte
	bounds mem.Bounds
}

func newImage() *image {
	return &image{
		bytes:  make([]byte, MemorySize),
		bounds: mem.Bounds{Size: MemorySize},
	}
}

// fetchCell reads the float64 cell at addr.
func (im *image) fetchCell(addr uint) (float64, error) {
	if err := im.bounds.CheckCell(addr, "fetch"); err != nil {
		return 0, translateMemError(err)
	}
	bits := binary.LittleEndian.Uint64(im.bytes[addr : addr+cellSize])
	return math.Float64frombits(bits), nil
}

// storeCell writes val as the float64 cell at addr.
//
// addr == latestAddr (the dictionary-head register) is guarded: it may only
// ever hold zero or a value within the dictionary-space region
// [dspStartAddr, MemorySize), matching the invariant that the latest-NFA
// register always names a real header or is empty.
func (im *image) storeCell(addr uint, val float64) error {
	if err := im.bounds.CheckCell(addr, "store"); err != nil {
		return translateMemError(err)
	}
	if addr == latestAddr && val != 0 && (val < dspStartAddr || val >= MemorySize) {
		return errDictCorruption{val}
	}
	bits := math.Float64bits(val)
	binary.LittleEndian.PutUint64(im.bytes[addr:addr+cellSize], bits)
	return nil
}

// fetchByte reads the byte at addr.
func (im *image) fetchByte(addr uint) (byte, error) {
	if err := im.bounds.CheckByte(addr, "fetch"); err != nil {
		return 0, translateMemError(err)
	}
	return im.bytes[addr], nil
}

// storeByte writes b at addr.
func (im *image) storeByte(addr uint, b byte) error {
	if err := im.bounds.CheckByte(addr, "store"); err != nil {
		return translateMemError(err)
	}
	im.bytes[addr] = b
	return nil
}

// fetchBytes copies n bytes starting at addr.
func (im *image) fetchBytes(addr, n uint) ([]byte, error) {
	if err := im.bounds.CheckBytes(addr, n, "fetch"); err != nil {
		return nil, translateMemError(err)
	}
	out := make([]byte, n)
	copy(out, im.bytes[addr:addr+n])
	return out, nil
}

// storeBytes writes buf starting at addr.
func (im *image) storeBytes(addr uint, buf []byte) error {
	if err := im.bounds.CheckBytes(addr, uint(len(buf)), "store"); err != nil {
		return translateMemError(err)
	}
	copy(im.bytes[addr:addr+uint(len(buf))], buf)
	return nil
}

func translateMemError(err error) error {
	switch e := err.(type) {
	case mem.AlignmentError:
		return errAlignment{uint(e)}
	case mem.LimitError:
		return errOutOfBounds{e.Addr, e.Op}
	default:
		return err
	}
}
