package mem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-forth/forth83/internal/mem"
)

func TestBoundsCheckCell(t *testing.T) {
	b := mem.Bounds{Size: 64000}

	assert.NoError(t, b.CheckCell(376, "fetch"))
	assert.Error(t, b.CheckCell(377, "fetch"), "expected alignment error")
	assert.IsType(t, mem.AlignmentError(0), b.CheckCell(377, "fetch"))

	assert.Error(t, b.CheckCell(63998, "store"), "expected an out-of-bounds cell access to fail")
	assert.IsType(t, mem.LimitError{}, b.CheckCell(64000, "store"))
}

func TestBoundsCheckByte(t *testing.T) {
	b := mem.Bounds{Size: 10}

	assert.NoError(t, b.CheckByte(9, "fetch"))
	assert.Error(t, b.CheckByte(10, "fetch"))
}
