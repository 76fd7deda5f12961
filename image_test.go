package forth83

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageCellRoundTrip(t *testing.T) {
	im := newImage()
	require.NoError(t, im.storeCell(dspStartAddr, 3.25))
	got, err := im.fetchCell(dspStartAddr)
	require.NoError(t, err)
	assert.Equal(t, 3.25, got)
}

func TestImageCellMisaligned(t *testing.T) {
	im := newImage()
	_, err := im.fetchCell(dspStartAddr + 1)
	assert.Error(t, err, "expected an alignment error")
}

func TestImageByteRoundTrip(t *testing.T) {
	im := newImage()
	require.NoError(t, im.storeByte(dspStartAddr, 0x7f))
	got, err := im.fetchByte(dspStartAddr)
	require.NoError(t, err)
	assert.Equal(t, byte(0x7f), got)
}

func TestImageBytesRoundTrip(t *testing.T) {
	im := newImage()
	want := []byte("hello")
	require.NoError(t, im.storeBytes(dspStartAddr, want))
	got, err := im.fetchBytes(dspStartAddr, uint(len(want)))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestImageOutOfBounds(t *testing.T) {
	im := newImage()
	_, err := im.fetchCell(MemorySize)
	assert.Error(t, err, "expected an out-of-bounds error")
	_, err = im.fetchByte(MemorySize + 10)
	assert.Error(t, err, "expected an out-of-bounds error")
}

// TestImageLatestAddrGuard exercises the dictionary-head register's write
// guard: it may only ever hold zero or an address within dictionary space.
func TestImageLatestAddrGuard(t *testing.T) {
	im := newImage()
	assert.NoError(t, im.storeCell(latestAddr, 0), "storing zero should be allowed")
	assert.NoError(t, im.storeCell(latestAddr, dspStartAddr), "storing a dictionary-space address should be allowed")
	assert.Error(t, im.storeCell(latestAddr, dataStackAddr), "expected dictionary corruption error for an out-of-range latestAddr write")
}
