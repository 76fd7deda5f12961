package forth83

// Fixed layout of the memory image. Every address below is a byte offset
// into the 64000-byte image; cell-sized fields are 8-byte aligned.
const (
	// MemorySize is the total size, in bytes, of the memory image.
	MemorySize = 64000

	cellSize = 8

	// stateAddr holds the compiler state: 0 for interpret, nonzero for compile.
	stateAddr = 72
	// toInAddr holds the current parse offset into the input buffer.
	toInAddr = 80
	// inCountAddr holds the number of valid bytes in the input buffer.
	inCountAddr = 88
	// latestAddr holds the NFA of the most recently defined header, the
	// dictionary-head register. It may only be stored zero, or a value in
	// [dspStartAddr, MemorySize).
	latestAddr = 96

	inputBufAddr = 120
	inputBufSize = 256

	dataStackAddr  = 376
	dataStackCells = 32
	dataStackSize  = dataStackCells * cellSize // 256; ends at 632

	returnStackAddr  = 632
	returnStackCells = 1024
	returnStackSize  = returnStackCells * cellSize // 8192; ends at 8824

	podAddr  = 8824
	podCells = 90
	podSize  = podCells * cellSize // 720; ends at 9544

	parsedWordAddr = 9544
	parsedWordSize = 32

	// nativeXTBase is the numbering base for runtime ids (RIDs). RIDs occupy
	// [nativeXTBase, dspStartAddr) and are never backed by image bytes; they
	// only ever appear packed into an XT's low digits.
	nativeXTBase = 9800

	// dspStartAddr is where the dictionary-space pointer (HERE) begins.
	dspStartAddr = 10000
)
