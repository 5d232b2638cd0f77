package deflate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCodeLengthsExpandsRepeatCodes(t *testing.T) {
	// A two-symbol code-length alphabet table: symbol 0 (literal length 0)
	// and symbol 17 (repeat zero, 3 extra bits, count 3-10), both one bit.
	clLengths := make([]uint16, maxCodeLenSymbols)
	clLengths[0] = 1
	clLengths[17] = 1
	clTable, err := BuildTable(clLengths, true)
	require.NoError(t, err)

	var b bitstreamBuilder
	code, length := canonicalCode(clLengths, 17)
	b.huffmanCode(code, length)
	b.valueBits(2, 3) // extra=2 -> count 5

	out, err := readCodeLengths(b.reader(), clTable, 5)
	require.NoError(t, err)
	assert.Equal(t, []uint16{0, 0, 0, 0, 0}, out)
}

func TestReadCodeLengthsRejectsRepeatPastEnd(t *testing.T) {
	clLengths := make([]uint16, maxCodeLenSymbols)
	clLengths[17] = 1
	clLengths[0] = 1
	clTable, err := BuildTable(clLengths, true)
	require.NoError(t, err)

	var b bitstreamBuilder
	code, length := canonicalCode(clLengths, 17)
	b.huffmanCode(code, length)
	b.valueBits(7, 3) // extra=7 -> count 10, but total is only 4

	_, err = readCodeLengths(b.reader(), clTable, 4)
	assert.ErrorIs(t, err, ErrBlockSizeMismatch)
}

func TestReadCodeLengthsRejectsLeadingRepeatPrevious(t *testing.T) {
	clLengths := make([]uint16, maxCodeLenSymbols)
	clLengths[16] = 1
	clLengths[0] = 1
	clTable, err := BuildTable(clLengths, true)
	require.NoError(t, err)

	var b bitstreamBuilder
	code, length := canonicalCode(clLengths, 16)
	b.huffmanCode(code, length)
	b.valueBits(0, 2)

	_, err = readCodeLengths(b.reader(), clTable, 3)
	assert.ErrorIs(t, err, ErrInvalidSymbol)
}

// TestReadDynamicTablesEndToEnd hand-assembles a complete dynamic block
// header: HLIT/HDIST/HCLEN, the code-length alphabet's own lengths in
// transmission order, and a code-length-alphabet-encoded description of a
// literal/length table with exactly two used symbols ('a' and end-of-block)
// and a single-distance distance table.
func TestReadDynamicTablesEndToEnd(t *testing.T) {
	const numLitLen = 257 // HLIT = 0
	const numDist = 1     // HDIST = 0

	clLengths := make([]uint16, maxCodeLenSymbols)
	clLengths[18] = 1
	clLengths[0] = 2
	clLengths[1] = 3
	clLengths[17] = 3
	_, err := BuildTable(clLengths, true) // validates clLengths forms a legal code before use below
	require.NoError(t, err)

	usedSymbols := []int{16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15}
	maxIdx := 0
	for i, sym := range usedSymbols {
		if clLengths[sym] != 0 {
			maxIdx = i
		}
	}
	numCodeLen := maxIdx + 1
	if numCodeLen < 4 {
		numCodeLen = 4
	}
	hclen := numCodeLen - 4

	var b bitstreamBuilder
	b.valueBits(0, 5)               // HLIT
	b.valueBits(0, 5)               // HDIST
	b.valueBits(uint32(hclen), 4)   // HCLEN
	for i := 0; i < numCodeLen; i++ {
		b.valueBits(uint32(clLengths[codeLengthOrder[i]]), 3)
	}

	emitSym := func(sym int) {
		code, length := canonicalCode(clLengths, sym)
		b.huffmanCode(code, length)
	}

	emitSym(18)
	b.valueBits(97-11, 7) // 97 zeros, positions 0..96

	emitSym(1) // position 97: 'a', length 1

	emitSym(18)
	b.valueBits(138-11, 7) // 138 zeros
	emitSym(18)
	b.valueBits(20-11, 7) // 20 zeros -> positions 98..255 covered (158 total)

	emitSym(1) // position 256: end-of-block, length 1
	emitSym(1) // position 257 (distance table): symbol 0, length 1

	litTable, distTable, err := ReadDynamicTables(b.reader())
	require.NoError(t, err)

	// litTable must decode 'a' given its only code ('0') and the
	// end-of-block symbol given the other ('1'); distTable's only
	// distance symbol also decodes from a single bit.
	litLengths := make([]uint16, numLitLen)
	litLengths['a'] = 1
	litLengths[endOfBlock] = 1
	codeA2, lenA2 := canonicalCode(litLengths, 'a')
	codeEOB, lenEOB := canonicalCode(litLengths, endOfBlock)

	var lb bitstreamBuilder
	lb.huffmanCode(codeA2, lenA2)
	got, err := DecodeSymbol(lb.reader(), litTable)
	require.NoError(t, err)
	assert.Equal(t, uint16('a'), got)

	var eb bitstreamBuilder
	eb.huffmanCode(codeEOB, lenEOB)
	got, err = DecodeSymbol(eb.reader(), litTable)
	require.NoError(t, err)
	assert.Equal(t, uint16(endOfBlock), got)

	distLengths := []uint16{1}
	distCode, distLen := canonicalCode(distLengths, 0)
	var db bitstreamBuilder
	db.huffmanCode(distCode, distLen)
	got, err = DecodeSymbol(db.reader(), distTable)
	require.NoError(t, err)
	assert.Equal(t, uint16(0), got)
}
