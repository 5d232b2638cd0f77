package deflate

// RFC 1951 §3.2.5 length code base values and extra-bit counts, indexed by
// (symbol - 257).
var lengthBase = [29]uint16{
	3, 4, 5, 6, 7, 8, 9, 10, 11, 13,
	15, 17, 19, 23, 27, 31, 35, 43, 51, 59,
	67, 83, 99, 115, 131, 163, 195, 227, 258,
}

var lengthExtraBits = [29]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1,
	1, 1, 2, 2, 2, 2, 3, 3, 3, 3,
	4, 4, 4, 4, 5, 5, 5, 5, 0,
}

// RFC 1951 §3.2.5 distance code base values and extra-bit counts, indexed
// by distance symbol (0..29).
var distanceBase = [30]uint16{
	1, 2, 3, 4, 5, 7, 9, 13, 17, 25,
	33, 49, 65, 97, 129, 193, 257, 385, 513, 769,
	1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289, 16385, 24577,
}

var distanceExtraBits = [30]uint8{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3,
	4, 4, 5, 5, 6, 6, 7, 7, 8, 8,
	9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
}

// codeLengthOrder is the RFC 1951 §3.2.7 permutation mapping the order the
// HCLEN code-length codes are transmitted in to the code-length alphabet
// symbol they describe.
var codeLengthOrder = [19]uint8{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5,
	11, 4, 12, 3, 13, 2, 14, 1, 15,
}

const (
	endOfBlock = 256

	maxLitLenSymbols  = 288
	maxDistSymbols    = 30
	maxCodeLenSymbols = 19

	// maxDynamicLitLenSymbols is the bound a dynamic block's HLIT count is
	// validated against: symbols 286 and 287 are reserved and never
	// actually used by a conforming encoder, so HLIT+257 may not exceed
	// 286 even though maxLitLenSymbols sizes the table's length vector.
	maxDynamicLitLenSymbols = 286

	maxCodeBits = 15

	maxMatchLength = 258
	minMatchLength = 3

	maxWindowSize = 32768
)
