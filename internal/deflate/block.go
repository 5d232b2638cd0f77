package deflate

// DecodeBlock decodes a single Huffman-coded block (fixed or dynamic —
// the caller supplies whichever pair of tables applies) and appends its
// output to out, returning the grown slice.
//
// windowSize bounds how far back a length/distance pair may reach, per the
// zlib header's declared window; maxOutput, if nonzero, bounds the total
// size out may grow to, used by DecompressInto to enforce a caller-supplied
// destination capacity.
func DecodeBlock(br *BitReader, litTable, distTable *Table, out []byte, windowSize, maxOutput int) ([]byte, error) {
	for {
		sym, err := DecodeSymbol(br, litTable)
		if err != nil {
			return out, err
		}

		switch {
		case sym < endOfBlock:
			if maxOutput != 0 && len(out) >= maxOutput {
				return out, withSite(ErrOutputOverflow, "huffman block: literal exceeds destination capacity")
			}
			out = append(out, byte(sym))

		case sym == endOfBlock:
			return out, nil

		case sym <= 285:
			length, err := matchLength(br, sym)
			if err != nil {
				return out, err
			}
			distance, err := decodeDistance(br, distTable)
			if err != nil {
				return out, err
			}

			if distance <= 0 || distance > len(out) {
				return out, withSite(ErrBadDistance, "huffman block: distance precedes start of output")
			}
			if windowSize > 0 && distance > windowSize {
				return out, withSite(ErrBadDistance, "huffman block: distance exceeds window size")
			}
			if maxOutput != 0 && len(out)+length > maxOutput {
				return out, withSite(ErrOutputOverflow, "huffman block: match exceeds destination capacity")
			}

			// Copy byte-by-byte rather than via copy(): source and
			// destination ranges can overlap when distance < length, and
			// each copied byte must become visible to subsequent reads
			// within the same match.
			start := len(out) - distance
			for i := 0; i < length; i++ {
				out = append(out, out[start+i])
			}

		default:
			return out, withSite(ErrInvalidSymbol, "huffman block: literal/length symbol out of range")
		}
	}
}

// matchLength resolves a length symbol (257-285) to an actual match length
// by adding the base value for the symbol to its extra bits, per RFC 1951
// §3.2.5. Symbol 285 has a fixed length of 258 and no extra bits.
func matchLength(br *BitReader, sym uint16) (int, error) {
	idx := sym - 257
	if int(idx) >= len(lengthBase) {
		return 0, withSite(ErrInvalidSymbol, "huffman block: length symbol out of range")
	}
	extra, err := br.ReadBits(uint(lengthExtraBits[idx]))
	if err != nil {
		return 0, err
	}
	return int(lengthBase[idx]) + int(extra), nil
}

// decodeDistance reads a distance symbol from distTable and resolves it to
// an actual back-reference distance via its base value and extra bits.
func decodeDistance(br *BitReader, distTable *Table) (int, error) {
	sym, err := DecodeSymbol(br, distTable)
	if err != nil {
		return 0, err
	}
	if int(sym) >= len(distanceBase) {
		return 0, withSite(ErrBadDistance, "huffman block: distance symbol out of range")
	}
	extra, err := br.ReadBits(uint(distanceExtraBits[sym]))
	if err != nil {
		return 0, err
	}
	return int(distanceBase[sym]) + int(extra), nil
}
