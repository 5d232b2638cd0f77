package deflate

// Table is a canonical-Huffman lookup structure: per RFC 1951 §3.2.2, codes
// of the same length are assigned consecutively in symbol order, and
// shorter codes sort before longer ones. It holds only the per-length
// counts and a symbol list sorted by (length, symbol) — enough to run the
// length-indexed walk in DecodeSymbol.
type Table struct {
	counts  [maxCodeBits + 1]uint16
	symbols []uint16
	maxBits int
	empty   bool
}

// BuildTable constructs a canonical Huffman table from a per-symbol code
// length vector. allowIncomplete permits an incomplete tree (unused code
// space left over once every symbol has been assigned) rather than
// rejecting it as OverSubscribed: distance tables may legitimately be
// incomplete, whether because a stream uses only a single distance (a
// length-1 code with the other polarity unused) or because the fixed
// distance table itself (RFC 1951 §3.2.6: 30 symbols of length 5, Kraft
// sum 30/32 < 1) is incomplete by construction — zlib's own reference
// decoders (puff.c, inftrees.c) never reject either case. Literal/length
// tables must always be complete and pass allowIncomplete=false.
func BuildTable(lengths []uint16, allowIncomplete bool) (*Table, error) {
	t := &Table{}

	for _, l := range lengths {
		if l > maxCodeBits {
			return nil, withSite(ErrOverSubscribed, "huffman table: code length exceeds 15 bits")
		}
		t.counts[l]++
	}

	if int(t.counts[0]) == len(lengths) {
		t.empty = true
		return t, nil
	}

	left := 1
	for l := 1; l <= maxCodeBits; l++ {
		left = 2*left - int(t.counts[l])
		if left < 0 {
			return nil, withSite(ErrOverSubscribed, "huffman table: over-subscribed code lengths")
		}
	}
	if left > 0 && !allowIncomplete {
		return nil, withSite(ErrOverSubscribed, "huffman table: incomplete code lengths")
	}

	var offsets [maxCodeBits + 2]int
	for l := 1; l <= maxCodeBits; l++ {
		offsets[l+1] = offsets[l] + int(t.counts[l])
	}

	numCodes := offsets[maxCodeBits+1]
	t.symbols = make([]uint16, numCodes)
	cursor := offsets
	for sym, l := range lengths {
		if l == 0 {
			continue
		}
		t.symbols[cursor[l]] = uint16(sym)
		cursor[l]++
	}

	for l := maxCodeBits; l >= 1; l-- {
		if t.counts[l] > 0 {
			t.maxBits = l
			break
		}
	}

	return t, nil
}

// DecodeSymbol decodes one symbol from br using t, by the length-indexed
// walk: pull one bit at a time, and after each bit check whether the code
// assembled so far falls within the range of codes of the current length.
func DecodeSymbol(br *BitReader, t *Table) (uint16, error) {
	if t.empty {
		return 0, withSite(ErrInvalidSymbol, "huffman decode: empty table")
	}

	code, first, index := 0, 0, 0
	for l := 1; l <= t.maxBits; l++ {
		bit, err := br.ReadBit()
		if err != nil {
			return 0, err
		}
		code = (code << 1) | int(bit)

		c := int(t.counts[l])
		if code-c < first {
			idx := index + (code - first)
			if idx < 0 || idx >= len(t.symbols) {
				return 0, withSite(ErrInvalidSymbol, "huffman decode: symbol index out of range")
			}
			return t.symbols[idx], nil
		}
		first = (first + c) << 1
		index += c
	}
	return 0, withSite(ErrInvalidSymbol, "huffman decode: no matching code")
}
