package deflate

// Fixed Huffman tables (RFC 1951 §3.2.6) are the same for every stream that
// uses a fixed block, so they are built once at package initialization and
// reused read-only across every decode; concurrent decodes never write to
// them, so no locking is needed.
var fixedLiteralTable, fixedDistanceTable = buildFixedTables()

// FixedTables returns the shared, read-only fixed literal/length and
// distance tables.
func FixedTables() (*Table, *Table) {
	return fixedLiteralTable, fixedDistanceTable
}

func buildFixedTables() (*Table, *Table) {
	litLengths := make([]uint16, maxLitLenSymbols)
	for i := 0; i <= 143; i++ {
		litLengths[i] = 8
	}
	for i := 144; i <= 255; i++ {
		litLengths[i] = 9
	}
	for i := 256; i <= 279; i++ {
		litLengths[i] = 7
	}
	for i := 280; i <= 287; i++ {
		litLengths[i] = 8
	}

	distLengths := make([]uint16, maxDistSymbols)
	for i := range distLengths {
		distLengths[i] = 5
	}

	lit, err := BuildTable(litLengths, false)
	if err != nil {
		panic("deflate: fixed literal table is malformed: " + err.Error())
	}
	// RFC 1951 §3.2.6's fixed distance table is the classic incomplete
	// canonical code: 30 symbols of length 5 (Kraft sum 30/32 < 1), codes
	// 30-31 deliberately unused. zlib's own reference decoders (puff.c,
	// inftrees.c) never reject this table, so it is built with the
	// incomplete-tree allowance rather than the standard completeness
	// check used for every other table.
	dist, err := BuildTable(distLengths, true)
	if err != nil {
		panic("deflate: fixed distance table is malformed: " + err.Error())
	}

	return lit, dist
}
