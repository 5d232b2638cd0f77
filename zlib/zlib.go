// Package zlib decodes the zlib data format defined in RFC 1950, a thin
// wrapper (a two-byte header, a trailing Adler-32 checksum) around the raw
// DEFLATE bitstream decoded by internal/deflate.
package zlib

import (
	"encoding/binary"

	"github.com/flatetools/zinflate/internal/adler32"
	"github.com/flatetools/zinflate/internal/deflate"
)

const (
	deflateMethod = 8
	minCINFO      = 0
	maxCINFO      = 7
)

// Decompress decodes a complete zlib stream and returns its uncompressed
// contents. The returned slice is freshly allocated and grows as needed;
// callers with a known destination size and a hard memory ceiling should
// use DecompressInto instead.
func Decompress(compressed []byte) ([]byte, error) {
	return decompress(compressed, nil, 0)
}

// DecompressInto decodes compressed into dst, returning the number of bytes
// written. It never grows dst past its existing capacity: a stream whose
// decoded size would exceed len(dst) fails with ErrOutputOverflow rather
// than reallocating.
func DecompressInto(compressed []byte, dst []byte) (int, error) {
	out, err := decompress(compressed, dst[:0], len(dst))
	if len(dst) == 0 && len(out) > 0 {
		// A maxOutput of 0 means unbounded, so an empty dst is checked here.
		return 0, withSite(deflate.ErrOutputOverflow, "zlib: output exceeds empty destination")
	}
	return len(out), err
}

func decompress(compressed []byte, dst []byte, maxOutput int) ([]byte, error) {
	if len(compressed) < 6 {
		return dst, withSite(deflate.ErrTruncatedInput, "zlib: stream shorter than header+trailer")
	}

	windowSize, err := parseHeader(compressed[:2])
	if err != nil {
		return dst, err
	}

	br := deflate.NewBitReader(compressed[2:])
	out := dst

	for {
		bfinal, err := br.ReadBits(1)
		if err != nil {
			return out, err
		}
		btype, err := br.ReadBits(2)
		if err != nil {
			return out, err
		}

		switch btype {
		case 0:
			out, err = decodeStoredBlock(br, out, maxOutput)
		case 1:
			out, err = decodeFixedBlock(br, out, windowSize, maxOutput)
		case 2:
			out, err = decodeDynamicBlock(br, out, windowSize, maxOutput)
		default:
			err = withSite(deflate.ErrReservedBlockType, "zlib: reserved BTYPE 3")
		}
		if err != nil {
			return out, err
		}

		if bfinal == 1 {
			break
		}
	}

	br.AlignToByte()
	var trailer [4]byte
	if n, err := br.ReadRawBytes(trailer[:]); err != nil || n != 4 {
		if err == nil {
			err = withSite(deflate.ErrTruncatedInput, "zlib: short adler-32 trailer")
		}
		return out, err
	}

	want := binary.BigEndian.Uint32(trailer[:])
	got := adler32.Checksum(out)
	if want != got {
		return out, withSite(deflate.ErrChecksumMismatch, "zlib: adler-32 mismatch")
	}

	return out, nil
}

// parseHeader validates the two-byte zlib header per RFC 1950 §2.2 and
// returns the declared LZ77 window size in bytes.
func parseHeader(header []byte) (int, error) {
	cmf, flg := header[0], header[1]

	if (uint16(cmf)<<8|uint16(flg))%31 != 0 {
		return 0, withSite(deflate.ErrHeaderCheckFailed, "zlib: FCHECK validation failed")
	}

	cm := cmf & 0x0f
	if cm != deflateMethod {
		return 0, withSite(deflate.ErrUnsupportedMethod, "zlib: CM is not 8 (deflate)")
	}

	cinfo := cmf >> 4
	if cinfo < minCINFO || cinfo > maxCINFO {
		return 0, withSite(deflate.ErrUnsupportedWindowSize, "zlib: CINFO exceeds 32K window")
	}

	fdict := (flg >> 5) & 0x1
	if fdict == 1 {
		return 0, withSite(deflate.ErrUnsupportedPresetDictionary, "zlib: FDICT set, preset dictionaries unsupported")
	}

	return 1 << (uint(cinfo) + 8), nil
}

// decodeStoredBlock copies a literal, uncompressed block (BTYPE 00) per
// RFC 1951 §3.2.4: after aligning to a byte boundary, a 16-bit LEN and its
// one's-complement NLEN, followed by LEN raw bytes.
func decodeStoredBlock(br *deflate.BitReader, out []byte, maxOutput int) ([]byte, error) {
	br.AlignToByte()

	lenLo, err := br.ReadByte()
	if err != nil {
		return out, err
	}
	lenHi, err := br.ReadByte()
	if err != nil {
		return out, err
	}
	nlenLo, err := br.ReadByte()
	if err != nil {
		return out, err
	}
	nlenHi, err := br.ReadByte()
	if err != nil {
		return out, err
	}

	length := int(lenLo) | int(lenHi)<<8
	nlength := int(nlenLo) | int(nlenHi)<<8
	if length != nlength^0xffff {
		return out, withSite(deflate.ErrBlockSizeMismatch, "zlib: stored block LEN/NLEN mismatch")
	}

	if maxOutput != 0 && len(out)+length > maxOutput {
		return out, withSite(deflate.ErrOutputOverflow, "zlib: stored block exceeds destination capacity")
	}

	start := len(out)
	out = append(out, make([]byte, length)...)
	if _, err := br.ReadRawBytes(out[start:]); err != nil {
		return out[:start], err
	}
	return out, nil
}

func decodeFixedBlock(br *deflate.BitReader, out []byte, windowSize, maxOutput int) ([]byte, error) {
	litTable, distTable := deflate.FixedTables()
	return deflate.DecodeBlock(br, litTable, distTable, out, windowSize, maxOutput)
}

func decodeDynamicBlock(br *deflate.BitReader, out []byte, windowSize, maxOutput int) ([]byte, error) {
	litTable, distTable, err := deflate.ReadDynamicTables(br)
	if err != nil {
		return out, err
	}
	return deflate.DecodeBlock(br, litTable, distTable, out, windowSize, maxOutput)
}
