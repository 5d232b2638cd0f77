package zlib

import "github.com/flatetools/zinflate/internal/deflate"

// The decoder surfaces a single error type and a fixed set of sentinel
// values, aliased from internal/deflate so callers can use errors.Is
// without depending on the internal package directly.
type DecodeError = deflate.DecodeError

var (
	ErrInvalidArgument             = deflate.ErrInvalidArgument
	ErrTruncatedInput              = deflate.ErrTruncatedInput
	ErrUnsupportedMethod           = deflate.ErrUnsupportedMethod
	ErrUnsupportedWindowSize       = deflate.ErrUnsupportedWindowSize
	ErrUnsupportedPresetDictionary = deflate.ErrUnsupportedPresetDictionary
	ErrReservedBlockType           = deflate.ErrReservedBlockType
	ErrBlockSizeMismatch           = deflate.ErrBlockSizeMismatch
	ErrOverSubscribed              = deflate.ErrOverSubscribed
	ErrMissingEndOfBlock           = deflate.ErrMissingEndOfBlock
	ErrInvalidSymbol               = deflate.ErrInvalidSymbol
	ErrBadDistance                 = deflate.ErrBadDistance
	ErrOutputOverflow              = deflate.ErrOutputOverflow
	ErrChecksumMismatch            = deflate.ErrChecksumMismatch
	ErrHeaderCheckFailed           = deflate.ErrHeaderCheckFailed
)

func withSite(sentinel *deflate.DecodeError, site string) error {
	return deflate.WithSite(sentinel, site)
}
