package deflate

import "github.com/pkg/errors"

// Kind discriminates the category of a decode failure. It is the single
// error discriminant the decoder needs; callers that want more than the
// discriminant can inspect the wrapped site label via Error() or unwrap the
// cause via errors.Unwrap.
type Kind int

const (
	KindInvalidArgument Kind = iota
	KindTruncatedInput
	KindUnsupportedMethod
	KindUnsupportedWindowSize
	KindUnsupportedPresetDictionary
	KindReservedBlockType
	KindBlockSizeMismatch
	KindOverSubscribed
	KindMissingEndOfBlock
	KindInvalidSymbol
	KindBadDistance
	KindOutputOverflow
	KindChecksumMismatch
	KindHeaderCheckFailed
)

var kindNames = map[Kind]string{
	KindInvalidArgument:             "invalid argument",
	KindTruncatedInput:              "truncated input",
	KindUnsupportedMethod:           "unsupported method",
	KindUnsupportedWindowSize:       "unsupported window size",
	KindUnsupportedPresetDictionary: "unsupported preset dictionary",
	KindReservedBlockType:           "reserved block type",
	KindBlockSizeMismatch:           "block size mismatch",
	KindOverSubscribed:              "oversubscribed huffman table",
	KindMissingEndOfBlock:           "missing end-of-block code",
	KindInvalidSymbol:               "invalid symbol",
	KindBadDistance:                 "bad back-reference distance",
	KindOutputOverflow:              "output overflow",
	KindChecksumMismatch:            "checksum mismatch",
	KindHeaderCheckFailed:           "header check failed",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown error"
}

// sentinel errors, one per Kind, so callers can use errors.Is against a
// stable value regardless of the site label a particular failure carries.
var (
	ErrInvalidArgument            = &DecodeError{Kind: KindInvalidArgument}
	ErrTruncatedInput             = &DecodeError{Kind: KindTruncatedInput}
	ErrUnsupportedMethod          = &DecodeError{Kind: KindUnsupportedMethod}
	ErrUnsupportedWindowSize      = &DecodeError{Kind: KindUnsupportedWindowSize}
	ErrUnsupportedPresetDictionary = &DecodeError{Kind: KindUnsupportedPresetDictionary}
	ErrReservedBlockType          = &DecodeError{Kind: KindReservedBlockType}
	ErrBlockSizeMismatch          = &DecodeError{Kind: KindBlockSizeMismatch}
	ErrOverSubscribed             = &DecodeError{Kind: KindOverSubscribed}
	ErrMissingEndOfBlock          = &DecodeError{Kind: KindMissingEndOfBlock}
	ErrInvalidSymbol              = &DecodeError{Kind: KindInvalidSymbol}
	ErrBadDistance                = &DecodeError{Kind: KindBadDistance}
	ErrOutputOverflow             = &DecodeError{Kind: KindOutputOverflow}
	ErrChecksumMismatch           = &DecodeError{Kind: KindChecksumMismatch}
	ErrHeaderCheckFailed          = &DecodeError{Kind: KindHeaderCheckFailed}
)

// DecodeError is the error type returned by every failing decode call. It
// carries a Kind discriminant plus an optional site label identifying which
// component raised it, and supports errors.Is against the package's
// sentinel values and errors.Unwrap to reach a wrapped cause.
type DecodeError struct {
	Kind Kind
	Site string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Site == "" {
		return "zinflate: " + e.Kind.String()
	}
	return "zinflate: " + e.Kind.String() + ": " + e.Site
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a *DecodeError with the same Kind, so a
// wrapped, site-labeled error still matches the bare sentinel for the same
// Kind under errors.Is.
func (e *DecodeError) Is(target error) bool {
	t, ok := target.(*DecodeError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// withSite returns a new *DecodeError of the same Kind as sentinel,
// annotated with a site label identifying the raising component, wrapped
// with github.com/pkg/errors so a stack trace is attached for debugging.
func withSite(sentinel *DecodeError, site string) error {
	return errors.WithStack(&DecodeError{Kind: sentinel.Kind, Site: site})
}

// WithSite is the exported form of withSite, used by package zlib to raise
// errors with the same site-labeling convention at the container level.
func WithSite(sentinel *DecodeError, site string) error {
	return withSite(sentinel, site)
}
