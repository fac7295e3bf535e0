package perfcopy

import "errors"

var (
	ErrNilBuffer      = errors.New("perfcopy: nil buffer")
	ErrNegativeCount  = errors.New("perfcopy: negative element count")
	ErrNegativeOffset = errors.New("perfcopy: negative offset")
	ErrRangeExceeded  = errors.New("perfcopy: copy range exceeds buffer length")
)

// Element is the set of fixed-width scalar types the copy operations
// accept. byte and rune instantiate through their underlying types, as
// do named integer types.
type Element interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

// Duplicate returns a newly allocated copy of src. A nil src yields
// nil; an empty non-nil src yields an empty non-nil buffer. The result
// shares no storage with src.
func Duplicate[T Element](src []T) []T {
	if src == nil {
		return nil
	}
	dst := make([]T, len(src))
	copyRange(src, 0, dst, 0, len(src))
	return dst
}

// Copy copies every element of src into the front of dst. dst may be
// longer than src; a shorter dst fails with ErrRangeExceeded and no
// bytes are moved.
func Copy[T Element](src, dst []T) error {
	if err := validateWhole(src, dst); err != nil {
		return err
	}
	copyRange(src, 0, dst, 0, len(src))
	return nil
}

// CopyRange copies count elements from src[srcOff:] into dst[dstOff:].
// Arguments are validated first; on failure zero bytes are moved and
// the error wraps one of the package sentinels. Elements of dst outside
// [dstOff, dstOff+count) are left untouched.
func CopyRange[T Element](src []T, srcOff int, dst []T, dstOff, count int) error {
	if err := validate(src, srcOff, dst, dstOff, count); err != nil {
		return err
	}
	copyRange(src, srcOff, dst, dstOff, count)
	return nil
}

// CopyRangeUnchecked is CopyRange without any argument validation.
// Invalid arguments are undefined behaviour: depending on the build the
// call may panic or read and write memory outside the buffers. Callers
// must have established the CopyRange invariants upstream; the typical
// use is a loop issuing many same-shaped transfers that were validated
// once before the loop.
func CopyRangeUnchecked[T Element](src []T, srcOff int, dst []T, dstOff, count int) {
	copyRange(src, srcOff, dst, dstOff, count)
}
