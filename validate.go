package perfcopy

import "fmt"

// validate checks a proposed transfer before any data movement. Checks
// run cheapest first; the first failure wins and nothing is partially
// validated.
func validate[T Element](src []T, srcOff int, dst []T, dstOff, count int) error {
	if src == nil {
		return fmt.Errorf("%w: src", ErrNilBuffer)
	}
	if dst == nil {
		return fmt.Errorf("%w: dst", ErrNilBuffer)
	}
	if count < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCount, count)
	}
	if srcOff < 0 {
		return fmt.Errorf("%w: srcOff %d", ErrNegativeOffset, srcOff)
	}
	if dstOff < 0 {
		return fmt.Errorf("%w: dstOff %d", ErrNegativeOffset, dstOff)
	}
	if err := checkRange("src", srcOff, count, len(src)); err != nil {
		return err
	}
	return checkRange("dst", dstOff, count, len(dst))
}

// validateWhole is the fast path for whole-buffer copies: offsets are
// zero and count equals len(src), so the offset arithmetic is already
// satisfied on the source side and only the destination length can
// still fail.
func validateWhole[T Element](src, dst []T) error {
	if src == nil {
		return fmt.Errorf("%w: src", ErrNilBuffer)
	}
	if dst == nil {
		return fmt.Errorf("%w: dst", ErrNilBuffer)
	}
	if len(dst) < len(src) {
		return fmt.Errorf("%w: count %d exceeds dst buffer length %d", ErrRangeExceeded, len(src), len(dst))
	}
	return nil
}

// checkRange reports why off+count does not fit in a buffer of length
// n, distinguishing an offset already past the end, a count larger than
// the whole buffer, and insufficient remaining room. The comparisons
// avoid computing off+count so they cannot overflow.
func checkRange(name string, off, count, n int) error {
	if count <= n && off <= n-count {
		return nil
	}
	switch {
	case off >= n:
		return fmt.Errorf("%w: %s offset %d is past buffer end (length %d)", ErrRangeExceeded, name, off, n)
	case count > n:
		return fmt.Errorf("%w: count %d exceeds %s buffer length %d", ErrRangeExceeded, count, name, n)
	default:
		return fmt.Errorf("%w: %s offset %d leaves room for %d elements, need %d", ErrRangeExceeded, name, off, n-off, count)
	}
}
