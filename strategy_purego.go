//go:build purego || !(386 || amd64 || arm64 || ppc64 || ppc64le || s390x || wasm)

package perfcopy

import "encoding/binary"

// copyRange dispatches by transfer size in bytes. Without raw memory
// access the element loop covers everything below blockCopyMin and the
// runtime block move takes the rest. Bounds are the caller's
// responsibility.
func copyRange[T Element](src []T, srcOff int, dst []T, dstOff, count int) {
	if count == 0 {
		return
	}
	var zero T
	if count*binary.Size(zero) < blockCopyMin {
		copyForward(src, srcOff, dst, dstOff, count)
		return
	}
	copy(dst[dstOff:dstOff+count], src[srcOff:srcOff+count])
}
