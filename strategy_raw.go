//go:build !purego && (386 || amd64 || arm64 || ppc64 || ppc64le || s390x || wasm)

package perfcopy

import (
	"unsafe"

	"github.com/xorxornop/PerfCopy/internal/memops"
)

// copyRange dispatches by transfer size in bytes. With raw access
// available the ladder has two rungs: tiny transfers run the element
// loop, everything at or above rawCopyMin goes through the word-aligned
// copier. Bounds are the caller's responsibility.
func copyRange[T Element](src []T, srcOff int, dst []T, dstOff, count int) {
	if count == 0 {
		return
	}
	elemSize := unsafe.Sizeof(*new(T))
	length := count * int(elemSize)
	if length < rawCopyMin {
		copyForward(src, srcOff, dst, dstOff, count)
		return
	}
	sp := unsafe.Add(unsafe.Pointer(unsafe.SliceData(src)), uintptr(srcOff)*elemSize)
	dp := unsafe.Add(unsafe.Pointer(unsafe.SliceData(dst)), uintptr(dstOff)*elemSize)
	memops.Copy(dp, sp, length)
}
