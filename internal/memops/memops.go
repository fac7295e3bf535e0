//go:build !purego && (386 || amd64 || arm64 || ppc64 || ppc64le || s390x || wasm)

package memops

import "unsafe"

// WordSize is the native word width in bytes, fixed at compile time.
const WordSize = int(unsafe.Sizeof(uintptr(0)))

// Copy moves n bytes from src to dst using word-sized loads and stores.
// The main loop is unrolled two words deep; the tail is peeled in
// strictly descending chunk sizes (word, then 4 bytes on 64-bit hosts,
// then 2, then 1), each step consuming the largest remaining unit.
// Starting addresses are treated as opaque; the constrained target list
// guarantees unaligned word access is tolerated. src and dst must both
// cover n bytes and must not overlap; callers guarantee this.
func Copy(dst, src unsafe.Pointer, n int) {
	for n >= 2*WordSize {
		*(*uintptr)(dst) = *(*uintptr)(src)
		*(*uintptr)(unsafe.Add(dst, WordSize)) = *(*uintptr)(unsafe.Add(src, WordSize))
		dst = unsafe.Add(dst, 2*WordSize)
		src = unsafe.Add(src, 2*WordSize)
		n -= 2 * WordSize
	}
	if n >= WordSize {
		*(*uintptr)(dst) = *(*uintptr)(src)
		dst = unsafe.Add(dst, WordSize)
		src = unsafe.Add(src, WordSize)
		n -= WordSize
	}
	if WordSize == 8 && n >= 4 {
		*(*uint32)(dst) = *(*uint32)(src)
		dst = unsafe.Add(dst, 4)
		src = unsafe.Add(src, 4)
		n -= 4
	}
	if n >= 2 {
		*(*uint16)(dst) = *(*uint16)(src)
		dst = unsafe.Add(dst, 2)
		src = unsafe.Add(src, 2)
		n -= 2
	}
	if n >= 1 {
		*(*byte)(dst) = *(*byte)(src)
	}
}
