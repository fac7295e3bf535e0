package perfcopy

// Strategy thresholds, in bytes. Multi-byte element types divide them
// by the element size, truncating, so the byte threshold stays a lower
// bound.
const (
	// Below rawCopyMin the word copier's setup cost (pointer and
	// stride arithmetic) outweighs its per-byte advantage.
	rawCopyMin = 128

	// Without raw access the element loop stays competitive with the
	// runtime block move up to blockCopyMin.
	blockCopyMin = 1024
)

// copyForward is the element-wise strategy shared by both builds.
func copyForward[T Element](src []T, srcOff int, dst []T, dstOff, count int) {
	for i := 0; i < count; i++ {
		dst[dstOff+i] = src[srcOff+i]
	}
}
