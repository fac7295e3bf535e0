// Package memops implements the raw word-aligned copy primitive backing
// the large-transfer strategy. It compiles only on targets that
// tolerate unaligned word access and when the purego build tag is not
// set; on every other build the package is empty and nothing imports
// it.
package memops
