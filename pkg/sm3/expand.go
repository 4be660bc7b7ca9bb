package sm3

import "math/bits"

// Expansion holds the 68 words W and 64 words W' derived from one block.
type Expansion struct {
	W  [68]uint32
	W1 [64]uint32
}

// Expander fills e from one 16-word block.
type Expander func(block *[16]uint32, e *Expansion)

// Expand returns the expansion of block computed by ExpandScalar.
func Expand(block *[16]uint32) Expansion {
	var e Expansion
	ExpandScalar(block, &e)
	return e
}

// ExpandScalar computes the expansion one word at a time.
func ExpandScalar(block *[16]uint32, e *Expansion) {
	w := &e.W
	copy(w[:16], block[:])
	for j := 16; j < len(w); j++ {
		w[j] = expandWord(w, j)
	}
	for j := range e.W1 {
		e.W1[j] = w[j] ^ w[j+4]
	}
}

// expandWord computes W[j] from the already filled W[j-16..j-1].
func expandWord(w *[68]uint32, j int) uint32 {
	return p1(w[j-16]^w[j-9]^bits.RotateLeft32(w[j-3], 15)) ^
		bits.RotateLeft32(w[j-13], 7) ^ w[j-6]
}

// p0 is the permutation used on TT2 in the compression function.
func p0(x uint32) uint32 {
	return x ^ bits.RotateLeft32(x, 9) ^ bits.RotateLeft32(x, 17)
}

// p1 is the permutation used by the message expansion.
func p1(x uint32) uint32 {
	return x ^ bits.RotateLeft32(x, 15) ^ bits.RotateLeft32(x, 23)
}
