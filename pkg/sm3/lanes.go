package sm3

import "math/bits"

// lanes4 and lanes8 model 128-bit and 256-bit vector registers of 32-bit lanes.
type (
	lanes4 [4]uint32
	lanes8 [8]uint32
)

func (a lanes4) xor(b lanes4) lanes4 {
	return lanes4{a[0] ^ b[0], a[1] ^ b[1], a[2] ^ b[2], a[3] ^ b[3]}
}

func (a lanes4) rol(n int) lanes4 {
	return lanes4{
		bits.RotateLeft32(a[0], n),
		bits.RotateLeft32(a[1], n),
		bits.RotateLeft32(a[2], n),
		bits.RotateLeft32(a[3], n),
	}
}

func (a lanes8) xor(b lanes8) lanes8 {
	var r lanes8
	for i := range r {
		r[i] = a[i] ^ b[i]
	}
	return r
}

func p1x4(x lanes4) lanes4 {
	return x.xor(x.rol(15)).xor(x.rol(23))
}

// gather3 loads w[j], w[j+1], w[j+2] into the first three lanes.
func gather3(w *[68]uint32, j int) lanes4 {
	return lanes4{w[j], w[j+1], w[j+2], 0}
}

// ExpandLanes computes the same expansion as ExpandScalar with lane-parallel
// steps. W[j] looks back to W[j-3], so a step can produce at most three new
// words; the fourth lane idles. Once fewer than three words remain the rest
// are filled by the scalar recurrence. W' is produced eight lanes at a time.
func ExpandLanes(block *[16]uint32, e *Expansion) {
	w := &e.W
	copy(w[:16], block[:])

	j := 16
	for ; j+3 <= len(w); j += 3 {
		t := gather3(w, j-16).xor(gather3(w, j-9)).xor(gather3(w, j-3).rol(15))
		r := p1x4(t).xor(gather3(w, j-13).rol(7)).xor(gather3(w, j-6))
		w[j], w[j+1], w[j+2] = r[0], r[1], r[2]
	}
	for ; j < len(w); j++ {
		w[j] = expandWord(w, j)
	}

	for i := 0; i < len(e.W1); i += 8 {
		var a, b lanes8
		copy(a[:], w[i:i+8])
		copy(b[:], w[i+4:i+12])
		r := a.xor(b)
		copy(e.W1[i:i+8], r[:])
	}
}
