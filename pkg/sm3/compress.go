package sm3

import "math/bits"

// rotT[j] is the round constant T_j rotated left by j bits.
var rotT [64]uint32

func init() {
	for j := range rotT {
		t := uint32(0x79cc4519)
		if j >= 16 {
			t = 0x7a879d8a
		}
		rotT[j] = bits.RotateLeft32(t, j)
	}
}

// Compress runs the 64 rounds of the compression function over the
// expansion x and folds the result into v with the feed-forward XOR.
func Compress(v *State, x *Expansion) {
	a, b, c, d := v[0], v[1], v[2], v[3]
	e, f, g, h := v[4], v[5], v[6], v[7]

	for j := 0; j < 16; j++ {
		a12 := bits.RotateLeft32(a, 12)
		ss1 := bits.RotateLeft32(a12+e+rotT[j], 7)
		ss2 := ss1 ^ a12
		tt1 := ff0(a, b, c) + d + ss2 + x.W1[j]
		tt2 := gg0(e, f, g) + h + ss1 + x.W[j]
		d, c, b, a = c, bits.RotateLeft32(b, 9), a, tt1
		h, g, f, e = g, bits.RotateLeft32(f, 19), e, p0(tt2)
	}
	for j := 16; j < 64; j++ {
		a12 := bits.RotateLeft32(a, 12)
		ss1 := bits.RotateLeft32(a12+e+rotT[j], 7)
		ss2 := ss1 ^ a12
		tt1 := ff1(a, b, c) + d + ss2 + x.W1[j]
		tt2 := gg1(e, f, g) + h + ss1 + x.W[j]
		d, c, b, a = c, bits.RotateLeft32(b, 9), a, tt1
		h, g, f, e = g, bits.RotateLeft32(f, 19), e, p0(tt2)
	}

	v[0] ^= a
	v[1] ^= b
	v[2] ^= c
	v[3] ^= d
	v[4] ^= e
	v[5] ^= f
	v[6] ^= g
	v[7] ^= h
}

func ff0(x, y, z uint32) uint32 {
	return x ^ y ^ z
}

func ff1(x, y, z uint32) uint32 {
	return (x & y) | (x & z) | (y & z)
}

func gg0(x, y, z uint32) uint32 {
	return x ^ y ^ z
}

func gg1(x, y, z uint32) uint32 {
	return (x & y) | (^x & z)
}
