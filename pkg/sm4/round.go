package sm4

import (
	"encoding/binary"
	"math/bits"
)

// register is the rolling four-word cipher state. head is the slot of the
// oldest word; each round overwrites it with the newest and advances head.
type register struct {
	x    [4]uint32
	head int
}

func (r *register) load(src []byte) {
	r.x[0] = binary.BigEndian.Uint32(src[0:4])
	r.x[1] = binary.BigEndian.Uint32(src[4:8])
	r.x[2] = binary.BigEndian.Uint32(src[8:12])
	r.x[3] = binary.BigEndian.Uint32(src[12:16])
	r.head = 0
}

// round applies the round function F with round key rk.
func (r *register) round(rk uint32) {
	x0 := r.x[r.head]
	x1 := r.x[(r.head+1)%4]
	x2 := r.x[(r.head+2)%4]
	x3 := r.x[(r.head+3)%4]
	r.x[r.head] = x0 ^ roundT(x1^x2^x3^rk)
	r.head = (r.head + 1) % 4
}

// store writes the state newest word first, which is the reverse transform R.
func (r *register) store(dst []byte) {
	for i := 0; i < 4; i++ {
		binary.BigEndian.PutUint32(dst[4*i:], r.x[(r.head+3-i)%4])
	}
}

// roundL is the round function's linear transform L.
func roundL(b uint32) uint32 {
	return b ^ bits.RotateLeft32(b, 2) ^ bits.RotateLeft32(b, 10) ^
		bits.RotateLeft32(b, 18) ^ bits.RotateLeft32(b, 24)
}

// roundT is the composite transform T.
func roundT(z uint32) uint32 {
	return roundL(tau(z))
}

// crypt runs the 32 rounds over one block. Encryption and decryption differ
// only in the order of rk.
func crypt(rk *[Rounds]uint32, dst, src []byte) {
	var r register
	r.load(src)
	for i := 0; i < Rounds; i++ {
		r.round(rk[i])
	}
	r.store(dst)
}
