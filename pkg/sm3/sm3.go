// Package sm3 implements the SM3 cryptographic hash function (GB/T 32905-2016).
//
// Digest hashes a complete message. The lane-parallel message expansion in
// ExpandLanes is an alternative to the scalar ExpandScalar; both produce
// identical words and can be selected with DigestWith.
package sm3

import "encoding/binary"

const (
	// Size is the SM3 digest size in bytes.
	Size = 32
	// BlockSize is the SM3 message block size in bytes.
	BlockSize = 64
)

// iv is the initial chaining value.
var iv = State{
	0x7380166f, 0x4914b2b9, 0x172442d7, 0xda8a0600,
	0xa96f30bc, 0x163138aa, 0xe38dee4d, 0xb0fb0e4e,
}

// Digest returns the SM3 digest of msg using the scalar expansion.
func Digest(msg []byte) [Size]byte {
	return DigestWith(msg, ExpandScalar)
}

// DigestWith returns the SM3 digest of msg, expanding each block with expand.
// A nil expand selects ExpandScalar.
func DigestWith(msg []byte, expand Expander) [Size]byte {
	if expand == nil {
		expand = ExpandScalar
	}
	words := Pad(msg)
	v := iv
	var block [16]uint32
	var e Expansion
	// blocks chain strictly in order: each compression reads the previous v
	for len(words) > 0 {
		copy(block[:], words[:16])
		expand(&block, &e)
		Compress(&v, &e)
		words = words[16:]
	}
	return v.Bytes()
}

// State is the eight-word chaining value V.
type State [8]uint32

// Bytes encodes the state big-endian, word 0 first.
func (v *State) Bytes() [Size]byte {
	var out [Size]byte
	for i, s := range v {
		binary.BigEndian.PutUint32(out[4*i:], s)
	}
	return out
}
