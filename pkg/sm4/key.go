package sm4

import (
	"encoding/binary"
	"math/bits"
)

// Rounds is the number of rounds, and therefore round keys, of SM4.
const Rounds = 32

// fk is the system parameter FK.
var fk = [4]uint32{
	0xa3b1bac6, 0x56aa3350, 0x677d9197, 0xb27022dc,
}

// ck holds the fixed parameters CK[0..31].
var ck = [Rounds]uint32{
	0x00070e15, 0x1c232a31, 0x383f464d, 0x545b6269,
	0x70777e85, 0x8c939aa1, 0xa8afb6bd, 0xc4cbd2d9,
	0xe0e7eef5, 0xfc030a11, 0x181f262d, 0x343b4249,
	0x50575e65, 0x6c737a81, 0x888f969d, 0xa4abb2b9,
	0xc0c7ced5, 0xdce3eaf1, 0xf8ff060d, 0x141b2229,
	0x30373e45, 0x4c535a61, 0x686f767d, 0x848b9299,
	0xa0a7aeb5, 0xbcc3cad1, 0xd8dfe6ed, 0xf4fb0209,
	0x10171e25, 0x2c333a41, 0x484f565d, 0x646b7279,
}

// RoundKeys is the round key set derived from one 128-bit key.
// It is immutable once built; accessors hand out copies.
type RoundKeys struct {
	enc [Rounds]uint32
	dec [Rounds]uint32
}

// ExpandKey derives the round keys for key, which must be KeySize bytes.
func ExpandKey(key []byte) (*RoundKeys, error) {
	if len(key) != KeySize {
		return nil, KeySizeError(len(key))
	}
	rk := new(RoundKeys)
	rk.expand(key)
	return rk, nil
}

// Encryption returns the round keys in encryption order.
func (rk *RoundKeys) Encryption() [Rounds]uint32 {
	return rk.enc
}

// Decryption returns the round keys in decryption order.
func (rk *RoundKeys) Decryption() [Rounds]uint32 {
	return rk.dec
}

// expand runs the key schedule. k is a ring of the last four schedule words:
// slot i%4 holds K[i] until K[i+4] overwrites it.
func (rk *RoundKeys) expand(key []byte) {
	var k [4]uint32
	for i := range k {
		k[i] = binary.BigEndian.Uint32(key[4*i:]) ^ fk[i]
	}
	for i := 0; i < Rounds; i++ {
		next := k[i%4] ^ keyT(k[(i+1)%4]^k[(i+2)%4]^k[(i+3)%4]^ck[i])
		k[i%4] = next
		rk.enc[i] = next
		rk.dec[Rounds-1-i] = next
	}
}

// keyL is the key schedule's linear transform L'.
func keyL(b uint32) uint32 {
	return b ^ bits.RotateLeft32(b, 13) ^ bits.RotateLeft32(b, 23)
}

// keyT is the key schedule's composite transform T'.
func keyT(z uint32) uint32 {
	return keyL(tau(z))
}
