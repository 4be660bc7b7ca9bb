package sm3

import "encoding/binary"

// Pad appends 0x80, zero bytes up to 56 mod 64, and the 64-bit big-endian bit
// length of msg, then returns the result as big-endian words. The word count is
// always a multiple of 16.
func Pad(msg []byte) []uint32 {
	n := len(msg) + 1 + 8
	n = (n + BlockSize - 1) / BlockSize * BlockSize

	buf := make([]byte, n)
	copy(buf, msg)
	buf[len(msg)] = 0x80
	binary.BigEndian.PutUint64(buf[n-8:], uint64(len(msg))<<3)

	words := make([]uint32, n/4)
	for i := range words {
		words[i] = binary.BigEndian.Uint32(buf[4*i:])
	}
	return words
}
