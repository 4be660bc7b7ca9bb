// Package sm4 implements the SM4 block cipher (GB/T 32907-2016).
//
// Encrypt and Decrypt work on exactly one 16-byte block with a 16-byte key.
// NewCipher exposes the same transform as a crypto/cipher.Block for callers
// that layer their own modes of operation on top.
package sm4

import (
	"crypto/cipher"
	"strconv"
)

const (
	// BlockSize is the SM4 block size in bytes.
	BlockSize = 16
	// KeySize is the SM4 key size in bytes.
	KeySize = 16
)

// KeySizeError reports a key whose length is not KeySize.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "sm4: invalid key size " + strconv.Itoa(int(k))
}

// BlockSizeError reports an input block whose length is not BlockSize.
type BlockSizeError int

func (b BlockSizeError) Error() string {
	return "sm4: invalid block size " + strconv.Itoa(int(b))
}

// Encrypt encrypts one block of plaintext under key.
func Encrypt(plaintext, key []byte) ([]byte, error) {
	rk, err := prepare(plaintext, key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, BlockSize)
	crypt(&rk.enc, out, plaintext)
	return out, nil
}

// Decrypt decrypts one block of ciphertext under key.
func Decrypt(ciphertext, key []byte) ([]byte, error) {
	rk, err := prepare(ciphertext, key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, BlockSize)
	crypt(&rk.dec, out, ciphertext)
	return out, nil
}

// prepare validates both lengths, key first, before touching the key schedule.
func prepare(block, key []byte) (*RoundKeys, error) {
	if len(key) != KeySize {
		return nil, KeySizeError(len(key))
	}
	if len(block) != BlockSize {
		return nil, BlockSizeError(len(block))
	}
	return ExpandKey(key)
}

type sm4Cipher struct {
	rk *RoundKeys
}

// NewCipher returns a cipher.Block for key. The round keys are expanded once.
func NewCipher(key []byte) (cipher.Block, error) {
	rk, err := ExpandKey(key)
	if err != nil {
		return nil, err
	}
	return &sm4Cipher{rk: rk}, nil
}

func (c *sm4Cipher) BlockSize() int {
	return BlockSize
}

func (c *sm4Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("sm4: input not full block")
	}
	if len(dst) < BlockSize {
		panic("sm4: output not full block")
	}
	crypt(&c.rk.enc, dst, src)
}

func (c *sm4Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("sm4: input not full block")
	}
	if len(dst) < BlockSize {
		panic("sm4: output not full block")
	}
	crypt(&c.rk.dec, dst, src)
}
