// Package demo runs one SM4 encrypt/decrypt and one SM3 digest over random
// input and reports the hex values and timings.
package demo

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/guilt/gsm/pkg/sm3"
	"github.com/guilt/gsm/pkg/sm4"
)

// Result holds the values and timings of one demonstration run.
type Result struct {
	Key        []byte
	Plaintext  []byte
	Ciphertext []byte
	Decrypted  []byte
	Digest     [sm3.Size]byte

	EncryptTime time.Duration
	DecryptTime time.Duration
	DigestTime  time.Duration
}

// Run draws a key and a plaintext block from rnd, which the caller owns;
// nothing else in the run is random.
func Run(rnd io.Reader) (*Result, error) {
	buf := make([]byte, sm4.KeySize+sm4.BlockSize)
	if _, err := io.ReadFull(rnd, buf); err != nil {
		return nil, errors.Wrap(err, "read randomness")
	}
	r := &Result{
		Key:       buf[:sm4.KeySize],
		Plaintext: buf[sm4.KeySize:],
	}

	var err error
	start := time.Now()
	r.Ciphertext, err = sm4.Encrypt(r.Plaintext, r.Key)
	r.EncryptTime = time.Since(start)
	if err != nil {
		return nil, errors.Wrap(err, "encrypt")
	}

	start = time.Now()
	r.Decrypted, err = sm4.Decrypt(r.Ciphertext, r.Key)
	r.DecryptTime = time.Since(start)
	if err != nil {
		return nil, errors.Wrap(err, "decrypt")
	}
	if !bytes.Equal(r.Decrypted, r.Plaintext) {
		return r, errors.Errorf("decrypted %x does not match plaintext %x", r.Decrypted, r.Plaintext)
	}

	start = time.Now()
	r.Digest = sm3.Digest(r.Plaintext)
	r.DigestTime = time.Since(start)
	return r, nil
}

// Print writes the run in a fixed line-oriented layout.
func (r *Result) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"plaintext:  %x\nkey:        %x\nciphertext: %x\nencrypt:    %v\ndecrypted:  %x\ndecrypt:    %v\nsm3:        %x\ndigest:     %v\n",
		r.Plaintext, r.Key, r.Ciphertext, r.EncryptTime, r.Decrypted, r.DecryptTime, r.Digest[:], r.DigestTime)
	return err
}
