package common

import (
	"crypto/cipher"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Algorithm identifies a registered primitive.
type Algorithm int

// Constants for registered primitives.
const (
	SM3 Algorithm = iota
	SM3_LANES
	SM3_GMSM
	SHA256
	SHA3_256
	BLAKE2B_256
	BLAKE3
	XXHASH
	CITYHASH
	KANGAROOTWELVE
	SIPHASH
	SM4
	SM4_GMSM
)

// Hasher describes a message digest over a complete message.
type Hasher struct {
	Algo      Algorithm
	Name      string
	OutputLen int // hex characters
	Sum       func(msg []byte) []byte
}

// Cipher describes a 128-bit block cipher.
type Cipher struct {
	Algo      Algorithm
	Name      string
	BlockSize int
	KeySize   int
	NewBlock  func(key []byte) (cipher.Block, error)
}

var (
	mu      sync.RWMutex
	hashers = map[string]Hasher{}
	ciphers = map[string]Cipher{}
)

// AddHasher registers h under its lower-cased name.
func AddHasher(h Hasher) {
	mu.Lock()
	defer mu.Unlock()
	hashers[strings.ToLower(h.Name)] = h
}

// AddCipher registers c under its lower-cased name.
func AddCipher(c Cipher) {
	mu.Lock()
	defer mu.Unlock()
	ciphers[strings.ToLower(c.Name)] = c
}

// GetHasher looks up a hasher by name.
func GetHasher(name string) (Hasher, error) {
	mu.RLock()
	defer mu.RUnlock()
	h, ok := hashers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Hasher{}, fmt.Errorf("unsupported hash algorithm: %s", name)
	}
	return h, nil
}

// GetCipher looks up a cipher by name.
func GetCipher(name string) (Cipher, error) {
	mu.RLock()
	defer mu.RUnlock()
	c, ok := ciphers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Cipher{}, fmt.Errorf("unsupported cipher: %s", name)
	}
	return c, nil
}

// GetAllHasherNames returns the registered hasher names, sorted.
func GetAllHasherNames() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(hashers))
	for name := range hashers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAllCipherNames returns the registered cipher names, sorted.
func GetAllCipherNames() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(ciphers))
	for name := range ciphers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetDefaultHashAlgorithm returns the name of the default digest.
func GetDefaultHashAlgorithm() string {
	return "sm3"
}

// GetDefaultCipher returns the name of the default block cipher.
func GetDefaultCipher() string {
	return "sm4"
}
