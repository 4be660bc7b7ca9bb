// Package hashers registers every digest and block cipher the gsm tools can run:
// the SM3 and SM4 implementations of this module, the gmsm reference
// implementations they are checked against, and throughput baselines.
package hashers

import (
	"crypto/cipher"
	"crypto/sha256"
	"encoding/binary"

	"github.com/cespare/xxhash"
	"github.com/dchest/siphash"
	gmsm3 "github.com/emmansun/gmsm/sm3"
	gmsm4 "github.com/emmansun/gmsm/sm4"
	"github.com/mimoo/GoKangarooTwelve/K12"
	"github.com/zeebo/blake3"
	"github.com/zentures/cityhash"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/guilt/gsm/pkg/common"
	"github.com/guilt/gsm/pkg/sm3"
	"github.com/guilt/gsm/pkg/sm4"
)

// sipKey is the fixed key the registry runs SipHash-2-4 under.
var sipKey = []byte{
	0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
	0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
}

var sipK0, sipK1 = binary.LittleEndian.Uint64(sipKey[:8]), binary.LittleEndian.Uint64(sipKey[8:])

func init() {
	hashers := map[common.Algorithm]common.Hasher{
		common.SM3: {
			Algo:      common.SM3,
			Name:      "sm3",
			OutputLen: 64,
			Sum: func(msg []byte) []byte {
				d := sm3.Digest(msg)
				return d[:]
			},
		},
		common.SM3_LANES: {
			Algo:      common.SM3_LANES,
			Name:      "sm3-lanes",
			OutputLen: 64,
			Sum: func(msg []byte) []byte {
				d := sm3.DigestWith(msg, sm3.ExpandLanes)
				return d[:]
			},
		},
		common.SM3_GMSM: {
			Algo:      common.SM3_GMSM,
			Name:      "sm3-gmsm",
			OutputLen: 64,
			Sum: func(msg []byte) []byte {
				d := gmsm3.Sum(msg)
				return d[:]
			},
		},
		common.SHA256: {
			Algo:      common.SHA256,
			Name:      "sha256",
			OutputLen: 64,
			Sum: func(msg []byte) []byte {
				d := sha256.Sum256(msg)
				return d[:]
			},
		},
		common.SHA3_256: {
			Algo:      common.SHA3_256,
			Name:      "sha3-256",
			OutputLen: 64,
			Sum: func(msg []byte) []byte {
				d := sha3.Sum256(msg)
				return d[:]
			},
		},
		common.BLAKE2B_256: {
			Algo:      common.BLAKE2B_256,
			Name:      "blake2b-256",
			OutputLen: 64,
			Sum: func(msg []byte) []byte {
				d := blake2b.Sum256(msg)
				return d[:]
			},
		},
		common.BLAKE3: {
			Algo:      common.BLAKE3,
			Name:      "blake3",
			OutputLen: 64,
			Sum: func(msg []byte) []byte {
				d := blake3.Sum256(msg)
				return d[:]
			},
		},
		common.XXHASH: {
			Algo:      common.XXHASH,
			Name:      "xxhash",
			OutputLen: 16,
			Sum: func(msg []byte) []byte {
				var d [8]byte
				binary.BigEndian.PutUint64(d[:], xxhash.Sum64(msg))
				return d[:]
			},
		},
		common.CITYHASH: {
			Algo:      common.CITYHASH,
			Name:      "cityhash",
			OutputLen: 16,
			Sum: func(msg []byte) []byte {
				h := cityhash.New64()
				h.Write(msg)
				return h.Sum(nil)
			},
		},
		common.SIPHASH: {
			Algo:      common.SIPHASH,
			Name:      "siphash",
			OutputLen: 16,
			Sum: func(msg []byte) []byte {
				var d [8]byte
				binary.BigEndian.PutUint64(d[:], siphash.Hash(sipK0, sipK1, msg))
				return d[:]
			},
		},
		common.KANGAROOTWELVE: {
			Algo:      common.KANGAROOTWELVE,
			Name:      "kangaroo12",
			OutputLen: 64,
			Sum: func(msg []byte) []byte {
				h := K12.NewK12(nil)
				h.Write(msg)
				d := make([]byte, 32)
				h.Read(d) // squeezing the sponge never fails
				return d
			},
		},
	}

	ciphers := map[common.Algorithm]common.Cipher{
		common.SM4: {
			Algo:      common.SM4,
			Name:      "sm4",
			BlockSize: sm4.BlockSize,
			KeySize:   sm4.KeySize,
			NewBlock:  sm4.NewCipher,
		},
		common.SM4_GMSM: {
			Algo:      common.SM4_GMSM,
			Name:      "sm4-gmsm",
			BlockSize: sm4.BlockSize,
			KeySize:   sm4.KeySize,
			NewBlock: func(key []byte) (cipher.Block, error) {
				return gmsm4.NewCipher(key)
			},
		},
	}

	for _, h := range hashers {
		common.AddHasher(h)
	}
	for _, c := range ciphers {
		common.AddCipher(c)
	}
}
