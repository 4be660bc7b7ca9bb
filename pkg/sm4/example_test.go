package sm4_test

import (
	"encoding/hex"
	"fmt"

	"github.com/guilt/gsm/pkg/sm4"
)

func ExampleEncrypt() {
	key, _ := hex.DecodeString("0123456789abcdeffedcba9876543210")
	plaintext, _ := hex.DecodeString("0123456789abcdeffedcba9876543210")

	ciphertext, err := sm4.Encrypt(plaintext, key)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%x\n", ciphertext)

	back, err := sm4.Decrypt(ciphertext, key)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%x\n", back)
	// Output:
	// 681edf34d206965e86b3e94f536e4246
	// 0123456789abcdeffedcba9876543210
}
