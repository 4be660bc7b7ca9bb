package sm3_test

import (
	"fmt"

	"github.com/guilt/gsm/pkg/sm3"
)

func ExampleDigest() {
	fmt.Printf("%x\n", sm3.Digest([]byte("abc")))
	// Output: 66c7f0f462eeedd9d1f2d46bdc10e4e24167c4875cf2f7a2297da02b8f4ba8e0
}

func ExampleDigestWith() {
	fmt.Printf("%x\n", sm3.DigestWith(nil, sm3.ExpandLanes))
	// Output: 1ab21d8355cfa17f8e61194831e81a8f22bec8c728fefb747ed035eb5082aa2b
}
