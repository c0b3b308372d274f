package common

import "crypto/rand"

// GenerateRandByteArray returns size cryptographically random bytes.
// It panics if the system random source fails, which only happens on a
// broken platform.
func GenerateRandByteArray(size int) []byte {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// WipeByteArray overwrites b with zeros. Use it for passwords read from the
// terminal once they are no longer needed. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
