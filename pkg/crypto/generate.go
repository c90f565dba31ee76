package crypto

import (
	crand "crypto/rand"
	"io"

	"github.com/mr-tron/base58"
)

// GeneratedPasswordBytes is the amount of entropy GeneratePassword consumes
// when numBytes is not positive.
const GeneratedPasswordBytes = 16

// GeneratePassword creates a random password with numBytes of entropy,
// encoded as base58 text. If rand is nil crypto/rand is used.
func GeneratePassword(rand io.Reader, numBytes int) ([]byte, error) {
	if rand == nil {
		rand = crand.Reader
	}
	if numBytes <= 0 {
		numBytes = GeneratedPasswordBytes
	}
	buf := make([]byte, numBytes)
	if _, err := io.ReadFull(rand, buf); err != nil {
		return nil, err
	}
	return []byte(base58.Encode(buf)), nil
}
