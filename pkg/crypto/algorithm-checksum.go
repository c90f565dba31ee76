package crypto

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
)

func (this Algorithm) digestChecksum(password []byte) ([]byte, error) {
	sum, err := this.checksum(password)
	if err != nil {
		return nil, err
	}
	return []byte(base64.StdEncoding.EncodeToString(sum)), nil
}

func (this Algorithm) compareChecksum(encoded, password []byte) (bool, error) {
	expected, err := this.digestChecksum(password)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(expected, encoded) == 1, nil
}

func (this Algorithm) checksum(password []byte) ([]byte, error) {
	switch this {
	case AlgorithmMd5:
		sum := md5.Sum(password)
		return sum[:], nil
	case AlgorithmSha1:
		sum := sha1.Sum(password)
		return sum[:], nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrIllegalAlgorithm, this)
	}
}
