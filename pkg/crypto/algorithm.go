package crypto

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrIllegalAlgorithm = errors.New("illegal algorithm")
)

// Algorithm is the closed set of password hash algorithms of this package.
//
// AlgorithmPlain stores the password as it is. AlgorithmMd5 and AlgorithmSha1
// store the base64 encoded raw digest, without any salt or marker prefix.
// AlgorithmBcrypt stores an adaptive hash which carries its own parameters.
type Algorithm uint8

const (
	AlgorithmPlain Algorithm = iota
	AlgorithmMd5
	AlgorithmSha1
	AlgorithmBcrypt
)

func (this Algorithm) String() string {
	v, err := this.MarshalText()
	if err != nil {
		return fmt.Sprintf("illegal-algorithm-%d", this)
	}
	return string(v)
}

func (this Algorithm) MarshalText() ([]byte, error) {
	switch this {
	case AlgorithmPlain:
		return []byte("plain"), nil
	case AlgorithmMd5:
		return []byte("md5"), nil
	case AlgorithmSha1:
		return []byte("sha1"), nil
	case AlgorithmBcrypt:
		return []byte("bcrypt"), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrIllegalAlgorithm, this)
	}
}

func (this *Algorithm) Set(plain string) error {
	switch strings.ToLower(plain) {
	case "plain":
		*this = AlgorithmPlain
		return nil
	case "md5":
		*this = AlgorithmMd5
		return nil
	case "sha1", "sha-1":
		*this = AlgorithmSha1
		return nil
	case "bcrypt":
		*this = AlgorithmBcrypt
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrIllegalAlgorithm, plain)
	}
}

func (this *Algorithm) UnmarshalText(b []byte) error {
	return this.Set(string(b))
}

// Digest encodes password in the representation of this Algorithm.
func (this Algorithm) Digest(password []byte, opts *DigestOpts) ([]byte, error) {
	tOpts := opts.OrDefaults()
	switch this {
	case AlgorithmPlain:
		return password, nil
	case AlgorithmMd5, AlgorithmSha1:
		return this.digestChecksum(password)
	case AlgorithmBcrypt:
		return this.digestBcrypt(password, tOpts)
	default:
		return nil, fmt.Errorf("%w: %d", ErrIllegalAlgorithm, this)
	}
}

// Compare checks if encoded was created from password using this Algorithm.
// An encoded value this Algorithm cannot make sense of counts as a mismatch.
func (this Algorithm) Compare(encoded, password []byte) (bool, error) {
	switch this {
	case AlgorithmPlain:
		return bytes.Equal(encoded, password), nil
	case AlgorithmMd5, AlgorithmSha1:
		return this.compareChecksum(encoded, password)
	case AlgorithmBcrypt:
		return this.compareBcrypt(encoded, password)
	default:
		return false, fmt.Errorf("%w: %d", ErrIllegalAlgorithm, this)
	}
}

func (this Algorithm) Validate() error {
	_, err := this.MarshalText()
	return err
}

func (this Algorithm) IsEqualTo(other any) bool {
	if other == nil {
		return false
	}
	switch v := other.(type) {
	case Algorithm:
		return this.isEqualTo(&v)
	case *Algorithm:
		return this.isEqualTo(v)
	default:
		return false
	}
}

func (this Algorithm) isEqualTo(other *Algorithm) bool {
	return this == *other
}
