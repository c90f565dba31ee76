package crypto

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/engity-com/htpasswd/pkg/errors"
)

const (
	// DefaultBcryptCost is used whenever DigestOpts does not name a cost.
	DefaultBcryptCost = 5

	// MinBcryptCost and MaxBcryptCost frame the usual cost range. They are
	// not enforced here; values outside are handed to the implementation,
	// which may adjust or reject them.
	MinBcryptCost = 4
	MaxBcryptCost = 17
)

func (this Algorithm) digestBcrypt(password []byte, opts DigestOpts) ([]byte, error) {
	if len(opts.Salt) > 0 {
		return nil, errors.Unsupported.Newf("bcrypt derives its salt while hashing and cannot consume a provided one")
	}
	return bcrypt.GenerateFromPassword(password, *opts.Cost)
}

func (this Algorithm) compareBcrypt(encoded, password []byte) (bool, error) {
	// Malformed or truncated hashes count as a mismatch, not as an error.
	if err := bcrypt.CompareHashAndPassword(encoded, password); err != nil {
		return false, nil
	}
	return true, nil
}
