package unixcrypt

import (
	"crypto/subtle"

	yescrypt "github.com/openwall/yescrypt-go"
)

func init() {
	instance := &Yescrypt{}
	Instances["$y$"] = instance
}

type Yescrypt struct{}

func (p *Yescrypt) Validate(password string, hash []byte) (bool, error) {
	// Hashing with the full hash as the setting yields the very same
	// hash again if the password matches.
	computed, err := yescrypt.Hash([]byte(password), hash)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(computed, hash) == 1, nil
}

func (p *Yescrypt) Name() string {
	return "yescrypt"
}
