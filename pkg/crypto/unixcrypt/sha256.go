package unixcrypt

import (
	"github.com/GehirnInc/crypt"
	"github.com/GehirnInc/crypt/sha256_crypt"

	"github.com/engity-com/htpasswd/pkg/errors"
)

func init() {
	instance := &Sha256{}
	Instances[sha256_crypt.MagicPrefix] = instance
}

type Sha256 struct{}

func (p *Sha256) Validate(password string, hash []byte) (bool, error) {
	c := sha256_crypt.New()
	if err := c.Verify(string(hash), []byte(password)); errors.Is(err, crypt.ErrKeyMismatch) {
		return false, nil
	} else if err != nil {
		return false, err
	} else {
		return true, nil
	}
}

func (p *Sha256) Name() string {
	return "sha256"
}
