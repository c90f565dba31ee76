package crypto

import (
	"github.com/engity-com/htpasswd/pkg/common"
)

// DigestOpts adjusts how Algorithm.Digest encodes a password.
type DigestOpts struct {
	// Cost is the cost factor consumed by AlgorithmBcrypt.
	// Default: DefaultBcryptCost
	Cost *int

	// Salt is a caller provided salt for algorithms which can consume one.
	// The algorithms of this package either derive their own
	// (AlgorithmBcrypt) or are unsalted by definition (all others).
	Salt []byte
}

func (this *DigestOpts) OrDefaults() DigestOpts {
	var result DigestOpts
	if v := this; v != nil {
		result = *v
	}
	if result.Cost == nil {
		result.Cost = common.P(DefaultBcryptCost)
	}
	return result
}
