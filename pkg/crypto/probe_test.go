package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/engity-com/htpasswd/pkg/common"
)

func TestProbe(t *testing.T) {
	md5OfSecret := mustDigest(t, AlgorithmMd5, "secret")
	sha1OfSecret := mustDigest(t, AlgorithmSha1, "secret")
	bcryptOfSecret := mustDigest(t, AlgorithmBcrypt, "secret")

	cases := []struct {
		name     string
		encoded  []byte
		password string
		enforced *Algorithm
		expected bool
	}{
		{"md5-by-order", md5OfSecret, "secret", nil, true},
		{"sha1-by-order", sha1OfSecret, "secret", nil, true},
		{"bcrypt-by-order", bcryptOfSecret, "secret", nil, true},
		{"plain-by-order", []byte("secret"), "secret", nil, true},
		{"wrong-password", md5OfSecret, "other", nil, false},
		{"plain-enforced", []byte("secret"), "secret", common.P(AlgorithmPlain), true},
		{"plain-enforced-excludes-others", md5OfSecret, "secret", common.P(AlgorithmPlain), false},
		{"enforced-hit", sha1OfSecret, "secret", common.P(AlgorithmSha1), true},
		{"enforced-excludes-others", md5OfSecret, "secret", common.P(AlgorithmSha1), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, actualErr := Probe(c.encoded, []byte(c.password), c.enforced)
			require.NoError(t, actualErr)
			assert.Equal(t, c.expected, actual)
		})
	}
}

func TestDefaultProbeOrder(t *testing.T) {
	assert.Equal(t, []Algorithm{AlgorithmMd5, AlgorithmSha1, AlgorithmBcrypt, AlgorithmPlain}, DefaultProbeOrder)
}
