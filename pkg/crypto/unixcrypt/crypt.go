package unixcrypt

import (
	"bytes"
	"sort"

	"github.com/engity-com/htpasswd/pkg/errors"
)

var (
	ErrNoSuchCrypt = errors.Newf(errors.Unsupported, "no such unix password hashing method")

	Instances = make(map[string]Crypt)
)

// Crypt verifies a password against one family of unix crypt(3) style
// hashes, like the ones libc writes to /etc/shadow.
type Crypt interface {
	Validate(password string, hash []byte) (bool, error)
	Name() string
}

// Validate resolves the Crypt instance via the magic prefix of hash and
// verifies password against it. A hash without any known prefix yields
// ErrNoSuchCrypt.
func Validate(password string, hash []byte) (bool, error) {
	for prefix, crypt := range Instances {
		if bytes.HasPrefix(hash, []byte(prefix)) {
			return crypt.Validate(password, hash)
		}
	}
	return false, ErrNoSuchCrypt
}

func GetSupportedCrypts() []string {
	result := make([]string, len(Instances))
	var i int
	for _, v := range Instances {
		result[i] = v.Name()
		i++
	}
	sort.Strings(result)
	return result
}
