package htpasswd

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrIllegalUserName   = errors.New("illegal user name")
	ErrIllegalCredential = errors.New("illegal credential")
)

// Credential is one "name:hash" line of a credential File. The hash part is
// opaque; nothing of its encoding is interpreted at this level.
type Credential struct {
	Name string
	Hash []byte
}

func (this Credential) String() string {
	return this.Name + ":" + string(this.Hash)
}

func (this Credential) MarshalText() ([]byte, error) {
	if err := this.Validate(); err != nil {
		return nil, err
	}
	return []byte(this.String()), nil
}

func (this *Credential) Set(plain string) error {
	return this.parse([]byte(plain))
}

func (this *Credential) UnmarshalText(b []byte) error {
	return this.parse(b)
}

// parse splits at the first colon; everything behind it belongs to the hash.
func (this *Credential) parse(b []byte) error {
	i := bytes.IndexByte(b, ':')
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrIllegalCredential, string(b))
	}
	buf := Credential{string(b[:i]), bytes.Clone(b[i+1:])}
	if err := buf.Validate(); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrIllegalCredential, string(b), err)
	}
	*this = buf
	return nil
}

func (this Credential) Validate() error {
	return validateUserName(this.Name)
}

func (this Credential) IsZero() bool {
	return this.Name == "" && len(this.Hash) == 0
}

func (this Credential) IsEqualTo(other any) bool {
	if other == nil {
		return false
	}
	switch v := other.(type) {
	case Credential:
		return this.isEqualTo(&v)
	case *Credential:
		return this.isEqualTo(v)
	default:
		return false
	}
}

func (this Credential) isEqualTo(other *Credential) bool {
	return this.Name == other.Name && bytes.Equal(this.Hash, other.Hash)
}

func validateUserName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrIllegalUserName)
	}
	if strings.ContainsAny(name, ":\n\r") {
		return fmt.Errorf("%w: %q", ErrIllegalUserName, name)
	}
	return nil
}
