package htpasswd

import (
	gohtpasswd "github.com/tg123/go-htpasswd"
)

// Matcher answers password checks against a credential file speaking the
// full set of hash formats the Apache tooling can produce, including the
// crypt() based ones this package does not write itself.
//
// It complements File.Verify, which sticks to the formats File.Upsert
// creates.
type Matcher struct {
	file *gohtpasswd.File
	fn   string
}

func (this Matcher) Match(username, password string) bool {
	if v := this.file; v != nil {
		return v.Match(username, password)
	}
	return false
}

// Reload re-reads the backing file. The zero Matcher tolerates it.
func (this *Matcher) Reload() error {
	if v := this.file; v != nil {
		return v.Reload(nil)
	}
	return nil
}

func (this Matcher) MarshalText() (text []byte, err error) {
	return []byte(this.String()), nil
}

func (this Matcher) String() string {
	return this.fn
}

func (this *Matcher) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*this = Matcher{}
		return nil
	}

	f, err := gohtpasswd.New(string(text), gohtpasswd.DefaultSystems, nil)
	if err != nil {
		return err
	}
	*this = Matcher{f, string(text)}
	return nil
}

func (this *Matcher) Set(text string) error {
	return this.UnmarshalText([]byte(text))
}

func (this Matcher) Validate() error {
	return nil
}

func (this Matcher) IsZero() bool {
	return this.file == nil
}

func (this Matcher) IsEqualTo(other any) bool {
	if other == nil {
		return false
	}
	switch v := other.(type) {
	case Matcher:
		return this.isEqualTo(&v)
	case *Matcher:
		return this.isEqualTo(v)
	default:
		return false
	}
}

func (this Matcher) isEqualTo(other *Matcher) bool {
	return this.fn == other.fn
}
