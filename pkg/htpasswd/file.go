package htpasswd

import (
	"os"
	"strings"

	"github.com/engity-com/htpasswd/pkg/common"
	"github.com/engity-com/htpasswd/pkg/crypto"
	"github.com/engity-com/htpasswd/pkg/errors"
	"github.com/engity-com/htpasswd/pkg/sys"
)

// File references an Apache htpasswd styled credential file and provides
// the operations to maintain it.
//
// An empty File is legal for Upsert: the password is digested and the
// resulting Credential returned, but nothing is persisted.
type File string

func (this File) String() string {
	return string(this)
}

func (this File) MarshalText() ([]byte, error) {
	return []byte(strings.Clone(this.String())), nil
}

func (this *File) Set(plain string) error {
	*this = File(plain)
	return nil
}

func (this *File) UnmarshalText(b []byte) error {
	return this.Set(string(b))
}

func (this File) Validate() error {
	return nil
}

func (this File) IsZero() bool {
	return len(this) == 0
}

func (this File) IsEqualTo(other any) bool {
	if other == nil {
		return false
	}
	switch v := other.(type) {
	case File:
		return this.isEqualTo(&v)
	case *File:
		return this.isEqualTo(v)
	default:
		return false
	}
}

func (this File) isEqualTo(other *File) bool {
	return string(this) == string(*other)
}

// Upsert digests the given password and stores it for username inside this
// file. If a line for username already exists, the first one is replaced in
// place; additional lines for the same name are left alone. Otherwise the
// new credential is appended.
//
// The resulting Credential is returned in every successful case. If this
// File is empty it is the only result.
func (this File) Upsert(username string, password []byte, opts *UpsertOpts) (Credential, error) {
	fail := func(err error) (Credential, error) {
		return Credential{}, err
	}

	tOpts := opts.OrDefaults()

	if err := validateUserName(username); err != nil {
		return fail(err)
	}

	hash, err := tOpts.Algorithm.Digest(password, tOpts.digestOpts())
	if err != nil {
		return fail(err)
	}
	credential := Credential{Name: username, Hash: hash}

	if this.IsZero() {
		return credential, nil
	}

	es, err := this.load(*tOpts.CreateIfAbsent, tOpts.mode())
	if err != nil {
		return fail(err)
	}

	if !es.replaceFirst(&credential) {
		es = append(es, entry{credential: &credential})
	}

	if err := this.save(es, tOpts.mode()); err != nil {
		return fail(err)
	}

	return credential, nil
}

// Remove deletes every line of this file which belongs to username. It
// reports whether at least one was found. If none was, the file is left
// untouched.
func (this File) Remove(username string) (bool, error) {
	fail := func(err error) (bool, error) {
		return false, err
	}

	if err := validateUserName(username); err != nil {
		return fail(err)
	}

	es, err := this.load(false, DefaultFileMode.Get())
	if err != nil {
		return fail(err)
	}

	es, found := es.removeAll(username)
	if !found {
		return false, nil
	}

	if err := this.save(es, DefaultFileMode.Get()); err != nil {
		return fail(err)
	}

	return true, nil
}

// Verify checks the given password against every line of this file which
// belongs to username, in file order, and reports whether one of them
// matches. See VerifyOpts.Algorithm for how the hashes are probed.
func (this File) Verify(username string, password []byte, opts *VerifyOpts) (bool, error) {
	fail := func(err error) (bool, error) {
		return false, err
	}

	tOpts := opts.OrDefaults()

	if err := validateUserName(username); err != nil {
		return fail(err)
	}

	es, err := this.load(*tOpts.CreateIfAbsent, tOpts.mode())
	if err != nil {
		return fail(err)
	}

	for _, e := range es {
		c := e.credential
		if c == nil || c.Name != username {
			continue
		}
		ok, err := crypto.Probe(c.Hash, password, tOpts.Algorithm)
		if err != nil {
			return fail(err)
		}
		if ok {
			return true, nil
		}
	}

	return false, nil
}

func (this File) load(createIfAbsent bool, mode os.FileMode) (entries, error) {
	fm := os.O_RDONLY
	if createIfAbsent {
		fm |= os.O_CREATE
	}

	f, err := os.OpenFile(string(this), fm, mode)
	if sys.IsNotExist(err) {
		return nil, errors.NotFound.Newf("password file %q does not exist", this)
	}
	if err != nil {
		return nil, errors.System.Newf("cannot open password file %q: %w", this, err)
	}
	defer common.IgnoreCloseError(f)

	var result entries
	if err := result.readFrom(f); err != nil {
		return nil, errors.System.Newf("cannot read password file %q: %w", this, err)
	}

	return result, nil
}

func (this File) save(es entries, mode os.FileMode) (rErr error) {
	f, err := os.OpenFile(string(this), os.O_WRONLY|os.O_TRUNC|os.O_CREATE, mode)
	if err != nil {
		return errors.System.Newf("cannot open password file %q for writing: %w", this, err)
	}
	defer common.KeepCloseError(&rErr, f)

	if err := es.writeTo(f); err != nil {
		return errors.System.Newf("cannot write password file %q: %w", this, err)
	}

	return nil
}
