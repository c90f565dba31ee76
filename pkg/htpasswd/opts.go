package htpasswd

import (
	"os"

	"github.com/engity-com/htpasswd/pkg/common"
	"github.com/engity-com/htpasswd/pkg/crypto"
)

var (
	// DefaultAlgorithm is used by File.Upsert when none is selected.
	DefaultAlgorithm = crypto.AlgorithmMd5

	// DefaultFileMode is used when an operation creates the credential file.
	DefaultFileMode = common.MustNewFileMode("0600")
)

// UpsertOpts adjusts how File.Upsert behaves.
type UpsertOpts struct {
	// CreateIfAbsent creates the file if it does not exist, instead of
	// failing. Default: false
	CreateIfAbsent *bool

	// Algorithm selects how the password is digested.
	// Default: DefaultAlgorithm
	Algorithm *crypto.Algorithm

	// Cost is handed to cost based algorithms, see crypto.DigestOpts.
	Cost *int

	// Salt is handed to algorithms which can consume one, see
	// crypto.DigestOpts.
	Salt []byte

	// Mode is used if the file has to be created. Default: DefaultFileMode
	Mode common.FileMode
}

func (this *UpsertOpts) OrDefaults() UpsertOpts {
	var result UpsertOpts
	if v := this; v != nil {
		result = *v
	}
	if result.CreateIfAbsent == nil {
		result.CreateIfAbsent = common.P(false)
	}
	if result.Algorithm == nil {
		result.Algorithm = common.P(DefaultAlgorithm)
	}
	return result
}

func (this UpsertOpts) digestOpts() *crypto.DigestOpts {
	return &crypto.DigestOpts{
		Cost: this.Cost,
		Salt: this.Salt,
	}
}

func (this UpsertOpts) mode() os.FileMode {
	return this.Mode.OrDefault(DefaultFileMode.Get())
}

// VerifyOpts adjusts how File.Verify behaves.
type VerifyOpts struct {
	// CreateIfAbsent creates an empty file if it does not exist, instead
	// of failing. Default: false
	CreateIfAbsent *bool

	// Algorithm enforces one algorithm to check with. If absent each of
	// crypto.DefaultProbeOrder is tried.
	Algorithm *crypto.Algorithm

	// Mode is used if the file has to be created. Default: DefaultFileMode
	Mode common.FileMode
}

func (this *VerifyOpts) OrDefaults() VerifyOpts {
	var result VerifyOpts
	if v := this; v != nil {
		result = *v
	}
	if result.CreateIfAbsent == nil {
		result.CreateIfAbsent = common.P(false)
	}
	return result
}

func (this VerifyOpts) mode() os.FileMode {
	return this.Mode.OrDefault(DefaultFileMode.Get())
}
