package configuration

import (
	"gopkg.in/yaml.v3"

	"github.com/engity-com/htpasswd/pkg/crypto"
	"github.com/engity-com/htpasswd/pkg/htpasswd"
)

var (
	DefaultHashingAlgorithm = htpasswd.DefaultAlgorithm
	DefaultHashingCost      = crypto.DefaultBcryptCost
)

// Hashing defines how new passwords are digested before they are stored.
type Hashing struct {
	// Algorithm selects the hash algorithm. See crypto.Algorithm for the
	// supported ones.
	Algorithm crypto.Algorithm `yaml:"algorithm"`

	// Cost is handed to cost based algorithms, like bcrypt. The other ones
	// ignore it.
	Cost int `yaml:"cost"`
}

func (this *Hashing) SetDefaults() error {
	return setDefaults(this,
		fixedDefault("algorithm", func(v *Hashing) *crypto.Algorithm { return &v.Algorithm }, DefaultHashingAlgorithm),
		fixedDefault("cost", func(v *Hashing) *int { return &v.Cost }, DefaultHashingCost),
	)
}

func (this *Hashing) Trim() error {
	return trim(this,
		noopTrim[Hashing]("algorithm"),
		noopTrim[Hashing]("cost"),
	)
}

func (this *Hashing) Validate() error {
	return validate(this,
		func(v *Hashing) (string, validator) { return "algorithm", &v.Algorithm },
		noopValidate[Hashing]("cost"),
	)
}

func (this *Hashing) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalYAML(this, node, func(target *Hashing, node *yaml.Node) error {
		type raw Hashing
		return node.Decode((*raw)(target))
	})
}

func (this Hashing) IsEqualTo(other any) bool {
	if other == nil {
		return false
	}
	switch v := other.(type) {
	case Hashing:
		return this.isEqualTo(&v)
	case *Hashing:
		return this.isEqualTo(v)
	default:
		return false
	}
}

func (this Hashing) isEqualTo(other *Hashing) bool {
	return isEqual(&this.Algorithm, &other.Algorithm) &&
		this.Cost == other.Cost
}
