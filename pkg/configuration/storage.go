package configuration

import (
	"gopkg.in/yaml.v3"

	"github.com/engity-com/htpasswd/pkg/common"
	"github.com/engity-com/htpasswd/pkg/htpasswd"
)

var (
	DefaultStorageCreateIfAbsent = false
	DefaultStorageFileMode       = htpasswd.DefaultFileMode
)

// Storage defines how the credential file itself is treated.
type Storage struct {
	// CreateIfAbsent creates the credential file if a write operation hits
	// a non-existing one, instead of failing.
	CreateIfAbsent bool `yaml:"createIfAbsent"`

	// FileMode is used if the credential file has to be created.
	FileMode common.FileMode `yaml:"fileMode"`
}

func (this *Storage) SetDefaults() error {
	return setDefaults(this,
		fixedDefault("createIfAbsent", func(v *Storage) *bool { return &v.CreateIfAbsent }, DefaultStorageCreateIfAbsent),
		fixedDefault("fileMode", func(v *Storage) *common.FileMode { return &v.FileMode }, DefaultStorageFileMode),
	)
}

func (this *Storage) Trim() error {
	return trim(this,
		noopTrim[Storage]("createIfAbsent"),
		noopTrim[Storage]("fileMode"),
	)
}

func (this *Storage) Validate() error {
	return validate(this,
		noopValidate[Storage]("createIfAbsent"),
		noopValidate[Storage]("fileMode"),
	)
}

func (this *Storage) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalYAML(this, node, func(target *Storage, node *yaml.Node) error {
		type raw Storage
		return node.Decode((*raw)(target))
	})
}

func (this Storage) IsEqualTo(other any) bool {
	if other == nil {
		return false
	}
	switch v := other.(type) {
	case Storage:
		return this.isEqualTo(&v)
	case *Storage:
		return this.isEqualTo(v)
	default:
		return false
	}
}

func (this Storage) isEqualTo(other *Storage) bool {
	return this.CreateIfAbsent == other.CreateIfAbsent &&
		isEqual(&this.FileMode, &other.FileMode)
}
