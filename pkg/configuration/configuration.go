package configuration

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/engity-com/htpasswd/pkg/common"
	"github.com/engity-com/htpasswd/pkg/errors"
	"github.com/engity-com/htpasswd/pkg/htpasswd"
	"github.com/engity-com/htpasswd/pkg/sys"
)

var (
	DefaultFile = htpasswd.File("")
)

// Configuration is the root configuration of this application.
type Configuration struct {
	// File points to the credential file to maintain. It can always be
	// overridden per invocation. If it stays empty write operations run
	// without persisting anything.
	File htpasswd.File `yaml:"file"`

	Hashing Hashing `yaml:"hashing"`

	Storage Storage `yaml:"storage"`
}

func (this *Configuration) SetDefaults() error {
	return setDefaults(this,
		fixedDefault("file", func(v *Configuration) *htpasswd.File { return &v.File }, DefaultFile),
		func(v *Configuration) (string, defaulter) { return "hashing", &v.Hashing },
		func(v *Configuration) (string, defaulter) { return "storage", &v.Storage },
	)
}

func (this *Configuration) Trim() error {
	return trim(this,
		func(v *Configuration) (string, trimmer) { return "file", &stringTrimmer{(*string)(&v.File)} },
		func(v *Configuration) (string, trimmer) { return "hashing", &v.Hashing },
		func(v *Configuration) (string, trimmer) { return "storage", &v.Storage },
	)
}

func (this *Configuration) Validate() error {
	return validate(this,
		func(v *Configuration) (string, validator) { return "file", &v.File },
		func(v *Configuration) (string, validator) { return "hashing", &v.Hashing },
		func(v *Configuration) (string, validator) { return "storage", &v.Storage },
	)
}

func (this *Configuration) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalYAML(this, node, func(target *Configuration, node *yaml.Node) error {
		type raw Configuration
		return node.Decode((*raw)(target))
	})
}

func (this *Configuration) LoadFromFile(fn string) error {
	f, err := os.Open(fn)
	if sys.IsNotExist(err) {
		return errors.Newf(errors.Config, "configuration file %q does not exist", fn)
	}
	if err != nil {
		return errors.Newf(errors.Config, "cannot open configuration file %q: %w", fn, err)
	}
	defer common.IgnoreCloseError(f)

	return this.LoadFromYaml(f, fn)
}

func (this *Configuration) LoadFromYaml(reader io.Reader, fn string) error {
	if fn == "" {
		fn = "<anonymous>"
	}

	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)
	var buf Configuration
	if err := decoder.Decode(&buf); err != nil {
		return errors.Newf(errors.Config, "cannot parse configuration file %q: %w", fn, err)
	}

	if err := buf.Validate(); err != nil {
		return errors.Newf(errors.Config, "configuration file %q contains problems: %w", fn, err)
	}

	*this = buf
	return nil
}

func (this Configuration) IsEqualTo(other any) bool {
	if other == nil {
		return false
	}
	switch v := other.(type) {
	case Configuration:
		return this.isEqualTo(&v)
	case *Configuration:
		return this.isEqualTo(v)
	default:
		return false
	}
}

func (this Configuration) isEqualTo(other *Configuration) bool {
	return isEqual(&this.File, &other.File) &&
		isEqual(&this.Hashing, &other.Hashing) &&
		isEqual(&this.Storage, &other.Storage)
}
