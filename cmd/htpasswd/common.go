package main

import (
	"fmt"

	log "github.com/echocat/slf4g"

	"github.com/engity-com/htpasswd/pkg/crypto"
	"github.com/engity-com/htpasswd/pkg/errors"
	"github.com/engity-com/htpasswd/pkg/htpasswd"
)

// optionalValue makes any conversion type usable as a flag value while it
// keeps track of whether the flag was provided at all.
type optionalValue[T any, PT interface {
	*T
	Set(string) error
}] struct {
	value T
	isSet bool
}

func (this *optionalValue[T, PT]) Set(plain string) error {
	if err := PT(&this.value).Set(plain); err != nil {
		return err
	}
	this.isSet = true
	return nil
}

func (this *optionalValue[T, PT]) String() string {
	if !this.isSet {
		return ""
	}
	return fmt.Sprint(this.value)
}

func (this *optionalValue[T, PT]) get() *T {
	if !this.isSet {
		return nil
	}
	return &this.value
}

func effectiveFile(override htpasswd.File) htpasswd.File {
	if !override.IsZero() {
		return override
	}
	return configurationRef.Get().File
}

func requireFile(override htpasswd.File) (htpasswd.File, error) {
	file := effectiveFile(override)
	if file.IsZero() {
		return "", errors.Config.Newf("no credential file provided; use --file or the configuration")
	}
	return file, nil
}

func warnIfWeak(algorithm crypto.Algorithm) {
	switch algorithm {
	case crypto.AlgorithmMd5, crypto.AlgorithmSha1:
		log.With("algorithm", algorithm).
			Warn("this algorithm stores an unsalted digest and is considered weak; prefer bcrypt for new entries")
	}
}
