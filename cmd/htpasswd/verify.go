package main

import (
	goos "os"

	"github.com/alecthomas/kingpin/v2"
	log "github.com/echocat/slf4g"

	"github.com/engity-com/htpasswd/pkg/common"
	"github.com/engity-com/htpasswd/pkg/crypto"
	"github.com/engity-com/htpasswd/pkg/errors"
	"github.com/engity-com/htpasswd/pkg/htpasswd"
)

var (
	verifyFile          htpasswd.File
	verifyAlgorithm     optionalValue[crypto.Algorithm, *crypto.Algorithm]
	verifyAnyFormat     bool
	verifyCreate        bool
	verifyPasswordStdin bool
	verifyUsername      string
)

var _ = registerCommand(func(app *kingpin.Application) {
	cmd := app.Command("verify", "Checks if the given password matches the stored one of the given user.").
		Action(func(*kingpin.ParseContext) error {
			return doVerify()
		})
	cmd.Flag("file", "Credential file to inspect. Default: the configuration's file.").
		Short('f').
		PlaceHolder("<file>").
		SetValue(&verifyFile)
	cmd.Flag("algorithm", "Treats every stored hash as created by this algorithm instead of detecting it per line.").
		Short('a').
		PlaceHolder("<plain|md5|sha1|bcrypt>").
		SetValue(&verifyAlgorithm)
	cmd.Flag("any-format", "Accepts every hash format of the Apache tooling, including crypt() and $apr1$ styled ones, instead of only the ones the set command writes.").
		BoolVar(&verifyAnyFormat)
	cmd.Flag("create", "Creates the credential file if it does not exist.").
		BoolVar(&verifyCreate)
	cmd.Flag("password-stdin", "Reads the password as one line from stdin instead of prompting for it.").
		BoolVar(&verifyPasswordStdin)
	cmd.Arg("username", "Name of the user to check the password of.").
		Required().
		StringVar(&verifyUsername)
})

func doVerify() error {
	fail := func(err error) error {
		log.Error(err)
		goos.Exit(1)
		return nil
	}

	cfg := configurationRef.Get()

	file, err := requireFile(verifyFile)
	if err != nil {
		return fail(err)
	}

	password, err := readPassword("Enter password: ", false, verifyPasswordStdin)
	if err != nil {
		return fail(err)
	}

	var ok bool
	if verifyAnyFormat {
		var matcher htpasswd.Matcher
		if err := matcher.Set(string(file)); err != nil {
			return fail(err)
		}
		ok = matcher.Match(verifyUsername, string(password))
	} else {
		opts := htpasswd.VerifyOpts{
			CreateIfAbsent: common.P(verifyCreate || cfg.Storage.CreateIfAbsent),
			Algorithm:      verifyAlgorithm.get(),
			Mode:           cfg.Storage.FileMode,
		}
		if ok, err = file.Verify(verifyUsername, password, &opts); err != nil {
			return fail(err)
		}
	}

	if !ok {
		return fail(errors.User.Newf("password for user %q does not match", verifyUsername))
	}

	log.With("user", verifyUsername).
		With("file", file).
		Info("password matches")
	return nil
}
