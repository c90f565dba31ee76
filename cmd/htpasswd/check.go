package main

import (
	goos "os"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	log "github.com/echocat/slf4g"

	"github.com/engity-com/htpasswd/pkg/crypto"
	"github.com/engity-com/htpasswd/pkg/crypto/unixcrypt"
	"github.com/engity-com/htpasswd/pkg/errors"
)

var (
	checkPasswordStdin bool
	checkHash          string
)

var _ = registerCommand(func(app *kingpin.Application) {
	cmd := app.Command("check", "Checks the given password against a single password hash, like the hash part of a credential line. Next to the formats the set command writes the Unix crypt(3) flavors "+strings.Join(unixcrypt.GetSupportedCrypts(), ", ")+" are understood.").
		Action(func(*kingpin.ParseContext) error {
			return doCheck()
		})
	cmd.Flag("password-stdin", "Reads the password as one line from stdin instead of prompting for it.").
		BoolVar(&checkPasswordStdin)
	cmd.Arg("hash", "Hash to check the password against.").
		Required().
		StringVar(&checkHash)
})

func doCheck() error {
	fail := func(err error) error {
		log.Error(err)
		goos.Exit(1)
		return nil
	}

	password, err := readPassword("Enter password: ", false, checkPasswordStdin)
	if err != nil {
		return fail(err)
	}

	hash := []byte(checkHash)
	var ok bool
	if strings.HasPrefix(checkHash, "$2") {
		ok, err = crypto.AlgorithmBcrypt.Compare(hash, password)
	} else if strings.HasPrefix(checkHash, "$") {
		ok, err = unixcrypt.Validate(string(password), hash)
	} else {
		ok, err = crypto.Probe(hash, password, nil)
	}
	if err != nil {
		return fail(err)
	}
	if !ok {
		return fail(errors.User.Newf("password does not match the given hash"))
	}

	log.Info("password matches")
	return nil
}
