package main

import (
	"fmt"
	goos "os"

	"github.com/alecthomas/kingpin/v2"
	log "github.com/echocat/slf4g"

	"github.com/engity-com/htpasswd/pkg/common"
	"github.com/engity-com/htpasswd/pkg/crypto"
	"github.com/engity-com/htpasswd/pkg/htpasswd"
)

var (
	setFile          htpasswd.File
	setAlgorithm     optionalValue[crypto.Algorithm, *crypto.Algorithm]
	setCost          int
	setMode          common.FileMode
	setCreate        bool
	setDryRun        bool
	setPasswordStdin bool
	setUsername      string
)

var _ = registerCommand(func(app *kingpin.Application) {
	cmd := app.Command("set", "Stores a password for the given user inside the credential file. Existing users are updated, new ones appended.").
		Action(func(*kingpin.ParseContext) error {
			return doSet()
		})
	cmd.Flag("file", "Credential file to modify. Default: the configuration's file.").
		Short('f').
		PlaceHolder("<file>").
		SetValue(&setFile)
	cmd.Flag("algorithm", "Algorithm to digest the password with. Default: the configuration's algorithm.").
		Short('a').
		PlaceHolder("<plain|md5|sha1|bcrypt>").
		SetValue(&setAlgorithm)
	cmd.Flag("cost", "Cost to hand to cost based algorithms, like bcrypt. Default: the configuration's cost.").
		PlaceHolder("<cost>").
		IntVar(&setCost)
	cmd.Flag("mode", "Permissions to create the credential file with, if it has to be created. Default: the configuration's fileMode.").
		PlaceHolder("<perm>").
		SetValue(&setMode)
	cmd.Flag("create", "Creates the credential file if it does not exist.").
		BoolVar(&setCreate)
	cmd.Flag("dry-run", "Prints the resulting credential line instead of persisting it.").
		Short('n').
		BoolVar(&setDryRun)
	cmd.Flag("password-stdin", "Reads the password as one line from stdin instead of prompting for it.").
		BoolVar(&setPasswordStdin)
	cmd.Arg("username", "Name of the user to store the password for.").
		Required().
		StringVar(&setUsername)
})

func doSet() error {
	fail := func(err error) error {
		log.Error(err)
		goos.Exit(1)
		return nil
	}

	cfg := configurationRef.Get()

	var file htpasswd.File
	if !setDryRun {
		f, err := requireFile(setFile)
		if err != nil {
			return fail(err)
		}
		file = f
	}

	password, err := readPassword("Enter password: ", true, setPasswordStdin)
	if err != nil {
		return fail(err)
	}

	opts := htpasswd.UpsertOpts{
		CreateIfAbsent: common.P(setCreate || cfg.Storage.CreateIfAbsent),
		Algorithm:      common.P(cfg.Hashing.Algorithm),
		Cost:           common.P(cfg.Hashing.Cost),
		Mode:           cfg.Storage.FileMode,
	}
	if v := setAlgorithm.get(); v != nil {
		opts.Algorithm = v
	}
	if setCost != 0 {
		opts.Cost = common.P(setCost)
	}
	if !setMode.IsZero() {
		opts.Mode = setMode
	}
	warnIfWeak(*opts.Algorithm)

	credential, err := file.Upsert(setUsername, password, &opts)
	if err != nil {
		return fail(err)
	}

	if file.IsZero() {
		fmt.Println(credential.String())
		return nil
	}

	log.With("user", credential.Name).
		With("file", file).
		Info("password stored")
	return nil
}
