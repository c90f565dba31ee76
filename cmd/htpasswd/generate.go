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
	generateFile      htpasswd.File
	generateAlgorithm optionalValue[crypto.Algorithm, *crypto.Algorithm]
	generateCost      int
	generateMode      common.FileMode
	generateCreate    bool
	generateDryRun    bool
	generateBytes     = crypto.GeneratedPasswordBytes
	generateUsername  string
)

var _ = registerCommand(func(app *kingpin.Application) {
	cmd := app.Command("generate", "Generates a random password for the given user, stores it like set does and prints the password itself once to stdout.").
		Action(func(*kingpin.ParseContext) error {
			return doGenerate()
		})
	cmd.Flag("file", "Credential file to modify. Default: the configuration's file.").
		Short('f').
		PlaceHolder("<file>").
		SetValue(&generateFile)
	cmd.Flag("algorithm", "Algorithm to digest the password with. Default: the configuration's algorithm.").
		Short('a').
		PlaceHolder("<plain|md5|sha1|bcrypt>").
		SetValue(&generateAlgorithm)
	cmd.Flag("cost", "Cost to hand to cost based algorithms, like bcrypt. Default: the configuration's cost.").
		PlaceHolder("<cost>").
		IntVar(&generateCost)
	cmd.Flag("mode", "Permissions to create the credential file with, if it has to be created. Default: the configuration's fileMode.").
		PlaceHolder("<perm>").
		SetValue(&generateMode)
	cmd.Flag("create", "Creates the credential file if it does not exist.").
		BoolVar(&generateCreate)
	cmd.Flag("dry-run", "Prints the resulting credential line instead of persisting it.").
		Short('n').
		BoolVar(&generateDryRun)
	cmd.Flag("bytes", "Amount of random bytes the password is generated from.").
		Short('b').
		PlaceHolder("<amount>").
		IntVar(&generateBytes)
	cmd.Arg("username", "Name of the user to generate the password for.").
		Required().
		StringVar(&generateUsername)
})

func doGenerate() error {
	fail := func(err error) error {
		log.Error(err)
		goos.Exit(1)
		return nil
	}

	cfg := configurationRef.Get()

	var file htpasswd.File
	if !generateDryRun {
		f, err := requireFile(generateFile)
		if err != nil {
			return fail(err)
		}
		file = f
	}

	password, err := crypto.GeneratePassword(nil, generateBytes)
	if err != nil {
		return fail(err)
	}

	opts := htpasswd.UpsertOpts{
		CreateIfAbsent: common.P(generateCreate || cfg.Storage.CreateIfAbsent),
		Algorithm:      common.P(cfg.Hashing.Algorithm),
		Cost:           common.P(cfg.Hashing.Cost),
		Mode:           cfg.Storage.FileMode,
	}
	if v := generateAlgorithm.get(); v != nil {
		opts.Algorithm = v
	}
	if generateCost != 0 {
		opts.Cost = common.P(generateCost)
	}
	if !generateMode.IsZero() {
		opts.Mode = generateMode
	}
	warnIfWeak(*opts.Algorithm)

	credential, err := file.Upsert(generateUsername, password, &opts)
	if err != nil {
		return fail(err)
	}

	fmt.Println(string(password))

	if file.IsZero() {
		fmt.Println(credential.String())
		return nil
	}

	log.With("user", credential.Name).
		With("file", file).
		Info("password stored")
	return nil
}
