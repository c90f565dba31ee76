package main

import (
	goos "os"

	"github.com/alecthomas/kingpin/v2"
	log "github.com/echocat/slf4g"

	"github.com/engity-com/htpasswd/pkg/errors"
	"github.com/engity-com/htpasswd/pkg/htpasswd"
)

var (
	deleteFile     htpasswd.File
	deleteUsername string
)

var _ = registerCommand(func(app *kingpin.Application) {
	cmd := app.Command("delete", "Removes every credential line of the given user from the credential file.").
		Action(func(*kingpin.ParseContext) error {
			return doDelete()
		})
	cmd.Flag("file", "Credential file to modify. Default: the configuration's file.").
		Short('f').
		PlaceHolder("<file>").
		SetValue(&deleteFile)
	cmd.Arg("username", "Name of the user to remove.").
		Required().
		StringVar(&deleteUsername)
})

func doDelete() error {
	fail := func(err error) error {
		log.Error(err)
		goos.Exit(1)
		return nil
	}

	file, err := requireFile(deleteFile)
	if err != nil {
		return fail(err)
	}

	found, err := file.Remove(deleteUsername)
	if err != nil {
		return fail(err)
	}
	if !found {
		return fail(errors.NotFound.Newf("user %q is not contained in %q", deleteUsername, file))
	}

	log.With("user", deleteUsername).
		With("file", file).
		Info("user removed")
	return nil
}
