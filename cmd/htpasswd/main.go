package main

import (
	goos "os"

	"github.com/alecthomas/kingpin/v2"
	log "github.com/echocat/slf4g"
	"github.com/echocat/slf4g/native"

	"github.com/engity-com/htpasswd/pkg/configuration"
	"github.com/engity-com/htpasswd/pkg/logging"
)

var (
	configurationRef = configuration.MustNewConfigurationRef("")

	commandRegistry []func(*kingpin.Application)
)

func registerCommand(with func(app *kingpin.Application)) bool {
	commandRegistry = append(commandRegistry, with)
	return true
}

func main() {
	app := kingpin.New("htpasswd", "Manages and verifies user credentials of Apache htpasswd styled files.").
		UsageWriter(goos.Stderr).
		ErrorWriter(goos.Stderr).
		Terminate(func(i int) {
			code := max(i, 1)
			goos.Exit(code)
		})

	logging.ConfigureLoggingForFlags(app, native.DefaultProvider)

	app.Flag("configuration", "Configuration file to take the defaults for all commands from.").
		Short('c').
		PlaceHolder("<file>").
		SetValue(&configurationRef)

	for _, register := range commandRegistry {
		register(app)
	}

	if _, err := app.Parse(goos.Args[1:]); err != nil {
		log.WithError(err).Error("execution failed")
		goos.Exit(1)
	}
}
