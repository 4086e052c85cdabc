package commands

import (
	"fmt"
	"os"

	"github.com/friendsofgo/errors"
	"github.com/joho/godotenv"
	"github.com/schoolyear/schematools/static"
	"github.com/urfave/cli/v2"
)

var authors = []*cli.Author{
	{
		Name:  "Schoolyear",
		Email: "support@schoolyear.com",
	},
}

func description() string {
	return "Source and issues: " + static.RepoURL
}

// NewApp returns the combined app with every command as a subcommand
func NewApp() *cli.App {
	return &cli.App{
		Name:                 static.AppName,
		Usage:                "inspect and validate JSON schema documents",
		Description:          description(),
		Version:              static.Version,
		Suggest:              true,
		EnableBashCompletion: true,
		Commands: cli.Commands{
			ComparePropsCommand,
			SchemaCheckCommand,
		},
		Authors:   authors,
		Copyright: "Schoolyear",
	}
}

// NewStandaloneApp turns a single command into its own app, so it can be shipped as a separate binary
func NewStandaloneApp(name string, cmd *cli.Command) *cli.App {
	return &cli.App{
		Name:        name,
		Usage:       cmd.Usage,
		UsageText:   fmt.Sprintf("%s [options] %s", name, cmd.ArgsUsage),
		ArgsUsage:   cmd.ArgsUsage,
		Description: description(),
		Version:     static.Version,
		Flags:       cmd.Flags,
		Action:      cmd.Action,
		Authors:     authors,
		Copyright:   "Schoolyear",
	}
}

// Main loads the .env file and runs the app, exiting with a non-zero code on failure
func Main(app *cli.App, args []string) {
	if err := godotenv.Load(static.DotEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "Warning: failed to load", static.DotEnvFile+":", err.Error())
	}

	if err := app.Run(args); err != nil {
		// exit coders have already reported themselves
		fmt.Println("Error:", err.Error())
		os.Exit(exitCodeFailure)
	}
}
