package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/arr-ai/packrat/arith"
)

type VersionTags struct {
	Version   string
	GitCommit string
	BuildDate string
	BuildOS   string
}

var (
	engineName  string
	strictMode  bool
	verboseMode bool
)

var engineFlag = cli.StringFlag{
	Name:        "engine",
	Usage:       "parsing engine: recurse, cache, packrat, monad, left or lex",
	Value:       "lex",
	EnvVar:      "PACKRAT_ENGINE",
	Destination: &engineName,
}

var strictFlag = cli.BoolFlag{
	Name:        "strict",
	Usage:       "reject input the start rule does not consume",
	Destination: &strictMode,
}

var verboseFlag = cli.BoolFlag{
	Name:        "v",
	Usage:       "trace every rule application",
	Destination: &verboseMode,
}

// setupLogging runs before each command, once its flags are parsed.
func setupLogging(*cli.Context) error {
	if verboseMode {
		logrus.SetLevel(logrus.TraceLevel)
	}
	return nil
}

func Main(info VersionTags) {
	app := newApp(info)
	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func newApp(info VersionTags) *cli.App {
	app := cli.NewApp()

	app.EnableBashCompletion = true

	app.Name = "packrat"
	app.Usage = "arithmetic through derivation nodes"
	app.Version = info.Version

	app.Commands = []cli.Command{evalCommand, statsCommand, grammarCommand, replCommand, selftestCommand}
	return app
}

func selectedEngine() (arith.Engine, error) {
	e, err := arith.Lookup(engineName)
	if err != nil {
		return e, err
	}
	if strictMode {
		e = e.Strict()
	}
	return e, nil
}
