// vcsimport resolves import paths to version control repositories.
//
// An import path such as github.com/Masterminds/vcs is matched against an
// ordered list of hosts. The matching host decides which VCS tool to use and
// how to build the remote URL:
//
//		$ vcsimport resolve github.com/Masterminds/vcs
//		github.com/Masterminds/vcs git https://github.com/Masterminds/vcs
//
// Extra hosts and commands are read from config.yaml in the vcsimport home
// directory, and mirrors from mirrors.yaml next to it.
//
// For more information use the `vcsimport help` command.
package main

import (
	"os"

	"github.com/Masterminds/vcsimport/action"
	"github.com/Masterminds/vcsimport/msg"
	gpath "github.com/Masterminds/vcsimport/path"

	"github.com/codegangsta/cli"
)

var version = "0.1.0-dev"

const usage = `Resolve import paths to version control repositories.

   Hosts beyond the built in ones are configured in config.yaml in the
   vcsimport home directory:

       commands: [git, hg, bzr]
       hosts:
       - name: gitlab
         prefix: gitlab.com/
         pattern: ^gitlab\.com/[A-Za-z0-9_.\-]+/[A-Za-z0-9_.\-]+$
         vcs: git
`

func main() {
	app := cli.NewApp()
	app.Name = "vcsimport"
	app.Usage = usage
	app.Version = version
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "Set a YAML configuration file. Defaults to config.yaml in the home directory",
		},
		cli.BoolFlag{
			Name:  "quiet, q",
			Usage: "Quiet (no info or debug messages)",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Print debug verbose informational messages",
		},
		cli.StringFlag{
			Name:   "home",
			Value:  gpath.Home(),
			Usage:  "The location of vcsimport files",
			EnvVar: gpath.HomeEnv,
		},
		cli.BoolFlag{
			Name:  "no-color",
			Usage: "Turn off colored output for log messages",
		},
	}
	app.Before = startup
	app.Commands = commands()

	// Detect errors from the Before and After calls and exit on them.
	if err := app.Run(os.Args); err != nil {
		msg.Err(err.Error())
		os.Exit(1)
	}

	// If there was an Error message exit non-zero.
	if msg.HasErrored() {
		m := msg.Color(msg.Red, "An Error has occurred")
		msg.Msg(m)
		os.Exit(2)
	}
}

// startup sets up the base environment.
//
// It does not assume the presence of any file in the home directory, so it
// can be used by any command.
func startup(c *cli.Context) error {
	action.Debug(c.Bool("debug"))
	action.NoColor(c.Bool("no-color"))
	action.Quiet(c.Bool("quiet"))
	action.Init(c.String("config"), c.String("home"))
	return nil
}
