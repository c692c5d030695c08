package main

import (
	"github.com/Masterminds/vcsimport/action"

	"github.com/codegangsta/cli"
)

var vcsFlag = cli.StringFlag{
	Name:  "vcs",
	Usage: "Use this VCS instead of the one the host selects (git, hg, bzr, svn)",
}

func commands() []cli.Command {
	return []cli.Command{
		{
			Name:      "resolve",
			ShortName: "r",
			Usage:     "Print the VCS and URL of import paths",
			ArgsUsage: "IMPORT_PATH...",
			Description: `Each import path is matched against the configured hosts and printed
   with the command name and remote URL it resolves to. Paths that do not
   resolve are reported as errors.`,
			Action: func(c *cli.Context) error {
				action.Resolve(action.EnsureImporter(), c.Args())
				return nil
			},
		},
		{
			Name:      "clone",
			Usage:     "Clone the repository of an import path",
			ArgsUsage: "IMPORT_PATH [DEST] [-- VCS_ARGS...]",
			Description: `The destination defaults to the last element of the repository URL
   without a VCS extension. Arguments after -- are passed to the VCS:

       vcsimport clone github.com/Masterminds/vcs -- --depth 1`,
			Flags: []cli.Flag{vcsFlag},
			Action: func(c *cli.Context) error {
				if len(c.Args()) < 1 {
					return cli.NewExitError("clone requires an import path", 1)
				}
				dest, rest := splitDest(c.Args().Tail())
				action.Clone(action.EnsureImporter(), c.Args().First(), dest, c.String("vcs"), rest)
				return nil
			},
		},
		{
			Name:      "update",
			ShortName: "up",
			Usage:     "Update the checkout of an import path",
			ArgsUsage: "IMPORT_PATH DEST [-- VCS_ARGS...]",
			Flags:     []cli.Flag{vcsFlag},
			Action: func(c *cli.Context) error {
				if len(c.Args()) < 2 {
					return cli.NewExitError("update requires an import path and a destination", 1)
				}
				args := c.Args()
				action.Update(action.EnsureImporter(), args[0], args[1], c.String("vcs"), vcsArgs(args[2:]))
				return nil
			},
		},
		{
			Name:      "tags",
			Usage:     "List the tags of the checkout of an import path",
			ArgsUsage: "IMPORT_PATH DEST",
			Flags: []cli.Flag{
				vcsFlag,
				cli.StringFlag{
					Name:  "constraint",
					Usage: "Print only the newest tag satisfying a semantic version constraint, e.g. ^1.2",
				},
				cli.BoolFlag{
					Name:  "semver",
					Usage: "Print only semantic version tags, newest first",
				},
			},
			Action: func(c *cli.Context) error {
				if len(c.Args()) < 2 {
					return cli.NewExitError("tags requires an import path and a destination", 1)
				}
				action.Tags(action.EnsureImporter(), c.Args()[0], c.Args()[1], c.String("vcs"), c.String("constraint"), c.Bool("semver"))
				return nil
			},
		},
		{
			Name:      "ping",
			Usage:     "Check that the repositories of import paths are reachable",
			ArgsUsage: "IMPORT_PATH...",
			Action: func(c *cli.Context) error {
				action.Ping(action.EnsureImporter(), c.Args())
				return nil
			},
		},
		{
			Name:  "hosts",
			Usage: "List the hosts in the order import paths are matched against them",
			Action: func(c *cli.Context) error {
				action.Hosts(action.EnsureImporter())
				return nil
			},
		},
		{
			Name:  "mirror",
			Usage: "Manage mirrors",
			Description: `Mirrors replace the URL, and optionally the VCS, an import path
   resolves to. They are stored in mirrors.yaml in the vcsimport home
   directory.`,
			Subcommands: []cli.Command{
				{
					Name:  "list",
					Usage: "List the current mirrors",
					Action: func(c *cli.Context) error {
						action.MirrorsList()
						return nil
					},
				},
				{
					Name:      "set",
					Usage:     "Set a mirror for an import path",
					ArgsUsage: "[ORIGINAL] [REPLACEMENT]",
					Description: `Missing values are asked for on the terminal unless
   --non-interactive is given.

   Example:
       vcsimport mirror set github.com/example/foo https://git.example.com/example/foo.git --vcs git`,
					Flags: []cli.Flag{
						vcsFlag,
						cli.BoolFlag{
							Name:  "non-interactive",
							Usage: "Never prompt for missing values",
						},
					},
					Action: func(c *cli.Context) error {
						args := c.Args()
						action.MirrorsSet(args.Get(0), args.Get(1), c.String("vcs"), c.Bool("non-interactive"))
						return nil
					},
				},
				{
					Name:      "remove",
					ShortName: "rm",
					Usage:     "Remove a mirror",
					ArgsUsage: "ORIGINAL",
					Action: func(c *cli.Context) error {
						if len(c.Args()) != 1 {
							return cli.NewExitError("remove requires the original import path", 1)
						}
						action.MirrorsRemove(c.Args().First())
						return nil
					},
				},
			},
		},
		{
			Name:  "about",
			Usage: "Learn about vcsimport",
			Action: func(c *cli.Context) error {
				action.About()
				return nil
			},
		},
	}
}

// splitDest separates the optional destination from the VCS arguments.
// Arguments beginning with a dash are never taken as the destination.
func splitDest(args []string) (string, []string) {
	if len(args) == 0 || len(args[0]) > 0 && args[0][0] == '-' {
		return "", vcsArgs(args)
	}
	return args[0], vcsArgs(args[1:])
}

// vcsArgs drops the "--" separating VCS arguments from ours. The cli package
// leaves it in the arguments.
func vcsArgs(args []string) []string {
	if len(args) > 0 && args[0] == "--" {
		return args[1:]
	}
	return args
}
