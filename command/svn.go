package command

import "github.com/Masterminds/vcs"

// Svn manages Subversion checkouts. It is not part of Defaults.
var Svn Command = &tool{
	name: "svn",
	newRepo: func(remote, local string) (vcs.Repo, error) {
		r, err := vcs.NewSvnRepo(remote, local)
		if err != nil {
			return nil, err
		}
		return r, nil
	},
	cloneArgs: func(url, dest string, extra []string) []string {
		return withExtra("checkout", extra, url, dest)
	},
	updateArgs: []string{"update"},
}
