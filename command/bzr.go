package command

import "github.com/Masterminds/vcs"

// Bzr manages Bazaar repositories. It is not part of Defaults.
var Bzr Command = &tool{
	name: "bzr",
	newRepo: func(remote, local string) (vcs.Repo, error) {
		r, err := vcs.NewBzrRepo(remote, local)
		if err != nil {
			return nil, err
		}
		return r, nil
	},
	cloneArgs: func(url, dest string, extra []string) []string {
		return withExtra("branch", extra, url, dest)
	},
	updateArgs: []string{"pull"},
}
