package command

import "github.com/Masterminds/vcs"

// Hg manages Mercurial repositories.
var Hg Command = &tool{
	name: "hg",
	newRepo: func(remote, local string) (vcs.Repo, error) {
		r, err := vcs.NewHgRepo(remote, local)
		if err != nil {
			return nil, err
		}
		return r, nil
	},
	cloneArgs: func(url, dest string, extra []string) []string {
		return withExtra("clone", extra, url, dest)
	},
	updateArgs: []string{"pull", "-u"},
}
