package command

import "github.com/Masterminds/vcs"

// Git manages Git repositories.
var Git Command = &tool{
	name: "git",
	newRepo: func(remote, local string) (vcs.Repo, error) {
		r, err := vcs.NewGitRepo(remote, local)
		if err != nil {
			return nil, err
		}
		return r, nil
	},
	cloneArgs: func(url, dest string, extra []string) []string {
		return withExtra("clone", extra, "--", url, dest)
	},
	updateArgs: []string{"pull"},
}
