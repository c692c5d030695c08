package action

import (
	"github.com/Masterminds/vcsimport/importer"
	"github.com/Masterminds/vcsimport/msg"
	"github.com/Masterminds/vcsimport/repo"
)

// Ping checks that the repositories of the import paths are reachable.
func Ping(i *importer.Importer, paths []string) {
	if len(paths) == 0 {
		msg.Die("At least one import path is required")
	}

	repos := make([]*repo.Repository, 0, len(paths))
	for _, p := range paths {
		repos = append(repos, EnsureRepo(i, p, ""))
	}

	if err := repo.ConcurrentPing(repos); err != nil {
		msg.Err("%s", err)
	}
}
