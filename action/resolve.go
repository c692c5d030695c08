package action

import (
	"github.com/Masterminds/vcsimport/importer"
	"github.com/Masterminds/vcsimport/msg"
)

// Resolve prints the command and URL of each import path, one per line.
// Paths that fail to resolve are reported and skipped.
func Resolve(i *importer.Importer, paths []string) {
	if len(paths) == 0 {
		msg.Die("At least one import path is required")
	}
	for _, p := range paths {
		cmd, u, err := i.Resolve(p)
		if err != nil {
			msg.Err("%s", err)
			continue
		}
		msg.Puts("%s %s %s", p, cmd.Name(), u)
	}
}
