package action

import (
	"github.com/Masterminds/vcsimport/importer"
	"github.com/Masterminds/vcsimport/msg"
)

// Update updates the checkout of importPath at dest. Extra arguments are
// passed to the VCS.
func Update(i *importer.Importer, importPath, dest, vcs string, args []string) {
	r := EnsureRepo(i, importPath, vcs)

	msg.Info("--> Fetching updates for %s.", importPath)
	out, err := r.Update(dest, args...)
	if err != nil {
		msg.Die("Update failed for %s: %s\n%s", importPath, err, out)
	}
	msg.Print(string(out))
}
