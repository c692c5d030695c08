package action

import (
	"os"

	"github.com/Masterminds/vcsimport/importer"
	"github.com/Masterminds/vcsimport/msg"
	gpath "github.com/Masterminds/vcsimport/path"
)

// Clone clones the repository of importPath into dest. When dest is empty the
// last element of the repository URL is used. Extra arguments are passed to
// the VCS.
func Clone(i *importer.Importer, importPath, dest, vcs string, args []string) {
	r := EnsureRepo(i, importPath, vcs)

	if dest == "" {
		d, err := gpath.DestFromURL(r.URL())
		if err != nil {
			msg.Die("Unable to pick a destination for %s: %s", importPath, err)
		}
		dest = d
	}

	if _, err := os.Stat(dest); err == nil {
		empty, err := gpath.IsDirectoryEmpty(dest)
		if err != nil {
			msg.Die("Unable to read %s: %s", dest, err)
		}
		if !empty {
			msg.Die("Destination %s already exists and is not empty", dest)
		}
	}

	msg.StartProgress("Cloning " + r.URL() + " with " + r.Command().Name())
	out, err := r.Clone(dest, args...)
	if err != nil {
		msg.StopProgress("")
		msg.Die("Unable to clone %s: %s\n%s", importPath, err, out)
	}
	msg.StopProgress("--> Cloned " + importPath + " into " + dest)
	msg.Debug("%s", out)
}
