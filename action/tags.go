package action

import (
	"github.com/Masterminds/vcsimport/importer"
	"github.com/Masterminds/vcsimport/msg"
)

// Tags prints the tags of the checkout of importPath at dest. With a
// constraint only the newest tag satisfying it is printed. With semverOnly
// the semantic version tags are printed, newest first.
func Tags(i *importer.Importer, importPath, dest, vcs, constraint string, semverOnly bool) {
	r := EnsureRepo(i, importPath, vcs)

	if constraint != "" {
		t, err := r.LatestTag(dest, constraint)
		if err != nil {
			msg.Die("Unable to find a tag of %s: %s", importPath, err)
		}
		msg.Puts("%s", t)
		return
	}

	if semverOnly {
		sv, err := r.SemverTags(dest)
		if err != nil {
			msg.Die("Unable to list tags of %s: %s", importPath, err)
		}
		for _, v := range sv {
			msg.Puts("%s", v.Original())
		}
		return
	}

	tags, err := r.TagList(dest)
	if err != nil {
		msg.Die("Unable to list tags of %s: %s", importPath, err)
	}
	for _, t := range tags {
		msg.Puts("%s", t)
	}
}
