package host

import "regexp"

// seg is one element of an import path.
const seg = `[A-Za-z0-9_.\-]+`

var extRegex = regexp.MustCompile(`\.(git|hg|bzr|svn)$`)

// Defaults returns the built-in hosts in priority order. The first host
// matching an import path wins, so the soft generic host comes last.
//
// Each call returns new Host values.
func Defaults() []*Host {
	return []*Host{
		New("github", "github.com/",
			`^github\.com/`+seg+`/`+seg+`$`,
			Fixed("git"), "https://"+ImportPathVar),
		New("bitbucket", "bitbucket.org/",
			`^bitbucket\.org/`+seg+`/`+seg+`$`,
			Fixed("git"), "https://"+ImportPathVar),
		New("launchpad", "git.launchpad.net/",
			`^git\.launchpad\.net/(`+seg+`|~`+seg+`/(\+git|`+seg+`)/`+seg+`)$`,
			Fixed("git"), "https://"+ImportPathVar),
		New("jazz", "hub.jazz.net/",
			`^hub\.jazz\.net/git/[a-z0-9]+/`+seg+`$`,
			Fixed("git"), "https://"+ImportPathVar),
		New("googlesource", "go.googlesource.com/",
			`^go\.googlesource\.com/`+seg+`$`,
			Fixed("git"), "https://"+ImportPathVar),
		New("generic", "",
			`^([a-z0-9.\-]+\.)+[a-z0-9.\-]+(:[0-9]+)?/[A-Za-z0-9_.\-/]*?\.(git|hg|bzr|svn)$`,
			Computed(ExtensionCommand), "https://"+ImportPathVar),
	}
}

// ExtensionCommand names the command by the VCS extension ending the import
// path, as in example.com/foo/bar.hg. It returns "" for paths without one.
func ExtensionCommand(importPath string) string {
	m := extRegex.FindStringSubmatch(importPath)
	if m == nil {
		return ""
	}
	return m[1]
}
