package action

import "github.com/Masterminds/vcsimport/msg"

const aboutMessage = `
vcsimport: resolve import paths to version control repositories and work
with them through git, hg, bzr or svn.

An import path such as github.com/Masterminds/vcs names a repository without
saying how to fetch it. vcsimport matches the path against a list of hosts,
picks the VCS the host uses and builds the remote URL. Hosts and mirrors can
be added in the vcsimport home directory.

To file issues, obtain the source, or learn more visit:
    https://github.com/Masterminds/vcsimport

vcsimport is licensed under the MIT License.`

// About prints information about vcsimport.
func About() {
	msg.Puts(aboutMessage)
}
