// Package mirrors replaces the remote location of repositories with mirrors.
//
// Mirrors are read from a mirrors.yaml file in the vcsimport home directory.
// A mirror applies to one import path and may also change the VCS used.
package mirrors

import (
	"os"

	"github.com/pkg/errors"
)

type mirror struct {
	Repo, Vcs string
}

// Table holds the mirrors in use. A Table is not modified after it is built.
type Table struct {
	mirrors map[string]*mirror
}

// New builds a Table from mirror configuration.
func New(repos MirrorRepos) *Table {
	t := &Table{mirrors: make(map[string]*mirror, len(repos))}
	for _, o := range repos {
		t.mirrors[o.Original] = &mirror{
			Repo: o.Repo,
			Vcs:  o.Vcs,
		}
	}
	return t
}

// Get retrieves information about a mirror. It returns.
// - bool if found
// - new repo location
// - vcs type
func (t *Table) Get(k string) (bool, string, string) {
	if t == nil {
		return false, "", ""
	}
	o, f := t.mirrors[k]
	if !f {
		return false, "", ""
	}

	return true, o.Repo, o.Vcs
}

// Len returns the number of mirrors.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.mirrors)
}

// Load reads the mirrors file at opath. A missing file yields an empty Table.
func Load(opath string) (*Table, error) {
	if _, err := os.Stat(opath); os.IsNotExist(err) {
		return New(nil), nil
	} else if err != nil {
		return nil, err
	}

	ov, err := ReadMirrorsFile(opath)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading existing mirrors file %s", opath)
	}
	return New(ov.Repos), nil
}
