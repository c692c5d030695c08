// Package command provides the VCS commands repositories are managed with.
//
// A Command wraps one VCS tool such as git or hg. Implementations shell out to
// the tool through github.com/Masterminds/vcs and hand back its output without
// interpreting it. Commands hold no state besides their name, so the package
// level values are shared by every repository.
package command

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/Masterminds/vcs"
)

// Command is a VCS tool able to operate on repositories.
type Command interface {
	// Name identifies the tool, e.g. "git".
	Name() string

	// Clone fetches the repository at url into dest. Extra arguments are
	// passed to the tool before the url.
	Clone(url, dest string, args ...string) ([]byte, error)

	// Update pulls new changes into the checkout at dest.
	Update(dest string, args ...string) ([]byte, error)

	// TagList returns the tags of the checkout at dest.
	TagList(dest string) ([]string, error)

	// Ping reports whether a repository is reachable at url without cloning
	// it.
	Ping(url string) bool

	// Init creates an empty repository in dir.
	Init(dir string) error

	// Add stages file of the repository in dir.
	Add(file, dir string) error

	// Commit records the staged changes of the repository in dir.
	Commit(message, dir string) error
}

// Defaults returns the commands an importer uses when none are given: git,
// then hg.
func Defaults() []Command {
	return []Command{Git, Hg}
}

// Builtin returns every command provided by this package.
func Builtin() []Command {
	return []Command{Git, Hg, Bzr, Svn}
}

// Lookup finds a command of this package by name.
func Lookup(name string) (Command, bool) {
	for _, c := range Builtin() {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// tool is a Command running one VCS binary. The argument lists differ per VCS,
// the rest is shared.
type tool struct {
	name string

	// newRepo opens the repository checked out at local, which may not exist.
	newRepo func(remote, local string) (vcs.Repo, error)

	// cloneArgs builds the arguments of an initial checkout.
	cloneArgs func(url, dest string, extra []string) []string

	// updateArgs are the arguments of an update, before the extra ones.
	updateArgs []string
}

func (t *tool) Name() string {
	return t.name
}

func (t *tool) Clone(url, dest string, args ...string) ([]byte, error) {
	out, err := t.runFromDir("", t.cloneArgs(url, dest, args)...)
	if err != nil {
		return out, vcs.NewRemoteError("Unable to get repository", err, string(out))
	}
	return out, nil
}

func (t *tool) Update(dest string, args ...string) ([]byte, error) {
	a := append(append([]string{}, t.updateArgs...), args...)
	out, err := t.runFromDir(dest, a...)
	if err != nil {
		return out, vcs.NewRemoteError("Unable to update repository", err, string(out))
	}
	return out, nil
}

func (t *tool) TagList(dest string) ([]string, error) {
	r, err := t.newRepo("", dest)
	if err != nil {
		return nil, err
	}
	return r.Tags()
}

func (t *tool) Ping(url string) bool {
	// The local side of the repository must not exist, or its remote is
	// compared with url.
	tmp, err := os.MkdirTemp("", "vcsimport-ping-"+t.name)
	if err != nil {
		return false
	}
	defer os.RemoveAll(tmp)

	r, err := t.newRepo(url, filepath.Join(tmp, "repo"))
	if err != nil {
		return false
	}
	return r.Ping()
}

func (t *tool) Init(dir string) error {
	r, err := t.newRepo("", dir)
	if err != nil {
		return err
	}
	return r.Init()
}

func (t *tool) Add(file, dir string) error {
	return t.runLocal(dir, "Unable to add file", "add", file)
}

func (t *tool) Commit(message, dir string) error {
	return t.runLocal(dir, "Unable to commit", "commit", "-m", message)
}

func (t *tool) runLocal(dir, failure string, args ...string) error {
	out, err := t.runFromDir(dir, args...)
	if err != nil {
		return vcs.NewLocalError(failure, err, string(out))
	}
	return nil
}

// runFromDir runs the tool inside dir, or the working directory when dir is
// empty. Unlike opening the checkout with newRepo, it works on repositories
// without a remote.
func (t *tool) runFromDir(dir string, args ...string) ([]byte, error) {
	c := exec.Command(t.name, args...)
	c.Dir = dir
	return c.CombinedOutput()
}

// withExtra puts the caller's arguments between the subcommand and the
// positional arguments.
func withExtra(sub string, extra []string, positional ...string) []string {
	a := make([]string, 0, 1+len(extra)+len(positional))
	a = append(a, sub)
	a = append(a, extra...)
	return append(a, positional...)
}
