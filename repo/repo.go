// Package repo provides a Repository bound to the VCS command managing it.
//
// A Repository is built either from a command and a URL, or from an import
// path that an importer resolves. Operations are forwarded to the command
// unchanged; the repository adds no retries and does not read the output.
package repo

import (
	"github.com/Masterminds/vcsimport/command"
	"github.com/Masterminds/vcsimport/importer"
	"github.com/Masterminds/vcsimport/msg"
	"github.com/pkg/errors"
)

// concurrentWorkers is the number of workers to be used in concurrent operations.
var concurrentWorkers = 20

// ErrMissingArgs is returned by New when it is given neither a command and a
// URL nor an import path. It is a mistake of the caller, never a resolution
// failure.
var ErrMissingArgs = errors.New("repository construction requires a url and a command, or an import path")

// Options describe the repository New builds.
type Options struct {
	// Command manages the repository. It takes precedence over the resolved
	// command.
	Command command.Command

	// URL is where the repository is fetched from. It takes precedence over
	// the resolved URL.
	URL string

	// ImportPath is resolved when Command or URL is missing.
	ImportPath string

	// Importer resolves ImportPath. The default importer is used when nil.
	Importer *importer.Importer
}

// Repository is a remote repository and the command managing it. It does not
// change after New returns it.
type Repository struct {
	cmd        command.Command
	url        string
	importPath string
}

// New creates a Repository.
//
// When both o.Command and o.URL are set they are used as given and nothing is
// resolved. Otherwise o.ImportPath is resolved and the result fills in
// whichever of the two is missing. Resolution failures are returned as
// *importer.ImportPathError.
func New(o Options) (*Repository, error) {
	if o.Command != nil && o.URL != "" {
		return &Repository{
			cmd:        o.Command,
			url:        o.URL,
			importPath: o.ImportPath,
		}, nil
	}

	if o.ImportPath == "" {
		return nil, ErrMissingArgs
	}

	i := o.Importer
	if i == nil {
		i = importer.Default()
	}
	cmd, u, err := i.Resolve(o.ImportPath)
	if err != nil {
		return nil, err
	}
	msg.Debug("Resolved %s to %s (%s)", o.ImportPath, u, cmd.Name())

	r := &Repository{
		cmd:        cmd,
		url:        u,
		importPath: o.ImportPath,
	}
	if o.Command != nil {
		r.cmd = o.Command
	}
	if o.URL != "" {
		r.url = o.URL
	}
	return r, nil
}

// Command returns the command managing the repository.
func (r *Repository) Command() command.Command {
	return r.cmd
}

// URL returns the remote location of the repository.
func (r *Repository) URL() string {
	return r.url
}

// ImportPath returns the import path the repository was created from, or ""
// when it was created from a command and a URL alone.
func (r *Repository) ImportPath() string {
	return r.importPath
}

// Clone clones the repository into dest. Extra arguments go to the command.
func (r *Repository) Clone(dest string, args ...string) ([]byte, error) {
	msg.Debug("Cloning %s into %s with %s", r.url, dest, r.cmd.Name())
	return r.cmd.Clone(r.url, dest, args...)
}

// Update updates the checkout at dest.
func (r *Repository) Update(dest string, args ...string) ([]byte, error) {
	msg.Debug("Updating %s with %s", dest, r.cmd.Name())
	return r.cmd.Update(dest, args...)
}

// TagList lists the tags of the checkout at dest.
func (r *Repository) TagList(dest string) ([]string, error) {
	return r.cmd.TagList(dest)
}

// Ping reports whether the repository URL is reachable.
func (r *Repository) Ping() bool {
	return r.cmd.Ping(r.url)
}
