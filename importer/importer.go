// Package importer resolves import paths to repositories.
//
// An Importer matches an import path against an ordered list of hosts, asks
// the matching host which VCS command manages the repository, looks the
// command up in its own list and renders the remote URL. Resolution does no
// I/O and never changes the Importer, so one Importer can serve concurrent
// callers.
package importer

import (
	"fmt"
	"strings"

	"github.com/Masterminds/vcsimport/command"
	"github.com/Masterminds/vcsimport/host"
	"github.com/Masterminds/vcsimport/mirrors"
)

// ImportPathError is returned when an import path cannot be resolved.
type ImportPathError struct {
	// Path is the import path being resolved.
	Path string

	msg string
}

func (e *ImportPathError) Error() string {
	return e.msg
}

func pathErr(p, format string, args ...interface{}) error {
	return &ImportPathError{Path: p, msg: fmt.Sprintf(format, args...)}
}

// Importer resolves import paths against Hosts and Commands. Both lists are
// ordered; the first match wins.
type Importer struct {
	Hosts    []*host.Host
	Commands []command.Command

	// Mirrors, if set, replaces the resolved location of mirrored import
	// paths.
	Mirrors *mirrors.Table
}

// New creates an Importer. A nil hosts or commands list selects
// host.Defaults or command.Defaults.
func New(hosts []*host.Host, commands []command.Command) *Importer {
	if hosts == nil {
		hosts = host.Defaults()
	}
	if commands == nil {
		commands = command.Defaults()
	}
	return &Importer{
		Hosts:    hosts,
		Commands: commands,
	}
}

// Default returns an Importer using the default hosts and commands.
func Default() *Importer {
	return New(nil, nil)
}

// Resolve returns the command managing the repository at importPath and the
// URL it can be fetched from. Every failure is an *ImportPathError.
func (i *Importer) Resolve(importPath string) (command.Command, string, error) {
	if err := validate(importPath); err != nil {
		return nil, "", err
	}

	h, err := i.MatchHost(importPath)
	if err != nil {
		return nil, "", err
	}

	name := h.CommandName(importPath)
	if name == "" {
		return nil, "", pathErr(importPath, "%s names no repository command for %s", h.Name, importPath)
	}
	cmd, ok := i.Command(name)
	if !ok {
		return nil, "", pathErr(importPath, "%s is not a valid %s repository command", name, h.Name)
	}

	// Templates carry their scheme until hosts can negotiate one.
	u := h.URL(importPath, "")

	if found, repo, vcsName := i.Mirrors.Get(importPath); found {
		u = repo
		if vcsName != "" {
			cmd, ok = i.Command(vcsName)
			if !ok {
				return nil, "", pathErr(importPath, "%s is not a valid mirror command for %s", vcsName, importPath)
			}
		}
	}

	return cmd, u, nil
}

// MatchHost returns the first host accepting importPath.
//
// A host is considered when importPath starts with its prefix. Failing the
// pattern of a host with a prefix ends the search with an error. Soft hosts,
// those without a prefix, are skipped when their pattern fails.
func (i *Importer) MatchHost(importPath string) (*host.Host, error) {
	for _, h := range i.Hosts {
		if !h.HasPrefix(importPath) {
			continue
		}
		if h.Match(importPath) {
			return h, nil
		}
		if h.Soft() {
			continue
		}
		return nil, pathErr(importPath, "invalid %s import path %s", h.Name, importPath)
	}
	return nil, pathErr(importPath, "%s does not match any hosts", importPath)
}

// Command returns the first command named name.
func (i *Importer) Command(name string) (command.Command, bool) {
	for _, c := range i.Commands {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

func validate(importPath string) error {
	if strings.Contains(importPath, "://") {
		return pathErr(importPath, "%s is not a valid import path", importPath)
	}
	return nil
}
