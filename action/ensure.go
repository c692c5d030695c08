package action

import (
	"github.com/Masterminds/vcsimport/cfg"
	"github.com/Masterminds/vcsimport/command"
	"github.com/Masterminds/vcsimport/importer"
	"github.com/Masterminds/vcsimport/mirrors"
	"github.com/Masterminds/vcsimport/msg"
	gpath "github.com/Masterminds/vcsimport/path"
	"github.com/Masterminds/vcsimport/repo"
)

// EnsureImporter builds the importer described by the configuration and
// mirrors files.
//
// Any error will cause an immediate exit, with an error printed to Stderr.
func EnsureImporter() *importer.Importer {
	p := configPath()
	conf, err := cfg.ReadFile(p)
	if err != nil {
		msg.Die("Failed to load %s: %s", p, err)
	}
	i, err := conf.Importer()
	if err != nil {
		msg.Die("Invalid configuration in %s: %s", p, err)
	}
	msg.Debug("Using %d hosts and %d commands", len(i.Hosts), len(i.Commands))

	mp := gpath.Mirrors()
	m, err := mirrors.Load(mp)
	if err != nil {
		msg.Die("Failed to load %s: %s", mp, err)
	}
	if m.Len() > 0 {
		msg.Debug("Loaded %d mirrors from %s", m.Len(), mp)
		i.Mirrors = m
	}
	return i
}

// EnsureRepo resolves importPath to a repository. A non-empty vcs overrides
// the resolved command.
//
// Any error will cause an immediate exit, with an error printed to Stderr.
func EnsureRepo(i *importer.Importer, importPath, vcs string) *repo.Repository {
	o := repo.Options{
		ImportPath: importPath,
		Importer:   i,
	}
	if vcs != "" {
		c, ok := command.Lookup(vcs)
		if !ok {
			msg.Die("Unknown VCS %s", vcs)
		}
		o.Command = c
	}
	r, err := repo.New(o)
	if err != nil {
		msg.Die("Unable to resolve %s: %s", importPath, err)
	}
	return r
}
