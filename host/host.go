// Package host describes the hosting providers an import path can point at.
//
// A Host recognizes import paths by a prefix and a regular expression, names
// the VCS command that manages its repositories, and renders the remote URL a
// repository is fetched from.
package host

import (
	"regexp"
	"strings"
)

// ImportPathVar is the placeholder replaced by the import path in URL formats.
const ImportPathVar = "{import_path}"

// Selector picks the name of the VCS command managing the repository at an
// import path. It is either Fixed or Computed.
type Selector interface {
	CommandName(importPath string) string
}

// Fixed selects the same command for every repository on a host.
type Fixed string

// CommandName returns the fixed name.
func (f Fixed) CommandName(string) string {
	return string(f)
}

// Computed selects the command per import path.
type Computed func(importPath string) string

// CommandName calls the function with the import path.
func (c Computed) CommandName(importPath string) string {
	return c(importPath)
}

// Host is the grammar and URL template of one hosting provider.
//
// A Host is immutable once created and may be shared between goroutines.
type Host struct {
	// Name identifies the host in error messages, e.g. "github".
	Name string

	// Prefix is the start an import path must have for this host to be
	// considered. An empty Prefix makes the host soft: it is matched by
	// Pattern alone and a failed match is not an error.
	Prefix string

	// Pattern must match the complete import path.
	Pattern *regexp.Regexp

	// Command selects the VCS command name.
	Command Selector

	// URLFormat is the remote URL with ImportPathVar in place of the import
	// path, e.g. "https://{import_path}".
	URLFormat string
}

// New creates a Host, compiling pattern. It panics if pattern is not a valid
// regular expression, like regexp.MustCompile. Use Compile for patterns
// coming from users.
func New(name, prefix, pattern string, cmd Selector, urlFormat string) *Host {
	return &Host{
		Name:      name,
		Prefix:    prefix,
		Pattern:   regexp.MustCompile(pattern),
		Command:   cmd,
		URLFormat: urlFormat,
	}
}

// Compile creates a Host and returns an error for an invalid pattern.
func Compile(name, prefix, pattern string, cmd Selector, urlFormat string) (*Host, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Host{
		Name:      name,
		Prefix:    prefix,
		Pattern:   re,
		Command:   cmd,
		URLFormat: urlFormat,
	}, nil
}

// Soft reports whether the host is matched by pattern alone.
func (h *Host) Soft() bool {
	return h.Prefix == ""
}

// HasPrefix reports whether importPath starts with the host prefix.
func (h *Host) HasPrefix(importPath string) bool {
	return strings.HasPrefix(importPath, h.Prefix)
}

// Match reports whether importPath matches the host pattern.
func (h *Host) Match(importPath string) bool {
	return h.Pattern.MatchString(importPath)
}

// CommandName returns the name of the command managing importPath.
func (h *Host) CommandName(importPath string) string {
	return h.Command.CommandName(importPath)
}

// URL renders the remote URL of importPath. The import path is inserted
// verbatim. When scheme is not empty it replaces the scheme of the format.
func (h *Host) URL(importPath, scheme string) string {
	u := strings.Replace(h.URLFormat, ImportPathVar, importPath, -1)
	if scheme == "" {
		return u
	}
	if i := strings.Index(u, "://"); i != -1 {
		return scheme + u[i:]
	}
	return scheme + "://" + u
}
