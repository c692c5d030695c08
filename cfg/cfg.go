// Package cfg handles working with the vcsimport configuration file.
//
// The configuration file, config.yaml in the vcsimport home directory, adds
// hosts in front of the built-in ones and chooses the VCS commands import
// paths may resolve to.
package cfg
