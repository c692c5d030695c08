// Package path contains path and environment utilities for vcsimport.
//
// This includes the location of the vcsimport home directory and the files
// kept in it, as well as helpers for picking clone destinations.
package path

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// DefaultConfigFile is the default name of the configuration file kept in the
// home directory.
const DefaultConfigFile = "config.yaml"

// MirrorsFile is the name of the mirrors file kept in the home directory.
const MirrorsFile = "mirrors.yaml"

// HomeEnv is the environment variable that overrides the home directory.
const HomeEnv = "VCSIMPORT_HOME"

// Cache the location of the homedirectory.
var homeDir = ""

// Home returns the vcsimport home directory ($VCSIMPORT_HOME or
// ~/.vcsimport, typically).
func Home() string {
	if homeDir != "" {
		return homeDir
	}

	if h := os.Getenv(HomeEnv); h != "" {
		homeDir = os.ExpandEnv(h)
		return homeDir
	}

	u, err := user.Current()
	if err == nil && u.HomeDir != "" {
		homeDir = filepath.Join(u.HomeDir, ".vcsimport")
	} else {
		cwd, err := os.Getwd()
		if err == nil {
			homeDir = filepath.Join(cwd, ".vcsimport")
		} else {
			homeDir = ".vcsimport"
		}
	}

	return homeDir
}

// SetHome sets the home directory for vcsimport.
//
// Setting this is not concurrency safe. It should be set once, at startup.
func SetHome(h string) {
	homeDir = h
}

// ConfigFile returns the location of the configuration file in Home.
func ConfigFile() string {
	return filepath.Join(Home(), DefaultConfigFile)
}

// Mirrors returns the location of the mirrors file in Home.
func Mirrors() string {
	return filepath.Join(Home(), MirrorsFile)
}

// DestFromURL picks the directory a repository is cloned into when the caller
// names none: the last element of the URL with any .git suffix removed.
func DestFromURL(u string) (string, error) {
	u = strings.TrimSuffix(strings.TrimRight(u, "/"), ".git")
	i := strings.LastIndexAny(u, "/:")
	if i == -1 {
		return "", fmt.Errorf("cannot infer directory name from %s", u)
	}
	dir := u[i+1:]
	if dir == "" {
		return "", fmt.Errorf("cannot parse directory name from %s", u)
	}
	if strings.HasPrefix(dir, ".") {
		return "", fmt.Errorf("refusing to clone into hidden directory %s", dir)
	}
	return dir, nil
}

// IsDirectoryEmpty checks if a directory is empty.
func IsDirectoryEmpty(dir string) (bool, error) {
	f, err := os.Open(dir)
	if err != nil {
		return false, err
	}
	defer f.Close()

	_, err = f.Readdir(1)

	if err == io.EOF {
		return true, nil
	}

	return false, err
}
