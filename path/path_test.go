package path

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHome(t *testing.T) {
	defer SetHome("")

	SetHome("")
	os.Setenv(HomeEnv, "/tmp/vcsimport-home")
	defer os.Unsetenv(HomeEnv)

	if h := Home(); h != "/tmp/vcsimport-home" {
		t.Errorf("Expected home from %s, got %s", HomeEnv, h)
	}
	if c := ConfigFile(); c != filepath.Join("/tmp/vcsimport-home", DefaultConfigFile) {
		t.Errorf("Unexpected config file location %s", c)
	}

	SetHome("/elsewhere")
	if h := Home(); h != "/elsewhere" {
		t.Errorf("SetHome was ignored, got %s", h)
	}
}

func TestDestFromURL(t *testing.T) {
	tests := map[string]string{
		"https://github.com/Masterminds/vcs":     "vcs",
		"https://github.com/Masterminds/vcs.git": "vcs",
		"https://example.com/foo/bar/":           "bar",
		"git@github.com:foo/bar.git":             "bar",
		"git@example.com:bar":                    "bar",
	}
	for u, want := range tests {
		got, err := DestFromURL(u)
		if err != nil {
			t.Errorf("Unexpected error for %s: %s", u, err)
			continue
		}
		if got != want {
			t.Errorf("Expected %s for %s but got %s", want, u, got)
		}
	}

	for _, u := range []string{"nodelimiter", "https://example.com/.hidden", "https://example.com/.git"} {
		if d, err := DestFromURL(u); err == nil {
			t.Errorf("Expected an error for %s, got %s", u, d)
		}
	}
}

func TestIsDirectoryEmpty(t *testing.T) {
	dir := t.TempDir()

	empty, err := IsDirectoryEmpty(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !empty {
		t.Error("New temp dir reported as not empty")
	}

	if err := os.WriteFile(filepath.Join(dir, "f"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	empty, err = IsDirectoryEmpty(dir)
	if err != nil {
		t.Fatal(err)
	}
	if empty {
		t.Error("Dir with a file reported as empty")
	}

	if _, err := IsDirectoryEmpty(filepath.Join(dir, "missing")); err == nil {
		t.Error("Expected an error for a missing directory")
	}
}

func TestMirrors(t *testing.T) {
	defer SetHome("")
	SetHome("/home/x/.vcsimport")
	if m := Mirrors(); m != filepath.Join("/home/x/.vcsimport", MirrorsFile) {
		t.Errorf("Unexpected mirrors location %s", m)
	}
}
