package mirrors

import (
	"os"
	"path/filepath"
	"testing"
)

var oyml = `
repos:
- original: github.com/Masterminds/semver
  repo: file:///path/to/local/repo
  vcs: git
- original: github.com/Masterminds/atest
  repo: github.com/example/atest
`

var ooutyml = `repos:
- original: github.com/Masterminds/atest
  repo: github.com/example/atest
- original: github.com/Masterminds/semver
  repo: file:///path/to/local/repo
  vcs: git
`

func TestSortMirrors(t *testing.T) {
	ov, err := FromYaml([]byte(oyml))
	if err != nil {
		t.Error("Unable to read mirrors yaml")
	}

	out, err := ov.Marshal()
	if err != nil {
		t.Error("Unable to marshal mirrors yaml")
	}

	if string(out) != ooutyml {
		t.Error("Output mirrors sorting failed")
	}
}

func TestAddMirror(t *testing.T) {
	ov, err := FromYaml([]byte(oyml))
	if err != nil {
		t.Fatal("Unable to read mirrors yaml")
	}

	ov.Add(&MirrorRepo{Original: "github.com/Masterminds/atest", Repo: "https://mirror/atest", Vcs: "hg"})
	ov.Add(&MirrorRepo{Original: "github.com/Masterminds/vcs", Repo: "https://mirror/vcs"})

	if len(ov.Repos) != 3 {
		t.Fatalf("Expected 3 mirrors, got %d", len(ov.Repos))
	}
	tb := New(ov.Repos)
	found, repo, vcs := tb.Get("github.com/Masterminds/atest")
	if !found || repo != "https://mirror/atest" || vcs != "hg" {
		t.Errorf("Existing mirror not replaced: %t %s %s", found, repo, vcs)
	}
}

func TestTable(t *testing.T) {
	ov, err := FromYaml([]byte(oyml))
	if err != nil {
		t.Fatal("Unable to read mirrors yaml")
	}
	tb := New(ov.Repos)

	if tb.Len() != 2 {
		t.Errorf("Expected 2 mirrors, got %d", tb.Len())
	}

	found, repo, vcs := tb.Get("github.com/Masterminds/semver")
	if !found || repo != "file:///path/to/local/repo" || vcs != "git" {
		t.Errorf("Unexpected mirror: %t %s %s", found, repo, vcs)
	}

	if found, _, _ := tb.Get("github.com/Masterminds/semver/sub"); found {
		t.Error("Mirror matched a path it does not name")
	}

	var empty *Table
	if found, _, _ := empty.Get("github.com/Masterminds/semver"); found || empty.Len() != 0 {
		t.Error("A nil Table should hold no mirrors")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "mirrors.yaml")

	tb, err := Load(p)
	if err != nil {
		t.Fatalf("Missing file should not be an error: %s", err)
	}
	if tb.Len() != 0 {
		t.Error("Expected an empty table for a missing file")
	}

	ov, _ := FromYaml([]byte(oyml))
	if err := ov.WriteFile(p); err != nil {
		t.Fatal(err)
	}
	tb, err = Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if tb.Len() != 2 {
		t.Errorf("Expected 2 mirrors from file, got %d", tb.Len())
	}

	if err := os.WriteFile(p, []byte("repos: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(p); err == nil {
		t.Error("Expected an error for an invalid mirrors file")
	}
}
