package repo

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/Masterminds/vcsimport/command"
	"github.com/Masterminds/vcsimport/host"
	"github.com/Masterminds/vcsimport/importer"
)

// recorder is a Command that records its calls instead of running a tool.
type recorder struct {
	sync.Mutex
	name      string
	calls     [][]string
	tags      []string
	reachable map[string]bool
}

func newRecorder(name string) *recorder {
	return &recorder{name: name, reachable: map[string]bool{}}
}

func (f *recorder) record(call ...string) {
	f.Lock()
	f.calls = append(f.calls, call)
	f.Unlock()
}

func (f *recorder) Name() string { return f.name }

func (f *recorder) Clone(url, dest string, args ...string) ([]byte, error) {
	f.record(append([]string{"clone", url, dest}, args...)...)
	return []byte("cloned"), nil
}

func (f *recorder) Update(dest string, args ...string) ([]byte, error) {
	f.record(append([]string{"update", dest}, args...)...)
	return []byte("updated"), nil
}

func (f *recorder) TagList(dest string) ([]string, error) {
	f.record("tags", dest)
	return f.tags, nil
}

func (f *recorder) Ping(url string) bool {
	f.record("ping", url)
	return f.reachable[url]
}

func (f *recorder) Init(dir string) error           { f.record("init", dir); return nil }
func (f *recorder) Add(file, dir string) error       { f.record("add", file, dir); return nil }
func (f *recorder) Commit(message, dir string) error { f.record("commit", message, dir); return nil }

const sampleRepo = "github.com/dghubble/pyrepo"

func TestNewCommandAndURL(t *testing.T) {
	c := newRecorder("git")
	u := "https://github.com/dghubble/pyrepo"

	// An importer without hosts fails any resolution, proving none happens.
	empty := importer.New([]*host.Host{}, nil)

	r, err := New(Options{Command: c, URL: u, Importer: empty})
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if r.Command() != c {
		t.Error("Command was not kept")
	}
	if r.URL() != u {
		t.Errorf("Expected url %s, got %s", u, r.URL())
	}
	if r.ImportPath() != "" {
		t.Errorf("Expected no import path, got %s", r.ImportPath())
	}

	r, err = New(Options{Command: c, URL: u, ImportPath: "not resolved://", Importer: empty})
	if err != nil {
		t.Fatalf("Import path was resolved despite command and url: %s", err)
	}
	if r.ImportPath() != "not resolved://" {
		t.Error("Explicit import path was not kept")
	}
}

func TestNewImportPath(t *testing.T) {
	r, err := New(Options{ImportPath: sampleRepo})
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if r.Command() != command.Git {
		t.Errorf("Expected the git command, got %s", r.Command().Name())
	}
	if r.URL() != "https://github.com/dghubble/pyrepo" {
		t.Errorf("Unexpected url %s", r.URL())
	}
	if r.ImportPath() != sampleRepo {
		t.Errorf("Expected import path %s, got %s", sampleRepo, r.ImportPath())
	}
}

func TestNewPreferCommand(t *testing.T) {
	r, err := New(Options{Command: command.Hg, ImportPath: sampleRepo})
	if err != nil {
		t.Fatal(err)
	}
	if r.Command() != command.Hg {
		t.Errorf("Expected the given command, got %s", r.Command().Name())
	}
	if r.URL() != "https://github.com/dghubble/pyrepo" {
		t.Errorf("Expected the resolved url, got %s", r.URL())
	}
}

func TestNewPreferURL(t *testing.T) {
	u := "https://preferred_url"
	r, err := New(Options{URL: u, ImportPath: sampleRepo})
	if err != nil {
		t.Fatal(err)
	}
	if r.URL() != u {
		t.Errorf("Expected the given url, got %s", r.URL())
	}
	if r.Command() != command.Git {
		t.Errorf("Expected the resolved command, got %s", r.Command().Name())
	}
}

func TestNewInvalidImportPath(t *testing.T) {
	paths := []string{
		"://invalid_path",
		"gggiiitthub.com/",
		"github.com/missingproj",
		"github.com/missingproj/",
		"bitbucket.org/missingproj",
		"bitbucket.org/missingproj/",
	}
	for _, p := range paths {
		r, err := New(Options{ImportPath: p})
		if r != nil {
			t.Errorf("Repository returned for invalid path %s", p)
		}
		var ipe *importer.ImportPathError
		if !errors.As(err, &ipe) {
			t.Errorf("Expected an ImportPathError for %s, got %v", p, err)
		}
	}
}

func TestNewMissingArgs(t *testing.T) {
	tests := []Options{
		{},
		{Command: command.Git},
		{URL: "https://github.com/dghubble/pyrepo"},
	}
	for _, o := range tests {
		r, err := New(o)
		if r != nil {
			t.Errorf("Repository returned for %+v", o)
		}
		if err != ErrMissingArgs {
			t.Errorf("Expected ErrMissingArgs for %+v, got %v", o, err)
		}
		var ipe *importer.ImportPathError
		if errors.As(err, &ipe) {
			t.Errorf("Missing arguments reported as an ImportPathError for %+v", o)
		}
	}
}

func TestNewCustomImporter(t *testing.T) {
	hg := newRecorder("hg")
	i := importer.New(nil, []command.Command{hg})
	r, err := New(Options{ImportPath: "example.com/foo/bar.hg", Importer: i})
	if err != nil {
		t.Fatal(err)
	}
	if r.Command() != hg {
		t.Error("Custom importer was not used")
	}
}

func TestDelegation(t *testing.T) {
	c := newRecorder("git")
	c.reachable["https://example.com/repo"] = true
	r, err := New(Options{Command: c, URL: "https://example.com/repo"})
	if err != nil {
		t.Fatal(err)
	}

	if out, err := r.Clone("/tmp/dest", "--depth", "1"); err != nil || string(out) != "cloned" {
		t.Errorf("Unexpected clone result %q %v", out, err)
	}
	if out, err := r.Update("/tmp/dest", "--ff-only"); err != nil || string(out) != "updated" {
		t.Errorf("Unexpected update result %q %v", out, err)
	}
	if _, err := r.TagList("/tmp/dest"); err != nil {
		t.Error(err)
	}
	if !r.Ping() {
		t.Error("Expected ping to succeed")
	}

	want := [][]string{
		{"clone", "https://example.com/repo", "/tmp/dest", "--depth", "1"},
		{"update", "/tmp/dest", "--ff-only"},
		{"tags", "/tmp/dest"},
		{"ping", "https://example.com/repo"},
	}
	if !reflect.DeepEqual(c.calls, want) {
		t.Errorf("Unexpected calls\n got: %v\nwant: %v", c.calls, want)
	}
}

func TestSemverTags(t *testing.T) {
	c := newRecorder("git")
	c.tags = []string{"v0.0.2", "master", "v1.2.0", "1.10.1", "release-x", "v1.3.0"}
	r, _ := New(Options{Command: c, URL: "https://example.com/repo"})

	sv, err := r.SemverTags("dest")
	if err != nil {
		t.Fatal(err)
	}
	got := []string{}
	for _, v := range sv {
		got = append(got, v.Original())
	}
	want := []string{"1.10.1", "v1.3.0", "v1.2.0", "v0.0.2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	tests := map[string]string{
		"^1.2":   "1.10.1",
		"~1.2":   "v1.2.0",
		"<1.0":   "v0.0.2",
		">= 1.0": "1.10.1",
		"1.2.0":  "v1.2.0",
	}
	for cons, want := range tests {
		got, err := r.LatestTag("dest", cons)
		if err != nil {
			t.Errorf("Unexpected error for %s: %s", cons, err)
			continue
		}
		if got != want {
			t.Errorf("LatestTag(%s) = %s, expected %s", cons, got, want)
		}
	}

	if _, err := r.LatestTag("dest", ">5"); err == nil || !strings.Contains(err.Error(), "no tag") {
		t.Errorf("Expected a no tag error, got %v", err)
	}
	if _, err := r.LatestTag("dest", "not a constraint"); err == nil {
		t.Error("Expected an error for an invalid constraint")
	}
}

func TestConcurrentPing(t *testing.T) {
	c := newRecorder("git")
	c.reachable["https://example.com/up"] = true

	var repos []*Repository
	for _, u := range []string{"https://example.com/up", "https://example.com/down", "https://example.com/up"} {
		r, err := New(Options{Command: c, URL: u})
		if err != nil {
			t.Fatal(err)
		}
		repos = append(repos, r)
	}

	err := ConcurrentPing(repos)
	if err == nil {
		t.Fatal("Expected an error for the unreachable repository")
	}
	if !strings.Contains(err.Error(), "https://example.com/down") {
		t.Errorf("Error does not name the unreachable repository: %s", err)
	}
	if strings.Contains(err.Error(), "https://example.com/up") {
		t.Errorf("Error names a reachable repository: %s", err)
	}
	if len(c.calls) != 2 {
		t.Errorf("Expected each remote to be pinged once, got %v", c.calls)
	}

	if err := ConcurrentPing(repos[:1]); err != nil {
		t.Errorf("Unexpected error: %s", err)
	}
}
