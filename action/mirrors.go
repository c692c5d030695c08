package action

import (
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/Masterminds/vcsimport/command"
	"github.com/Masterminds/vcsimport/mirrors"
	"github.com/Masterminds/vcsimport/msg"
	gpath "github.com/Masterminds/vcsimport/path"
)

// noVcs is the prompt choice keeping the resolved command.
const noVcs = "keep"

// MirrorsList displays a list of currently setup mirrors.
func MirrorsList() {
	op := gpath.Mirrors()

	if _, err := os.Stat(op); os.IsNotExist(err) {
		msg.Info("No mirrors exist. No mirrors.yaml file found")
		return
	}

	ov, err := mirrors.ReadMirrorsFile(op)
	if err != nil {
		msg.Die("Unable to read mirrors.yaml file: %s", err)
	}

	if len(ov.Repos) == 0 {
		msg.Info("No mirrors found")
		return
	}

	msg.Info("Mirrors...")
	for _, r := range ov.Repos {
		if r.Vcs == "" {
			msg.Info("--> %s replaced by %s", r.Original, r.Repo)
		} else {
			msg.Info("--> %s replaced by %s (%s)", r.Original, r.Repo, r.Vcs)
		}
	}
}

// MirrorsSet sets a mirror to use. Missing values are prompted for unless
// nonInteract is set.
func MirrorsSet(o, r, v string, nonInteract bool) {
	if !nonInteract {
		o, r, v = askMirror(o, r, v)
	}
	if o == "" || r == "" {
		msg.Die("Both the original and mirror values are required")
	}
	if v != "" {
		if _, ok := command.Lookup(v); !ok {
			msg.Die("Unknown VCS %s", v)
		}
	}

	ov := readOrNewMirrors()
	ov.Add(&mirrors.MirrorRepo{
		Original: o,
		Repo:     r,
		Vcs:      v,
	})
	msg.Info("%s being set to %s", o, r)
	writeMirrors(ov)
}

// MirrorsRemove removes a mirrors setting
func MirrorsRemove(k string) {
	if k == "" {
		msg.Die("The mirror to remove is required")
	}

	op := gpath.Mirrors()
	if _, err := os.Stat(op); os.IsNotExist(err) {
		msg.Die("mirrors.yaml file not found")
	}

	ov, err := mirrors.ReadMirrorsFile(op)
	if err != nil {
		msg.Die("Unable to read mirrors.yaml file: %s", err)
	}

	var nre mirrors.MirrorRepos
	var found bool
	for _, re := range ov.Repos {
		if re.Original != k {
			nre = append(nre, re)
		} else {
			found = true
		}
	}

	if !found {
		msg.Warn("%s was not found in mirrors", k)
		return
	}
	msg.Info("%s was removed from mirrors", k)
	ov.Repos = nre
	writeMirrors(ov)
}

func readOrNewMirrors() *mirrors.Mirrors {
	op := gpath.Mirrors()
	if _, err := os.Stat(op); os.IsNotExist(err) {
		msg.Info("No mirrors.yaml file exists. Creating new one")
		return &mirrors.Mirrors{
			Repos: make(mirrors.MirrorRepos, 0),
		}
	}
	ov, err := mirrors.ReadMirrorsFile(op)
	if err != nil {
		msg.Die("Error reading existing mirrors.yaml file: %s", err)
	}
	return ov
}

func writeMirrors(ov *mirrors.Mirrors) {
	if err := os.MkdirAll(gpath.Home(), 0755); err != nil {
		msg.Die("Unable to create %s: %s", gpath.Home(), err)
	}
	if err := ov.WriteFile(gpath.Mirrors()); err != nil {
		msg.Die("Error writing mirrors.yaml file: %s", err)
	}
	msg.Info("mirrors.yaml written with changes")
}

// askMirror prompts for the values not given on the command line.
func askMirror(o, r, v string) (string, string, string) {
	if o == "" {
		if err := survey.AskOne(&survey.Input{
			Message: "Import path to mirror",
		}, &o, survey.WithValidator(survey.Required)); err != nil {
			msg.Die("Failed to read the import path: %s", err)
		}
	}
	if r == "" {
		if err := survey.AskOne(&survey.Input{
			Message: "URL of the mirror for " + msg.Color(msg.Cyan, o),
		}, &r, survey.WithValidator(survey.Required)); err != nil {
			msg.Die("Failed to read the mirror URL: %s", err)
		}
		if v == "" {
			opts := []string{noVcs}
			for _, c := range command.Builtin() {
				opts = append(opts, c.Name())
			}
			if err := survey.AskOne(&survey.Select{
				Message: "VCS of the mirror",
				Options: opts,
				Default: noVcs,
			}, &v); err != nil {
				msg.Die("Failed to read the mirror VCS: %s", err)
			}
			if v == noVcs {
				v = ""
			}
		}
	}
	return o, r, v
}
