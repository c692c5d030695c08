package repo

import (
	"sort"

	"github.com/Masterminds/semver"
	"github.com/pkg/errors"
)

// SemverTags returns the tags of the checkout at dest that are semantic
// versions, newest first. Other tags are left out.
func (r *Repository) SemverTags(dest string) ([]*semver.Version, error) {
	tags, err := r.TagList(dest)
	if err != nil {
		return nil, err
	}
	sv := getSemVers(tags)
	sort.Sort(sort.Reverse(semver.Collection(sv)))
	return sv, nil
}

// LatestTag returns the newest tag of the checkout at dest satisfying
// constraint, as written in the repository.
func (r *Repository) LatestTag(dest, constraint string) (string, error) {
	// Create the constraint first to make sure it's valid before
	// working on the repo.
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return "", errors.Wrapf(err, "invalid constraint %q", constraint)
	}

	sv, err := r.SemverTags(dest)
	if err != nil {
		return "", err
	}
	for _, v := range sv {
		if c.Check(v) {
			return v.Original(), nil
		}
	}
	return "", errors.Errorf("no tag of %s satisfies %s", r.url, constraint)
}

// Filter a list of versions to only included semantic versions.
func getSemVers(refs []string) []*semver.Version {
	sv := []*semver.Version{}
	for _, r := range refs {
		v, err := semver.NewVersion(r)
		if err == nil {
			sv = append(sv, v)
		}
	}

	return sv
}
