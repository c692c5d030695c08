package repo

import (
	"sync"
)

// Tracker holds a list of all the remotes that have been handled already.
// This is a concurrency safe implementation.
type Tracker struct {
	sync.Mutex

	seen map[string]bool
}

// NewTracker creates a new instance of Tracker ready for use.
func NewTracker() *Tracker {
	u := &Tracker{}
	u.seen = map[string]bool{}
	return u
}

// CheckAndAdd adds name and reports whether it was already on the list.
func (u *Tracker) CheckAndAdd(name string) bool {
	u.Lock()
	defer u.Unlock()
	if u.seen[name] {
		return true
	}
	u.seen[name] = true
	return false
}
