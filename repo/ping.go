package repo

import (
	"sync"

	"github.com/Masterminds/vcsimport/msg"
	"github.com/codegangsta/cli"
	"github.com/pkg/errors"
)

// ConcurrentPing pings the repositories with a pool of workers. A remote
// shared by several repositories is pinged once. The returned error lists
// every unreachable repository.
func ConcurrentPing(repos []*Repository) error {
	done := make(chan struct{}, concurrentWorkers)
	in := make(chan *Repository, concurrentWorkers)
	var wg sync.WaitGroup
	var lock sync.Mutex
	var returnErr error
	seen := NewTracker()

	for ii := 0; ii < concurrentWorkers; ii++ {
		go func(ch <-chan *Repository) {
			for {
				select {
				case r := <-ch:
					if r.Ping() {
						msg.Info("--> %s is reachable at %s", r.name(), r.url)
					} else {
						err := errors.Errorf("%s is not reachable at %s with %s", r.name(), r.url, r.cmd.Name())
						// Capture the error while making sure the concurrent
						// operations don't step on each other.
						lock.Lock()
						if returnErr == nil {
							returnErr = err
						} else {
							returnErr = cli.NewMultiError(returnErr, err)
						}
						lock.Unlock()
					}
					wg.Done()
				case <-done:
					return
				}
			}
		}(in)
	}

	for _, r := range repos {
		if seen.CheckAndAdd(r.url) {
			msg.Debug("%s was already pinged, skipping.", r.url)
			continue
		}
		wg.Add(1)
		in <- r
	}

	wg.Wait()

	// Close the workers.
	for ii := 0; ii < concurrentWorkers; ii++ {
		done <- struct{}{}
	}

	return returnErr
}

// name is how messages refer to the repository.
func (r *Repository) name() string {
	if r.importPath != "" {
		return r.importPath
	}
	return r.url
}
