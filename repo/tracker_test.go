package repo

import (
	"sync"
	"testing"
)

func TestTracker(t *testing.T) {
	tr := NewTracker()

	if tr.CheckAndAdd("https://github.com/foo/bar") {
		t.Error("Error, CheckAndAdd reported a new remote as seen")
	}
	if !tr.CheckAndAdd("https://github.com/foo/bar") {
		t.Error("Error, CheckAndAdd did not record the remote")
	}
	if tr.CheckAndAdd("https://github.com/foo/baz") {
		t.Error("Error, CheckAndAdd mixed up two remotes")
	}
}

func TestTrackerConcurrent(t *testing.T) {
	tr := NewTracker()

	var wg sync.WaitGroup
	var lock sync.Mutex
	added := 0
	for ii := 0; ii < 50; ii++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !tr.CheckAndAdd("https://github.com/foo/bar") {
				lock.Lock()
				added++
				lock.Unlock()
			}
		}()
	}
	wg.Wait()

	if added != 1 {
		t.Errorf("Expected the remote to be added once, got %d", added)
	}
}
