/* ==================================================================================== *\
     safeset.go

     A mutex-protected accumulator for concurrent descriptor loading,
     adapted from the teacher's SafeSet (safeset.go): same map-behind-a-
     mutex shape, narrowed from a generic string-keyed any-value set down
     to the one thing LoadDir's pool workers need to hand back --
     a loadResult per file, keyed by path.
\* ==================================================================================== */

package config

import (
	"sync"

	"github.com/Emeline-1/zonefield/zone"
)

// loadResult pairs a parsed descriptor with the priority key carried in its
// file (original_id, if present) so LoadDir can restore a deterministic
// order after the concurrent fan-out in LoadDir.
type loadResult struct {
	path       string
	descriptor zone.Descriptor
	originalID *int
}

// safeResults is a SafeSet narrowed to this one job: collect a loadResult
// or a load error per file, from however many pool workers are running
// concurrently.
type safeResults struct {
	mux     sync.Mutex
	results map[string]loadResult
	errs    map[string]error
}

func newSafeResults() *safeResults {
	return &safeResults{
		results: make(map[string]loadResult),
		errs:    make(map[string]error),
	}
}

func (s *safeResults) add(path string, r loadResult) {
	s.mux.Lock()
	s.results[path] = r
	s.mux.Unlock()
}

func (s *safeResults) fail(path string, err error) {
	s.mux.Lock()
	s.errs[path] = err
	s.mux.Unlock()
}

// drain returns every recorded result and error; safe to call once the
// pool has fully drained.
func (s *safeResults) drain() ([]loadResult, []error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	results := make([]loadResult, 0, len(s.results))
	for _, r := range s.results {
		results = append(results, r)
	}
	errs := make([]error, 0, len(s.errs))
	for _, e := range s.errs {
		errs = append(errs, e)
	}
	return results, errs
}
