package wordbank

import (
	"path/filepath"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Registry caches loaded word banks by path. Concurrent first requests for
// the same path share a single load; every later Get returns the same bank.
// Failed loads are not cached, so a missing file can be fixed without a
// restart.
type Registry struct {
	mu     sync.RWMutex
	banks  map[string]*WordBank
	flight singleflight.Group
	load   func(string) (*WordBank, error)
}

// Default is the process-wide registry.
var Default = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{
		banks: make(map[string]*WordBank),
		load:  Load,
	}
}

func (r *Registry) cached(path string) (*WordBank, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	wb, ok := r.banks[path]
	return wb, ok
}

func (r *Registry) Get(path string) (*WordBank, error) {
	if wb, ok := r.cached(path); ok {
		return wb, nil
	}
	result, err, _ := r.flight.Do(path, func() (interface{}, error) {
		// A flight that finished just before this one started has already
		// stored the bank.
		if wb, ok := r.cached(path); ok {
			return wb, nil
		}
		wb, err := r.load(path)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		r.banks[path] = wb
		r.mu.Unlock()
		return wb, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*WordBank), nil
}

// ForLanguage returns the bank stored at <dataPath>/<language>/words.
func (r *Registry) ForLanguage(dataPath, language string) (*WordBank, error) {
	return r.Get(Path(dataPath, language))
}

// Path is where the word file for language lives under dataPath.
func Path(dataPath, language string) string {
	return filepath.Join(dataPath, language, "words")
}
