package layer

import (
	"fmt"
	"sync"
)

// Registry holds the closed set of analysis layers, keyed by number.
// Unlike an open plugin registry, registration outside 1-8 is rejected:
// the layer set and its ordering are fixed domain knowledge.
type Registry struct {
	mu       sync.RWMutex
	byNumber map[int]Layer
}

// NewRegistry creates an empty layer registry.
func NewRegistry() *Registry {
	return &Registry{byNumber: make(map[int]Layer)}
}

// Register adds a layer to the registry. A layer with the same number
// replaces the previous registration. Numbers outside 1-8 panic: that is
// a programming error, not an input error.
func (r *Registry) Register(l Layer) {
	n := l.Number()
	if n < 1 || n > 8 {
		panic(fmt.Sprintf("layer number %d outside fixed range 1-8", n))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byNumber[n] = l
}

// Get retrieves a layer by number.
func (r *Registry) Get(number int) (Layer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.byNumber[number]
	return l, ok
}

// Layers returns all registered layers in ascending numeric order.
func (r *Registry) Layers() []Layer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Layer, 0, len(r.byNumber))
	for n := 1; n <= 8; n++ {
		if l, ok := r.byNumber[n]; ok {
			result = append(result, l)
		}
	}
	return result
}

// Numbers returns the registered layer numbers in ascending order.
func (r *Registry) Numbers() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]int, 0, len(r.byNumber))
	for n := 1; n <= 8; n++ {
		if _, ok := r.byNumber[n]; ok {
			result = append(result, n)
		}
	}
	return result
}

// DefaultRegistry is the global registry for the built-in layers.
// Layers register themselves during init().
//
//nolint:gochecknoglobals // Global registry is intentional for layer registration
var DefaultRegistry = NewRegistry()
