// Package registry provides a generic, thread-safe registry keyed by any
// comparable type. Items are usually added from init() functions with
// MustRegister and listed back in key order.
package registry

import (
	"fmt"
	"slices"
	"sync"

	"github.com/arthur-debert/aoc/pkg/errors"
)

// Registry stores items by key
type Registry[K comparable, T any] interface {
	// Register adds an item; the key must be non-zero and unused
	Register(key K, item T) error

	// Get retrieves an item
	Get(key K) (T, error)

	// Has checks if a key is registered
	Has(key K) bool

	// Keys returns all registered keys in order
	Keys() []K

	// Items returns all registered items in key order
	Items() []T

	// Count returns the number of registered items
	Count() int
}

type registry[K comparable, T any] struct {
	mu      sync.RWMutex
	items   map[K]T
	compare func(a, b K) int
}

// New creates a Registry whose listings are ordered by compare
func New[K comparable, T any](compare func(a, b K) int) Registry[K, T] {
	return &registry[K, T]{
		items:   make(map[K]T),
		compare: compare,
	}
}

func (r *registry[K, T]) Register(key K, item T) error {
	var zero K
	if key == zero {
		return errors.New(errors.ErrInvalidInput, "registry key cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[key]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "'%v' is already registered", key)
	}

	r.items[key] = item
	return nil
}

func (r *registry[K, T]) Get(key K) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[key]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "'%v' not found in registry", key)
	}

	return item, nil
}

func (r *registry[K, T]) Has(key K) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.items[key]
	return exists
}

func (r *registry[K, T]) Keys() []K {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]K, 0, len(r.items))
	for key := range r.items {
		keys = append(keys, key)
	}

	slices.SortFunc(keys, r.compare)
	return keys
}

func (r *registry[K, T]) Items() []T {
	keys := r.Keys()

	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]T, 0, len(keys))
	for _, key := range keys {
		if item, ok := r.items[key]; ok {
			items = append(items, item)
		}
	}
	return items
}

func (r *registry[K, T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// MustRegister registers an item and panics if registration fails.
// Registration errors in init() functions are programming errors.
func MustRegister[K comparable, T any](reg Registry[K, T], key K, item T) {
	if err := reg.Register(key, item); err != nil {
		panic(fmt.Sprintf("failed to register %v: %v", key, err))
	}
}
