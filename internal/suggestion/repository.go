package suggestion

import (
	"context"
	"sync"
)

// Repository stores and lists search-term suggestions.
type Repository interface {
	// Replace truncates the table and inserts the given terms.
	Replace(ctx context.Context, terms []string) error
	// List returns all stored suggestions.
	List(ctx context.Context) ([]Suggestion, error)
}

// InMemoryRepository is a simple in-memory implementation useful for tests.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Suggestion
	nextID  int
}

func NewInMemoryRepository(seed []Suggestion) *InMemoryRepository {
	r := &InMemoryRepository{nextID: 1}
	maxID := 0
	for _, s := range seed {
		r.storage = append(r.storage, s)
		if s.ID > maxID {
			maxID = s.ID
		}
	}
	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) Replace(ctx context.Context, terms []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage = make([]Suggestion, 0, len(terms))
	r.nextID = 1
	seen := make(map[string]bool, len(terms))
	for _, t := range terms {
		if seen[t] {
			continue
		}
		seen[t] = true
		r.storage = append(r.storage, Suggestion{ID: r.nextID, Type: "keyword", Name: t})
		r.nextID++
	}
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Suggestion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Suggestion, len(r.storage))
	copy(out, r.storage)
	return out, nil
}
