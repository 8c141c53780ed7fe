package catalog

import (
	"context"
	"sync"
)

// Repository provides read-only access to the catalog rows for one export run.
type Repository interface {
	// Categories returns all category rows ordered by (parent_id, position).
	Categories(ctx context.Context) ([]Category, error)
	// Items returns all product rows with their pre-joined ancestor names.
	Items(ctx context.Context) ([]Item, error)
}

// InMemoryRepository is a simple in-memory implementation useful for tests and
// local runs without a database.
type InMemoryRepository struct {
	mu         sync.RWMutex
	categories []Category
	items      []Item
}

func NewInMemoryRepository(categories []Category, items []Item) *InMemoryRepository {
	return &InMemoryRepository{categories: categories, items: items}
}

func (r *InMemoryRepository) Categories(ctx context.Context) ([]Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *InMemoryRepository) Items(ctx context.Context) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Item, len(r.items))
	copy(out, r.items)
	return out, nil
}
