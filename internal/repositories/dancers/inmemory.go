package dancers

import (
	"context"
	"sync"

	"github.com/KirkDiggler/dance-battle/internal/errors"
	"github.com/KirkDiggler/dance-battle/internal/progression"
)

// InMemoryRepository implements Repository using in-memory storage.
// Dancers are stored by reference; callers share the live Character.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*progression.Character
	order []string
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*progression.Character),
	}
}

// Create adds a dancer
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Dancer == nil {
		return nil, errors.InvalidArgument("dancer is required")
	}

	id := input.Dancer.ID()
	if id == "" {
		return nil, errors.InvalidArgument("dancer ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[id]; exists {
		return nil, errors.AlreadyExists("dancer already exists").WithMeta("dancer_id", id)
	}

	r.store[id] = input.Dancer
	r.order = append(r.order, id)

	return &CreateOutput{Dancer: input.Dancer}, nil
}

// Get retrieves a dancer by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("dancer ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	dancer, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("dancer %s not found", input.ID)
	}

	return &GetOutput{Dancer: dancer}, nil
}

// List returns every dancer in creation order
func (r *InMemoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dancers := make([]*progression.Character, 0, len(r.order))
	for _, id := range r.order {
		dancers = append(dancers, r.store[id])
	}

	return &ListOutput{Dancers: dancers}, nil
}

// Delete removes a dancer
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("dancer ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("dancer %s not found", input.ID)
	}

	delete(r.store, input.ID)
	for i, id := range r.order {
		if id == input.ID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return &DeleteOutput{}, nil
}
