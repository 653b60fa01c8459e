// Package dancers provides the roster of dancers for the lifetime of a process
package dancers

//go:generate mockgen -destination=mock/mock_repository.go -package=dancersmock github.com/KirkDiggler/dance-battle/internal/repositories/dancers Repository

import (
	"context"

	"github.com/KirkDiggler/dance-battle/internal/progression"
)

// Repository defines the interface for the dancer roster
type Repository interface {
	// Create adds a dancer to the roster
	// Returns errors.InvalidArgument for a nil dancer or empty ID
	// Returns errors.AlreadyExists if a dancer with the same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a dancer by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the dancer doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns every dancer in the order they were created
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes a dancer by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the dancer doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for adding a dancer
type CreateInput struct {
	Dancer *progression.Character
}

// CreateOutput defines the output for adding a dancer
type CreateOutput struct {
	Dancer *progression.Character
}

// GetInput defines the input for getting a dancer
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a dancer
type GetOutput struct {
	Dancer *progression.Character
}

// ListInput defines the input for listing dancers
type ListInput struct{}

// ListOutput defines the output for listing dancers
type ListOutput struct {
	Dancers []*progression.Character
}

// DeleteInput defines the input for removing a dancer
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for removing a dancer
type DeleteOutput struct{}
