package ports

import (
	"context"

	"github.com/receptionhq/queue-calling/internal/core/domain"
)

// StateRepository is the dumb persisted value behind the queue state: atomic
// get and set of the singleton document, no validation.
type StateRepository interface {
	// Get returns the stored document, or a fresh default when none exists.
	Get(ctx context.Context) (*domain.QueueState, error)
	Put(ctx context.Context, state *domain.QueueState) error
}
