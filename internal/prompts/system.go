package prompts

import (
	"context"

	"github.com/google/uuid"

	"github.com/meridian-legal/counsel/internal/classify"
	"github.com/meridian-legal/counsel/internal/training"
	"github.com/meridian-legal/counsel/pkg/pagination"
)

// TrainingSource loads training examples for optimization runs.
// Satisfied by the training system.
type TrainingSource interface {
	Load(ctx context.Context, startDate, endDate string) ([]training.Example, error)
}

// System defines the public contract for prompt version operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Version], error)

	Find(ctx context.Context, id uuid.UUID) (*Version, error)
	FindActive(ctx context.Context, task classify.Task) (*Version, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Activate makes a version the active one for its task, atomically
	// deactivating the previously active version.
	Activate(ctx context.Context, id uuid.UUID) (*Version, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*Version, error)

	// Template returns the prompt template classifiers render for a task:
	// the active version's content, or the embedded default when no
	// version is active.
	Template(ctx context.Context, task classify.Task) (string, error)

	// Optimize derives a new inactive version from the validated training
	// examples in the command's date window.
	Optimize(ctx context.Context, cmd OptimizeCommand) (*Version, error)
}
