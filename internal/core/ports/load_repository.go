// Package ports defines the contracts between the freight core and its adapters.
// Repositories, the unit of work and the clock are implemented by the
// postgres and memory adapters and injected into the use case handlers.
package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
)

// LoadRepository defines the persistence contract for Load aggregates.
type LoadRepository interface {
	// Add persists a new load. The load must be valid and its ID unused.
	Add(ctx context.Context, aggregate *load.Load) error

	// Update persists changes to an existing load with a compare-and-swap on
	// its version. When the stored version differs from aggregate.Version()
	// the write is refused with an errs.ConflictError wrapping
	// errs.ErrConcurrentModification. On success the aggregate's version is
	// advanced to match storage.
	Update(ctx context.Context, aggregate *load.Load) error

	// Get retrieves a load by ID. Returns errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*load.Load, error)

	// Delete removes a load by ID. Returns errs.ObjectNotFoundError when absent.
	Delete(ctx context.Context, id kernel.UUID) error

	// Find returns every load matching the filter, ordered by datePosted then
	// ID. The zero Filter lists all loads.
	//
	// Example:
	//   loads, err := repo.Find(ctx, load.Filter{TruckType: "FLATBED", Status: load.Posted})
	//   if err != nil {
	//       return fmt.Errorf("failed to list loads: %w", err)
	//   }
	Find(ctx context.Context, filter load.Filter) ([]*load.Load, error)

	// CountByStatus returns the number of loads per status. Statuses with no
	// loads are absent from the map.
	CountByStatus(ctx context.Context) (map[load.Status]int64, error)
}
