package memory

import (
	"cmp"
	"context"
	"slices"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"

	"github.com/hashicorp/go-memdb"
)

// LoadRepository implements ports.LoadRepository on the memory store.
type LoadRepository struct {
	conn
}

func (r *LoadRepository) Add(ctx context.Context, aggregate *load.Load) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.write(func(txn *memdb.Txn) error {
		existing, err := txn.First(loadsTable, "id", aggregate.ID().String())
		if err != nil {
			return err
		}
		if existing != nil {
			return errs.NewConflictError("load", aggregate.ID().String())
		}
		return txn.Insert(loadsTable, newLoadRecord(aggregate))
	})
}

// Update replaces the stored record when its version equals aggregate.Version()
// and advances the version on success.
func (r *LoadRepository) Update(ctx context.Context, aggregate *load.Load) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	err := r.write(func(txn *memdb.Txn) error {
		stored, err := r.first(txn, aggregate.ID())
		if err != nil {
			return err
		}
		if stored.Version != aggregate.Version() {
			return errs.NewConflictErrorWithCause("load", aggregate.ID().String(), errs.ErrConcurrentModification)
		}

		record := newLoadRecord(aggregate)
		record.Version = aggregate.Version() + 1
		return txn.Insert(loadsTable, record)
	})
	if err != nil {
		return err
	}

	aggregate.AdvanceVersion()
	return nil
}

func (r *LoadRepository) Get(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	record, err := r.first(r.read(), id)
	if err != nil {
		return nil, err
	}
	return record.restore()
}

func (r *LoadRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := id.Validate(); err != nil {
		return err
	}

	return r.write(func(txn *memdb.Txn) error {
		record, err := r.first(txn, id)
		if err != nil {
			return err
		}
		return txn.Delete(loadsTable, record)
	})
}

// Find narrows by the shipper index when it can and applies the rest of the
// filter with load.Filter.Matches.
func (r *LoadRepository) Find(ctx context.Context, filter load.Filter) ([]*load.Load, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		it  memdb.ResultIterator
		err error
	)
	txn := r.read()
	if filter.ShipperID != "" {
		it, err = txn.Get(loadsTable, "shipper_id", filter.ShipperID)
	} else {
		it, err = txn.Get(loadsTable, "id")
	}
	if err != nil {
		return nil, err
	}

	loads := make([]*load.Load, 0)
	for obj := it.Next(); obj != nil; obj = it.Next() {
		l, err := obj.(*loadRecord).restore()
		if err != nil {
			return nil, err
		}
		if filter.Matches(l) {
			loads = append(loads, l)
		}
	}

	slices.SortFunc(loads, func(a, b *load.Load) int {
		if c := a.DatePosted().Compare(b.DatePosted()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID().String(), b.ID().String())
	})
	return loads, nil
}

func (r *LoadRepository) CountByStatus(ctx context.Context) (map[load.Status]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	it, err := r.read().Get(loadsTable, "id")
	if err != nil {
		return nil, err
	}

	counts := make(map[load.Status]int64)
	for obj := it.Next(); obj != nil; obj = it.Next() {
		counts[load.Status(obj.(*loadRecord).Status)]++
	}
	return counts, nil
}

func (r *LoadRepository) first(txn *memdb.Txn, id kernel.UUID) (*loadRecord, error) {
	obj, err := txn.First(loadsTable, "id", id.String())
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errs.NewObjectNotFoundError("load", id.String())
	}
	return obj.(*loadRecord), nil
}
