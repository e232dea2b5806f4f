package memory

import (
	"cmp"
	"context"
	"slices"

	"freight/internal/core/domain/model/booking"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"

	"github.com/hashicorp/go-memdb"
)

// BookingRepository implements ports.BookingRepository on the memory store.
type BookingRepository struct {
	conn
}

func (r *BookingRepository) Add(ctx context.Context, aggregate *booking.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.write(func(txn *memdb.Txn) error {
		existing, err := txn.First(bookingsTable, "id", aggregate.ID().String())
		if err != nil {
			return err
		}
		if existing != nil {
			return errs.NewConflictError("booking", aggregate.ID().String())
		}
		return txn.Insert(bookingsTable, newBookingRecord(aggregate))
	})
}

func (r *BookingRepository) Update(ctx context.Context, aggregate *booking.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.write(func(txn *memdb.Txn) error {
		if _, err := r.first(txn, aggregate.ID()); err != nil {
			return err
		}
		return txn.Insert(bookingsTable, newBookingRecord(aggregate))
	})
}

func (r *BookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
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

func (r *BookingRepository) Delete(ctx context.Context, id kernel.UUID) error {
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
		return txn.Delete(bookingsTable, record)
	})
}

func (r *BookingRepository) ExistsForLoad(ctx context.Context, loadID kernel.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	obj, err := r.read().First(bookingsTable, "load_id", loadID.String())
	if err != nil {
		return false, err
	}
	return obj != nil, nil
}

// Find resolves each candidate's load in the same snapshot when the filter
// names a shipper.
func (r *BookingRepository) Find(ctx context.Context, filter booking.Filter) ([]*booking.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		it  memdb.ResultIterator
		err error
	)
	txn := r.read()
	if filter.TransporterID != "" {
		it, err = txn.Get(bookingsTable, "transporter_id", filter.TransporterID)
	} else {
		it, err = txn.Get(bookingsTable, "id")
	}
	if err != nil {
		return nil, err
	}

	loads := LoadRepository{conn{db: r.db, txn: txn}}
	bookings := make([]*booking.Booking, 0)
	for obj := it.Next(); obj != nil; obj = it.Next() {
		b, err := obj.(*bookingRecord).restore()
		if err != nil {
			return nil, err
		}

		var ref *load.Load
		if filter.ShipperID != "" {
			record, err := loads.first(txn, b.LoadID())
			if err == nil {
				if ref, err = record.restore(); err != nil {
					return nil, err
				}
			}
		}

		if filter.Matches(b, ref) {
			bookings = append(bookings, b)
		}
	}

	slices.SortFunc(bookings, func(a, b *booking.Booking) int {
		if c := a.RequestedAt().Compare(b.RequestedAt()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID().String(), b.ID().String())
	})
	return bookings, nil
}

func (r *BookingRepository) CountByStatus(ctx context.Context) (map[booking.Status]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	it, err := r.read().Get(bookingsTable, "id")
	if err != nil {
		return nil, err
	}

	counts := make(map[booking.Status]int64)
	for obj := it.Next(); obj != nil; obj = it.Next() {
		counts[booking.Status(obj.(*bookingRecord).Status)]++
	}
	return counts, nil
}

func (r *BookingRepository) first(txn *memdb.Txn, id kernel.UUID) (*bookingRecord, error) {
	obj, err := txn.First(bookingsTable, "id", id.String())
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errs.NewObjectNotFoundError("booking", id.String())
	}
	return obj.(*bookingRecord), nil
}
