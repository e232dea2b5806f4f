package queries_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/core/domain/model/booking"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLoadRepository struct{ mock.Mock }

func (m *MockLoadRepository) Add(ctx context.Context, l *load.Load) error {
	return m.Called(ctx, l).Error(0)
}
func (m *MockLoadRepository) Update(ctx context.Context, l *load.Load) error {
	return m.Called(ctx, l).Error(0)
}
func (m *MockLoadRepository) Get(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).(*load.Load)
	return l, args.Error(1)
}
func (m *MockLoadRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockLoadRepository) Find(ctx context.Context, f load.Filter) ([]*load.Load, error) {
	args := m.Called(ctx, f)
	loads, _ := args.Get(0).([]*load.Load)
	return loads, args.Error(1)
}
func (m *MockLoadRepository) CountByStatus(ctx context.Context) (map[load.Status]int64, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(map[load.Status]int64)
	return counts, args.Error(1)
}

type MockBookingRepository struct{ mock.Mock }

func (m *MockBookingRepository) Add(ctx context.Context, b *booking.Booking) error {
	return m.Called(ctx, b).Error(0)
}
func (m *MockBookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	return m.Called(ctx, b).Error(0)
}
func (m *MockBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*booking.Booking)
	return b, args.Error(1)
}
func (m *MockBookingRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockBookingRepository) ExistsForLoad(ctx context.Context, loadID kernel.UUID) (bool, error) {
	args := m.Called(ctx, loadID)
	return args.Bool(0), args.Error(1)
}
func (m *MockBookingRepository) Find(ctx context.Context, f booking.Filter) ([]*booking.Booking, error) {
	args := m.Called(ctx, f)
	bookings, _ := args.Get(0).([]*booking.Booking)
	return bookings, args.Error(1)
}
func (m *MockBookingRepository) CountByStatus(ctx context.Context) (map[booking.Status]int64, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(map[booking.Status]int64)
	return counts, args.Error(1)
}

var postedAt = time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)

func newLoad(t *testing.T, shipperID string, status load.Status) *load.Load {
	t.Helper()
	facility, err := load.NewFacility("Pune", "Delhi", postedAt.Add(24*time.Hour), postedAt.Add(72*time.Hour))
	require.NoError(t, err)
	l, err := load.RestoreLoad(kernel.NewUUID(), load.Details{
		ShipperID:   shipperID,
		Facility:    facility,
		ProductType: "steel",
		TruckType:   "FLATBED",
		NoOfTrucks:  2,
		Weight:      500,
		Comment:     "top load only",
		DatePosted:  postedAt,
	}, status, 2)
	require.NoError(t, err)
	return l
}
