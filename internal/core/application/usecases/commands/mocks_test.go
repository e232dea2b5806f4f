package commands_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/booking"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/ports"

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

type MockTx struct{ mock.Mock }

func (m *MockTx) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockTx) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockTx) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

type MockUoW struct{ MockTx }

func (m *MockUoW) LoadRepository() ports.LoadRepository {
	return m.Called().Get(0).(ports.LoadRepository)
}
func (m *MockUoW) BookingRepository() ports.BookingRepository {
	return m.Called().Get(0).(ports.BookingRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockLoadUoW struct{ MockTx }

func (m *MockLoadUoW) LoadRepository() ports.LoadRepository {
	return m.Called().Get(0).(ports.LoadRepository)
}

type MockLoadUoWFactory struct{ mock.Mock }

func (m *MockLoadUoWFactory) Create() commands.LoadUoW {
	return m.Called().Get(0).(commands.LoadUoW)
}

type MockBookingUoW struct{ MockTx }

func (m *MockBookingUoW) BookingRepository() ports.BookingRepository {
	return m.Called().Get(0).(ports.BookingRepository)
}

type MockBookingUoWFactory struct{ mock.Mock }

func (m *MockBookingUoWFactory) Create() commands.BookingUoW {
	return m.Called().Get(0).(commands.BookingUoW)
}

var (
	now           = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	loadingDate   = now.Add(24 * time.Hour)
	unloadingDate = now.Add(72 * time.Hour)
)

func validLoadFields() commands.LoadFields {
	return commands.LoadFields{
		ShipperID:      "S1",
		LoadingPoint:   "Pune",
		UnloadingPoint: "Delhi",
		LoadingDate:    loadingDate,
		UnloadingDate:  unloadingDate,
		ProductType:    "steel",
		TruckType:      "FLATBED",
		NoOfTrucks:     2,
		Weight:         500,
	}
}

func newStoredLoad(t *testing.T, status load.Status) *load.Load {
	t.Helper()
	facility, err := load.NewFacility("Pune", "Delhi", loadingDate, unloadingDate)
	require.NoError(t, err)
	l, err := load.RestoreLoad(kernel.NewUUID(), load.Details{
		ShipperID:   "S1",
		Facility:    facility,
		ProductType: "steel",
		TruckType:   "FLATBED",
		NoOfTrucks:  2,
		Weight:      500,
		DatePosted:  now.Add(-time.Hour),
	}, status, 3)
	require.NoError(t, err)
	return l
}

func newStoredBooking(t *testing.T, loadID kernel.UUID) *booking.Booking {
	t.Helper()
	b, err := booking.RestoreBooking(kernel.NewUUID(), loadID,
		booking.Terms{TransporterID: "T1", ProposedRate: 1000}, booking.Pending, now)
	require.NoError(t, err)
	return b
}
