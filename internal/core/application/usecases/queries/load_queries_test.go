package queries_test

import (
	"errors"
	"testing"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLoadQueryHandler_Handle(t *testing.T) {
	t.Run("should project every field", func(t *testing.T) {
		stored := newLoad(t, "S1", load.Booked)
		repo := new(MockLoadRepository)
		repo.On("Get", t.Context(), stored.ID()).Return(stored, nil).Once()
		query, err := queries.NewGetLoadQuery(stored.ID())
		require.NoError(t, err)

		got, err := queries.NewGetLoadQueryHandler(repo).Handle(t.Context(), query)

		require.NoError(t, err)
		assert.True(t, got.ID.IsEqual(stored.ID()))
		assert.Equal(t, "S1", got.ShipperID)
		assert.Equal(t, "Pune", got.Facility.LoadingPoint)
		assert.Equal(t, "Delhi", got.Facility.UnloadingPoint)
		assert.Equal(t, stored.Facility().UnloadingDate(), got.Facility.UnloadingDate)
		assert.Equal(t, "top load only", got.Comment)
		assert.Equal(t, load.Booked, got.Status)
		assert.Equal(t, uint(2), got.Version)
		repo.AssertExpectations(t)
	})

	t.Run("should pass not found through", func(t *testing.T) {
		id := kernel.NewUUID()
		repo := new(MockLoadRepository)
		repo.On("Get", t.Context(), id).Return(nil, errs.NewObjectNotFoundError("loadId", id)).Once()
		query, _ := queries.NewGetLoadQuery(id)

		_, err := queries.NewGetLoadQueryHandler(repo).Handle(t.Context(), query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject unconstructed query", func(t *testing.T) {
		_, err := queries.NewGetLoadQueryHandler(new(MockLoadRepository)).Handle(t.Context(), queries.GetLoadQuery{})

		require.ErrorIs(t, err, queries.ErrGetLoadQueryIsNotConstructed)
	})
}

func TestNewListLoadsQuery(t *testing.T) {
	t.Run("no criteria is the empty filter", func(t *testing.T) {
		query, err := queries.NewListLoadsQuery("", " ", "", "", "")

		require.NoError(t, err)
		assert.True(t, query.Filter().IsEmpty())
	})

	t.Run("should normalise every criterion", func(t *testing.T) {
		query, err := queries.NewListLoadsQuery(" S1 ", "FLATBED", "cancelled", "Pune", "Delhi ")

		require.NoError(t, err)
		assert.Equal(t, load.Filter{
			ShipperID:      "S1",
			TruckType:      "FLATBED",
			Status:         load.Cancelled,
			LoadingPoint:   "Pune",
			UnloadingPoint: "Delhi",
		}, query.Filter())
	})

	t.Run("should reject the alternate cancellation spelling", func(t *testing.T) {
		_, err := queries.NewListLoadsQuery("", "", "CANCELED", "", "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestListLoadsQueryHandler_Handle(t *testing.T) {
	t.Run("should keep repository order", func(t *testing.T) {
		first, second := newLoad(t, "S1", load.Posted), newLoad(t, "S1", load.Booked)
		query, _ := queries.NewListLoadsQuery("S1", "", "", "", "")
		repo := new(MockLoadRepository)
		repo.On("Find", t.Context(), load.Filter{ShipperID: "S1"}).Return([]*load.Load{first, second}, nil).Once()

		got, err := queries.NewListLoadsQueryHandler(repo).Handle(t.Context(), query)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.True(t, got[0].ID.IsEqual(first.ID()))
		assert.True(t, got[1].ID.IsEqual(second.ID()))
	})

	t.Run("should return empty non-nil slice", func(t *testing.T) {
		query, _ := queries.NewListLoadsQuery("", "", "", "", "")
		repo := new(MockLoadRepository)
		repo.On("Find", t.Context(), load.Filter{}).Return(nil, nil).Once()

		got, err := queries.NewListLoadsQueryHandler(repo).Handle(t.Context(), query)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("should return repository error", func(t *testing.T) {
		query, _ := queries.NewListLoadsQuery("", "", "", "", "")
		repo := new(MockLoadRepository)
		repo.On("Find", t.Context(), load.Filter{}).Return(nil, errors.New("db down")).Once()

		_, err := queries.NewListLoadsQueryHandler(repo).Handle(t.Context(), query)

		require.EqualError(t, err, "db down")
	})
}
