package loadrepo_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/adapters/out/postgres/loadrepo"
	"freight/internal/adapters/out/postgres/pgtest"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type LoadRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *loadrepo.GormLoadRepository
}

func (suite *LoadRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	suite.Require().NoError(database.DB.AutoMigrate(&loadrepo.LoadDTO{}))
}

func (suite *LoadRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *LoadRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate("loads"))
	suite.repository = loadrepo.NewGormLoadRepository(suite.database.DB)
}

var base = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

type loadSpec struct {
	shipper, truck, from, to string
	posted                   time.Time
}

func (suite *LoadRepositoryIntegrationTestSuite) newLoad(s loadSpec) *load.Load {
	facility, err := load.NewFacility(s.from, s.to, base.Add(24*time.Hour), base.Add(96*time.Hour))
	suite.Require().NoError(err)
	l, err := load.NewLoad(kernel.NewUUID(), load.Details{
		ShipperID:   s.shipper,
		Facility:    facility,
		ProductType: "steel",
		TruckType:   s.truck,
		NoOfTrucks:  2,
		Weight:      500,
		DatePosted:  s.posted,
	})
	suite.Require().NoError(err)
	return l
}

func (suite *LoadRepositoryIntegrationTestSuite) add(s loadSpec) *load.Load {
	l := suite.newLoad(s)
	suite.Require().NoError(suite.repository.Add(context.Background(), l))
	return l
}

func (suite *LoadRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsEveryField() {
	ctx := context.Background()
	original := suite.newLoad(loadSpec{"S1", "FLATBED", "Pune", "Delhi", base})

	suite.Require().NoError(suite.repository.Add(ctx, original))
	got, err := suite.repository.Get(ctx, original.ID())

	suite.Require().NoError(err)
	suite.True(got.IsEqual(original))
	suite.Equal("S1", got.ShipperID())
	suite.Equal("FLATBED", got.TruckType())
	suite.Equal("Pune", got.Facility().LoadingPoint())
	suite.Equal("Delhi", got.Facility().UnloadingPoint())
	suite.True(got.Facility().UnloadingDate().Equal(original.Facility().UnloadingDate()))
	suite.True(got.DatePosted().Equal(base))
	suite.Equal(load.Posted, got.Status())
	suite.Equal(uint(1), got.Version())
}

func (suite *LoadRepositoryIntegrationTestSuite) TestAdd_DuplicateIDIsConflict() {
	ctx := context.Background()
	l := suite.add(loadSpec{"S1", "FLATBED", "Pune", "Delhi", base})

	err := suite.repository.Add(ctx, l)

	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *LoadRepositoryIntegrationTestSuite) TestGet_UnknownIDIsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *LoadRepositoryIntegrationTestSuite) TestUpdate_AdvancesVersion() {
	ctx := context.Background()
	l := suite.add(loadSpec{"S1", "FLATBED", "Pune", "Delhi", base})

	l.MarkBooked()
	suite.Require().NoError(suite.repository.Update(ctx, l))

	suite.Equal(uint(2), l.Version())
	got, err := suite.repository.Get(ctx, l.ID())
	suite.Require().NoError(err)
	suite.Equal(load.Booked, got.Status())
	suite.Equal(uint(2), got.Version())
}

func (suite *LoadRepositoryIntegrationTestSuite) TestUpdate_ClearsComment() {
	ctx := context.Background()
	l := suite.newLoad(loadSpec{"S1", "FLATBED", "Pune", "Delhi", base})
	details := l.Details()
	details.Comment = "fragile"
	suite.Require().NoError(l.Update(details))
	suite.Require().NoError(suite.repository.Add(ctx, l))

	details.Comment = ""
	suite.Require().NoError(l.Update(details))
	suite.Require().NoError(suite.repository.Update(ctx, l))

	got, err := suite.repository.Get(ctx, l.ID())
	suite.Require().NoError(err)
	suite.Empty(got.Comment())
}

func (suite *LoadRepositoryIntegrationTestSuite) TestUpdate_StaleVersionIsConflict() {
	ctx := context.Background()
	l := suite.add(loadSpec{"S1", "FLATBED", "Pune", "Delhi", base})
	stale, err := suite.repository.Get(ctx, l.ID())
	suite.Require().NoError(err)

	l.MarkBooked()
	suite.Require().NoError(suite.repository.Update(ctx, l))

	stale.Cancel()
	err = suite.repository.Update(ctx, stale)

	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.Require().ErrorIs(err, errs.ErrConcurrentModification)
	got, err := suite.repository.Get(ctx, l.ID())
	suite.Require().NoError(err)
	suite.Equal(load.Booked, got.Status())
}

func (suite *LoadRepositoryIntegrationTestSuite) TestUpdate_MissingLoadIsNotFound() {
	l := suite.newLoad(loadSpec{"S1", "FLATBED", "Pune", "Delhi", base})

	err := suite.repository.Update(context.Background(), l)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *LoadRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	l := suite.add(loadSpec{"S1", "FLATBED", "Pune", "Delhi", base})

	suite.Require().NoError(suite.repository.Delete(ctx, l.ID()))

	_, err := suite.repository.Get(ctx, l.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().ErrorIs(suite.repository.Delete(ctx, l.ID()), errs.ErrObjectNotFound)
}

func (suite *LoadRepositoryIntegrationTestSuite) TestFind_ConjunctiveFilterOrderedByDatePosted() {
	ctx := context.Background()
	late := suite.add(loadSpec{"S1", "FLATBED", "Pune", "Delhi", base.Add(2 * time.Hour)})
	early := suite.add(loadSpec{"S1", "FLATBED", "Pune", "Delhi", base})
	suite.add(loadSpec{"S2", "FLATBED", "Pune", "Delhi", base})
	suite.add(loadSpec{"S1", "REEFER", "Pune", "Delhi", base})
	suite.add(loadSpec{"S1", "FLATBED", "Mumbai", "Delhi", base})
	suite.add(loadSpec{"S1", "FLATBED", "Pune", "Jaipur", base})
	booked := suite.add(loadSpec{"S1", "FLATBED", "Pune", "Delhi", base.Add(time.Hour)})
	booked.MarkBooked()
	suite.Require().NoError(suite.repository.Update(ctx, booked))

	all, err := suite.repository.Find(ctx, load.Filter{})
	suite.Require().NoError(err)
	suite.Len(all, 7)

	got, err := suite.repository.Find(ctx, load.Filter{
		ShipperID:      "S1",
		TruckType:      "FLATBED",
		Status:         load.Posted,
		LoadingPoint:   "Pune",
		UnloadingPoint: "Delhi",
	})
	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.True(got[0].IsEqual(early))
	suite.True(got[1].IsEqual(late))

	none, err := suite.repository.Find(ctx, load.Filter{ShipperID: "S1", TruckType: "TANKER"})
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *LoadRepositoryIntegrationTestSuite) TestCountByStatus() {
	ctx := context.Background()
	suite.add(loadSpec{"S1", "FLATBED", "Pune", "Delhi", base})
	suite.add(loadSpec{"S1", "FLATBED", "Pune", "Delhi", base})
	cancelled := suite.add(loadSpec{"S1", "FLATBED", "Pune", "Delhi", base})
	cancelled.Cancel()
	suite.Require().NoError(suite.repository.Update(ctx, cancelled))

	counts, err := suite.repository.CountByStatus(ctx)

	suite.Require().NoError(err)
	suite.Equal(map[load.Status]int64{load.Posted: 2, load.Cancelled: 1}, counts)
}

func (suite *LoadRepositoryIntegrationTestSuite) TestGet_CorruptStatusFailsRestore() {
	ctx := context.Background()
	l := suite.add(loadSpec{"S1", "FLATBED", "Pune", "Delhi", base})
	suite.Require().NoError(suite.database.DB.Exec("UPDATE loads SET status = 'CANCELED'").Error)

	_, err := suite.repository.Get(ctx, l.ID())

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func TestLoadRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(LoadRepositoryIntegrationTestSuite))
}
