package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/itinera/internal/contract"
	"github.com/alexanderramin/itinera/internal/db"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/repository"
	"github.com/alexanderramin/itinera/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupItemRepo(t *testing.T) (*repository.SQLiteItemRepo, *domain.Trip, db.UnitOfWork) {
	t.Helper()
	database := testutil.NewTestDB(t)
	trips := repository.NewSQLiteTripRepo(database)
	items := repository.NewSQLiteItemRepo(database)

	trip := testutil.NewTestTrip("Kyoto")
	require.NoError(t, trips.Create(context.Background(), trip))
	return items, trip, testutil.NewTestUoW(database)
}

func TestItemRepo_CreateAndGet(t *testing.T) {
	repo, trip, _ := setupItemRepo(t)
	ctx := context.Background()

	it := testutil.NewTestItem(trip.ID, "Fushimi Inari",
		testutil.WithDay(2),
		testutil.WithOrder(3),
		testutil.WithStartTime("08:00"),
		testutil.WithDuration(120),
		testutil.WithTags("shrine", "hike"),
		testutil.WithCoords(34.9671, 135.7727),
		testutil.WithFavorite(),
	)
	require.NoError(t, repo.Create(ctx, it))

	got, err := repo.GetByID(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fushimi Inari", got.Name)
	assert.Equal(t, 2, got.Day)
	require.NotNil(t, got.Order)
	assert.Equal(t, 3, *got.Order)
	assert.Equal(t, "08:00", got.StartTime)
	assert.Equal(t, 120, got.DurationMin)
	assert.Equal(t, []string{"shrine", "hike"}, got.Tags)
	assert.Equal(t, 34.9671, got.Lat)
	assert.True(t, got.Favorite)
	assert.Empty(t, got.DerivedTime, "derived time is never persisted")
}

func TestItemRepo_GetByID_NotFound(t *testing.T) {
	repo, _, _ := setupItemRepo(t)

	_, err := repo.GetByID(context.Background(), "nope")
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestItemRepo_ListByTrip_SnapshotOrdering(t *testing.T) {
	repo, trip, _ := setupItemRepo(t)
	ctx := context.Background()

	// Created deliberately out of order; unassigned position sorts last.
	require.NoError(t, repo.Create(ctx, testutil.NewTestItem(trip.ID, "d2-0", testutil.WithDay(2), testutil.WithOrder(0))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestItem(trip.ID, "d1-unordered", testutil.WithoutOrder())))
	require.NoError(t, repo.Create(ctx, testutil.NewTestItem(trip.ID, "d1-1", testutil.WithOrder(1))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestItem(trip.ID, "d1-0", testutil.WithOrder(0))))

	items, err := repo.ListByTrip(ctx, trip.ID)
	require.NoError(t, err)

	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	assert.Equal(t, []string{"d1-0", "d1-1", "d1-unordered", "d2-0"}, names)
}

func TestItemRepo_ApplyOrderWrites_Transactional(t *testing.T) {
	repo, trip, uow := setupItemRepo(t)
	ctx := context.Background()

	a := testutil.NewTestItem(trip.ID, "a", testutil.WithOrder(0))
	b := testutil.NewTestItem(trip.ID, "b", testutil.WithOrder(1))
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	writes := []contract.OrderWrite{
		{ItemID: a.ID, Order: 1},
		{ItemID: b.ID, Order: 0},
	}
	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteItemRepo(tx).ApplyOrderWrites(ctx, writes)
	})
	require.NoError(t, err)

	items, err := repo.ListByTrip(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[0].Name)
	assert.Equal(t, "a", items[1].Name)
}

func TestItemRepo_Delete(t *testing.T) {
	repo, trip, _ := setupItemRepo(t)
	ctx := context.Background()

	it := testutil.NewTestItem(trip.ID, "gone")
	require.NoError(t, repo.Create(ctx, it))
	require.NoError(t, repo.Delete(ctx, it.ID))

	items, err := repo.ListByTrip(ctx, trip.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestItemRepo_Update_NotFound(t *testing.T) {
	repo, trip, _ := setupItemRepo(t)

	ghost := testutil.NewTestItem(trip.ID, "ghost")
	err := repo.Update(context.Background(), ghost)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestItemRepo_ListFavorites(t *testing.T) {
	repo, trip, _ := setupItemRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestItem(trip.ID, "plain")))
	fav := testutil.NewTestItem(trip.ID, "starred", testutil.WithFavorite())
	require.NoError(t, repo.Create(ctx, fav))

	got, err := repo.ListFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "starred", got[0].Name)
}
