package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/itinera/internal/repository"
	"github.com/alexanderramin/itinera/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTripRepo_CreateGetList(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTripRepo(database)
	ctx := context.Background()

	start := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)
	trip := testutil.NewTestTrip("Tokyo",
		testutil.WithDestination("Tokyo, Japan"),
		testutil.WithTripDays(5),
		testutil.WithStartDate(start),
	)
	require.NoError(t, repo.Create(ctx, trip))

	got, err := repo.GetByID(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tokyo", got.Name)
	assert.Equal(t, "Tokyo, Japan", got.Destination)
	assert.Equal(t, 5, got.Days)
	require.NotNil(t, got.StartDate)
	assert.True(t, got.StartDate.Equal(start))

	trips, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, trips, 1)
}

func TestTripRepo_GetByID_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTripRepo(database)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestTripRepo_DeleteCascadesToItems(t *testing.T) {
	database := testutil.NewTestDB(t)
	trips := repository.NewSQLiteTripRepo(database)
	items := repository.NewSQLiteItemRepo(database)
	ctx := context.Background()

	trip := testutil.NewTestTrip("Short trip")
	require.NoError(t, trips.Create(ctx, trip))
	require.NoError(t, items.Create(ctx, testutil.NewTestItem(trip.ID, "Cafe")))

	require.NoError(t, trips.Delete(ctx, trip.ID))

	left, err := items.ListByTrip(ctx, trip.ID)
	require.NoError(t, err)
	assert.Empty(t, left, "FK cascade removes the trip's items")
}

func TestTripRepo_Update(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTripRepo(database)
	ctx := context.Background()

	trip := testutil.NewTestTrip("Draft")
	require.NoError(t, repo.Create(ctx, trip))

	trip.Name = "Final"
	trip.Days = 7
	trip.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, trip))

	got, err := repo.GetByID(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final", got.Name)
	assert.Equal(t, 7, got.Days)
}
