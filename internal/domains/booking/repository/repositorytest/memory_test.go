package repositorytest_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareit/internal/domains/booking/model"
	"shareit/internal/domains/booking/repository"
	"shareit/internal/domains/booking/repository/repositorytest"
)

func seed(t *testing.T, repo *repositorytest.Memory, bookings ...model.Booking) {
	t.Helper()

	for _, booking := range bookings {
		require.NoError(t, repo.Insert(context.Background(), booking))
	}
}

func ids(bookings []model.Booking) []string {
	res := make([]string, len(bookings))
	for i, booking := range bookings {
		res[i] = booking.ID
	}

	return res
}

func TestMemory_FindByBookerAndOwner(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	repo := repositorytest.NewMemory()

	seed(t, repo,
		model.Booking{ID: "a", BookerID: "ann", ItemOwnerID: "bob", Start: now.Add(-72 * time.Hour), End: now.Add(-48 * time.Hour), Status: model.StatusApproved},
		model.Booking{ID: "b", BookerID: "ann", ItemOwnerID: "bob", Start: now.Add(24 * time.Hour), End: now.Add(48 * time.Hour), Status: model.StatusWaiting},
		model.Booking{ID: "c", BookerID: "ann", ItemOwnerID: "cid", Start: now.Add(24 * time.Hour), End: now.Add(30 * time.Hour), Status: model.StatusWaiting},
		model.Booking{ID: "d", BookerID: "cid", ItemOwnerID: "ann", Start: now.Add(-time.Hour), End: now.Add(time.Hour), Status: model.StatusApproved},
	)

	byBooker, err := repo.FindByBooker(ctx, "ann", model.StateAll, now)
	require.NoError(t, err)
	// Latest start first, equal starts by id.
	assert.Equal(t, []string{"b", "c", "a"}, ids(byBooker))

	future, err := repo.FindByBooker(ctx, "ann", model.StateFuture, now)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, ids(future))

	byOwner, err := repo.FindByItemOwner(ctx, "bob", model.StateAll, now)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, ids(byOwner))

	current, err := repo.FindByItemOwner(ctx, "ann", model.StateCurrent, now)
	require.NoError(t, err)
	assert.Equal(t, []string{"d"}, ids(current))

	none, err := repo.FindByBooker(ctx, "nobody", model.StateAll, now)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestMemory_ExistFinished(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	repo := repositorytest.NewMemory()

	seed(t, repo,
		model.Booking{ID: "done", BookerID: "ann", ItemID: "drill", Start: now.Add(-48 * time.Hour), End: now.Add(-time.Hour)},
		model.Booking{ID: "running", BookerID: "ann", ItemID: "saw", Start: now.Add(-time.Hour), End: now.Add(time.Hour)},
	)

	tests := []struct {
		name     string
		bookerID string
		itemID   string
		want     bool
	}{
		{name: "finished booking", bookerID: "ann", itemID: "drill", want: true},
		{name: "booking still running", bookerID: "ann", itemID: "saw", want: false},
		{name: "other booker", bookerID: "bob", itemID: "drill", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.ExistFinished(ctx, tt.bookerID, tt.itemID, now)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMemory_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	repo := repositorytest.NewMemory()

	seed(t, repo, model.Booking{ID: "a", Status: model.StatusWaiting})

	require.NoError(t, repo.UpdateStatus(ctx, "a", model.StatusRejected, "bob", at))

	got, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, model.StatusRejected, got.Status)
	assert.Equal(t, "bob", got.ModifiedBy)
	assert.Equal(t, at, got.ModifiedAt)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, "missing", model.StatusApproved, "bob", at), repository.ErrNotFound)

	missing, err := repo.GetByID(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestMemory_FindLastNext(t *testing.T) {
	ctx := context.Background()
	dayStart := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	nextDayStart := dayStart.AddDate(0, 0, 1)

	repo := repositorytest.NewMemory()
	seed(t, repo,
		model.Booking{ID: "x-last-week", ItemID: "x", Start: dayStart.AddDate(0, 0, -7)},
		model.Booking{ID: "x-yesterday", ItemID: "x", Start: dayStart.Add(-time.Hour)},
		model.Booking{ID: "x-today-early", ItemID: "x", Start: dayStart},
		model.Booking{ID: "x-today-late", ItemID: "x", Start: nextDayStart.Add(-time.Nanosecond)},
		model.Booking{ID: "x-tomorrow", ItemID: "x", Start: nextDayStart},
		model.Booking{ID: "x-next-week", ItemID: "x", Start: nextDayStart.AddDate(0, 0, 7)},
		model.Booking{ID: "y-only-today", ItemID: "y", Start: dayStart.Add(12 * time.Hour)},
		model.Booking{ID: "z-tie-b", ItemID: "z", Start: nextDayStart.Add(time.Hour)},
		model.Booking{ID: "z-tie-a", ItemID: "z", Start: nextDayStart.Add(time.Hour)},
		model.Booking{ID: "ignored", ItemID: "other", Start: dayStart.Add(-time.Hour)},
	)

	res, err := repo.FindLastNext(ctx, []string{"x", "y", "z", "absent"}, dayStart, nextDayStart)
	require.NoError(t, err)

	require.NotNil(t, res["x"].Last)
	require.NotNil(t, res["x"].Next)
	assert.Equal(t, "x-yesterday", res["x"].Last.ID)
	assert.Equal(t, "x-tomorrow", res["x"].Next.ID)

	_, hasY := res["y"]
	assert.False(t, hasY, "bookings starting today belong to neither side")

	assert.Nil(t, res["z"].Last)
	require.NotNil(t, res["z"].Next)
	assert.Equal(t, "z-tie-a", res["z"].Next.ID)

	_, hasAbsent := res["absent"]
	assert.False(t, hasAbsent)

	_, hasOther := res["other"]
	assert.False(t, hasOther)
}
