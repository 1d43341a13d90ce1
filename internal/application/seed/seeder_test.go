package seed_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bloodbank-api/internal/application/seed"
	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
	"github.com/jhoicas/bloodbank-api/internal/infrastructure/memory"
	"github.com/jhoicas/bloodbank-api/internal/infrastructure/recordstore"
	"github.com/jhoicas/bloodbank-api/internal/testutil"
)

func repos() seed.Repositories {
	store := memory.NewKVStore()
	return seed.Repositories{
		Users:         recordstore.NewUserRepository(store),
		Admins:        recordstore.NewAdminRepository(store),
		Donations:     recordstore.NewDonationRepository(store),
		Requests:      recordstore.NewRequestRepository(store),
		Stock:         recordstore.NewStockRepository(store),
		Supplies:      recordstore.NewSupplyRepository(store),
		Notifications: recordstore.NewNotificationRepository(store),
	}
}

func TestSeeder_PoblaTodo(t *testing.T) {
	ctx := context.Background()
	r := repos()
	s := seed.NewSeeder(r, testutil.NewClock(time.Date(2026, 5, 15, 12, 0, 0, 0, time.UTC)), testutil.NewSeqIDs("seed"), nil)

	report, err := s.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"admins", "users", "donations", "requests", "stock", "supplies", "notifications"}, report.Seeded)

	admin, err := r.Admins.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, "admin123", admin.Password)

	john, err := r.Users.GetByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	require.NotNil(t, john)
	assert.True(t, john.IsDonor && john.IsReceiver)
	assert.Equal(t, entity.BloodGroupOPos, john.BloodGroup)

	donations, err := r.Donations.List(ctx)
	require.NoError(t, err)
	assert.Len(t, donations, 13)

	stock, err := r.Stock.List(ctx)
	require.NoError(t, err)
	require.Len(t, stock, 8)
	for _, row := range stock {
		assert.GreaterOrEqual(t, row.Quantity, 5)
	}

	requests, err := r.Requests.List(ctx)
	require.NoError(t, err)
	assert.Len(t, requests, 3)

	supplies, err := r.Supplies.List(ctx)
	require.NoError(t, err)
	require.Len(t, supplies, 1)
	fulfilled, err := r.Requests.GetByID(ctx, supplies[0].RequestID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestFulfilled, fulfilled.Status)

	notes, err := r.Notifications.List(ctx)
	require.NoError(t, err)
	assert.Len(t, notes, 3)
}

func TestSeeder_NoPisaColeccionesConDatos(t *testing.T) {
	ctx := context.Background()
	r := repos()
	require.NoError(t, r.Users.Create(ctx, &entity.User{ID: "mine", Email: "me@example.com"}))

	s := seed.NewSeeder(r, testutil.NewClock(time.Now()), testutil.NewSeqIDs("seed"), nil)
	report, err := s.Run(ctx)
	require.NoError(t, err)
	assert.NotContains(t, report.Seeded, "users")

	users, err := r.Users.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "mine", users[0].ID)

	again, err := s.Run(ctx)
	require.NoError(t, err)
	assert.Empty(t, again.Seeded)
}
