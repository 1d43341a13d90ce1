package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bloodbank-api/internal/application/dto"
	"github.com/jhoicas/bloodbank-api/internal/application/inventory"
	"github.com/jhoicas/bloodbank-api/internal/application/usecase"
	"github.com/jhoicas/bloodbank-api/internal/domain"
	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
	"github.com/jhoicas/bloodbank-api/internal/infrastructure/memory"
	"github.com/jhoicas/bloodbank-api/internal/infrastructure/recordstore"
	"github.com/jhoicas/bloodbank-api/internal/testutil"
)

type donationEnv struct {
	uc     *usecase.DonationUseCase
	ledger *inventory.LedgerUseCase
	store  *testutil.FailingStore
	clock  *testutil.Clock
}

func newDonations(t *testing.T) donationEnv {
	t.Helper()
	ctx := context.Background()
	store := testutil.NewFailingStore(memory.NewKVStore())
	clock := testutil.NewClock(t0)
	ids := testutil.NewSeqIDs("d")
	users := recordstore.NewUserRepository(store)
	require.NoError(t, users.Create(ctx, &entity.User{
		ID: "u-john", Name: "John", Age: 28, Gender: "Male", BloodGroup: entity.BloodGroupOPos,
		Email: "john@example.com", IsDonor: true, IsReceiver: true,
	}))
	require.NoError(t, users.Create(ctx, &entity.User{
		ID: "u-rec", Name: "Solo receptor", Age: 40, Gender: "Other", BloodGroup: entity.BloodGroupBNeg,
		Email: "rec@example.com", IsReceiver: true,
	}))
	ledger := inventory.NewLedgerUseCase(recordstore.NewStockRepository(store), clock, ids, nil, nil)
	_, err := ledger.Initialize(ctx)
	require.NoError(t, err)

	uc := usecase.NewDonationUseCase(recordstore.NewDonationRepository(store), users, ledger, clock, ids, nil)
	return donationEnv{uc: uc, ledger: ledger, store: store, clock: clock}
}

func TestDonationRecord_SumaStockDelGrupoDelDonante(t *testing.T) {
	e := newDonations(t)
	ctx := context.Background()

	d, err := e.uc.Record(ctx, dto.RecordDonationInput{UserID: "u-john", CollectionCenter: "Central Blood Bank", Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, entity.BloodGroupOPos, d.BloodGroup)
	assert.Equal(t, t0, d.Date)

	s, err := e.ledger.GetByGroup(ctx, entity.BloodGroupOPos)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Quantity)
}

func TestDonationRecord_Validaciones(t *testing.T) {
	e := newDonations(t)
	ctx := context.Background()

	_, err := e.uc.Record(ctx, dto.RecordDonationInput{UserID: "u-john", CollectionCenter: "C", Quantity: 0})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	_, err = e.uc.Record(ctx, dto.RecordDonationInput{UserID: "u-john", Quantity: 1})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	_, err = e.uc.Record(ctx, dto.RecordDonationInput{UserID: "u-rec", CollectionCenter: "C", Quantity: 1})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	_, err = e.uc.Record(ctx, dto.RecordDonationInput{UserID: "nadie", CollectionCenter: "C", Quantity: 1})
	assert.True(t, errors.Is(err, domain.ErrUserNotFound))
}

func TestDonationDelete_RevierteStockConRecorte(t *testing.T) {
	e := newDonations(t)
	ctx := context.Background()
	d, err := e.uc.Record(ctx, dto.RecordDonationInput{UserID: "u-john", CollectionCenter: "C", Quantity: 3})
	require.NoError(t, err)
	_, err = e.ledger.ApplyDelta(ctx, entity.BloodGroupOPos, -2)
	require.NoError(t, err)

	require.NoError(t, e.uc.Delete(ctx, d.ID))
	s, err := e.ledger.GetByGroup(ctx, entity.BloodGroupOPos)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Quantity)

	assert.True(t, errors.Is(e.uc.Delete(ctx, d.ID), domain.ErrNotFound))
}

func TestDonationRecord_FalloDeStockNoDejaDonacion(t *testing.T) {
	e := newDonations(t)
	ctx := context.Background()

	e.store.FailSet(recordstore.KeyStock, true)
	_, err := e.uc.Record(ctx, dto.RecordDonationInput{UserID: "u-john", CollectionCenter: "C", Quantity: 2})
	assert.True(t, errors.Is(err, testutil.ErrStoreDown))
	e.store.FailSet(recordstore.KeyStock, false)

	list, err := e.uc.ListByUser(ctx, "u-john")
	require.NoError(t, err)
	assert.Empty(t, list)
	s, err := e.ledger.GetByGroup(ctx, entity.BloodGroupOPos)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Quantity)
}

func TestDonationDelete_FalloDeStockRestauraDonacion(t *testing.T) {
	e := newDonations(t)
	ctx := context.Background()
	d, err := e.uc.Record(ctx, dto.RecordDonationInput{UserID: "u-john", CollectionCenter: "C", Quantity: 2})
	require.NoError(t, err)

	e.store.FailSet(recordstore.KeyStock, true)
	err = e.uc.Delete(ctx, d.ID)
	assert.True(t, errors.Is(err, testutil.ErrStoreDown))
	e.store.FailSet(recordstore.KeyStock, false)

	list, err := e.uc.ListByUser(ctx, "u-john")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, d.ID, list[0].ID)
	s, err := e.ledger.GetByGroup(ctx, entity.BloodGroupOPos)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Quantity)
}

func TestDonationEligibility(t *testing.T) {
	e := newDonations(t)
	ctx := context.Background()

	el, err := e.uc.Eligibility(ctx, "u-john")
	require.NoError(t, err)
	assert.True(t, el.CanDonate)
	assert.Nil(t, el.NextEligible)

	last := time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)
	older := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	_, err = e.uc.Record(ctx, dto.RecordDonationInput{UserID: "u-john", Date: &older, CollectionCenter: "C", Quantity: 1})
	require.NoError(t, err)
	_, err = e.uc.Record(ctx, dto.RecordDonationInput{UserID: "u-john", Date: &last, CollectionCenter: "C", Quantity: 1})
	require.NoError(t, err)

	el, err = e.uc.Eligibility(ctx, "u-john")
	require.NoError(t, err)
	assert.False(t, el.CanDonate)
	require.NotNil(t, el.NextEligible)
	assert.Equal(t, time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC), *el.NextEligible)
	assert.Equal(t, 61, el.DaysRemaining)

	list, err := e.uc.ListByUser(ctx, "u-john")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, last, list[0].Date)
}
