package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bloodbank-api/internal/application/ports"
	"github.com/jhoicas/bloodbank-api/internal/application/usecase"
	"github.com/jhoicas/bloodbank-api/internal/domain"
	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
	"github.com/jhoicas/bloodbank-api/internal/infrastructure/memory"
	"github.com/jhoicas/bloodbank-api/internal/infrastructure/recordstore"
)

type fakeRenderer struct {
	got *ports.ReceiptData
}

func (f *fakeRenderer) SupplyReceipt(data ports.ReceiptData) ([]byte, error) {
	f.got = &data
	return []byte("%PDF-fake"), nil
}

func TestSupplyUseCase(t *testing.T) {
	ctx := context.Background()
	store := memory.NewKVStore()
	users := recordstore.NewUserRepository(store)
	requests := recordstore.NewRequestRepository(store)
	supplies := recordstore.NewSupplyRepository(store)

	require.NoError(t, users.Create(ctx, &entity.User{ID: "u1", Name: "John Doe", Email: "john@example.com"}))
	require.NoError(t, requests.Create(ctx, &entity.BloodRequest{
		ID: "r1", UserID: "u1", BloodGroup: entity.BloodGroupAPos, Quantity: 2,
		Status: entity.RequestFulfilled, HospitalName: "General Hospital", Reason: "Surgery",
	}))
	require.NoError(t, supplies.Create(ctx, &entity.BloodSupply{
		ID: "s1", RequestID: "r1", UserID: "u1", Quantity: 2, BloodGroup: entity.BloodGroupAPos,
		CollectionCenter: "Central Blood Bank", SupplyDate: t0,
	}))
	require.NoError(t, supplies.Create(ctx, &entity.BloodSupply{
		ID: "s2", RequestID: "r2", UserID: "u2", Quantity: 1, BloodGroup: entity.BloodGroupONeg,
		CollectionCenter: "City Hospital", SupplyDate: t0.Add(time.Hour),
	}))

	renderer := &fakeRenderer{}
	uc := usecase.NewSupplyUseCase(supplies, requests, users, renderer)

	all, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "s2", all[0].ID)

	mine, err := uc.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	byReq, err := uc.GetByRequest(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "s1", byReq.ID)

	_, err = uc.GetByRequest(ctx, "r9")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	pdf, err := uc.ReceiptPDF(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), pdf)
	require.NotNil(t, renderer.got)
	assert.Equal(t, "John Doe", renderer.got.ReceiverName)
	require.NotNil(t, renderer.got.Request)
	assert.Equal(t, "General Hospital", renderer.got.Request.HospitalName)

	_, err = uc.ReceiptPDF(ctx, "nope")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestSupplyCreate_UnaPorSolicitud(t *testing.T) {
	ctx := context.Background()
	supplies := recordstore.NewSupplyRepository(memory.NewKVStore())
	require.NoError(t, supplies.Create(ctx, &entity.BloodSupply{ID: "s1", RequestID: "r1"}))

	err := supplies.Create(ctx, &entity.BloodSupply{ID: "s2", RequestID: "r1"})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}
