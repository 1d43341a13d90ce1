package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bloodbank-api/internal/application/dto"
	"github.com/jhoicas/bloodbank-api/internal/application/usecase"
	"github.com/jhoicas/bloodbank-api/internal/domain"
	"github.com/jhoicas/bloodbank-api/internal/infrastructure/memory"
	"github.com/jhoicas/bloodbank-api/internal/infrastructure/recordstore"
	"github.com/jhoicas/bloodbank-api/internal/testutil"
)

func newUsers() (*usecase.UserUseCase, *testutil.Clock) {
	clock := testutil.NewClock(t0)
	repo := recordstore.NewUserRepository(memory.NewKVStore())
	return usecase.NewUserUseCase(repo, clock, testutil.NewSeqIDs("u")), clock
}

func userInput(email string) dto.UserInput {
	return dto.UserInput{
		Name: "John Doe", Age: 28, Gender: "Male", BloodGroup: "O+", Phone: "555-123-4567",
		Email: email, Address: "123 Main St", Password: "password", IsDonor: true, IsReceiver: true,
	}
}

func TestUserCreate_Ok(t *testing.T) {
	uc, _ := newUsers()

	u, err := uc.Create(context.Background(), userInput("john@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "u-1", u.ID)
	assert.Equal(t, t0, u.CreatedAt)
	assert.Equal(t, t0, u.UpdatedAt)
}

func TestUserCreate_EmailDuplicado(t *testing.T) {
	uc, _ := newUsers()
	ctx := context.Background()
	_, err := uc.Create(ctx, userInput("john@example.com"))
	require.NoError(t, err)

	_, err = uc.Create(ctx, userInput("john@example.com"))
	assert.True(t, errors.Is(err, domain.ErrEmailAlreadyExists))
}

func TestUserUpdate_ConservaCreatedAtYPassword(t *testing.T) {
	uc, clock := newUsers()
	ctx := context.Background()
	u, err := uc.Create(ctx, userInput("john@example.com"))
	require.NoError(t, err)

	clock.Advance(24 * time.Hour)
	in := userInput("john.doe@example.com")
	in.Password = ""
	in.Age = 29
	updated, err := uc.Update(ctx, u.ID, in)
	require.NoError(t, err)
	assert.Equal(t, t0, updated.CreatedAt)
	assert.Equal(t, t0.Add(24*time.Hour), updated.UpdatedAt)
	assert.Equal(t, "password", updated.Password)
	assert.Equal(t, 29, updated.Age)

	got, err := uc.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "john.doe@example.com", got.Email)
}

func TestUserUpdate_EmailDeOtro(t *testing.T) {
	uc, _ := newUsers()
	ctx := context.Background()
	_, err := uc.Create(ctx, userInput("john@example.com"))
	require.NoError(t, err)
	jane, err := uc.Create(ctx, userInput("jane@example.com"))
	require.NoError(t, err)

	_, err = uc.Update(ctx, jane.ID, userInput("john@example.com"))
	assert.True(t, errors.Is(err, domain.ErrEmailAlreadyExists))

	_, err = uc.Update(ctx, "nope", userInput("x@example.com"))
	assert.True(t, errors.Is(err, domain.ErrUserNotFound))
}

func TestUserDeleteYList(t *testing.T) {
	uc, _ := newUsers()
	ctx := context.Background()
	john, err := uc.Create(ctx, userInput("john@example.com"))
	require.NoError(t, err)
	jane := userInput("jane@example.com")
	jane.Name = "Jane Smith"
	jane.BloodGroup = "A+"
	_, err = uc.Create(ctx, jane)
	require.NoError(t, err)

	found, err := uc.List(ctx, "JANE")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Jane Smith", found[0].Name)

	found, err = uc.List(ctx, "o+")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, john.ID, found[0].ID)

	require.NoError(t, uc.Delete(ctx, john.ID))
	assert.True(t, errors.Is(uc.Delete(ctx, john.ID), domain.ErrUserNotFound))
	all, err := uc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestValidateUserInput(t *testing.T) {
	in := userInput("john@example.com")
	require.NoError(t, usecase.ValidateUserInput(in, true))

	in.Password = ""
	assert.Error(t, usecase.ValidateUserInput(in, true))
	assert.NoError(t, usecase.ValidateUserInput(in, false))

	in = userInput("john@example.com")
	in.Name = " "
	assert.True(t, errors.Is(usecase.ValidateUserInput(in, true), domain.ErrInvalidInput))
}
