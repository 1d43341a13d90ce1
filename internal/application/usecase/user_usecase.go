package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/bloodbank-api/internal/application/dto"
	"github.com/jhoicas/bloodbank-api/internal/application/ports"
	"github.com/jhoicas/bloodbank-api/internal/domain"
	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
	"github.com/jhoicas/bloodbank-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo  repository.UserRepository
	clock ports.Clock
	ids   ports.IDGenerator
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, clock ports.Clock, ids ports.IDGenerator) *UserUseCase {
	return &UserUseCase{repo: repo, clock: clock, ids: ids}
}

// ValidateUserInput reglas de registro y edición. requirePassword=false permite conservar la actual.
func ValidateUserInput(in dto.UserInput, requirePassword bool) error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Invalid("name", "requerido")
	}
	if in.Age < entity.MinDonorAge {
		return domain.Invalid("age", fmt.Sprintf("debe ser al menos %d", entity.MinDonorAge))
	}
	if !entity.IsValidGender(in.Gender) {
		return domain.Invalid("gender", fmt.Sprintf("valor desconocido %q", in.Gender))
	}
	if !entity.BloodGroup(in.BloodGroup).IsValid() {
		return domain.Invalid("bloodGroup", fmt.Sprintf("grupo desconocido %q", in.BloodGroup))
	}
	email := strings.TrimSpace(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		return domain.Invalid("email", "formato inválido")
	}
	if requirePassword && in.Password == "" {
		return domain.Invalid("password", "requerido")
	}
	if !in.IsDonor && !in.IsReceiver {
		return domain.Invalid("role", "debe ser donante, receptor o ambos")
	}
	return nil
}

// Create valida y persiste un usuario nuevo. ErrEmailAlreadyExists si el email está en uso.
func (uc *UserUseCase) Create(ctx context.Context, in dto.UserInput) (*entity.User, error) {
	if err := ValidateUserInput(in, true); err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	user := &entity.User{
		ID:         uc.ids.NewID(),
		Name:       strings.TrimSpace(in.Name),
		Age:        in.Age,
		Gender:     in.Gender,
		BloodGroup: entity.BloodGroup(in.BloodGroup),
		Phone:      strings.TrimSpace(in.Phone),
		Email:      strings.TrimSpace(in.Email),
		Address:    strings.TrimSpace(in.Address),
		Password:   in.Password,
		IsDonor:    in.IsDonor,
		IsReceiver: in.IsReceiver,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update reemplaza los datos editables; conserva CreatedAt y, si Password viene vacío, la contraseña.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UserInput) (*entity.User, error) {
	if err := ValidateUserInput(in, false); err != nil {
		return nil, err
	}
	user, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Name = strings.TrimSpace(in.Name)
	user.Age = in.Age
	user.Gender = in.Gender
	user.BloodGroup = entity.BloodGroup(in.BloodGroup)
	user.Phone = strings.TrimSpace(in.Phone)
	user.Email = strings.TrimSpace(in.Email)
	user.Address = strings.TrimSpace(in.Address)
	if in.Password != "" {
		user.Password = in.Password
	}
	user.IsDonor = in.IsDonor
	user.IsReceiver = in.IsReceiver
	user.UpdatedAt = uc.clock.Now()

	ok, err := uc.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// Delete elimina el usuario. Sus donaciones y solicitudes se conservan.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUserNotFound
	}
	return nil
}

// Get obtiene un usuario por ID. ErrUserNotFound si no existe.
func (uc *UserUseCase) Get(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// List devuelve los usuarios; search filtra sin distinguir mayúsculas por nombre, email o grupo.
func (uc *UserUseCase) List(ctx context.Context, search string) ([]entity.User, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return users, nil
	}
	out := make([]entity.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), q) ||
			strings.Contains(strings.ToLower(u.Email), q) ||
			strings.Contains(strings.ToLower(string(u.BloodGroup)), q) {
			out = append(out, u)
		}
	}
	return out, nil
}
