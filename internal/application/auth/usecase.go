package auth

import (
	"context"
	"strings"

	"github.com/jhoicas/bloodbank-api/internal/application/dto"
	"github.com/jhoicas/bloodbank-api/internal/application/ports"
	"github.com/jhoicas/bloodbank-api/internal/application/usecase"
	"github.com/jhoicas/bloodbank-api/internal/domain"
	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
	"github.com/jhoicas/bloodbank-api/internal/domain/repository"
	"github.com/jhoicas/bloodbank-api/pkg/jwt"
	"github.com/jhoicas/bloodbank-api/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login de usuario/admin y logout.
// Las contraseñas se comparan en texto plano por igualdad exacta.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	adminRepo   repository.AdminRepository
	sessionRepo repository.SessionRepository
	users       *usecase.UserUseCase
	clock       ports.Clock
	jwtCfg      JWTConfig
	log         *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	adminRepo repository.AdminRepository,
	sessionRepo repository.SessionRepository,
	users *usecase.UserUseCase,
	clock ports.Clock,
	jwtCfg JWTConfig,
	log *logger.Logger,
) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{
		userRepo:    userRepo,
		adminRepo:   adminRepo,
		sessionRepo: sessionRepo,
		users:       users,
		clock:       clock,
		jwtCfg:      jwtCfg,
		log:         log.Component("auth"),
	}
}

// Register crea el usuario y abre su sesión. ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.LoginResponse, error) {
	if in.Password == "" {
		return nil, domain.Invalid("password", "requerido")
	}
	if in.Password != in.ConfirmPassword {
		return nil, domain.Invalid("confirmPassword", "las contraseñas no coinciden")
	}
	user, err := uc.users.Create(ctx, in.UserInput)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", user.ID).Msg("usuario registrado")
	return uc.openUserSession(ctx, user)
}

// LoginUser busca por email y compara la contraseña. ErrUnauthorized si no coincide.
func (uc *AuthUseCase) LoginUser(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password != in.Password {
		uc.log.Warn().Str("email", in.Email).Msg("login de usuario rechazado")
		return nil, domain.ErrUnauthorized
	}
	return uc.openUserSession(ctx, user)
}

// LoginAdmin busca por username y compara la contraseña. ErrUnauthorized si no coincide.
func (uc *AuthUseCase) LoginAdmin(ctx context.Context, in dto.AdminLoginRequest) (*dto.LoginResponse, error) {
	admin, err := uc.adminRepo.GetByUsername(ctx, strings.TrimSpace(in.Username))
	if err != nil {
		return nil, err
	}
	if admin == nil || admin.Password != in.Password {
		uc.log.Warn().Str("username", in.Username).Msg("login de admin rechazado")
		return nil, domain.ErrUnauthorized
	}
	session := entity.Session{
		Role:      entity.RoleAdmin,
		SubjectID: admin.ID,
		Subject:   admin.Username,
		IssuedAt:  uc.clock.Now(),
	}
	return uc.open(ctx, session, nil)
}

// Logout borra la sesión guardada.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	return uc.sessionRepo.Clear(ctx)
}

// Current devuelve la sesión guardada o (nil, nil).
func (uc *AuthUseCase) Current(ctx context.Context) (*entity.Session, error) {
	return uc.sessionRepo.Get(ctx)
}

// CurrentFor devuelve la sesión guardada solo si pertenece al actor del token; si no, (nil, nil).
func (uc *AuthUseCase) CurrentFor(ctx context.Context, actor entity.Session) (*entity.Session, error) {
	s, err := uc.sessionRepo.Get(ctx)
	if err != nil || s == nil {
		return nil, err
	}
	if s.SubjectID != actor.SubjectID || s.Role != actor.Role {
		return nil, nil
	}
	return s, nil
}

// LogoutFor borra la sesión guardada si es del actor. La de otro actor no se toca.
func (uc *AuthUseCase) LogoutFor(ctx context.Context, actor entity.Session) error {
	s, err := uc.CurrentFor(ctx, actor)
	if err != nil || s == nil {
		return err
	}
	return uc.sessionRepo.Clear(ctx)
}

func (uc *AuthUseCase) openUserSession(ctx context.Context, user *entity.User) (*dto.LoginResponse, error) {
	session := entity.Session{
		Role:      entity.RoleUser,
		SubjectID: user.ID,
		Subject:   user.Email,
		IssuedAt:  uc.clock.Now(),
	}
	return uc.open(ctx, session, dto.ToUserResponse(user))
}

func (uc *AuthUseCase) open(ctx context.Context, session entity.Session, user *dto.UserResponse) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, session.SubjectID, session.Subject, session.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	if err := uc.sessionRepo.Save(ctx, &session); err != nil {
		return nil, err
	}
	uc.log.Info().Str("role", session.Role).Str("subject_id", session.SubjectID).Msg("sesión iniciada")
	return &dto.LoginResponse{Token: token, Session: session, User: user}, nil
}
