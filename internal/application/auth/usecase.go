package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/akwaabafreight/tracking-api/internal/application/dto"
	"github.com/akwaabafreight/tracking-api/internal/domain"
	"github.com/akwaabafreight/tracking-api/internal/domain/entity"
	"github.com/akwaabafreight/tracking-api/internal/domain/repository"
	"github.com/akwaabafreight/tracking-api/pkg/jwt"
)

// JWTConfig token generation settings for the auth use case.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase authentication flows: registration and login.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewUseCase builds the auth use case.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register creates an account: hashes the password with bcrypt, persists the
// user and issues a token. Returns ErrEmailAlreadyExists when the email is
// taken and ErrInvalidInput for an unknown role.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.AuthResult, error) {
	role, ok := entity.ParseRole(in.Role)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Phone:        in.Phone,
		Name:         in.Name,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResult{
		Token: token,
		User:  dto.UserSummary{ID: user.ID, Email: user.Email, Role: string(user.Role)},
	}, nil
}

// Login verifies email/password and issues a token carrying id and role.
// Unknown email and wrong password both return ErrInvalidCredentials so the
// response does not reveal whether the account exists.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.AuthResult, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResult{
		Token: token,
		User:  dto.UserSummary{ID: user.ID, Email: user.Email, Role: string(user.Role), Phone: user.Phone},
	}, nil
}
