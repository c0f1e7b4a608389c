package usecase

import (
	"context"
	"errors"

	"library-service/internal/domain/entities"
	"library-service/internal/domain/repositories"
	"library-service/internal/infrastructure"
)

var (
	ErrAllFieldsRequired  = errors.New("all fields are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type RegisterInput struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Admin    bool   `json:"admin"`
}

type AuthUsecase struct {
	users repositories.UserRepository
	jwt   *infrastructure.JWTService
}

func NewAuthUsecase(users repositories.UserRepository, jwt *infrastructure.JWTService) *AuthUsecase {
	return &AuthUsecase{users: users, jwt: jwt}
}

func (uc *AuthUsecase) Register(ctx context.Context, in RegisterInput) (*entities.User, error) {
	user := entities.NewUser(in.Name, in.Username, in.Password, in.Email, in.Mobile, in.Admin)
	if err := user.Validate(); err != nil {
		return nil, ErrAllFieldsRequired
	}

	if err := user.HashPassword(); err != nil {
		return nil, err
	}

	return uc.users.Create(ctx, user)
}

// Login verifies credentials and issues a signed token. An unknown username
// and a wrong password are deliberately indistinguishable.
func (uc *AuthUsecase) Login(ctx context.Context, username, password string) (string, error) {
	user, err := uc.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := user.CheckPassword(password); err != nil {
		return "", ErrInvalidCredentials
	}

	return uc.jwt.GenerateToken(user.ID.Hex(), user.Username, user.Admin)
}
