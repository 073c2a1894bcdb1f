package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"chromaprint/internal/domain/entities"
	"chromaprint/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// DemoAccount is the only account the storefront accepts.
type DemoAccount struct {
	Email    string
	Password string
	Token    string
	Name     string
}

type LoginResult struct {
	Token string
	User  entities.User
}

// IAuthUseCase implements the demo login.
//
// There is no session state: a successful login hands out the static demo
// token and ValidateToken compares against it.

type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	ValidateToken(token string) bool
}

type AuthUseCase struct {
	account DemoAccount
	users   interfaces.IUserRepository
	log     *zap.Logger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

// NewAuthUseCase builds the demo auth use case. users may be nil when the
// process runs without a document store.
func NewAuthUseCase(account DemoAccount, users interfaces.IUserRepository, log *zap.Logger) *AuthUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthUseCase{account: account, users: users, log: log}
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (LoginResult, error) {
	if email != u.account.Email || password != u.account.Password {
		return LoginResult{}, ErrInvalidCredentials
	}

	user := entities.User{Email: u.account.Email, Name: u.account.Name}
	if u.users != nil {
		created, err := u.users.CreateIfNotExists(ctx, entities.User{
			Email:     user.Email,
			Name:      user.Name,
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			// Recording the user is best effort, login still succeeds.
			u.log.Warn("failed to record demo user", zap.Error(err))
		} else if created {
			u.log.Info("demo user recorded", zap.String("email", user.Email))
		}
	}

	return LoginResult{Token: u.account.Token, User: user}, nil
}

func (u *AuthUseCase) ValidateToken(token string) bool {
	if token == "" || u.account.Token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(u.account.Token)) == 1
}
