package services

import (
	"context"
	"errors"

	"gin-shoplist/repositories"
	"gin-shoplist/security"

	"github.com/rs/zerolog/log"
)

// LoginResult: 失敗時は Success=false のみ。ユーザー不在かパスワード誤りかは区別しない
type LoginResult struct {
	Success bool
	ID      string
	Name    string
	Role    string
}

type IAuthenticationService interface {
	Login(ctx context.Context, email string, password string) (*LoginResult, error)
}

type AuthenticationService struct {
	users  repositories.IUserRepository
	hasher security.PasswordHasher
}

func NewAuthenticationService(users repositories.IUserRepository, hasher security.PasswordHasher) IAuthenticationService {
	return &AuthenticationService{users: users, hasher: hasher}
}

// Login returns an error only for infrastructure failures.
func (s *AuthenticationService) Login(ctx context.Context, email string, password string) (*LoginResult, error) {
	failed := &LoginResult{Success: false}
	if email == "" || password == "" {
		return failed, nil
	}

	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			log.Debug().Msg("login failed")
			return failed, nil
		}
		return nil, err
	}

	ok, err := user.VerifyPassword(s.hasher, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		log.Debug().Msg("login failed")
		return failed, nil
	}

	return &LoginResult{Success: true, ID: user.ID, Name: user.Name, Role: user.Role()}, nil
}
