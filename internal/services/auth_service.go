package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"guesthouse/internal/domain"
	"guesthouse/internal/sessions"
)

var ErrBadCreds = errors.New("invalid email or password")

type AuthService struct {
	Users    UserStore
	Sessions sessions.Store
}

func (s *AuthService) Login(ctx context.Context, sid, email, password string) (*domain.User, error) {
	u, err := s.Users.ByEmail(ctx, email)
	if err != nil {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	if err := s.Sessions.Bind(ctx, sid, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Logout(ctx context.Context, sid string) error {
	return s.Sessions.Unbind(ctx, sid)
}

func (s *AuthService) CurrentUser(ctx context.Context, sid string) (*domain.User, error) {
	uid, err := s.Sessions.UserID(ctx, sid)
	if err != nil {
		return nil, err
	}
	return s.Users.ByID(ctx, uid)
}
