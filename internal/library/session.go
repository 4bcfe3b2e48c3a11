package library

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"tunescout/internal/config"
	"tunescout/internal/interfaces"
	"tunescout/internal/shared"
)

const (
	sessionKey        = "session:user"
	sessionUserID     = "u1"
	minPasswordLength = 6
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SessionService gates access with the single configured credential pair
type SessionService struct {
	store       interfaces.Store
	credentials config.Credentials
	now         func() time.Time
}

func NewSessionService(store interfaces.Store, credentials config.Credentials) *SessionService {
	return &SessionService{
		store:       store,
		credentials: credentials,
		now:         time.Now,
	}
}

// Login validates the pair and stores the session user
func (s *SessionService) Login(ctx context.Context, email, password string) (*shared.SessionUser, error) {
	email = strings.TrimSpace(email)
	if !emailPattern.MatchString(email) {
		return nil, shared.ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return nil, shared.ErrPasswordTooShort
	}
	if email != s.credentials.Email || password != s.credentials.Password {
		return nil, shared.ErrInvalidCredentials
	}

	user := &shared.SessionUser{
		User:      shared.User{ID: sessionUserID, Email: email},
		LastLogin: s.now().UTC(),
	}
	data, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.store.Set(ctx, sessionKey, data); err != nil {
		return nil, err
	}
	return user, nil
}

// Current returns the logged in user, or nil when there is no session
func (s *SessionService) Current(ctx context.Context) (*shared.SessionUser, error) {
	data, ok, err := s.store.Get(ctx, sessionKey)
	if err != nil || !ok {
		return nil, err
	}
	var user shared.SessionUser
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("corrupt session: %w", err)
	}
	return &user, nil
}

func (s *SessionService) Logout(ctx context.Context) error {
	return s.store.Delete(ctx, sessionKey)
}
