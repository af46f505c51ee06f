package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"sporthub/internal/domain"
)

// FavoritesReset is the one command the session layer issues against
// the catalog. Satisfied by *CommandService.
type FavoritesReset interface {
	ResetAllFavorites(ctx context.Context)
}

// SessionService owns the optional current-user record. Every mutation
// is persisted through the SessionRepository; persistence failures are
// logged and swallowed so auth never hard-fails (it is a mock login).
type SessionService struct {
	repo     domain.SessionRepository
	commands FavoritesReset

	mu      sync.Mutex
	current *domain.User
}

func NewSessionService(repo domain.SessionRepository, commands FavoritesReset) *SessionService {
	return &SessionService{repo: repo, commands: commands}
}

// Restore loads the persisted session at startup. Corrupt or missing
// data means logged out, never an error.
func (s *SessionService) Restore(ctx context.Context) {
	u, err := s.repo.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("session restore failed, starting logged out")
		return
	}
	s.mu.Lock()
	s.current = u
	s.mu.Unlock()
}

func (s *SessionService) Login(ctx context.Context, name, surname string) domain.User {
	u := domain.User{Name: name, Surname: surname, Avatar: domain.DefaultAvatar}
	s.setCurrent(ctx, &u)
	return u
}

// LoginSocial simulates a social-provider login with a placeholder
// user tagged by the provider label. No real external auth happens.
func (s *SessionService) LoginSocial(ctx context.Context, provider string) domain.User {
	u := domain.User{Name: "User", Surname: provider, Avatar: domain.DefaultAvatar}
	s.setCurrent(ctx, &u)
	return u
}

// Logout clears the user, the persisted record and every favorite flag
// across the whole catalog.
func (s *SessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.repo.Clear(ctx); err != nil {
		log.Warn().Err(err).Msg("session clear failed")
	}
	s.commands.ResetAllFavorites(ctx)
}

// Current returns a copy of the logged-in user, or nil.
func (s *SessionService) Current() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

func (s *SessionService) IsLoggedIn() bool { return s.Current() != nil }

func (s *SessionService) setCurrent(ctx context.Context, u *domain.User) {
	s.mu.Lock()
	s.current = u
	s.mu.Unlock()
	if err := s.repo.Save(ctx, *u); err != nil {
		log.Warn().Err(err).Msg("session save failed")
	}
}
