// Package mockdb holds the in-memory seed data the mock API answers from.
// Nothing here persists; it exists so handlers have a store-shaped dependency
// to read the fixed user from.
package mockdb

import (
	"sync"
	"time"

	"vidgencraft-mock-backend/internal/config"
	"vidgencraft-mock-backend/internal/models"
)

type Store struct {
	mu    sync.RWMutex
	users map[string]models.MockUser
}

// New seeds the store with the single mock user from config.
func New(cfg *config.Config) *Store {
	now := time.Now()
	return &Store{
		users: map[string]models.MockUser{
			cfg.MockUserEmail: {
				ID:                    cfg.MockUserID,
				Email:                 cfg.MockUserEmail,
				CreditsRemaining:      100,
				SubscriptionTier:      "premium",
				SubscriptionStartDate: now,
				SubscriptionEndDate:   now.AddDate(0, 0, 30),
			},
		},
	}
}

func (s *Store) GetUserByEmail(email string) (models.MockUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[email]
	return user, ok
}

// UpdateUser replaces the stored record for email. Present for API shape;
// no handler reads back what it writes.
func (s *Store) UpdateUser(email string, user models.MockUser) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[email]; !ok {
		return false
	}
	s.users[email] = user
	return true
}

// Profile returns the auth-endpoint view of the stored user.
func (s *Store) Profile(email string) models.UserProfile {
	user, ok := s.GetUserByEmail(email)
	if !ok {
		// The mock always answers for the seeded account.
		for _, u := range s.snapshot() {
			user = u
			break
		}
	}
	return models.UserProfile{
		Email:            user.Email,
		ID:               user.ID,
		CreditsRemaining: user.CreditsRemaining,
		SubscriptionTier: user.SubscriptionTier,
	}
}

func (s *Store) snapshot() map[string]models.MockUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]models.MockUser, len(s.users))
	for k, v := range s.users {
		out[k] = v
	}
	return out
}
