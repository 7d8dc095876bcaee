package state

import (
	"errors"
	"sync"
	"time"

	"github.com/coachledger/marketplace/models"
	"github.com/google/uuid"
)

var ErrEmailExists = errors.New("email already exists")

// AccountStore maps logins to principals. It is the identity provider the
// marketplace stores treat as external: they only ever see the principal.
type AccountStore struct {
	mu      sync.RWMutex
	byEmail map[string]models.Account
}

func NewAccountStore() *AccountStore {
	return &AccountStore{byEmail: make(map[string]models.Account)}
}

// Create registers a new account and mints its principal.
func (s *AccountStore) Create(fullName, email, passwordHash string) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return models.Account{}, ErrEmailExists
	}
	account := models.Account{
		Principal: models.Principal(uuid.NewString()),
		FullName:  fullName,
		Email:     email,
		Password:  passwordHash,
		CreatedAt: time.Now(),
	}
	s.byEmail[email] = account
	return account, nil
}

func (s *AccountStore) ByEmail(email string) (models.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.byEmail[email]
	return account, ok
}
