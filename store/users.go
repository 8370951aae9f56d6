package store

import (
	"strings"
	"time"

	"github.com/YarKhan02/Workshop-sub003/models"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser creates a dashboard login with a bcrypt-hashed password.
func (s *Store) RegisterUser(name, email, password, role string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Email == email {
			return models.User{}, ErrEmailTaken
		}
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	now := time.Now()
	u := models.User{
		ID:           newID(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.users = append(s.users, u)
	return u, nil
}

// Authenticate checks the credentials and returns the matching user.
func (s *Store) Authenticate(email, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].Email != email {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(s.users[i].PasswordHash), []byte(password)); err != nil {
			return models.User{}, ErrInvalidCredentials
		}
		return s.users[i], nil
	}
	return models.User{}, ErrInvalidCredentials
}

func (s *Store) UserByID(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].ID == id {
			return s.users[i], true
		}
	}
	return models.User{}, false
}
