// Package session manages the locally stored account record. There is no
// server verification behind it; the record only gates the storefront UI.
package session

import (
	"errors"
	"fmt"

	"gromart_back_end/internal/models"
	"gromart_back_end/internal/store"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 6

var (
	ErrMissingField     = errors.New("missing required field")
	ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters", minPasswordLen)
	ErrBadCredentials   = errors.New("invalid email or password")
	ErrNotLoggedIn      = errors.New("no user logged in")
)

// Session is the current user session.
type Session struct {
	store store.Store
	user  *models.User
}

// New returns a session backed by s, restoring any persisted user record.
func New(s store.Store) (*Session, error) {
	sess := &Session{store: s}
	var u models.User
	err := s.Load(store.KeyUser, &u)
	if errors.Is(err, store.ErrNoSnapshot) {
		return sess, nil
	}
	if err != nil {
		return nil, fmt.Errorf("restore user: %w", err)
	}
	sess.user = &u
	return sess, nil
}

// Signup creates and persists a new account record. The role is an explicit
// choice at creation, never inferred from the email text.
func (s *Session) Signup(email, password, name string, role models.Role) (*models.User, error) {
	if email == "" || name == "" {
		return nil, ErrMissingField
	}
	if len(password) < minPasswordLen {
		return nil, ErrPasswordTooShort
	}
	if role != models.RoleStore {
		role = models.RoleCustomer
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		Role:         role,
		PasswordHash: string(hash),
	}
	if err := s.store.Save(store.KeyUser, u); err != nil {
		return nil, fmt.Errorf("persist user: %w", err)
	}
	s.user = &u
	return s.user, nil
}

// Login checks the password against the stored record.
func (s *Session) Login(email, password string) (*models.User, error) {
	if s.user == nil || s.user.Email != email {
		return nil, ErrBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(s.user.PasswordHash), []byte(password)) != nil {
		return nil, ErrBadCredentials
	}
	return s.user, nil
}

// Logout clears the stored record.
func (s *Session) Logout() error {
	s.user = nil
	return s.store.Delete(store.KeyUser)
}

// UpdateProfile merges the non-empty fields into the record and persists it.
func (s *Session) UpdateProfile(name, phone, address string) (*models.User, error) {
	if s.user == nil {
		return nil, ErrNotLoggedIn
	}
	if name != "" {
		s.user.Name = name
	}
	if phone != "" {
		s.user.Phone = phone
	}
	if address != "" {
		s.user.Address = address
	}
	if err := s.store.Save(store.KeyUser, *s.user); err != nil {
		return nil, fmt.Errorf("persist user: %w", err)
	}
	return s.user, nil
}

// Current returns the logged-in user record, or nil.
func (s *Session) Current() *models.User {
	return s.user
}
