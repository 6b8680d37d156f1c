// Package store holds the canonical application state and its mutation
// operations. Every mutation runs as one state transition and triggers a
// full-snapshot persist through the injected Persister.
package store

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dhanflow/dhanflow/internal/common"
	"github.com/dhanflow/dhanflow/internal/model"
)

// Development placeholder credential, not a security boundary. The reserved
// address maps to administrative privilege behind one shared secret compared
// in plaintext; real authentication is explicitly out of scope.
const (
	DefaultAdminEmail  = "admin@dhanflow.in"
	DefaultAdminSecret = "admin123"
)

// DefaultCurrency is the display currency for a pristine snapshot.
const DefaultCurrency = "INR"

// Snapshot is the per-device state: session, collections, and preferences.
type Snapshot struct {
	User         *model.User         `json:"user"`
	Accounts     []model.Account     `json:"accounts"`
	Transactions []model.Transaction `json:"transactions"`
	Budgets      []model.Budget      `json:"budgets"`
	Currency     string              `json:"currency"`
	DarkMode     bool                `json:"isDarkMode"`
}

// NewSnapshot returns a pristine snapshot with default preferences.
func NewSnapshot() Snapshot {
	return Snapshot{Currency: DefaultCurrency}
}

// Persister writes the two durable state blobs. The per-device snapshot and
// the registered-user registry are independent keys.
type Persister interface {
	SaveState(snap Snapshot) error
	SaveUsers(users []model.User) error
}

// Store owns the application state. It is not safe for concurrent use;
// the application processes one command at a time.
type Store struct {
	persister   Persister
	newID       func() string
	now         func() time.Time
	snap        Snapshot
	registered  []model.User
	adminEmail  string
	adminSecret string
}

// New creates a Store around an existing snapshot and registry.
func New(snap Snapshot, registered []model.User, p Persister) *Store {
	if snap.Currency == "" {
		snap.Currency = DefaultCurrency
	}
	return &Store{
		persister:   p,
		newID:       uuid.NewString,
		now:         time.Now,
		snap:        snap,
		registered:  registered,
		adminEmail:  DefaultAdminEmail,
		adminSecret: DefaultAdminSecret,
	}
}

// SetAdminCredential overrides the reserved administrative credential.
func (s *Store) SetAdminCredential(email, secret string) {
	if email != "" {
		s.adminEmail = email
	}
	if secret != "" {
		s.adminSecret = secret
	}
}

// Snapshot returns a copy of the current per-device state.
func (s *Store) Snapshot() Snapshot {
	snap := s.snap
	snap.Accounts = append([]model.Account(nil), s.snap.Accounts...)
	snap.Transactions = append([]model.Transaction(nil), s.snap.Transactions...)
	snap.Budgets = append([]model.Budget(nil), s.snap.Budgets...)
	if s.snap.User != nil {
		u := *s.snap.User
		snap.User = &u
	}
	return snap
}

// RegisteredUsers returns a copy of the registry, in registration order.
func (s *Store) RegisteredUsers() []model.User {
	return append([]model.User(nil), s.registered...)
}

// CurrentUser returns the session user, or nil when logged out.
func (s *Store) CurrentUser() *model.User {
	if s.snap.User == nil {
		return nil
	}
	u := *s.snap.User
	return &u
}

// Account returns the account with the given id, if present.
func (s *Store) Account(id string) (model.Account, bool) {
	for _, a := range s.snap.Accounts {
		if a.ID == id {
			return a, true
		}
	}
	return model.Account{}, false
}

// Login resolves a credential to a session user and upserts the registry.
// The reserved administrative address is matched case-insensitively and
// requires the shared secret; any other non-empty email succeeds.
func (s *Store) Login(email, name, phone, password string) (model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return model.User{}, common.NewUserError("email is required", common.ErrInvalidCredentials)
	}

	isAdmin := strings.EqualFold(email, s.adminEmail)
	if isAdmin && password != s.adminSecret {
		return model.User{}, common.NewUserError("invalid admin password", common.ErrInvalidCredentials)
	}

	// Registry upsert is keyed by exact email match.
	var user model.User
	found := false
	for i, u := range s.registered {
		if u.Email == email {
			s.registered[i].Name = name
			s.registered[i].Phone = phone
			user = s.registered[i]
			found = true
			break
		}
	}
	if !found {
		user = model.User{
			ID:       s.newID(),
			Email:    email,
			Name:     name,
			Phone:    phone,
			JoinedAt: s.now().Format(model.DateLayout),
			IsAdmin:  isAdmin,
		}
		s.registered = append(s.registered, user)
	}

	s.snap.User = &user
	s.persistState()
	s.persistUsers()
	return user, nil
}

// Logout clears the session. Collections and the registry persist.
func (s *Store) Logout() {
	s.snap.User = nil
	s.persistState()
}

// ResetData clears accounts, transactions, and budgets. The session, the
// registry, and preferences survive.
func (s *Store) ResetData() {
	s.snap.Accounts = nil
	s.snap.Transactions = nil
	s.snap.Budgets = nil
	s.persistState()
}

// SetCurrency switches the display currency.
func (s *Store) SetCurrency(code string) {
	s.snap.Currency = strings.ToUpper(strings.TrimSpace(code))
	s.persistState()
}

// ToggleDarkMode flips the theme preference and returns the new value.
func (s *Store) ToggleDarkMode() bool {
	s.snap.DarkMode = !s.snap.DarkMode
	s.persistState()
	return s.snap.DarkMode
}

func (s *Store) persistState() {
	if s.persister == nil {
		return
	}
	if err := s.persister.SaveState(s.snap); err != nil {
		// In-memory state stays ahead of the durable copy; the change is
		// lost on restart but the session continues.
		slog.Error("failed to persist state", "error", err)
	}
}

func (s *Store) persistUsers() {
	if s.persister == nil {
		return
	}
	if err := s.persister.SaveUsers(s.registered); err != nil {
		slog.Error("failed to persist user registry", "error", err)
	}
}

func validateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("id is required")
	}
	return nil
}
