package services

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"

	"thrift-rizz/store"
)

// ErrInvalidCredentials is returned for login attempts with empty fields.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Identity is the currently logged-in principal. It gates the admin surface
// and nothing else.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// Session tracks the single logged-in identity and notifies subscribers on
// every change. It is an explicit object injected into its consumers rather
// than package-level state, and it is NOT a security boundary: Login accepts
// any non-empty credential pair. A real deployment must replace it with
// verification against a trusted authority.
type Session struct {
	store store.Store

	mu      sync.Mutex
	current *Identity
	subs    []*subscriber
	nextID  int
}

type subscriber struct {
	id int
	fn func(*Identity)
}

// NewSession restores the persisted identity, if any, and returns the
// session object.
func NewSession(ctx context.Context, st store.Store) *Session {
	s := &Session{store: st}
	var ident *Identity
	if err := st.Read(ctx, store.AuthCollection, &ident); err != nil {
		log.Printf("session: restoring identity: %v", err)
	}
	s.current = ident
	return s
}

// Current returns the logged-in identity, or nil when nobody is logged in.
func (s *Session) Current() *Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Login accepts any non-empty email/password pair, persists the new
// identity and notifies subscribers. Empty input gets a generic
// invalid-credentials error with no further distinction.
func (s *Session) Login(ctx context.Context, email, password string) (*Identity, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	ident := &Identity{UID: uuid.NewString(), Email: email}
	if err := s.store.Write(ctx, store.AuthCollection, ident); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = ident
	subs := s.snapshotLocked()
	s.mu.Unlock()

	notify(subs, ident)
	return ident, nil
}

// Logout clears the identity, persists the removal and notifies subscribers.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.store.Write(ctx, store.AuthCollection, nil); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = nil
	subs := s.snapshotLocked()
	s.mu.Unlock()

	notify(subs, nil)
	return nil
}

// Subscribe registers fn for identity changes, invokes it immediately with
// the current identity and returns an unsubscribe func. Fan-out is
// synchronous, in registration order.
func (s *Session) Subscribe(fn func(*Identity)) func() {
	s.mu.Lock()
	s.nextID++
	sub := &subscriber{id: s.nextID, fn: fn}
	s.subs = append(s.subs, sub)
	current := s.current
	s.mu.Unlock()

	fn(current)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, candidate := range s.subs {
			if candidate.id == sub.id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Session) snapshotLocked() []*subscriber {
	subs := make([]*subscriber, len(s.subs))
	copy(subs, s.subs)
	return subs
}

func notify(subs []*subscriber, ident *Identity) {
	for _, sub := range subs {
		sub.fn(ident)
	}
}
