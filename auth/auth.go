// Package auth is the authentication collaborator boundary. The navigation
// machine only ever branches on IsAuthenticated; everything else about
// identity lives outside the core.
package auth

import (
	"time"

	"github.com/thaisring/ticket-show-world/store"
)

// Provider answers the one question the booking flow asks.
type Provider interface {
	IsAuthenticated() bool
	SignOut()
	RedirectToSignIn()
}

// Static is a fixed-answer provider for tests and the demo-user override.
type Static struct {
	SignedIn bool
	Name     string
}

func (s *Static) IsAuthenticated() bool { return s.SignedIn }
func (s *Static) SignOut()              { s.SignedIn = false }
func (s *Static) RedirectToSignIn()     {}

func (s *Static) SignIn(name string, email string) error {
	s.SignedIn = true
	s.Name = name
	return nil
}

func (s *Static) UserName() string { return s.Name }

// FileSession persists sign-in state in the user config dir, so the demo
// survives restarts.
type FileSession struct{}

func (FileSession) IsAuthenticated() bool {
	_, ok, err := store.LoadSession()
	return err == nil && ok
}

func (FileSession) SignOut() {
	_ = store.ClearSession()
}

// RedirectToSignIn is a hook for the presentation layer; switching to the
// auth view is the navigation machine's job, not the provider's.
func (FileSession) RedirectToSignIn() {}

// SignIn records a signed-in user. Name is required; email is optional.
func (FileSession) SignIn(name string, email string) error {
	return store.SaveSession(store.Session{
		Name:       name,
		Email:      email,
		SignedInAt: time.Now(),
	})
}

// UserName returns the signed-in user's name, if any.
func (FileSession) UserName() string {
	session, ok, err := store.LoadSession()
	if err != nil || !ok {
		return ""
	}
	return session.Name
}
