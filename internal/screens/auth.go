package screens

import (
	"context"

	"github.com/lildude/liftlog/internal/liftlog"
	"github.com/lildude/liftlog/internal/navigator"
	"github.com/lildude/liftlog/internal/sessions"
)

// Login is the sign-in form.
type Login struct {
	api Backend
	nav navigator.Navigator

	Username string
	Password string
}

func NewLogin(api Backend, nav navigator.Navigator) *Login {
	return &Login{api: api, nav: nav}
}

// Submit checks the credentials. On success the session is stored by the API
// and the home screen is shown; on failure the form is left as typed.
func (l *Login) Submit(ctx context.Context) (sessions.Session, error) {
	s, err := l.api.Login(ctx, l.Username, l.Password)
	if err != nil {
		return sessions.Session{}, err
	}
	l.Password = ""
	return s, l.nav.Navigate(navigator.RouteHome, nil)
}

// Logout clears the session and returns to the login screen.
func Logout(ctx context.Context, api Backend, nav navigator.Navigator) error {
	if err := api.Logout(ctx); err != nil {
		return err
	}
	return nav.Navigate(navigator.RouteLogin, nil)
}

// Register is the sign-up form.
type Register struct {
	api Backend
	nav navigator.Navigator

	liftlog.RegisterParams
}

func NewRegister(api Backend, nav navigator.Navigator) *Register {
	return &Register{api: api, nav: nav}
}

// Submit creates the account and moves to the login screen. It does not log in.
func (r *Register) Submit(ctx context.Context) error {
	if err := r.api.Register(ctx, r.RegisterParams); err != nil {
		return err
	}
	username := r.Username
	r.RegisterParams = liftlog.RegisterParams{Username: username}
	return r.nav.Navigate(navigator.RouteLogin, nil)
}
