package liftlog

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/lildude/liftlog/internal/client"
	"github.com/lildude/liftlog/internal/sessions"
)

// MaxProfilePictureSize is the largest profile picture Register will upload.
const MaxProfilePictureSize = 256 * 1024

// RegisterParams holds the sign-up form.
type RegisterParams struct {
	Username string
	Email    string
	Password string
	// ProfilePictureName is used as the upload filename.
	ProfilePictureName string
	ProfilePicture     []byte
}

// Login checks the credentials and, on success, stores the returned session.
func (a *API) Login(ctx context.Context, username, password string) (sessions.Session, error) {
	const op = "login"
	if strings.TrimSpace(username) == "" || password == "" {
		return sessions.Session{}, validationError(op, "username and password are required")
	}

	var lr loginResponse
	err := a.do(ctx, a.public(), op, http.MethodPost, "api/users/login", &loginRequest{Username: username, Password: password}, &lr)
	if err != nil {
		return sessions.Session{}, err
	}
	if lr.Token == "" || lr.UserID == 0 {
		return sessions.Session{}, a.remote(op, fmt.Errorf("login response is missing token or user id"))
	}

	s := sessions.Session{
		Token:          lr.Token,
		UserID:         lr.UserID,
		Username:       lr.Username,
		ProfilePicture: lr.ProfilePicture,
	}
	if err := a.store.Save(ctx, s); err != nil {
		a.log.WithError(err).Error("unable to store session")
		return sessions.Session{}, &Error{Kind: KindStorage, Op: op, Err: err}
	}
	a.log.WithField("username", s.Username).Info("logged in")
	return s, nil
}

// Logout clears the stored session and drops anything cached for it.
func (a *API) Logout(ctx context.Context) error {
	a.InvalidateCatalog(ctx)
	if a.catalog != nil {
		a.catalog.Clear()
	}
	if err := a.store.Clear(ctx); err != nil {
		a.log.WithError(err).Error("unable to clear session")
		return &Error{Kind: KindStorage, Op: "logout", Err: err}
	}
	return nil
}

// Register creates a new account. It does not log in.
func (a *API) Register(ctx context.Context, p RegisterParams) error {
	const op = "register"
	if strings.TrimSpace(p.Username) == "" || strings.TrimSpace(p.Email) == "" || p.Password == "" || len(p.ProfilePicture) == 0 {
		return validationError(op, "please fill in all fields and select an image")
	}
	if !strings.Contains(p.Email, "@") {
		return validationError(op, "email address is not valid")
	}
	if len(p.ProfilePicture) > MaxProfilePictureSize {
		return validationError(op, fmt.Sprintf("profile picture is larger than %d KB", MaxProfilePictureSize/1024))
	}

	name := p.ProfilePictureName
	if name == "" {
		name = "profile.jpg"
	}
	c := a.public()
	req, err := c.NewMultipartRequest(ctx, http.MethodPost, "api/users/register",
		map[string]string{
			"username": p.Username,
			"email":    p.Email,
			"password": p.Password,
		},
		[]client.File{{
			Field:       "profilePicture",
			Name:        name,
			ContentType: http.DetectContentType(p.ProfilePicture),
			Content:     p.ProfilePicture,
		}},
	)
	if err != nil {
		return a.remote(op, err)
	}
	return a.send(c, op, req, nil)
}
