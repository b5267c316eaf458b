// Package sessions persists the authenticated identity on the device.
package sessions

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/multierr"
)

// Fixed storage keys.
const (
	KeyToken          = "token"
	KeyUserID         = "userId"
	KeyUsername       = "username"
	KeyProfilePicture = "profilePicture"
)

var keys = []string{KeyToken, KeyUserID, KeyUsername, KeyProfilePicture}

// Session is the identity held on the device after login. Zero values mean absent.
type Session struct {
	Token          string
	UserID         int64
	Username       string
	ProfilePicture string
}

// Authenticated reports whether the session holds both a token and a user id.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.UserID != 0
}

//go:generate mockgen -source=$GOFILE -destination=mock_sessions.go -package=sessions

// Store persists a Session.
type Store interface {
	// Save overwrites every field. Callers must re-supply unchanged fields.
	Save(ctx context.Context, s Session) error
	Read(ctx context.Context) (Session, error)
	Clear(ctx context.Context) error
}

// KV is the device key/value backend a KVStore writes to.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

// KVStore keeps each session field under its own fixed key.
type KVStore struct {
	kv KV
}

func NewKVStore(kv KV) *KVStore {
	return &KVStore{kv: kv}
}

func (st *KVStore) Save(ctx context.Context, s Session) error {
	values := map[string]string{
		KeyToken:          s.Token,
		KeyUsername:       s.Username,
		KeyProfilePicture: s.ProfilePicture,
	}
	if s.UserID != 0 {
		values[KeyUserID] = strconv.FormatInt(s.UserID, 10)
	}

	var absent []string
	for _, k := range keys {
		v := values[k]
		if v == "" {
			absent = append(absent, k)
			continue
		}
		if err := st.kv.Set(ctx, k, v); err != nil {
			return fmt.Errorf("saving session: %w", err)
		}
	}
	if err := st.kv.Delete(ctx, absent...); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

// Read returns the stored session. A malformed user id reads as absent.
func (st *KVStore) Read(ctx context.Context) (Session, error) {
	var (
		s    Session
		errs error
	)
	get := func(key string) string {
		v, _, err := st.kv.Get(ctx, key)
		errs = multierr.Append(errs, err)
		return v
	}

	s.Token = get(KeyToken)
	s.Username = get(KeyUsername)
	s.ProfilePicture = get(KeyProfilePicture)
	if id := get(KeyUserID); id != "" {
		s.UserID, _ = strconv.ParseInt(id, 10, 64)
	}

	if errs != nil {
		return Session{}, fmt.Errorf("reading session: %w", errs)
	}
	return s, nil
}

func (st *KVStore) Clear(ctx context.Context) error {
	if err := st.kv.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}
