package sessions_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lildude/liftlog/internal/cache"
	"github.com/lildude/liftlog/internal/database"
	"github.com/lildude/liftlog/internal/sessions"
)

func backends(t *testing.T) map[string]sessions.KV {
	t.Helper()

	db, err := database.InitDB(filepath.Join(t.TempDir(), "liftlog.db"))
	require.NoError(t, err)

	r := miniredis.RunT(t)
	rc, err := cache.NewRedisCache(context.Background(), fmt.Sprintf("redis://%s", r.Addr()), cache.WithPrefix("liftlog:"))
	require.NoError(t, err)
	t.Cleanup(func() { rc.Close() })

	return map[string]sessions.KV{
		"database": database.NewKV(db),
		"redis":    rc,
	}
}

func TestKVStore(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			st := sessions.NewKVStore(kv)

			s, err := st.Read(ctx)
			require.NoError(t, err)
			assert.Equal(t, sessions.Session{}, s)
			assert.False(t, s.Authenticated())

			want := sessions.Session{Token: "tok-1", UserID: 7, Username: "ana", ProfilePicture: "https://cdn.example.com/ana.jpg"}
			require.NoError(t, st.Save(ctx, want))

			got, err := st.Read(ctx)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.True(t, got.Authenticated())

			// Save overwrites every field, including ones left empty.
			require.NoError(t, st.Save(ctx, sessions.Session{Token: "tok-2", UserID: 7}))
			got, err = st.Read(ctx)
			require.NoError(t, err)
			assert.Equal(t, sessions.Session{Token: "tok-2", UserID: 7}, got)

			require.NoError(t, st.Clear(ctx))
			got, err = st.Read(ctx)
			require.NoError(t, err)
			assert.Equal(t, sessions.Session{}, got)
			assert.False(t, got.Authenticated())
		})
	}
}

func TestSessionAuthenticated(t *testing.T) {
	cases := map[string]struct {
		s    sessions.Session
		want bool
	}{
		"token and user id": {sessions.Session{Token: "t", UserID: 1}, true},
		"token only":        {sessions.Session{Token: "t"}, false},
		"user id only":      {sessions.Session{UserID: 1}, false},
		"empty":             {sessions.Session{}, false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.s.Authenticated())
		})
	}
}

func TestKVStoreMalformedUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := sessions.NewMockKV(ctrl)

	kv.EXPECT().Get(gomock.Any(), sessions.KeyToken).Return("tok", true, nil)
	kv.EXPECT().Get(gomock.Any(), sessions.KeyUsername).Return("", false, nil)
	kv.EXPECT().Get(gomock.Any(), sessions.KeyProfilePicture).Return("", false, nil)
	kv.EXPECT().Get(gomock.Any(), sessions.KeyUserID).Return("not-a-number", true, nil)

	s, err := sessions.NewKVStore(kv).Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok", s.Token)
	assert.Zero(t, s.UserID)
	assert.False(t, s.Authenticated())
}

func TestKVStoreBackendErrors(t *testing.T) {
	boom := errors.New("disk full")

	t.Run("read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		kv := sessions.NewMockKV(ctrl)
		kv.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", false, boom).Times(4)

		_, err := sessions.NewKVStore(kv).Read(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		kv := sessions.NewMockKV(ctrl)
		kv.EXPECT().Set(gomock.Any(), sessions.KeyToken, "tok").Return(boom)

		err := sessions.NewKVStore(kv).Save(context.Background(), sessions.Session{Token: "tok", UserID: 1})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("clear", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		kv := sessions.NewMockKV(ctrl)
		kv.EXPECT().
			Delete(gomock.Any(), sessions.KeyToken, sessions.KeyUserID, sessions.KeyUsername, sessions.KeyProfilePicture).
			Return(boom)

		err := sessions.NewKVStore(kv).Clear(context.Background())
		assert.ErrorIs(t, err, boom)
	})
}
