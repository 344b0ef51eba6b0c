package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreContract exercises the behaviour every backend must share.
func runStoreContract(t *testing.T, newStore func(t *testing.T) Store) {
	ctx := context.Background()

	t.Run("get absent returns nil nil", func(t *testing.T) {
		s := newStore(t)
		v, err := s.Get(ctx, "absent")
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("set then get", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, KeyTheme, []byte("dark")))
		v, err := s.Get(ctx, KeyTheme)
		require.NoError(t, err)
		assert.Equal(t, []byte("dark"), v)
	})

	t.Run("set overwrites", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, KeyToken, []byte("old")))
		require.NoError(t, s.Set(ctx, KeyToken, []byte("new")))
		v, err := s.Get(ctx, KeyToken)
		require.NoError(t, err)
		assert.Equal(t, []byte("new"), v)
	})

	t.Run("set many then delete many", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.SetMany(ctx, map[string][]byte{
			KeyToken: []byte("t"),
			KeyUser:  []byte(`{"id":1}`),
		}))

		v, err := s.Get(ctx, KeyUser)
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"id":1}`), v)

		require.NoError(t, s.Delete(ctx, KeyToken, KeyUser, "never-set"))

		for _, k := range []string{KeyToken, KeyUser} {
			v, err := s.Get(ctx, k)
			require.NoError(t, err)
			assert.Nil(t, v, k)
		}
	})

	t.Run("json helpers", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, SetJSON(ctx, s, KeySeenNotifications, []string{"alerts:1"}))

		var got []string
		found, err := GetJSON(ctx, s, KeySeenNotifications, &got)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []string{"alerts:1"}, got)

		found, err = GetJSON(ctx, s, "absent", &got)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("json helper reports corrupt value", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, KeyUser, []byte("{not json")))
		var v map[string]any
		_, err := GetJSON(ctx, s, KeyUser, &v)
		require.Error(t, err)
	})
}

func TestPhotoKey(t *testing.T) {
	assert.Equal(t, "jp_user_photo:42", PhotoKey(42))
}
