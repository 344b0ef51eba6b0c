package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ethiocareer/careercli/internal/common"
)

// Well-known keys.
const (
	KeyToken             = common.StorageKeyPrefix + "token"
	KeyUser              = common.StorageKeyPrefix + "user"
	KeyTheme             = common.StorageKeyPrefix + "theme"
	KeySeenNotifications = common.StorageKeyPrefix + "seen_notifs"
	photoKeyPrefix       = common.StorageKeyPrefix + "user_photo:"
)

// PhotoKey is the per-user key of the cached profile photo.
func PhotoKey(userID int64) string {
	return photoKeyPrefix + strconv.FormatInt(userID, 10)
}

// Store is a durable string-keyed byte store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// SetMany writes all pairs atomically.
	SetMany(ctx context.Context, values map[string][]byte) error
	// Delete removes the keys atomically. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

// GetJSON decodes the value at key into v. It reports found=false for an
// absent key and leaves v untouched.
func GetJSON(ctx context.Context, s Store, key string, v any) (bool, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode kv[%s]: %w", key, err)
	}
	return true, nil
}

// SetJSON encodes v and stores it at key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode kv[%s]: %w", key, err)
	}
	return s.Set(ctx, key, raw)
}
