package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Skotchmaster/rockstar_shop/internal/kv"
	"github.com/Skotchmaster/rockstar_shop/internal/logging"
)

const (
	KeyUsers       = "rockstar_users"
	KeyCurrentUser = "rockstar_current_user"
	KeyAccessKeys  = "rockstar_access_keys"
	KeySavedEmail  = "rockstar_saved_email"
	KeyLanguage    = "rockstar_language"
	KeyTheme       = "rockstar_theme"
)

var (
	ErrKeyNotFound    = errors.New("access key not found")
	ErrKeyAlreadyUsed = errors.New("access key already used")
)

// RecordStore is the browser-local record layer of one device.
type RecordStore struct {
	KV *kv.Bucket
}

func New(bucket *kv.Bucket) *RecordStore {
	return &RecordStore{KV: bucket}
}

// readJSON decodes key into dst. A missing key or corrupted value reports
// found=false with a nil error; only backend failures are returned.
func (r *RecordStore) readJSON(ctx context.Context, key string, dst any) (bool, error) {
	raw, ok, err := r.KV.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok || raw == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		logging.FromContext(ctx).Warn("storage_parse_failed",
			"key", key, "namespace", r.KV.Namespace(), logging.Err(err))
		return false, nil
	}
	return true, nil
}

func (r *RecordStore) writeJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.KV.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
