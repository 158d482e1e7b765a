package repo

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/rockstar_shop/internal/models"
)

func (r *RecordStore) GetAccessKeys(ctx context.Context) ([]models.AccessKey, error) {
	var keys []models.AccessKey
	ok, err := r.readJSON(ctx, KeyAccessKeys, &keys)
	if err != nil {
		return nil, err
	}
	if !ok || keys == nil {
		return []models.AccessKey{}, nil
	}
	return keys, nil
}

func (r *RecordStore) GetAccessKey(ctx context.Context, key string) (*models.AccessKey, error) {
	keys, err := r.GetAccessKeys(ctx)
	if err != nil {
		return nil, err
	}
	for i := range keys {
		if keys[i].Key == key {
			k := keys[i]
			return &k, nil
		}
	}
	return nil, nil
}

// SaveAccessKey appends a new key or replaces the record with the same key.
func (r *RecordStore) SaveAccessKey(ctx context.Context, key models.AccessKey) error {
	keys, err := r.GetAccessKeys(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range keys {
		if keys[i].Key == key.Key {
			keys[i] = key
			replaced = true
			break
		}
	}
	if !replaced {
		keys = append(keys, key)
	}
	return r.writeJSON(ctx, KeyAccessKeys, keys)
}

func (r *RecordStore) DeleteAccessKey(ctx context.Context, key string) error {
	keys, err := r.GetAccessKeys(ctx)
	if err != nil {
		return err
	}
	out := keys[:0]
	found := false
	for _, k := range keys {
		if k.Key == key {
			found = true
			continue
		}
		out = append(out, k)
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return r.writeJSON(ctx, KeyAccessKeys, out)
}

// MarkAccessKeyUsed flips isUsed once; a used key is never reset.
func (r *RecordStore) MarkAccessKeyUsed(ctx context.Context, key, userID string) error {
	keys, err := r.GetAccessKeys(ctx)
	if err != nil {
		return err
	}
	for i := range keys {
		if keys[i].Key != key {
			continue
		}
		if keys[i].IsUsed {
			return fmt.Errorf("%w: %s", ErrKeyAlreadyUsed, key)
		}
		keys[i].IsUsed = true
		keys[i].UsedBy = userID
		return r.writeJSON(ctx, KeyAccessKeys, keys)
	}
	return fmt.Errorf("%w: %s", ErrKeyNotFound, key)
}
