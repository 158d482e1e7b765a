package repo

import (
	"context"
	"fmt"
)

func (r *RecordStore) getString(ctx context.Context, key string) (string, error) {
	v, _, err := r.KV.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	return v, nil
}

func (r *RecordStore) setString(ctx context.Context, key, value string) error {
	if err := r.KV.Set(ctx, key, value); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (r *RecordStore) SavedEmail(ctx context.Context) (string, error) {
	return r.getString(ctx, KeySavedEmail)
}

func (r *RecordStore) SetSavedEmail(ctx context.Context, email string) error {
	return r.setString(ctx, KeySavedEmail, email)
}

// Language returns the raw stored value; callers validate it.
func (r *RecordStore) Language(ctx context.Context) (string, error) {
	return r.getString(ctx, KeyLanguage)
}

func (r *RecordStore) SetLanguage(ctx context.Context, lang string) error {
	return r.setString(ctx, KeyLanguage, lang)
}

func (r *RecordStore) Theme(ctx context.Context) (string, error) {
	return r.getString(ctx, KeyTheme)
}

func (r *RecordStore) SetTheme(ctx context.Context, theme string) error {
	return r.setString(ctx, KeyTheme, theme)
}
