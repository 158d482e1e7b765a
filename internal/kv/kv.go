// Package kv is the per-device key/value storage the record store is built on.
// Every key lives in a namespace; one namespace is one browser profile.
package kv

import (
	"context"
	"errors"
)

var ErrEmptyNamespace = errors.New("kv: empty namespace")

type Store interface {
	Get(ctx context.Context, ns, key string) (string, bool, error)
	Set(ctx context.Context, ns, key, value string) error
	Delete(ctx context.Context, ns, key string) error
}

// Bucket is a Store bound to one namespace.
type Bucket struct {
	store Store
	ns    string
}

func Namespaced(store Store, ns string) *Bucket {
	return &Bucket{store: store, ns: ns}
}

func (b *Bucket) Namespace() string { return b.ns }

func (b *Bucket) Get(ctx context.Context, key string) (string, bool, error) {
	if b.ns == "" {
		return "", false, ErrEmptyNamespace
	}
	return b.store.Get(ctx, b.ns, key)
}

func (b *Bucket) Set(ctx context.Context, key, value string) error {
	if b.ns == "" {
		return ErrEmptyNamespace
	}
	return b.store.Set(ctx, b.ns, key, value)
}

func (b *Bucket) Delete(ctx context.Context, key string) error {
	if b.ns == "" {
		return ErrEmptyNamespace
	}
	return b.store.Delete(ctx, b.ns, key)
}
