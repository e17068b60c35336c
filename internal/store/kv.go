package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/rigwizard/internal/logger"
	"github.com/mark3labs/rigwizard/internal/nats"
	"github.com/nats-io/nats.go/jetstream"
)

// KVStore keeps drafts in a JetStream key-value bucket.
type KVStore struct {
	kv jetstream.KeyValue
}

// OpenKV creates or binds the draft bucket.
func OpenKV(ctx context.Context, js jetstream.JetStream) (*KVStore, error) {
	kv, err := nats.SetupDraftBucket(ctx, js)
	if err != nil {
		return nil, fmt.Errorf("setting up draft bucket: %w", err)
	}
	return &KVStore{kv: kv}, nil
}

func (s *KVStore) Save(ctx context.Context, key string, value []byte) error {
	rev, err := s.kv.Put(ctx, key, value)
	if err != nil {
		return fmt.Errorf("putting draft %q: %w", key, err)
	}
	logger.Debug("Draft saved to bucket: key=%s rev=%d", key, rev)
	return nil
}

func (s *KVStore) Load(ctx context.Context, key string) ([]byte, error) {
	entry, err := s.kv.Get(ctx, key)
	if errors.Is(err, jetstream.ErrKeyNotFound) || errors.Is(err, jetstream.ErrKeyDeleted) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting draft %q: %w", key, err)
	}
	return entry.Value(), nil
}

func (s *KVStore) Remove(ctx context.Context, key string) error {
	if _, err := s.Load(ctx, key); err != nil {
		return err
	}
	if err := s.kv.Delete(ctx, key); err != nil {
		return fmt.Errorf("deleting draft %q: %w", key, err)
	}
	return nil
}

// Close is a no-op; the connection belongs to the caller.
func (s *KVStore) Close() error { return nil }
