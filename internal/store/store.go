// Package store holds the backends the wizard saves its draft into. Every
// backend is a string-keyed byte store; the wizard owns the encoding.
package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/nats-io/nats.go/jetstream"
)

// ErrNotFound is returned by Load and Remove when nothing is saved under key.
var ErrNotFound = errors.New("draft not found")

// Store is a string-keyed persistence backend.
type Store interface {
	Save(ctx context.Context, key string, value []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
	Remove(ctx context.Context, key string) error
	Close() error
}

// Kind names a backend.
type Kind string

const (
	KindFile   Kind = "file"
	KindSQLite Kind = "sqlite"
	KindNATS   Kind = "nats"
	KindMemory Kind = "memory"
)

// Kinds lists the selectable backends.
var Kinds = []Kind{KindFile, KindSQLite, KindNATS, KindMemory}

// Options selects and configures a backend.
type Options struct {
	Kind    Kind
	DataDir string
	// JetStream is required by the nats backend.
	JetStream jetstream.JetStream
}

// Open creates the backend named by opts.Kind. An empty kind opens the file store.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Kind {
	case KindFile, "":
		return NewFileStore(filepath.Join(opts.DataDir, "drafts")), nil
	case KindSQLite:
		return OpenSQLite(filepath.Join(opts.DataDir, "drafts.db"))
	case KindNATS:
		if opts.JetStream == nil {
			return nil, errors.New("nats store requires a JetStream connection")
		}
		return OpenKV(ctx, opts.JetStream)
	case KindMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store %q", opts.Kind)
	}
}
