package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mark3labs/rigwizard/internal/nats"
	"github.com/stretchr/testify/require"
)

// exerciseStore runs the behaviour every backend must share.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()
	const key = "pcBuilderFormData.default"

	_, err := s.Load(ctx, key)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, s.Remove(ctx, key), ErrNotFound)

	require.NoError(t, s.Save(ctx, key, []byte(`{"budget":{"min":500,"max":800}}`)))
	got, err := s.Load(ctx, key)
	require.NoError(t, err)
	require.JSONEq(t, `{"budget":{"min":500,"max":800}}`, string(got))

	// Overwrite.
	require.NoError(t, s.Save(ctx, key, []byte(`{"email":"a@b.co"}`)))
	got, err = s.Load(ctx, key)
	require.NoError(t, err)
	require.JSONEq(t, `{"email":"a@b.co"}`, string(got))

	// Keys are independent.
	require.NoError(t, s.Save(ctx, "pcBuilderFormData.office", []byte(`{}`)))

	require.NoError(t, s.Remove(ctx, key))
	_, err = s.Load(ctx, key)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.Load(ctx, "pcBuilderFormData.office")
	require.NoError(t, err)
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemoryStore()

	value := []byte("abc")
	require.NoError(t, s.Save(ctx, "k", value))
	value[0] = 'x'

	got, err := s.Load(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "abc", string(got))
}

func TestFileStore(t *testing.T) {
	t.Parallel()
	exerciseStore(t, NewFileStore(filepath.Join(t.TempDir(), "drafts")))
}

func TestFileStore_PathIsSlugged(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := NewFileStore(dir)
	require.Equal(t, filepath.Join(dir, "pcbuilderformdata-my-rig.json"), s.Path("pcBuilderFormData.My Rig"))

	require.NoError(t, s.Save(context.Background(), "pcBuilderFormData.My Rig", []byte(`{}`)))
	_, err := os.Stat(s.Path("pcBuilderFormData.My Rig"))
	require.NoError(t, err)
}

func TestSQLiteStore(t *testing.T) {
	t.Parallel()

	s, err := OpenSQLite(filepath.Join(t.TempDir(), "state", "drafts.db"))
	require.NoError(t, err)
	defer func() { require.NoError(t, s.Close()) }()

	exerciseStore(t, s)

	keys, err := s.Keys(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"pcBuilderFormData.office"}, keys)
}

func TestSQLiteStore_Reopen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "drafts.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, "k", []byte(`{"upgradePath":true}`)))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Load(ctx, "k")
	require.NoError(t, err)
	require.JSONEq(t, `{"upgradePath":true}`, string(got))
}

func TestKVStore(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	e, err := nats.Start(t.TempDir())
	require.NoError(t, err)
	defer func() { _ = e.Close() }()

	s, err := OpenKV(ctx, e.JS)
	require.NoError(t, err)

	exerciseStore(t, s)
}

func TestOpen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()

	s, err := Open(ctx, Options{DataDir: dir})
	require.NoError(t, err)
	require.IsType(t, &FileStore{}, s)

	s, err = Open(ctx, Options{Kind: KindMemory})
	require.NoError(t, err)
	require.IsType(t, &MemoryStore{}, s)

	s, err = Open(ctx, Options{Kind: KindSQLite, DataDir: dir})
	require.NoError(t, err)
	require.IsType(t, &SQLiteStore{}, s)
	require.NoError(t, s.Close())
	require.FileExists(t, filepath.Join(dir, "drafts.db"))

	_, err = Open(ctx, Options{Kind: KindNATS})
	require.Error(t, err)

	_, err = Open(ctx, Options{Kind: "redis"})
	require.ErrorContains(t, err, `unknown store "redis"`)
}
