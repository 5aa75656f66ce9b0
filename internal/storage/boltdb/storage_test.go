package boltdb_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyegi/calendar/internal/storage"
	"github.com/gyegi/calendar/internal/storage/boltdb"
)

var _ storage.BlobStore = (*boltdb.Repo)(nil)

func TestRepo_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	r := boltdb.New(boltdb.Config{Path: dir})

	v, err := r.Load("suggestions")
	require.NoError(t, err)
	assert.Nil(t, v, "missing key loads as nil")

	require.NoError(t, r.Save("suggestions", []byte(`[{"id":"1"}]`)))
	require.NoError(t, r.Save("other", []byte("x")))

	v, err = r.Load("suggestions")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(v))

	assert.Equal(t, filepath.Join(dir, "gyegi.bdb"), r.Path())
	info, err := os.Stat(r.Path())
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestRepo_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, boltdb.New(boltdb.Config{Path: dir}).Save("k", []byte("v1")))
	require.NoError(t, boltdb.New(boltdb.Config{Path: dir}).Save("k", []byte("v2")))

	v, err := boltdb.New(boltdb.Config{Path: dir}).Load("k")
	require.NoError(t, err)
	assert.Equal(t, "v2", string(v))
}

func TestRepo_OpenFailure(t *testing.T) {
	r := boltdb.New(boltdb.Config{Path: filepath.Join(t.TempDir(), "missing", "dir")})

	_, err := r.Load("k")
	assert.Error(t, err)
	assert.Error(t, r.Save("k", []byte("v")))
}
