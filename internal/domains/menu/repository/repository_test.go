package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "menu.json")
	repo := NewFileRepository(path)
	ctx := context.Background()

	_, err := repo.Load(ctx)
	require.Error(t, err)

	require.NoError(t, repo.Save(ctx, []byte(`{"dishes":[]}`)))
	data, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"dishes":[]}`, string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

type fakeObjectStore struct {
	objects map[string][]byte
	types   map[string]string
}

func (f *fakeObjectStore) Upload(_ context.Context, key string, data []byte, contentType string) error {
	f.objects[key] = append([]byte(nil), data...)
	f.types[key] = contentType
	return nil
}

func (f *fakeObjectStore) Download(_ context.Context, key string) ([]byte, error) {
	data, ok := f.objects[key]
	if !ok {
		return nil, errors.New("missing")
	}
	return data, nil
}

func TestMinIORepository(t *testing.T) {
	t.Parallel()

	store := &fakeObjectStore{objects: map[string][]byte{}, types: map[string]string{}}
	repo := NewMinIORepository(store, "menu/menu.json")
	ctx := context.Background()

	_, err := repo.Load(ctx)
	require.Error(t, err)

	require.NoError(t, repo.Save(ctx, []byte(`{"currency":"BHD"}`)))
	assert.Equal(t, "application/json", store.types["menu/menu.json"])

	data, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"currency":"BHD"}`, string(data))
	assert.Equal(t, "minio:menu/menu.json", repo.Source())
}
