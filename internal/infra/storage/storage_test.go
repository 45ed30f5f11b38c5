package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBucket_UploadListDelete(t *testing.T) {
	ctx := context.Background()
	bucket := newBucketFrom(memblob.OpenBucket(nil), "gs://adcopy-audio")
	t.Cleanup(func() { _ = bucket.Close() })

	uri, err := bucket.Upload(ctx, "audio/a.wav", []byte("RIFF"), "audio/wav")
	require.NoError(t, err)
	assert.Equal(t, "gs://adcopy-audio/audio/a.wav", uri)

	_, err = bucket.Upload(ctx, "other/b.txt", []byte("x"), "text/plain")
	require.NoError(t, err)

	objects, err := bucket.List(ctx, "audio/")
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, "audio/a.wav", objects[0].Key)
	assert.Equal(t, uri, objects[0].URI)
	assert.Equal(t, int64(4), objects[0].Size)

	require.NoError(t, bucket.Delete(ctx, "audio/a.wav"))

	objects, err = bucket.List(ctx, "audio/")
	require.NoError(t, err)
	assert.Empty(t, objects)
}

func TestBucketRoot(t *testing.T) {
	assert.Equal(t, "gs://bucket", bucketRoot("gs://bucket?access_id=x"))
	assert.Equal(t, "mem://", bucketRoot("mem://"))
}

func TestTempDir_WriteListRemove(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "adcopy")
	store := newTempDir(dir)

	files, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, files, "missing directory lists as empty")

	path, err := store.Write([]byte("data"), "JPG")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".jpg"))
	assert.Equal(t, dir, filepath.Dir(path))

	other, err := store.Write([]byte("data"), ".jpg")
	require.NoError(t, err)
	assert.NotEqual(t, path, other)

	files, err = store.List()
	require.NoError(t, err)
	assert.Len(t, files, 2)

	require.NoError(t, store.Remove(path))
	require.NoError(t, store.Remove(path), "removing twice is not an error")
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	assert.Error(t, store.Remove(filepath.Join(dir, "..", "escape.txt")))
}
