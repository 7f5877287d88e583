package ioupload_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/imgset/oiprep/internal/iostore"
	"github.com/imgset/oiprep/internal/ioupload"
	"github.com/imgset/oiprep/pkg/config"
	"github.com/imgset/oiprep/pkg/manifest"
	"github.com/imgset/oiprep/pkg/selection"
	"github.com/imgset/oiprep/pkg/sources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture builds a local source "bucket" with images and a local
// destination store.
type fixture struct {
	ds    *sources.Dataset
	store *iostore.LocalStore
	dest  string
	cache string
}

func setup(t *testing.T, imageIDs []string) *fixture {
	t.Helper()

	srcBucket := t.TempDir()
	srcDir := filepath.Join(srcBucket, "train")
	require.NoError(t, os.MkdirAll(srcDir, 0755))
	for _, id := range imageIDs {
		require.NoError(t, os.WriteFile(
			filepath.Join(srcDir, id+".jpg"), []byte("jpeg:"+id), 0644,
		))
	}

	dest := t.TempDir()
	cfg := &config.StorageConfig{
		Provider: "local",
		Bucket:   dest,
		Prefix:   "training/images",
	}

	return &fixture{
		ds: &sources.Dataset{
			Release:     "2017_11",
			ImageBucket: srcBucket,
			ImagePrefix: "train",
		},
		store: iostore.NewLocal(cfg),
		dest:  dest,
		cache: t.TempDir(),
	}
}

func sel(imageIDs ...string) *selection.Selection {
	return &selection.Selection{ImageIDs: imageIDs}
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	fx := setup(t, []string{"img1", "img2"})

	up := ioupload.New(fx.store, fx.ds, false)
	manifestPath := filepath.Join(fx.cache, "input.manifest")
	res, err := up.Run(ctx, sel("img1", "img2"), manifestPath, "input.manifest")
	require.NoError(t, err)

	assert.Equal(t, 2, res.Copied)
	assert.Equal(t, 0, res.Skipped)

	// Images landed under the store prefix.
	data, err := os.ReadFile(filepath.Join(
		fx.dest, "training", "images", "img1.jpg",
	))
	require.NoError(t, err)
	assert.Equal(t, "jpeg:img1", string(data))

	// The manifest references the stored copies in selection order.
	f, err := os.Open(manifestPath)
	require.NoError(t, err)
	defer f.Close()
	entries, err := manifest.Read(f)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, fx.store.URI("img1.jpg"), entries[0].SourceRef)
	assert.Equal(t, fx.store.URI("img2.jpg"), entries[1].SourceRef)

	// The manifest was also uploaded to the store.
	assert.Equal(t, fx.store.URI("input.manifest"), res.ManifestURI)
	_, err = os.Stat(res.ManifestURI)
	require.NoError(t, err)
}

func TestRunCopyFailureAborts(t *testing.T) {
	ctx := context.Background()
	fx := setup(t, []string{"img1"})

	up := ioupload.New(fx.store, fx.ds, false)
	manifestPath := filepath.Join(fx.cache, "input.manifest")
	_, err := up.Run(
		ctx, sel("img1", "missing"), manifestPath, "input.manifest",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestRunKeepGoing(t *testing.T) {
	ctx := context.Background()
	fx := setup(t, []string{"img1", "img3"})

	up := ioupload.New(fx.store, fx.ds, true)
	manifestPath := filepath.Join(fx.cache, "input.manifest")
	res, err := up.Run(
		ctx, sel("img1", "missing", "img3"), manifestPath, "input.manifest",
	)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Copied)
	assert.Equal(t, 1, res.Skipped)

	// Skipped images stay out of the manifest.
	f, err := os.Open(manifestPath)
	require.NoError(t, err)
	defer f.Close()
	entries, err := manifest.Read(f)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, fx.store.URI("img1.jpg"), entries[0].SourceRef)
	assert.Equal(t, fx.store.URI("img3.jpg"), entries[1].SourceRef)
}

func TestRunEmptySelection(t *testing.T) {
	ctx := context.Background()
	fx := setup(t, nil)

	up := ioupload.New(fx.store, fx.ds, false)
	manifestPath := filepath.Join(fx.cache, "input.manifest")
	res, err := up.Run(ctx, sel(), manifestPath, "input.manifest")
	require.NoError(t, err)

	assert.Equal(t, 0, res.Copied)
	data, err := os.ReadFile(manifestPath)
	require.NoError(t, err)
	assert.Empty(t, data)
}
