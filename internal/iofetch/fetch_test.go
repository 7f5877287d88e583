package iofetch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/imgset/oiprep/internal/iofetch"
	"github.com/imgset/oiprep/pkg/sources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	f := iofetch.New("/cache/metadata")

	tests := []struct {
		name string
		url  string
		res  string
	}{
		{
			name: "plain file",
			url:  "https://example.org/2017_11/class-descriptions.csv",
			res:  filepath.Join("/cache/metadata", "class-descriptions.csv"),
		},
		{
			name: "query string ignored",
			url:  "https://example.org/hierarchy.json?token=abc",
			res:  filepath.Join("/cache/metadata", "hierarchy.json"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.res, f.Path(tt.url))
		})
	}
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("id,name\n/m/0h9mv,Tire\n"))
		},
	))
	defer srv.Close()

	dir := t.TempDir()
	f := iofetch.New(dir)
	url := srv.URL + "/class-descriptions.csv"

	err := f.Fetch(context.Background(), url, false)
	require.NoError(t, err)

	data, err := os.ReadFile(f.Path(url))
	require.NoError(t, err)
	assert.Contains(t, string(data), "/m/0h9mv")

	// No leftover temp file.
	_, err = os.Stat(f.Path(url) + ".part")
	assert.True(t, os.IsNotExist(err))
}

func TestFetchCached(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			hits++
			_, _ = w.Write([]byte("fresh"))
		},
	))
	defer srv.Close()

	dir := t.TempDir()
	f := iofetch.New(dir)
	url := srv.URL + "/cached.csv"

	require.NoError(t, os.WriteFile(f.Path(url), []byte("stale"), 0644))

	err := f.Fetch(context.Background(), url, false)
	require.NoError(t, err)

	// Cached file stands, the server was never contacted.
	assert.Equal(t, 0, hits)
	data, err := os.ReadFile(f.Path(url))
	require.NoError(t, err)
	assert.Equal(t, "stale", string(data))
}

func TestFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		},
	))
	defer srv.Close()

	f := iofetch.New(t.TempDir())
	err := f.Fetch(context.Background(), srv.URL+"/missing.csv", false)
	require.Error(t, err)
}

func TestFetchConnectionError(t *testing.T) {
	f := iofetch.New(t.TempDir())
	err := f.Fetch(
		context.Background(), "http://127.0.0.1:1/unreachable.csv", false,
	)
	require.Error(t, err)
}

func TestFetchDataset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("payload for " + r.URL.Path))
		},
	))
	defer srv.Close()

	dir := t.TempDir()
	f := iofetch.New(dir)
	ds := &sources.Dataset{
		Release:        "2017_11",
		ClassNamesURL:  srv.URL + "/class-descriptions.csv",
		HierarchyURL:   srv.URL + "/bbox_labels_600_hierarchy.json",
		AnnotationsURL: srv.URL + "/annotations-human-bbox.csv",
		ImageBucket:    "open-images-dataset",
	}

	err := f.FetchDataset(context.Background(), ds)
	require.NoError(t, err)

	for _, u := range ds.MetadataURLs() {
		data, err := os.ReadFile(f.Path(u))
		require.NoError(t, err, u)
		assert.NotEmpty(t, data, u)
	}
}
