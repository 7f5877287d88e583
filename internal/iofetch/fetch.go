// Package iofetch downloads dataset metadata files into the local cache.
package iofetch

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/imgset/oiprep/pkg/sources"
	"golang.org/x/sync/errgroup"
)

// Fetcher downloads files over HTTP into a cache directory, skipping
// files that are already present.
type Fetcher struct {
	client *http.Client
	dir    string
}

// New creates a Fetcher that stores files under dir.
func New(dir string) *Fetcher {
	return &Fetcher{
		// Large metadata files over slow links take a while; the
		// timeout only guards connection setup.
		client: &http.Client{
			Transport: &http.Transport{
				ResponseHeaderTimeout: 30 * time.Second,
			},
		},
		dir: dir,
	}
}

// Path returns the local cache path a URL downloads to.
func (f *Fetcher) Path(rawURL string) string {
	return filepath.Join(f.dir, fileName(rawURL))
}

// FetchDataset downloads the metadata files of a dataset release. The
// two small files (class names, hierarchy) download concurrently; the
// annotation table, by far the largest, downloads alone with a progress
// bar. Files already in the cache are left untouched.
func (f *Fetcher) FetchDataset(
	ctx context.Context,
	ds *sources.Dataset,
) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, u := range []string{ds.ClassNamesURL, ds.HierarchyURL} {
		g.Go(func() error {
			return f.Fetch(gctx, u, false)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return f.Fetch(ctx, ds.AnnotationsURL, true)
}

// Fetch downloads one URL into the cache. With progress enabled a byte
// progress bar is shown while the body streams to disk.
func (f *Fetcher) Fetch(
	ctx context.Context,
	rawURL string,
	progress bool,
) error {
	dest := f.Path(rawURL)
	if info, err := os.Stat(dest); err == nil && info.Size() > 0 {
		slog.Info("File is already cached",
			"file", filepath.Base(dest),
			"size", humanize.Bytes(uint64(info.Size())),
		)
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return RequestError(rawURL, err)
	}

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return RequestError(rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return BadStatusError(rawURL, resp.Status)
	}

	var body io.Reader = resp.Body
	if progress && resp.ContentLength > 0 {
		bar := pb.Full.Start64(resp.ContentLength)
		bar.Set(pb.Bytes, true)
		bar.Set("prefix", filepath.Base(dest)+" ")
		bar.Set(pb.CleanOnFinish, true)
		body = bar.NewProxyReader(resp.Body)
		defer bar.Finish()
	}

	// Download into a temp file first so an aborted transfer never
	// leaves a truncated file behind as "cached".
	part := dest + ".part"
	file, err := os.Create(part)
	if err != nil {
		return SaveError(part, err)
	}

	size, err := io.Copy(file, body)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(part)
		return SaveError(dest, err)
	}
	if err = os.Rename(part, dest); err != nil {
		_ = os.Remove(part)
		return SaveError(dest, err)
	}

	slog.Info("Downloaded file",
		"file", filepath.Base(dest),
		"size", humanize.Bytes(uint64(size)),
		"duration", time.Since(start).Round(time.Second).String(),
	)
	return nil
}

// fileName extracts the file name from a URL, falling back to the raw
// string when it does not parse.
func fileName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return path.Base(rawURL)
	}
	return path.Base(u.Path)
}
