// Package ioupload copies selected images into the destination store and
// generates the labeling input manifest.
package ioupload

import (
	"context"
	"log/slog"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/imgset/oiprep/internal/iostore"
	"github.com/imgset/oiprep/pkg/manifest"
	"github.com/imgset/oiprep/pkg/selection"
	"github.com/imgset/oiprep/pkg/sources"
)

// Uploader copies images from the dataset's public bucket into the
// destination store and writes the manifest. Copies run sequentially;
// each one is an opaque, synchronous provider call.
type Uploader struct {
	store iostore.Store
	ds    *sources.Dataset

	// keepGoing downgrades a per-object copy failure from aborting the
	// batch to a logged warning that skips the image.
	keepGoing bool
}

// Result summarizes an upload run.
type Result struct {
	Copied      int
	Skipped     int
	ManifestURI string
}

// New creates an Uploader.
func New(store iostore.Store, ds *sources.Dataset, keepGoing bool) *Uploader {
	return &Uploader{store: store, ds: ds, keepGoing: keepGoing}
}

// Run copies every selected image into the store, writes the manifest to
// manifestPath, and uploads it under manifestName. Images are processed
// in selection order, so the manifest is reproducible for a given
// selection.
func (u *Uploader) Run(
	ctx context.Context,
	sel *selection.Selection,
	manifestPath, manifestName string,
) (*Result, error) {
	res := &Result{}
	entries := make([]manifest.Entry, 0, len(sel.ImageIDs))

	bar := pb.Full.Start(len(sel.ImageIDs))
	bar.Set("prefix", "images ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	for _, imgID := range sel.ImageIDs {
		dstKey := imgID + ".jpg"
		err := u.store.CopyFrom(
			ctx, u.ds.ImageBucket, u.ds.ImageKey(imgID), dstKey,
		)
		if err != nil {
			if !u.keepGoing {
				return nil, CopyError(u.ds.ImageURI(imgID), err)
			}
			slog.Warn("Skipping image that failed to copy",
				"image", imgID, "error", err.Error(),
			)
			res.Skipped++
			bar.Increment()
			continue
		}
		entries = append(entries, manifest.Entry{
			SourceRef: u.store.URI(dstKey),
		})
		res.Copied++
		bar.Increment()
	}

	if err := u.writeManifest(manifestPath, entries); err != nil {
		return nil, err
	}

	f, err := os.Open(manifestPath)
	if err != nil {
		return nil, UploadError(manifestName, err)
	}
	defer f.Close()
	if err = u.store.Upload(ctx, manifestName, f); err != nil {
		return nil, UploadError(manifestName, err)
	}
	res.ManifestURI = u.store.URI(manifestName)

	return res, nil
}

func (u *Uploader) writeManifest(
	path string,
	entries []manifest.Entry,
) error {
	f, err := os.Create(path)
	if err != nil {
		return WriteError(path, err)
	}
	err = manifest.Write(f, entries)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return WriteError(path, err)
	}
	return nil
}
