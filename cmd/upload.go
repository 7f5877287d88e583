/*
Copyright © 2026 oiprep authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/imgset/oiprep/internal/iodata"
	"github.com/imgset/oiprep/internal/iojob"
	"github.com/imgset/oiprep/internal/iostore"
	"github.com/imgset/oiprep/internal/ioupload"
	"github.com/imgset/oiprep/pkg/config"
	"github.com/spf13/cobra"
)

// getUploadCmd returns the upload command.
func getUploadCmd() *cobra.Command {
	var keepGoing bool

	uploadCmd := &cobra.Command{
		Use:   "upload",
		Short: "Copy selected images to your bucket and upload the manifest",
		Long: `Copy the selected images into the destination store and build the manifest.

This command:
  1. Loads the selection produced by 'oiprep select'
  2. Copies every selected image from the public dataset bucket into
     the configured destination store, one object at a time
  3. Writes the labeling input manifest (one JSON object per line with
     a "source-ref" pointing at the copied image) and uploads it
  4. Prints the console steps for creating the labeling job

A failed copy aborts the batch unless --keep-going is set, in which
case the image is skipped with a warning and left out of the manifest.

Examples:
  oiprep upload
  oiprep upload --keep-going`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpload(keepGoing)
		},
	}

	uploadCmd.Flags().BoolVarP(&keepGoing, "keep-going", "k", false,
		"skip images that fail to copy instead of aborting")

	return uploadCmd
}

func runUpload(keepGoing bool) error {
	ctx := context.Background()

	sel, err := iodata.LoadSelection(config.SelectionFilePath(cfg.HomeDir))
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if len(sel.ImageIDs) == 0 {
		gn.Warn("Selection is empty; nothing to upload")
		return nil
	}

	ds, err := loadDataset()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	store, err := iostore.New(ctx, &cfg.Storage)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info(
		"Copying <em>%s</em> images to <em>%s</em>",
		humanize.Comma(int64(len(sel.ImageIDs))),
		store.URI(""),
	)

	manifestName := cfg.Labeling.ManifestName
	up := ioupload.New(store, ds, keepGoing)
	res, err := up.Run(
		ctx, sel,
		config.ManifestFilePath(cfg.HomeDir, manifestName),
		manifestName,
	)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Copied <em>%d</em> images, skipped %d", res.Copied, res.Skipped)
	gn.Info("Manifest uploaded to <em>%s</em>", res.ManifestURI)
	gn.Info("%s", iojob.Instructions(cfg, res.ManifestURI))

	return nil
}
