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

	"github.com/gnames/gn"
	"github.com/imgset/oiprep/internal/iofetch"
	"github.com/imgset/oiprep/pkg/config"
	"github.com/spf13/cobra"
)

// getFetchCmd returns the fetch command.
func getFetchCmd() *cobra.Command {
	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download dataset metadata into the local cache",
		Long: `Download the metadata files of the configured dataset release.

This command:
  1. Reads the release entry from datasets.yaml
  2. Downloads the class description table and label hierarchy
  3. Downloads the bounding box annotation table (large, with progress)

Files already present in the cache are skipped, so re-running after an
interrupted download resumes where it left off.

Examples:
  oiprep fetch
  OIPREP_DATASET_RELEASE=2017_11 oiprep fetch`,
		RunE: runFetch,
	}
	return fetchCmd
}

func runFetch(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	ds, err := loadDataset()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Fetching metadata for release <em>%s</em>", ds.Release)

	fetcher := iofetch.New(config.MetadataDir(cfg.HomeDir))
	if err = fetcher.FetchDataset(ctx, ds); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Metadata is cached in <em>%s</em>",
		config.MetadataDir(cfg.HomeDir))
	gn.Info(`Next steps:
  - Run 'oiprep select' to pick images for your classes`)

	return nil
}
