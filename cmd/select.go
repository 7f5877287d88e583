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
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/imgset/oiprep/internal/iodata"
	"github.com/imgset/oiprep/internal/iofetch"
	"github.com/imgset/oiprep/pkg/config"
	"github.com/imgset/oiprep/pkg/selection"
	"github.com/imgset/oiprep/pkg/taxonomy"
	"github.com/spf13/cobra"
)

// getSelectCmd returns the select command.
func getSelectCmd() *cobra.Command {
	var classes []string
	var count, batch int

	selectCmd := &cobra.Command{
		Use:   "select",
		Short: "Select images that contain the requested classes",
		Long: `Select a deterministic window of images for every requested class.

This command:
  1. Resolves class names to taxonomy IDs in the class description table
  2. Expands every ID over the label hierarchy into its descendant set
  3. Streams the annotation table once, collecting per-class image
     windows in file order
  4. Persists the selection for 'oiprep upload'

Collaborators can split the work: the same selection with --batch 0 and
--batch 1 yields disjoint image windows from the same annotation stream.

Examples:
  oiprep select
  oiprep select --classes "Tire,Vehicle registration plate"
  oiprep select --count 250 --batch 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var runtimeOpts []config.Option
			if len(classes) > 0 {
				runtimeOpts = append(runtimeOpts, config.OptClasses(classes))
			}
			if count > 0 {
				runtimeOpts = append(runtimeOpts, config.OptImagesPerClass(count))
			}
			if cmd.Flags().Changed("batch") {
				runtimeOpts = append(runtimeOpts, config.OptBatch(batch))
			}
			cfg.Update(runtimeOpts)
			return runSelect()
		},
	}

	selectCmd.Flags().StringSliceVarP(&classes, "classes", "c", nil,
		"comma-separated class names to collect images for")
	selectCmd.Flags().IntVarP(&count, "count", "n", 0,
		"number of images to select per class")
	selectCmd.Flags().IntVarP(&batch, "batch", "b", 0,
		"zero-based batch offset for disjoint collaborator windows")

	return selectCmd
}

func runSelect() error {
	start := time.Now()

	ds, err := loadDataset()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	fetcher := iofetch.New(config.MetadataDir(cfg.HomeDir))

	// Phase 1: class names to root taxonomy IDs.
	table, err := iodata.OpenClassTable(fetcher.Path(ds.ClassNamesURL))
	if err != nil {
		gn.Warn("Metadata is missing. Run 'oiprep fetch' first.")
		gn.PrintErrorMessage(err)
		return err
	}
	ids, err := taxonomy.ResolveClasses(cfg.Classes, table)
	_ = table.Close()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	for _, name := range cfg.Classes {
		slog.Info("Resolved class", "class", name, "id", ids[name])
	}

	// Phase 2: expand each root ID over the label hierarchy.
	root, err := iodata.LoadHierarchy(fetcher.Path(ds.HierarchyURL))
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	classSets := make([]selection.Class, 0, len(cfg.Classes))
	for _, name := range cfg.Classes {
		set := root.Expand(ids[name])
		if len(set) == 0 {
			gn.Warn(
				"Class <em>%s</em> (%s) is absent from the label hierarchy; "+
					"it cannot match any annotation",
				name, ids[name],
			)
		}
		classSets = append(classSets, selection.Class{Name: name, IDs: set})
	}

	// Phase 3: single streaming pass over the annotation table.
	sel := selection.NewSelector(
		classSets,
		cfg.Select.ImagesPerClass,
		cfg.Select.Batch,
		cfg.Select.SkipImages,
	)
	err = iodata.StreamAnnotations(fetcher.Path(ds.AnnotationsURL), sel, true)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	res := sel.Finalize()
	for _, uc := range res.Underfilled() {
		gn.Warn(
			"Class <em>%s</em> has only %d of %d requested images",
			uc.Name, uc.Count, cfg.Select.ImagesPerClass,
		)
	}

	selPath := config.SelectionFilePath(cfg.HomeDir)
	if err = iodata.SaveSelection(selPath, res); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Selection complete",
		"images", len(res.ImageIDs),
		"classes", len(res.Classes),
		"records", sel.Records(),
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	gn.Info(
		"Selected <em>%s</em> images for %d classes in %s",
		humanize.Comma(int64(len(res.ImageIDs))),
		len(res.Classes),
		gnfmt.TimeString(time.Since(start).Seconds()),
	)
	gn.Info(`Next steps:
  - Run 'oiprep upload' to copy the images to your bucket`)

	return nil
}
