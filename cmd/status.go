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
	"github.com/imgset/oiprep/internal/iojob"
	"github.com/spf13/cobra"
)

// getStatusCmd returns the status command.
func getStatusCmd() *cobra.Command {
	var jobName string

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Check on the labeling job",
		Long: `Check the progress of the labeling job created from the manifest.

Examples:
  oiprep status
  oiprep status --job object-detection-3f2a91c4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(jobName)
		},
	}

	statusCmd.Flags().StringVarP(&jobName, "job", "j", "",
		"labeling job name (default from config)")

	return statusCmd
}

func runStatus(jobName string) error {
	ctx := context.Background()

	if jobName == "" {
		jobName = cfg.Labeling.JobName
	}

	client, err := iojob.NewClient(ctx, cfg.Storage.Region)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	st, err := iojob.GetStatus(ctx, client, jobName)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Labeling job <em>%s</em> is %s", st.Name, st.State)
	gn.Info(
		"Labeled: %d, unlabeled: %d, failed: %d",
		st.Labeled, st.Unlabeled, st.Failed,
	)
	if st.FailureReason != "" {
		gn.Warn("Failure reason: %s", st.FailureReason)
	}

	return nil
}
