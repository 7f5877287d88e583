// Package iojob reports the status of the downstream labeling job and
// prints the console steps for creating one.
package iojob

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker"
	"github.com/google/uuid"
	"github.com/imgset/oiprep/pkg/config"
)

// DescribeClient is the one SageMaker operation the status check needs.
type DescribeClient interface {
	DescribeLabelingJob(
		ctx context.Context,
		params *sagemaker.DescribeLabelingJobInput,
		optFns ...func(*sagemaker.Options),
	) (*sagemaker.DescribeLabelingJobOutput, error)
}

// Status is a condensed labeling job status.
type Status struct {
	Name          string
	State         string
	FailureReason string
	Labeled       int32
	Failed        int32
	Unlabeled     int32
}

// NewClient creates a SageMaker client using the default AWS credential
// chain.
func NewClient(ctx context.Context, region string) (*sagemaker.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, StatusError("", err)
	}
	return sagemaker.NewFromConfig(awsCfg), nil
}

// GetStatus fetches the current state of the labeling job.
func GetStatus(
	ctx context.Context,
	client DescribeClient,
	jobName string,
) (*Status, error) {
	out, err := client.DescribeLabelingJob(ctx,
		&sagemaker.DescribeLabelingJobInput{
			LabelingJobName: aws.String(jobName),
		},
	)
	if err != nil {
		return nil, StatusError(jobName, err)
	}

	res := &Status{
		Name:          jobName,
		State:         string(out.LabelingJobStatus),
		FailureReason: aws.ToString(out.FailureReason),
	}
	if c := out.LabelCounters; c != nil {
		res.Labeled = aws.ToInt32(c.TotalLabeled)
		res.Failed = aws.ToInt32(c.FailedNonRetryableError)
		res.Unlabeled = aws.ToInt32(c.Unlabeled)
	}
	return res, nil
}

// Instructions returns the manual console steps for creating the
// labeling job once the manifest is uploaded. Job names must be unique
// per account, hence the generated suffix.
func Instructions(cfg *config.Config, manifestURI string) string {
	jobName := fmt.Sprintf(
		"%s-%s", cfg.Labeling.JobName, uuid.NewString()[:8],
	)
	classes := strings.Join(cfg.Classes, "\n    - ")
	return fmt.Sprintf(`Next steps (SageMaker console):
  1. Open Ground Truth -> Labeling jobs -> Create labeling job.
  2. Job name: %s
  3. Input dataset location: %s
  4. Task type: Image -> Bounding box.
  5. Add one label per class:
    - %s
  6. Select your workforce (private, vendor or Mechanical Turk)
     and create the job.

Check progress later with:
  oiprep status --job %s`,
		jobName, manifestURI, classes, jobName,
	)
}
