// Package sources describes known dataset releases and the locations of
// their metadata files.
//
// The main entry point is the datasets.yaml file in the user's config
// directory. Every release entry points at the three metadata files the
// pipeline consumes (class description table, label hierarchy, bounding
// box annotations) plus the public bucket holding the images themselves.
package sources

import (
	"fmt"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// Config represents the complete datasets.yaml configuration file.
type Config struct {
	// Datasets is the list of known dataset releases.
	Datasets []Dataset `yaml:"datasets"`
}

// Dataset describes one dataset release.
type Dataset struct {
	// Release is the release name used in config and CLI flags,
	// e.g. "2017_11".
	Release string `yaml:"release"`

	// ClassNamesURL points at the two-column CSV mapping taxonomy IDs to
	// display names.
	ClassNamesURL string `yaml:"class_names_url"`

	// HierarchyURL points at the JSON-encoded label hierarchy tree.
	HierarchyURL string `yaml:"hierarchy_url"`

	// AnnotationsURL points at the CSV table of human-verified bounding
	// box annotations.
	AnnotationsURL string `yaml:"annotations_url"`

	// ImageBucket is the public bucket holding the release's images.
	ImageBucket string `yaml:"image_bucket"`

	// ImagePrefix is the key prefix of images inside ImageBucket.
	ImagePrefix string `yaml:"image_prefix"`
}

// Load reads a datasets.yaml file.
func Load(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("cannot read datasets file: %w", err)
	}
	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("cannot parse datasets file: %w", err)
	}
	for i := range cfg.Datasets {
		if err = cfg.Datasets[i].Validate(); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

// Release returns the dataset entry with the given release name.
func (c *Config) Release(name string) (*Dataset, error) {
	for i := range c.Datasets {
		if c.Datasets[i].Release == name {
			return &c.Datasets[i], nil
		}
	}
	return nil, fmt.Errorf("unknown dataset release %q", name)
}

// Validate checks that all required fields of the dataset are present.
func (d *Dataset) Validate() error {
	fields := []struct {
		name, val string
	}{
		{"release", d.Release},
		{"class_names_url", d.ClassNamesURL},
		{"hierarchy_url", d.HierarchyURL},
		{"annotations_url", d.AnnotationsURL},
		{"image_bucket", d.ImageBucket},
	}
	for _, f := range fields {
		if f.val == "" {
			return fmt.Errorf(
				"dataset entry is missing required field %q", f.name,
			)
		}
	}
	return nil
}

// ImageKey returns the object key of an image inside ImageBucket.
func (d *Dataset) ImageKey(imageID string) string {
	return path.Join(d.ImagePrefix, imageID+".jpg")
}

// ImageURI returns the full s3 URI of an image in the source bucket.
func (d *Dataset) ImageURI(imageID string) string {
	return fmt.Sprintf("s3://%s/%s", d.ImageBucket, d.ImageKey(imageID))
}

// MetadataURLs returns the three metadata files of the release in fetch
// order: class names, hierarchy, annotations.
func (d *Dataset) MetadataURLs() []string {
	return []string{d.ClassNamesURL, d.HierarchyURL, d.AnnotationsURL}
}
