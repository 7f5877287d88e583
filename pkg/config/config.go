// Package config provides configuration management for oiprep.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Environment Variables
//
// Use OIPREP_ prefix with underscores for nesting:
//
//	OIPREP_DATASET_RELEASE=2017_11
//	OIPREP_STORAGE_BUCKET=my-training-data
//	OIPREP_LOG_LEVEL=info
package config

// Config represents the complete oiprep configuration.
type Config struct {
	// Classes are the human-readable object classes to collect images
	// for. Each name must exist in the dataset's class description
	// table (matched case-insensitively).
	Classes []string `mapstructure:"classes" yaml:"classes"`

	// Dataset selects which dataset release to pull metadata from.
	Dataset DatasetConfig `mapstructure:"dataset" yaml:"dataset"`

	// Storage describes the destination object store that receives the
	// selected images and the labeling manifest.
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`

	// Select contains settings for the image selection pass.
	Select SelectConfig `mapstructure:"select" yaml:"select"`

	// Labeling contains settings for the downstream labeling job.
	Labeling LabelingConfig `mapstructure:"labeling" yaml:"labeling"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatasetConfig selects the dataset release.
type DatasetConfig struct {
	// Release is the dataset release name, e.g. "2017_11". It must match
	// a release defined in datasets.yaml.
	Release string `mapstructure:"release" yaml:"release"`
}

// StorageConfig describes the destination object store.
type StorageConfig struct {
	// Provider selects the store implementation.
	// Valid values: "s3", "minio", "local".
	Provider string `mapstructure:"provider" yaml:"provider"`

	// Bucket is the destination bucket name. For the "local" provider it
	// is a directory path.
	Bucket string `mapstructure:"bucket" yaml:"bucket"`

	// Prefix is prepended to every object key written to the bucket.
	Prefix string `mapstructure:"prefix" yaml:"prefix"`

	// Region is the bucket region ("s3" provider only).
	Region string `mapstructure:"region" yaml:"region"`

	// Endpoint is the server address for S3-compatible stores
	// ("minio" provider only), e.g. "play.min.io".
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`
}

// SelectConfig contains settings for the image selection pass.
type SelectConfig struct {
	// ImagesPerClass is the number of images to select for every
	// requested class.
	ImagesPerClass int `mapstructure:"images_per_class" yaml:"images_per_class"`

	// Batch is the zero-based batch offset. Collaborators running the
	// same selection with distinct batch numbers receive disjoint image
	// windows from the same annotation stream.
	Batch int `mapstructure:"batch" yaml:"batch"`

	// SkipImages lists image IDs excluded from selection, e.g. images
	// known to be corrupted or withdrawn from the source bucket.
	SkipImages []string `mapstructure:"skip_images" yaml:"skip_images"`
}

// LabelingConfig contains settings for the downstream labeling job.
type LabelingConfig struct {
	// JobName is the name of the labeling job for status checks, and
	// the base of the suggested name printed after upload.
	JobName string `mapstructure:"job_name" yaml:"job_name"`

	// ManifestName is the file name of the generated input manifest.
	ManifestName string `mapstructure:"manifest_name" yaml:"manifest_name"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Classes: []string{"Tire", "Vehicle registration plate"},
		Dataset: DatasetConfig{
			Release: "2017_11",
		},
		Storage: StorageConfig{
			Provider: "s3",
			Prefix:   "training/images",
		},
		Select: SelectConfig{
			ImagesPerClass: 100,
			Batch:          0,
		},
		Labeling: LabelingConfig{
			JobName:      "object-detection",
			ManifestName: "input.manifest",
		},
		Log: LogConfig{
			Format:      "json",
			Level:       "info",
			Destination: "file",
		},
	}
	return res
}
