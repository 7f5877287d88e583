package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptClasses sets the list of object classes to collect images for.
func OptClasses(ss []string) Option {
	var classes []string
	for _, s := range ss {
		s = strings.TrimSpace(s)
		if s != "" {
			classes = append(classes, s)
		}
	}
	return func(c *Config) {
		if len(classes) > 0 {
			c.Classes = classes
		}
	}
}

// OptDatasetRelease sets the dataset release to pull metadata from.
func OptDatasetRelease(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Dataset Release", s) {
			c.Dataset.Release = s
		}
	}
}

// OptStorageProvider sets the destination store implementation.
// Valid values: "s3", "minio", "local".
func OptStorageProvider(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Storage.Provider", s) {
			c.Storage.Provider = s
		}
	}
}

// OptStorageBucket sets the destination bucket name.
func OptStorageBucket(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Storage Bucket", s) {
			c.Storage.Bucket = s
		}
	}
}

// OptStoragePrefix sets the object key prefix in the destination bucket.
func OptStoragePrefix(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		c.Storage.Prefix = strings.Trim(s, "/")
	}
}

// OptStorageRegion sets the destination bucket region.
func OptStorageRegion(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		c.Storage.Region = s
	}
}

// OptStorageEndpoint sets the server address for S3-compatible stores.
func OptStorageEndpoint(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		c.Storage.Endpoint = s
	}
}

// OptImagesPerClass sets the number of images selected per class.
func OptImagesPerClass(i int) Option {
	return func(c *Config) {
		if isValidInt("Select ImagesPerClass", i) {
			c.Select.ImagesPerClass = i
		}
	}
}

// OptBatch sets the zero-based batch offset for disjoint collaborator
// windows.
func OptBatch(i int) Option {
	return func(c *Config) {
		if i >= 0 {
			c.Select.Batch = i
		}
	}
}

// OptSkipImages sets the list of image IDs excluded from selection.
func OptSkipImages(ss []string) Option {
	return func(c *Config) {
		c.Select.SkipImages = ss
	}
}

// OptLabelingJobName sets the labeling job name.
func OptLabelingJobName(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Labeling JobName", s) {
			c.Labeling.JobName = s
		}
	}
}

// OptLabelingManifestName sets the file name of the generated manifest.
func OptLabelingManifestName(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Labeling ManifestName", s) {
			c.Labeling.ManifestName = s
		}
	}
}

// OptLogFormat sets the logging format. Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stdout", "stderr".
func OptLogDestination(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the user's home directory (runtime-only field).
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("HomeDir", s) {
			c.HomeDir = s
		}
	}
}
