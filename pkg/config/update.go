package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir).
// Used for round-tripping config.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	var i int

	if len(c.Classes) > 0 {
		res = append(res, OptClasses(c.Classes))
	}

	s = c.Dataset.Release
	if s != "" {
		res = append(res, OptDatasetRelease(s))
	}

	s = c.Storage.Provider
	if s != "" {
		res = append(res, OptStorageProvider(s))
	}
	s = c.Storage.Bucket
	if s != "" {
		res = append(res, OptStorageBucket(s))
	}
	s = c.Storage.Prefix
	if s != "" {
		res = append(res, OptStoragePrefix(s))
	}
	s = c.Storage.Region
	if s != "" {
		res = append(res, OptStorageRegion(s))
	}
	s = c.Storage.Endpoint
	if s != "" {
		res = append(res, OptStorageEndpoint(s))
	}

	i = c.Select.ImagesPerClass
	if i > 0 {
		res = append(res, OptImagesPerClass(i))
	}
	i = c.Select.Batch
	if i > 0 {
		res = append(res, OptBatch(i))
	}
	if len(c.Select.SkipImages) > 0 {
		res = append(res, OptSkipImages(c.Select.SkipImages))
	}

	s = c.Labeling.JobName
	if s != "" {
		res = append(res, OptLabelingJobName(s))
	}
	s = c.Labeling.ManifestName
	if s != "" {
		res = append(res, OptLabelingManifestName(s))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}

	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Storage.Provider": {"s3": s, "minio": s, "local": s},
		"Log.Level":        {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":       {"json": s, "text": s},
		"Log.Destination":  {"file": s, "stdout": s, "stderr": s},
	}
	if _, ok := data[name][val]; ok {
		return true
	}

	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		lines = append(lines, fmt.Sprintf("  * %s", v))
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
