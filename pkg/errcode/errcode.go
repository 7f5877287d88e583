// Package errcode defines error codes used in user-facing error messages.
package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Fetch errors
	FetchRequestError
	FetchBadStatusError
	FetchSaveError

	// Dataset sources errors
	DatasetsConfigError
	DatasetUnknownReleaseError

	// Select errors
	SelectClassTableError
	SelectHierarchyError
	SelectAnnotationsError
	SelectionSaveError
	SelectionLoadError

	// Storage errors
	StoreConfigError
	ImageCopyError
	ManifestWriteError
	ManifestUploadError

	// Labeling job errors
	JobStatusError
)
