package domain

import "go.trai.ch/zerr"

var (
	// ErrPermissionDenied is returned when the photo library cannot be read
	// because access was denied or never requested. It surfaces as an empty
	// catalog with grant instructions, not as a clustering failure.
	ErrPermissionDenied = zerr.New("photo library access not granted")

	// ErrFetchFailed is returned when an asset source call fails during a
	// reload. The previous catalog is kept untouched.
	ErrFetchFailed = zerr.New("failed to fetch photos")

	// ErrUnknownCluster is returned when photos are requested for a cluster
	// id that is not in the current catalog.
	ErrUnknownCluster = zerr.New("unknown cluster")

	// ErrClusterNotPopulated is returned when a time cluster has no cache
	// entry. Time clusters are pre-populated at reload, so this indicates a
	// broken catalog rather than a recoverable condition.
	ErrClusterNotPopulated = zerr.New("time cluster missing from photo cache")

	// ErrLibraryOpenFailed is returned when the media library database
	// cannot be opened or migrated.
	ErrLibraryOpenFailed = zerr.New("failed to open media library")

	// ErrLibraryQueryFailed is returned when a media library query fails.
	ErrLibraryQueryFailed = zerr.New("media library query failed")

	// ErrScanFailed is returned when indexing a photo directory fails.
	ErrScanFailed = zerr.New("failed to index photo directory")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when a config value is out of range.
	ErrConfigInvalid = zerr.New("invalid config value")

	// ErrMomentImportFailed is returned when a moment fixture file cannot be
	// loaded into the media library.
	ErrMomentImportFailed = zerr.New("failed to import moments")
)
