// Package common contains shared constants and sentinel errors used across
// MemoryBook components.
package common

// On-disk layout inside the data directory.
const (
	// UsersFileName is the single account document shared by all users.
	UsersFileName = "users.json"

	// EntriesFileSuffix is appended to the username to name its entry document.
	EntriesFileSuffix = "_entries.json"

	// ImagesDirName holds ingested full-size images.
	ImagesDirName = "user_images"

	// ThumbsDirName is the thumbnail subdirectory of ImagesDirName.
	ThumbsDirName = "thumbs"
)

// DefaultTitle replaces an empty entry title.
const DefaultTitle = "Untitled"
