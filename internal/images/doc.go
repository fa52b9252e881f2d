// Package images owns managed image storage: ingesting user-picked files
// under fresh unique names and deriving bounded thumbnails for them.
//
// Layout
//
//	<dataDir>/user_images/<32 hex><original ext>
//	<dataDir>/user_images/thumbs/<same name>
//
// A stored image and its thumbnail are related only by sharing a base name.
// Entries reference stored paths; nothing here tracks those references, so
// images dropped from every entry stay on disk.
package images
