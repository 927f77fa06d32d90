package catalog

// Package catalog enumerates the bundled 3D assets and builds the list of
// model descriptors (display name, normalized thumbnail, pending entity slot)
// that the picker presents. Loading never fails as a whole: unreadable
// directories yield an empty catalog and malformed entries are skipped or
// given a placeholder thumbnail.
