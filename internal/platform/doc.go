package platform

// Package platform contains OS/platform integration: bundled resource
// directory resolution, asset file enumeration and sidecar lookup, and
// revealing directories in the system file manager.
