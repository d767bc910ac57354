// Package mmfile provides platform-specific helpers for memory-mapping input files.
//
// On Linux, macOS and the BSDs the file is mapped read-only with MAP_SHARED, so
// the returned bytes are backed by the page cache and must not be written. The
// returned cleanup function unmaps the region; slices obtained from the mapping
// are invalid afterwards. Other platforms read the whole file into memory and
// the cleanup function is a no-op.
package mmfile
