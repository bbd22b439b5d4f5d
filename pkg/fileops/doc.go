// Package fileops provides the small set of file operations wpmcp needs:
// atomic writes for files holding secrets, and checks on user-supplied
// input files before they are read.
//
// # Atomic writes
//
// AtomicWriteFile writes to a temporary file in the destination directory,
// syncs it and renames it over the destination, so readers see either the
// old file or the complete new one. The permissions are applied before any
// data is written.
//
// # Input files
//
// For a path given on the command line, combine:
//
//	path = fileops.ExpandPath(path)
//	if err := fileops.ValidateFileAccess(path); err != nil {
//	    return err
//	}
//	if err := fileops.ValidateFileSizeLimit(path, maxSize); err != nil {
//	    return err
//	}
package fileops
