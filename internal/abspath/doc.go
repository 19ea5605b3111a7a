// Package abspath provides an immutable absolute-path value.
//
// A Path wraps a cleaned absolute path string together with the filesystem it
// is resolved against. It offers:
//   - Structural navigation (Add, Parent, Up, Ancestors)
//   - Inspection (Exists, IsFile, IsDir, IsSymlink, IsBinaryFile)
//   - Upward search for a named entry (FindUpwards)
//   - Mutation (WriteFile, Mkdirp, Rename, RmFile, RmrfDir)
//   - Numeric version suffixes for backups (MaxVer, RenameToNextVer)
//
// The zero value is the unset path. Operations never modify a Path in place;
// they return new values.
package abspath
