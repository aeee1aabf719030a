// Package pathres implements the string-level path algebra used to turn
// configured subtitle folders into concrete directories.
//
// Paths are handled as plain strings rather than through path/filepath so that
// Windows drive paths (C:\Media), UNC shares (\\host\share) and POSIX paths
// resolve identically on every host OS. Both '\' and '/' are accepted as
// separators; resolved output uses the separator style of the reference
// directory.
//
// Resolve walks a relative folder reference segment by segment against the
// media file's directory. UNC roots cannot be walked above arbitrarily, so the
// parent of a share root collapses to the bare host form, and a result that
// ends on a bare host is reported as unresolvable.
package pathres
