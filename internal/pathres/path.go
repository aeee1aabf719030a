package pathres

import (
	"strings"
)

// DefaultFolder is the folder used when no search folder survives reconciliation.
const DefaultFolder = "./"

func isSep(c byte) bool {
	return c == '\\' || c == '/'
}

func hasDrivePrefix(p string) bool {
	if len(p) < 2 || p[1] != ':' {
		return false
	}
	c := p[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Separator reports the separator style used by p. Paths containing a
// backslash or a drive prefix are Windows style; everything else uses '/'.
func Separator(p string) byte {
	if strings.IndexByte(p, '\\') >= 0 || hasDrivePrefix(p) {
		return '\\'
	}
	return '/'
}

// IsRooted reports whether p is anchored to a root: a leading separator,
// a UNC prefix, or a drive letter.
func IsRooted(p string) bool {
	if p == "" {
		return false
	}
	return isSep(p[0]) || hasDrivePrefix(p)
}

// IsUNC reports whether p has the form \\host[\...].
func IsUNC(p string) bool {
	return len(p) > 2 && isSep(p[0]) && isSep(p[1]) && !isSep(p[2])
}

// UNCHost returns the host component of a UNC path, or "" for other paths.
func UNCHost(p string) string {
	if !IsUNC(p) {
		return ""
	}
	rest := p[2:]
	if idx := strings.IndexAny(rest, `\/`); idx >= 0 {
		return rest[:idx]
	}
	return rest
}

// UNCDepth counts the segments of a UNC path including the host, so
// \\host is 1, \\host\share is 2 and \\host\share\sub is 3. Non-UNC paths
// have depth 0.
func UNCDepth(p string) int {
	if !IsUNC(p) {
		return 0
	}
	return len(splitSegments(p[2:]))
}

// EnsureTrailingSeparator appends a separator in p's own style when p does
// not already end with one. Empty input stays empty.
func EnsureTrailingSeparator(p string) string {
	if p == "" {
		return ""
	}
	if isSep(p[len(p)-1]) {
		return p
	}
	return p + string(Separator(p))
}

// IsValidPathName rejects empty names and names carrying characters that no
// supported filesystem accepts in a path.
func IsValidPathName(p string) bool {
	if p == "" {
		return false
	}
	for _, r := range p {
		if r < 32 {
			return false
		}
		switch r {
		case '"', '<', '>', '|':
			return false
		}
	}
	return true
}

// VolumeRoot returns the root of the local volume holding p: "C:\" for drive
// paths and "/" for POSIX paths. UNC and relative paths have no local volume.
func VolumeRoot(p string) string {
	switch {
	case hasDrivePrefix(p):
		return p[:2] + `\`
	case IsUNC(p), p == "":
		return ""
	case isSep(p[0]):
		return "/"
	default:
		return ""
	}
}

// Join appends a single segment to base using sep.
func Join(base, segment string, sep byte) string {
	if base == "" {
		return segment
	}
	if isSep(base[len(base)-1]) {
		return base + segment
	}
	return base + string(sep) + segment
}

// Parent returns the directory containing p. The parent of a UNC share root
// is the bare host form (\\host), and the bare host is its own parent. It
// returns false when p is already a drive or POSIX root, or when a relative
// path has no parent component left.
func Parent(p string) (string, bool) {
	if p == "" {
		return "", false
	}
	if IsUNC(p) {
		segs := splitSegments(p[2:])
		prefix := p[:2]
		sep := string(Separator(p))
		if len(segs) <= 2 {
			return prefix + segs[0], true
		}
		return prefix + strings.Join(segs[:len(segs)-1], sep), true
	}

	root := ""
	body := p
	switch {
	case hasDrivePrefix(p):
		root = p[:2]
		body = p[2:]
		if body != "" && isSep(body[0]) {
			root += body[:1]
			body = body[1:]
		}
	case isSep(p[0]):
		root = p[:1]
		body = strings.TrimLeft(p, `\/`)
	}

	body = strings.TrimRight(body, `\/`)
	if body == "" {
		return "", false
	}
	idx := strings.LastIndexAny(body, `\/`)
	if idx < 0 {
		if root == "" {
			return "", false
		}
		return root, true
	}
	return root + strings.TrimRight(body[:idx], `\/`), true
}

func splitSegments(p string) []string {
	fields := strings.FieldsFunc(p, func(r rune) bool {
		return r == '\\' || r == '/'
	})
	return fields
}
