package pathres

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyArgument is returned when Resolve is called with a blank argument.
var ErrEmptyArgument = errors.New("empty path argument")

// Resolve resolves relative against referenceDir.
//
// The boolean result is false when resolution is structurally impossible:
// a ".." walks above a drive or POSIX root, or the result is a bare UNC host.
// Callers exclude such folders. Validation failures are reported through err.
func Resolve(relative, referenceDir string) (string, bool, error) {
	if strings.TrimSpace(relative) == "" {
		return "", false, fmt.Errorf("resolve relative path: %w: relative", ErrEmptyArgument)
	}
	if strings.TrimSpace(referenceDir) == "" {
		return "", false, fmt.Errorf("resolve relative path: %w: reference directory", ErrEmptyArgument)
	}

	if IsRooted(relative) {
		if UNCDepth(relative) == 1 {
			return "", false, nil
		}
		return relative, true, nil
	}

	rel := relative
	if isSep(rel[len(rel)-1]) {
		rel = rel[:len(rel)-1]
	}
	if rel == "." {
		return referenceDir, true, nil
	}
	if strings.HasPrefix(rel, "./") || strings.HasPrefix(rel, `.\`) {
		rel = rel[2:]
	}
	rel = collapseCurrentDir(rel)

	sep := Separator(referenceDir)
	result := referenceDir
	for _, segment := range splitSegments(rel) {
		switch segment {
		case ".":
			continue
		case "..":
			parent, ok := Parent(result)
			if !ok {
				return "", false, nil
			}
			result = parent
		default:
			result = Join(result, segment, sep)
		}
	}

	if UNCDepth(result) == 1 {
		return "", false, nil
	}
	if !isSep(result[len(result)-1]) {
		result += string(sep)
	}
	return result, true, nil
}

// collapseCurrentDir rewrites every "/./" (or "\.\") run to a single separator.
func collapseCurrentDir(p string) string {
	for {
		next := strings.ReplaceAll(p, `\.\`, `\`)
		next = strings.ReplaceAll(next, "/./", "/")
		next = strings.ReplaceAll(next, `\./`, `\`)
		next = strings.ReplaceAll(next, `/.\`, "/")
		if next == p {
			return p
		}
		p = next
	}
}
