package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates path, and any missing parent directories, with a few
// bytes of content. It returns path for chaining.
func WriteFile(t testing.TB, path string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte("subdesk"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// MakeDirs creates each directory below base and returns base.
func MakeDirs(t testing.TB, base string, dirs ...string) string {
	t.Helper()

	for _, dir := range dirs {
		if err := os.MkdirAll(filepath.Join(base, dir), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	return base
}
