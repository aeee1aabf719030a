package health

import (
	"os"

	"github.com/google/uuid"

	"subdesk/internal/pathres"
)

// FS is the filesystem surface the classifier needs.
type FS interface {
	DirExists(path string) bool
	// TryWrite creates and removes a uniquely named scratch file inside dir.
	TryWrite(dir string) error
}

// OSFS implements FS against the local filesystem.
type OSFS struct{}

// DirExists reports whether path names an existing directory.
func (OSFS) DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// TryWrite creates and deletes a scratch file in dir.
func (OSFS) TryWrite(dir string) error {
	name := pathres.Join(dir, ".subdesk-"+uuid.NewString()+".tmp", pathres.Separator(dir))
	f, err := os.OpenFile(name, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0o600)
	if err != nil {
		return err
	}
	closeErr := f.Close()
	removeErr := os.Remove(name)
	if closeErr != nil {
		return closeErr
	}
	return removeErr
}
