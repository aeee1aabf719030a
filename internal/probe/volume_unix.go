//go:build unix

package probe

import "golang.org/x/sys/unix"

func volumeReady(volume string) bool {
	var st unix.Statfs_t
	return unix.Statfs(volume, &st) == nil
}
