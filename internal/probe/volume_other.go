//go:build !unix

package probe

import "os"

func volumeReady(volume string) bool {
	_, err := os.Stat(volume)
	return err == nil
}
