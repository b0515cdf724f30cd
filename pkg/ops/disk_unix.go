//go:build linux || darwin || freebsd

package ops

import "golang.org/x/sys/unix"

// statVolume returns total bytes and bytes available to unprivileged users.
func statVolume(path string) (uint64, uint64, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return 0, 0, err
	}

	blockSize := uint64(stat.Bsize) // #nosec G115 - block size is never negative
	total := uint64(stat.Blocks) * blockSize
	available := uint64(stat.Bavail) * blockSize // #nosec G115 - int64 on freebsd

	return total, available, nil
}
