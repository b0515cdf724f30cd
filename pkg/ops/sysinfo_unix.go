//go:build linux || darwin || freebsd

package ops

import (
	"opskit/pkg/models"

	"golang.org/x/sys/unix"
)

func uname(info *models.SystemInfo) {
	var name unix.Utsname
	if err := unix.Uname(&name); err != nil {
		return
	}

	info.System = unix.ByteSliceToString(name.Sysname[:])
	info.Release = unix.ByteSliceToString(name.Release[:])
	info.Version = unix.ByteSliceToString(name.Version[:])
	info.Machine = unix.ByteSliceToString(name.Machine[:])
}
