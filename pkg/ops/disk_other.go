//go:build !linux && !darwin && !freebsd

package ops

import (
	"runtime"

	"github.com/pkg/errors"
)

func statVolume(string) (uint64, uint64, error) {
	return 0, 0, errors.Errorf("disk usage is not supported on %s", runtime.GOOS)
}
