package ops

import (
	"os"

	"opskit/pkg/models"

	"github.com/pkg/errors"
)

// CheckDiskUsage reports capacity of the volume containing path.
// Used space is everything not available to unprivileged users, so Total == Used + Free.
func (t *Toolkit) CheckDiskUsage(path string) (*models.DiskUsage, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.logger.Error().Str("path", path).Msg("Path not found")
		return nil, &NotFoundError{Path: path}
	} else if err != nil {
		return nil, errors.Wrapf(err, "failed to stat %s", path)
	}

	total, available, err := statVolume(path)
	if err != nil {
		t.logger.Error().Str("path", path).Err(err).Msg("Failed to get filesystem stats")
		return nil, errors.Wrapf(err, "failed to get filesystem stats for %s", path)
	}

	usage := newDiskUsage(path, total, available)

	t.logger.Debug().
		Str("path", path).
		Uint64("total", usage.TotalBytes).
		Uint64("used", usage.UsedBytes).
		Uint64("free", usage.FreeBytes).
		Msg("Disk usage")

	return usage, nil
}

func newDiskUsage(path string, total, available uint64) *models.DiskUsage {
	if available > total {
		available = total
	}
	used := total - available

	var percent float64
	if total > 0 {
		percent = float64(used) / float64(total) * 100
	}

	return &models.DiskUsage{
		Path:        path,
		TotalBytes:  total,
		UsedBytes:   used,
		FreeBytes:   available,
		Total:       float64(total) / bytesPerGB,
		Used:        float64(used) / bytesPerGB,
		Free:        float64(available) / bytesPerGB,
		PercentUsed: percent,
	}
}
