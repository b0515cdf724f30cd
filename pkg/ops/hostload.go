package ops

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"opskit/pkg/models"

	"github.com/pkg/errors"
)

// GetHostLoad reports uptime, load averages and memory from procfs.
// It fails on hosts without /proc.
func (t *Toolkit) GetHostLoad() (*models.HostLoad, error) {
	uptime, err := t.readUptime()
	if err != nil {
		return nil, err
	}

	loadAvg, err := t.readLoadAverages()
	if err != nil {
		return nil, err
	}

	memory, err := t.readMemoryInfo()
	if err != nil {
		return nil, err
	}

	return &models.HostLoad{
		Uptime:        formatUptime(uptime),
		UptimeSeconds: int64(uptime / time.Second),
		Load:          *loadAvg,
		Memory:        *memory,
	}, nil
}

func (t *Toolkit) readProcFile(name string) ([]byte, error) {
	path := filepath.Join(t.procRoot, name)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &NotFoundError{Path: path}
	} else if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return data, nil
}

// readUptime parses the time since boot from uptime.
func (t *Toolkit) readUptime() (time.Duration, error) {
	data, err := t.readProcFile("uptime")
	if err != nil {
		return 0, err
	}

	secondsText, _, _ := strings.Cut(strings.TrimSpace(string(data)), " ")
	if secondsText == "" {
		return 0, errors.New("empty uptime")
	}

	seconds, err := strconv.ParseFloat(secondsText, 64)
	if err != nil {
		return 0, errors.Wrap(err, "failed to parse uptime")
	}

	return time.Duration(seconds) * time.Second, nil
}

// readLoadAverages parses the leading 1, 5 and 15 minute averages of loadavg.
func (t *Toolkit) readLoadAverages() (*models.LoadAvg, error) {
	data, err := t.readProcFile("loadavg")
	if err != nil {
		return nil, err
	}

	var load models.LoadAvg
	if _, err := fmt.Sscan(string(data), &load.One, &load.Five, &load.Fifteen); err != nil {
		return nil, errors.Errorf("malformed loadavg %q: %v", strings.TrimSpace(string(data)), err)
	}

	return &load, nil
}

// readMemoryInfo derives RAM usage from meminfo.
func (t *Toolkit) readMemoryInfo() (*models.MemoryUsage, error) {
	data, err := t.readProcFile("meminfo")
	if err != nil {
		return nil, err
	}

	fields, err := parseMemInfo(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse meminfo")
	}

	total := fields["MemTotal"]
	available, ok := fields["MemAvailable"]
	if !ok {
		// kernels before 3.14
		available = fields["MemFree"] + fields["Buffers"] + fields["Cached"]
	}
	available = min(available, total)

	return &models.MemoryUsage{
		TotalBytes:     total,
		UsedBytes:      total - available,
		AvailableBytes: available,
	}, nil
}

// parseMemInfo returns every "Key: value [kB]" line of meminfo, with kB values converted to bytes.
// Unparsable lines are skipped.
func parseMemInfo(reader io.Reader) (map[string]uint64, error) {
	fields := make(map[string]uint64)

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		key, rest, found := strings.Cut(scanner.Text(), ":")
		if !found {
			continue
		}

		valueText, unit, _ := strings.Cut(strings.TrimSpace(rest), " ")
		value, err := strconv.ParseUint(valueText, 10, 64)
		if err != nil {
			continue
		}
		if unit == "kB" {
			value *= 1024
		}
		fields[strings.TrimSpace(key)] = value
	}

	return fields, scanner.Err()
}

// formatUptime renders d to the minute as "3d 4h 5m", omitting leading zero units.
func formatUptime(d time.Duration) string {
	const day = 24 * time.Hour

	d = d.Truncate(time.Minute)
	days := d / day
	hours := (d % day) / time.Hour
	minutes := (d % time.Hour) / time.Minute

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
