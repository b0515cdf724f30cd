package ops

import (
	"bufio"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"opskit/pkg/models"
)

// GetSystemInfo describes the host platform. It never fails; fields that cannot be read are left empty.
func (t *Toolkit) GetSystemInfo() models.SystemInfo {
	info := models.SystemInfo{
		RuntimeVersion: runtime.Version(),
		NumCPU:         runtime.NumCPU(),
	}

	uname(&info)
	if info.System == "" {
		info.System = runtime.GOOS
	}
	if info.Machine == "" {
		info.Machine = runtime.GOARCH
	}

	info.Processor = t.processorName()
	if info.Processor == "" {
		info.Processor = info.Machine
	}

	if hostname, err := os.Hostname(); err == nil {
		info.Hostname = hostname
	} else {
		t.logger.Debug().Err(err).Msg("Failed to read hostname")
	}

	return info
}

// processorName reads the CPU model from cpuinfo, empty when unavailable.
func (t *Toolkit) processorName() string {
	file, err := os.Open(filepath.Join(t.procRoot, "cpuinfo"))
	if err != nil {
		return ""
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			t.logger.Warn().Err(closeErr).Msg("Failed to close cpuinfo file")
		}
	}()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		key, value, found := strings.Cut(scanner.Text(), ":")
		if !found {
			continue
		}
		switch strings.TrimSpace(key) {
		case "model name", "Hardware", "cpu model":
			if value = strings.TrimSpace(value); value != "" {
				return value
			}
		}
	}

	return ""
}
