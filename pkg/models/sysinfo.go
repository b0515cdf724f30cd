package models

// SystemInfo describes the host platform. Fields that cannot be determined are empty.
type SystemInfo struct {
	System         string `json:"system"`
	Release        string `json:"release"`
	Version        string `json:"version"`
	Machine        string `json:"machine"`
	Processor      string `json:"processor"`
	RuntimeVersion string `json:"runtime_version"`
	Hostname       string `json:"hostname"`
	NumCPU         int    `json:"num_cpu"`
}

// Map returns the descriptive fields keyed by their JSON names.
func (s SystemInfo) Map() map[string]string {
	return map[string]string{
		"system":          s.System,
		"release":         s.Release,
		"version":         s.Version,
		"machine":         s.Machine,
		"processor":       s.Processor,
		"runtime_version": s.RuntimeVersion,
		"hostname":        s.Hostname,
	}
}
