package models

// HostLoad is a snapshot of how busy the host is.
type HostLoad struct {
	Uptime        string      `json:"uptime"`
	UptimeSeconds int64       `json:"uptime_seconds"`
	Load          LoadAvg     `json:"load"`
	Memory        MemoryUsage `json:"memory"`
}

// LoadAvg holds the run-queue averages over 1, 5 and 15 minutes.
type LoadAvg struct {
	One     float64 `json:"1m"`
	Five    float64 `json:"5m"`
	Fifteen float64 `json:"15m"`
}

// MemoryUsage mirrors DiskUsage for RAM. UsedBytes = TotalBytes - AvailableBytes.
type MemoryUsage struct {
	TotalBytes     uint64 `json:"total_bytes"`
	UsedBytes      uint64 `json:"used_bytes"`
	AvailableBytes uint64 `json:"available_bytes"`
}
