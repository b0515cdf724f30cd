package models

// DiskUsage represents capacity of the volume containing Path.
type DiskUsage struct {
	Path        string  `json:"path"`
	TotalBytes  uint64  `json:"total_bytes"`
	UsedBytes   uint64  `json:"used_bytes"`
	FreeBytes   uint64  `json:"free_bytes"`
	Total       float64 `json:"total"` // GB
	Used        float64 `json:"used"`  // GB
	Free        float64 `json:"free"`  // GB
	PercentUsed float64 `json:"percent_used"`
}
