package system

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

// HostStats represents host-level resource statistics
type HostStats struct {
	CPU       CPUStats    `json:"cpu"`
	Memory    MemoryStats `json:"memory"`
	Disk      DiskStats   `json:"disk"`
	Timestamp time.Time   `json:"timestamp"`
}

// CPUStats represents CPU usage statistics
type CPUStats struct {
	UsagePercent float64 `json:"usage_percent"`
	Cores        int     `json:"cores"`
}

// MemoryStats represents memory usage statistics
type MemoryStats struct {
	Total        uint64  `json:"total_bytes"`
	Used         uint64  `json:"used_bytes"`
	Free         uint64  `json:"free_bytes"`
	Available    uint64  `json:"available_bytes"`
	UsagePercent float64 `json:"usage_percent"`
}

// DiskStats represents disk usage statistics
type DiskStats struct {
	Total        uint64  `json:"total_bytes"`
	Used         uint64  `json:"used_bytes"`
	Free         uint64  `json:"free_bytes"`
	UsagePercent float64 `json:"usage_percent"`
	Path         string  `json:"path"`
}

// CollectHostStats gathers CPU, memory, and disk statistics for the host.
// diskPath selects the filesystem to report on, typically the data directory.
func CollectHostStats(diskPath string) (*HostStats, error) {
	stats := &HostStats{Timestamp: time.Now()}

	// CPU usage sampled over a short interval
	cpuPercents, err := cpu.Percent(200*time.Millisecond, false)
	if err != nil {
		return nil, fmt.Errorf("failed to collect CPU stats: %w", err)
	}
	if len(cpuPercents) > 0 {
		stats.CPU.UsagePercent = cpuPercents[0]
	}

	cores, err := cpu.Counts(true)
	if err != nil {
		return nil, fmt.Errorf("failed to count CPU cores: %w", err)
	}
	stats.CPU.Cores = cores

	vm, err := mem.VirtualMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to collect memory stats: %w", err)
	}
	stats.Memory = MemoryStats{
		Total:        vm.Total,
		Used:         vm.Used,
		Free:         vm.Free,
		Available:    vm.Available,
		UsagePercent: vm.UsedPercent,
	}

	if diskPath == "" {
		diskPath = "/"
	}
	usage, err := disk.Usage(diskPath)
	if err != nil {
		return nil, fmt.Errorf("failed to collect disk stats: %w", err)
	}
	stats.Disk = DiskStats{
		Total:        usage.Total,
		Used:         usage.Used,
		Free:         usage.Free,
		UsagePercent: usage.UsedPercent,
		Path:         diskPath,
	}

	return stats, nil
}
