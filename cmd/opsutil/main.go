package main

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"opskit/pkg/log"
	"opskit/pkg/ops"

	"github.com/dustin/go-humanize"
)

const (
	separatorLineLength   = 50
	defaultCommandTimeout = 30 * time.Second
)

func main() {
	// Initialize logger first
	_ = log.Logger

	path := flag.String("path", "/", "Path whose volume is reported")
	logFile := flag.String("log", "", "Log file to filter")
	pattern := flag.String("pattern", "", "Regular expression applied to -log lines")
	command := flag.String("exec", "", "Command to run, split on whitespace and run without a shell")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if *debug {
		log.SetDebugMode()
		log.Debug().Msg("Debug mode enabled")
	}

	toolkit := ops.New(log.Component("ops"), defaultCommandTimeout)

	fmt.Println("DevOps Utility Functions")
	fmt.Println(strings.Repeat("=", separatorLineLength))

	disk, err := toolkit.CheckDiskUsage(*path)
	if err != nil {
		log.Fatal().Err(err).Str("path", *path).Msg("Failed to check disk usage")
	}

	fmt.Printf("\nDisk Usage (%s):\n", disk.Path)
	fmt.Printf("  Total: %.2f GB (%s)\n", disk.Total, humanize.IBytes(disk.TotalBytes))
	fmt.Printf("  Used: %.2f GB (%.2f%%)\n", disk.Used, disk.PercentUsed)
	fmt.Printf("  Free: %.2f GB (%s)\n", disk.Free, humanize.IBytes(disk.FreeBytes))

	info := toolkit.GetSystemInfo()
	fmt.Printf("\nSystem Information:\n")
	fmt.Printf("  system: %s\n", info.System)
	fmt.Printf("  release: %s\n", info.Release)
	fmt.Printf("  version: %s\n", info.Version)
	fmt.Printf("  machine: %s\n", info.Machine)
	fmt.Printf("  processor: %s\n", info.Processor)
	fmt.Printf("  runtime_version: %s\n", info.RuntimeVersion)
	fmt.Printf("  hostname: %s\n", info.Hostname)
	fmt.Printf("  num_cpu: %d\n", info.NumCPU)

	if load, err := toolkit.GetHostLoad(); err != nil {
		log.Debug().Err(err).Msg("Host load unavailable")
	} else {
		fmt.Printf("\nHost Load:\n")
		fmt.Printf("  uptime: %s\n", load.Uptime)
		fmt.Printf("  load: %.2f %.2f %.2f\n", load.Load.One, load.Load.Five, load.Load.Fifteen)
		fmt.Printf("  memory: %s used of %s (%s available)\n",
			humanize.IBytes(load.Memory.UsedBytes), humanize.IBytes(load.Memory.TotalBytes), humanize.IBytes(load.Memory.AvailableBytes))
	}

	if *command != "" {
		result, err := toolkit.ExecuteCommand(context.Background(), strings.Fields(*command), false)
		if err != nil {
			log.Fatal().Err(err).Str("exec", *command).Msg("Failed to run command")
		}

		fmt.Printf("\nCommand (%s): exit code %d in %s\n", *command, result.ExitCode, result.Duration.Round(time.Millisecond))
		for _, line := range strings.Split(strings.TrimRight(result.Stdout, "\n"), "\n") {
			fmt.Printf("  %s\n", line)
		}
	}

	if *logFile != "" {
		lines, err := toolkit.ParseLogFile(*logFile, *pattern)
		if err != nil {
			log.Fatal().Err(err).Str("log", *logFile).Msg("Failed to parse log file")
		}

		fmt.Printf("\nLog Lines (%s, %s matching):\n", *logFile, humanize.Comma(int64(len(lines))))
		for _, line := range lines {
			fmt.Printf("  %s\n", line)
		}
	}
}
