package main

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
)

type DebugInfo struct {
	Name     string
	Value    any
	Children []DebugInfo
}

func (server *Server) debugHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data := MustLoadCommonData(ctx)

	// Process info
	var procMem runtime.MemStats
	runtime.ReadMemStats(&procMem)

	// Machine info
	avg, err := load.Avg()
	if err != nil {
		log.Warn().Err(err).Msg("getting machine Avg")
	}
	u, err := disk.Usage("/")
	if err != nil {
		log.Warn().Err(err).Msg("getting machine Disk usage")
	}
	h, err := host.Info()
	if err != nil {
		log.Warn().Err(err).Msg("getting machine Info")
	}
	cwd, err := os.Getwd()
	if err != nil {
		log.Warn().Err(err).Msg("getting machine Getwd")
	}
	vm, err := mem.VirtualMemory()
	if err != nil {
		log.Warn().Err(err).Msg("getting machine VirtualMemory")
	}

	// Build info
	buildInfo := []DebugInfo{}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			buildInfo = append(buildInfo, DebugInfo{Name: setting.Key, Value: setting.Value})
		}
	}

	info := []DebugInfo{
		{
			Name: "Machine",
			Children: []DebugInfo{
				{Name: "NumCPU", Value: runtime.NumCPU()},
				{Name: "System total load avg (up to 100% * n cores)", Value: fmt.Sprintf("%.1f", avg.Load1*100)},
				{Name: "Disk total (GB)", Value: toGB(u.Total)},
				{Name: "Disk available (GB)", Value: toGB(u.Free)},
				{Name: "Disk used (GB)", Value: toGB(u.Used)},
				{Name: "Hostname", Value: h.Hostname},
				{Name: "Booted", Value: time.Unix(int64(h.BootTime), 0).Format(time.RFC3339)},
				{Name: "Memory total (MB)", Value: toMB(vm.Total)},
				{Name: "Memory available (MB)", Value: toMB(vm.Available)},
				{Name: "Memory used (MB)", Value: toMB(vm.Used)},
			},
		},
		{
			Name: "Process",
			Children: []DebugInfo{
				{Name: "Goroutines", Value: runtime.NumGoroutine()},
				{Name: "Started", Value: server.Runtime.TimeStarted.Format(time.RFC3339)},
				{Name: "Alloc MB", Value: toMB(procMem.Alloc)},
				{Name: "Total MB", Value: toMB(procMem.Sys)},
				{Name: "Working directory", Value: cwd},
			},
		},
		{
			Name:     "Build",
			Children: buildInfo,
		},
	}

	_ = DebugPage(data, info).Render(ctx, w)
}

func toMB(v uint64) string {
	return fmt.Sprintf("%.0f", float64(v)/1024/1024)
}

func toGB(v uint64) string {
	return fmt.Sprintf("%.0f", float64(v)/1024/1024/1024)
}
