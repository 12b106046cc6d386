package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const collectInterval = 15 * time.Second

var (
	hostCPU = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tracker_host_cpu_usage_percent",
		Help: "Host CPU usage over the last collection window",
	})

	hostMemoryUsed = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tracker_host_memory_used_bytes",
		Help: "Host memory in use",
	})

	heapAlloc = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tracker_heap_alloc_bytes",
		Help: "Go heap in use, spikes on xlsx import and PDF rendering",
	})
)

// StartSystemMetricsCollector опрашивает хост, пока жив ctx.
func StartSystemMetricsCollector(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(collectInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				collect(ctx)
			}
		}
	}()
}

func collect(ctx context.Context) {
	// окно замера CPU занимает секунду
	if usage, err := cpu.PercentWithContext(ctx, time.Second, false); err == nil && len(usage) > 0 {
		hostCPU.Set(usage[0])
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		hostMemoryUsed.Set(float64(vm.Used))
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	heapAlloc.Set(float64(ms.HeapAlloc))
}
