// Package status samples frame and process statistics for the optional HUD
// line. Sampling is cheap per tick; the gopsutil process query runs at most
// once a second.
package status

import (
	"fmt"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

const sampleInterval = time.Second

// Monitor aggregates frame timing with process CPU and memory usage.
type Monitor struct {
	proc *process.Process

	fps        float64
	cpuPercent float64
	rssMB      float64
	lastSample time.Time
}

// NewMonitor creates a monitor bound to the current process. Process stats
// stay at zero when the platform query fails; the HUD still shows FPS.
func NewMonitor() *Monitor {
	m := &Monitor{}
	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		m.proc = p
	}
	return m
}

// Observe feeds one frame duration and refreshes process stats at 1 Hz
func (m *Monitor) Observe(frameTime time.Duration) {
	if s := frameTime.Seconds(); s > 0 {
		// Smooth the displayed rate so it doesn't flicker
		inst := 1.0 / s
		if m.fps == 0 {
			m.fps = inst
		} else {
			m.fps = m.fps*0.9 + inst*0.1
		}
	}

	if m.proc == nil || time.Since(m.lastSample) < sampleInterval {
		return
	}
	m.lastSample = time.Now()

	if cpu, err := m.proc.CPUPercent(); err == nil {
		m.cpuPercent = cpu
	}
	if mem, err := m.proc.MemoryInfo(); err == nil && mem != nil {
		m.rssMB = float64(mem.RSS) / (1024 * 1024)
	}
}

// FPS returns the smoothed frame rate
func (m *Monitor) FPS() float64 { return m.fps }

// Line formats the single HUD row
func (m *Monitor) Line(particleBudget int) string {
	return fmt.Sprintf("%.1f fps | cpu %.0f%% | rss %.0f MB | budget %d",
		m.fps, m.cpuPercent, m.rssMB, particleBudget)
}
