package progress

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

type Config struct {
	Enabled bool
	Writer  io.Writer
	// Unit labels the throughput decorator, e.g. "records".
	Unit string
}

type Manager struct {
	container *mpb.Progress
	enabled   bool
	unit      string
	mu        sync.Mutex
}

// Bar is a single progress line. The zero value and nil are valid no-op bars.
type Bar struct {
	bar     *mpb.Bar
	enabled bool
}

func NewManager(config Config) *Manager {
	unit := config.Unit
	if unit == "" {
		unit = "items"
	}
	if !config.Enabled {
		return &Manager{enabled: false, unit: unit}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	container := mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
		mpb.WithWaitGroup(&sync.WaitGroup{}),
	)

	return &Manager{
		container: container,
		enabled:   true,
		unit:      unit,
	}
}

func (pm *Manager) CreateBar(total int, description string) *Bar {
	if pm == nil || !pm.enabled || pm.container == nil {
		return &Bar{enabled: false}
	}

	pm.mu.Lock()
	defer pm.mu.Unlock()

	bar := pm.container.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(description+" ", decor.WC{W: len(description) + 1, C: decor.DindentRight}),
			decor.CountersNoUnit("(%d/%d)", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.NewPercentage("%.1f", decor.WCSyncSpace),
			decor.OnComplete(
				decor.EwmaETA(decor.ET_STYLE_GO, 30, decor.WCSyncWidth), " ✓ ",
			),
			decor.OnComplete(
				decor.EwmaSpeed(0, "%.1f "+pm.unit+"/s", 30, decor.WCSyncSpace), "",
			),
		),
	)

	return &Bar{
		bar:     bar,
		enabled: true,
	}
}

func (pb *Bar) Increment() {
	if pb != nil && pb.enabled && pb.bar != nil {
		pb.bar.Increment()
	}
}

func (pb *Bar) Complete() {
	if pb != nil && pb.enabled && pb.bar != nil {
		pb.bar.SetTotal(pb.bar.Current(), true)
	}
}

// Abort removes the bar, e.g. after an error.
func (pb *Bar) Abort() {
	if pb != nil && pb.enabled && pb.bar != nil {
		pb.bar.Abort(false)
	}
}

func (pm *Manager) Wait() {
	if pm != nil && pm.enabled && pm.container != nil {
		pm.container.Wait()
	}
}

func (pm *Manager) Shutdown() {
	if pm != nil && pm.enabled && pm.container != nil {
		pm.container.Shutdown()
	}
}

func IsTTY(writer io.Writer) bool {
	if writer == nil {
		return false
	}

	if file, ok := writer.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

func ShouldShowProgress(forced bool) bool {
	if forced {
		return true
	}

	return IsTTY(os.Stderr)
}
