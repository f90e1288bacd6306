package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisabledManager(t *testing.T) {
	pm := NewManager(Config{Enabled: false})
	bar := pm.CreateBar(10, "Copying")

	assert.NotPanics(t, func() {
		bar.Increment()
		bar.Complete()
		bar.Abort()
		pm.Wait()
		pm.Shutdown()
	})
}

func TestNilBarAndManager(t *testing.T) {
	var pm *Manager
	var bar *Bar

	assert.NotPanics(t, func() {
		pm.CreateBar(1, "x").Increment()
		bar.Increment()
		bar.Complete()
		pm.Wait()
	})
}

func TestEnabledManager(t *testing.T) {
	var buf bytes.Buffer
	pm := NewManager(Config{Enabled: true, Writer: &buf, Unit: "records"})
	bar := pm.CreateBar(3, "Copying")

	assert.NotPanics(t, func() {
		for i := 0; i < 3; i++ {
			bar.Increment()
		}
		bar.Complete()
		pm.Wait()
	})
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(nil))
	assert.False(t, IsTTY(&bytes.Buffer{}))
	assert.True(t, ShouldShowProgress(true))
}
