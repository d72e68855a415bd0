package clock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/roadnet-sim-oss/clock"
	"github.com/tsinghua-fib-lab/roadnet-sim-oss/utils/config"
)

func TestClockInit(t *testing.T) {
	c := clock.New(config.ControlStep{Start: 0, Total: 100, Interval: 0.5})
	assert.Equal(t, int32(0), c.FrameCount)
	assert.Equal(t, 0.0, c.T)
	assert.Equal(t, int32(100), c.END_STEP)

	// non-zero start step
	c = clock.New(config.ControlStep{Start: 10, Total: 5, Interval: 2})
	assert.Equal(t, int32(10), c.FrameCount)
	assert.Equal(t, 20.0, c.T)
	assert.Equal(t, int32(15), c.END_STEP)
}

func TestClockAdvance(t *testing.T) {
	c := clock.New(config.ControlStep{Start: 0, Total: 100, Interval: 0.5})
	for i := 1; i <= 5; i++ {
		c.Advance()
		assert.Equal(t, int32(i), c.FrameCount)
		// T is derived from the step count, so the equality is exact
		assert.Equal(t, float64(i)*c.DT, c.T)
	}

	c.Init()
	assert.Equal(t, int32(0), c.FrameCount)
	assert.Equal(t, 0.0, c.T)
}

func TestClockDerivedTimeIsExact(t *testing.T) {
	// 1/300 accumulates error when summed; the derived form must not
	c := clock.New(config.ControlStep{Start: 0, Total: 10000, Interval: 1.0 / 300})
	for range 3000 {
		c.Advance()
	}
	assert.Equal(t, int32(3000), c.FrameCount)
	assert.Equal(t, 3000*(1.0/300), c.T)
}

func TestClockString(t *testing.T) {
	c := clock.New(config.ControlStep{Start: 0, Total: 10, Interval: 3661.5})
	c.Advance()
	assert.Equal(t, "01:01:01", c.String())

	hour, minute, second := c.GetHourMinuteSecond()
	assert.Equal(t, 1, hour)
	assert.Equal(t, 1, minute)
	assert.InDelta(t, 1.5, second, 1e-9)
}
