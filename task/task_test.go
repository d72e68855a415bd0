package task_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/roadnet-sim-oss/entity"
	"github.com/tsinghua-fib-lab/roadnet-sim-oss/task"
	"github.com/tsinghua-fib-lab/roadnet-sim-oss/utils/config"
)

// referenceConfig 返回一个最小的参考配置：一条道路、一个信号灯
func referenceConfig() config.Config {
	return config.Config{
		Control: config.Control{
			Step: config.ControlStep{Start: 0, Total: 10000, Interval: 1.0 / 300},
		},
		Network: config.Network{
			Roads: []config.RoadDef{
				{Start: config.PointDef{0, 0}, End: config.PointDef{10, 0}},
			},
			Signals: []config.SignalDef{
				{Position: config.PointDef{5, 5}, Route: 0},
			},
		},
	}
}

func TestRunAdvancesClock(t *testing.T) {
	ctx := task.NewContext(referenceConfig())
	ctx.Init()

	for _, n := range []int{0, 1, 10, 300} {
		ctx.Clock().Init()
		ctx.RunSteps(n)
		assert.Equal(t, int32(n), ctx.Clock().FrameCount)
		assert.Equal(t, float64(n)*ctx.Clock().DT, ctx.Clock().T)
	}
}

func TestSingleStepScenario(t *testing.T) {
	ctx := task.NewContext(referenceConfig())
	ctx.Init()
	ctx.RunSteps(1)

	assert.Equal(t, int32(1), ctx.Clock().FrameCount)
	assert.InDelta(t, 0.00333, ctx.Clock().T, 1e-5)

	r := ctx.RoadManager().Get(0)
	assert.Equal(t, 10.0, r.Length())
	assert.Equal(t, 1.0, r.AngleCos())
	assert.Equal(t, 0.0, r.AngleSin())
	assert.Equal(t, 0, r.Vehicles().Len())

	// no 9-unit boundary crossed: the signal stays on its initial phase
	s := ctx.SignalManager().Get(0)
	assert.Equal(t, entity.LIGHT_STATE_GREEN, s.Light())
	assert.Equal(t, int32(0), s.Step())
}

func TestSignalsSeePreIncrementTime(t *testing.T) {
	c := referenceConfig()
	// with dt equal to the phase period, the transition lands exactly on the
	// step where the signal observes t=9; the first step observes t=0 and
	// must not fire
	c.Control.Step.Interval = 9
	ctx := task.NewContext(c)
	ctx.Init()

	s := ctx.SignalManager().Get(0)
	ctx.Step()
	assert.Equal(t, int32(0), s.Step()) // saw t=0
	ctx.Step()
	assert.Equal(t, int32(1), s.Step()) // saw t=9
	assert.Equal(t, int32(2), ctx.Clock().FrameCount)
}

func TestDeterminism(t *testing.T) {
	run := func() *task.Context {
		c := config.Config{
			Control: config.Control{
				Step: config.ControlStep{Start: 0, Total: 100000, Interval: 1.0 / 300},
			},
			Network: config.Network{
				Roads: []config.RoadDef{
					{Start: config.PointDef{50, -50}, End: config.PointDef{0, -50}},
					{Start: config.PointDef{0, -50}, End: config.PointDef{0, 0}},
				},
				Signals: []config.SignalDef{
					{Position: config.PointDef{300, 290}, Route: 1},
					{Position: config.PointDef{400, 300}, Route: 0},
				},
			},
		}
		ctx := task.NewContext(c)
		ctx.Init()
		ctx.RunSteps(5000)
		return ctx
	}

	a, b := run(), run()
	assert.Equal(t, a.Clock().FrameCount, b.Clock().FrameCount)
	assert.Equal(t, a.Clock().T, b.Clock().T)
	require.Equal(t, a.SignalManager().Len(), b.SignalManager().Len())
	for i := range a.SignalManager().Len() {
		sa := a.SignalManager().Get(int32(i))
		sb := b.SignalManager().Get(int32(i))
		assert.Equal(t, sa.Light(), sb.Light())
		assert.Equal(t, sa.Step(), sb.Step())
	}
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	c := referenceConfig()
	c.Network = config.Network{}
	ctx := task.NewContext(c)
	ctx.Init()

	require.NoError(t, ctx.AddRoads([]config.RoadDef{
		{Start: config.PointDef{0, 0}, End: config.PointDef{1, 0}},
		{Start: config.PointDef{1, 0}, End: config.PointDef{1, 1}},
	}))
	roads := ctx.RoadManager().Roads()
	require.Len(t, roads, 2)
	assert.Equal(t, 1.0, roads[0].End().X)
	assert.Equal(t, 1.0, roads[1].End().Y)

	_, err := ctx.AddSignal(config.PointDef{5, 5}.ToPoint(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, ctx.SignalManager().Len())
}

func TestInitPanicsOnInvalidNetwork(t *testing.T) {
	c := referenceConfig()
	c.Network.Roads = append(c.Network.Roads, config.RoadDef{
		Start: config.PointDef{5, 5}, End: config.PointDef{5, 5},
	})
	ctx := task.NewContext(c)
	assert.Panics(t, func() { ctx.Init() })
	// no partial network survives a failed setup
	assert.Equal(t, 0, ctx.RoadManager().Len())
}

func TestRunHonorsEndStep(t *testing.T) {
	c := referenceConfig()
	c.Control.Step.Total = 17
	c.Control.StepsPerFrame = 5
	ctx := task.NewContext(c)
	ctx.Run()
	// 17 is not a multiple of steps_per_frame; Run must still stop exactly
	assert.Equal(t, int32(17), ctx.Clock().FrameCount)
	assert.Equal(t, 17*ctx.Clock().DT, ctx.Clock().T)
}

func TestNewContextRejectsInvalidInterval(t *testing.T) {
	c := referenceConfig()
	c.Control.Step.Interval = 0
	assert.Panics(t, func() { task.NewContext(c) })
}
