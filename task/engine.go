package task

import (
	"flag"
)

var (
	heartBeatInterval = flag.Int("log.heartbeat_interval", 100, "心跳日志间隔步数")
)

// Step 执行一步模拟
// 功能：按固定顺序推进仿真一步
// 算法说明：
// 1. 道路更新：按插入顺序对每条道路执行update(dt)
// 2. 信号灯更新：按插入顺序把本步推进前的时间传给每个信号灯
// 3. 时钟推进：步数加一并重新推导当前时间
// 说明：顺序(1)(2)(3)固定且对外可观测，信号灯看到的时间对应
// 本次调用之前已完成的步数；全程在调用方的调用栈上串行执行
func (ctx *Context) Step() {
	ctx.roadManager.Update(ctx.clock.DT)
	ctx.signalManager.Update(ctx.clock.T)
	ctx.clock.Advance()

	if ctx.clock.FrameCount%int32(*heartBeatInterval) == 0 {
		hour, minute, second := ctx.clock.GetHourMinuteSecond()
		log.Debugf(
			"STEP: %d(%d:%d:%.2f)",
			ctx.clock.FrameCount,
			hour, minute, second,
		)
	}
}

// RunSteps 连续执行若干步
// 功能：同步地调用Step恰好n次
// 参数：n-步数
// 说明：Step没有失败路径，不存在部分执行
func (ctx *Context) RunSteps(n int) {
	for range n {
		ctx.Step()
	}
}

// Run 运行
// 功能：初始化路网并按配置推进到结束步
// 说明：每轮推进steps_per_frame步，对应被排除的渲染循环的一个可视化帧
func (ctx *Context) Run() {
	// 初始化
	ctx.Init()

	stepsPerFrame := int(ctx.runtimeConfig.C.StepsPerFrame)
	for ctx.clock.FrameCount < ctx.clock.END_STEP {
		remaining := int(ctx.clock.END_STEP - ctx.clock.FrameCount)
		ctx.RunSteps(min(stepsPerFrame, remaining))
	}
	log.Infof("engine complete, t=%v (%v)", ctx.clock.T, ctx.clock)
}
