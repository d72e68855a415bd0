package signal

import (
	"fmt"
	"math"

	"git.fiblab.net/general/common/v2/geometry"
	"git.fiblab.net/general/common/v2/mathutil"
	"github.com/tsinghua-fib-lab/roadnet-sim-oss/entity"
)

// Signal 信号灯实体
// 功能：由绝对仿真时间驱动的确定性循环相位状态机
// 说明：信号灯仅通过位置挂接到路网，与具体道路无结构关联；
// 相位推进基于时间阈值而非步数（见cycle.go的判据说明），
// 只要在update之后采样Light，渲染节奏与模拟节奏不同也能观测到一致的相位
type Signal struct {
	ctx entity.ITaskContext

	index    int32          // 路网中的插入序号
	position geometry.Point // 位置
	routeID  int32          // 相位循环表编号
	cycle    []int32        // 相位循环表（构造时从预定义表选定，不再变化）

	phaseCursor int32             // 相位游标，取值范围[0, len(cycle))
	light       entity.LightState // 当前灯色，恒等于colorTable[cycle[phaseCursor]]
	lastT       float64           // 最近一次观测到的时间，尚未观测时为-1
}

// newSignal 创建并初始化一个新的Signal实例
// 功能：根据位置和route编号创建信号灯，选定相位循环表并置初始相位
// 参数：ctx-任务上下文，index-插入序号，position-位置，routeID-循环表编号
// 返回：初始化完成的Signal实例，route编号未知时返回error
func newSignal(ctx entity.ITaskContext, index int32, position geometry.Point, routeID int32) (*Signal, error) {
	if routeID < 0 || routeID >= NumRoutes() {
		return nil, fmt.Errorf("signal %d: unknown route id %d (expect [0, %d))", index, routeID, NumRoutes())
	}
	s := &Signal{
		ctx:         ctx,
		index:       index,
		position:    position,
		routeID:     routeID,
		cycle:       cycleTables[routeID],
		phaseCursor: 0,
		lastT:       -1,
	}
	s.light = colorTable[s.cycle[s.phaseCursor]]
	return s, nil
}

// update 更新阶段，每步执行一次
// 功能：记录当前时间并在满足切换判据时推进一个相位
// 参数：t-当前仿真时间（本步时钟推进前的值）
// 算法说明：
// 1. 记录观测时间
// 2. 判据：时间不为零且对PhasePeriod取模落入切换带宽内
// 3. 满足时相位游标前进一格并回绕，灯色由映射表重新推导
// 说明：时间零点被排除，不触发切换；每次落入带宽的调用各推进一次，
// 该行为对调用粒度的敏感性见cycle.go
func (s *Signal) update(t float64) {
	s.lastT = t
	if t == 0 || math.Mod(t, PhasePeriod) >= TransitionEpsilon {
		return
	}
	s.phaseCursor++
	if s.phaseCursor == int32(len(s.cycle)) {
		s.phaseCursor = 0
	}
	s.light = colorTable[s.cycle[s.phaseCursor]]
}

// Index 获取信号灯的插入序号
// 功能：返回信号灯在路网中的插入序号，如果信号灯为nil则返回-1
func (s *Signal) Index() int32 {
	if s == nil {
		return -1
	}
	return s.index
}

// String 获取信号灯的字符串表示
// 功能：返回信号灯的字符串描述，用于调试和日志输出
func (s *Signal) String() string {
	return fmt.Sprintf("Signal %d", s.index)
}

// Position 获取位置坐标
func (s *Signal) Position() geometry.Point {
	return s.position
}

// RouteID 获取相位循环表编号
func (s *Signal) RouteID() int32 {
	return s.routeID
}

// Cycle 获取相位循环表
// 功能：返回相位循环表的副本，防止外部修改
func (s *Signal) Cycle() []int32 {
	cycle := make([]int32, len(s.cycle))
	copy(cycle, s.cycle)
	return cycle
}

// Light 获取当前灯色
// 功能：纯读取，无副作用
func (s *Signal) Light() entity.LightState {
	return s.light
}

// Step 获取当前相位游标
func (s *Signal) Step() int32 {
	return s.phaseCursor
}

// RemainingTime 获取距下一相位边界的时间
// 功能：根据最近观测到的时间估算距下一个PhasePeriod边界的时间
// 返回：剩余时间，尚未观测到任何时间时返回INF
func (s *Signal) RemainingTime() float64 {
	if s.lastT < 0 {
		return mathutil.INF
	}
	return PhasePeriod - math.Mod(s.lastT, PhasePeriod)
}
