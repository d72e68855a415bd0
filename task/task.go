package task

import (
	"git.fiblab.net/general/common/v2/geometry"
	"github.com/sirupsen/logrus"
	"github.com/tsinghua-fib-lab/roadnet-sim-oss/clock"
	"github.com/tsinghua-fib-lab/roadnet-sim-oss/entity"
	"github.com/tsinghua-fib-lab/roadnet-sim-oss/entity/road"
	"github.com/tsinghua-fib-lab/roadnet-sim-oss/entity/signal"
	"github.com/tsinghua-fib-lab/roadnet-sim-oss/utils/config"
)

var log = logrus.WithField("module", "roadnet")

// Context 仿真任务上下文
// 功能：包含一次仿真任务的所有变量和状态，取代脚本级全局状态
// 说明：持有时钟、道路与信号灯管理器、运行时配置；
// 由构造函数显式创建并传递，不存在进程级单例
type Context struct {
	// 时钟
	clock *clock.Clock

	// 道路管理器
	roadManager entity.IRoadManager
	// 信号灯管理器
	signalManager entity.ISignalManager

	// 运行时配置
	runtimeConfig *config.RuntimeConfig
}

// NewContext 创建新的仿真任务上下文
// 功能：初始化仿真系统的时钟与管理器
// 参数：c-配置对象
// 返回：初始化完成的Context实例（路网尚未建立，见Init）
// 说明：时间步长非法属于配置错误，直接panic
func NewContext(c config.Config) *Context {
	if c.Control.Step.Interval <= 0 {
		log.Panicf("control.step.interval must be positive, got %v", c.Control.Step.Interval)
	}
	ctx := &Context{}
	ctx.clock = clock.New(c.Control.Step)
	ctx.runtimeConfig = config.NewRuntimeConfig(c)

	// 新建各类模拟对象
	ctx.roadManager = road.NewManager(ctx)
	ctx.signalManager = signal.NewManager(ctx)

	return ctx
}

func (ctx *Context) Clock() *clock.Clock {
	return ctx.clock
}

func (ctx *Context) RoadManager() entity.IRoadManager {
	return ctx.roadManager
}

func (ctx *Context) SignalManager() entity.ISignalManager {
	return ctx.signalManager
}

func (ctx *Context) RuntimeConfig() *config.RuntimeConfig {
	return ctx.runtimeConfig
}

// Init 初始化路网
// 功能：重置时钟并按配置中的定义列表建立道路与信号灯
// 说明：任一非法定义视为致命错误并终止启动，不允许部分路网投入运行
func (ctx *Context) Init() {
	ctx.clock.Init()

	network := ctx.runtimeConfig.All.Network
	log.Infof("Road: %v", len(network.Roads))
	log.Infof("Signal: %v", len(network.Signals))

	if err := ctx.roadManager.Init(network.Roads); err != nil {
		log.Panicf("network setup err: %v", err)
	}
	if err := ctx.signalManager.Init(network.Signals); err != nil {
		log.Panicf("network setup err: %v", err)
	}
}

// AddRoad 追加单条道路
// 功能：设置阶段的辅助入口，等价于RoadManager().Add
func (ctx *Context) AddRoad(start, end geometry.Point) (entity.IRoad, error) {
	return ctx.roadManager.Add(start, end)
}

// AddRoads 批量追加道路
// 功能：设置阶段的辅助入口，等价于RoadManager().Init
func (ctx *Context) AddRoads(defs []config.RoadDef) error {
	return ctx.roadManager.Init(defs)
}

// AddSignal 追加单个信号灯
// 功能：设置阶段的辅助入口，等价于SignalManager().Add
func (ctx *Context) AddSignal(position geometry.Point, routeID int32) (entity.ISignal, error) {
	return ctx.signalManager.Add(position, routeID)
}

// AddSignals 批量追加信号灯
// 功能：设置阶段的辅助入口，等价于SignalManager().Init
func (ctx *Context) AddSignals(defs []config.SignalDef) error {
	return ctx.signalManager.Init(defs)
}
