package signal

import (
	"fmt"

	"git.fiblab.net/general/common/v2/geometry"
	"git.fiblab.net/general/common/v2/parallel"
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/roadnet-sim-oss/entity"
	"github.com/tsinghua-fib-lab/roadnet-sim-oss/utils/config"
)

// SignalManager 信号灯管理器
// 功能：管理所有信号灯实体，提供创建、查找、更新等功能
// 说明：信号灯序列的顺序即插入顺序，对外可见，没有删除操作；
// 各信号灯相互独立，各自维护自己的游标和循环表
type SignalManager struct {
	ctx entity.ITaskContext

	signals []*Signal
}

// NewManager 创建信号灯管理器实例
// 功能：初始化信号灯管理器，创建内部数据结构
// 参数：ctx-任务上下文
// 返回：新创建的信号灯管理器实例
func NewManager(ctx entity.ITaskContext) *SignalManager {
	return &SignalManager{
		ctx:     ctx,
		signals: make([]*Signal, 0),
	}
}

// indexedSignalDef 带插入序号的信号灯定义，供并行构造使用
type indexedSignalDef struct {
	index int32
	def   config.SignalDef
}

// Init 初始化所有信号灯
// 功能：根据定义列表批量构造信号灯，保持列表顺序
// 参数：defs-信号灯定义列表
// 返回：任一定义非法时返回error，指明出错的定义，不追加任何信号灯
// 说明：先整体校验route编号再并行构造，保证不产生部分路网
func (m *SignalManager) Init(defs []config.SignalDef) error {
	base := int32(len(m.signals))
	for i, def := range defs {
		if def.Route < 0 || def.Route >= NumRoutes() {
			return fmt.Errorf("signal %d: invalid definition: unknown route id %d (expect [0, %d))", base+int32(i), def.Route, NumRoutes())
		}
	}
	indexed := lo.Map(defs, func(def config.SignalDef, i int) indexedSignalDef {
		return indexedSignalDef{index: base + int32(i), def: def}
	})
	built := parallel.GoMap(indexed, func(d indexedSignalDef) *Signal {
		s, err := newSignal(m.ctx, d.index, d.def.Position.ToPoint(), d.def.Route)
		if err != nil {
			// 已在前置校验中排除
			log.Panicf("signal construction failed after validation: %v", err)
		}
		return s
	})
	m.signals = append(m.signals, built...)
	return nil
}

// Add 追加单个信号灯
// 功能：构造一个信号灯并追加到序列尾部
// 参数：position-位置，routeID-相位循环表编号
// 返回：新建的信号灯，route编号未知时返回error
func (m *SignalManager) Add(position geometry.Point, routeID int32) (entity.ISignal, error) {
	s, err := newSignal(m.ctx, int32(len(m.signals)), position, routeID)
	if err != nil {
		return nil, err
	}
	m.signals = append(m.signals, s)
	return s, nil
}

// Get 根据插入序号获取信号灯实例
// 功能：按序号查找信号灯，如果不存在则panic
// 参数：index-插入序号
// 返回：对应的信号灯实例
func (m *SignalManager) Get(index int32) entity.ISignal {
	if index < 0 || index >= int32(len(m.signals)) {
		log.Panicf("no index %d in signal data", index)
		return nil
	}
	return m.signals[index]
}

// GetOrError 根据插入序号获取信号灯实例（带错误处理）
// 功能：按序号查找信号灯，如果不存在则返回error
// 参数：index-插入序号
// 返回：信号灯实例和错误信息
func (m *SignalManager) GetOrError(index int32) (entity.ISignal, error) {
	if index < 0 || index >= int32(len(m.signals)) {
		return nil, fmt.Errorf("no index %d in signal data", index)
	}
	return m.signals[index], nil
}

// Signals 按插入顺序返回所有信号灯
func (m *SignalManager) Signals() []entity.ISignal {
	return lo.Map(m.signals, func(s *Signal, _ int) entity.ISignal { return s })
}

// Len 获取信号灯数量
func (m *SignalManager) Len() int {
	return len(m.signals)
}

// Update 更新阶段，执行所有信号灯的模拟逻辑
// 功能：按插入顺序把同一个时间值传给所有信号灯
// 参数：t-当前仿真时间（本步时钟推进前的值）
// 说明：更新顺序是对外契约的一部分，必须串行执行
func (m *SignalManager) Update(t float64) {
	for _, s := range m.signals {
		s.update(t)
	}
}
