package entity

import (
	"git.fiblab.net/general/common/v2/geometry"
	"github.com/tsinghua-fib-lab/roadnet-sim-oss/utils/config"
)

// Manager依赖倒置

// entity/road/manager.go的依赖倒置
type IRoadManager interface {
	// 批量初始化，任一非法定义返回error，不产生部分路网
	Init(defs []config.RoadDef) error
	// 追加单条道路，start==end时返回error
	Add(start, end geometry.Point) (IRoad, error)

	// 输入插入序号，查找道路，如果不存在则panic
	Get(index int32) IRoad
	// 输入插入序号，查找道路，如果不存在则返回error
	GetOrError(index int32) (IRoad, error)
	// 按插入顺序返回所有道路
	Roads() []IRoad
	Len() int

	Update(dt float64) // 更新阶段，按插入顺序执行
}

// entity/signal/manager.go的依赖倒置
type ISignalManager interface {
	// 批量初始化，任一非法定义返回error，不产生部分路网
	Init(defs []config.SignalDef) error
	// 追加单个信号灯，route编号超出预定义循环表范围时返回error
	Add(position geometry.Point, routeID int32) (ISignal, error)

	// 输入插入序号，查找信号灯，如果不存在则panic
	Get(index int32) ISignal
	// 输入插入序号，查找信号灯，如果不存在则返回error
	GetOrError(index int32) (ISignal, error)
	// 按插入顺序返回所有信号灯
	Signals() []ISignal
	Len() int

	Update(t float64) // 更新阶段，所有信号灯读取同一个时间值，按插入顺序执行
}
