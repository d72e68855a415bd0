package entity

import (
	"git.fiblab.net/general/common/v2/geometry"
	"github.com/tsinghua-fib-lab/roadnet-sim-oss/utils/container"
)

// LightState 信号灯灯色
type LightState int32

// 灯色常量，顺序与相位索引映射表一致
const (
	LIGHT_STATE_GREEN  LightState = 0 // 绿灯
	LIGHT_STATE_YELLOW LightState = 1 // 黄灯
	LIGHT_STATE_RED    LightState = 2 // 红灯
)

// String 获取灯色的字符串表示
func (s LightState) String() string {
	switch s {
	case LIGHT_STATE_GREEN:
		return "green"
	case LIGHT_STATE_YELLOW:
		return "yellow"
	case LIGHT_STATE_RED:
		return "red"
	default:
		return "unknown"
	}
}

// entity/vehicle/vehicle.go的依赖倒置
// 车辆引用，仅作为道路队列的扩展点，本核心不包含任何车辆行为
type IVehicle interface {
	ID() int32       // 获取车辆ID
	V() float64      // 获取速度
	Length() float64 // 获取车长

	String() string
}

// entity/road/road.go的依赖倒置
type IRoad interface {
	// 自身属性

	Index() int32            // 获取道路在路网中的插入序号
	Start() geometry.Point   // 获取起点坐标
	End() geometry.Point     // 获取终点坐标
	Length() float64         // 获取长度（起终点欧氏距离）
	AngleCos() float64       // 获取单位方向向量的cos分量
	AngleSin() float64       // 获取单位方向向量的sin分量
	Angle() float64          // 获取方向角（atan2）

	// 路上车辆队列（本核心中为空，仅保证可安全遍历）
	Vehicles() *container.Queue[IVehicle]

	String() string
}

// entity/signal/signal.go的依赖倒置
type ISignal interface {
	// 自身属性

	Index() int32            // 获取信号灯在路网中的插入序号
	Position() geometry.Point // 获取位置坐标
	RouteID() int32          // 获取相位循环表编号
	Cycle() []int32          // 获取相位循环表（副本）

	// 运行时状态

	Light() LightState      // 获取当前灯色（纯读取，无副作用）
	Step() int32            // 获取当前相位游标
	RemainingTime() float64 // 获取距下一相位边界的时间，尚未观测到时间时为INF

	String() string
}
