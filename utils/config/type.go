package config

import "git.fiblab.net/general/common/v2/geometry"

// PointDef 配置文件中的二维坐标，格式为[x, y]
type PointDef [2]float64

// ToPoint 转换为geometry.Point
// 功能：将配置中的坐标数组转换为运行时使用的坐标类型
// 返回：对应的geometry.Point（Z恒为0）
func (p PointDef) ToPoint() geometry.Point {
	return geometry.Point{X: p[0], Y: p[1]}
}

// RoadDef 单条道路的定义
// 功能：描述一条有向道路段的起点和终点
// 说明：起点和终点必须是不同的点，否则方向无定义
type RoadDef struct {
	Start PointDef `yaml:"start"` // 起点坐标
	End   PointDef `yaml:"end"`   // 终点坐标
}

// SignalDef 单个信号灯的定义
// 功能：描述一个信号灯的位置和所采用的相位循环表
// 说明：route为预定义循环表的编号，超出预定义范围的编号在构造时报错
type SignalDef struct {
	Position PointDef `yaml:"position"` // 信号灯位置
	Route    int32    `yaml:"route"`    // 相位循环表编号
}

// Network 路网拓扑定义
// 功能：描述整个固定路网的道路和信号灯列表
// 说明：列表顺序即插入顺序，对外可见（驱动器按位置索引访问）
type Network struct {
	Roads   []RoadDef   `yaml:"roads"`             // 道路列表
	Signals []SignalDef `yaml:"signals,omitempty"` // 信号灯列表
}

// ControlStep 指定模拟器模拟时间范围和间隔的配置项
// 功能：定义仿真时间控制参数
// 说明：控制仿真的时间范围和步长
type ControlStep struct {
	Start    int32   `yaml:"start"`    // 开始步数
	Total    int32   `yaml:"total"`    // 总步数
	Interval float64 `yaml:"interval"` // 每步的时间间隔
}

// Control 模拟器控制配置
// 功能：定义仿真系统的核心控制参数
type Control struct {
	Step ControlStep `yaml:"step"`
	// 每个可视化帧内执行的模拟步数，缺省为1
	// 信号灯切换判据对update调用粒度敏感，修改此值会改变信号灯的可观测时序
	StepsPerFrame int32 `yaml:"steps_per_frame,omitempty"`
}

// Config YAML配置文件的根结构
// 功能：定义整个仿真系统的配置结构
type Config struct {
	Control Control `yaml:"control"` // 模拟过程控制
	Network Network `yaml:"network"` // 路网拓扑
}
