package signal

import "github.com/tsinghua-fib-lab/roadnet-sim-oss/entity"

// 相位切换判据的命名常量
// 切换判据基于绝对仿真时间而非步数：当时间对PhasePeriod取模落入
// [0, TransitionEpsilon)且时间不为零时触发一次切换。因此判据对update的
// 调用粒度敏感：调用粒度粗于TransitionEpsilon会整体跳过某些切换，
// 细于TransitionEpsilon则同一边界内的每次调用都各触发一次切换。
// 这一耦合是可观测时序的一部分，调用方需要据此确定调用频率。
const (
	// PhasePeriod 单个相位的持续时间（时间单位）
	PhasePeriod = 9.0
	// TransitionEpsilon 切换时间带宽，等于参考驱动器单帧推进的时间量
	// （1/300时间单位每步×5步每帧）
	TransitionEpsilon = 0.01666666666674388
)

// cycleLength 相位循环表的固定长度
const cycleLength = 5

// colorTable 相位索引到灯色的固定映射表
// 说明：灯色只能经由该表从相位游标推导，不允许独立赋值
var colorTable = [...]entity.LightState{
	entity.LIGHT_STATE_GREEN,
	entity.LIGHT_STATE_YELLOW,
	entity.LIGHT_STATE_RED,
}

// cycleTables 路线类别编号到相位循环表的固定映射
// 说明：闭集，构造时校验route编号，未知编号拒绝构造
var cycleTables = [][]int32{
	{0, 0, 1, 2, 2}, // route 0: 绿绿黄红红
	{2, 2, 2, 0, 1}, // route 1: 红红红绿黄
}

// NumRoutes 获取预定义相位循环表的数量
// 功能：返回合法route编号的上界（编号范围[0, NumRoutes)）
func NumRoutes() int32 {
	return int32(len(cycleTables))
}
