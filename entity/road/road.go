package road

import (
	"fmt"
	"math"

	"git.fiblab.net/general/common/v2/geometry"
	"github.com/tsinghua-fib-lab/roadnet-sim-oss/entity"
	"github.com/tsinghua-fib-lab/roadnet-sim-oss/utils/container"
)

// Road 道路实体
// 功能：表示路网中一条两点间的有向道路段
// 说明：长度与单位方向向量在构造时一次计算，此后几何不再变化；
// 重新计算几何的唯一方式是重新构造
type Road struct {
	ctx entity.ITaskContext

	index    int32          // 路网中的插入序号
	start    geometry.Point // 起点
	end      geometry.Point // 终点
	length   float64        // 起终点欧氏距离
	angleCos float64        // 单位方向向量cos分量
	angleSin float64        // 单位方向向量sin分量

	vehicles *container.Queue[entity.IVehicle] // 路上车辆队列，保持插入顺序
}

// newRoad 创建并初始化一个新的Road实例
// 功能：根据起终点创建Road对象，计算长度与单位方向向量
// 参数：ctx-任务上下文，index-插入序号，start/end-起终点坐标
// 返回：初始化完成的Road实例，起终点重合时返回error
// 说明：零长度道路的方向无定义，必须在构造时拒绝
func newRoad(ctx entity.ITaskContext, index int32, start, end geometry.Point) (*Road, error) {
	dx := end.X - start.X
	dy := end.Y - start.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil, fmt.Errorf("road %d: start and end are the same point (%v, %v)", index, start.X, start.Y)
	}
	r := &Road{
		ctx:      ctx,
		index:    index,
		start:    start,
		end:      end,
		length:   length,
		angleCos: dx / length,
		angleSin: dy / length,
		vehicles: &container.Queue[entity.IVehicle]{ID: fmt.Sprintf("road %d vehicles", index)},
	}
	return r, nil
}

// update 更新阶段，每步执行一次
// 功能：遍历路上车辆队列，本核心中为占位的空遍历
// 参数：dt-时间步长
// 说明：为未来的车辆推进逻辑保留的挂点，不得修改几何，
// 队列为空时必须安全通过
func (r *Road) update(dt float64) {
	_ = dt
	for node := r.vehicles.First(); node != nil; node = node.Next() {
		_ = node.Value
	}
}

// Index 获取道路的插入序号
// 功能：返回道路在路网中的插入序号，如果道路为nil则返回-1
func (r *Road) Index() int32 {
	if r == nil {
		return -1
	}
	return r.index
}

// String 获取道路的字符串表示
// 功能：返回道路的字符串描述，用于调试和日志输出
func (r *Road) String() string {
	return fmt.Sprintf("Road %d", r.index)
}

// Start 获取起点坐标
func (r *Road) Start() geometry.Point {
	return r.start
}

// End 获取终点坐标
func (r *Road) End() geometry.Point {
	return r.end
}

// Length 获取道路长度（起终点欧氏距离）
func (r *Road) Length() float64 {
	return r.length
}

// AngleCos 获取单位方向向量的cos分量
func (r *Road) AngleCos() float64 {
	return r.angleCos
}

// AngleSin 获取单位方向向量的sin分量
func (r *Road) AngleSin() float64 {
	return r.angleSin
}

// Angle 获取方向角
// 功能：返回从起点指向终点的方向角（atan2，弧度）
func (r *Road) Angle() float64 {
	return math.Atan2(r.angleSin, r.angleCos)
}

// Vehicles 获取路上车辆队列
// 功能：返回道路的车辆队列，顺序为插入顺序
// 说明：本核心不向队列写入任何车辆
func (r *Road) Vehicles() *container.Queue[entity.IVehicle] {
	return r.vehicles
}
