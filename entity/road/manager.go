package road

import (
	"fmt"

	"git.fiblab.net/general/common/v2/geometry"
	"git.fiblab.net/general/common/v2/parallel"
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/roadnet-sim-oss/entity"
	"github.com/tsinghua-fib-lab/roadnet-sim-oss/utils/config"
)

// RoadManager 道路管理器
// 功能：管理所有道路实体，提供创建、查找、更新等功能
// 说明：道路序列的顺序即插入顺序，对外可见，没有删除操作
type RoadManager struct {
	ctx entity.ITaskContext

	roads []*Road
}

// NewManager 创建道路管理器实例
// 功能：初始化道路管理器，创建内部数据结构
// 参数：ctx-任务上下文
// 返回：新创建的道路管理器实例
func NewManager(ctx entity.ITaskContext) *RoadManager {
	return &RoadManager{
		ctx:   ctx,
		roads: make([]*Road, 0),
	}
}

// indexedRoadDef 带插入序号的道路定义，供并行构造使用
type indexedRoadDef struct {
	index int32
	def   config.RoadDef
}

// Init 初始化所有道路
// 功能：根据定义列表批量构造道路，保持列表顺序
// 参数：defs-道路定义列表
// 返回：任一定义非法时返回error，指明出错的定义，不追加任何道路
// 说明：先整体校验再并行构造，保证不产生部分路网
func (m *RoadManager) Init(defs []config.RoadDef) error {
	base := int32(len(m.roads))
	for i, def := range defs {
		if def.Start == def.End {
			return fmt.Errorf("road %d: invalid definition: start and end are the same point %v", base+int32(i), def.Start)
		}
	}
	indexed := lo.Map(defs, func(def config.RoadDef, i int) indexedRoadDef {
		return indexedRoadDef{index: base + int32(i), def: def}
	})
	built := parallel.GoMap(indexed, func(d indexedRoadDef) *Road {
		r, err := newRoad(m.ctx, d.index, d.def.Start.ToPoint(), d.def.End.ToPoint())
		if err != nil {
			// 已在前置校验中排除
			log.Panicf("road construction failed after validation: %v", err)
		}
		return r
	})
	m.roads = append(m.roads, built...)
	return nil
}

// Add 追加单条道路
// 功能：构造一条道路并追加到序列尾部
// 参数：start/end-起终点坐标
// 返回：新建的道路，起终点重合时返回error
func (m *RoadManager) Add(start, end geometry.Point) (entity.IRoad, error) {
	r, err := newRoad(m.ctx, int32(len(m.roads)), start, end)
	if err != nil {
		return nil, err
	}
	m.roads = append(m.roads, r)
	return r, nil
}

// Get 根据插入序号获取道路实例
// 功能：按序号查找道路，如果不存在则panic
// 参数：index-插入序号
// 返回：对应的道路实例
func (m *RoadManager) Get(index int32) entity.IRoad {
	if index < 0 || index >= int32(len(m.roads)) {
		log.Panicf("no index %d in road data", index)
		return nil
	}
	return m.roads[index]
}

// GetOrError 根据插入序号获取道路实例（带错误处理）
// 功能：按序号查找道路，如果不存在则返回error
// 参数：index-插入序号
// 返回：道路实例和错误信息
func (m *RoadManager) GetOrError(index int32) (entity.IRoad, error) {
	if index < 0 || index >= int32(len(m.roads)) {
		return nil, fmt.Errorf("no index %d in road data", index)
	}
	return m.roads[index], nil
}

// Roads 按插入顺序返回所有道路
func (m *RoadManager) Roads() []entity.IRoad {
	return lo.Map(m.roads, func(r *Road, _ int) entity.IRoad { return r })
}

// Len 获取道路数量
func (m *RoadManager) Len() int {
	return len(m.roads)
}

// Update 更新阶段，执行所有道路的模拟逻辑
// 功能：按插入顺序对所有道路执行更新
// 参数：dt-时间步长
// 说明：更新顺序是对外契约的一部分，必须串行执行
func (m *RoadManager) Update(dt float64) {
	for _, r := range m.roads {
		r.update(dt)
	}
}
