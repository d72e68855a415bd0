package vehicle

import "fmt"

// Vehicle 车辆引用
// 功能：道路车辆队列中元素的最小实现，仅携带标识与静态属性
// 说明：本核心不包含车辆的插入、运动与移除逻辑，该类型只是为未来的
// 车辆动力学层保留的扩展点
type Vehicle struct {
	id     int32
	v      float64 // 速度
	length float64 // 车长
}

// New 创建车辆引用
func New(id int32, v, length float64) *Vehicle {
	return &Vehicle{id: id, v: v, length: length}
}

// ID 获取车辆ID
func (v *Vehicle) ID() int32 {
	return v.id
}

// V 获取速度
func (v *Vehicle) V() float64 {
	return v.v
}

// Length 获取车长
func (v *Vehicle) Length() float64 {
	return v.length
}

// String 获取车辆的字符串表示
func (v *Vehicle) String() string {
	return fmt.Sprintf("Vehicle %d", v.id)
}
