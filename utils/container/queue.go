package container

import (
	"fmt"
	"log"
)

// QueueNode 车辆队列中的节点
// 功能：表示队列中的一个节点，包含沿路位置键值和元素值
// 说明：支持泛型，元素类型对队列透明
type QueueNode[T any] struct {
	parent     *Queue[T]       // 所属队列
	prev, next *QueueNode[T]   // 前驱和后继节点
	S          float64         // 键值（沿路位置）
	Value      T               // 元素值
}

// String 获取节点的字符串表示
// 功能：将节点信息格式化为可读的字符串
// 返回：格式化的节点信息字符串
func (n *QueueNode[T]) String() string {
	return fmt.Sprintf("Node{S:%v, Value:%+v}", n.S, n.Value)
}

// Prev 获取节点的前一个节点
// 功能：返回队列中的前驱节点
// 返回：前驱节点指针，如果是第一个节点则返回nil
func (n *QueueNode[T]) Prev() *QueueNode[T] {
	return n.prev
}

// Next 获取节点的下一个节点
// 功能：返回队列中的后继节点
// 返回：后继节点指针，如果是最后一个节点则返回nil
func (n *QueueNode[T]) Next() *QueueNode[T] {
	return n.next
}

// Parent 获取节点所在的队列
// 功能：返回节点所属的队列对象
// 返回：队列指针
func (n *QueueNode[T]) Parent() *Queue[T] {
	return n.parent
}

// InsertBefore 在节点前插入新节点
// 功能：在当前节点之前插入一个新节点
// 参数：add-要插入的新节点
// 算法说明：
// 1. 检查新节点是否已经在其他队列中
// 2. 设置新节点的父队列和前后指针
// 3. 更新当前节点和前驱节点的指针
// 4. 如果新节点是第一个节点，更新队列头指针
// 5. 增加队列长度计数
func (n *QueueNode[T]) InsertBefore(add *QueueNode[T]) {
	if add.parent != nil {
		log.Panic("insert node who already in queue")
	}
	add.parent = n.parent
	add.next = n
	add.prev = n.prev
	n.prev = add
	if add.prev != nil {
		add.prev.next = add
	} else {
		add.parent.head = add
	}
	n.parent.length++
}

// InsertAfter 在节点后插入新节点
// 功能：在当前节点之后插入一个新节点
// 参数：add-要插入的新节点
// 算法说明：
// 1. 检查新节点是否已经在其他队列中
// 2. 设置新节点的父队列和前后指针
// 3. 更新当前节点和后继节点的指针
// 4. 如果新节点是最后一个节点，更新队列尾指针
// 5. 增加队列长度计数
func (n *QueueNode[T]) InsertAfter(add *QueueNode[T]) {
	if add.parent != nil {
		log.Panic("insert node who already in queue")
	}
	add.parent = n.parent
	add.prev = n
	add.next = n.next
	n.next = add
	if add.next != nil {
		add.next.prev = add
	} else {
		add.parent.tail = add
	}
	n.parent.length++
}

// Queue 有序车辆队列
// 功能：实现一个按插入顺序维护的双向链表队列
// 说明：道路用它保存路上车辆的引用，本核心中始终为空但必须可安全遍历；
// 插入顺序是唯一的语义，队列自身不做排序
type Queue[T any] struct {
	ID         string        // 队列标识符
	head, tail *QueueNode[T] // 头尾节点指针
	length     int           // 队列长度
}

// String 获取队列的字符串表示
// 功能：将队列信息格式化为可读的字符串
// 返回：格式化的队列信息字符串
func (q *Queue[T]) String() string {
	return fmt.Sprintf("Queue{ID:%v}", q.ID)
}

// Keys 获取队列中所有节点的键值
// 功能：返回队列中所有节点的键值数组
// 返回：键值数组
func (q *Queue[T]) Keys() []float64 {
	keys := make([]float64, q.length)
	for i, node := 0, q.head; node != nil; i, node = i+1, node.next {
		keys[i] = node.S
	}
	return keys
}

// Values 获取队列中所有节点的值
// 功能：返回队列中所有节点的值数组，顺序与插入顺序一致
// 返回：值数组
func (q *Queue[T]) Values() []T {
	values := make([]T, q.length)
	for i, node := 0, q.head; node != nil; i, node = i+1, node.next {
		values[i] = node.Value
	}
	return values
}

// Len 获取队列长度
// 功能：返回队列中的节点数量
// 返回：队列长度
func (q *Queue[T]) Len() int {
	return q.length
}

// PushFront 向队列头部插入节点
// 功能：在队列头部添加一个新节点
// 参数：add-要插入的新节点
func (q *Queue[T]) PushFront(add *QueueNode[T]) {
	if add.parent != nil {
		log.Panic("push node who already in queue")
	}
	add.next = nil
	add.prev = nil
	if q.head == nil {
		add.parent = q
		q.head = add
		q.tail = add
		q.length++
	} else {
		// length++和add.parent在InsertBefore中处理
		q.head.InsertBefore(add)
		q.head = add
	}
}

// PushBack 向队列尾部插入节点
// 功能：在队列尾部添加一个新节点
// 参数：add-要插入的新节点
func (q *Queue[T]) PushBack(add *QueueNode[T]) {
	if add.parent != nil {
		log.Panic("push node who already in queue")
	}
	add.next = nil
	add.prev = nil
	if q.tail == nil {
		add.parent = q
		q.head = add
		q.tail = add
		q.length++
	} else {
		// length++和add.parent在InsertAfter中处理
		q.tail.InsertAfter(add)
		q.tail = add
	}
}

// Remove 从队列中移除节点
// 功能：从队列中删除指定的节点
// 参数：node-要删除的节点
// 算法说明：
// 1. 检查节点是否属于当前队列
// 2. 更新前驱与后继节点的指针
// 3. 必要时更新头尾指针
// 4. 清空被删除节点的指针并减少长度计数
func (q *Queue[T]) Remove(node *QueueNode[T]) {
	if node.parent != q {
		log.Panic("remove node from wrong queue")
	}
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		q.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		q.tail = node.prev
	}
	node.prev = nil
	node.next = nil
	node.parent = nil
	q.length--
}

// First 获取队列头部节点
// 功能：返回队列的第一个节点
// 返回：头节点指针，如果队列为空则返回nil
func (q *Queue[T]) First() *QueueNode[T] {
	return q.head
}

// Last 获取队列尾部节点
// 功能：返回队列的最后一个节点
// 返回：尾节点指针，如果队列为空则返回nil
func (q *Queue[T]) Last() *QueueNode[T] {
	return q.tail
}
