package search

import "container/heap"

// Frontier holds admitted nodes waiting to be expanded.
type Frontier interface {
	Push(n *Node)
	// Pop removes the next node, or returns nil when empty.
	Pop() *Node
	Len() int
}

// NewFIFO returns a first-in first-out frontier.
func NewFIFO() Frontier {
	return &fifo{}
}

// NewLIFO returns a last-in first-out frontier.
func NewLIFO() Frontier {
	return &lifo{}
}

// NewMinHeap returns a frontier ordered by ascending Priority. Equal
// priorities pop in admission order.
func NewMinHeap() Frontier {
	return &minHeap{}
}

type fifo struct {
	items []*Node
	head  int
}

func (q *fifo) Push(n *Node) {
	q.items = append(q.items, n)
}

func (q *fifo) Pop() *Node {
	if q.head >= len(q.items) {
		return nil
	}
	n := q.items[q.head]
	q.items[q.head] = nil
	q.head++

	// Reclaim the consumed prefix once it dominates the slice.
	if q.head > 1024 && q.head*2 > len(q.items) {
		q.items = append([]*Node(nil), q.items[q.head:]...)
		q.head = 0
	}
	return n
}

func (q *fifo) Len() int {
	return len(q.items) - q.head
}

type lifo struct {
	items []*Node
}

func (s *lifo) Push(n *Node) {
	s.items = append(s.items, n)
}

func (s *lifo) Pop() *Node {
	if len(s.items) == 0 {
		return nil
	}
	last := len(s.items) - 1
	n := s.items[last]
	s.items[last] = nil
	s.items = s.items[:last]
	return n
}

func (s *lifo) Len() int {
	return len(s.items)
}

type minHeap struct {
	pq  nodeQueue
	seq uint64
}

func (h *minHeap) Push(n *Node) {
	n.seq = h.seq
	h.seq++
	heap.Push(&h.pq, n)
}

func (h *minHeap) Pop() *Node {
	if len(h.pq) == 0 {
		return nil
	}
	return heap.Pop(&h.pq).(*Node)
}

func (h *minHeap) Len() int {
	return len(h.pq)
}

// nodeQueue implements heap.Interface.
type nodeQueue []*Node

func (pq nodeQueue) Len() int { return len(pq) }

func (pq nodeQueue) Less(i, j int) bool {
	if pq[i].Priority != pq[j].Priority {
		return pq[i].Priority < pq[j].Priority
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodeQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *nodeQueue) Push(x any) {
	n := x.(*Node)
	n.index = len(*pq)
	*pq = append(*pq, n)
}

func (pq *nodeQueue) Pop() any {
	old := *pq
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	n.index = -1
	*pq = old[:last]
	return n
}
