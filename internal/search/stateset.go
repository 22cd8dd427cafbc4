package search

import "github.com/vovakirdan/lavaqua/internal/game"

// stateMap associates a value with each distinct state. States are bucketed
// by canonical hash and compared with Equal, so hash collisions never merge
// different boards.
type stateMap[V any] struct {
	buckets map[uint64][]stateEntry[V]
	size    int
}

type stateEntry[V any] struct {
	state *game.State
	value V
}

func newStateMap[V any]() *stateMap[V] {
	return &stateMap[V]{buckets: make(map[uint64][]stateEntry[V])}
}

func (m *stateMap[V]) Get(s *game.State) (V, bool) {
	for _, e := range m.buckets[s.Hash()] {
		if e.state.Equal(s) {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

func (m *stateMap[V]) Has(s *game.State) bool {
	_, ok := m.Get(s)
	return ok
}

func (m *stateMap[V]) Put(s *game.State, v V) {
	h := s.Hash()
	bucket := m.buckets[h]
	for i := range bucket {
		if bucket[i].state.Equal(s) {
			bucket[i].value = v
			return
		}
	}
	m.buckets[h] = append(bucket, stateEntry[V]{state: s, value: v})
	m.size++
}

func (m *stateMap[V]) Len() int {
	return m.size
}
