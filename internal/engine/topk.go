package engine

import (
	"container/heap"

	"NGramCount/internal/types"
)

// pairHeap orders pairs by descending count, then ascending n-gram.
// The secondary key makes top-five selection deterministic under ties.
type pairHeap []types.Pair

func (h pairHeap) Len() int { return len(h) }
func (h pairHeap) Less(i, j int) bool {
	if h[i].Count != h[j].Count {
		return h[i].Count > h[j].Count
	}
	return h[i].Ngram < h[j].Ngram
}
func (h pairHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}
func (h *pairHeap) Push(x interface{}) {
	*h = append(*h, x.(types.Pair))
}
func (h *pairHeap) Pop() interface{} {
	old := *h
	n := len(old)
	p := old[n-1]
	*h = old[0 : n-1]
	return p
}

// topFive selects the five highest-count entries of freq. The result
// always has length five; when freq has fewer entries the remaining
// slots keep their zero value and render as placeholders.
func topFive(freq map[string]uint64) []types.Pair {
	h := make(pairHeap, 0, len(freq))
	for g, c := range freq {
		h = append(h, types.Pair{Ngram: g, Count: c})
	}
	heap.Init(&h)

	top := make([]types.Pair, topN)
	for i := 0; i < topN && h.Len() > 0; i++ {
		top[i] = heap.Pop(&h).(types.Pair)
	}
	return top
}
