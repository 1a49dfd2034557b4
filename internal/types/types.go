package types

// Pair is one n-gram together with its occurrence count. Slices of
// pairs are the unit of exchange between workers during the shuffle
// phase.
type Pair struct {
	Ngram string
	Count uint64
}

// WorkerReport is the result of a single worker's reduce phase.
type WorkerReport struct {
	Worker int
	// Top holds exactly five slots in descending count order. A slot
	// with a zero count is a placeholder, not a real n-gram.
	Top []Pair
	// Counts is the worker's full reduced table: the global count of
	// every n-gram whose hash partition this worker owns.
	Counts map[string]uint64
}
