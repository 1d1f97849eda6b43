package worker

import (
	"sort"

	"github.com/lgbarn/textchess-go/internal/game"
	"github.com/lgbarn/textchess-go/internal/hashing"
)

// Matches returns n copies of base. Game i is seeded with base.Seed+i so a
// batch is reproducible from one seed and no two games share a random stream.
func Matches(n int, base game.MatchOptions) []game.MatchOptions {
	out := make([]game.MatchOptions, n)
	for i := range out {
		out[i] = base
		out[i].Seed = base.Seed + int64(i)
	}
	return out
}

// Batch is the outcome of RunBatch.
type Batch struct {
	// Results holds one entry per match played, in submission order.
	// Matches skipped after a failure have no entry.
	Results []ProcessResult
	// Unique and Duplicates count the distinct and repeated final positions.
	Unique     int
	Duplicates int
}

// Skipped returns how many of n submitted matches were never played.
func (b *Batch) Skipped(n int) int {
	return n - len(b.Results)
}

// RunBatch plays every match on the given number of workers. onResult, if
// non-nil, is called from the calling goroutine as each match finishes.
// A match is flagged as a duplicate when an earlier finisher ended on the
// same position after the same number of plies. The first failed match
// stops the batch; matches not yet started are skipped.
func RunBatch(matches []game.MatchOptions, workers int, onResult func(ProcessResult)) *Batch {
	detector := hashing.NewThreadSafeDuplicateDetector(true, 0)
	pool := NewPoolWithOptions(
		WithWorkers(workers),
		WithBufferSize(workers*2),
		WithDuplicateDetector(detector),
		WithStopOnError(),
	)
	pool.Start()

	go func() {
		for i, m := range matches {
			if pool.IsStopped() {
				break
			}
			pool.Submit(WorkItem{Index: i, Match: m})
		}
		pool.Close()
	}()

	results := make([]ProcessResult, 0, len(matches))
	for res := range pool.Results() {
		if onResult != nil {
			onResult(res)
		}
		results = append(results, res)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return &Batch{
		Results:    results,
		Unique:     detector.UniqueCount(),
		Duplicates: detector.DuplicateCount(),
	}
}
