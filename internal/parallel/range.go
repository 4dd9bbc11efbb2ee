package parallel

// DefaultGrain is the default range chunk size. Extraction work items
// are cheap (a handful of array reads per element), so large chunks
// keep scheduling overhead negligible while still splitting real
// meshes across every worker.
const DefaultGrain = 2048

// ForRange runs fn over [0, n) split into chunks of at most grain
// elements, in parallel on the pool, and blocks until all chunks are
// done. A nil pool, or a range no larger than one chunk, runs inline.
//
// Chunks are disjoint, so fn may write to chunk-owned output without
// synchronization.
func ForRange(p *Pool, n, grain int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if grain <= 0 {
		grain = DefaultGrain
	}
	if p == nil || n <= grain {
		fn(0, n)
		return
	}

	chunks := (n + grain - 1) / grain
	jobs := make([]func(), chunks)
	for i := range jobs {
		start := i * grain
		end := min(start+grain, n)
		jobs[i] = func() { fn(start, end) }
	}
	p.Run(jobs)
}

// ForRangeReduce is ForRange with a typed per-chunk accumulator.
//
// Every chunk gets a private accumulator from init and fills it with
// body; afterwards the accumulators are folded pairwise with merge and
// the survivor is returned. merge must treat the two accumulators as
// disjoint partial results (each element of [0, n) is visited by exactly
// one chunk), which makes the fold order irrelevant.
func ForRangeReduce[T any](p *Pool, n, grain int, init func() T, body func(acc T, start, end int), merge func(to, from T)) T {
	if grain <= 0 {
		grain = DefaultGrain
	}
	if p == nil || n <= grain {
		acc := init()
		if n > 0 {
			body(acc, 0, n)
		}
		return acc
	}

	chunks := (n + grain - 1) / grain
	accs := make([]T, chunks)
	jobs := make([]func(), chunks)
	for i := range jobs {
		i := i
		start := i * grain
		end := min(start+grain, n)
		jobs[i] = func() {
			accs[i] = init()
			body(accs[i], start, end)
		}
	}
	p.Run(jobs)

	for i := 1; i < chunks; i++ {
		merge(accs[0], accs[i])
	}
	return accs[0]
}
