package main

// nonceNotFound is the shared result-slot sentinel. A batch that finds
// nothing leaves the slot at this value; a winning lane installs its
// nonce with a single compare-and-swap against it.
const nonceNotFound = ^uint32(0)

// searchEngine is the capability boundary between the orchestration
// loops and a concrete nonce-search backend. Both implementations honor
// the same lane contract: lane L of a batch evaluates
//
//	nonce = batchOffset + L + k*lanesTotal   for k in [0, itersPerLane)
//
// hashing SHA-256(prefix ‖ LE32(nonce)) and testing the digest against
// the predicate. The first lane to find a match wins the shared slot;
// remaining lanes notice the slot is taken and stop early. Search
// returns the winning nonce, or found=false when the batch is exhausted.
type searchEngine interface {
	// Init acquires backend resources. It must be called once before
	// Search; a non-nil error means the backend is unusable and the
	// process should not fall back silently.
	Init() error

	Search(prefix []byte, pred difficultyPredicate, lanesTotal, itersPerLane int, batchOffset uint64) (uint32, bool)

	// Name identifies the backend in logs and the stats report.
	Name() string

	Close()
}

// batchHashSpan is the per-batch hash telemetry: an upper bound, since
// lanes stop early once the result slot is taken. Reported counters
// always use this bound, never an exact count.
func batchHashSpan(lanesTotal, itersPerLane int) uint64 {
	return uint64(lanesTotal) * uint64(itersPerLane)
}
