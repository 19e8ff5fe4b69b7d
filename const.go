package main

import "time"

const (
	softwareName    = "goMiner"
	softwareVersion = "1.2.0"

	// Standalone loop pacing.
	submitSettleDelay = 2 * time.Second

	// Batch-index ceiling: on an unchanged tip the offset is
	// rewound after this many batches so the sweep revisits the low
	// nonce space with fresh timestamps instead of drifting forever.
	maxBatchesPerBlock = 4096

	// Close idle node connections after this many fetch attempts.
	transportRecycleInterval = 50

	// Pool loop pacing.
	poolNoWorkDelay   = 5 * time.Second
	poolBadRangeDelay = 5 * time.Second

	// Work-proof sampling: hash a small window of nonces every interval
	// of claimed hashes and keep the lexicographically smallest digest.
	workProofSampleInterval = 1 << 20
	workProofSampleWindow   = 16

	httpClientTimeout = 30 * time.Second
)

var fetchRetryDelay = 5 * time.Second
