package main

import (
	"strings"
	"time"

	"github.com/hako/durafmt"
)

const benchmarkBatches = 8

// runBenchmark measures raw engine throughput against a synthetic
// prefix and a predicate that cannot match, so every batch runs to
// completion and the hash count is exact.
func runBenchmark(engine searchEngine, lanesTotal, itersPerLane int) {
	prefix := make([]byte, blockPrefixLenHash)
	for i := range prefix {
		prefix[i] = byte(i)
	}
	pred := difficultyPredicate{
		RequiredNibbles: 64,
		RequiredSuffix:  strings.Repeat("0", 64),
		AllowedNext:     hexDigits,
	}

	span := batchHashSpan(lanesTotal, itersPerLane)
	logger.Info("benchmark start",
		"engine", engine.Name(),
		"lanes", lanesTotal,
		"iters_per_lane", itersPerLane,
		"batches", benchmarkBatches)

	start := time.Now()
	var total uint64
	for b := 0; b < benchmarkBatches; b++ {
		if _, found := engine.Search(prefix, pred, lanesTotal, itersPerLane, uint64(b)*span); found {
			logger.Warn("benchmark predicate matched unexpectedly", "batch", b)
		}
		total += span
	}
	elapsed := time.Since(start)

	rate := float64(total) / elapsed.Seconds()
	logger.Info("benchmark result",
		"hashes", total,
		"elapsed", durafmt.Parse(elapsed.Round(time.Millisecond)).LimitFirstN(2).String(),
		"rate_mhs", float64(int(rate/1e4))/100)
}
