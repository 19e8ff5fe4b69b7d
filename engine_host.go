package main

import (
	"encoding/binary"
	"runtime"
	"sync/atomic"

	"github.com/remeh/sizedwaitgroup"
)

// hostEngine runs the lane contract on CPU. Lanes are split into
// contiguous chunks, one goroutine per chunk, bounded by a sized wait
// group so a large lane count never translates into a goroutine flood.
type hostEngine struct {
	workers int
}

func newHostEngine(workers int) *hostEngine {
	return &hostEngine{workers: workers}
}

func (e *hostEngine) Init() error {
	if e.workers <= 0 {
		e.workers = runtime.NumCPU()
	}
	return nil
}

func (e *hostEngine) Name() string { return "host/" + sha256ImplementationName() }

func (e *hostEngine) Close() {}

func (e *hostEngine) Search(prefix []byte, pred difficultyPredicate, lanesTotal, itersPerLane int, batchOffset uint64) (uint32, bool) {
	if lanesTotal <= 0 || itersPerLane <= 0 {
		return nonceNotFound, false
	}

	var slot atomic.Uint32
	slot.Store(nonceNotFound)

	workers := e.workers
	if workers > lanesTotal {
		workers = lanesTotal
	}
	lanesPerWorker := (lanesTotal + workers - 1) / workers

	swg := sizedwaitgroup.New(workers)
	for lo := 0; lo < lanesTotal; lo += lanesPerWorker {
		hi := lo + lanesPerWorker
		if hi > lanesTotal {
			hi = lanesTotal
		}
		swg.Add()
		go func(lo, hi int) {
			defer swg.Done()
			buf := make([]byte, len(prefix)+4)
			copy(buf, prefix)
			nonceAt := buf[len(prefix):]
			for k := 0; k < itersPerLane; k++ {
				// Early exit: another lane already won this batch.
				if slot.Load() != nonceNotFound {
					return
				}
				stride := batchOffset + uint64(k)*uint64(lanesTotal)
				for lane := lo; lane < hi; lane++ {
					n := uint32(stride + uint64(lane))
					binary.LittleEndian.PutUint32(nonceAt, n)
					digest := sha256Sum(buf)
					if pred.matchesDigest(&digest) {
						slot.CompareAndSwap(nonceNotFound, n)
						return
					}
				}
			}
		}(lo, hi)
	}
	swg.Wait()

	n := slot.Load()
	return n, n != nonceNotFound
}
