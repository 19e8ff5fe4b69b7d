//go:build cuda

package main

/*
#cgo LDFLAGS: -L${SRCDIR}/cuda -L/usr/local/cuda/lib64 -lgominer -lcudart -lstdc++
#cgo CFLAGS: -I/usr/local/cuda/include

#include <stdint.h>

int gominer_init(int device);
void gominer_close(void);

// Runs one batch of the lane contract on the device and returns the
// winning nonce, or 0xffffffff when the batch is exhausted. suffix and
// charset are lowercase hex; charset_len == 16 means unrestricted.
uint32_t gominer_search_batch(const uint8_t *prefix, int prefix_len,
    const char *suffix, int suffix_len,
    const char *charset, int charset_len,
    int lanes_total, int iters_per_lane, uint64_t batch_offset);
*/
import "C"

import (
	"fmt"
	"unsafe"
)

const gpuEngineAvailable = true

// cudaEngine drives the device kernel in libgominer, built out of tree
// and linked from cuda/ or the system library path. One batch per
// kernel launch; the shared result slot lives in device memory and is
// reset to the sentinel before each launch.
type cudaEngine struct {
	device int
	ready  bool
}

func newCUDAEngine(device int) (searchEngine, error) {
	return &cudaEngine{device: device}, nil
}

func (e *cudaEngine) Init() error {
	if rc := C.gominer_init(C.int(e.device)); rc != 0 {
		return fmt.Errorf("cuda init failed on device %d (code %d)", e.device, int(rc))
	}
	e.ready = true
	return nil
}

func (e *cudaEngine) Name() string { return fmt.Sprintf("cuda/device%d", e.device) }

func (e *cudaEngine) Close() {
	if e.ready {
		C.gominer_close()
		e.ready = false
	}
}

func (e *cudaEngine) Search(prefix []byte, pred difficultyPredicate, lanesTotal, itersPerLane int, batchOffset uint64) (uint32, bool) {
	if lanesTotal <= 0 || itersPerLane <= 0 {
		return nonceNotFound, false
	}
	suffix := []byte(pred.RequiredSuffix)
	if len(suffix) == 0 {
		suffix = []byte{0}
	}
	charset := []byte(pred.AllowedNext)

	n := uint32(C.gominer_search_batch(
		(*C.uint8_t)(unsafe.Pointer(&prefix[0])), C.int(len(prefix)),
		(*C.char)(unsafe.Pointer(&suffix[0])), C.int(pred.RequiredNibbles),
		(*C.char)(unsafe.Pointer(&charset[0])), C.int(len(charset)),
		C.int(lanesTotal), C.int(itersPerLane), C.uint64_t(batchOffset)))
	return n, n != nonceNotFound
}
