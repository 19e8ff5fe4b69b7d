//go:build !cuda

package main

import "errors"

const gpuEngineAvailable = false

func newCUDAEngine(device int) (searchEngine, error) {
	return nil, errors.New("built without cuda support (rebuild with -tags cuda)")
}
