package zenjson

import (
	"sync"
)

var (
	registry   = make(map[string]*Processor)
	registryMu sync.RWMutex
)

// Use returns a cached default-handler processor for codec or builds one.
// Processors are cached by codec content type.
func Use(codec Codec) (*Processor, error) {
	contentType := codec.ContentType()

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[contentType]; ok {
		registryMu.RUnlock()
		return cached, nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[contentType]; ok {
		return cached, nil
	}

	processor, err := NewProcessor(codec)
	if err != nil {
		return nil, err
	}

	registry[contentType] = processor
	return processor, nil
}

// Reset clears the processor registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]*Processor)
}
