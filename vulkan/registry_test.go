// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/framegraph"
)

// TestPersistentRoundTrip tests that materialise followed by dispose
// leaves the registry empty.
func TestPersistentRoundTrip(t *testing.T) {
	factory := &fakeFactory{}
	reg := newPersistentRegistry(factory)

	h := framegraph.MakeHandle(framegraph.KindTexture, framegraph.FlagPersistent, 1)
	if !reg.allocateImage(h, testImageDesc()) {
		t.Fatalf("allocateImage failed")
	}
	if _, ok := reg.lookupImage(h); !ok {
		t.Fatalf("lookupImage missed after allocate")
	}
	reg.disposeImage(h)

	if !reg.empty() {
		t.Errorf("registry not empty after dispose")
	}
	if factory.imagesDestroyed != 1 {
		t.Errorf("imagesDestroyed = %d, want 1", factory.imagesDestroyed)
	}
}

// TestPersistentAllocateIdempotent tests that re-materialising an
// existing handle does not create a second backing.
func TestPersistentAllocateIdempotent(t *testing.T) {
	factory := &fakeFactory{}
	reg := newPersistentRegistry(factory)

	h := framegraph.MakeHandle(framegraph.KindBuffer, framegraph.FlagPersistent, 2)
	desc := framegraph.BufferDescriptor{Size: 64, Usage: gputypes.BufferUsageUniform}
	if !reg.allocateBuffer(h, desc) || !reg.allocateBuffer(h, desc) {
		t.Fatalf("allocateBuffer failed")
	}
	if factory.buffersCreated != 1 {
		t.Errorf("buffersCreated = %d, want 1", factory.buffersCreated)
	}
}

// TestTransientLifecycle tests that end() returns transient backings to
// the pool and clears the frame maps.
func TestTransientLifecycle(t *testing.T) {
	factory := &fakeFactory{}
	pool := newResourcePool(2, factory)
	reg := newTransientRegistry(pool)

	reg.begin(0)
	h := framegraph.MakeHandle(framegraph.KindTexture, 0, 3)
	res, err := reg.allocateImage(h, testImageDesc())
	if err != nil {
		t.Fatalf("allocateImage: %v", err)
	}

	// Same handle resolves to the same backing within the frame.
	same, err := reg.allocateImage(h, testImageDesc())
	if err != nil || same != res {
		t.Errorf("allocateImage returned a second backing for the same handle")
	}

	reg.end()
	if _, ok := reg.lookupImage(h); ok {
		t.Errorf("lookupImage hit after end()")
	}

	// The deposit comes back around after a full rotation.
	for i := 0; i < 3; i++ {
		pool.cycleFrames()
	}
	reg.begin(1)
	again, err := reg.allocateImage(h, testImageDesc())
	if err != nil {
		t.Fatalf("allocateImage: %v", err)
	}
	if again.image != res.image {
		t.Errorf("pool did not return the deposited image")
	}
}

// TestTransientLookupMissIsNotFatal tests the compilation contract: a
// missing transient entry is a miss, not an error.
func TestTransientLookupMissIsNotFatal(t *testing.T) {
	pool := newResourcePool(1, &fakeFactory{})
	reg := newTransientRegistry(pool)

	if _, ok := reg.lookupImage(framegraph.MakeHandle(framegraph.KindTexture, 0, 9)); ok {
		t.Errorf("lookupImage hit for unregistered handle")
	}
}
