// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/framegraph"
	"github.com/gogpu/framegraph/vulkan/vk"
)

// fakeFactory hands out numbered backings without a device.
type fakeFactory struct {
	imagesCreated    int
	buffersCreated   int
	imagesDestroyed  int
	buffersDestroyed int
}

func (f *fakeFactory) createImage(desc framegraph.TextureDescriptor) (*imageResource, error) {
	f.imagesCreated++
	return &imageResource{
		desc:  desc.Normalized(),
		image: vk.Image(f.imagesCreated),
	}, nil
}

func (f *fakeFactory) createBuffer(desc framegraph.BufferDescriptor) (*bufferResource, error) {
	f.buffersCreated++
	return &bufferResource{
		desc:   desc,
		buffer: vk.Buffer(f.buffersCreated),
	}, nil
}

func (f *fakeFactory) destroyImage(res *imageResource)   { f.imagesDestroyed++ }
func (f *fakeFactory) destroyBuffer(res *bufferResource) { f.buffersDestroyed++ }

func testImageDesc() framegraph.TextureDescriptor {
	return framegraph.TextureDescriptor{
		Width:  1024,
		Height: 1024,
		Format: gputypes.TextureFormatRGBA8Unorm,
		Usage:  gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageTextureBinding,
	}
}

// TestPoolReuseAfterInflight tests the round-trip law: collect, deposit,
// cycle through a full ring rotation, then collect an equivalent
// descriptor and receive the same Vulkan image.
func TestPoolReuseAfterInflight(t *testing.T) {
	const inflight = 2
	factory := &fakeFactory{}
	pool := newResourcePool(inflight, factory)

	res, err := pool.collectImage(testImageDesc())
	if err != nil {
		t.Fatalf("collectImage: %v", err)
	}
	handle := res.image
	pool.depositImage(res)

	for i := 0; i < inflight+1; i++ {
		pool.cycleFrames()
	}

	again, err := pool.collectImage(testImageDesc())
	if err != nil {
		t.Fatalf("collectImage: %v", err)
	}
	if again.image != handle {
		t.Errorf("collectImage returned image %v, want pooled %v", again.image, handle)
	}
	if factory.imagesCreated != 1 {
		t.Errorf("imagesCreated = %d, want 1 (reuse expected)", factory.imagesCreated)
	}
}

// TestPoolImageExactMatch tests that images only match on identical
// descriptors.
func TestPoolImageExactMatch(t *testing.T) {
	factory := &fakeFactory{}
	pool := newResourcePool(1, factory)

	res, _ := pool.collectImage(testImageDesc())
	pool.depositImage(res)
	pool.cycleFrames()

	other := testImageDesc()
	other.Width = 512
	fresh, _ := pool.collectImage(other)
	if fresh.image == res.image {
		t.Errorf("mismatched descriptor reused pooled image")
	}
	if factory.imagesCreated != 2 {
		t.Errorf("imagesCreated = %d, want 2", factory.imagesCreated)
	}
}

// TestPoolBufferBestFit tests that buffer collection picks the smallest
// fitting buffer.
func TestPoolBufferBestFit(t *testing.T) {
	factory := &fakeFactory{}
	pool := newResourcePool(1, factory)

	small, _ := pool.collectBuffer(framegraph.BufferDescriptor{Size: 256, Usage: gputypes.BufferUsageStorage})
	large, _ := pool.collectBuffer(framegraph.BufferDescriptor{Size: 4096, Usage: gputypes.BufferUsageStorage})
	pool.depositBuffer(large)
	pool.depositBuffer(small)
	pool.cycleFrames()

	got, _ := pool.collectBuffer(framegraph.BufferDescriptor{Size: 200, Usage: gputypes.BufferUsageStorage})
	if got.buffer != small.buffer {
		t.Errorf("best-fit returned buffer %v, want smallest fitting %v", got.buffer, small.buffer)
	}
}

// TestPoolBufferUsageSuperset tests that a pooled buffer must carry at
// least the requested usage bits.
func TestPoolBufferUsageSuperset(t *testing.T) {
	factory := &fakeFactory{}
	pool := newResourcePool(1, factory)

	res, _ := pool.collectBuffer(framegraph.BufferDescriptor{Size: 1024, Usage: gputypes.BufferUsageStorage})
	pool.depositBuffer(res)
	pool.cycleFrames()

	got, _ := pool.collectBuffer(framegraph.BufferDescriptor{
		Size:  512,
		Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageIndirect,
	})
	if got.buffer == res.buffer {
		t.Errorf("buffer missing usage bits was reused")
	}
}

// TestPoolEviction tests that entries unused for more than two
// rotations of their slot are evicted.
func TestPoolEviction(t *testing.T) {
	factory := &fakeFactory{}
	pool := newResourcePool(1, factory)

	res, _ := pool.collectImage(testImageDesc())
	pool.depositImage(res)
	pool.cycleFrames() // deposit lands in slot

	// Each further cycle ages the entry; after framesUnused exceeds 2
	// the entry dies.
	for i := 0; i < maxFramesUnused+1; i++ {
		pool.cycleFrames()
	}
	if factory.imagesDestroyed != 1 {
		t.Errorf("imagesDestroyed = %d, want 1 after staleness eviction", factory.imagesDestroyed)
	}

	// A fresh request must create anew.
	_, _ = pool.collectImage(testImageDesc())
	if factory.imagesCreated != 2 {
		t.Errorf("imagesCreated = %d, want 2 after eviction", factory.imagesCreated)
	}
}

// TestPoolCollectResetsAge tests that collecting an entry resets its
// staleness counter.
func TestPoolCollectResetsAge(t *testing.T) {
	factory := &fakeFactory{}
	pool := newResourcePool(1, factory)

	res, _ := pool.collectImage(testImageDesc())
	pool.depositImage(res)
	pool.cycleFrames()
	pool.cycleFrames() // framesUnused = 1

	got, _ := pool.collectImage(testImageDesc())
	if got.framesUnused != 0 {
		t.Errorf("framesUnused = %d after collect, want 0", got.framesUnused)
	}
}
