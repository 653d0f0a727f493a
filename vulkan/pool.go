// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"sync"

	"github.com/gogpu/framegraph"
)

// poolSlot holds the reusable resources of one frame slot.
type poolSlot struct {
	images  []*imageResource
	buffers []*bufferResource
}

// resourcePool recycles transient images and buffers across in-flight
// frames. Its state is a ring of inflightFrames slots, an index into
// the ring, and two scratch sequences of resources used this frame.
//
// A resource deposited in frame N becomes collectable again once the
// ring rotates back to its slot, which the submission engine gates on
// completion-fence retirement.
type resourcePool struct {
	mu sync.Mutex

	slots   []poolSlot
	current int

	usedImages  []*imageResource
	usedBuffers []*bufferResource

	factory resourceFactory
}

// maxFramesUnused is the eviction threshold: entries unused for more
// rotations than this are destroyed during cycleFrames.
const maxFramesUnused = 2

func newResourcePool(inflightFrames int, factory resourceFactory) *resourcePool {
	if inflightFrames < 1 {
		inflightFrames = 1
	}
	return &resourcePool{
		slots:   make([]poolSlot, inflightFrames),
		factory: factory,
	}
}

// collectImage returns an image whose descriptor matches exactly,
// removing it from the current slot. On miss it creates a new image via
// the device allocator.
//
// Image matching is deliberately exact (extent, mips, array length,
// samples, format, storage mode, usage): image aliasing is rare and
// usually wrong.
func (p *resourcePool) collectImage(desc framegraph.TextureDescriptor) (*imageResource, error) {
	p.mu.Lock()
	slot := &p.slots[p.current]
	for i, res := range slot.images {
		if imageDescriptorsMatch(res.desc, desc) {
			slot.images = append(slot.images[:i], slot.images[i+1:]...)
			res.framesUnused = 0
			p.mu.Unlock()
			return res, nil
		}
	}
	p.mu.Unlock()

	return p.factory.createImage(desc)
}

// collectBuffer returns the smallest pooled buffer that fits the
// descriptor (usage superset, same storage mode, size >= requested).
// Best-fit by size minimizes waste. On miss it creates a new buffer.
func (p *resourcePool) collectBuffer(desc framegraph.BufferDescriptor) (*bufferResource, error) {
	p.mu.Lock()
	slot := &p.slots[p.current]
	best := -1
	for i, res := range slot.buffers {
		if !bufferDescriptorFits(res.desc, desc) {
			continue
		}
		if best < 0 || res.desc.Size < slot.buffers[best].desc.Size {
			best = i
		}
	}
	if best >= 0 {
		res := slot.buffers[best]
		slot.buffers = append(slot.buffers[:best], slot.buffers[best+1:]...)
		res.framesUnused = 0
		p.mu.Unlock()
		return res, nil
	}
	p.mu.Unlock()

	return p.factory.createBuffer(desc)
}

// depositImage records an image as used this frame.
func (p *resourcePool) depositImage(res *imageResource) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.usedImages = append(p.usedImages, res)
}

// depositBuffer records a buffer as used this frame.
func (p *resourcePool) depositBuffer(res *bufferResource) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.usedBuffers = append(p.usedBuffers, res)
}

// cycleFrames ages the current slot, evicts stale entries, deposits the
// used-this-frame sequences, and advances the ring.
func (p *resourcePool) cycleFrames() {
	p.mu.Lock()
	defer p.mu.Unlock()

	slot := &p.slots[p.current]

	n := 0
	for _, res := range slot.images {
		res.framesUnused++
		if res.framesUnused > maxFramesUnused {
			p.factory.destroyImage(res)
			continue
		}
		slot.images[n] = res
		n++
	}
	slot.images = slot.images[:n]

	n = 0
	for _, res := range slot.buffers {
		res.framesUnused++
		if res.framesUnused > maxFramesUnused {
			p.factory.destroyBuffer(res)
			continue
		}
		slot.buffers[n] = res
		n++
	}
	slot.buffers = slot.buffers[:n]

	// Deposits land in the slot the ring advances to, so a resource
	// used in frame N becomes collectable when the ring returns to
	// that slot, inflight_frames+1 cycles later. GPU safety comes from
	// the submission engine gating frame starts on fence retirement,
	// not from the ring alone.
	p.current = (p.current + 1) % len(p.slots)
	next := &p.slots[p.current]
	next.images = append(next.images, p.usedImages...)
	next.buffers = append(next.buffers, p.usedBuffers...)
	p.usedImages = p.usedImages[:0]
	p.usedBuffers = p.usedBuffers[:0]
}

// drain destroys every pooled resource. Called at backend teardown
// after the device is idle.
func (p *resourcePool) drain() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.slots {
		for _, res := range p.slots[i].images {
			p.factory.destroyImage(res)
		}
		for _, res := range p.slots[i].buffers {
			p.factory.destroyBuffer(res)
		}
		p.slots[i] = poolSlot{}
	}
	for _, res := range p.usedImages {
		p.factory.destroyImage(res)
	}
	for _, res := range p.usedBuffers {
		p.factory.destroyBuffer(res)
	}
	p.usedImages = nil
	p.usedBuffers = nil
}

// imageDescriptorsMatch is the exact-fit predicate for pooled images.
func imageDescriptorsMatch(have, want framegraph.TextureDescriptor) bool {
	have = have.Normalized()
	want = want.Normalized()
	return have.Width == want.Width &&
		have.Height == want.Height &&
		have.Depth == want.Depth &&
		have.MipLevels == want.MipLevels &&
		have.ArrayLength == want.ArrayLength &&
		have.SampleCount == want.SampleCount &&
		have.Format == want.Format &&
		have.Storage == want.Storage &&
		have.Usage == want.Usage
}

// bufferDescriptorFits is the superset-fit predicate for pooled
// buffers: oversizing a buffer is safe.
func bufferDescriptorFits(have, want framegraph.BufferDescriptor) bool {
	return have.Usage&want.Usage == want.Usage &&
		have.Storage == want.Storage &&
		have.Size >= want.Size
}
