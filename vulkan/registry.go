// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"sync"

	"github.com/gogpu/framegraph"
	"github.com/gogpu/framegraph/vulkan/memory"
	"github.com/gogpu/framegraph/vulkan/vk"
)

// imageResource is the backing of a texture handle: the Vulkan image,
// its allocation, and the layout state carried across frames.
type imageResource struct {
	handle framegraph.ResourceHandle
	desc   framegraph.TextureDescriptor

	image vk.Image
	view  vk.ImageView
	alloc *memory.Allocation

	// currentLayout is the image's layout at frame boundaries.
	// Compilation builds a per-command layout map on top of it and
	// writes the final layout back after submission.
	currentLayout vk.ImageLayout

	// framesUnused counts pool rotations since the image was last
	// collected. Entries with framesUnused > 2 are evicted.
	framesUnused int

	// Swapchain backing, set only for window textures.
	swapchain  Swapchain
	swapIndex  uint32
	acquireSem vk.Semaphore
	presentSem vk.Semaphore
}

// isSwapchain reports whether the image belongs to a swapchain.
func (r *imageResource) isSwapchain() bool { return r.swapchain != nil }

// bufferResource is the backing of a buffer handle.
type bufferResource struct {
	handle framegraph.ResourceHandle
	desc   framegraph.BufferDescriptor

	buffer vk.Buffer
	alloc  *memory.Allocation

	framesUnused int
}

// samplerResource is the backing of a sampler handle.
type samplerResource struct {
	handle  framegraph.ResourceHandle
	desc    framegraph.SamplerDescriptor
	sampler vk.Sampler
}

// argumentEntry is one binding recorded into an argument buffer.
type argumentEntry struct {
	kind    framegraph.ResourceKind
	buffer  framegraph.ResourceHandle
	texture framegraph.ResourceHandle
	sampler framegraph.ResourceHandle
	offset uint64
	size   uint64
	bytes  []byte
}

// argumentBuffer is the backing of an argument-buffer handle: recorded
// bindings plus the descriptor set rebuilt for each frame that binds it.
type argumentBuffer struct {
	handle  framegraph.ResourceHandle
	entries map[uint32]argumentEntry

	layout vk.DescriptorSetLayout
	set    vk.DescriptorSet
	dirty  bool
}

// resourceFactory creates and destroys backing resources. The backend
// implements it against the device; tests substitute a fake.
type resourceFactory interface {
	createImage(desc framegraph.TextureDescriptor) (*imageResource, error)
	createBuffer(desc framegraph.BufferDescriptor) (*bufferResource, error)
	destroyImage(res *imageResource)
	destroyBuffer(res *bufferResource)
}

// persistentRegistry maps handles of persistent resources to their
// backings. Guarded by a reader-writer lock: readers don't block
// readers, materialise/dispose serialize.
type persistentRegistry struct {
	mu sync.RWMutex

	images   map[framegraph.ResourceHandle]*imageResource
	buffers  map[framegraph.ResourceHandle]*bufferResource
	samplers map[framegraph.ResourceHandle]*samplerResource
	argbufs  map[framegraph.ResourceHandle]*argumentBuffer

	factory resourceFactory
}

func newPersistentRegistry(factory resourceFactory) *persistentRegistry {
	return &persistentRegistry{
		images:   make(map[framegraph.ResourceHandle]*imageResource),
		buffers:  make(map[framegraph.ResourceHandle]*bufferResource),
		samplers: make(map[framegraph.ResourceHandle]*samplerResource),
		argbufs:  make(map[framegraph.ResourceHandle]*argumentBuffer),
		factory:  factory,
	}
}

// allocateImage materializes a persistent texture. It reports false on
// creation failure (out of memory); the caller decides how to degrade.
func (r *persistentRegistry) allocateImage(h framegraph.ResourceHandle, desc framegraph.TextureDescriptor) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.images[h]; ok {
		return true
	}
	res, err := r.factory.createImage(desc.Normalized())
	if err != nil {
		return false
	}
	res.handle = h
	r.images[h] = res
	return true
}

// allocateBuffer materializes a persistent buffer.
func (r *persistentRegistry) allocateBuffer(h framegraph.ResourceHandle, desc framegraph.BufferDescriptor) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.buffers[h]; ok {
		return true
	}
	res, err := r.factory.createBuffer(desc)
	if err != nil {
		return false
	}
	res.handle = h
	r.buffers[h] = res
	return true
}

// putImage registers an externally created image (swapchain bindings).
func (r *persistentRegistry) putImage(h framegraph.ResourceHandle, res *imageResource) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res.handle = h
	r.images[h] = res
}

// putArgumentBuffer registers an argument buffer backing.
func (r *persistentRegistry) putArgumentBuffer(h framegraph.ResourceHandle, ab *argumentBuffer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ab.handle = h
	r.argbufs[h] = ab
}

// putSampler registers a sampler backing.
func (r *persistentRegistry) putSampler(h framegraph.ResourceHandle, s *samplerResource) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.handle = h
	r.samplers[h] = s
}

// lookupImage returns the backing image, if registered.
func (r *persistentRegistry) lookupImage(h framegraph.ResourceHandle) (*imageResource, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.images[h]
	return res, ok
}

// lookupBuffer returns the backing buffer, if registered.
func (r *persistentRegistry) lookupBuffer(h framegraph.ResourceHandle) (*bufferResource, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.buffers[h]
	return res, ok
}

// lookupSampler returns the backing sampler, if registered.
func (r *persistentRegistry) lookupSampler(h framegraph.ResourceHandle) (*samplerResource, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.samplers[h]
	return res, ok
}

// lookupArgumentBuffer returns the argument buffer, if registered.
func (r *persistentRegistry) lookupArgumentBuffer(h framegraph.ResourceHandle) (*argumentBuffer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ab, ok := r.argbufs[h]
	return ab, ok
}

// disposeImage removes and destroys an image backing.
func (r *persistentRegistry) disposeImage(h framegraph.ResourceHandle) {
	r.mu.Lock()
	res, ok := r.images[h]
	delete(r.images, h)
	r.mu.Unlock()
	if ok && !res.isSwapchain() {
		r.factory.destroyImage(res)
	}
}

// disposeBuffer removes and destroys a buffer backing.
func (r *persistentRegistry) disposeBuffer(h framegraph.ResourceHandle) {
	r.mu.Lock()
	res, ok := r.buffers[h]
	delete(r.buffers, h)
	r.mu.Unlock()
	if ok {
		r.factory.destroyBuffer(res)
	}
}

// disposeSampler removes a sampler backing; destruction happens in the
// backend which owns the vk handle.
func (r *persistentRegistry) disposeSampler(h framegraph.ResourceHandle) (*samplerResource, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.samplers[h]
	delete(r.samplers, h)
	return res, ok
}

// disposeArgumentBuffer removes an argument buffer.
func (r *persistentRegistry) disposeArgumentBuffer(h framegraph.ResourceHandle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.argbufs, h)
}

// empty reports whether nothing is registered. Used by tests to verify
// materialise/dispose round trips.
func (r *persistentRegistry) empty() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.images) == 0 && len(r.buffers) == 0 &&
		len(r.samplers) == 0 && len(r.argbufs) == 0
}

// transientRegistry maps handles of per-frame resources to pooled
// backings for the duration of one frame.
type transientRegistry struct {
	frameIndex int
	images     map[framegraph.ResourceHandle]*imageResource
	buffers    map[framegraph.ResourceHandle]*bufferResource

	pool *resourcePool
}

func newTransientRegistry(pool *resourcePool) *transientRegistry {
	return &transientRegistry{
		images:  make(map[framegraph.ResourceHandle]*imageResource),
		buffers: make(map[framegraph.ResourceHandle]*bufferResource),
		pool:    pool,
	}
}

// begin starts a frame slot.
func (r *transientRegistry) begin(frameIndex int) {
	r.frameIndex = frameIndex
}

// allocateImage collects a pooled image for the handle.
func (r *transientRegistry) allocateImage(h framegraph.ResourceHandle, desc framegraph.TextureDescriptor) (*imageResource, error) {
	if res, ok := r.images[h]; ok {
		return res, nil
	}
	res, err := r.pool.collectImage(desc.Normalized())
	if err != nil {
		return nil, err
	}
	res.handle = h
	r.images[h] = res
	return res, nil
}

// allocateBuffer collects a pooled buffer for the handle.
func (r *transientRegistry) allocateBuffer(h framegraph.ResourceHandle, desc framegraph.BufferDescriptor) (*bufferResource, error) {
	if res, ok := r.buffers[h]; ok {
		return res, nil
	}
	res, err := r.pool.collectBuffer(desc)
	if err != nil {
		return nil, err
	}
	res.handle = h
	r.buffers[h] = res
	return res, nil
}

// lookupImage returns the frame's backing for the handle. A miss is not
// an error during compilation — the affected encoder is skipped.
func (r *transientRegistry) lookupImage(h framegraph.ResourceHandle) (*imageResource, bool) {
	res, ok := r.images[h]
	return res, ok
}

// lookupBuffer returns the frame's backing for the handle.
func (r *transientRegistry) lookupBuffer(h framegraph.ResourceHandle) (*bufferResource, bool) {
	res, ok := r.buffers[h]
	return res, ok
}

// end returns all transient backings to the pool and clears the maps.
func (r *transientRegistry) end() {
	for _, res := range r.images {
		if !res.isSwapchain() {
			r.pool.depositImage(res)
		}
	}
	for _, res := range r.buffers {
		r.pool.depositBuffer(res)
	}
	clear(r.images)
	clear(r.buffers)
}
