// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/gogpu/framegraph"
	"github.com/gogpu/framegraph/internal/worker"
	"github.com/gogpu/framegraph/shaderlib"
	"github.com/gogpu/framegraph/vulkan/memory"
	"github.com/gogpu/framegraph/vulkan/vk"
)

// QueueCapability selects a queue by what the caller needs from it.
type QueueCapability int

// Queue capabilities.
const (
	QueueRender QueueCapability = iota
	QueueCompute
	QueueBlit
	QueuePresent
	queueCapabilityCount
)

// Swapchain is the windowing collaborator's contract with this backend.
// RegisterWindowTexture asserts for it on the frontend-provided
// SwapchainContext.
type Swapchain interface {
	framegraph.SwapchainContext

	// Handle returns the VkSwapchainKHR presented by the submission
	// engine.
	Handle() vk.SwapchainKHR

	// Acquire obtains the next image, signaling the given binary
	// semaphore when it is ready. An error is a soft failure: the
	// frame skips encoders targeting this swapchain.
	Acquire(signal vk.Semaphore) (image vk.Image, view vk.ImageView, imageIndex uint32, err error)
}

// Config parameterizes backend construction.
type Config struct {
	// ApplicationName is reported to the Vulkan driver.
	ApplicationName string

	// InflightFrames is the depth of the frame pipeline (and the
	// transient pool ring). Zero means 2.
	InflightFrames int

	// Workers bounds the pool used to fan out pipeline creation.
	// Zero means GOMAXPROCS.
	Workers int

	// ShaderLibrary supplies shader functions. When nil,
	// ShaderLibraryPath is opened via the shaderlib package.
	ShaderLibrary     framegraph.ShaderLibrary
	ShaderLibraryPath string
}

// Backend implements framegraph.Backend for Vulkan.
var _ framegraph.Backend = (*Backend)(nil)

// Backend is the Vulkan implementation of framegraph.Backend.
type Backend struct {
	cfg Config

	instance vk.Instance
	physical vk.PhysicalDevice
	device   vk.Device
	cmds     *vk.Commands

	allocator *memory.Allocator

	queues     []*queueState
	capability [queueCapabilityCount]int

	engine  *submitEngine
	caches  *stateCaches
	descs   *descriptorAllocator
	workers *worker.Pool

	persistent *persistentRegistry
	transient  *transientRegistry
	pool       *resourcePool

	// frameMu serializes ExecuteFrameGraph: a single frame thread
	// drives compilation and submission.
	frameMu    sync.Mutex
	frameIndex int

	// slots bounds the number of frames in flight; a slot is released
	// by the completion task.
	slots chan struct{}

	inlineUniformBlock bool
}

const vulkanAPIVersion = 1<<22 | 2<<12 // 1.2

// New creates the backend: instance, device, queues, allocator, and
// caches. Configuration failures (no suitable device, missing required
// extension) abort construction.
func New(cfg Config) (*Backend, error) {
	if cfg.InflightFrames <= 0 {
		cfg.InflightFrames = 2
	}
	if cfg.ShaderLibrary == nil {
		if cfg.ShaderLibraryPath == "" {
			return nil, fmt.Errorf("vulkan: config needs a shader library")
		}
		lib, err := shaderlib.Open(cfg.ShaderLibraryPath)
		if err != nil {
			return nil, err
		}
		cfg.ShaderLibrary = lib
	}

	if err := vk.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", framegraph.ErrNoSuitableDevice, err)
	}

	b := &Backend{
		cfg:   cfg,
		cmds:  vk.NewCommands(),
		slots: make(chan struct{}, cfg.InflightFrames),
	}
	for i := 0; i < cfg.InflightFrames; i++ {
		b.slots <- struct{}{}
	}

	if err := b.createInstance(); err != nil {
		return nil, err
	}
	if err := b.selectPhysicalDevice(); err != nil {
		b.cmds.DestroyInstance(b.instance, nil)
		return nil, err
	}
	if err := b.createDevice(); err != nil {
		b.cmds.DestroyInstance(b.instance, nil)
		return nil, err
	}

	var memProps vk.PhysicalDeviceMemoryProperties
	b.cmds.GetPhysicalDeviceMemoryProperties(b.physical, &memProps)
	b.allocator = memory.New(b.device, b.cmds, memProps)

	caches, err := newStateCaches(b.device, b.cmds, cfg.ShaderLibrary)
	if err != nil {
		b.teardownDevice()
		return nil, err
	}
	b.caches = caches

	descs, err := newDescriptorAllocator(b.device, b.cmds, cfg.InflightFrames)
	if err != nil {
		b.caches.destroy()
		b.teardownDevice()
		return nil, err
	}
	b.descs = descs

	b.engine = newSubmitEngine(b.device, b.cmds, b.queues)
	b.workers = worker.New(cfg.Workers)
	b.persistent = newPersistentRegistry(b)
	b.pool = newResourcePool(cfg.InflightFrames, b)
	b.transient = newTransientRegistry(b.pool)

	framegraph.Logger().Info("vulkan: backend ready",
		"queues", len(b.queues), "inflight", cfg.InflightFrames)
	return b, nil
}

func (b *Backend) createInstance() error {
	if err := b.cmds.LoadGlobal(); err != nil {
		return fmt.Errorf("%w: %v", framegraph.ErrNoSuitableDevice, err)
	}

	appName := cString(b.cfg.ApplicationName)
	engineName := cString("framegraph")
	appInfo := vk.ApplicationInfo{
		SType:            vk.StructureTypeApplicationInfo,
		PApplicationName: &appName[0],
		PEngineName:      &engineName[0],
		APIVersion:       vulkanAPIVersion,
	}
	createInfo := vk.InstanceCreateInfo{
		SType:            vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo: &appInfo,
	}

	if result := b.cmds.CreateInstance(&createInfo, nil, &b.instance); result != vk.Success {
		return fmt.Errorf("%w: %v", framegraph.ErrNoSuitableDevice, newVkError("vkCreateInstance", result))
	}
	vk.SetDeviceProcAddr(b.instance)
	if err := b.cmds.LoadInstance(b.instance); err != nil {
		return fmt.Errorf("%w: %v", framegraph.ErrNoSuitableDevice, err)
	}
	return nil
}

// selectPhysicalDevice prefers discrete GPUs, then integrated, then
// whatever enumerates first.
func (b *Backend) selectPhysicalDevice() error {
	var count uint32
	if result := b.cmds.EnumeratePhysicalDevices(b.instance, &count, nil); result != vk.Success || count == 0 {
		return framegraph.ErrNoSuitableDevice
	}
	devices := make([]vk.PhysicalDevice, count)
	if result := b.cmds.EnumeratePhysicalDevices(b.instance, &count, &devices[0]); result != vk.Success {
		return framegraph.ErrNoSuitableDevice
	}

	best := devices[0]
	bestScore := -1
	for _, dev := range devices {
		var props vk.PhysicalDeviceProperties
		b.cmds.GetPhysicalDeviceProperties(dev, &props)
		score := 0
		switch props.DeviceType {
		case vk.PhysicalDeviceTypeDiscreteGPU:
			score = 2
		case vk.PhysicalDeviceTypeIntegratedGPU:
			score = 1
		}
		if score > bestScore {
			best, bestScore = dev, score
		}
	}
	b.physical = best

	var props vk.PhysicalDeviceProperties
	b.cmds.GetPhysicalDeviceProperties(b.physical, &props)
	framegraph.Logger().Info("vulkan: selected device",
		"name", cToString(props.DeviceName[:]), "type", uint32(props.DeviceType))
	return nil
}

// createDevice verifies required extensions, enables the queue family
// set (one queue on the graphics family, all queues on every
// non-graphics family), and creates the logical device.
func (b *Backend) createDevice() error {
	extensions, err := b.deviceExtensions()
	if err != nil {
		return err
	}
	if !extensions[vk.KHRSwapchainExtensionName] {
		return fmt.Errorf("%w: %s", framegraph.ErrExtensionMissing, vk.KHRSwapchainExtensionName)
	}
	enable := []string{vk.KHRSwapchainExtensionName}
	// Timeline semaphores are core in 1.2; the extension is listed only
	// on drivers that still advertise it.
	if extensions[vk.KHRTimelineSemaphoreExtensionName] {
		enable = append(enable, vk.KHRTimelineSemaphoreExtensionName)
	}
	if extensions[vk.EXTInlineUniformBlockExtensionName] {
		enable = append(enable, vk.EXTInlineUniformBlockExtensionName)
		b.inlineUniformBlock = true
	}

	var familyCount uint32
	b.cmds.GetPhysicalDeviceQueueFamilyProperties(b.physical, &familyCount, nil)
	if familyCount == 0 {
		return framegraph.ErrNoSuitableDevice
	}
	families := make([]vk.QueueFamilyProperties, familyCount)
	b.cmds.GetPhysicalDeviceQueueFamilyProperties(b.physical, &familyCount, &families[0])

	graphicsFamily := -1
	for i, f := range families {
		if f.QueueFlags&vk.QueueGraphicsBit != 0 {
			graphicsFamily = i
			break
		}
	}
	if graphicsFamily < 0 {
		return framegraph.ErrNoSuitableDevice
	}

	var plans []familyPlan
	maxQueues := uint32(1)
	for i, f := range families {
		count := uint32(1)
		if i != graphicsFamily {
			count = f.QueueCount
		}
		if count == 0 {
			continue
		}
		if count > maxQueues {
			maxQueues = count
		}
		plans = append(plans, familyPlan{index: uint32(i), count: count})
	}

	priorities := make([]float32, maxQueues)
	for i := range priorities {
		priorities[i] = 1
	}
	queueInfos := make([]vk.DeviceQueueCreateInfo, len(plans))
	for i, plan := range plans {
		queueInfos[i] = vk.DeviceQueueCreateInfo{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: plan.index,
			QueueCount:       plan.count,
			PQueuePriorities: &priorities[0],
		}
	}

	extNames, extPtrs := cStringArray(enable)
	timelineFeatures := vk.PhysicalDeviceTimelineSemaphoreFeatures{
		SType:             vk.StructureTypePhysicalDeviceTimelineSemaphoreFeatures,
		TimelineSemaphore: vk.True,
	}
	createInfo := vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		PNext:                   uintptrOf(&timelineFeatures),
		QueueCreateInfoCount:    uint32(len(queueInfos)),
		PQueueCreateInfos:       &queueInfos[0],
		EnabledExtensionCount:   uint32(len(extPtrs)),
		PpEnabledExtensionNames: &extPtrs[0],
	}

	if result := b.cmds.CreateDevice(b.physical, &createInfo, nil, &b.device); result != vk.Success {
		return fmt.Errorf("%w: %v", framegraph.ErrNoSuitableDevice, newVkError("vkCreateDevice", result))
	}
	_ = extNames // keep the backing bytes alive through the call
	if err := b.cmds.LoadDevice(b.device); err != nil {
		return fmt.Errorf("%w: %v", framegraph.ErrNoSuitableDevice, err)
	}
	if !b.cmds.HasTimelineSemaphore() {
		return fmt.Errorf("%w: %s", framegraph.ErrExtensionMissing, vk.KHRTimelineSemaphoreExtensionName)
	}

	return b.createQueues(plans, families)
}

// familyPlan records how many queues a family contributes.
type familyPlan struct {
	index uint32
	count uint32
}

// createQueues builds per-queue state (timeline semaphore, TRANSIENT
// command pool) and the capability map.
func (b *Backend) createQueues(plans []familyPlan, families []vk.QueueFamilyProperties) error {
	for _, plan := range plans {
		for qi := uint32(0); qi < plan.count; qi++ {
			var queue vk.Queue
			b.cmds.GetDeviceQueue(b.device, plan.index, qi, &queue)

			timelineInfo := vk.SemaphoreTypeCreateInfo{
				SType:         vk.StructureTypeSemaphoreTypeCreateInfo,
				SemaphoreType: vk.SemaphoreTypeTimeline,
			}
			semInfo := vk.SemaphoreCreateInfo{
				SType: vk.StructureTypeSemaphoreCreateInfo,
				PNext: uintptrOf(&timelineInfo),
			}
			var timeline vk.Semaphore
			if result := b.cmds.CreateSemaphore(b.device, &semInfo, nil, &timeline); result != vk.Success {
				return newVkError("vkCreateSemaphore", result)
			}

			poolInfo := vk.CommandPoolCreateInfo{
				SType:            vk.StructureTypeCommandPoolCreateInfo,
				Flags:            vk.CommandPoolCreateTransientBit | vk.CommandPoolCreateResetCommandBufferBit,
				QueueFamilyIndex: plan.index,
			}
			var pool vk.CommandPool
			if result := b.cmds.CreateCommandPool(b.device, &poolInfo, nil, &pool); result != vk.Success {
				b.cmds.DestroySemaphore(b.device, timeline, nil)
				return newVkError("vkCreateCommandPool", result)
			}

			b.queues = append(b.queues, &queueState{
				index:    len(b.queues),
				family:   plan.index,
				queue:    queue,
				timeline: timeline,
				pool:     pool,
			})
		}
	}

	// Capability selection: render on the graphics family; compute
	// prefers a dedicated compute family; blit prefers a transfer-only
	// family; present defaults to render until a surface narrows it.
	pick := func(want, avoid vk.QueueFlags) int {
		for _, q := range b.queues {
			f := families[q.family].QueueFlags
			if f&want == want && f&avoid == 0 {
				return q.index
			}
		}
		for _, q := range b.queues {
			if families[q.family].QueueFlags&want == want {
				return q.index
			}
		}
		return 0
	}
	b.capability[QueueRender] = pick(vk.QueueGraphicsBit, 0)
	b.capability[QueueCompute] = pick(vk.QueueComputeBit, vk.QueueGraphicsBit)
	b.capability[QueueBlit] = pick(vk.QueueTransferBit, vk.QueueGraphicsBit|vk.QueueComputeBit)
	b.capability[QueuePresent] = b.capability[QueueRender]
	return nil
}

// deviceExtensions enumerates the physical device's extension set.
func (b *Backend) deviceExtensions() (map[string]bool, error) {
	var count uint32
	if result := b.cmds.EnumerateDeviceExtensionProperties(b.physical, &count, nil); result != vk.Success {
		return nil, newVkError("vkEnumerateDeviceExtensionProperties", result)
	}
	out := make(map[string]bool, count)
	if count == 0 {
		return out, nil
	}
	props := make([]vk.ExtensionProperties, count)
	if result := b.cmds.EnumerateDeviceExtensionProperties(b.physical, &count, &props[0]); result != vk.Success {
		return nil, newVkError("vkEnumerateDeviceExtensionProperties", result)
	}
	for _, p := range props {
		out[cToString(p.ExtensionName[:])] = true
	}
	return out, nil
}

// PresentSupported queries whether the capability-selected present
// queue's family can present to the surface, and rebinds the present
// capability to a family that can when it cannot.
func (b *Backend) PresentSupported(surface vk.SurfaceKHR) bool {
	supports := func(q *queueState) bool {
		var supported vk.Bool32
		result := b.cmds.GetPhysicalDeviceSurfaceSupportKHR(b.physical, q.family, surface, &supported)
		return result == vk.Success && supported == vk.True
	}
	if supports(b.queues[b.capability[QueuePresent]]) {
		return true
	}
	for _, q := range b.queues {
		if supports(q) {
			b.capability[QueuePresent] = q.index
			return true
		}
	}
	return false
}

// Queue returns the Vulkan queue selected for a capability.
func (b *Backend) Queue(c QueueCapability) vk.Queue {
	return b.queues[b.capability[c]].queue
}

// Destroy tears the backend down: pending submissions are awaited
// before any Vulkan object dies.
func (b *Backend) Destroy() {
	b.frameMu.Lock()
	defer b.frameMu.Unlock()

	b.engine.drainCompletions()
	_ = b.cmds.DeviceWaitIdle(b.device)

	b.workers.Close()
	b.pool.drain()
	b.descs.destroy()
	b.caches.destroy()
	b.teardownDevice()
	_ = vk.Close()
}

func (b *Backend) teardownDevice() {
	for _, q := range b.queues {
		if q.timeline != 0 {
			b.cmds.DestroySemaphore(b.device, q.timeline, nil)
		}
		if q.pool != 0 {
			b.cmds.DestroyCommandPool(b.device, q.pool, nil)
		}
	}
	b.queues = nil
	if b.device != 0 {
		b.cmds.DestroyDevice(b.device, nil)
		b.device = 0
	}
	if b.instance != 0 {
		b.cmds.DestroyInstance(b.instance, nil)
		b.instance = 0
	}
}

// --- framegraph.Backend inbound operations ---

// RegisterWindowTexture binds a texture handle to a swapchain.
func (b *Backend) RegisterWindowTexture(h framegraph.ResourceHandle, surface framegraph.SwapchainContext) error {
	if !h.WindowTexture() {
		return fmt.Errorf("vulkan: handle %s lacks the window flag", h)
	}
	sc, ok := surface.(Swapchain)
	if !ok {
		return fmt.Errorf("vulkan: surface context does not implement vulkan.Swapchain")
	}

	binInfo := vk.SemaphoreCreateInfo{SType: vk.StructureTypeSemaphoreCreateInfo}
	var acquire, present vk.Semaphore
	if result := b.cmds.CreateSemaphore(b.device, &binInfo, nil, &acquire); result != vk.Success {
		return newVkError("vkCreateSemaphore", result)
	}
	if result := b.cmds.CreateSemaphore(b.device, &binInfo, nil, &present); result != vk.Success {
		b.cmds.DestroySemaphore(b.device, acquire, nil)
		return newVkError("vkCreateSemaphore", result)
	}

	w, hgt := sc.Extent()
	b.persistent.putImage(h, &imageResource{
		desc: framegraph.TextureDescriptor{
			Width:  w,
			Height: hgt,
			Format: sc.Format(),
		},
		swapchain:  sc,
		acquireSem: acquire,
		presentSem: present,
	})
	return nil
}

// MaterialisePersistentTexture creates the backing image for a
// persistent texture handle.
func (b *Backend) MaterialisePersistentTexture(h framegraph.ResourceHandle, desc *framegraph.TextureDescriptor) bool {
	if desc == nil || !h.Persistent() {
		return false
	}
	return b.persistent.allocateImage(h, *desc)
}

// MaterialisePersistentBuffer creates the backing buffer for a
// persistent buffer handle.
func (b *Backend) MaterialisePersistentBuffer(h framegraph.ResourceHandle, desc *framegraph.BufferDescriptor) bool {
	if desc == nil || !h.Persistent() {
		return false
	}
	return b.persistent.allocateBuffer(h, *desc)
}

// MaterialiseSampler creates a sampler backing.
func (b *Backend) MaterialiseSampler(h framegraph.ResourceHandle, desc framegraph.SamplerDescriptor) bool {
	res, err := b.createSampler(desc)
	if err != nil {
		return false
	}
	b.persistent.putSampler(h, res)
	return true
}

// MaterialiseArgumentBuffer registers an argument-buffer handle.
func (b *Backend) MaterialiseArgumentBuffer(h framegraph.ResourceHandle) bool {
	b.persistent.putArgumentBuffer(h, &argumentBuffer{
		entries: make(map[uint32]argumentEntry),
	})
	return true
}

// BufferContents returns the mapped bytes of a host-visible buffer
// range. Managed-storage readback is not implemented.
func (b *Backend) BufferContents(h framegraph.ResourceHandle, r framegraph.Range) ([]byte, error) {
	res, ok := b.persistent.lookupBuffer(h)
	if !ok {
		return nil, fmt.Errorf("%w: %s", framegraph.ErrUnknownResource, h)
	}
	if res.alloc == nil || res.alloc.MappedPtr == 0 {
		return nil, fmt.Errorf("%w: bufferContents of unmapped storage", framegraph.ErrUnsupported)
	}
	if r.Offset+r.Size > res.desc.Size {
		return nil, fmt.Errorf("vulkan: range %d+%d exceeds buffer size %d", r.Offset, r.Size, res.desc.Size)
	}
	base := unsafe.Pointer(res.alloc.MappedPtr + uintptr(r.Offset))
	return unsafe.Slice((*byte)(base), r.Size), nil
}

// BufferDidModifyRange flushes a managed-storage range after host
// writes. No-op for coherent memory.
func (b *Backend) BufferDidModifyRange(h framegraph.ResourceHandle, r framegraph.Range) error {
	res, ok := b.persistent.lookupBuffer(h)
	if !ok {
		return fmt.Errorf("%w: %s", framegraph.ErrUnknownResource, h)
	}
	if r.Empty() {
		return nil
	}
	return b.allocator.Flush(res.alloc, r.Offset, r.Size)
}

// DisposeBuffer releases a persistent buffer.
func (b *Backend) DisposeBuffer(h framegraph.ResourceHandle) {
	b.persistent.disposeBuffer(h)
}

// DisposeTexture releases a persistent texture. Swapchain bindings keep
// their images (the swapchain owns them) but release the semaphores.
func (b *Backend) DisposeTexture(h framegraph.ResourceHandle) {
	if res, ok := b.persistent.lookupImage(h); ok && res.isSwapchain() {
		if res.acquireSem != 0 {
			b.cmds.DestroySemaphore(b.device, res.acquireSem, nil)
		}
		if res.presentSem != 0 {
			b.cmds.DestroySemaphore(b.device, res.presentSem, nil)
		}
	}
	b.persistent.disposeImage(h)
}

// DisposeArgumentBuffer releases an argument buffer.
func (b *Backend) DisposeArgumentBuffer(h framegraph.ResourceHandle) {
	b.persistent.disposeArgumentBuffer(h)
}

// DisposeSampler releases a sampler.
func (b *Backend) DisposeSampler(h framegraph.ResourceHandle) {
	if res, ok := b.persistent.disposeSampler(h); ok && res.sampler != 0 {
		b.cmds.DestroySampler(b.device, res.sampler, nil)
	}
}

// RenderPipelineReflection returns the shader binding layout of a render
// descriptor, merged from its vertex and fragment functions. No pipeline
// is created or cached, and the render target is not consulted.
func (b *Backend) RenderPipelineReflection(desc *framegraph.RenderPipelineDescriptor, target *framegraph.RenderTarget) (*framegraph.PipelineReflection, error) {
	fn, err := b.cfg.ShaderLibrary.Function(desc.VertexFunction)
	if err != nil {
		return nil, err
	}
	reflection := fn.Reflection
	if desc.FragmentFunction != "" {
		frag, err := b.cfg.ShaderLibrary.Function(desc.FragmentFunction)
		if err != nil {
			return nil, err
		}
		reflection = mergeReflections(reflection, frag.Reflection)
	}
	_ = target
	return reflection, nil
}

// ComputePipelineReflection returns the binding layout of a compute
// pipeline, creating and caching the pipeline as a side effect.
func (b *Backend) ComputePipelineReflection(desc *framegraph.ComputePipelineDescriptor) (*framegraph.PipelineReflection, error) {
	p, err := b.caches.getComputePipeline(desc)
	if err != nil {
		return nil, err
	}
	return p.reflection, nil
}

// --- helpers ---

func cToString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

// cStringArray builds null-terminated strings plus the pointer array
// Vulkan consumes. The byte slices must stay referenced for the
// duration of the call.
func cStringArray(strs []string) ([][]byte, []*byte) {
	bytes := make([][]byte, len(strs))
	ptrs := make([]*byte, len(strs))
	for i, s := range strs {
		bytes[i] = cString(s)
		ptrs[i] = &bytes[i][0]
	}
	return bytes, ptrs
}
