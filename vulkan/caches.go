// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"fmt"
	"strings"
	"sync"
	"unsafe"

	"github.com/gogpu/framegraph"
	"github.com/gogpu/framegraph/vulkan/vk"
)

const defaultEntryPoint = "main"

// pushConstantBytes is the guaranteed-minimum push constant budget used
// for setBytes payloads.
const pushConstantBytes = 128

// renderPipeline is a cached graphics pipeline with its layout and the
// reflection of its shader functions.
type renderPipeline struct {
	pipeline   vk.Pipeline
	layout     vk.PipelineLayout
	setLayout  vk.DescriptorSetLayout
	reflection *framegraph.PipelineReflection
}

// computePipeline is a cached compute pipeline.
type computePipeline struct {
	pipeline   vk.Pipeline
	layout     vk.PipelineLayout
	setLayout  vk.DescriptorSetLayout
	reflection *framegraph.PipelineReflection
}

// vertexInputState is a cached conversion of a vertex descriptor.
type vertexInputState struct {
	bindings   []vk.VertexInputBindingDescription
	attributes []vk.VertexInputAttributeDescription
}

// specializationState is a cached specialization info block. The entry
// and data slices stay alive as long as the cache entry, so the
// SpecializationInfo pointers remain valid.
type specializationState struct {
	entries []vk.SpecializationMapEntry
	data    []byte
	info    vk.SpecializationInfo
}

// cachedRenderPass is a render pass plus its framebuffers keyed by
// attachment views.
type cachedRenderPass struct {
	renderPass   vk.RenderPass
	framebuffers map[string]vk.Framebuffer
}

// stateCaches memoizes pipelines, vertex-input state, specialization
// blocks, render passes, and framebuffers by structural key. Entries
// never expire within a backend lifetime; concurrent readers are
// permitted, writers serialize.
type stateCaches struct {
	device vk.Device
	cmds   *vk.Commands

	pipelineCache vk.PipelineCache
	shaders       framegraph.ShaderLibrary

	mu          sync.RWMutex
	render      map[string]*renderPipeline
	compute     map[string]*computePipeline
	vertexInput map[string]*vertexInputState
	special     map[string]*specializationState
	modules     map[string]vk.ShaderModule
	renderPass  map[string]*cachedRenderPass
}

func newStateCaches(device vk.Device, cmds *vk.Commands, shaders framegraph.ShaderLibrary) (*stateCaches, error) {
	c := &stateCaches{
		device:      device,
		cmds:        cmds,
		shaders:     shaders,
		render:      make(map[string]*renderPipeline),
		compute:     make(map[string]*computePipeline),
		vertexInput: make(map[string]*vertexInputState),
		special:     make(map[string]*specializationState),
		modules:     make(map[string]vk.ShaderModule),
		renderPass:  make(map[string]*cachedRenderPass),
	}

	createInfo := vk.PipelineCacheCreateInfo{
		SType: vk.StructureTypePipelineCacheCreateInfo,
	}
	if result := c.cmds.CreatePipelineCache(device, &createInfo, nil, &c.pipelineCache); result != vk.Success {
		return nil, newVkError("vkCreatePipelineCache", result)
	}
	return c, nil
}

// destroy releases every cached object. Must run after the device is
// idle.
func (c *stateCaches) destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, p := range c.render {
		c.cmds.DestroyPipeline(c.device, p.pipeline, nil)
		c.cmds.DestroyPipelineLayout(c.device, p.layout, nil)
		c.cmds.DestroyDescriptorSetLayout(c.device, p.setLayout, nil)
	}
	for _, p := range c.compute {
		c.cmds.DestroyPipeline(c.device, p.pipeline, nil)
		c.cmds.DestroyPipelineLayout(c.device, p.layout, nil)
		c.cmds.DestroyDescriptorSetLayout(c.device, p.setLayout, nil)
	}
	for _, m := range c.modules {
		c.cmds.DestroyShaderModule(c.device, m, nil)
	}
	for _, rp := range c.renderPass {
		for _, fb := range rp.framebuffers {
			c.cmds.DestroyFramebuffer(c.device, fb, nil)
		}
		c.cmds.DestroyRenderPass(c.device, rp.renderPass, nil)
	}
	clear(c.render)
	clear(c.compute)
	clear(c.modules)
	clear(c.renderPass)

	if c.pipelineCache != 0 {
		c.cmds.DestroyPipelineCache(c.device, c.pipelineCache, nil)
		c.pipelineCache = 0
	}
}

// --- Render pipelines ---

// renderPipelineKey is structural: the descriptor's full content plus
// the render pass handle and subpass index.
func renderPipelineKey(desc *framegraph.RenderPipelineDescriptor, renderPass vk.RenderPass, subpass uint32) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%+v", *desc)
	if desc.Vertex != nil {
		fmt.Fprintf(&sb, "|v%+v", *desc.Vertex)
	}
	fmt.Fprintf(&sb, "|rp%x|sp%d", renderPass, subpass)
	return sb.String()
}

// getRenderPipeline returns the cached pipeline for the key, creating
// it on first use via a single vkCreateGraphicsPipelines call warming
// the shared VkPipelineCache.
func (c *stateCaches) getRenderPipeline(desc *framegraph.RenderPipelineDescriptor, renderPass vk.RenderPass, subpass uint32) (*renderPipeline, error) {
	key := renderPipelineKey(desc, renderPass, subpass)

	c.mu.RLock()
	p, ok := c.render[key]
	c.mu.RUnlock()
	if ok {
		return p, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.render[key]; ok {
		return p, nil
	}

	p, err := c.createRenderPipeline(desc, renderPass, subpass)
	if err != nil {
		return nil, err
	}
	c.render[key] = p
	return p, nil
}

func (c *stateCaches) createRenderPipeline(desc *framegraph.RenderPipelineDescriptor, renderPass vk.RenderPass, subpass uint32) (*renderPipeline, error) {
	vertFn, err := c.shaders.Function(desc.VertexFunction)
	if err != nil {
		return nil, err
	}
	vertModule, err := c.moduleLocked(desc.VertexFunction, vertFn.SPIRV)
	if err != nil {
		return nil, err
	}

	reflection := mergeReflections(vertFn.Reflection, nil)
	stages := make([]vk.PipelineShaderStageCreateInfo, 0, 2)
	entry := cString(defaultEntryPoint)
	spec := c.specializationLocked(desc.Constants, vertFn.Reflection)

	stages = append(stages, vk.PipelineShaderStageCreateInfo{
		SType:               vk.StructureTypePipelineShaderStageCreateInfo,
		Stage:               vk.ShaderStageVertexBit,
		Module:              vertModule,
		PName:               &entry[0],
		PSpecializationInfo: specInfoPtr(spec),
	})

	if desc.FragmentFunction != "" {
		fragFn, err := c.shaders.Function(desc.FragmentFunction)
		if err != nil {
			return nil, err
		}
		fragModule, err := c.moduleLocked(desc.FragmentFunction, fragFn.SPIRV)
		if err != nil {
			return nil, err
		}
		reflection = mergeReflections(reflection, fragFn.Reflection)
		fragSpec := c.specializationLocked(desc.Constants, fragFn.Reflection)
		stages = append(stages, vk.PipelineShaderStageCreateInfo{
			SType:               vk.StructureTypePipelineShaderStageCreateInfo,
			Stage:               vk.ShaderStageFragmentBit,
			Module:              fragModule,
			PName:               &entry[0],
			PSpecializationInfo: specInfoPtr(fragSpec),
		})
	}

	setLayout, layout, err := c.pipelineLayoutLocked(reflection, vk.ShaderStageAllGraphics)
	if err != nil {
		return nil, err
	}

	vertexInput := c.vertexInputLocked(desc.Vertex)
	viCreate := vk.PipelineVertexInputStateCreateInfo{
		SType: vk.StructureTypePipelineVertexInputStateCreateInfo,
	}
	if len(vertexInput.bindings) > 0 {
		viCreate.VertexBindingDescriptionCount = uint32(len(vertexInput.bindings))
		viCreate.PVertexBindingDescriptions = &vertexInput.bindings[0]
	}
	if len(vertexInput.attributes) > 0 {
		viCreate.VertexAttributeDescriptionCount = uint32(len(vertexInput.attributes))
		viCreate.PVertexAttributeDescriptions = &vertexInput.attributes[0]
	}

	inputAssembly := vk.PipelineInputAssemblyStateCreateInfo{
		SType:    vk.StructureTypePipelineInputAssemblyStateCreateInfo,
		Topology: topologyToVk(desc.Topology),
	}

	viewportState := vk.PipelineViewportStateCreateInfo{
		SType:         vk.StructureTypePipelineViewportStateCreateInfo,
		ViewportCount: 1,
		ScissorCount:  1,
	}

	rasterization := vk.PipelineRasterizationStateCreateInfo{
		SType:       vk.StructureTypePipelineRasterizationStateCreateInfo,
		PolygonMode: vk.PolygonModeFill,
		CullMode:    cullModeToVk(desc.CullMode),
		FrontFace:   frontFaceToVk(desc.FrontFace),
		LineWidth:   1,
	}

	samples := desc.SampleCount
	if samples == 0 {
		samples = 1
	}
	multisample := vk.PipelineMultisampleStateCreateInfo{
		SType:                vk.StructureTypePipelineMultisampleStateCreateInfo,
		RasterizationSamples: vk.SampleCountFlagBits(samples),
	}

	var depthStencil *vk.PipelineDepthStencilStateCreateInfo
	if formatIsDepthStencil(desc.DepthFormat) {
		ds := vk.PipelineDepthStencilStateCreateInfo{
			SType:           vk.StructureTypePipelineDepthStencilStateCreateInfo,
			DepthTestEnable: vk.True,
			DepthCompareOp:  compareFunctionToVk(desc.DepthCompare),
		}
		if desc.DepthWrite {
			ds.DepthWriteEnable = vk.True
		}
		depthStencil = &ds
	}

	blendAttachments := make([]vk.PipelineColorBlendAttachmentState, len(desc.ColorTargets))
	for i, target := range desc.ColorTargets {
		state := vk.PipelineColorBlendAttachmentState{
			ColorWriteMask: vk.ColorComponentFlags(target.WriteMask),
		}
		if state.ColorWriteMask == 0 {
			state.ColorWriteMask = vk.ColorComponentRBit | vk.ColorComponentGBit |
				vk.ColorComponentBBit | vk.ColorComponentABit
		}
		if target.Blend != nil {
			state.BlendEnable = vk.True
			state.SrcColorBlendFactor = vk.BlendFactorSrcAlpha
			state.DstColorBlendFactor = vk.BlendFactorOneMinusSrcAlpha
			state.ColorBlendOp = vk.BlendOpAdd
			state.SrcAlphaBlendFactor = vk.BlendFactorOne
			state.DstAlphaBlendFactor = vk.BlendFactorOneMinusSrcAlpha
			state.AlphaBlendOp = vk.BlendOpAdd
		}
		blendAttachments[i] = state
	}
	blendState := vk.PipelineColorBlendStateCreateInfo{
		SType: vk.StructureTypePipelineColorBlendStateCreateInfo,
	}
	if len(blendAttachments) > 0 {
		blendState.AttachmentCount = uint32(len(blendAttachments))
		blendState.PAttachments = &blendAttachments[0]
	}

	dynamicStates := [2]vk.DynamicState{vk.DynamicStateViewport, vk.DynamicStateScissor}
	dynamic := vk.PipelineDynamicStateCreateInfo{
		SType:             vk.StructureTypePipelineDynamicStateCreateInfo,
		DynamicStateCount: uint32(len(dynamicStates)),
		PDynamicStates:    &dynamicStates[0],
	}

	createInfo := vk.GraphicsPipelineCreateInfo{
		SType:               vk.StructureTypeGraphicsPipelineCreateInfo,
		StageCount:          uint32(len(stages)),
		PStages:             &stages[0],
		PVertexInputState:   &viCreate,
		PInputAssemblyState: &inputAssembly,
		PViewportState:      &viewportState,
		PRasterizationState: &rasterization,
		PMultisampleState:   &multisample,
		PDepthStencilState:  depthStencil,
		PColorBlendState:    &blendState,
		PDynamicState:       &dynamic,
		Layout:              layout,
		RenderPass:          renderPass,
		Subpass:             subpass,
		BasePipelineIndex:   -1,
	}

	var pipeline vk.Pipeline
	if result := c.cmds.CreateGraphicsPipelines(c.device, c.pipelineCache, 1, &createInfo, nil, &pipeline); result != vk.Success {
		return nil, newVkError("vkCreateGraphicsPipelines", result)
	}

	return &renderPipeline{
		pipeline:   pipeline,
		layout:     layout,
		setLayout:  setLayout,
		reflection: reflection,
	}, nil
}

// --- Compute pipelines ---

// computePipelineKey includes the threadgroup size, matching the keying
// of the frontend's dispatch model.
func computePipelineKey(desc *framegraph.ComputePipelineDescriptor) string {
	return fmt.Sprintf("%+v", *desc)
}

// getComputePipeline returns the cached compute pipeline, creating it
// on first use.
func (c *stateCaches) getComputePipeline(desc *framegraph.ComputePipelineDescriptor) (*computePipeline, error) {
	key := computePipelineKey(desc)

	c.mu.RLock()
	p, ok := c.compute[key]
	c.mu.RUnlock()
	if ok {
		return p, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.compute[key]; ok {
		return p, nil
	}

	fn, err := c.shaders.Function(desc.Function)
	if err != nil {
		return nil, err
	}
	module, err := c.moduleLocked(desc.Function, fn.SPIRV)
	if err != nil {
		return nil, err
	}
	setLayout, layout, err := c.pipelineLayoutLocked(fn.Reflection, vk.ShaderStageComputeBit)
	if err != nil {
		return nil, err
	}

	entry := cString(defaultEntryPoint)
	spec := c.specializationLocked(desc.Constants, fn.Reflection)

	createInfo := vk.ComputePipelineCreateInfo{
		SType: vk.StructureTypeComputePipelineCreateInfo,
		Stage: vk.PipelineShaderStageCreateInfo{
			SType:               vk.StructureTypePipelineShaderStageCreateInfo,
			Stage:               vk.ShaderStageComputeBit,
			Module:              module,
			PName:               &entry[0],
			PSpecializationInfo: specInfoPtr(spec),
		},
		Layout:            layout,
		BasePipelineIndex: -1,
	}

	var pipeline vk.Pipeline
	if result := c.cmds.CreateComputePipelines(c.device, c.pipelineCache, 1, &createInfo, nil, &pipeline); result != vk.Success {
		return nil, newVkError("vkCreateComputePipelines", result)
	}

	p = &computePipeline{
		pipeline:   pipeline,
		layout:     layout,
		setLayout:  setLayout,
		reflection: fn.Reflection,
	}
	c.compute[key] = p
	return p, nil
}

// --- Vertex input ---

// vertexInputLocked converts and caches a vertex descriptor. Caller
// holds the write lock.
func (c *stateCaches) vertexInputLocked(desc *framegraph.VertexDescriptor) *vertexInputState {
	if desc == nil {
		return &vertexInputState{}
	}
	key := fmt.Sprintf("%+v", *desc)
	if vi, ok := c.vertexInput[key]; ok {
		return vi
	}

	vi := &vertexInputState{}
	for i, layout := range desc.Layouts {
		rate := vk.VertexInputRateVertex
		if layout.StepMode == framegraph.StepPerInstance {
			rate = vk.VertexInputRateInstance
		}
		vi.bindings = append(vi.bindings, vk.VertexInputBindingDescription{
			Binding:   uint32(i),
			Stride:    uint32(layout.Stride),
			InputRate: rate,
		})
	}
	for _, attr := range desc.Attributes {
		vi.attributes = append(vi.attributes, vk.VertexInputAttributeDescription{
			Location: attr.ShaderLocation,
			Binding:  uint32(attr.BufferIndex),
			Format:   vertexFormatToVk(attr.Format),
			Offset:   uint32(attr.Offset),
		})
	}
	c.vertexInput[key] = vi
	return vi
}

// --- Specialization ---

// specializationLocked builds and caches a specialization block for the
// constants against one function's constant-index table. Caller holds
// the write lock.
func (c *stateCaches) specializationLocked(constants []framegraph.FunctionConstant, reflection *framegraph.PipelineReflection) *specializationState {
	if len(constants) == 0 {
		return nil
	}

	// Resolve constant IDs through the function's constant-index table
	// first; the resolved set is the cache key, so two functions that
	// map the same names differently never share an entry.
	type resolved struct {
		id    uint32
		value uint64
		size  uint32
	}
	entries := make([]resolved, len(constants))
	for i, constant := range constants {
		id := constant.Index
		if reflection != nil {
			if mapped, ok := reflection.ConstantIndices[constant.Name]; ok {
				id = mapped
			}
		}
		size := constant.Size
		if size == 0 {
			size = 4
		}
		entries[i] = resolved{id: id, value: constant.Value, size: size}
	}
	key := fmt.Sprintf("%+v", entries)
	if s, ok := c.special[key]; ok {
		return s
	}

	s := &specializationState{}
	for _, entry := range entries {
		offset := uint32(len(s.data))
		for b := uint32(0); b < entry.size; b++ {
			s.data = append(s.data, byte(entry.value>>(8*b)))
		}
		s.entries = append(s.entries, vk.SpecializationMapEntry{
			ConstantID: entry.id,
			Offset:     offset,
			Size:       uintptr(entry.size),
		})
	}
	s.info = vk.SpecializationInfo{
		MapEntryCount: uint32(len(s.entries)),
		PMapEntries:   &s.entries[0],
		DataSize:      uintptr(len(s.data)),
		PData:         unsafe.Pointer(&s.data[0]),
	}
	c.special[key] = s
	return s
}

func specInfoPtr(s *specializationState) *vk.SpecializationInfo {
	if s == nil {
		return nil
	}
	return &s.info
}

// --- Shader modules and layouts ---

// moduleLocked creates or returns a shader module. Caller holds the
// write lock.
func (c *stateCaches) moduleLocked(name string, spirv []uint32) (vk.ShaderModule, error) {
	if m, ok := c.modules[name]; ok {
		return m, nil
	}
	if len(spirv) == 0 {
		return 0, fmt.Errorf("vulkan: shader %q has no SPIR-V", name)
	}
	createInfo := vk.ShaderModuleCreateInfo{
		SType:    vk.StructureTypeShaderModuleCreateInfo,
		CodeSize: uintptr(len(spirv) * 4),
		PCode:    &spirv[0],
	}
	var module vk.ShaderModule
	if result := c.cmds.CreateShaderModule(c.device, &createInfo, nil, &module); result != vk.Success {
		return 0, newVkError("vkCreateShaderModule", result)
	}
	c.modules[name] = module
	return module, nil
}

// pipelineLayoutLocked builds a descriptor set layout from reflection
// bindings plus the push-constant range used by setBytes. Caller holds
// the write lock.
func (c *stateCaches) pipelineLayoutLocked(reflection *framegraph.PipelineReflection, stages vk.ShaderStageFlags) (vk.DescriptorSetLayout, vk.PipelineLayout, error) {
	var bindings []vk.DescriptorSetLayoutBinding
	if reflection != nil {
		for _, b := range reflection.Bindings {
			descType := vk.DescriptorTypeStorageBuffer
			switch {
			case b.Kind == framegraph.KindTexture:
				descType = vk.DescriptorTypeSampledImage
			case b.Kind == framegraph.KindSampler:
				descType = vk.DescriptorTypeSampler
			case b.ReadOnly:
				descType = vk.DescriptorTypeUniformBuffer
			}
			bindings = append(bindings, vk.DescriptorSetLayoutBinding{
				Binding:         b.Binding,
				DescriptorType:  descType,
				DescriptorCount: 1,
				StageFlags:      stages,
			})
		}
	}

	layoutInfo := vk.DescriptorSetLayoutCreateInfo{
		SType:        vk.StructureTypeDescriptorSetLayoutCreateInfo,
		BindingCount: uint32(len(bindings)),
	}
	if len(bindings) > 0 {
		layoutInfo.PBindings = &bindings[0]
	}
	var setLayout vk.DescriptorSetLayout
	if result := c.cmds.CreateDescriptorSetLayout(c.device, &layoutInfo, nil, &setLayout); result != vk.Success {
		return 0, 0, newVkError("vkCreateDescriptorSetLayout", result)
	}

	pushRange := vk.PushConstantRange{
		StageFlags: stages,
		Offset:     0,
		Size:       pushConstantBytes,
	}
	pipelineLayoutInfo := vk.PipelineLayoutCreateInfo{
		SType:                  vk.StructureTypePipelineLayoutCreateInfo,
		SetLayoutCount:         1,
		PSetLayouts:            &setLayout,
		PushConstantRangeCount: 1,
		PPushConstantRanges:    &pushRange,
	}
	var layout vk.PipelineLayout
	if result := c.cmds.CreatePipelineLayout(c.device, &pipelineLayoutInfo, nil, &layout); result != vk.Success {
		c.cmds.DestroyDescriptorSetLayout(c.device, setLayout, nil)
		return 0, 0, newVkError("vkCreatePipelineLayout", result)
	}
	return setLayout, layout, nil
}

// mergeReflections joins the binding tables of two shader stages.
func mergeReflections(a, b *framegraph.PipelineReflection) *framegraph.PipelineReflection {
	merged := &framegraph.PipelineReflection{
		ConstantIndices: make(map[string]uint32),
	}
	seen := make(map[[2]uint32]bool)
	for _, src := range []*framegraph.PipelineReflection{a, b} {
		if src == nil {
			continue
		}
		for name, id := range src.ConstantIndices {
			merged.ConstantIndices[name] = id
		}
		for _, binding := range src.Bindings {
			key := [2]uint32{binding.Set, binding.Binding}
			if seen[key] {
				continue
			}
			seen[key] = true
			merged.Bindings = append(merged.Bindings, binding)
		}
	}
	return merged
}

// --- Render passes and framebuffers ---

// renderTargetKey is structural over attachment formats, ops, sample
// counts, and the derived subpass dependencies.
func renderTargetKey(rt *framegraph.RenderTarget, deps []vk.SubpassDependency, formats []vk.Format) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "w%dh%dl%d|s%d", rt.Width, rt.Height, rt.Layers, rt.SubpassCount)
	for i, c := range rt.Colors {
		fmt.Fprintf(&sb, "|c%d:%d,%d,%d", i, formats[i], c.Load, c.Store)
	}
	if rt.DepthStencil != nil {
		fmt.Fprintf(&sb, "|d:%d,%d,%d", formats[len(rt.Colors)], rt.DepthStencil.Load, rt.DepthStencil.Store)
	}
	for _, d := range deps {
		fmt.Fprintf(&sb, "|dep%+v", d)
	}
	return sb.String()
}

// getRenderPass returns the cached render pass for a target and its
// derived subpass dependencies, creating it on first use.
//
// finalLayouts supplies the attachments' post-pass layouts (e.g.
// PRESENT_SRC_KHR for a swapchain color target).
func (c *stateCaches) getRenderPass(rt *framegraph.RenderTarget, deps []vk.SubpassDependency, formats []vk.Format, samples []uint32, finalLayouts []vk.ImageLayout) (*cachedRenderPass, error) {
	key := renderTargetKey(rt, deps, formats)

	c.mu.RLock()
	rp, ok := c.renderPass[key]
	c.mu.RUnlock()
	if ok {
		return rp, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if rp, ok := c.renderPass[key]; ok {
		return rp, nil
	}

	attachments := make([]vk.AttachmentDescription, 0, len(rt.Colors)+1)
	colorRefs := make([]vk.AttachmentReference, len(rt.Colors))
	for i, ca := range rt.Colors {
		s := vk.SampleCountFlagBits(1)
		if i < len(samples) && samples[i] > 0 {
			s = vk.SampleCountFlagBits(samples[i])
		}
		final := vk.ImageLayoutColorAttachmentOptimal
		if i < len(finalLayouts) && finalLayouts[i] != 0 {
			final = finalLayouts[i]
		}
		initial := vk.ImageLayoutUndefined
		if ca.Load == framegraph.LoadLoad {
			initial = vk.ImageLayoutColorAttachmentOptimal
		}
		attachments = append(attachments, vk.AttachmentDescription{
			Format:         formats[i],
			Samples:        s,
			LoadOp:         loadActionToVk(ca.Load),
			StoreOp:        storeActionToVk(ca.Store),
			StencilLoadOp:  vk.AttachmentLoadOpDontCare,
			StencilStoreOp: vk.AttachmentStoreOpDontCare,
			InitialLayout:  initial,
			FinalLayout:    final,
		})
		colorRefs[i] = vk.AttachmentReference{
			Attachment: uint32(i),
			Layout:     vk.ImageLayoutColorAttachmentOptimal,
		}
	}

	var depthRef *vk.AttachmentReference
	if rt.DepthStencil != nil {
		idx := len(attachments)
		initial := vk.ImageLayoutUndefined
		if rt.DepthStencil.Load == framegraph.LoadLoad {
			initial = vk.ImageLayoutDepthStencilAttachmentOptimal
		}
		attachments = append(attachments, vk.AttachmentDescription{
			Format:         formats[idx],
			Samples:        1,
			LoadOp:         loadActionToVk(rt.DepthStencil.Load),
			StoreOp:        storeActionToVk(rt.DepthStencil.Store),
			StencilLoadOp:  loadActionToVk(rt.DepthStencil.Load),
			StencilStoreOp: storeActionToVk(rt.DepthStencil.Store),
			InitialLayout:  initial,
			FinalLayout:    vk.ImageLayoutDepthStencilAttachmentOptimal,
		})
		depthRef = &vk.AttachmentReference{
			Attachment: uint32(idx),
			Layout:     vk.ImageLayoutDepthStencilAttachmentOptimal,
		}
	}

	subpassCount := rt.SubpassCount
	if subpassCount < 1 {
		subpassCount = 1
	}
	subpasses := make([]vk.SubpassDescription, subpassCount)
	for i := range subpasses {
		sp := vk.SubpassDescription{
			PipelineBindPoint:       vk.PipelineBindPointGraphics,
			ColorAttachmentCount:    uint32(len(colorRefs)),
			PDepthStencilAttachment: depthRef,
		}
		if len(colorRefs) > 0 {
			sp.PColorAttachments = &colorRefs[0]
		}
		subpasses[i] = sp
	}

	createInfo := vk.RenderPassCreateInfo{
		SType:           vk.StructureTypeRenderPassCreateInfo,
		AttachmentCount: uint32(len(attachments)),
		SubpassCount:    uint32(len(subpasses)),
		PSubpasses:      &subpasses[0],
	}
	if len(attachments) > 0 {
		createInfo.PAttachments = &attachments[0]
	}
	if len(deps) > 0 {
		createInfo.DependencyCount = uint32(len(deps))
		createInfo.PDependencies = &deps[0]
	}

	var renderPass vk.RenderPass
	if result := c.cmds.CreateRenderPass(c.device, &createInfo, nil, &renderPass); result != vk.Success {
		return nil, newVkError("vkCreateRenderPass", result)
	}

	rp = &cachedRenderPass{
		renderPass:   renderPass,
		framebuffers: make(map[string]vk.Framebuffer),
	}
	c.renderPass[key] = rp
	return rp, nil
}

// getFramebuffer returns the framebuffer for a view set, creating it on
// first use.
func (c *stateCaches) getFramebuffer(rp *cachedRenderPass, views []vk.ImageView, width, height, layers uint32) (vk.Framebuffer, error) {
	var sb strings.Builder
	for _, v := range views {
		fmt.Fprintf(&sb, "%x,", v)
	}
	key := sb.String()

	c.mu.RLock()
	fb, ok := rp.framebuffers[key]
	c.mu.RUnlock()
	if ok {
		return fb, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if fb, ok := rp.framebuffers[key]; ok {
		return fb, nil
	}

	if layers == 0 {
		layers = 1
	}
	createInfo := vk.FramebufferCreateInfo{
		SType:           vk.StructureTypeFramebufferCreateInfo,
		RenderPass:      rp.renderPass,
		AttachmentCount: uint32(len(views)),
		Width:           width,
		Height:          height,
		Layers:          layers,
	}
	if len(views) > 0 {
		createInfo.PAttachments = &views[0]
	}
	var framebuffer vk.Framebuffer
	if result := c.cmds.CreateFramebuffer(c.device, &createInfo, nil, &framebuffer); result != vk.Success {
		return 0, newVkError("vkCreateFramebuffer", result)
	}
	rp.framebuffers[key] = framebuffer
	return framebuffer, nil
}

// cString returns a null-terminated byte slice.
func cString(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}
