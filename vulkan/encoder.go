// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"fmt"

	"github.com/gogpu/framegraph"
	"github.com/gogpu/framegraph/vulkan/vk"
)

// frameResolver resolves handles to this frame's backings, checking the
// transient registry first and falling back to persistent resources.
type frameResolver interface {
	image(h framegraph.ResourceHandle) (*imageResource, bool)
	buffer(h framegraph.ResourceHandle) (*bufferResource, bool)
	sampler(h framegraph.ResourceHandle) (*samplerResource, bool)
	argument(h framegraph.ResourceHandle) (*argumentBuffer, bool)
}

// descriptorSource allocates per-frame descriptor sets for argument
// buffers.
type descriptorSource interface {
	allocateSet(layout vk.DescriptorSetLayout) (vk.DescriptorSet, error)
	writeSet(set vk.DescriptorSet, ab *argumentBuffer, resolver frameResolver) error
}

// encoderSync is what the dispatcher hands the submission engine for
// one encoder: the timeline waits its command buffer needs and the
// destination stages the waits cover.
type encoderSync struct {
	waits         []eventWait
	waitDstStages vk.PipelineStageFlags
}

// encoderDispatcher walks one encoder's slice of the frame, draining
// the compacted resource-command stream around each frame command.
type encoderDispatcher struct {
	frame    *framegraph.Frame
	analysis *analysis
	resolver frameResolver
	caches   *stateCaches
	descs    descriptorSource
	rec      CommandRecorder

	// stream holds the encoder's resource commands sorted by anchor.
	stream []resourceCommand
	cursor int

	sync encoderSync

	// Binding state.
	render      *renderPipeline
	compute     *computePipeline
	argBuf      *argumentBuffer
	argSet      vk.DescriptorSet
	argDirty    bool
	pushPending []byte

	// Render pass state.
	renderPass    *cachedRenderPass
	currentSubpass int
	inRenderPass   bool
}

// streamFor selects the resource commands anchored inside the
// encoder's command range.
func streamFor(a *analysis, e framegraph.EncoderInfo) []resourceCommand {
	var out []resourceCommand
	for _, rc := range a.commands {
		if rc.index >= e.FirstCommand && rc.index <= e.LastCommand {
			out = append(out, rc)
		}
	}
	return out
}

// encodeEncoder records one encoder into the recorder and returns its
// synchronization requirements.
func encodeEncoder(frame *framegraph.Frame, a *analysis, e framegraph.EncoderInfo,
	resolver frameResolver, caches *stateCaches, descs descriptorSource, rec CommandRecorder) (encoderSync, error) {

	d := &encoderDispatcher{
		frame:    frame,
		analysis: a,
		resolver: resolver,
		caches:   caches,
		descs:    descs,
		rec:      rec,
		stream:   streamFor(a, e),
	}

	var err error
	if e.Kind == framegraph.EncoderDraw && e.RenderTarget != nil {
		err = d.encodeDrawEncoder(e)
	} else {
		err = d.encodeLinear(e)
	}
	return d.sync, err
}

// encodeLinear handles compute and blit encoders: resource commands
// interleave directly with frame commands.
func (d *encoderDispatcher) encodeLinear(e framegraph.EncoderInfo) error {
	for c := e.FirstCommand; c <= e.LastCommand; c++ {
		d.drain(c, orderBefore)
		if err := d.execute(e, &d.frame.Commands[c], c); err != nil {
			return err
		}
		d.drain(c, orderAfter)
	}
	d.drain(e.LastCommand+1, orderBefore) // anything left
	return nil
}

// encodeDrawEncoder handles draw encoders. Pipeline barriers cannot be
// recorded inside a render pass (other than BY_REGION
// self-dependencies), so all non-region barriers drain before the pass
// begins and "after" commands drain once it ends.
func (d *encoderDispatcher) encodeDrawEncoder(e framegraph.EncoderInfo) error {
	rt := e.RenderTarget

	colors := make([]*imageResource, len(rt.Colors))
	views := make([]vk.ImageView, 0, len(rt.Colors)+1)
	formats := make([]vk.Format, 0, len(rt.Colors)+1)
	samples := make([]uint32, 0, len(rt.Colors))
	clears := make([]vk.ClearValue, 0, len(rt.Colors)+1)

	for i, ca := range rt.Colors {
		img, ok := d.resolver.image(ca.Texture)
		if !ok {
			// Swapchain acquire failed or the transient backing is
			// missing: skip the encoder and continue the frame.
			framegraph.Logger().Warn("vulkan: skipping draw encoder, missing color attachment",
				"encoder", e.Index, "texture", ca.Texture.String())
			return nil
		}
		colors[i] = img
		views = append(views, img.view)
		formats = append(formats, textureFormatToVk(img.desc.Format))
		samples = append(samples, img.desc.Normalized().SampleCount)
		clears = append(clears, vk.ClearValueColor(ca.ClearColor[0], ca.ClearColor[1], ca.ClearColor[2], ca.ClearColor[3]))
	}
	if rt.DepthStencil != nil {
		img, ok := d.resolver.image(rt.DepthStencil.Texture)
		if !ok {
			framegraph.Logger().Warn("vulkan: skipping draw encoder, missing depth attachment",
				"encoder", e.Index)
			return nil
		}
		views = append(views, img.view)
		formats = append(formats, textureFormatToVk(img.desc.Format))
		clears = append(clears, vk.ClearValueDepthStencil(rt.DepthStencil.ClearDepth, rt.DepthStencil.ClearStencil))
	}

	rp, err := d.caches.getRenderPass(rt, d.analysis.subpassDeps[rt], formats, samples, nil)
	if err != nil {
		return err
	}
	d.renderPass = rp
	fb, err := d.caches.getFramebuffer(rp, views, rt.Width, rt.Height, rt.Layers)
	if err != nil {
		return err
	}

	// Pre-pass: every barrier and wait not expressible inside the
	// render pass drains now, mapped to a point before vkCmdBeginRenderPass.
	d.drainExternal(e)

	beginInfo := vk.RenderPassBeginInfo{
		SType:       vk.StructureTypeRenderPassBeginInfo,
		RenderPass:  rp.renderPass,
		Framebuffer: fb,
		RenderArea: vk.Rect2D{
			Extent: vk.Extent2D{Width: rt.Width, Height: rt.Height},
		},
		ClearValueCount: uint32(len(clears)),
	}
	if len(clears) > 0 {
		beginInfo.PClearValues = &clears[0]
	}
	d.rec.BeginRenderPass(&beginInfo)
	d.inRenderPass = true
	d.currentSubpass = 0

	d.rec.SetViewport(vk.Viewport{
		Width:    float32(rt.Width),
		Height:   float32(rt.Height),
		MaxDepth: 1,
	})
	d.rec.SetScissor(vk.Rect2D{Extent: vk.Extent2D{Width: rt.Width, Height: rt.Height}})

	for pi := e.FirstPass; pi <= e.LastPass; pi++ {
		pass := &d.frame.Passes[pi]
		for pass.Subpass > d.currentSubpass {
			d.rec.NextSubpass()
			d.currentSubpass++
		}
		for c := pass.FirstCommand; c <= pass.LastCommand; c++ {
			d.drainRegion(c)
			if err := d.execute(e, &d.frame.Commands[c], c); err != nil {
				return err
			}
		}
	}

	d.rec.EndRenderPass()
	d.inRenderPass = false

	// Post-pass: trailing "after" commands (present transitions).
	d.drainRemaining()
	return nil
}

// drain consumes resource commands up to the given anchor on linear
// encoders.
func (d *encoderDispatcher) drain(cmd int, order commandOrder) {
	for d.cursor < len(d.stream) {
		rc := &d.stream[d.cursor]
		if order == orderBefore {
			if rc.index > cmd || (rc.index == cmd && rc.order == orderAfter) {
				return
			}
		} else {
			if rc.index > cmd {
				return
			}
		}
		d.apply(rc)
		d.cursor++
	}
}

// drainExternal consumes, before a render pass begins, everything that
// cannot be recorded inside it: all waits plus every barrier that is
// not a BY_REGION self-dependency.
func (d *encoderDispatcher) drainExternal(e framegraph.EncoderInfo) {
	kept := d.stream[:0]
	for i := range d.stream {
		rc := &d.stream[i]
		if rc.kind == cmdPipelineBarrier && rc.depFlags&vk.DependencyByRegionBit != 0 {
			kept = append(kept, *rc)
			continue
		}
		if rc.order == orderAfter && rc.kind == cmdPipelineBarrier && hasPresentTransition(rc) {
			kept = append(kept, *rc)
			continue
		}
		d.apply(rc)
	}
	d.stream = kept
	d.cursor = 0
}

// drainRegion applies BY_REGION self-dependency barriers anchored at
// the command, inside the render pass.
func (d *encoderDispatcher) drainRegion(cmd int) {
	for d.cursor < len(d.stream) {
		rc := &d.stream[d.cursor]
		if rc.index > cmd {
			return
		}
		if rc.kind == cmdPipelineBarrier && rc.depFlags&vk.DependencyByRegionBit != 0 {
			d.apply(rc)
		}
		d.cursor++
	}
}

// drainRemaining applies whatever the render-pass drains left behind.
func (d *encoderDispatcher) drainRemaining() {
	for i := range d.stream {
		rc := &d.stream[i]
		if rc.kind == cmdPipelineBarrier && rc.depFlags&vk.DependencyByRegionBit != 0 {
			continue // already applied inside the pass
		}
		if rc.order == orderAfter && hasPresentTransition(rc) {
			d.apply(rc)
		}
	}
}

func hasPresentTransition(rc *resourceCommand) bool {
	for _, img := range rc.imgBarriers {
		if img.newLayout == vk.ImageLayoutPresentSrcKHR {
			return true
		}
	}
	return false
}

// apply records one compacted resource command.
func (d *encoderDispatcher) apply(rc *resourceCommand) {
	switch rc.kind {
	case cmdSignalEvent:
		// The timeline signal itself rides on the submission; nothing
		// is recorded here.
	case cmdWaitForEvents:
		d.sync.waits = append(d.sync.waits, rc.waits...)
		d.sync.waitDstStages |= rc.dstStages
		d.recordBarrier(rc)
	case cmdPipelineBarrier:
		d.recordBarrier(rc)
	}
}

// recordBarrier resolves handle-based barriers into Vulkan barriers and
// records a single vkCmdPipelineBarrier.
func (d *encoderDispatcher) recordBarrier(rc *resourceCommand) {
	if len(rc.memBarriers) == 0 && len(rc.bufBarriers) == 0 && len(rc.imgBarriers) == 0 {
		return
	}

	var bufs []vk.BufferMemoryBarrier
	for _, b := range rc.bufBarriers {
		res, ok := d.resolver.buffer(b.handle)
		if !ok {
			continue
		}
		size := b.size
		if size == 0 {
			size = vk.WholeSize
		}
		bufs = append(bufs, vk.BufferMemoryBarrier{
			SType:               vk.StructureTypeBufferMemoryBarrier,
			SrcAccessMask:       b.srcAccess,
			DstAccessMask:       b.dstAccess,
			SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
			DstQueueFamilyIndex: vk.QueueFamilyIgnored,
			Buffer:              res.buffer,
			Offset:              vk.DeviceSize(b.offset),
			Size:                vk.DeviceSize(size),
		})
	}

	var imgs []vk.ImageMemoryBarrier
	for _, b := range rc.imgBarriers {
		res, ok := d.resolver.image(b.handle)
		if !ok {
			continue
		}
		levels := b.levelCount
		if levels == 0 {
			levels = vk.RemainingMipLevels
		}
		layers := b.layerCount
		if layers == 0 {
			layers = vk.RemainingArrayLayers
		}
		imgs = append(imgs, vk.ImageMemoryBarrier{
			SType:               vk.StructureTypeImageMemoryBarrier,
			SrcAccessMask:       b.srcAccess,
			DstAccessMask:       b.dstAccess,
			OldLayout:           b.oldLayout,
			NewLayout:           b.newLayout,
			SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
			DstQueueFamilyIndex: vk.QueueFamilyIgnored,
			Image:               res.image,
			SubresourceRange: vk.ImageSubresourceRange{
				AspectMask:     formatAspect(res.desc.Format),
				BaseMipLevel:   b.baseMip,
				LevelCount:     levels,
				BaseArrayLayer: b.baseLayer,
				LayerCount:     layers,
			},
		})
		res.currentLayout = b.newLayout
	}

	if len(bufs) == 0 && len(imgs) == 0 && len(rc.memBarriers) == 0 {
		return
	}
	d.rec.PipelineBarrier(rc.srcStages, rc.dstStages, rc.depFlags, rc.memBarriers, bufs, imgs)
}

// execute runs one frame command.
func (d *encoderDispatcher) execute(e framegraph.EncoderInfo, cmd *framegraph.Command, index int) error {
	switch cmd.Op {
	case framegraph.OpInsertDebugSignpost:
		d.rec.InsertDebugLabel(cmd.Label)
	case framegraph.OpPushDebugGroup:
		d.rec.BeginDebugLabel(cmd.Label)
	case framegraph.OpPopDebugGroup:
		d.rec.EndDebugLabel()
	case framegraph.OpSetLabel:
		// Object labels are advisory; nothing to record inline.

	case framegraph.OpCopyBufferToBuffer:
		return d.copyBufferToBuffer(cmd)
	case framegraph.OpCopyBufferToTexture:
		return d.copyBufferToTexture(cmd)
	case framegraph.OpCopyTextureToBuffer:
		return d.copyTextureToBuffer(cmd)
	case framegraph.OpCopyTextureToTexture:
		return d.copyTextureToTexture(cmd)
	case framegraph.OpFillBuffer:
		return d.fillBuffer(cmd)
	case framegraph.OpGenerateMipmaps:
		return d.generateMipmaps(cmd)

	case framegraph.OpSetArgumentBuffer:
		return d.setArgumentBuffer(cmd)
	case framegraph.OpSetBytes:
		d.pushPending = cmd.Bytes
		d.flushPushConstants()
	case framegraph.OpSetBuffer, framegraph.OpSetTexture, framegraph.OpSetSamplerState, framegraph.OpSetBufferOffset:
		return d.writeArgumentEntry(cmd)

	case framegraph.OpSetRenderPipeline:
		return d.setRenderPipeline(cmd)
	case framegraph.OpSetComputePipeline:
		return d.setComputePipeline(cmd)

	case framegraph.OpDispatchThreads, framegraph.OpDispatchThreadgroups, framegraph.OpDispatchThreadgroupsIndirect:
		return d.dispatch(e, cmd)

	case framegraph.OpDraw, framegraph.OpDrawIndexed, framegraph.OpDrawIndirect, framegraph.OpDrawIndexedIndirect:
		return d.draw(e, cmd)

	case framegraph.OpSynchronizeTexture, framegraph.OpSynchronizeBuffer:
		// Managed-storage readback synchronization is not implemented
		// on this backend; reaching it means a frontend bug.
		return fmt.Errorf("%w: synchronize at command %d", framegraph.ErrUnsupported, index)

	default:
		return fmt.Errorf("%w: opcode %d at command %d", framegraph.ErrUnsupported, cmd.Op, index)
	}
	return nil
}

// --- Transfers ---

func (d *encoderDispatcher) copyBufferToBuffer(cmd *framegraph.Command) error {
	src, ok := d.resolver.buffer(cmd.Resource)
	if !ok {
		return fmt.Errorf("%w: %s", framegraph.ErrUnknownResource, cmd.Resource)
	}
	dst, ok := d.resolver.buffer(cmd.Aux)
	if !ok {
		return fmt.Errorf("%w: %s", framegraph.ErrUnknownResource, cmd.Aux)
	}
	if cmd.Length == 0 {
		return nil
	}
	d.rec.CopyBuffer(src.buffer, dst.buffer, []vk.BufferCopy{{
		SrcOffset: vk.DeviceSize(cmd.Offset),
		DstOffset: vk.DeviceSize(cmd.AuxOffset),
		Size:      vk.DeviceSize(cmd.Length),
	}})
	return nil
}

func (d *encoderDispatcher) copyBufferToTexture(cmd *framegraph.Command) error {
	src, ok := d.resolver.buffer(cmd.Resource)
	if !ok {
		return fmt.Errorf("%w: %s", framegraph.ErrUnknownResource, cmd.Resource)
	}
	dst, ok := d.resolver.image(cmd.Aux)
	if !ok {
		return fmt.Errorf("%w: %s", framegraph.ErrUnknownResource, cmd.Aux)
	}
	d.rec.CopyBufferToImage(src.buffer, dst.image, vk.ImageLayoutTransferDstOptimal, []vk.BufferImageCopy{{
		BufferOffset:      vk.DeviceSize(cmd.Offset),
		BufferRowLength:   cmd.BytesPerRow,
		BufferImageHeight: cmd.RowsPerImage,
		ImageSubresource: vk.ImageSubresourceLayers{
			AspectMask:     formatAspect(dst.desc.Format),
			MipLevel:       cmd.DstLevel,
			BaseArrayLayer: cmd.DstSlice,
			LayerCount:     1,
		},
		ImageOffset: vk.Offset3D{X: int32(cmd.DstOrigin.X), Y: int32(cmd.DstOrigin.Y), Z: int32(cmd.DstOrigin.Z)},
		ImageExtent: vk.Extent3D{Width: cmd.Extent.Width, Height: cmd.Extent.Height, Depth: cmd.Extent.Depth},
	}})
	return nil
}

func (d *encoderDispatcher) copyTextureToBuffer(cmd *framegraph.Command) error {
	src, ok := d.resolver.image(cmd.Resource)
	if !ok {
		return fmt.Errorf("%w: %s", framegraph.ErrUnknownResource, cmd.Resource)
	}
	dst, ok := d.resolver.buffer(cmd.Aux)
	if !ok {
		return fmt.Errorf("%w: %s", framegraph.ErrUnknownResource, cmd.Aux)
	}
	d.rec.CopyImageToBuffer(src.image, vk.ImageLayoutTransferSrcOptimal, dst.buffer, []vk.BufferImageCopy{{
		BufferOffset:      vk.DeviceSize(cmd.AuxOffset),
		BufferRowLength:   cmd.BytesPerRow,
		BufferImageHeight: cmd.RowsPerImage,
		ImageSubresource: vk.ImageSubresourceLayers{
			AspectMask:     formatAspect(src.desc.Format),
			MipLevel:       cmd.SrcLevel,
			BaseArrayLayer: cmd.SrcSlice,
			LayerCount:     1,
		},
		ImageOffset: vk.Offset3D{X: int32(cmd.SrcOrigin.X), Y: int32(cmd.SrcOrigin.Y), Z: int32(cmd.SrcOrigin.Z)},
		ImageExtent: vk.Extent3D{Width: cmd.Extent.Width, Height: cmd.Extent.Height, Depth: cmd.Extent.Depth},
	}})
	return nil
}

func (d *encoderDispatcher) copyTextureToTexture(cmd *framegraph.Command) error {
	src, ok := d.resolver.image(cmd.Resource)
	if !ok {
		return fmt.Errorf("%w: %s", framegraph.ErrUnknownResource, cmd.Resource)
	}
	dst, ok := d.resolver.image(cmd.Aux)
	if !ok {
		return fmt.Errorf("%w: %s", framegraph.ErrUnknownResource, cmd.Aux)
	}
	d.rec.CopyImage(src.image, vk.ImageLayoutTransferSrcOptimal, dst.image, vk.ImageLayoutTransferDstOptimal, []vk.ImageCopy{{
		SrcSubresource: vk.ImageSubresourceLayers{
			AspectMask:     formatAspect(src.desc.Format),
			MipLevel:       cmd.SrcLevel,
			BaseArrayLayer: cmd.SrcSlice,
			LayerCount:     1,
		},
		SrcOffset: vk.Offset3D{X: int32(cmd.SrcOrigin.X), Y: int32(cmd.SrcOrigin.Y), Z: int32(cmd.SrcOrigin.Z)},
		DstSubresource: vk.ImageSubresourceLayers{
			AspectMask:     formatAspect(dst.desc.Format),
			MipLevel:       cmd.DstLevel,
			BaseArrayLayer: cmd.DstSlice,
			LayerCount:     1,
		},
		DstOffset: vk.Offset3D{X: int32(cmd.DstOrigin.X), Y: int32(cmd.DstOrigin.Y), Z: int32(cmd.DstOrigin.Z)},
		Extent:    vk.Extent3D{Width: cmd.Extent.Width, Height: cmd.Extent.Height, Depth: cmd.Extent.Depth},
	}})
	return nil
}

func (d *encoderDispatcher) fillBuffer(cmd *framegraph.Command) error {
	if cmd.Range.Empty() {
		return nil
	}
	dst, ok := d.resolver.buffer(cmd.Resource)
	if !ok {
		return fmt.Errorf("%w: %s", framegraph.ErrUnknownResource, cmd.Resource)
	}
	v := uint32(cmd.FillValue)
	data := v | v<<8 | v<<16 | v<<24
	d.rec.FillBuffer(dst.buffer, cmd.Range.Offset, cmd.Range.Size, data)
	return nil
}

// generateMipmaps expands into one blit chain: each level i is filled
// from level i-1 at half extent (floor, min 1) with a LINEAR filter,
// and every level ends in SHADER_READ_ONLY_OPTIMAL. A single-level
// image is a no-op.
func (d *encoderDispatcher) generateMipmaps(cmd *framegraph.Command) error {
	res, ok := d.resolver.image(cmd.Resource)
	if !ok {
		return fmt.Errorf("%w: %s", framegraph.ErrUnknownResource, cmd.Resource)
	}
	desc := res.desc.Normalized()
	levels := desc.MipLevels
	if levels <= 1 {
		return nil
	}
	aspect := formatAspect(desc.Format)
	layers := desc.ArrayLength

	barrier := func(level uint32, srcAccess, dstAccess vk.AccessFlags, from, to vk.ImageLayout) {
		d.rec.PipelineBarrier(vk.PipelineStageTransferBit, vk.PipelineStageTransferBit, 0, nil, nil,
			[]vk.ImageMemoryBarrier{{
				SType:               vk.StructureTypeImageMemoryBarrier,
				SrcAccessMask:       srcAccess,
				DstAccessMask:       dstAccess,
				OldLayout:           from,
				NewLayout:           to,
				SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
				DstQueueFamilyIndex: vk.QueueFamilyIgnored,
				Image:               res.image,
				SubresourceRange: vk.ImageSubresourceRange{
					AspectMask:   aspect,
					BaseMipLevel: level,
					LevelCount:   1,
					LayerCount:   layers,
				},
			}})
	}

	mipExtent := func(level uint32) (int32, int32, int32) {
		w := int32(desc.Width) >> level
		h := int32(desc.Height) >> level
		z := int32(desc.Depth) >> level
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		if z < 1 {
			z = 1
		}
		return w, h, z
	}

	srcLayout := res.currentLayout
	if srcLayout == 0 {
		srcLayout = vk.ImageLayoutTransferDstOptimal
	}

	for i := uint32(1); i < levels; i++ {
		prevLayout := vk.ImageLayoutTransferDstOptimal
		if i == 1 {
			prevLayout = srcLayout
		}
		barrier(i-1, vk.AccessTransferWriteBit, vk.AccessTransferReadBit, prevLayout, vk.ImageLayoutTransferSrcOptimal)
		barrier(i, 0, vk.AccessTransferWriteBit, vk.ImageLayoutUndefined, vk.ImageLayoutTransferDstOptimal)

		sw, sh, sz := mipExtent(i - 1)
		dw, dh, dz := mipExtent(i)
		d.rec.BlitImage(res.image, vk.ImageLayoutTransferSrcOptimal, res.image, vk.ImageLayoutTransferDstOptimal,
			[]vk.ImageBlit{{
				SrcSubresource: vk.ImageSubresourceLayers{AspectMask: aspect, MipLevel: i - 1, LayerCount: layers},
				SrcOffsets:     [2]vk.Offset3D{{}, {X: sw, Y: sh, Z: sz}},
				DstSubresource: vk.ImageSubresourceLayers{AspectMask: aspect, MipLevel: i, LayerCount: layers},
				DstOffsets:     [2]vk.Offset3D{{}, {X: dw, Y: dh, Z: dz}},
			}}, vk.FilterLinear)

		barrier(i-1, vk.AccessTransferReadBit, vk.AccessShaderReadBit, vk.ImageLayoutTransferSrcOptimal, vk.ImageLayoutShaderReadOnlyOptimal)
	}
	barrier(levels-1, vk.AccessTransferWriteBit, vk.AccessShaderReadBit, vk.ImageLayoutTransferDstOptimal, vk.ImageLayoutShaderReadOnlyOptimal)
	res.currentLayout = vk.ImageLayoutShaderReadOnlyOptimal
	return nil
}

// --- Bindings ---

func (d *encoderDispatcher) setArgumentBuffer(cmd *framegraph.Command) error {
	ab, ok := d.resolver.argument(cmd.Resource)
	if !ok {
		return fmt.Errorf("%w: %s", framegraph.ErrUnknownResource, cmd.Resource)
	}
	d.argBuf = ab
	d.argDirty = true
	d.flushArgumentBuffer()
	return nil
}

// writeArgumentEntry records a binding into an argument buffer. Direct
// bindings outside argument buffers are unsupported on this backend.
func (d *encoderDispatcher) writeArgumentEntry(cmd *framegraph.Command) error {
	ab, ok := d.resolver.argument(cmd.Aux)
	if !ok {
		return fmt.Errorf("%w: set* outside argument buffers", framegraph.ErrUnsupported)
	}
	if ab.entries == nil {
		ab.entries = make(map[uint32]argumentEntry)
	}

	entry := ab.entries[cmd.Index]
	switch cmd.Op {
	case framegraph.OpSetBuffer:
		entry.kind = framegraph.KindBuffer
		entry.buffer = cmd.Resource
		entry.offset = cmd.Offset
		entry.size = cmd.Length
	case framegraph.OpSetBufferOffset:
		entry.offset = cmd.Offset
	case framegraph.OpSetTexture:
		entry.kind = framegraph.KindTexture
		entry.texture = cmd.Resource
	case framegraph.OpSetSamplerState:
		entry.kind = framegraph.KindSampler
		entry.sampler = cmd.Resource
	}
	ab.entries[cmd.Index] = entry
	ab.dirty = true
	if d.argBuf == ab {
		d.argDirty = true
	}
	return nil
}

// flushArgumentBuffer materializes the bound argument buffer into a
// descriptor set and binds it. Requires a bound pipeline for the
// layout; if none is bound yet the flush re-runs at pipeline bind.
func (d *encoderDispatcher) flushArgumentBuffer() {
	if d.argBuf == nil || !d.argDirty {
		return
	}

	var layout vk.PipelineLayout
	var setLayout vk.DescriptorSetLayout
	var bindPoint vk.PipelineBindPoint
	switch {
	case d.compute != nil:
		layout, setLayout, bindPoint = d.compute.layout, d.compute.setLayout, vk.PipelineBindPointCompute
	case d.render != nil:
		layout, setLayout, bindPoint = d.render.layout, d.render.setLayout, vk.PipelineBindPointGraphics
	default:
		return
	}

	set, err := d.descs.allocateSet(setLayout)
	if err != nil {
		framegraph.Logger().Warn("vulkan: descriptor allocation failed", "error", err)
		return
	}
	if err := d.descs.writeSet(set, d.argBuf, d.resolver); err != nil {
		framegraph.Logger().Warn("vulkan: descriptor write failed", "error", err)
		return
	}
	d.argSet = set
	d.argDirty = false
	d.rec.BindDescriptorSet(bindPoint, layout, set)
}

func (d *encoderDispatcher) flushPushConstants() {
	if len(d.pushPending) == 0 {
		return
	}
	data := d.pushPending
	if len(data) > pushConstantBytes {
		data = data[:pushConstantBytes]
	}
	switch {
	case d.compute != nil:
		d.rec.PushConstants(d.compute.layout, vk.ShaderStageComputeBit, 0, data)
		d.pushPending = nil
	case d.render != nil:
		d.rec.PushConstants(d.render.layout, vk.ShaderStageAllGraphics, 0, data)
		d.pushPending = nil
	}
}

// --- Pipelines ---

func (d *encoderDispatcher) setRenderPipeline(cmd *framegraph.Command) error {
	if cmd.RenderPipeline == nil {
		return fmt.Errorf("%w: setPipelineDescriptor without render descriptor", framegraph.ErrUnsupported)
	}
	if d.renderPass == nil {
		return fmt.Errorf("%w: render pipeline outside draw encoder", framegraph.ErrUnsupported)
	}
	p, err := d.caches.getRenderPipeline(cmd.RenderPipeline, d.renderPass.renderPass, uint32(d.currentSubpass))
	if err != nil {
		return err
	}
	d.render = p
	d.compute = nil
	d.rec.BindPipeline(vk.PipelineBindPointGraphics, p.pipeline)
	d.argDirty = d.argBuf != nil
	d.flushArgumentBuffer()
	d.flushPushConstants()
	return nil
}

func (d *encoderDispatcher) setComputePipeline(cmd *framegraph.Command) error {
	if cmd.ComputePipeline == nil {
		return fmt.Errorf("%w: setPipelineDescriptor without compute descriptor", framegraph.ErrUnsupported)
	}
	p, err := d.caches.getComputePipeline(cmd.ComputePipeline)
	if err != nil {
		return err
	}
	d.compute = p
	d.render = nil
	d.rec.BindPipeline(vk.PipelineBindPointCompute, p.pipeline)
	d.argDirty = d.argBuf != nil
	d.flushArgumentBuffer()
	d.flushPushConstants()
	return nil
}

// --- Dispatch and draw ---

func (d *encoderDispatcher) dispatch(e framegraph.EncoderInfo, cmd *framegraph.Command) error {
	if d.compute == nil {
		return fmt.Errorf("%w: dispatch without compute pipeline", framegraph.ErrUnsupported)
	}
	args := cmd.Dispatch
	if args == nil {
		return fmt.Errorf("%w: dispatch without arguments", framegraph.ErrUnsupported)
	}
	d.flushArgumentBuffer()
	d.flushPushConstants()

	switch cmd.Op {
	case framegraph.OpDispatchThreadgroups:
		d.rec.Dispatch(args.GridX, args.GridY, args.GridZ)
	case framegraph.OpDispatchThreads:
		gx := divRoundUp(args.GridX, args.ThreadsPerGroupX)
		gy := divRoundUp(args.GridY, args.ThreadsPerGroupY)
		gz := divRoundUp(args.GridZ, args.ThreadsPerGroupZ)
		d.rec.Dispatch(gx, gy, gz)
	case framegraph.OpDispatchThreadgroupsIndirect:
		res, ok := d.resolver.buffer(cmd.Resource)
		if !ok {
			return fmt.Errorf("%w: %s", framegraph.ErrUnknownResource, cmd.Resource)
		}
		d.rec.DispatchIndirect(res.buffer, cmd.Offset)
	}
	return nil
}

func (d *encoderDispatcher) draw(e framegraph.EncoderInfo, cmd *framegraph.Command) error {
	if d.render == nil {
		return fmt.Errorf("%w: draw without render pipeline", framegraph.ErrUnsupported)
	}
	args := cmd.Draw
	if args == nil {
		return fmt.Errorf("%w: draw without arguments", framegraph.ErrUnsupported)
	}
	d.flushArgumentBuffer()
	d.flushPushConstants()

	for _, vb := range args.VertexBuffers {
		res, ok := d.resolver.buffer(vb.Buffer)
		if !ok {
			return fmt.Errorf("%w: %s", framegraph.ErrUnknownResource, vb.Buffer)
		}
		d.rec.BindVertexBuffer(vb.Slot, res.buffer, vb.Offset)
	}

	switch cmd.Op {
	case framegraph.OpDraw:
		instances := args.InstanceCount
		if instances == 0 {
			instances = 1
		}
		d.rec.Draw(args.VertexCount, instances, args.FirstVertex, args.FirstInstance)
	case framegraph.OpDrawIndexed:
		res, ok := d.resolver.buffer(args.IndexBuffer)
		if !ok {
			return fmt.Errorf("%w: %s", framegraph.ErrUnknownResource, args.IndexBuffer)
		}
		d.rec.BindIndexBuffer(res.buffer, args.IndexOffset, indexFormatToVk(args.IndexFormat))
		instances := args.InstanceCount
		if instances == 0 {
			instances = 1
		}
		d.rec.DrawIndexed(args.IndexCount, instances, args.FirstIndex, args.BaseVertex, args.FirstInstance)
	case framegraph.OpDrawIndirect:
		res, ok := d.resolver.buffer(cmd.Resource)
		if !ok {
			return fmt.Errorf("%w: %s", framegraph.ErrUnknownResource, cmd.Resource)
		}
		d.rec.DrawIndirect(res.buffer, cmd.Offset)
	case framegraph.OpDrawIndexedIndirect:
		res, ok := d.resolver.buffer(cmd.Resource)
		if !ok {
			return fmt.Errorf("%w: %s", framegraph.ErrUnknownResource, cmd.Resource)
		}
		idx, ok := d.resolver.buffer(args.IndexBuffer)
		if !ok {
			return fmt.Errorf("%w: %s", framegraph.ErrUnknownResource, args.IndexBuffer)
		}
		d.rec.BindIndexBuffer(idx.buffer, args.IndexOffset, indexFormatToVk(args.IndexFormat))
		d.rec.DrawIndexedIndirect(res.buffer, cmd.Offset)
	}
	return nil
}

func divRoundUp(n, d uint32) uint32 {
	if d == 0 {
		return n
	}
	return (n + d - 1) / d
}
