// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"sort"

	"github.com/gogpu/framegraph"
	"github.com/gogpu/framegraph/vulkan/vk"
)

// pendingBatch accumulates encoder-global barriers with running stage
// masks. The batch is pushed as late as possible: its anchor is the
// minimum consumer command index, and it flushes as one PipelineBarrier
// when the walk moves past that index.
type pendingBatch struct {
	active    bool
	lastIndex int
	srcStages vk.PipelineStageFlags
	dstStages vk.PipelineStageFlags
	bufs      []bufferBarrier
	imgs      []imageBarrier
}

func (b *pendingBatch) add(index int, src, dst vk.PipelineStageFlags) {
	if !b.active {
		b.active = true
		b.lastIndex = index
	} else if index < b.lastIndex {
		b.lastIndex = index
	}
	b.srcStages |= src
	b.dstStages |= dst
}

// resourceState tracks one resource during the linear walk.
type resourceState struct {
	last    framegraph.UsageRecord
	lastEnc int
	layout  vk.ImageLayout
	seen    bool
}

// emitIntraEncoderBarriers walks the command stream once and classifies
// every usage transition that stays inside one encoder: render-pass
// internal transitions become subpass dependencies (or localized
// barriers), everything else lands in the pending batch.
func (a *analysis) emitIntraEncoderBarriers(frame *framegraph.Frame, encoders []framegraph.EncoderInfo, encoderOf func(int) int, info resourceInfo) {
	events := make([]framegraph.UsageRecord, len(frame.Usages))
	copy(events, frame.Usages)
	sort.SliceStable(events, func(i, j int) bool { return events[i].Command < events[j].Command })

	subpassOf := subpassByCommand(frame.Passes)

	state := make(map[framegraph.ResourceHandle]*resourceState)
	var batch pendingBatch

	flush := func() {
		if !batch.active {
			return
		}
		src := batch.srcStages
		dst := batch.dstStages
		if src == 0 {
			src = vk.PipelineStageTopOfPipeBit
		}
		if dst == 0 {
			dst = vk.PipelineStageBottomOfPipeBit
		}
		a.commands = append(a.commands, resourceCommand{
			kind:        cmdPipelineBarrier,
			index:       batch.lastIndex,
			order:       orderBefore,
			srcStages:   src,
			dstStages:   dst,
			bufBarriers: batch.bufs,
			imgBarriers: batch.imgs,
		})
		batch = pendingBatch{}
	}

	currentEncoder := -1
	for _, u := range events {
		enc := encoderOf(u.Command)
		if enc < 0 {
			continue
		}
		if enc != currentEncoder {
			flush()
			currentEncoder = enc
		}
		if batch.active && u.Command > batch.lastIndex {
			flush()
		}

		ua := deriveUsageFor(u)
		isImage := u.Resource.Kind() == framegraph.KindTexture

		st := state[u.Resource]
		if st == nil {
			st = &resourceState{}
			state[u.Resource] = st
		}

		if !st.seen {
			a.initializeResource(u, ua, isImage, info, &batch)
			st.seen = true
			st.last = u
			st.lastEnc = enc
			if isImage && ua.layout != 0 {
				st.layout = ua.layout
			}
			continue
		}

		if st.lastEnc != enc {
			// Transition crosses encoders: the cross-encoder events
			// already carry it. Track state only.
			if isImage && ua.layout != 0 {
				st.layout = ua.layout
				a.noteLayout(u.Resource, u.Command, ua.layout)
			}
			st.last = u
			st.lastEnc = enc
			continue
		}

		prev := st.last
		pa := deriveUsageFor(prev)
		layoutChange := isImage && ua.layout != 0 && ua.layout != st.layout
		if !prev.Kind.Writes() && !u.Kind.Writes() && !layoutChange {
			st.last = u
			continue
		}

		e := encoders[enc]
		prevRT, prevSub := subpassOf(prev.Command)
		curRT, curSub := subpassOf(u.Command)

		switch {
		case e.RenderTarget != nil && prevRT == e.RenderTarget && curRT == e.RenderTarget:
			// Render-pass internal.
			a.addRenderPassDependency(e.RenderTarget, prevSub, curSub, prev, u, pa, ua, isImage, &batch)
		default:
			// Encoder-global.
			batch.add(u.Command, pa.stages, ua.stages)
			if isImage {
				old := st.layout
				if old == 0 {
					old = pa.layout
				}
				batch.imgs = append(batch.imgs, imageBarrier{
					handle:    u.Resource,
					srcAccess: pa.access,
					dstAccess: ua.access,
					oldLayout: old,
					newLayout: ua.layout,
				})
			} else {
				batch.bufs = append(batch.bufs, bufferBarrier{
					handle:    u.Resource,
					srcAccess: pa.access,
					dstAccess: ua.access,
				})
			}
		}

		st.last = u
		if isImage && ua.layout != 0 {
			st.layout = ua.layout
			a.noteLayout(u.Resource, u.Command, ua.layout)
		}
	}
	flush()

	a.emitPresentBarriers(state)
}

// initializeResource emits the first-use barrier of a frame: images not
// flagged initialised start from UNDEFINED and take a full
// initialization transition; others transition from their persisted
// layout when it differs from the first usage's.
func (a *analysis) initializeResource(u framegraph.UsageRecord, ua usageAccess, isImage bool, info resourceInfo, batch *pendingBatch) {
	if !isImage || ua.layout == 0 {
		return
	}
	old := info.imageInitialLayout(u.Resource)
	if u.Resource.Flags()&framegraph.FlagInitialised == 0 {
		old = vk.ImageLayoutUndefined
	}
	if old == ua.layout {
		a.noteLayout(u.Resource, u.Command, ua.layout)
		return
	}
	batch.add(u.Command, vk.PipelineStageTopOfPipeBit, ua.stages)
	batch.imgs = append(batch.imgs, imageBarrier{
		handle:    u.Resource,
		srcAccess: 0,
		dstAccess: ua.access,
		oldLayout: old,
		newLayout: ua.layout,
	})
	a.noteLayout(u.Resource, u.Command, ua.layout)
}

// addRenderPassDependency classifies a transition whose endpoints both
// live inside the same render pass.
func (a *analysis) addRenderPassDependency(rt *framegraph.RenderTarget, prevSub, curSub int, prev, u framegraph.UsageRecord, pa, ua usageAccess, isImage bool, batch *pendingBatch) {
	dep := vk.SubpassDependency{
		SrcStageMask:  pa.stages,
		DstStageMask:  ua.stages,
		SrcAccessMask: pa.access,
		DstAccessMask: ua.access,
	}
	if byRegionSafe(pa.stages, ua.stages) {
		dep.DependencyFlags = vk.DependencyByRegionBit
	}

	switch {
	case prevSub == curSub:
		// Same subpass: self-dependency. Textures additionally take a
		// pipeline barrier at the consumer; buffers are not allowed a
		// self-dependency and fall back to the encoder-global batch.
		if !isImage {
			batch.add(u.Command, pa.stages, ua.stages)
			batch.bufs = append(batch.bufs, bufferBarrier{
				handle:    u.Resource,
				srcAccess: pa.access,
				dstAccess: ua.access,
			})
			return
		}
		dep.SrcSubpass = uint32(curSub)
		dep.DstSubpass = uint32(curSub)
		a.subpassDeps[rt] = append(a.subpassDeps[rt], dep)
		a.commands = append(a.commands, resourceCommand{
			kind:      cmdPipelineBarrier,
			index:     u.Command,
			order:     orderBefore,
			srcStages: pa.stages,
			dstStages: ua.stages,
			depFlags:  dep.DependencyFlags,
			imgBarriers: []imageBarrier{{
				handle:    u.Resource,
				srcAccess: pa.access,
				dstAccess: ua.access,
				oldLayout: ua.layout,
				newLayout: ua.layout,
			}},
		})
	default:
		// Different subpasses: the dependency lives on the render
		// target; no pipeline barrier unless a layout transition is
		// required and neither endpoint is an attachment.
		dep.SrcSubpass = uint32(prevSub)
		dep.DstSubpass = uint32(curSub)
		a.subpassDeps[rt] = append(a.subpassDeps[rt], dep)

		layoutChange := isImage && pa.layout != ua.layout
		if layoutChange && !isAttachmentUsage(prev.Kind) && !isAttachmentUsage(u.Kind) {
			a.commands = append(a.commands, resourceCommand{
				kind:      cmdPipelineBarrier,
				index:     u.Command,
				order:     orderBefore,
				srcStages: pa.stages,
				dstStages: ua.stages,
				imgBarriers: []imageBarrier{{
					handle:    u.Resource,
					srcAccess: pa.access,
					dstAccess: ua.access,
					oldLayout: pa.layout,
					newLayout: ua.layout,
				}},
			})
		}
	}
}

// emitPresentBarriers appends the final transition to PRESENT_SRC_KHR
// for swapchain images whose last recorded usage was not already a
// present.
func (a *analysis) emitPresentBarriers(state map[framegraph.ResourceHandle]*resourceState) {
	for h, st := range state {
		if !h.WindowTexture() || !st.seen {
			continue
		}
		if st.last.Kind == framegraph.UsagePresent {
			continue
		}
		pa := deriveUsageFor(st.last)
		a.commands = append(a.commands, resourceCommand{
			kind:      cmdPipelineBarrier,
			index:     st.last.Command,
			order:     orderAfter,
			srcStages: pa.stages,
			dstStages: vk.PipelineStageBottomOfPipeBit,
			imgBarriers: []imageBarrier{{
				handle:    h,
				srcAccess: pa.access,
				dstAccess: 0,
				oldLayout: st.layout,
				newLayout: vk.ImageLayoutPresentSrcKHR,
			}},
		})
		a.noteLayout(h, st.last.Command, vk.ImageLayoutPresentSrcKHR)
	}
}

// subpassByCommand maps a command index to the render target and
// subpass of the pass containing it.
func subpassByCommand(passes []framegraph.PassRecord) func(cmd int) (*framegraph.RenderTarget, int) {
	return func(cmd int) (*framegraph.RenderTarget, int) {
		for i := range passes {
			p := &passes[i]
			if cmd >= p.FirstCommand && cmd <= p.LastCommand {
				return p.RenderTarget, p.Subpass
			}
		}
		return nil, 0
	}
}

// framebufferStages are the framebuffer-space pipeline stages for which
// BY_REGION dependencies are well-defined.
const framebufferStages = vk.PipelineStageFragmentShaderBit |
	vk.PipelineStageEarlyFragmentTestsBit |
	vk.PipelineStageLateFragmentTestsBit |
	vk.PipelineStageColorAttachmentOutputBit

// byRegionSafe reports whether both stage masks stay within
// framebuffer-space stages.
func byRegionSafe(src, dst vk.PipelineStageFlags) bool {
	return src != 0 && dst != 0 &&
		src&^framebufferStages == 0 && dst&^framebufferStages == 0
}

// isAttachmentUsage reports whether the usage accesses the resource as
// a render-pass attachment.
func isAttachmentUsage(kind framegraph.UsageKind) bool {
	switch kind {
	case framegraph.UsageColorAttachmentRead, framegraph.UsageColorAttachmentWrite,
		framegraph.UsageDepthStencilRead, framegraph.UsageDepthStencilWrite:
		return true
	}
	return false
}
