// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"fmt"

	"github.com/gogpu/framegraph"
	"github.com/gogpu/framegraph/vulkan/vk"
)

// groupEncoders folds the frame's passes into encoders: consecutive
// draw passes sharing a render target become one draw encoder,
// consecutive compute or blit passes group by kind, external passes
// ride the blit path, and CPU passes contribute nothing.
func groupEncoders(passes []framegraph.PassRecord) []framegraph.EncoderInfo {
	var encoders []framegraph.EncoderInfo

	kindOf := func(p *framegraph.PassRecord) (framegraph.EncoderKind, bool) {
		switch p.Kind {
		case framegraph.PassDraw:
			return framegraph.EncoderDraw, true
		case framegraph.PassCompute:
			return framegraph.EncoderCompute, true
		case framegraph.PassBlit, framegraph.PassExternal:
			return framegraph.EncoderBlit, true
		default: // PassCPU
			return 0, false
		}
	}

	for i := 0; i < len(passes); i++ {
		p := &passes[i]
		kind, ok := kindOf(p)
		if !ok {
			continue
		}

		e := framegraph.EncoderInfo{
			Index:        len(encoders),
			Kind:         kind,
			FirstPass:    i,
			LastPass:     i,
			FirstCommand: p.FirstCommand,
			LastCommand:  p.LastCommand,
			RenderTarget: p.RenderTarget,
		}
		for i+1 < len(passes) {
			next := &passes[i+1]
			nextKind, ok := kindOf(next)
			if !ok || nextKind != kind {
				break
			}
			if kind == framegraph.EncoderDraw && next.RenderTarget != p.RenderTarget {
				break
			}
			i++
			e.LastPass = i
			if next.LastCommand > e.LastCommand {
				e.LastCommand = next.LastCommand
			}
		}
		e.CommandBuffer = e.Index
		encoders = append(encoders, e)
	}
	return encoders
}

// frameResources implements frameResolver and resourceInfo for one
// frame: transient backings first, persistent second, with swapchain
// misses reported as absent so the affected encoder is skipped.
type frameResources struct {
	backend *Backend
	missing map[framegraph.ResourceHandle]bool
}

func (f *frameResources) image(h framegraph.ResourceHandle) (*imageResource, bool) {
	if f.missing[h] {
		return nil, false
	}
	if res, ok := f.backend.transient.lookupImage(h); ok {
		return res, true
	}
	res, ok := f.backend.persistent.lookupImage(h)
	if ok && res.isSwapchain() && res.image == 0 {
		// Registered but not acquired this frame.
		return nil, false
	}
	return res, ok
}

func (f *frameResources) buffer(h framegraph.ResourceHandle) (*bufferResource, bool) {
	if res, ok := f.backend.transient.lookupBuffer(h); ok {
		return res, true
	}
	return f.backend.persistent.lookupBuffer(h)
}

func (f *frameResources) sampler(h framegraph.ResourceHandle) (*samplerResource, bool) {
	return f.backend.persistent.lookupSampler(h)
}

func (f *frameResources) argument(h framegraph.ResourceHandle) (*argumentBuffer, bool) {
	return f.backend.persistent.lookupArgumentBuffer(h)
}

func (f *frameResources) imageInitialLayout(h framegraph.ResourceHandle) vk.ImageLayout {
	if res, ok := f.image(h); ok {
		return res.currentLayout
	}
	return vk.ImageLayoutUndefined
}

// swapchainUse tracks one swapchain's binding into the frame.
type swapchainUse struct {
	res          *imageResource
	firstEncoder int
	lastEncoder  int
}

// ExecuteFrameGraph compiles and submits one frame. It returns after
// scheduling the submissions; the completion callback runs exactly once
// on the semaphore-signal task after the GPU finishes and presents have
// been queued. If compilation fails before anything was submitted, the
// error is returned, transient resources are reclaimed, and the
// callback never runs.
func (b *Backend) ExecuteFrameGraph(frame *framegraph.Frame, completion framegraph.CompletionFunc) error {
	b.frameMu.Lock()
	defer b.frameMu.Unlock()

	if frame == nil || len(frame.Commands) == 0 {
		// No submission, but the completion contract holds.
		if completion != nil {
			go completion(nil)
		}
		return nil
	}

	// Bound the frame pipeline; the slot returns when this frame's
	// completion fences retire.
	<-b.slots
	released := false
	release := func() {
		if !released {
			released = true
			b.slots <- struct{}{}
		}
	}

	b.transient.begin(b.frameIndex)
	b.descs.beginFrame(b.frameIndex)

	abort := func(err error) error {
		b.transient.end()
		b.pool.cycleFrames()
		release()
		return err
	}

	// Materialize transient resources through the pool.
	for _, t := range frame.Transients {
		switch {
		case t.Texture != nil:
			if _, err := b.transient.allocateImage(t.Handle, *t.Texture); err != nil {
				return abort(fmt.Errorf("vulkan: transient texture %s: %w", t.Handle, err))
			}
		case t.Buffer != nil:
			if _, err := b.transient.allocateBuffer(t.Handle, *t.Buffer); err != nil {
				return abort(fmt.Errorf("vulkan: transient buffer %s: %w", t.Handle, err))
			}
		}
	}

	encoders := groupEncoders(frame.Passes)
	if len(encoders) == 0 {
		b.transient.end()
		b.pool.cycleFrames()
		release()
		if completion != nil {
			go completion(nil)
		}
		return nil
	}

	resources := &frameResources{
		backend: b,
		missing: make(map[framegraph.ResourceHandle]bool),
	}

	// Acquire swapchain images and note where each one is consumed.
	swapchains := b.acquireSwapchains(frame, encoders, resources)

	// Fan pipeline warming out to the worker pool: compute pipelines
	// build fully, render pipelines warm their shader modules and
	// reflection (the render pass arrives at encode time).
	warm := b.workers.NewGroup()
	for i := range frame.Commands {
		cmd := &frame.Commands[i]
		if desc := cmd.ComputePipeline; desc != nil {
			warm.Go(func() { _, _ = b.caches.getComputePipeline(desc) })
		}
		if desc := cmd.RenderPipeline; desc != nil {
			warm.Go(func() {
				_, _ = b.cfg.ShaderLibrary.Function(desc.VertexFunction)
				if desc.FragmentFunction != "" {
					_, _ = b.cfg.ShaderLibrary.Function(desc.FragmentFunction)
				}
			})
		}
	}
	warm.Wait()

	// Reserve the per-encoder queue and timeline value up front so the
	// analyzer can name them.
	queueFor := make([]int, len(encoders))
	valueFor := make([]uint64, len(encoders))
	for i, e := range encoders {
		queueFor[i] = b.queueForEncoder(e.Kind)
		valueFor[i] = b.queues[queueFor[i]].nextValue()
	}

	a := analyze(frame, encoders, resources, analyzerConfig{
		queueOf:       func(e int) int { return queueFor[e] },
		timelineValue: func(e int) uint64 { return valueFor[e] },
	})

	// Encode and submit, one command buffer per encoder.
	finalValues := make(map[int]uint64)
	var presentsByQueue [][]presentOp

	for i, e := range encoders {
		q := b.queues[queueFor[i]]
		buffer, err := q.allocateCommandBuffer(b.cmds, b.device)
		if err != nil {
			return abort(err)
		}
		rec := newVkRecorder(b.cmds, buffer)
		if err := rec.Begin(); err != nil {
			return abort(err)
		}
		encSync, err := encodeEncoder(frame, a, e, resources, b.caches, b.descs, rec)
		if err != nil {
			return abort(err)
		}
		if err := rec.End(); err != nil {
			return abort(err)
		}

		sub := submission{
			queue:       queueFor[i],
			buffer:      buffer,
			waits:       filterSelfWaits(encSync.waits, queueFor[i], valueFor[i]),
			waitStages:  encSync.waitDstStages,
			signalValue: valueFor[i],
		}

		// Attach swapchain semaphores: acquire waits ride the first
		// consuming encoder, present signals the last.
		for _, use := range swapchains {
			if use.firstEncoder == i {
				sub.binaryWaits = append(sub.binaryWaits, use.res.acquireSem)
			}
			if use.lastEncoder == i {
				sub.binarySignals = append(sub.binarySignals, use.res.presentSem)
				sub.presents = append(sub.presents, presentOp{
					swapchain:  use.res.swapchain.Handle(),
					imageIndex: use.res.swapIndex,
					wait:       use.res.presentSem,
				})
			}
		}

		if err := b.engine.submit(&sub); err != nil {
			framegraph.Logger().Error("vulkan: frame submission failed", "error", err)
			return abort(fmt.Errorf("%w: %v", framegraph.ErrFrameSubmission, err))
		}
		finalValues[sub.queue] = sub.signalValue

		if len(sub.presents) > 0 {
			for len(presentsByQueue) <= sub.queue {
				presentsByQueue = append(presentsByQueue, nil)
			}
			presentsByQueue[sub.queue] = append(presentsByQueue[sub.queue], sub.presents...)
		}
	}

	for qi, ops := range presentsByQueue {
		b.engine.present(qi, ops)
	}

	// Persist final image layouts for resources that survive the frame.
	for h, layout := range a.finalLayouts {
		if res, ok := b.persistent.lookupImage(h); ok {
			res.currentLayout = layout
		}
	}

	b.transient.end()
	b.pool.cycleFrames()
	b.frameIndex++

	b.engine.notifyCompletion(finalValues, release, completion)
	return nil
}

// queueForEncoder maps an encoder kind to its capability queue.
func (b *Backend) queueForEncoder(kind framegraph.EncoderKind) int {
	switch kind {
	case framegraph.EncoderCompute:
		return b.capability[QueueCompute]
	case framegraph.EncoderBlit:
		return b.capability[QueueBlit]
	default:
		return b.capability[QueueRender]
	}
}

// acquireSwapchains resolves every window texture the frame touches.
// Acquire failures mark the handle missing; the encoders that target it
// skip themselves.
func (b *Backend) acquireSwapchains(frame *framegraph.Frame, encoders []framegraph.EncoderInfo, resources *frameResources) []*swapchainUse {
	encoderOf := encoderIndexByCommand(encoders)
	uses := make(map[framegraph.ResourceHandle]*swapchainUse)

	for _, u := range frame.Usages {
		if !u.Resource.WindowTexture() {
			continue
		}
		res, ok := b.persistent.lookupImage(u.Resource)
		if !ok || res.swapchain == nil {
			continue
		}
		enc := encoderOf(u.Command)
		if enc < 0 {
			continue
		}

		use, seen := uses[u.Resource]
		if !seen {
			image, view, index, err := res.swapchain.Acquire(res.acquireSem)
			if err != nil {
				framegraph.Logger().Warn("vulkan: swapchain acquire failed, skipping encoders",
					"texture", u.Resource.String(), "error", err)
				resources.missing[u.Resource] = true
				uses[u.Resource] = nil
				continue
			}
			res.image = image
			res.view = view
			res.swapIndex = index
			res.currentLayout = vk.ImageLayoutUndefined
			use = &swapchainUse{res: res, firstEncoder: enc, lastEncoder: enc}
			uses[u.Resource] = use
			continue
		}
		if use == nil {
			continue // acquire failed earlier
		}
		if enc < use.firstEncoder {
			use.firstEncoder = enc
		}
		if enc > use.lastEncoder {
			use.lastEncoder = enc
		}
	}

	var out []*swapchainUse
	for _, use := range uses {
		if use != nil {
			out = append(out, use)
		}
	}
	return out
}

// filterSelfWaits drops timeline waits that would wait on the
// submitting command buffer's own value or later on the same queue;
// queue order already guarantees them.
func filterSelfWaits(waits []eventWait, queue int, ownValue uint64) []eventWait {
	var out []eventWait
	seen := make(map[eventWait]bool)
	for _, w := range waits {
		if w.queue == queue && w.value >= ownValue {
			continue
		}
		if seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}
