// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"sync"
	"time"
	"unsafe"

	"github.com/gogpu/framegraph"
	"github.com/gogpu/framegraph/vulkan/vk"
)

// uintptrOf chains an extension struct through a PNext field.
func uintptrOf[T any](p *T) uintptr {
	return uintptr(unsafe.Pointer(p))
}

// queueState is the per-queue submission state: the Vulkan queue, its
// timeline semaphore with a monotonic value incremented once per
// submitted command buffer, and a TRANSIENT command pool guarded by a
// dedicated mutex.
type queueState struct {
	index  int
	family uint32
	queue  vk.Queue

	timeline vk.Semaphore

	mu    sync.Mutex
	value uint64
	pool  vk.CommandPool
}

// nextValue reserves the next timeline value for a command buffer.
func (q *queueState) nextValue() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.value++
	return q.value
}

// allocateCommandBuffer takes a primary command buffer from the queue's
// pool. Allocation is serialized per queue.
func (q *queueState) allocateCommandBuffer(cmds *vk.Commands, device vk.Device) (vk.CommandBuffer, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	allocInfo := vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        q.pool,
		Level:              vk.CommandBufferLevelPrimary,
		CommandBufferCount: 1,
	}
	var buffer vk.CommandBuffer
	if result := cmds.AllocateCommandBuffers(device, &allocInfo, &buffer); result != vk.Success {
		return 0, newVkError("vkAllocateCommandBuffers", result)
	}
	return buffer, nil
}

// freeCommandBuffers returns retired command buffers to the pool.
func (q *queueState) freeCommandBuffers(cmds *vk.Commands, device vk.Device, buffers []vk.CommandBuffer) {
	if len(buffers) == 0 {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	cmds.FreeCommandBuffers(device, q.pool, uint32(len(buffers)), &buffers[0])
}

// presentOp queues one swapchain image for presentation after the
// frame's submissions.
type presentOp struct {
	swapchain  vk.SwapchainKHR
	imageIndex uint32
	wait       vk.Semaphore
}

// submission is one command buffer ready for vkQueueSubmit.
type submission struct {
	queue  int
	buffer vk.CommandBuffer

	// Timeline waits from cross-encoder events.
	waits      []eventWait
	waitStages vk.PipelineStageFlags

	// Binary semaphores for acquired swapchain images.
	binaryWaits []vk.Semaphore

	// Timeline value signaled on completion, plus one binary signal
	// per swapchain to present.
	signalValue   uint64
	binarySignals []vk.Semaphore

	presents []presentOp
}

// submitEngine owns the queue states and the semaphore-signal task that
// runs frame completion callbacks.
type submitEngine struct {
	device vk.Device
	cmds   *vk.Commands
	queues []*queueState

	wg sync.WaitGroup
}

func newSubmitEngine(device vk.Device, cmds *vk.Commands, queues []*queueState) *submitEngine {
	return &submitEngine{device: device, cmds: cmds, queues: queues}
}

// buildSubmitInfo assembles the Vulkan submit structures for one
// submission. Split from submit so the wait/signal list construction is
// testable without a device: it returns the flattened wait semaphores,
// wait values, wait stage masks, signal semaphores, and signal values.
func (s *submitEngine) buildSubmitInfo(sub *submission) (waitSems []vk.Semaphore, waitValues []uint64, waitStages []vk.PipelineStageFlags, signalSems []vk.Semaphore, signalValues []uint64) {
	for _, w := range sub.waits {
		waitSems = append(waitSems, s.queues[w.queue].timeline)
		waitValues = append(waitValues, w.value)
		stages := sub.waitStages
		if stages == 0 {
			stages = vk.PipelineStageTopOfPipeBit
		}
		waitStages = append(waitStages, stages)
	}
	for _, sem := range sub.binaryWaits {
		waitSems = append(waitSems, sem)
		waitValues = append(waitValues, 0)
		// Swapchain waits are padded with ALL_GRAPHICS: the consuming
		// stages are not knowable before the acquire resolves.
		waitStages = append(waitStages, vk.PipelineStageAllGraphicsBit)
	}

	signalSems = append(signalSems, s.queues[sub.queue].timeline)
	signalValues = append(signalValues, sub.signalValue)
	for _, sem := range sub.binarySignals {
		signalSems = append(signalSems, sem)
		signalValues = append(signalValues, 0)
	}
	return
}

// submit issues one vkQueueSubmit with the timeline chain attached.
// Submission errors are fatal for the frame.
func (s *submitEngine) submit(sub *submission) error {
	waitSems, waitValues, waitStages, signalSems, signalValues := s.buildSubmitInfo(sub)

	timelineInfo := vk.TimelineSemaphoreSubmitInfo{
		SType: vk.StructureTypeTimelineSemaphoreSubmitInfo,
	}
	if len(waitValues) > 0 {
		timelineInfo.WaitSemaphoreValueCount = uint32(len(waitValues))
		timelineInfo.PWaitSemaphoreValues = &waitValues[0]
	}
	timelineInfo.SignalSemaphoreValueCount = uint32(len(signalValues))
	timelineInfo.PSignalSemaphoreValues = &signalValues[0]

	submitInfo := vk.SubmitInfo{
		SType:              vk.StructureTypeSubmitInfo,
		PNext:              uintptrOf(&timelineInfo),
		CommandBufferCount: 1,
		PCommandBuffers:    &sub.buffer,
	}
	if len(waitSems) > 0 {
		submitInfo.WaitSemaphoreCount = uint32(len(waitSems))
		submitInfo.PWaitSemaphores = &waitSems[0]
		submitInfo.PWaitDstStageMask = &waitStages[0]
	}
	submitInfo.SignalSemaphoreCount = uint32(len(signalSems))
	submitInfo.PSignalSemaphores = &signalSems[0]

	q := s.queues[sub.queue]
	if result := s.cmds.QueueSubmit(q.queue, 1, &submitInfo, 0); result != vk.Success {
		return newVkError("vkQueueSubmit", result)
	}
	return nil
}

// present queues the frame's swapchain presents after its submissions.
// A failed present is a soft failure: it is logged and the frame
// continues.
func (s *submitEngine) present(queueIndex int, ops []presentOp) {
	if len(ops) == 0 {
		return
	}
	q := s.queues[queueIndex]
	for _, op := range ops {
		sc := op.swapchain
		idx := op.imageIndex
		presentInfo := vk.PresentInfoKHR{
			SType:          vk.StructureTypePresentInfoKHR,
			SwapchainCount: 1,
			PSwapchains:    &sc,
			PImageIndices:  &idx,
		}
		if op.wait != 0 {
			w := op.wait
			presentInfo.WaitSemaphoreCount = 1
			presentInfo.PWaitSemaphores = &w
		}
		if result := s.cmds.QueuePresentKHR(q.queue, &presentInfo); result != vk.Success && result != vk.SuboptimalKHR {
			framegraph.Logger().Warn("vulkan: vkQueuePresentKHR failed",
				"result", vkResultToString(result))
		}
	}
}

// notifyCompletion runs the frame completion callback exactly once,
// after the GPU reaches every (queue, value) pair of the frame and
// presents have been queued. The wait happens on the engine's
// semaphore-signal task, not the frame thread.
func (s *submitEngine) notifyCompletion(values map[int]uint64, retired func(), completion framegraph.CompletionFunc) {
	sems := make([]vk.Semaphore, 0, len(values))
	vals := make([]uint64, 0, len(values))
	for queue, value := range values {
		sems = append(sems, s.queues[queue].timeline)
		vals = append(vals, value)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		var err error
		if len(sems) > 0 {
			waitInfo := vk.SemaphoreWaitInfo{
				SType:          vk.StructureTypeSemaphoreWaitInfo,
				SemaphoreCount: uint32(len(sems)),
				PSemaphores:    &sems[0],
				PValues:        &vals[0],
			}
			const timeoutNs = uint64(10 * time.Second)
			if result := s.cmds.WaitSemaphores(s.device, &waitInfo, timeoutNs); result != vk.Success {
				err = newVkError("vkWaitSemaphores", result)
			}
		}
		if retired != nil {
			retired()
		}
		if completion != nil {
			completion(err)
		}
	}()
}

// drainCompletions blocks until every in-flight completion task has
// run. Used at teardown.
func (s *submitEngine) drainCompletions() {
	s.wg.Wait()
}
