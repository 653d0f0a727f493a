// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"sort"

	"github.com/gogpu/framegraph"
	"github.com/gogpu/framegraph/vulkan/vk"
)

// commandOrder anchors a resource command before or after the frame
// command it is attached to.
type commandOrder uint8

const (
	orderBefore commandOrder = iota
	orderAfter
)

// resourceCommandKind is the variant of a compacted resource command.
type resourceCommandKind uint8

const (
	cmdSignalEvent resourceCommandKind = iota
	cmdWaitForEvents
	cmdPipelineBarrier
)

// bufferBarrier is a buffer memory barrier by handle; the encoder
// resolves the Vulkan buffer at record time.
type bufferBarrier struct {
	handle    framegraph.ResourceHandle
	srcAccess vk.AccessFlags
	dstAccess vk.AccessFlags
	offset    uint64
	size      uint64 // zero means whole buffer
}

// imageBarrier is an image memory barrier by handle.
type imageBarrier struct {
	handle    framegraph.ResourceHandle
	srcAccess vk.AccessFlags
	dstAccess vk.AccessFlags
	oldLayout vk.ImageLayout
	newLayout vk.ImageLayout

	baseMip    uint32
	levelCount uint32 // zero means remaining
	baseLayer  uint32
	layerCount uint32 // zero means remaining
}

// eventWait names one timeline value the consumer waits on.
type eventWait struct {
	queue int
	value uint64
}

// resourceCommand is one compacted synchronization primitive anchored at
// a command index.
type resourceCommand struct {
	kind  resourceCommandKind
	index int
	order commandOrder

	// SignalEvent.
	queue       int
	value       uint64
	afterStages vk.PipelineStageFlags

	// WaitForEvents.
	waits []eventWait

	// Barrier payload (WaitForEvents and PipelineBarrier).
	srcStages vk.PipelineStageFlags
	dstStages vk.PipelineStageFlags
	depFlags  vk.DependencyFlags

	memBarriers []vk.MemoryBarrier
	bufBarriers []bufferBarrier
	imgBarriers []imageBarrier
}

// sortKey orders commands by anchor, before-commands first.
func (c *resourceCommand) sortKey() int {
	k := c.index * 2
	if c.order == orderAfter {
		k++
	}
	return k
}

// dependencyEdge is one producer/consumer pair on a shared resource.
type dependencyEdge struct {
	resource framegraph.ResourceHandle
	producer framegraph.UsageRecord
	consumer framegraph.UsageRecord

	// signalIndex is the producing command, waitIndex the first
	// consuming command.
	signalIndex int
	waitIndex   int
}

// dependencyTable is the lower-triangular matrix D over encoder
// indices: D[i][j] holds the edges from producer encoder j to consumer
// encoder i, j < i.
type dependencyTable struct {
	n     int
	cells map[[2]int][]dependencyEdge
}

func newDependencyTable(n int) *dependencyTable {
	return &dependencyTable{n: n, cells: make(map[[2]int][]dependencyEdge)}
}

// add records an edge from producer encoder j to consumer encoder i.
// Entries with j >= i violate the lower-triangular invariant and are
// dropped.
func (t *dependencyTable) add(i, j int, e dependencyEdge) {
	if j >= i {
		return
	}
	key := [2]int{i, j}
	t.cells[key] = append(t.cells[key], e)
}

// edges returns D[i][j].
func (t *dependencyTable) edges(i, j int) []dependencyEdge {
	return t.cells[[2]int{i, j}]
}

// hasEdge reports whether D[i][j] is non-empty.
func (t *dependencyTable) hasEdge(i, j int) bool {
	return len(t.cells[[2]int{i, j}]) > 0
}

// successors returns the consumer encoders directly depending on j.
func (t *dependencyTable) successors(j int) []int {
	var out []int
	for i := j + 1; i < t.n; i++ {
		if t.hasEdge(i, j) {
			out = append(out, i)
		}
	}
	return out
}

// resourceInfo resolves the layout an image holds when the frame
// begins: UNDEFINED for images created this frame, the persisted layout
// otherwise.
type resourceInfo interface {
	imageInitialLayout(h framegraph.ResourceHandle) vk.ImageLayout
}

// analysis is the dependency analyzer's output: the sorted compacted
// command stream, subpass dependencies keyed by render target, and the
// per-image final layouts to write back after the frame.
type analysis struct {
	commands     []resourceCommand
	subpassDeps  map[*framegraph.RenderTarget][]vk.SubpassDependency
	table        *dependencyTable
	finalLayouts map[framegraph.ResourceHandle]vk.ImageLayout
	// layoutAt records the image layout established at each command
	// index that uses the image.
	layoutAt map[framegraph.ResourceHandle]map[int]vk.ImageLayout

	// usages is the per-resource usage stream, ordered by command.
	usages map[framegraph.ResourceHandle][]framegraph.UsageRecord
}

// layoutBefore derives the layout a resource holds just before the
// given command: the layout of its latest preceding usage. fallback
// covers resources first used at cmd itself.
func (a *analysis) layoutBefore(h framegraph.ResourceHandle, cmd int, fallback vk.ImageLayout) vk.ImageLayout {
	layout := fallback
	for _, u := range a.usages[h] {
		if u.Command >= cmd {
			break
		}
		if ua := deriveUsageFor(u); ua.layout != 0 {
			layout = ua.layout
		}
	}
	return layout
}

// analyzerConfig carries the frame context the analyzer needs to name
// timeline values and queues without owning either.
type analyzerConfig struct {
	// queueOf maps an encoder index to its queue.
	queueOf func(encoder int) int
	// timelineValue maps an encoder index to the timeline value its
	// command buffer signals.
	timelineValue func(encoder int) uint64
}

// analyze runs the full dependency analysis for one frame.
func analyze(frame *framegraph.Frame, encoders []framegraph.EncoderInfo, info resourceInfo, cfg analyzerConfig) *analysis {
	a := &analysis{
		subpassDeps:  make(map[*framegraph.RenderTarget][]vk.SubpassDependency),
		table:        newDependencyTable(len(encoders)),
		finalLayouts: make(map[framegraph.ResourceHandle]vk.ImageLayout),
		layoutAt:     make(map[framegraph.ResourceHandle]map[int]vk.ImageLayout),
	}

	a.usages = sortedUsages(frame.Usages)
	usages := a.usages
	encoderOf := encoderIndexByCommand(encoders)

	a.buildTable(usages, encoderOf)
	reduced := a.table.transitiveReduction()
	a.emitCrossEncoderEvents(reduced, cfg)
	a.emitIntraEncoderBarriers(frame, encoders, encoderOf, info)
	a.computeFinalLayouts()

	sort.SliceStable(a.commands, func(i, j int) bool {
		return a.commands[i].sortKey() < a.commands[j].sortKey()
	})
	return a
}

// computeFinalLayouts derives each image's end-of-frame layout from the
// highest recorded command index.
func (a *analysis) computeFinalLayouts() {
	for h, m := range a.layoutAt {
		best := -1
		for cmd, layout := range m {
			if cmd > best {
				best = cmd
				a.finalLayouts[h] = layout
			}
		}
	}
}

// sortedUsages returns the usage records grouped by resource, each
// group ordered by command index.
func sortedUsages(usages []framegraph.UsageRecord) map[framegraph.ResourceHandle][]framegraph.UsageRecord {
	byResource := make(map[framegraph.ResourceHandle][]framegraph.UsageRecord)
	for _, u := range usages {
		byResource[u.Resource] = append(byResource[u.Resource], u)
	}
	for h := range byResource {
		group := byResource[h]
		sort.SliceStable(group, func(i, j int) bool { return group[i].Command < group[j].Command })
		byResource[h] = group
	}
	return byResource
}

// encoderIndexByCommand builds a command-index → encoder-index lookup.
func encoderIndexByCommand(encoders []framegraph.EncoderInfo) func(cmd int) int {
	return func(cmd int) int {
		for _, e := range encoders {
			if cmd >= e.FirstCommand && cmd <= e.LastCommand {
				return e.Index
			}
		}
		return -1
	}
}

// buildTable fills D from the per-resource usage streams. The producer
// of an edge is the last conflicting access: the last write for a read;
// for a write, every read since the last write, or the last write itself
// when no read intervened.
func (a *analysis) buildTable(usages map[framegraph.ResourceHandle][]framegraph.UsageRecord, encoderOf func(int) int) {
	for h, group := range usages {
		var lastWrite *framegraph.UsageRecord
		var readsSinceWrite []framegraph.UsageRecord

		for idx := range group {
			u := group[idx]
			uEnc := encoderOf(u.Command)
			if uEnc < 0 {
				continue
			}

			if u.Kind.Writes() {
				conflicts := readsSinceWrite
				if len(conflicts) == 0 && lastWrite != nil {
					conflicts = []framegraph.UsageRecord{*lastWrite}
				}
				for _, p := range conflicts {
					pEnc := encoderOf(p.Command)
					if pEnc >= 0 && pEnc != uEnc {
						a.table.add(uEnc, pEnc, dependencyEdge{
							resource:    h,
							producer:    p,
							consumer:    u,
							signalIndex: p.Command,
							waitIndex:   u.Command,
						})
					}
				}
				lastWrite = &group[idx]
				readsSinceWrite = readsSinceWrite[:0]
			} else {
				if lastWrite != nil {
					pEnc := encoderOf(lastWrite.Command)
					if pEnc >= 0 && pEnc != uEnc {
						a.table.add(uEnc, pEnc, dependencyEdge{
							resource:    h,
							producer:    *lastWrite,
							consumer:    u,
							signalIndex: lastWrite.Command,
							waitIndex:   u.Command,
						})
					}
				}
				readsSinceWrite = append(readsSinceWrite, u)
			}
		}
	}
}

// transitiveReduction returns, per producer encoder, the direct
// consumers that survive reduction: an edge j→i is dropped when i is
// reachable from j through another direct successor.
func (t *dependencyTable) transitiveReduction() map[int][]int {
	succ := make([][]int, t.n)
	for j := 0; j < t.n; j++ {
		succ[j] = t.successors(j)
	}

	// reachable[j] holds every encoder reachable from j via one or
	// more edges.
	reachable := make([]map[int]bool, t.n)
	var visit func(j int) map[int]bool
	visit = func(j int) map[int]bool {
		if reachable[j] != nil {
			return reachable[j]
		}
		set := make(map[int]bool)
		reachable[j] = set
		for _, s := range succ[j] {
			set[s] = true
			for r := range visit(s) {
				set[r] = true
			}
		}
		return set
	}
	for j := 0; j < t.n; j++ {
		visit(j)
	}

	reduced := make(map[int][]int)
	for j := 0; j < t.n; j++ {
		for _, s := range succ[j] {
			redundant := false
			for _, other := range succ[j] {
				if other != s && reachable[other][s] {
					redundant = true
					break
				}
			}
			if !redundant {
				reduced[j] = append(reduced[j], s)
			}
		}
	}
	return reduced
}

// emitCrossEncoderEvents emits one SignalEvent per producing encoder and
// one WaitForEvents per surviving consumer edge, per §4.3.1 of the
// compilation scheme: the signal anchors after the latest producing
// command, each wait before the consumer's earliest dependent command.
func (a *analysis) emitCrossEncoderEvents(reduced map[int][]int, cfg analyzerConfig) {
	for s := 0; s < a.table.n; s++ {
		consumers := reduced[s]
		if len(consumers) == 0 {
			continue
		}

		signalIndex := -1
		var afterStages vk.PipelineStageFlags
		for _, d := range consumers {
			for _, e := range a.table.edges(d, s) {
				if e.signalIndex > signalIndex {
					signalIndex = e.signalIndex
				}
				afterStages |= deriveUsageFor(e.producer).stages
			}
		}
		if signalIndex < 0 {
			continue
		}
		if afterStages == 0 {
			afterStages = vk.PipelineStageBottomOfPipeBit
		}

		a.commands = append(a.commands, resourceCommand{
			kind:        cmdSignalEvent,
			index:       signalIndex,
			order:       orderAfter,
			queue:       cfg.queueOf(s),
			value:       cfg.timelineValue(s),
			afterStages: afterStages,
		})

		for _, d := range consumers {
			edges := a.table.edges(d, s)
			waitIndex := edges[0].waitIndex
			var srcStages, dstStages vk.PipelineStageFlags
			var bufs []bufferBarrier
			var imgs []imageBarrier

			for _, e := range edges {
				if e.waitIndex < waitIndex {
					waitIndex = e.waitIndex
				}
				p := deriveUsageFor(e.producer)
				c := deriveUsageFor(e.consumer)
				srcStages |= p.stages
				dstStages |= c.stages

				if e.resource.Kind() == framegraph.KindTexture {
					imgs = append(imgs, imageBarrier{
						handle:    e.resource,
						srcAccess: p.access,
						dstAccess: c.access,
						oldLayout: a.layoutBefore(e.resource, e.consumer.Command, p.layout),
						newLayout: c.layout,
					})
					a.noteLayout(e.resource, e.consumer.Command, c.layout)
				} else {
					bufs = append(bufs, bufferBarrier{
						handle:    e.resource,
						srcAccess: p.access,
						dstAccess: c.access,
					})
				}
			}
			if srcStages == 0 {
				srcStages = vk.PipelineStageTopOfPipeBit
			}
			if dstStages == 0 {
				dstStages = vk.PipelineStageBottomOfPipeBit
			}

			a.commands = append(a.commands, resourceCommand{
				kind:  cmdWaitForEvents,
				index: waitIndex,
				order: orderBefore,
				waits: []eventWait{{
					queue: cfg.queueOf(s),
					value: cfg.timelineValue(s),
				}},
				srcStages:   srcStages,
				dstStages:   dstStages,
				bufBarriers: bufs,
				imgBarriers: imgs,
			})
		}
	}
}

// noteLayout records the layout an image holds from the given command
// index on.
func (a *analysis) noteLayout(h framegraph.ResourceHandle, cmd int, layout vk.ImageLayout) {
	m := a.layoutAt[h]
	if m == nil {
		m = make(map[int]vk.ImageLayout)
		a.layoutAt[h] = m
	}
	m[cmd] = layout
}
