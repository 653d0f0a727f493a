// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/framegraph"
	"github.com/gogpu/framegraph/vulkan/vk"
)

// fakeRecorder captures recorded commands as a readable op trace.
type fakeRecorder struct {
	ops []string

	transitions []fakeTransition
	blits       []fakeBlit
}

type fakeTransition struct {
	level    uint32
	oldState vk.ImageLayout
	newState vk.ImageLayout
}

type fakeBlit struct {
	srcLevel, dstLevel     uint32
	dstWidth, dstHeight    int32
}

func (r *fakeRecorder) log(format string, args ...any) {
	r.ops = append(r.ops, fmt.Sprintf(format, args...))
}

func (r *fakeRecorder) Begin() error { r.log("begin"); return nil }
func (r *fakeRecorder) End() error   { r.log("end"); return nil }

func (r *fakeRecorder) PipelineBarrier(src, dst vk.PipelineStageFlags, dep vk.DependencyFlags,
	mem []vk.MemoryBarrier, buf []vk.BufferMemoryBarrier, img []vk.ImageMemoryBarrier) {
	r.log("barrier buf=%d img=%d", len(buf), len(img))
	for _, b := range img {
		r.transitions = append(r.transitions, fakeTransition{
			level:    b.SubresourceRange.BaseMipLevel,
			oldState: b.OldLayout,
			newState: b.NewLayout,
		})
	}
}

func (r *fakeRecorder) BeginRenderPass(*vk.RenderPassBeginInfo) { r.log("beginRenderPass") }
func (r *fakeRecorder) NextSubpass()                            { r.log("nextSubpass") }
func (r *fakeRecorder) EndRenderPass()                          { r.log("endRenderPass") }

func (r *fakeRecorder) BindPipeline(bp vk.PipelineBindPoint, p vk.Pipeline) { r.log("bindPipeline") }
func (r *fakeRecorder) BindDescriptorSet(vk.PipelineBindPoint, vk.PipelineLayout, vk.DescriptorSet) {
	r.log("bindSet")
}
func (r *fakeRecorder) BindVertexBuffer(slot uint32, b vk.Buffer, off uint64) { r.log("bindVertex") }
func (r *fakeRecorder) BindIndexBuffer(vk.Buffer, uint64, vk.IndexType)      { r.log("bindIndex") }
func (r *fakeRecorder) SetViewport(vk.Viewport)                              { r.log("viewport") }
func (r *fakeRecorder) SetScissor(vk.Rect2D)                                 { r.log("scissor") }
func (r *fakeRecorder) PushConstants(vk.PipelineLayout, vk.ShaderStageFlags, uint32, []byte) {
	r.log("push")
}

func (r *fakeRecorder) Draw(v, i, fv, fi uint32) { r.log("draw %d", v) }
func (r *fakeRecorder) DrawIndexed(ic, inst, fi uint32, bv int32, finst uint32) {
	r.log("drawIndexed %d", ic)
}
func (r *fakeRecorder) DrawIndirect(vk.Buffer, uint64)        { r.log("drawIndirect") }
func (r *fakeRecorder) DrawIndexedIndirect(vk.Buffer, uint64) { r.log("drawIndexedIndirect") }
func (r *fakeRecorder) Dispatch(x, y, z uint32)               { r.log("dispatch %d,%d,%d", x, y, z) }
func (r *fakeRecorder) DispatchIndirect(vk.Buffer, uint64)    { r.log("dispatchIndirect") }

func (r *fakeRecorder) CopyBuffer(src, dst vk.Buffer, regions []vk.BufferCopy) {
	r.log("copyBuffer %d", len(regions))
}
func (r *fakeRecorder) CopyImage(vk.Image, vk.ImageLayout, vk.Image, vk.ImageLayout, []vk.ImageCopy) {
	r.log("copyImage")
}

func (r *fakeRecorder) BlitImage(src vk.Image, sl vk.ImageLayout, dst vk.Image, dl vk.ImageLayout, regions []vk.ImageBlit, f vk.Filter) {
	r.log("blit")
	for _, region := range regions {
		r.blits = append(r.blits, fakeBlit{
			srcLevel:  region.SrcSubresource.MipLevel,
			dstLevel:  region.DstSubresource.MipLevel,
			dstWidth:  region.DstOffsets[1].X,
			dstHeight: region.DstOffsets[1].Y,
		})
	}
}

func (r *fakeRecorder) CopyBufferToImage(vk.Buffer, vk.Image, vk.ImageLayout, []vk.BufferImageCopy) {
	r.log("copyBufferToImage")
}
func (r *fakeRecorder) CopyImageToBuffer(vk.Image, vk.ImageLayout, vk.Buffer, []vk.BufferImageCopy) {
	r.log("copyImageToBuffer")
}
func (r *fakeRecorder) FillBuffer(b vk.Buffer, off, size uint64, data uint32) {
	r.log("fill %d+%d", off, size)
}

func (r *fakeRecorder) BeginDebugLabel(name string) { r.log("label+ %s", name) }
func (r *fakeRecorder) EndDebugLabel()              { r.log("label-") }
func (r *fakeRecorder) InsertDebugLabel(name string) {
	r.log("label %s", name)
}

func (r *fakeRecorder) Handle() vk.CommandBuffer { return 0 }

// fakeResolver resolves handles from in-memory maps.
type fakeResolver struct {
	images  map[framegraph.ResourceHandle]*imageResource
	buffers map[framegraph.ResourceHandle]*bufferResource
}

func (f *fakeResolver) image(h framegraph.ResourceHandle) (*imageResource, bool) {
	res, ok := f.images[h]
	return res, ok
}

func (f *fakeResolver) buffer(h framegraph.ResourceHandle) (*bufferResource, bool) {
	res, ok := f.buffers[h]
	return res, ok
}

func (f *fakeResolver) sampler(framegraph.ResourceHandle) (*samplerResource, bool) {
	return nil, false
}

func (f *fakeResolver) argument(framegraph.ResourceHandle) (*argumentBuffer, bool) {
	return nil, false
}

// TestGenerateMipmapsExpansion covers the blit chain of a four-level
// texture: three blits with halved extents, every level ending in
// SHADER_READ_ONLY_OPTIMAL.
func TestGenerateMipmapsExpansion(t *testing.T) {
	h := framegraph.MakeHandle(framegraph.KindTexture, 0, 1)
	res := &imageResource{
		desc: framegraph.TextureDescriptor{
			Width:     64,
			Height:    64,
			MipLevels: 4,
			Format:    gputypes.TextureFormatRGBA8Unorm,
			Usage:     gputypes.TextureUsageCopySrc | gputypes.TextureUsageCopyDst,
		}.Normalized(),
		image:         vk.Image(1),
		currentLayout: vk.ImageLayoutTransferDstOptimal,
	}

	rec := &fakeRecorder{}
	d := &encoderDispatcher{
		resolver: &fakeResolver{images: map[framegraph.ResourceHandle]*imageResource{h: res}},
		rec:      rec,
	}

	if err := d.generateMipmaps(&framegraph.Command{Op: framegraph.OpGenerateMipmaps, Resource: h}); err != nil {
		t.Fatalf("generateMipmaps: %v", err)
	}

	if len(rec.blits) != 3 {
		t.Fatalf("blit count = %d, want 3", len(rec.blits))
	}
	wantExtents := [][2]int32{{32, 32}, {16, 16}, {8, 8}}
	for i, blit := range rec.blits {
		if blit.srcLevel != uint32(i) || blit.dstLevel != uint32(i+1) {
			t.Errorf("blit %d levels %d->%d, want %d->%d", i, blit.srcLevel, blit.dstLevel, i, i+1)
		}
		if blit.dstWidth != wantExtents[i][0] || blit.dstHeight != wantExtents[i][1] {
			t.Errorf("blit %d extent %dx%d, want %dx%d",
				i, blit.dstWidth, blit.dstHeight, wantExtents[i][0], wantExtents[i][1])
		}
	}

	// Every level must end in SHADER_READ_ONLY_OPTIMAL; intermediate
	// levels pass through TRANSFER_DST then TRANSFER_SRC.
	final := make(map[uint32]vk.ImageLayout)
	sawTransferDst := make(map[uint32]bool)
	for _, tr := range rec.transitions {
		final[tr.level] = tr.newState
		if tr.newState == vk.ImageLayoutTransferDstOptimal {
			sawTransferDst[tr.level] = true
		}
	}
	for level := uint32(0); level < 4; level++ {
		if final[level] != vk.ImageLayoutShaderReadOnlyOptimal {
			t.Errorf("level %d final layout = %v, want SHADER_READ_ONLY_OPTIMAL", level, final[level])
		}
	}
	for level := uint32(1); level < 4; level++ {
		if !sawTransferDst[level] {
			t.Errorf("level %d never passed through TRANSFER_DST_OPTIMAL", level)
		}
	}

	if res.currentLayout != vk.ImageLayoutShaderReadOnlyOptimal {
		t.Errorf("currentLayout = %v, want SHADER_READ_ONLY_OPTIMAL", res.currentLayout)
	}
}

// TestGenerateMipmapsSingleLevel covers the boundary: one level means
// no barriers and no blits.
func TestGenerateMipmapsSingleLevel(t *testing.T) {
	h := framegraph.MakeHandle(framegraph.KindTexture, 0, 1)
	res := &imageResource{
		desc:  framegraph.TextureDescriptor{Width: 64, Height: 64, MipLevels: 1}.Normalized(),
		image: vk.Image(1),
	}

	rec := &fakeRecorder{}
	d := &encoderDispatcher{
		resolver: &fakeResolver{images: map[framegraph.ResourceHandle]*imageResource{h: res}},
		rec:      rec,
	}

	if err := d.generateMipmaps(&framegraph.Command{Op: framegraph.OpGenerateMipmaps, Resource: h}); err != nil {
		t.Fatalf("generateMipmaps: %v", err)
	}
	if len(rec.ops) != 0 {
		t.Errorf("ops = %v, want none for a single-level texture", rec.ops)
	}
}

// TestFillBufferZeroLength covers the zero-length no-op boundary.
func TestFillBufferZeroLength(t *testing.T) {
	h := framegraph.MakeHandle(framegraph.KindBuffer, 0, 1)
	rec := &fakeRecorder{}
	d := &encoderDispatcher{
		resolver: &fakeResolver{buffers: map[framegraph.ResourceHandle]*bufferResource{
			h: {buffer: vk.Buffer(1), desc: framegraph.BufferDescriptor{Size: 64}},
		}},
		rec: rec,
	}

	if err := d.fillBuffer(&framegraph.Command{Op: framegraph.OpFillBuffer, Resource: h}); err != nil {
		t.Fatalf("fillBuffer: %v", err)
	}
	if len(rec.ops) != 0 {
		t.Errorf("ops = %v, want none for zero-length fill", rec.ops)
	}
}

// TestSynchronizeIsFatal covers the unsupported managed-storage
// synchronize opcodes: the dispatcher fails rather than falling back.
func TestSynchronizeIsFatal(t *testing.T) {
	d := &encoderDispatcher{
		frame:    &framegraph.Frame{},
		resolver: &fakeResolver{},
		rec:      &fakeRecorder{},
	}

	err := d.execute(framegraph.EncoderInfo{}, &framegraph.Command{Op: framegraph.OpSynchronizeBuffer}, 0)
	if !errors.Is(err, framegraph.ErrUnsupported) {
		t.Errorf("execute(synchronizeBuffer) = %v, want ErrUnsupported", err)
	}
}

// TestEncodeLinearDrainOrder covers the "before" half of the dispatcher
// contract: resource commands anchored before a frame command are
// applied ahead of it, and their waits reach the encoder's sync.
func TestEncodeLinearDrainOrder(t *testing.T) {
	h := framegraph.MakeHandle(framegraph.KindBuffer, 0, 1)
	frame := &framegraph.Frame{
		Commands: []framegraph.Command{{
			Op:       framegraph.OpFillBuffer,
			Resource: h,
			Range:    framegraph.Range{Size: 16},
		}},
	}
	a := &analysis{
		commands: []resourceCommand{
			{
				kind:        cmdPipelineBarrier,
				index:       0,
				order:       orderBefore,
				srcStages:   vk.PipelineStageTransferBit,
				dstStages:   vk.PipelineStageTransferBit,
				bufBarriers: []bufferBarrier{{handle: h, srcAccess: vk.AccessTransferWriteBit, dstAccess: vk.AccessTransferReadBit}},
			},
			{
				kind:      cmdWaitForEvents,
				index:     0,
				order:     orderBefore,
				waits:     []eventWait{{queue: 0, value: 7}},
				srcStages: vk.PipelineStageComputeShaderBit,
				dstStages: vk.PipelineStageTransferBit,
			},
		},
	}

	rec := &fakeRecorder{}
	resolver := &fakeResolver{buffers: map[framegraph.ResourceHandle]*bufferResource{
		h: {buffer: vk.Buffer(1), desc: framegraph.BufferDescriptor{Size: 64}},
	}}

	encSync, err := encodeEncoder(frame, a, framegraph.EncoderInfo{
		Kind:         framegraph.EncoderBlit,
		FirstCommand: 0,
		LastCommand:  0,
	}, resolver, nil, nil, rec)
	if err != nil {
		t.Fatalf("encodeEncoder: %v", err)
	}

	want := []string{"barrier buf=1 img=0", "fill 0+16"}
	if len(rec.ops) != len(want) {
		t.Fatalf("ops = %v, want %v", rec.ops, want)
	}
	for i := range want {
		if rec.ops[i] != want[i] {
			t.Errorf("ops[%d] = %q, want %q", i, rec.ops[i], want[i])
		}
	}

	if len(encSync.waits) != 1 || encSync.waits[0].value != 7 {
		t.Errorf("sync waits = %v, want one wait on value 7", encSync.waits)
	}
	if encSync.waitDstStages != vk.PipelineStageTransferBit {
		t.Errorf("waitDstStages = %#x, want TRANSFER", encSync.waitDstStages)
	}
}
