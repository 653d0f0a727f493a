// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package framegraph

import "testing"

// TestMakeHandleRoundTrip tests that handle parts survive encoding.
func TestMakeHandleRoundTrip(t *testing.T) {
	h := MakeHandle(KindTexture, FlagPersistent|FlagInitialised, 4217)

	if !h.Valid() {
		t.Fatalf("Valid() = false, want true")
	}
	if got := h.Kind(); got != KindTexture {
		t.Errorf("Kind() = %v, want KindTexture", got)
	}
	if got := h.Flags(); got != FlagPersistent|FlagInitialised {
		t.Errorf("Flags() = %v, want persistent|initialised", got)
	}
	if got := h.Index(); got != 4217 {
		t.Errorf("Index() = %d, want 4217", got)
	}
}

// TestNilHandle tests the zero handle.
func TestNilHandle(t *testing.T) {
	if NilHandle.Valid() {
		t.Errorf("NilHandle.Valid() = true, want false")
	}
	if NilHandle.Transient() {
		t.Errorf("NilHandle.Transient() = true, want false")
	}
}

// TestHandlePersistence tests persistent/transient classification.
func TestHandlePersistence(t *testing.T) {
	persistent := MakeHandle(KindBuffer, FlagPersistent, 1)
	transient := MakeHandle(KindBuffer, 0, 2)

	if !persistent.Persistent() || persistent.Transient() {
		t.Errorf("persistent handle misclassified")
	}
	if transient.Persistent() || !transient.Transient() {
		t.Errorf("transient handle misclassified")
	}
}

// TestHandleWindowTexture tests the window flag.
func TestHandleWindowTexture(t *testing.T) {
	h := MakeHandle(KindTexture, FlagWindowHandle, 7)
	if !h.WindowTexture() {
		t.Errorf("WindowTexture() = false, want true")
	}
	if MakeHandle(KindTexture, 0, 7).WindowTexture() {
		t.Errorf("WindowTexture() = true for plain texture")
	}
}

// TestUsageKindWrites tests write classification of usage kinds.
func TestUsageKindWrites(t *testing.T) {
	writes := []UsageKind{
		UsageStorageWrite, UsageColorAttachmentWrite,
		UsageDepthStencilWrite, UsageTransferDestination,
	}
	reads := []UsageKind{
		UsageVertexRead, UsageFragmentRead, UsageConstantBuffer,
		UsageSampledTexture, UsageStorageRead, UsageColorAttachmentRead,
		UsageDepthStencilRead, UsageTransferSource, UsageIndirect,
		UsageIndexBuffer, UsageVertexBuffer, UsagePresent,
	}
	for _, k := range writes {
		if !k.Writes() {
			t.Errorf("UsageKind(%d).Writes() = false, want true", k)
		}
	}
	for _, k := range reads {
		if k.Writes() {
			t.Errorf("UsageKind(%d).Writes() = true, want false", k)
		}
	}
}

// TestTextureDescriptorNormalized tests zero-field clamping.
func TestTextureDescriptorNormalized(t *testing.T) {
	d := TextureDescriptor{Width: 16, Height: 16}.Normalized()
	if d.Depth != 1 || d.MipLevels != 1 || d.ArrayLength != 1 || d.SampleCount != 1 {
		t.Errorf("Normalized() = %+v, want all dimension fields clamped to 1", d)
	}
}
