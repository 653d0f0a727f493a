// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package framegraph

import "fmt"

// ResourceKind identifies what class of GPU object a handle refers to.
type ResourceKind uint8

// Resource kinds.
const (
	KindBuffer ResourceKind = iota
	KindTexture
	KindArgumentBuffer
	KindSampler
)

func (k ResourceKind) String() string {
	switch k {
	case KindBuffer:
		return "buffer"
	case KindTexture:
		return "texture"
	case KindArgumentBuffer:
		return "argument-buffer"
	case KindSampler:
		return "sampler"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ResourceFlags carry creation-time properties of a resource handle.
type ResourceFlags uint8

// Resource flags.
const (
	// FlagPersistent marks a resource that outlives the frame it was
	// created in. Non-persistent resources are transient and cycle
	// through the pool allocator.
	FlagPersistent ResourceFlags = 1 << iota

	// FlagWindowHandle marks a texture bound to a swapchain image.
	FlagWindowHandle

	// FlagManagedStorage marks a buffer whose contents are mirrored in
	// host memory and flushed explicitly.
	FlagManagedStorage

	// FlagInitialised marks a resource whose contents are defined before
	// its first use in a frame. Resources without it start from an
	// undefined state and take a full initialization barrier.
	FlagInitialised
)

// ResourceHandle is an opaque 64-bit identifier for a GPU resource.
// Handles are value-copyable; the registry that issued a handle is its
// exclusive owner.
//
// Layout: bits 0..31 index, bits 32..39 flags, bits 40..43 kind, bit 63
// valid marker. The remaining bits are reserved.
type ResourceHandle uint64

// NilHandle is the zero handle. It never refers to a resource.
const NilHandle ResourceHandle = 0

const (
	handleIndexMask  = 0xffffffff
	handleFlagsShift = 32
	handleKindShift  = 40
	handleValidBit   = 1 << 63
)

// MakeHandle builds a handle from its parts.
func MakeHandle(kind ResourceKind, flags ResourceFlags, index uint32) ResourceHandle {
	return ResourceHandle(handleValidBit |
		uint64(kind)<<handleKindShift |
		uint64(flags)<<handleFlagsShift |
		uint64(index))
}

// Kind returns the resource class encoded in the handle.
func (h ResourceHandle) Kind() ResourceKind {
	return ResourceKind(h >> handleKindShift & 0xf)
}

// Flags returns the creation-time flags encoded in the handle.
func (h ResourceHandle) Flags() ResourceFlags {
	return ResourceFlags(h >> handleFlagsShift & 0xff)
}

// Index returns the registry slot encoded in the handle.
func (h ResourceHandle) Index() uint32 {
	return uint32(h & handleIndexMask)
}

// Valid reports whether the handle was produced by MakeHandle.
func (h ResourceHandle) Valid() bool {
	return h&handleValidBit != 0
}

// Persistent reports whether the handle refers to a persistent resource.
func (h ResourceHandle) Persistent() bool {
	return h.Flags()&FlagPersistent != 0
}

// Transient reports whether the handle refers to a per-frame resource.
func (h ResourceHandle) Transient() bool {
	return h.Valid() && h.Flags()&FlagPersistent == 0
}

// WindowTexture reports whether the handle is bound to a swapchain.
func (h ResourceHandle) WindowTexture() bool {
	return h.Flags()&FlagWindowHandle != 0
}

func (h ResourceHandle) String() string {
	if !h.Valid() {
		return "handle(nil)"
	}
	return fmt.Sprintf("%s#%d", h.Kind(), h.Index())
}
