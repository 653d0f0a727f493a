// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shaderlib

import (
	"testing"

	"github.com/gogpu/framegraph"
)

// spirvBuilder assembles a minimal module for reflection tests.
type spirvBuilder struct {
	words []uint32
}

func newSpirvBuilder() *spirvBuilder {
	return &spirvBuilder{words: []uint32{
		spirvMagic,
		0x00010500, // version 1.5
		0,          // generator
		100,        // bound
		0,          // schema
	}}
}

func (b *spirvBuilder) inst(op uint32, operands ...uint32) {
	b.words = append(b.words, uint32(len(operands)+1)<<16|op)
	b.words = append(b.words, operands...)
}

func stringOperands(s string) []uint32 {
	bytes := append([]byte(s), 0)
	for len(bytes)%4 != 0 {
		bytes = append(bytes, 0)
	}
	words := make([]uint32, len(bytes)/4)
	for i := range words {
		words[i] = uint32(bytes[i*4]) | uint32(bytes[i*4+1])<<8 |
			uint32(bytes[i*4+2])<<16 | uint32(bytes[i*4+3])<<24
	}
	return words
}

// TestReflectSpecConstants tests the constant-index table extraction.
func TestReflectSpecConstants(t *testing.T) {
	b := newSpirvBuilder()
	b.inst(opName, append([]uint32{1}, stringOperands("threshold")...)...)
	b.inst(opDecorate, 1, decorationSpecID, 7)

	refl := Reflect(b.words)
	if got, ok := refl.ConstantIndices["threshold"]; !ok || got != 7 {
		t.Errorf("ConstantIndices[threshold] = %d (%v), want 7", got, ok)
	}
}

// TestReflectBindings tests descriptor binding extraction with storage
// class classification.
func TestReflectBindings(t *testing.T) {
	b := newSpirvBuilder()
	b.inst(opName, append([]uint32{2}, stringOperands("params")...)...)
	b.inst(opDecorate, 2, decorationDescriptorSet, 0)
	b.inst(opDecorate, 2, decorationBinding, 3)
	b.inst(opVariable, 9, 2, storageClassUniform)

	b.inst(opName, append([]uint32{4}, stringOperands("grid")...)...)
	b.inst(opDecorate, 4, decorationDescriptorSet, 0)
	b.inst(opDecorate, 4, decorationBinding, 1)
	b.inst(opVariable, 9, 4, storageClassStorageBuffer)

	refl := Reflect(b.words)
	if len(refl.Bindings) != 2 {
		t.Fatalf("bindings = %d, want 2", len(refl.Bindings))
	}

	byName := make(map[string]framegraph.BindingReflection)
	for _, binding := range refl.Bindings {
		byName[binding.Name] = binding
	}

	params := byName["params"]
	if params.Binding != 3 || params.Kind != framegraph.KindBuffer || !params.ReadOnly {
		t.Errorf("params = %+v, want read-only buffer at binding 3", params)
	}
	grid := byName["grid"]
	if grid.Binding != 1 || grid.Kind != framegraph.KindBuffer || grid.ReadOnly {
		t.Errorf("grid = %+v, want writable buffer at binding 1", grid)
	}
}

// TestReflectTextureBinding tests UniformConstant classification.
func TestReflectTextureBinding(t *testing.T) {
	b := newSpirvBuilder()
	b.inst(opDecorate, 6, decorationDescriptorSet, 1)
	b.inst(opDecorate, 6, decorationBinding, 0)
	b.inst(opVariable, 9, 6, storageClassUniformConstant)

	refl := Reflect(b.words)
	if len(refl.Bindings) != 1 {
		t.Fatalf("bindings = %d, want 1", len(refl.Bindings))
	}
	if refl.Bindings[0].Kind != framegraph.KindTexture || refl.Bindings[0].Set != 1 {
		t.Errorf("binding = %+v, want texture in set 1", refl.Bindings[0])
	}
}

// TestWordsFromBytesRejectsBadMagic tests module validation.
func TestWordsFromBytesRejectsBadMagic(t *testing.T) {
	data := make([]byte, 24)
	if _, err := wordsFromBytes(data); err == nil {
		t.Errorf("wordsFromBytes accepted a module with bad magic")
	}
	if _, err := wordsFromBytes(data[:7]); err == nil {
		t.Errorf("wordsFromBytes accepted a truncated module")
	}
}
