// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package shaderlib is the shader-library collaborator consumed by the
// framegraph backends.
//
// A library is a directory of entry points, one file per function:
// name.spv holds a compiled SPIR-V module, name.wgsl holds WGSL source
// compiled on first use through naga. Reflection (specialization
// constant IDs, descriptor bindings) is extracted from the SPIR-V
// decorations.
package shaderlib

import (
	"encoding/binary"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gogpu/naga"

	"github.com/gogpu/framegraph"
)

// Library loads and caches shader functions from a directory.
type Library struct {
	dir string

	mu    sync.RWMutex
	funcs map[string]*framegraph.ShaderFunction
}

// Open opens a shader library. path is a plain directory path or a
// file:// URL, typically taken from the backend configuration.
func Open(path string) (*Library, error) {
	if strings.HasPrefix(path, "file://") {
		u, err := url.Parse(path)
		if err != nil {
			return nil, fmt.Errorf("shaderlib: bad library URL %q: %w", path, err)
		}
		path = u.Path
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("shaderlib: library not found: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("shaderlib: library path %q is not a directory", path)
	}
	return &Library{
		dir:   path,
		funcs: make(map[string]*framegraph.ShaderFunction),
	}, nil
}

// Function resolves an entry point by name, compiling WGSL sources
// through naga when no precompiled module exists.
func (l *Library) Function(name string) (*framegraph.ShaderFunction, error) {
	l.mu.RLock()
	fn, ok := l.funcs[name]
	l.mu.RUnlock()
	if ok {
		return fn, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if fn, ok := l.funcs[name]; ok {
		return fn, nil
	}

	spirv, err := l.load(name)
	if err != nil {
		return nil, err
	}
	fn = &framegraph.ShaderFunction{
		Name:       name,
		SPIRV:      spirv,
		Reflection: Reflect(spirv),
	}
	l.funcs[name] = fn
	return fn, nil
}

func (l *Library) load(name string) ([]uint32, error) {
	spvPath := filepath.Join(l.dir, name+".spv")
	if data, err := os.ReadFile(spvPath); err == nil {
		return wordsFromBytes(data)
	}

	wgslPath := filepath.Join(l.dir, name+".wgsl")
	source, err := os.ReadFile(wgslPath)
	if err != nil {
		return nil, fmt.Errorf("shaderlib: function %q not in library: %w", name, err)
	}
	spirvBytes, err := naga.Compile(string(source))
	if err != nil {
		return nil, fmt.Errorf("shaderlib: compiling %q: %w", name, err)
	}
	return wordsFromBytes(spirvBytes)
}

const spirvMagic = 0x07230203

func wordsFromBytes(data []byte) ([]uint32, error) {
	if len(data) < 20 || len(data)%4 != 0 {
		return nil, fmt.Errorf("shaderlib: truncated SPIR-V module (%d bytes)", len(data))
	}
	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	if words[0] != spirvMagic {
		return nil, fmt.Errorf("shaderlib: bad SPIR-V magic %#x", words[0])
	}
	return words, nil
}

// SPIR-V opcodes and decorations consumed by reflection.
const (
	opName     = 5
	opDecorate = 71
	opVariable = 59

	decorationSpecID        = 1
	decorationBinding       = 33
	decorationDescriptorSet = 34

	storageClassUniformConstant = 0
	storageClassUniform         = 2
	storageClassStorageBuffer   = 12
)

// Reflect extracts the specialization-constant index table and the
// descriptor bindings from a SPIR-V module.
func Reflect(words []uint32) *framegraph.PipelineReflection {
	refl := &framegraph.PipelineReflection{
		ConstantIndices: make(map[string]uint32),
	}
	if len(words) < 5 || words[0] != spirvMagic {
		return refl
	}

	names := make(map[uint32]string)
	specIDs := make(map[uint32]uint32)
	type binding struct {
		set, binding  uint32
		hasSet, hasBd bool
	}
	bindings := make(map[uint32]*binding)
	storage := make(map[uint32]uint32)

	for i := 5; i < len(words); {
		word := words[i]
		op := word & 0xffff
		count := int(word >> 16)
		if count == 0 || i+count > len(words) {
			break
		}
		operands := words[i+1 : i+count]

		switch op {
		case opName:
			if len(operands) >= 2 {
				names[operands[0]] = decodeString(operands[1:])
			}
		case opDecorate:
			if len(operands) >= 3 {
				target, decoration, value := operands[0], operands[1], operands[2]
				switch decoration {
				case decorationSpecID:
					specIDs[target] = value
				case decorationBinding:
					b := bindings[target]
					if b == nil {
						b = &binding{}
						bindings[target] = b
					}
					b.binding, b.hasBd = value, true
				case decorationDescriptorSet:
					b := bindings[target]
					if b == nil {
						b = &binding{}
						bindings[target] = b
					}
					b.set, b.hasSet = value, true
				}
			}
		case opVariable:
			if len(operands) >= 3 {
				storage[operands[1]] = operands[2]
			}
		}
		i += count
	}

	for id, spec := range specIDs {
		if name, ok := names[id]; ok && name != "" {
			refl.ConstantIndices[name] = spec
		}
	}

	for id, b := range bindings {
		if !b.hasSet && !b.hasBd {
			continue
		}
		kind := framegraph.KindBuffer
		readOnly := false
		switch storage[id] {
		case storageClassUniformConstant:
			kind = framegraph.KindTexture
			readOnly = true
		case storageClassUniform:
			readOnly = true
		case storageClassStorageBuffer:
		}
		refl.Bindings = append(refl.Bindings, framegraph.BindingReflection{
			Name:     names[id],
			Set:      b.set,
			Binding:  b.binding,
			Kind:     kind,
			ReadOnly: readOnly,
		})
	}
	return refl
}

func decodeString(words []uint32) string {
	var sb strings.Builder
	for _, w := range words {
		for shift := 0; shift < 32; shift += 8 {
			c := byte(w >> shift)
			if c == 0 {
				return sb.String()
			}
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
