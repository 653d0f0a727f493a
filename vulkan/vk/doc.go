// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package vk provides the Vulkan bindings the framegraph backend uses,
// as Pure Go with goffi for FFI calls — no CGO.
//
// Function pointers are loaded dynamically from vulkan-1.dll (Windows),
// libvulkan.so.1 (Linux), or MoltenVK (macOS) in three stages:
//
//  1. LoadGlobal() — functions callable without an instance
//  2. LoadInstance(instance) — instance-level functions and WSI queries
//  3. LoadDevice(device) — everything recorded or submitted
//
// # goffi Calling Convention
//
// goffi expects args[] to contain pointers to WHERE argument values are
// stored, NOT the values themselves. For scalar types pass a pointer to
// the value's storage; for pointer arguments store the pointer in a
// variable and pass the variable's address (pointer TO the pointer).
//
// Struct layouts in this package mirror the C ABI: field order matches
// vk.xml and explicit padding is inserted where C would pad. Unions
// (VkClearValue) are byte arrays with typed constructors.
package vk
