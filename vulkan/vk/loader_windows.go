// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package vk

import "golang.org/x/sys/windows"

// libraryPresent probes for the Vulkan runtime before handing the name
// to goffi, so a missing installation reports a clean error instead of a
// loader failure.
func libraryPresent() bool {
	dll := windows.NewLazySystemDLL(vulkanLibraryName())
	return dll.Load() == nil
}
