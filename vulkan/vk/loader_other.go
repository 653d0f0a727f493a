// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build !windows

package vk

// libraryPresent is a no-op off Windows; ffi.LoadLibrary reports missing
// libraries itself via dlopen.
func libraryPresent() bool { return true }
