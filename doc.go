// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package framegraph defines the types exchanged between a frame-graph
// frontend and a GPU backend that compiles and executes it.
//
// A frontend describes one frame as a linear list of passes, the commands
// inside each pass, and per-command resource usages. A backend (see the
// vulkan sub-package) lowers that description into correctly synchronized
// GPU command buffers and submits them.
//
// The types in this package are backend-neutral: resources are referred to
// by opaque handles, formats and usage bitmasks come from gputypes, and
// nothing here depends on a particular graphics API.
package framegraph
