// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"fmt"

	"github.com/gogpu/framegraph/vulkan/vk"
)

// vkError wraps a Vulkan result code with the call that produced it.
type vkError struct {
	call   string
	result vk.Result
}

func (e *vkError) Error() string {
	return fmt.Sprintf("vulkan: %s failed: %s (%d)", e.call, vkResultToString(e.result), int32(e.result))
}

func newVkError(call string, result vk.Result) error {
	return &vkError{call: call, result: result}
}

func vkResultToString(r vk.Result) string {
	switch r {
	case vk.Success:
		return "VK_SUCCESS"
	case vk.NotReady:
		return "VK_NOT_READY"
	case vk.Timeout:
		return "VK_TIMEOUT"
	case vk.Incomplete:
		return "VK_INCOMPLETE"
	case vk.ErrorOutOfHostMemory:
		return "VK_ERROR_OUT_OF_HOST_MEMORY"
	case vk.ErrorOutOfDeviceMemory:
		return "VK_ERROR_OUT_OF_DEVICE_MEMORY"
	case vk.ErrorInitializationFailed:
		return "VK_ERROR_INITIALIZATION_FAILED"
	case vk.ErrorDeviceLost:
		return "VK_ERROR_DEVICE_LOST"
	case vk.ErrorExtensionNotPresent:
		return "VK_ERROR_EXTENSION_NOT_PRESENT"
	case vk.ErrorSurfaceLostKHR:
		return "VK_ERROR_SURFACE_LOST_KHR"
	case vk.ErrorOutOfDateKHR:
		return "VK_ERROR_OUT_OF_DATE_KHR"
	case vk.SuboptimalKHR:
		return "VK_SUBOPTIMAL_KHR"
	default:
		return "VK_UNKNOWN"
	}
}
