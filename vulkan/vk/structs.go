// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import (
	"math"
	"unsafe"
)

// Struct layouts mirror the C ABI on 64-bit platforms. Field order
// follows vk.xml; explicit padding appears wherever Go's natural
// alignment would differ from C's.

// Offset2D is VkOffset2D.
type Offset2D struct {
	X int32
	Y int32
}

// Extent2D is VkExtent2D.
type Extent2D struct {
	Width  uint32
	Height uint32
}

// Offset3D is VkOffset3D.
type Offset3D struct {
	X int32
	Y int32
	Z int32
}

// Extent3D is VkExtent3D.
type Extent3D struct {
	Width  uint32
	Height uint32
	Depth  uint32
}

// Rect2D is VkRect2D.
type Rect2D struct {
	Offset Offset2D
	Extent Extent2D
}

// Viewport is VkViewport.
type Viewport struct {
	X        float32
	Y        float32
	Width    float32
	Height   float32
	MinDepth float32
	MaxDepth float32
}

// ApplicationInfo is VkApplicationInfo.
type ApplicationInfo struct {
	SType              StructureType
	PNext              uintptr
	PApplicationName   *byte
	ApplicationVersion uint32
	PEngineName        *byte
	EngineVersion      uint32
	APIVersion         uint32
}

// InstanceCreateInfo is VkInstanceCreateInfo.
type InstanceCreateInfo struct {
	SType                   StructureType
	PNext                   uintptr
	Flags                   InstanceCreateFlags
	PApplicationInfo        *ApplicationInfo
	EnabledLayerCount       uint32
	PpEnabledLayerNames     **byte
	EnabledExtensionCount   uint32
	PpEnabledExtensionNames **byte
}

// DeviceQueueCreateInfo is VkDeviceQueueCreateInfo.
type DeviceQueueCreateInfo struct {
	SType            StructureType
	PNext            uintptr
	Flags            DeviceQueueCreateFlags
	QueueFamilyIndex uint32
	QueueCount       uint32
	PQueuePriorities *float32
}

// DeviceCreateInfo is VkDeviceCreateInfo.
type DeviceCreateInfo struct {
	SType                   StructureType
	PNext                   uintptr
	Flags                   DeviceCreateFlags
	QueueCreateInfoCount    uint32
	PQueueCreateInfos       *DeviceQueueCreateInfo
	EnabledLayerCount       uint32
	PpEnabledLayerNames     **byte
	EnabledExtensionCount   uint32
	PpEnabledExtensionNames **byte
	PEnabledFeatures        uintptr
}

// StructureTypePhysicalDeviceTimelineSemaphoreFeatures is the sType of
// PhysicalDeviceTimelineSemaphoreFeatures.
const StructureTypePhysicalDeviceTimelineSemaphoreFeatures StructureType = 1000207000

// PhysicalDeviceTimelineSemaphoreFeatures is
// VkPhysicalDeviceTimelineSemaphoreFeatures, chained into DeviceCreateInfo
// to enable timeline semaphores.
type PhysicalDeviceTimelineSemaphoreFeatures struct {
	SType             StructureType
	PNext             uintptr
	TimelineSemaphore Bool32
	_                 [4]byte
}

// PhysicalDeviceLimits is kept opaque: the backend allocates it for the
// driver to fill but reads nothing from it.
type PhysicalDeviceLimits [504]byte

// PhysicalDeviceSparseProperties is opaque for the same reason.
type PhysicalDeviceSparseProperties [20]byte

// PhysicalDeviceProperties is VkPhysicalDeviceProperties.
type PhysicalDeviceProperties struct {
	APIVersion        uint32
	DriverVersion     uint32
	VendorID          uint32
	DeviceID          uint32
	DeviceType        PhysicalDeviceType
	DeviceName        [256]byte
	PipelineCacheUUID [16]byte
	_                 [4]byte
	Limits            PhysicalDeviceLimits
	SparseProperties  PhysicalDeviceSparseProperties
	_                 [4]byte
}

// QueueFamilyProperties is VkQueueFamilyProperties.
type QueueFamilyProperties struct {
	QueueFlags                  QueueFlags
	QueueCount                  uint32
	TimestampValidBits          uint32
	MinImageTransferGranularity Extent3D
}

// ExtensionProperties is VkExtensionProperties.
type ExtensionProperties struct {
	ExtensionName [256]byte
	SpecVersion   uint32
}

// MemoryType is VkMemoryType.
type MemoryType struct {
	PropertyFlags MemoryPropertyFlags
	HeapIndex     uint32
}

// MemoryHeap is VkMemoryHeap.
type MemoryHeap struct {
	Size  DeviceSize
	Flags MemoryHeapFlags
	_     [4]byte
}

// PhysicalDeviceMemoryProperties is VkPhysicalDeviceMemoryProperties.
type PhysicalDeviceMemoryProperties struct {
	MemoryTypeCount uint32
	MemoryTypes     [32]MemoryType
	MemoryHeapCount uint32
	MemoryHeaps     [16]MemoryHeap
}

// MemoryRequirements is VkMemoryRequirements.
type MemoryRequirements struct {
	Size           DeviceSize
	Alignment      DeviceSize
	MemoryTypeBits uint32
	_              [4]byte
}

// MemoryAllocateInfo is VkMemoryAllocateInfo.
type MemoryAllocateInfo struct {
	SType           StructureType
	PNext           uintptr
	AllocationSize  DeviceSize
	MemoryTypeIndex uint32
	_               [4]byte
}

// MappedMemoryRange is VkMappedMemoryRange.
type MappedMemoryRange struct {
	SType  StructureType
	PNext  uintptr
	Memory DeviceMemory
	Offset DeviceSize
	Size   DeviceSize
}

// BufferCreateInfo is VkBufferCreateInfo.
type BufferCreateInfo struct {
	SType                 StructureType
	PNext                 uintptr
	Flags                 BufferCreateFlags
	Size                  DeviceSize
	Usage                 BufferUsageFlags
	SharingMode           SharingMode
	QueueFamilyIndexCount uint32
	PQueueFamilyIndices   *uint32
}

// ImageCreateInfo is VkImageCreateInfo.
type ImageCreateInfo struct {
	SType                 StructureType
	PNext                 uintptr
	Flags                 ImageCreateFlags
	ImageType             ImageType
	Format                Format
	Extent                Extent3D
	MipLevels             uint32
	ArrayLayers           uint32
	Samples               SampleCountFlagBits
	Tiling                ImageTiling
	Usage                 ImageUsageFlags
	SharingMode           SharingMode
	QueueFamilyIndexCount uint32
	PQueueFamilyIndices   *uint32
	InitialLayout         ImageLayout
	_                     [4]byte
}

// ComponentMapping is VkComponentMapping.
type ComponentMapping struct {
	R ComponentSwizzle
	G ComponentSwizzle
	B ComponentSwizzle
	A ComponentSwizzle
}

// ImageSubresourceRange is VkImageSubresourceRange.
type ImageSubresourceRange struct {
	AspectMask     ImageAspectFlags
	BaseMipLevel   uint32
	LevelCount     uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

// ImageViewCreateInfo is VkImageViewCreateInfo.
type ImageViewCreateInfo struct {
	SType            StructureType
	PNext            uintptr
	Flags            ImageViewCreateFlags
	Image            Image
	ViewType         ImageViewType
	Format           Format
	Components       ComponentMapping
	SubresourceRange ImageSubresourceRange
	_                [4]byte
}

// SamplerCreateInfo is VkSamplerCreateInfo.
type SamplerCreateInfo struct {
	SType                   StructureType
	PNext                   uintptr
	Flags                   SamplerCreateFlags
	MagFilter               Filter
	MinFilter               Filter
	MipmapMode              SamplerMipmapMode
	AddressModeU            SamplerAddressMode
	AddressModeV            SamplerAddressMode
	AddressModeW            SamplerAddressMode
	MipLodBias              float32
	AnisotropyEnable        Bool32
	MaxAnisotropy           float32
	CompareEnable           Bool32
	CompareOp               CompareOp
	MinLod                  float32
	MaxLod                  float32
	BorderColor             BorderColor
	UnnormalizedCoordinates Bool32
}

// MemoryBarrier is VkMemoryBarrier.
type MemoryBarrier struct {
	SType         StructureType
	PNext         uintptr
	SrcAccessMask AccessFlags
	DstAccessMask AccessFlags
}

// BufferMemoryBarrier is VkBufferMemoryBarrier.
type BufferMemoryBarrier struct {
	SType               StructureType
	PNext               uintptr
	SrcAccessMask       AccessFlags
	DstAccessMask       AccessFlags
	SrcQueueFamilyIndex uint32
	DstQueueFamilyIndex uint32
	Buffer              Buffer
	Offset              DeviceSize
	Size                DeviceSize
}

// ImageMemoryBarrier is VkImageMemoryBarrier.
type ImageMemoryBarrier struct {
	SType               StructureType
	PNext               uintptr
	SrcAccessMask       AccessFlags
	DstAccessMask       AccessFlags
	OldLayout           ImageLayout
	NewLayout           ImageLayout
	SrcQueueFamilyIndex uint32
	DstQueueFamilyIndex uint32
	Image               Image
	SubresourceRange    ImageSubresourceRange
	_                   [4]byte
}

// FenceCreateInfo is VkFenceCreateInfo.
type FenceCreateInfo struct {
	SType StructureType
	PNext uintptr
	Flags FenceCreateFlags
	_     [4]byte
}

// SemaphoreCreateInfo is VkSemaphoreCreateInfo.
type SemaphoreCreateInfo struct {
	SType StructureType
	PNext uintptr
	Flags SemaphoreCreateFlags
	_     [4]byte
}

// SemaphoreTypeCreateInfo is VkSemaphoreTypeCreateInfo (Vulkan 1.2).
type SemaphoreTypeCreateInfo struct {
	SType         StructureType
	PNext         uintptr
	SemaphoreType SemaphoreType
	_             [4]byte
	InitialValue  uint64
}

// SemaphoreWaitInfo is VkSemaphoreWaitInfo (Vulkan 1.2).
type SemaphoreWaitInfo struct {
	SType          StructureType
	PNext          uintptr
	Flags          SemaphoreWaitFlags
	SemaphoreCount uint32
	PSemaphores    *Semaphore
	PValues        *uint64
}

// TimelineSemaphoreSubmitInfo is VkTimelineSemaphoreSubmitInfo,
// chained into SubmitInfo.
type TimelineSemaphoreSubmitInfo struct {
	SType                     StructureType
	PNext                     uintptr
	WaitSemaphoreValueCount   uint32
	_                         [4]byte
	PWaitSemaphoreValues      *uint64
	SignalSemaphoreValueCount uint32
	_                         [4]byte
	PSignalSemaphoreValues    *uint64
}

// SubmitInfo is VkSubmitInfo.
type SubmitInfo struct {
	SType                StructureType
	PNext                uintptr
	WaitSemaphoreCount   uint32
	_                    [4]byte
	PWaitSemaphores      *Semaphore
	PWaitDstStageMask    *PipelineStageFlags
	CommandBufferCount   uint32
	_                    [4]byte
	PCommandBuffers      *CommandBuffer
	SignalSemaphoreCount uint32
	_                    [4]byte
	PSignalSemaphores    *Semaphore
}

// PresentInfoKHR is VkPresentInfoKHR.
type PresentInfoKHR struct {
	SType              StructureType
	PNext              uintptr
	WaitSemaphoreCount uint32
	_                  [4]byte
	PWaitSemaphores    *Semaphore
	SwapchainCount     uint32
	_                  [4]byte
	PSwapchains        *SwapchainKHR
	PImageIndices      *uint32
	PResults           *Result
}

// CommandPoolCreateInfo is VkCommandPoolCreateInfo.
type CommandPoolCreateInfo struct {
	SType            StructureType
	PNext            uintptr
	Flags            CommandPoolCreateFlags
	QueueFamilyIndex uint32
}

// CommandBufferAllocateInfo is VkCommandBufferAllocateInfo.
type CommandBufferAllocateInfo struct {
	SType              StructureType
	PNext              uintptr
	CommandPool        CommandPool
	Level              CommandBufferLevel
	CommandBufferCount uint32
}

// CommandBufferBeginInfo is VkCommandBufferBeginInfo.
type CommandBufferBeginInfo struct {
	SType            StructureType
	PNext            uintptr
	Flags            CommandBufferUsageFlags
	_                [4]byte
	PInheritanceInfo uintptr
}

// AttachmentDescription is VkAttachmentDescription.
type AttachmentDescription struct {
	Flags          AttachmentDescriptionFlags
	Format         Format
	Samples        SampleCountFlagBits
	LoadOp         AttachmentLoadOp
	StoreOp        AttachmentStoreOp
	StencilLoadOp  AttachmentLoadOp
	StencilStoreOp AttachmentStoreOp
	InitialLayout  ImageLayout
	FinalLayout    ImageLayout
}

// AttachmentReference is VkAttachmentReference.
type AttachmentReference struct {
	Attachment uint32
	Layout     ImageLayout
}

// SubpassDescription is VkSubpassDescription.
type SubpassDescription struct {
	Flags                   SubpassDescriptionFlags
	PipelineBindPoint       PipelineBindPoint
	InputAttachmentCount    uint32
	_                       [4]byte
	PInputAttachments       *AttachmentReference
	ColorAttachmentCount    uint32
	_                       [4]byte
	PColorAttachments       *AttachmentReference
	PResolveAttachments     *AttachmentReference
	PDepthStencilAttachment *AttachmentReference
	PreserveAttachmentCount uint32
	_                       [4]byte
	PPreserveAttachments    *uint32
}

// SubpassDependency is VkSubpassDependency.
type SubpassDependency struct {
	SrcSubpass      uint32
	DstSubpass      uint32
	SrcStageMask    PipelineStageFlags
	DstStageMask    PipelineStageFlags
	SrcAccessMask   AccessFlags
	DstAccessMask   AccessFlags
	DependencyFlags DependencyFlags
}

// RenderPassCreateInfo is VkRenderPassCreateInfo.
type RenderPassCreateInfo struct {
	SType           StructureType
	PNext           uintptr
	Flags           RenderPassCreateFlags
	AttachmentCount uint32
	PAttachments    *AttachmentDescription
	SubpassCount    uint32
	_               [4]byte
	PSubpasses      *SubpassDescription
	DependencyCount uint32
	_               [4]byte
	PDependencies   *SubpassDependency
}

// FramebufferCreateInfo is VkFramebufferCreateInfo.
type FramebufferCreateInfo struct {
	SType           StructureType
	PNext           uintptr
	Flags           FramebufferCreateFlags
	_               [4]byte
	RenderPass      RenderPass
	AttachmentCount uint32
	_               [4]byte
	PAttachments    *ImageView
	Width           uint32
	Height          uint32
	Layers          uint32
	_               [4]byte
}

// ClearValue is the VkClearValue union.
type ClearValue [16]byte

// ClearValueColor builds a float32 color clear value.
func ClearValueColor(r, g, b, a float32) ClearValue {
	var v ClearValue
	putFloat32(v[0:4], r)
	putFloat32(v[4:8], g)
	putFloat32(v[8:12], b)
	putFloat32(v[12:16], a)
	return v
}

// ClearValueDepthStencil builds a depth/stencil clear value.
func ClearValueDepthStencil(depth float32, stencil uint32) ClearValue {
	var v ClearValue
	putFloat32(v[0:4], depth)
	putUint32(v[4:8], stencil)
	return v
}

func putFloat32(b []byte, f float32) {
	putUint32(b, math.Float32bits(f))
}

func putUint32(b []byte, u uint32) {
	b[0] = byte(u)
	b[1] = byte(u >> 8)
	b[2] = byte(u >> 16)
	b[3] = byte(u >> 24)
}

// RenderPassBeginInfo is VkRenderPassBeginInfo.
type RenderPassBeginInfo struct {
	SType           StructureType
	PNext           uintptr
	RenderPass      RenderPass
	Framebuffer     Framebuffer
	RenderArea      Rect2D
	ClearValueCount uint32
	_               [4]byte
	PClearValues    *ClearValue
}

// PipelineCacheCreateInfo is VkPipelineCacheCreateInfo.
type PipelineCacheCreateInfo struct {
	SType           StructureType
	PNext           uintptr
	Flags           PipelineCacheCreateFlags
	_               [4]byte
	InitialDataSize uintptr
	PInitialData    unsafe.Pointer
}

// ShaderModuleCreateInfo is VkShaderModuleCreateInfo.
type ShaderModuleCreateInfo struct {
	SType    StructureType
	PNext    uintptr
	Flags    ShaderModuleCreateFlags
	_        [4]byte
	CodeSize uintptr
	PCode    *uint32
}

// SpecializationMapEntry is VkSpecializationMapEntry.
type SpecializationMapEntry struct {
	ConstantID uint32
	Offset     uint32
	Size       uintptr
}

// SpecializationInfo is VkSpecializationInfo.
type SpecializationInfo struct {
	MapEntryCount uint32
	_             [4]byte
	PMapEntries   *SpecializationMapEntry
	DataSize      uintptr
	PData         unsafe.Pointer
}

// PipelineShaderStageCreateInfo is VkPipelineShaderStageCreateInfo.
type PipelineShaderStageCreateInfo struct {
	SType               StructureType
	PNext               uintptr
	Flags               PipelineShaderStageCreateFlags
	Stage               ShaderStageFlags
	Module              ShaderModule
	PName               *byte
	PSpecializationInfo *SpecializationInfo
}

// VertexInputBindingDescription is VkVertexInputBindingDescription.
type VertexInputBindingDescription struct {
	Binding   uint32
	Stride    uint32
	InputRate VertexInputRate
}

// VertexInputAttributeDescription is VkVertexInputAttributeDescription.
type VertexInputAttributeDescription struct {
	Location uint32
	Binding  uint32
	Format   Format
	Offset   uint32
}

// PipelineVertexInputStateCreateInfo is
// VkPipelineVertexInputStateCreateInfo.
type PipelineVertexInputStateCreateInfo struct {
	SType                           StructureType
	PNext                           uintptr
	Flags                           PipelineVertexInputStateCreateFlags
	VertexBindingDescriptionCount   uint32
	PVertexBindingDescriptions      *VertexInputBindingDescription
	VertexAttributeDescriptionCount uint32
	_                               [4]byte
	PVertexAttributeDescriptions    *VertexInputAttributeDescription
}

// PipelineInputAssemblyStateCreateInfo is
// VkPipelineInputAssemblyStateCreateInfo.
type PipelineInputAssemblyStateCreateInfo struct {
	SType                  StructureType
	PNext                  uintptr
	Flags                  PipelineInputAssemblyStateCreateFlags
	Topology               PrimitiveTopology
	PrimitiveRestartEnable Bool32
	_                      [4]byte
}

// PipelineViewportStateCreateInfo is VkPipelineViewportStateCreateInfo.
type PipelineViewportStateCreateInfo struct {
	SType         StructureType
	PNext         uintptr
	Flags         PipelineViewportStateCreateFlags
	ViewportCount uint32
	PViewports    *Viewport
	ScissorCount  uint32
	_             [4]byte
	PScissors     *Rect2D
}

// PipelineRasterizationStateCreateInfo is
// VkPipelineRasterizationStateCreateInfo.
type PipelineRasterizationStateCreateInfo struct {
	SType                   StructureType
	PNext                   uintptr
	Flags                   PipelineRasterizationStateCreateFlags
	DepthClampEnable        Bool32
	RasterizerDiscardEnable Bool32
	PolygonMode             PolygonMode
	CullMode                CullModeFlags
	FrontFace               FrontFace
	DepthBiasEnable         Bool32
	DepthBiasConstantFactor float32
	DepthBiasClamp          float32
	DepthBiasSlopeFactor    float32
	LineWidth               float32
	_                       [4]byte
}

// PipelineMultisampleStateCreateInfo is
// VkPipelineMultisampleStateCreateInfo.
type PipelineMultisampleStateCreateInfo struct {
	SType                 StructureType
	PNext                 uintptr
	Flags                 PipelineMultisampleStateCreateFlags
	RasterizationSamples  SampleCountFlagBits
	SampleShadingEnable   Bool32
	MinSampleShading      float32
	PSampleMask           *uint32
	AlphaToCoverageEnable Bool32
	AlphaToOneEnable      Bool32
}

// StencilOpState is VkStencilOpState.
type StencilOpState struct {
	FailOp      StencilOp
	PassOp      StencilOp
	DepthFailOp StencilOp
	CompareOp   CompareOp
	CompareMask uint32
	WriteMask   uint32
	Reference   uint32
}

// PipelineDepthStencilStateCreateInfo is
// VkPipelineDepthStencilStateCreateInfo.
type PipelineDepthStencilStateCreateInfo struct {
	SType                 StructureType
	PNext                 uintptr
	Flags                 PipelineDepthStencilStateCreateFlags
	DepthTestEnable       Bool32
	DepthWriteEnable      Bool32
	DepthCompareOp        CompareOp
	DepthBoundsTestEnable Bool32
	StencilTestEnable     Bool32
	Front                 StencilOpState
	Back                  StencilOpState
	MinDepthBounds        float32
	MaxDepthBounds        float32
}

// PipelineColorBlendAttachmentState is
// VkPipelineColorBlendAttachmentState.
type PipelineColorBlendAttachmentState struct {
	BlendEnable         Bool32
	SrcColorBlendFactor BlendFactor
	DstColorBlendFactor BlendFactor
	ColorBlendOp        BlendOp
	SrcAlphaBlendFactor BlendFactor
	DstAlphaBlendFactor BlendFactor
	AlphaBlendOp        BlendOp
	ColorWriteMask      ColorComponentFlags
}

// PipelineColorBlendStateCreateInfo is
// VkPipelineColorBlendStateCreateInfo.
type PipelineColorBlendStateCreateInfo struct {
	SType           StructureType
	PNext           uintptr
	Flags           PipelineColorBlendStateCreateFlags
	LogicOpEnable   Bool32
	LogicOp         LogicOp
	AttachmentCount uint32
	PAttachments    *PipelineColorBlendAttachmentState
	BlendConstants  [4]float32
}

// PipelineDynamicStateCreateInfo is VkPipelineDynamicStateCreateInfo.
type PipelineDynamicStateCreateInfo struct {
	SType             StructureType
	PNext             uintptr
	Flags             PipelineDynamicStateCreateFlags
	DynamicStateCount uint32
	PDynamicStates    *DynamicState
}

// GraphicsPipelineCreateInfo is VkGraphicsPipelineCreateInfo.
type GraphicsPipelineCreateInfo struct {
	SType               StructureType
	PNext               uintptr
	Flags               PipelineCreateFlags
	StageCount          uint32
	PStages             *PipelineShaderStageCreateInfo
	PVertexInputState   *PipelineVertexInputStateCreateInfo
	PInputAssemblyState *PipelineInputAssemblyStateCreateInfo
	PTessellationState  uintptr
	PViewportState      *PipelineViewportStateCreateInfo
	PRasterizationState *PipelineRasterizationStateCreateInfo
	PMultisampleState   *PipelineMultisampleStateCreateInfo
	PDepthStencilState  *PipelineDepthStencilStateCreateInfo
	PColorBlendState    *PipelineColorBlendStateCreateInfo
	PDynamicState       *PipelineDynamicStateCreateInfo
	Layout              PipelineLayout
	RenderPass          RenderPass
	Subpass             uint32
	_                   [4]byte
	BasePipelineHandle  Pipeline
	BasePipelineIndex   int32
	_                   [4]byte
}

// ComputePipelineCreateInfo is VkComputePipelineCreateInfo.
type ComputePipelineCreateInfo struct {
	SType              StructureType
	PNext              uintptr
	Flags              PipelineCreateFlags
	_                  [4]byte
	Stage              PipelineShaderStageCreateInfo
	Layout             PipelineLayout
	BasePipelineHandle Pipeline
	BasePipelineIndex  int32
	_                  [4]byte
}

// PushConstantRange is VkPushConstantRange.
type PushConstantRange struct {
	StageFlags ShaderStageFlags
	Offset     uint32
	Size       uint32
}

// PipelineLayoutCreateInfo is VkPipelineLayoutCreateInfo.
type PipelineLayoutCreateInfo struct {
	SType                  StructureType
	PNext                  uintptr
	Flags                  PipelineLayoutCreateFlags
	SetLayoutCount         uint32
	PSetLayouts            *DescriptorSetLayout
	PushConstantRangeCount uint32
	_                      [4]byte
	PPushConstantRanges    *PushConstantRange
}

// DescriptorSetLayoutBinding is VkDescriptorSetLayoutBinding.
type DescriptorSetLayoutBinding struct {
	Binding            uint32
	DescriptorType     DescriptorType
	DescriptorCount    uint32
	StageFlags         ShaderStageFlags
	PImmutableSamplers *Sampler
}

// DescriptorSetLayoutCreateInfo is VkDescriptorSetLayoutCreateInfo.
type DescriptorSetLayoutCreateInfo struct {
	SType        StructureType
	PNext        uintptr
	Flags        DescriptorSetLayoutCreateFlags
	BindingCount uint32
	PBindings    *DescriptorSetLayoutBinding
}

// DescriptorPoolSize is VkDescriptorPoolSize.
type DescriptorPoolSize struct {
	Type            DescriptorType
	DescriptorCount uint32
}

// DescriptorPoolCreateInfo is VkDescriptorPoolCreateInfo.
type DescriptorPoolCreateInfo struct {
	SType         StructureType
	PNext         uintptr
	Flags         DescriptorPoolCreateFlags
	MaxSets       uint32
	PoolSizeCount uint32
	_             [4]byte
	PPoolSizes    *DescriptorPoolSize
}

// DescriptorSetAllocateInfo is VkDescriptorSetAllocateInfo.
type DescriptorSetAllocateInfo struct {
	SType              StructureType
	PNext              uintptr
	DescriptorPool     DescriptorPool
	DescriptorSetCount uint32
	_                  [4]byte
	PSetLayouts        *DescriptorSetLayout
}

// DescriptorBufferInfo is VkDescriptorBufferInfo.
type DescriptorBufferInfo struct {
	Buffer Buffer
	Offset DeviceSize
	Range  DeviceSize
}

// DescriptorImageInfo is VkDescriptorImageInfo.
type DescriptorImageInfo struct {
	Sampler     Sampler
	ImageView   ImageView
	ImageLayout ImageLayout
	_           [4]byte
}

// WriteDescriptorSet is VkWriteDescriptorSet.
type WriteDescriptorSet struct {
	SType            StructureType
	PNext            uintptr
	DstSet           DescriptorSet
	DstBinding       uint32
	DstArrayElement  uint32
	DescriptorCount  uint32
	DescriptorType   DescriptorType
	PImageInfo       *DescriptorImageInfo
	PBufferInfo      *DescriptorBufferInfo
	PTexelBufferView *Buffer
}

// BufferCopy is VkBufferCopy.
type BufferCopy struct {
	SrcOffset DeviceSize
	DstOffset DeviceSize
	Size      DeviceSize
}

// ImageSubresourceLayers is VkImageSubresourceLayers.
type ImageSubresourceLayers struct {
	AspectMask     ImageAspectFlags
	MipLevel       uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

// BufferImageCopy is VkBufferImageCopy.
type BufferImageCopy struct {
	BufferOffset      DeviceSize
	BufferRowLength   uint32
	BufferImageHeight uint32
	ImageSubresource  ImageSubresourceLayers
	ImageOffset       Offset3D
	ImageExtent       Extent3D
}

// ImageCopy is VkImageCopy.
type ImageCopy struct {
	SrcSubresource ImageSubresourceLayers
	SrcOffset      Offset3D
	DstSubresource ImageSubresourceLayers
	DstOffset      Offset3D
	Extent         Extent3D
}

// ImageBlit is VkImageBlit.
type ImageBlit struct {
	SrcSubresource ImageSubresourceLayers
	SrcOffsets     [2]Offset3D
	DstSubresource ImageSubresourceLayers
	DstOffsets     [2]Offset3D
}

// DebugUtilsLabelEXT is VkDebugUtilsLabelEXT.
type DebugUtilsLabelEXT struct {
	SType      StructureType
	PNext      uintptr
	PLabelName *byte
	Color      [4]float32
}

// DebugUtilsObjectNameInfoEXT is VkDebugUtilsObjectNameInfoEXT.
type DebugUtilsObjectNameInfoEXT struct {
	SType        StructureType
	PNext        uintptr
	ObjectType   ObjectType
	_            [4]byte
	ObjectHandle uint64
	PObjectName  *byte
}
