// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

// Handle types. Dispatchable and non-dispatchable handles are both
// 64-bit on the platforms this backend supports.
type (
	Instance            uint64
	PhysicalDevice      uint64
	Device              uint64
	Queue               uint64
	CommandPool         uint64
	CommandBuffer       uint64
	Fence               uint64
	Semaphore           uint64
	DeviceMemory        uint64
	Buffer              uint64
	Image               uint64
	ImageView           uint64
	Sampler             uint64
	ShaderModule        uint64
	Pipeline            uint64
	PipelineCache       uint64
	PipelineLayout      uint64
	DescriptorSetLayout uint64
	DescriptorPool      uint64
	DescriptorSet       uint64
	RenderPass          uint64
	Framebuffer         uint64
	SurfaceKHR          uint64
	SwapchainKHR        uint64
)

// Scalar aliases.
type (
	Bool32     uint32
	DeviceSize uint64
)

// Bool32 values.
const (
	False Bool32 = 0
	True  Bool32 = 1
)

// Result is VkResult.
type Result int32

// Result codes.
const (
	Success             Result = 0
	NotReady            Result = 1
	Timeout             Result = 2
	EventSet            Result = 3
	EventReset          Result = 4
	Incomplete          Result = 5
	SuboptimalKHR       Result = 1000001003
	ErrorOutOfHostMemory   Result = -1
	ErrorOutOfDeviceMemory Result = -2
	ErrorInitializationFailed Result = -3
	ErrorDeviceLost           Result = -4
	ErrorMemoryMapFailed      Result = -5
	ErrorLayerNotPresent      Result = -6
	ErrorExtensionNotPresent  Result = -7
	ErrorFeatureNotPresent    Result = -8
	ErrorIncompatibleDriver   Result = -9
	ErrorTooManyObjects       Result = -10
	ErrorSurfaceLostKHR       Result = -1000000000
	ErrorOutOfDateKHR         Result = -1000001004
)

// StructureType is VkStructureType.
type StructureType uint32

// Structure types used by this backend.
const (
	StructureTypeApplicationInfo              StructureType = 0
	StructureTypeInstanceCreateInfo           StructureType = 1
	StructureTypeDeviceQueueCreateInfo        StructureType = 2
	StructureTypeDeviceCreateInfo             StructureType = 3
	StructureTypeSubmitInfo                   StructureType = 4
	StructureTypeMemoryAllocateInfo           StructureType = 5
	StructureTypeMappedMemoryRange            StructureType = 6
	StructureTypeFenceCreateInfo              StructureType = 8
	StructureTypeSemaphoreCreateInfo          StructureType = 9
	StructureTypeBufferCreateInfo             StructureType = 12
	StructureTypeImageCreateInfo              StructureType = 14
	StructureTypeImageViewCreateInfo          StructureType = 15
	StructureTypeShaderModuleCreateInfo       StructureType = 16
	StructureTypePipelineCacheCreateInfo      StructureType = 17
	StructureTypePipelineShaderStageCreateInfo        StructureType = 18
	StructureTypePipelineVertexInputStateCreateInfo   StructureType = 19
	StructureTypePipelineInputAssemblyStateCreateInfo StructureType = 20
	StructureTypePipelineViewportStateCreateInfo      StructureType = 22
	StructureTypePipelineRasterizationStateCreateInfo StructureType = 23
	StructureTypePipelineMultisampleStateCreateInfo   StructureType = 24
	StructureTypePipelineDepthStencilStateCreateInfo  StructureType = 25
	StructureTypePipelineColorBlendStateCreateInfo    StructureType = 26
	StructureTypePipelineDynamicStateCreateInfo       StructureType = 27
	StructureTypeGraphicsPipelineCreateInfo   StructureType = 28
	StructureTypeComputePipelineCreateInfo    StructureType = 29
	StructureTypePipelineLayoutCreateInfo     StructureType = 30
	StructureTypeSamplerCreateInfo            StructureType = 31
	StructureTypeDescriptorSetLayoutCreateInfo StructureType = 32
	StructureTypeDescriptorPoolCreateInfo     StructureType = 33
	StructureTypeDescriptorSetAllocateInfo    StructureType = 34
	StructureTypeWriteDescriptorSet           StructureType = 35
	StructureTypeFramebufferCreateInfo        StructureType = 37
	StructureTypeRenderPassCreateInfo         StructureType = 38
	StructureTypeCommandPoolCreateInfo        StructureType = 39
	StructureTypeCommandBufferAllocateInfo    StructureType = 40
	StructureTypeCommandBufferBeginInfo       StructureType = 42
	StructureTypeRenderPassBeginInfo          StructureType = 43
	StructureTypeBufferMemoryBarrier          StructureType = 44
	StructureTypeImageMemoryBarrier           StructureType = 45
	StructureTypeMemoryBarrier                StructureType = 46

	// Vulkan 1.2 core (promoted from VK_KHR_timeline_semaphore).
	StructureTypeSemaphoreTypeCreateInfo     StructureType = 1000207002
	StructureTypeTimelineSemaphoreSubmitInfo StructureType = 1000207003
	StructureTypeSemaphoreWaitInfo           StructureType = 1000207004

	// VK_KHR_swapchain.
	StructureTypeSwapchainCreateInfoKHR StructureType = 1000001000
	StructureTypePresentInfoKHR         StructureType = 1000001001

	// VK_EXT_debug_utils.
	StructureTypeDebugUtilsObjectNameInfoEXT StructureType = 1000128000
	StructureTypeDebugUtilsLabelEXT          StructureType = 1000128002
)

// Format is VkFormat (subset used by the backend).
type Format uint32

// Formats.
const (
	FormatUndefined          Format = 0
	FormatR8Unorm            Format = 9
	FormatR8Snorm            Format = 10
	FormatR8Uint             Format = 13
	FormatR8Sint             Format = 14
	FormatR8G8Unorm          Format = 16
	FormatR8G8B8A8Unorm      Format = 37
	FormatR8G8B8A8Snorm      Format = 38
	FormatR8G8B8A8Uint       Format = 41
	FormatR8G8B8A8Sint       Format = 42
	FormatR8G8B8A8Srgb       Format = 43
	FormatB8G8R8A8Unorm      Format = 44
	FormatB8G8R8A8Srgb       Format = 50
	FormatA2B10G10R10Unorm   Format = 64
	FormatR16Float           Format = 76
	FormatR16G16Float        Format = 83
	FormatR16G16B16A16Float  Format = 97
	FormatR32Uint            Format = 98
	FormatR32Sint            Format = 99
	FormatR32Float           Format = 100
	FormatR32G32Float        Format = 103
	FormatR32G32B32Float     Format = 106
	FormatR32G32B32A32Uint   Format = 107
	FormatR32G32B32A32Sint   Format = 108
	FormatR32G32B32A32Float  Format = 109
	FormatB10G11R11Ufloat    Format = 122
	FormatD16Unorm           Format = 124
	FormatD32Float           Format = 126
	FormatS8Uint             Format = 127
	FormatD24UnormS8Uint     Format = 129
	FormatD32FloatS8Uint     Format = 130
)

// ImageLayout is VkImageLayout.
type ImageLayout uint32

// Image layouts.
const (
	ImageLayoutUndefined                    ImageLayout = 0
	ImageLayoutGeneral                      ImageLayout = 1
	ImageLayoutColorAttachmentOptimal       ImageLayout = 2
	ImageLayoutDepthStencilAttachmentOptimal ImageLayout = 3
	ImageLayoutDepthStencilReadOnlyOptimal  ImageLayout = 4
	ImageLayoutShaderReadOnlyOptimal        ImageLayout = 5
	ImageLayoutTransferSrcOptimal           ImageLayout = 6
	ImageLayoutTransferDstOptimal           ImageLayout = 7
	ImageLayoutPreinitialized               ImageLayout = 8
	ImageLayoutPresentSrcKHR                ImageLayout = 1000001002
)

// AccessFlags is VkAccessFlags.
type AccessFlags uint32

// Access bits.
const (
	AccessIndirectCommandReadBit         AccessFlags = 0x00000001
	AccessIndexReadBit                   AccessFlags = 0x00000002
	AccessVertexAttributeReadBit         AccessFlags = 0x00000004
	AccessUniformReadBit                 AccessFlags = 0x00000008
	AccessInputAttachmentReadBit         AccessFlags = 0x00000010
	AccessShaderReadBit                  AccessFlags = 0x00000020
	AccessShaderWriteBit                 AccessFlags = 0x00000040
	AccessColorAttachmentReadBit         AccessFlags = 0x00000080
	AccessColorAttachmentWriteBit        AccessFlags = 0x00000100
	AccessDepthStencilAttachmentReadBit  AccessFlags = 0x00000200
	AccessDepthStencilAttachmentWriteBit AccessFlags = 0x00000400
	AccessTransferReadBit                AccessFlags = 0x00000800
	AccessTransferWriteBit               AccessFlags = 0x00001000
	AccessHostReadBit                    AccessFlags = 0x00002000
	AccessHostWriteBit                   AccessFlags = 0x00004000
	AccessMemoryReadBit                  AccessFlags = 0x00008000
	AccessMemoryWriteBit                 AccessFlags = 0x00010000
)

// PipelineStageFlags is VkPipelineStageFlags.
type PipelineStageFlags uint32

// Pipeline stage bits.
const (
	PipelineStageTopOfPipeBit             PipelineStageFlags = 0x00000001
	PipelineStageDrawIndirectBit          PipelineStageFlags = 0x00000002
	PipelineStageVertexInputBit           PipelineStageFlags = 0x00000004
	PipelineStageVertexShaderBit          PipelineStageFlags = 0x00000008
	PipelineStageFragmentShaderBit        PipelineStageFlags = 0x00000080
	PipelineStageEarlyFragmentTestsBit    PipelineStageFlags = 0x00000100
	PipelineStageLateFragmentTestsBit     PipelineStageFlags = 0x00000200
	PipelineStageColorAttachmentOutputBit PipelineStageFlags = 0x00000400
	PipelineStageComputeShaderBit         PipelineStageFlags = 0x00000800
	PipelineStageTransferBit              PipelineStageFlags = 0x00001000
	PipelineStageBottomOfPipeBit          PipelineStageFlags = 0x00002000
	PipelineStageHostBit                  PipelineStageFlags = 0x00004000
	PipelineStageAllGraphicsBit           PipelineStageFlags = 0x00008000
	PipelineStageAllCommandsBit           PipelineStageFlags = 0x00010000
)

// DependencyFlags is VkDependencyFlags.
type DependencyFlags uint32

// Dependency bits.
const (
	DependencyByRegionBit DependencyFlags = 0x00000001
)

// ImageAspectFlags is VkImageAspectFlags.
type ImageAspectFlags uint32

// Aspect bits.
const (
	ImageAspectColorBit   ImageAspectFlags = 0x00000001
	ImageAspectDepthBit   ImageAspectFlags = 0x00000002
	ImageAspectStencilBit ImageAspectFlags = 0x00000004
)

// ImageUsageFlags is VkImageUsageFlags.
type ImageUsageFlags uint32

// Image usage bits.
const (
	ImageUsageTransferSrcBit            ImageUsageFlags = 0x00000001
	ImageUsageTransferDstBit            ImageUsageFlags = 0x00000002
	ImageUsageSampledBit                ImageUsageFlags = 0x00000004
	ImageUsageStorageBit                ImageUsageFlags = 0x00000008
	ImageUsageColorAttachmentBit        ImageUsageFlags = 0x00000010
	ImageUsageDepthStencilAttachmentBit ImageUsageFlags = 0x00000020
	ImageUsageTransientAttachmentBit    ImageUsageFlags = 0x00000040
	ImageUsageInputAttachmentBit        ImageUsageFlags = 0x00000080
)

// BufferUsageFlags is VkBufferUsageFlags.
type BufferUsageFlags uint32

// Buffer usage bits.
const (
	BufferUsageTransferSrcBit        BufferUsageFlags = 0x00000001
	BufferUsageTransferDstBit        BufferUsageFlags = 0x00000002
	BufferUsageUniformTexelBufferBit BufferUsageFlags = 0x00000004
	BufferUsageStorageTexelBufferBit BufferUsageFlags = 0x00000008
	BufferUsageUniformBufferBit      BufferUsageFlags = 0x00000010
	BufferUsageStorageBufferBit      BufferUsageFlags = 0x00000020
	BufferUsageIndexBufferBit        BufferUsageFlags = 0x00000040
	BufferUsageVertexBufferBit       BufferUsageFlags = 0x00000080
	BufferUsageIndirectBufferBit     BufferUsageFlags = 0x00000100
)

// MemoryPropertyFlags is VkMemoryPropertyFlags.
type MemoryPropertyFlags uint32

// Memory property bits.
const (
	MemoryPropertyDeviceLocalBit  MemoryPropertyFlags = 0x00000001
	MemoryPropertyHostVisibleBit  MemoryPropertyFlags = 0x00000002
	MemoryPropertyHostCoherentBit MemoryPropertyFlags = 0x00000004
	MemoryPropertyHostCachedBit   MemoryPropertyFlags = 0x00000008
	MemoryPropertyLazilyAllocatedBit MemoryPropertyFlags = 0x00000010
)

// MemoryHeapFlags is VkMemoryHeapFlags.
type MemoryHeapFlags uint32

// QueueFlags is VkQueueFlags.
type QueueFlags uint32

// Queue capability bits.
const (
	QueueGraphicsBit      QueueFlags = 0x00000001
	QueueComputeBit       QueueFlags = 0x00000002
	QueueTransferBit      QueueFlags = 0x00000004
	QueueSparseBindingBit QueueFlags = 0x00000008
)

// SampleCountFlagBits is VkSampleCountFlagBits.
type SampleCountFlagBits uint32

// ShaderStageFlags is VkShaderStageFlags.
type ShaderStageFlags uint32

// Shader stage bits.
const (
	ShaderStageVertexBit   ShaderStageFlags = 0x00000001
	ShaderStageFragmentBit ShaderStageFlags = 0x00000010
	ShaderStageComputeBit  ShaderStageFlags = 0x00000020
	ShaderStageAllGraphics ShaderStageFlags = 0x0000001f
)

// Enums used structurally.
type (
	SharingMode           uint32
	ImageTiling           uint32
	ImageType             uint32
	ImageViewType         uint32
	ComponentSwizzle      uint32
	Filter                uint32
	SamplerMipmapMode     uint32
	SamplerAddressMode    uint32
	CompareOp             uint32
	BorderColor           uint32
	AttachmentLoadOp      uint32
	AttachmentStoreOp     uint32
	PipelineBindPoint     uint32
	SubpassContents       uint32
	IndexType             uint32
	PrimitiveTopology     uint32
	PolygonMode           uint32
	CullModeFlags         uint32
	FrontFace             uint32
	BlendFactor           uint32
	BlendOp               uint32
	ColorComponentFlags   uint32
	LogicOp               uint32
	StencilOp             uint32
	DynamicState          uint32
	VertexInputRate       uint32
	DescriptorType        uint32
	SemaphoreType         uint32
	PresentModeKHR        uint32
	CompositeAlphaFlagsKHR uint32
	SurfaceTransformFlagsKHR uint32
	ObjectType            uint32
	PhysicalDeviceType    uint32
	ResolveModeFlagBits   uint32
)

// Enum values.
const (
	SharingModeExclusive SharingMode = 0

	ImageTilingOptimal ImageTiling = 0

	ImageType1D ImageType = 0
	ImageType2D ImageType = 1
	ImageType3D ImageType = 2

	ImageViewType1D      ImageViewType = 0
	ImageViewType2D      ImageViewType = 1
	ImageViewType3D      ImageViewType = 2
	ImageViewTypeCube    ImageViewType = 3
	ImageViewType2DArray ImageViewType = 5

	FilterNearest Filter = 0
	FilterLinear  Filter = 1

	SamplerMipmapModeNearest SamplerMipmapMode = 0
	SamplerMipmapModeLinear  SamplerMipmapMode = 1

	SamplerAddressModeRepeat         SamplerAddressMode = 0
	SamplerAddressModeMirroredRepeat SamplerAddressMode = 1
	SamplerAddressModeClampToEdge    SamplerAddressMode = 2

	CompareOpNever          CompareOp = 0
	CompareOpLess           CompareOp = 1
	CompareOpEqual          CompareOp = 2
	CompareOpLessOrEqual    CompareOp = 3
	CompareOpGreater        CompareOp = 4
	CompareOpNotEqual       CompareOp = 5
	CompareOpGreaterOrEqual CompareOp = 6
	CompareOpAlways         CompareOp = 7

	AttachmentLoadOpLoad     AttachmentLoadOp = 0
	AttachmentLoadOpClear    AttachmentLoadOp = 1
	AttachmentLoadOpDontCare AttachmentLoadOp = 2

	AttachmentStoreOpStore    AttachmentStoreOp = 0
	AttachmentStoreOpDontCare AttachmentStoreOp = 1

	PipelineBindPointGraphics PipelineBindPoint = 0
	PipelineBindPointCompute  PipelineBindPoint = 1

	SubpassContentsInline SubpassContents = 0

	IndexTypeUint16 IndexType = 0
	IndexTypeUint32 IndexType = 1

	PrimitiveTopologyPointList     PrimitiveTopology = 0
	PrimitiveTopologyLineList      PrimitiveTopology = 1
	PrimitiveTopologyLineStrip     PrimitiveTopology = 2
	PrimitiveTopologyTriangleList  PrimitiveTopology = 3
	PrimitiveTopologyTriangleStrip PrimitiveTopology = 4

	PolygonModeFill PolygonMode = 0

	CullModeNone     CullModeFlags = 0
	CullModeFrontBit CullModeFlags = 1
	CullModeBackBit  CullModeFlags = 2

	FrontFaceCounterClockwise FrontFace = 0
	FrontFaceClockwise        FrontFace = 1

	BlendFactorZero             BlendFactor = 0
	BlendFactorOne              BlendFactor = 1
	BlendFactorSrcColor         BlendFactor = 2
	BlendFactorOneMinusSrcColor BlendFactor = 3
	BlendFactorDstColor         BlendFactor = 4
	BlendFactorOneMinusDstColor BlendFactor = 5
	BlendFactorSrcAlpha         BlendFactor = 6
	BlendFactorOneMinusSrcAlpha BlendFactor = 7
	BlendFactorDstAlpha         BlendFactor = 8
	BlendFactorOneMinusDstAlpha BlendFactor = 9
	BlendFactorConstantColor    BlendFactor = 10
	BlendFactorOneMinusConstantColor BlendFactor = 11
	BlendFactorSrcAlphaSaturate BlendFactor = 14

	BlendOpAdd             BlendOp = 0
	BlendOpSubtract        BlendOp = 1
	BlendOpReverseSubtract BlendOp = 2
	BlendOpMin             BlendOp = 3
	BlendOpMax             BlendOp = 4

	ColorComponentRBit ColorComponentFlags = 0x1
	ColorComponentGBit ColorComponentFlags = 0x2
	ColorComponentBBit ColorComponentFlags = 0x4
	ColorComponentABit ColorComponentFlags = 0x8

	DynamicStateViewport DynamicState = 0
	DynamicStateScissor  DynamicState = 1

	VertexInputRateVertex   VertexInputRate = 0
	VertexInputRateInstance VertexInputRate = 1

	DescriptorTypeSampler              DescriptorType = 0
	DescriptorTypeCombinedImageSampler DescriptorType = 1
	DescriptorTypeSampledImage         DescriptorType = 2
	DescriptorTypeStorageImage         DescriptorType = 3
	DescriptorTypeUniformBuffer        DescriptorType = 6
	DescriptorTypeStorageBuffer        DescriptorType = 7
	DescriptorTypeInlineUniformBlockEXT DescriptorType = 1000138000

	SemaphoreTypeBinary   SemaphoreType = 0
	SemaphoreTypeTimeline SemaphoreType = 1

	PresentModeFifoKHR PresentModeKHR = 2

	PhysicalDeviceTypeDiscreteGPU   PhysicalDeviceType = 2
	PhysicalDeviceTypeIntegratedGPU PhysicalDeviceType = 1
)

// Flag types whose bits the backend never inspects.
type (
	InstanceCreateFlags      uint32
	DeviceCreateFlags        uint32
	DeviceQueueCreateFlags   uint32
	BufferCreateFlags        uint32
	ImageCreateFlags         uint32
	ImageViewCreateFlags     uint32
	SamplerCreateFlags       uint32
	FenceCreateFlags         uint32
	SemaphoreCreateFlags     uint32
	SemaphoreWaitFlags       uint32
	ShaderModuleCreateFlags  uint32
	PipelineCreateFlags      uint32
	PipelineCacheCreateFlags uint32
	PipelineLayoutCreateFlags uint32
	PipelineShaderStageCreateFlags uint32
	PipelineVertexInputStateCreateFlags uint32
	PipelineInputAssemblyStateCreateFlags uint32
	PipelineViewportStateCreateFlags      uint32
	PipelineRasterizationStateCreateFlags uint32
	PipelineMultisampleStateCreateFlags   uint32
	PipelineDepthStencilStateCreateFlags  uint32
	PipelineColorBlendStateCreateFlags    uint32
	PipelineDynamicStateCreateFlags       uint32
	DescriptorSetLayoutCreateFlags uint32
	DescriptorPoolCreateFlags      uint32
	RenderPassCreateFlags          uint32
	FramebufferCreateFlags         uint32
	CommandPoolCreateFlags         uint32
	CommandPoolResetFlags          uint32
	CommandBufferUsageFlags        uint32
	CommandBufferLevel             uint32
	MemoryMapFlags                 uint32
	QueryControlFlags              uint32
	StencilFaceFlags               uint32
	SwapchainCreateFlagsKHR        uint32
	SubpassDescriptionFlags        uint32
	AttachmentDescriptionFlags     uint32
)

// Command pool/buffer constants.
const (
	CommandPoolCreateTransientBit          CommandPoolCreateFlags = 0x1
	CommandPoolCreateResetCommandBufferBit CommandPoolCreateFlags = 0x2

	CommandBufferLevelPrimary CommandBufferLevel = 0

	CommandBufferUsageOneTimeSubmitBit CommandBufferUsageFlags = 0x1

	FenceCreateSignaledBit FenceCreateFlags = 0x1
)

// Special values.
const (
	QueueFamilyIgnored   = ^uint32(0)
	SubpassExternal      = ^uint32(0)
	RemainingMipLevels   = ^uint32(0)
	RemainingArrayLayers = ^uint32(0)
	WholeSize            = ^uint64(0)
	AttachmentUnused     = ^uint32(0)
)

// Extension name strings.
const (
	KHRSwapchainExtensionName         = "VK_KHR_swapchain"
	KHRTimelineSemaphoreExtensionName = "VK_KHR_timeline_semaphore"
	EXTInlineUniformBlockExtensionName = "VK_EXT_inline_uniform_block"
	EXTDebugUtilsExtensionName        = "VK_EXT_debug_utils"
)
