// Package wgpu provides a vfx device provider backed by the Pure Go
// gogpu/wgpu implementation.
//
// The provider acquires the full GPU stack on construction: instance,
// adapter (preferring a high-performance GPU), logical device and
// command queue. Construction fails when no Vulkan/Metal/DX12 adapter
// is available; vfx treats that as fatal, since a pipeline cannot run
// without a drawable surface.
//
// Usage:
//
//	provider, err := wgpu.New()
//	if err != nil {
//	    log.Fatal(err) // no compatible GPU
//	}
//	defer provider.Close()
//
//	p, err := vfx.New(provider, viewport)
package wgpu
