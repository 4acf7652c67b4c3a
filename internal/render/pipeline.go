package render

import (
	"fmt"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// sampleCount is the MSAA sample count for the offscreen color attachment.
const sampleCount = 4

// Frame is one plot's worth of GPU-ready draw data: the shared uniform
// block, marker instances, and pre-tessellated line vertices. Lines draw
// first so markers sit on top of the polylines they annotate.
type Frame struct {
	Uniforms Uniforms
	Markers  []PointInstance
	Lines    []LineVertex
}

// Pipeline owns the GPU resources for scatter/line plot rendering: the
// shared shader module, the marker and line render pipelines, the reusable
// vertex/instance/uniform buffers, and the MSAA+resolve texture pair for
// offscreen rendering.
//
// Pipelines are created lazily on the first Render call and reused across
// frames. Not safe for concurrent use; callers serialize frames.
type Pipeline struct {
	device hal.Device
	queue  hal.Queue

	shader         hal.ShaderModule
	uniformLayout  hal.BindGroupLayout
	pipeLayout     hal.PipelineLayout
	markerPipeline hal.RenderPipeline
	linePipeline   hal.RenderPipeline

	markerBuf  *dynamicBuffer
	lineBuf    *dynamicBuffer
	uniformBuf hal.Buffer

	msaaTex     hal.Texture
	msaaView    hal.TextureView
	resolveTex  hal.Texture
	resolveView hal.TextureView

	width, height uint32
}

// NewPipeline creates a plot pipeline on the given device and queue. GPU
// objects are not allocated until the first Render call sizes them.
func NewPipeline(device hal.Device, queue hal.Queue) *Pipeline {
	return &Pipeline{
		device:    device,
		queue:     queue,
		markerBuf: newDynamicBuffer("plot_markers", gputypes.BufferUsageVertex),
		lineBuf:   newDynamicBuffer("plot_line_verts", gputypes.BufferUsageVertex),
	}
}

// Destroy releases all GPU resources held by the pipeline. Safe to call
// multiple times or on a pipeline with no allocated resources.
func (p *Pipeline) Destroy() {
	p.markerBuf.destroy(p.device)
	p.lineBuf.destroy(p.device)
	if p.uniformBuf != nil {
		p.device.DestroyBuffer(p.uniformBuf)
		p.uniformBuf = nil
	}
	p.destroyPipelines()
	p.destroyTextures()
}

// Render draws the frame offscreen and composites the result over
// target.Data. The target dimensions must match the frame's viewport.
// Returns nil without touching the GPU when the frame has nothing to draw.
func (p *Pipeline) Render(target Target, frame *Frame) error {
	if len(frame.Markers) == 0 && len(frame.Lines) == 0 {
		return nil
	}
	if len(target.Data) < target.Width*target.Height*4 {
		return fmt.Errorf("target data too small: %d bytes for %dx%d", len(target.Data), target.Width, target.Height)
	}

	w, h := uint32(target.Width), uint32(target.Height) //nolint:gosec // dimensions always fit uint32
	if err := p.ensureReady(w, h); err != nil {
		return err
	}

	if err := p.upload(frame); err != nil {
		return err
	}

	bindGroup, err := p.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "plot_bind",
		Layout: p.uniformLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: p.uniformBuf.NativeHandle(), Offset: 0, Size: UniformSize,
			}},
		},
	})
	if err != nil {
		return fmt.Errorf("create bind group: %w", err)
	}
	defer p.device.DestroyBindGroup(bindGroup)

	return p.encodeAndReadback(w, h, frame, bindGroup, target)
}

// upload pushes the frame's buffers to the GPU.
func (p *Pipeline) upload(frame *Frame) error {
	if p.uniformBuf == nil {
		buf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
			Label: "plot_uniform",
			Size:  UniformSize,
			Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
		})
		if err != nil {
			return fmt.Errorf("create uniform buffer: %w", err)
		}
		p.uniformBuf = buf
	}
	p.queue.WriteBuffer(p.uniformBuf, 0, frame.Uniforms.Marshal())

	if err := p.markerBuf.upload(p.device, p.queue, PackPointInstances(frame.Markers)); err != nil {
		return err
	}
	return p.lineBuf.upload(p.device, p.queue, PackLineVertices(frame.Lines))
}

// ensureReady creates textures and pipelines if needed.
func (p *Pipeline) ensureReady(w, h uint32) error {
	if err := p.ensureTextures(w, h); err != nil {
		return fmt.Errorf("ensure textures: %w", err)
	}
	if p.markerPipeline == nil {
		if err := p.createPipelines(); err != nil {
			return fmt.Errorf("create pipelines: %w", err)
		}
	}
	return nil
}

// ensureTextures creates or recreates MSAA and resolve textures if the
// requested dimensions differ from the current size.
func (p *Pipeline) ensureTextures(w, h uint32) error {
	if p.width == w && p.height == h && p.msaaTex != nil {
		return nil
	}
	p.destroyTextures()

	size := hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1}

	msaaTex, err := p.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "plot_msaa",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   sampleCount,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatBGRA8Unorm,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		return fmt.Errorf("create MSAA texture: %w", err)
	}
	p.msaaTex = msaaTex

	msaaView, err := p.device.CreateTextureView(msaaTex, &hal.TextureViewDescriptor{
		Label:         "plot_msaa_view",
		Format:        gputypes.TextureFormatBGRA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		p.destroyTextures()
		return fmt.Errorf("create MSAA view: %w", err)
	}
	p.msaaView = msaaView

	resolveTex, err := p.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "plot_resolve",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatBGRA8Unorm,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		p.destroyTextures()
		return fmt.Errorf("create resolve texture: %w", err)
	}
	p.resolveTex = resolveTex

	resolveView, err := p.device.CreateTextureView(resolveTex, &hal.TextureViewDescriptor{
		Label:         "plot_resolve_view",
		Format:        gputypes.TextureFormatBGRA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		p.destroyTextures()
		return fmt.Errorf("create resolve view: %w", err)
	}
	p.resolveView = resolveView

	p.width = w
	p.height = h
	return nil
}

func (p *Pipeline) destroyTextures() {
	if p.resolveView != nil {
		p.device.DestroyTextureView(p.resolveView)
		p.resolveView = nil
	}
	if p.resolveTex != nil {
		p.device.DestroyTexture(p.resolveTex)
		p.resolveTex = nil
	}
	if p.msaaView != nil {
		p.device.DestroyTextureView(p.msaaView)
		p.msaaView = nil
	}
	if p.msaaTex != nil {
		p.device.DestroyTexture(p.msaaTex)
		p.msaaTex = nil
	}
	p.width = 0
	p.height = 0
}

// straightAlphaBlend is the blend state for straight-alpha shader output:
// source-over on color, accumulate coverage on alpha.
func straightAlphaBlend() gputypes.BlendState {
	return gputypes.BlendState{
		Color: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorSrcAlpha,
			DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
			Operation: gputypes.BlendOperationAdd,
		},
		Alpha: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorOne,
			DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
			Operation: gputypes.BlendOperationAdd,
		},
	}
}

// createPipelines compiles the plot shader and creates the marker and line
// render pipelines. Both share the shader module, bind group layout, blend
// state, and MSAA settings; they differ in entry points and vertex layout.
func (p *Pipeline) createPipelines() error {
	if err := validateShaderSource(); err != nil {
		return err
	}

	shader, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "plot_shader",
		Source: hal.ShaderSource{WGSL: plotShaderSource},
	})
	if err != nil {
		return fmt.Errorf("compile plot shader: %w", err)
	}
	p.shader = shader

	uniformLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "plot_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create uniform layout: %w", err)
	}
	p.uniformLayout = uniformLayout

	pipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "plot_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.uniformLayout},
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout

	blend := straightAlphaBlend()
	targets := []gputypes.ColorTargetState{
		{
			Format:    gputypes.TextureFormatBGRA8Unorm,
			Blend:     &blend,
			WriteMask: gputypes.ColorWriteMaskAll,
		},
	}

	markerPipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "plot_marker_pipeline",
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: "vs_marker",
			Buffers:    pointInstanceLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: "fs_marker",
			Targets:    targets,
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: sampleCount,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("create marker pipeline: %w", err)
	}
	p.markerPipeline = markerPipeline

	linePipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "plot_line_pipeline",
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: "vs_line",
			Buffers:    lineVertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: "fs_line",
			Targets:    targets,
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: sampleCount,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("create line pipeline: %w", err)
	}
	p.linePipeline = linePipeline

	slogger().Debug("plot pipelines created")
	return nil
}

// destroyPipelines releases pipeline resources in reverse creation order.
func (p *Pipeline) destroyPipelines() {
	if p.device == nil {
		return
	}
	if p.linePipeline != nil {
		p.device.DestroyRenderPipeline(p.linePipeline)
		p.linePipeline = nil
	}
	if p.markerPipeline != nil {
		p.device.DestroyRenderPipeline(p.markerPipeline)
		p.markerPipeline = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.uniformLayout != nil {
		p.device.DestroyBindGroupLayout(p.uniformLayout)
		p.uniformLayout = nil
	}
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}

// encodeAndReadback encodes the render pass, copies the resolve texture to
// a staging buffer, submits, waits, and composites pixels into the target.
func (p *Pipeline) encodeAndReadback(w, h uint32, frame *Frame, bindGroup hal.BindGroup, target Target) error {
	encoder, err := p.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "plot_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("plot_frame"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	rpDesc := &hal.RenderPassDescriptor{
		Label: "plot_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{
			{
				View:          p.msaaView,
				ResolveTarget: p.resolveView,
				LoadOp:        gputypes.LoadOpClear,
				StoreOp:       gputypes.StoreOpStore,
				ClearValue:    gputypes.Color{R: 0, G: 0, B: 0, A: 0},
			},
		},
	}
	rp := encoder.BeginRenderPass(rpDesc)
	// Lines first, then markers on top.
	if len(frame.Lines) > 0 {
		rp.SetPipeline(p.linePipeline)
		rp.SetBindGroup(0, bindGroup, nil)
		rp.SetVertexBuffer(0, p.lineBuf.buf, 0)
		rp.Draw(uint32(len(frame.Lines)), 1, 0, 0) //nolint:gosec // vertex count fits uint32
	}
	if len(frame.Markers) > 0 {
		rp.SetPipeline(p.markerPipeline)
		rp.SetBindGroup(0, bindGroup, nil)
		rp.SetVertexBuffer(0, p.markerBuf.buf, 0)
		rp.Draw(6, uint32(len(frame.Markers)), 0, 0) //nolint:gosec // instance count fits uint32
	}
	rp.End()

	// After MSAA resolve the texture is in COLOR_ATTACHMENT_OPTIMAL layout;
	// CopyTextureToBuffer requires TRANSFER_SRC_OPTIMAL. Explicit barrier.
	// No-op on Metal, GLES, software, and noop backends.
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: p.resolveTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})

	pixelBufSize := uint64(w) * uint64(h) * 4
	stagingBuf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "plot_staging",
		Size:  pixelBufSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		encoder.DiscardEncoding()
		return fmt.Errorf("create staging buffer: %w", err)
	}
	defer p.device.DestroyBuffer(stagingBuf)

	encoder.CopyTextureToBuffer(p.resolveTex, stagingBuf, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: w * 4, RowsPerImage: h},
		TextureBase:  hal.ImageCopyTexture{Texture: p.resolveTex, MipLevel: 0},
		Size:         hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	}})

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer p.device.FreeCommandBuffer(cmdBuf)

	fence, err := p.device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer p.device.DestroyFence(fence)

	if err := p.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	fenceOK, err := p.device.Wait(fence, 1, 5*time.Second)
	if err != nil || !fenceOK {
		return fmt.Errorf("wait for GPU: ok=%v err=%w", fenceOK, err)
	}

	readback := make([]byte, pixelBufSize)
	if err := p.queue.ReadBuffer(stagingBuf, 0, readback); err != nil {
		return fmt.Errorf("readback: %w", err)
	}

	compositeBGRAOverRGBA(readback, target.Data, target.Width*target.Height)
	return nil
}

// Size returns the current texture dimensions.
func (p *Pipeline) Size() (uint32, uint32) {
	return p.width, p.height
}
