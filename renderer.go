package plot

import (
	"fmt"
	"image"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/plot/internal/render"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

// Renderer owns a GPU device and the plot pipeline, and turns Plotters
// into images. Create one Renderer and reuse it across frames; pipelines
// and buffers persist between Render calls.
//
// Renderer is safe for concurrent use; frames are serialized internally.
type Renderer struct {
	mu sync.Mutex

	instance hal.Instance
	device   hal.Device
	queue    hal.Queue
	pipeline *render.Pipeline

	externalDevice bool // true when using a shared device (don't destroy on Close)
}

// NewRenderer creates a renderer on its own GPU device, preferring a
// discrete adapter, then an integrated one.
func NewRenderer() (*Renderer, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, fmt.Errorf("vulkan backend not available")
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("create instance: %w", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, fmt.Errorf("no GPU adapters found")
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}
	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("open device: %w", err)
	}

	slogger().Info("plot renderer initialized", "adapter", selected.Info.Name)
	return &Renderer{
		instance: instance,
		device:   openDev.Device,
		queue:    openDev.Queue,
		pipeline: render.NewPipeline(openDev.Device, openDev.Queue),
	}, nil
}

// NewRendererWithDevice creates a renderer on a caller-owned device and
// queue. Close releases the pipeline but leaves the device alone.
func NewRendererWithDevice(device hal.Device, queue hal.Queue) *Renderer {
	return &Renderer{
		device:         device,
		queue:          queue,
		pipeline:       render.NewPipeline(device, queue),
		externalDevice: true,
	}
}

// NewRendererFromProvider creates a renderer on a shared GPU device from an
// external provider, such as a gogpu application context. The provider must
// expose HalDevice() any and HalQueue() any returning hal.Device and
// hal.Queue.
func NewRendererFromProvider(provider any) (*Renderer, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("plot: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("plot: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("plot: provider HalQueue is not hal.Queue")
	}
	slogger().Info("plot renderer using shared GPU device")
	return NewRendererWithDevice(device, queue), nil
}

// Render draws the plot at the given size and returns the result as a
// straight-alpha RGBA image with a transparent background. Use RenderOver
// to composite onto an existing image.
func (r *Renderer) Render(p *Plotter, width, height int) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if err := r.RenderOver(p, img); err != nil {
		return nil, err
	}
	return img, nil
}

// RenderOver draws the plot over an existing image. The image's bounds
// define the viewport; its current pixels act as the background. SubImages
// (whose rows are not tightly packed) are supported via a row copy.
func (r *Renderer) RenderOver(p *Plotter, img *image.RGBA) error {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("plot: empty render target %dx%d", width, height)
	}

	frame := p.BuildFrame(width, height)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pipeline == nil {
		return fmt.Errorf("plot: renderer is closed")
	}

	data, shared := packedPix(img)
	target := render.Target{Width: width, Height: height, Data: data}
	if err := r.pipeline.Render(target, frame); err != nil {
		return err
	}
	if !shared {
		unpackPix(img, data)
	}
	return nil
}

// packedPix returns a tightly packed RGBA buffer for the image and whether
// the image's own Pix backs it. A SubImage keeps its parent's stride, so its
// rows must be gathered into a fresh buffer first.
func packedPix(img *image.RGBA) ([]byte, bool) {
	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	rowBytes := width * 4
	if img.Stride == rowBytes {
		return img.Pix[:height*rowBytes], true
	}
	buf := make([]byte, height*rowBytes)
	for y := 0; y < height; y++ {
		copy(buf[y*rowBytes:(y+1)*rowBytes], img.Pix[y*img.Stride:y*img.Stride+rowBytes])
	}
	return buf, false
}

// unpackPix scatters a tightly packed RGBA buffer back into the image's rows.
func unpackPix(img *image.RGBA, buf []byte) {
	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	rowBytes := width * 4
	for y := 0; y < height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+rowBytes], buf[y*rowBytes:(y+1)*rowBytes])
	}
}

// Close releases GPU resources. The renderer must not be used afterwards.
// Safe to call multiple times.
func (r *Renderer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pipeline != nil {
		r.pipeline.Destroy()
		r.pipeline = nil
	}
	if !r.externalDevice {
		if r.device != nil {
			r.device.Destroy()
		}
		if r.instance != nil {
			r.instance.Destroy()
		}
	}
	r.device = nil
	r.queue = nil
	r.instance = nil
}
