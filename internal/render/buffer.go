package render

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// dynamicBuffer is a GPU buffer that grows to fit uploaded data and is
// reused across frames. Growth allocates 1.5x the requested size so a
// slowly growing point count does not reallocate every frame. The buffer
// never shrinks.
type dynamicBuffer struct {
	buf      hal.Buffer
	capacity uint64
	label    string
	usage    gputypes.BufferUsage
}

func newDynamicBuffer(label string, usage gputypes.BufferUsage) *dynamicBuffer {
	return &dynamicBuffer{
		label: label,
		usage: usage | gputypes.BufferUsageCopyDst,
	}
}

// upload writes data into the buffer, reallocating first if the current
// capacity is too small. A zero-length upload is a no-op.
func (b *dynamicBuffer) upload(device hal.Device, queue hal.Queue, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	need := uint64(len(data))
	if need > b.capacity {
		b.destroy(device)
		newCap := need + need/2
		buf, err := device.CreateBuffer(&hal.BufferDescriptor{
			Label: b.label,
			Size:  newCap,
			Usage: b.usage,
		})
		if err != nil {
			return fmt.Errorf("create %s: %w", b.label, err)
		}
		b.buf = buf
		b.capacity = newCap
	}
	queue.WriteBuffer(b.buf, 0, data)
	return nil
}

func (b *dynamicBuffer) destroy(device hal.Device) {
	if b.buf != nil {
		device.DestroyBuffer(b.buf)
		b.buf = nil
		b.capacity = 0
	}
}
