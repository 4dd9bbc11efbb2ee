package gpu

import (
	"reflect"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

func TestNullDeviceHandle(t *testing.T) {
	var h DeviceHandle = NullDeviceHandle{}

	if h.Device() != nil || h.Queue() != nil || h.Adapter() != nil {
		t.Error("null handle returned a non-nil device, queue or adapter")
	}
	if got := h.SurfaceFormat(); got != gputypes.TextureFormatUndefined {
		t.Errorf("SurfaceFormat() = %v, want Undefined", got)
	}
	if got := h.AdapterInfo(); !reflect.DeepEqual(got, gpucontext.AdapterInfo{}) {
		t.Errorf("AdapterInfo() = %+v, want zero value", got)
	}
}

// halTestProvider exposes HAL handles the way gogpu app contexts do.
type halTestProvider struct {
	device *mockHALDevice
	queue  *mockHALQueue
}

func (p *halTestProvider) HalDevice() any { return p.device }
func (p *halTestProvider) HalQueue() any  { return p.queue }

func TestHalFromProvider(t *testing.T) {
	p := &halTestProvider{device: &mockHALDevice{}, queue: &mockHALQueue{}}

	device, queue, err := HalFromProvider(p)
	if err != nil {
		t.Fatal(err)
	}
	if device != p.device || queue != p.queue {
		t.Error("HalFromProvider returned different handles than the provider exposed")
	}
}

func TestHalFromProviderRejectsBareProvider(t *testing.T) {
	if _, _, err := HalFromProvider(NullDeviceHandle{}); err == nil {
		t.Error("error = nil for a provider without HAL accessors, want error")
	}
}
