package image

import (
	"github.com/feagi/feagi-data-processing/internal/bounds"
	"github.com/feagi/feagi-data-processing/internal/corticalid"
	"github.com/feagi/feagi-data-processing/internal/neuron"
)

// EncodeFrame converts one frame into a neuron array: each pixel
// channel sample becomes one neuron at (x, y, channel) with potential
// equal to the sample normalized to [0, 1].
func EncodeFrame(frame Frame) *neuron.Array {
	channels := frame.Format.Channels()
	arr := neuron.NewArray(int(frame.Width) * int(frame.Height) * channels)

	for y := uint32(0); y < frame.Height; y++ {
		for x := uint32(0); x < frame.Width; x++ {
			off := frame.offsetRowMajor(x, y)
			for c := 0; c < channels; c++ {
				v := frame.Pixels[off+c]
				arr.Append(x, y, uint32(c), float32(v)/255.0)
			}
		}
	}
	return arr
}

type visionCell struct {
	gray, color corticalid.SensorKind
	get         func(Segmented) Frame
}

var visionCells = []visionCell{
	{corticalid.SensorVisionCenterGray, corticalid.SensorVisionCenterColor, func(s Segmented) Frame { return s.Center }},
	{corticalid.SensorVisionTopLeftGray, corticalid.SensorVisionTopLeftColor, func(s Segmented) Frame { return s.TopLeft }},
	{corticalid.SensorVisionTopMidGray, corticalid.SensorVisionTopMidColor, func(s Segmented) Frame { return s.TopMid }},
	{corticalid.SensorVisionTopRightGray, corticalid.SensorVisionTopRightColor, func(s Segmented) Frame { return s.TopRight }},
	{corticalid.SensorVisionMidLeftGray, corticalid.SensorVisionMidLeftColor, func(s Segmented) Frame { return s.MidLeft }},
	{corticalid.SensorVisionMidRightGray, corticalid.SensorVisionMidRightColor, func(s Segmented) Frame { return s.MidRight }},
	{corticalid.SensorVisionBottomLeftGray, corticalid.SensorVisionBottomLeftColor, func(s Segmented) Frame { return s.BottomLeft }},
	{corticalid.SensorVisionBottomMidGray, corticalid.SensorVisionBottomMidColor, func(s Segmented) Frame { return s.BottomMid }},
	{corticalid.SensorVisionBottomRightGray, corticalid.SensorVisionBottomRightColor, func(s Segmented) Frame { return s.BottomRight }},
}

// EncodeSegmented converts all nine cells of seg into neuron arrays,
// keyed by the vision cortical identifier each cell feeds. color
// selects the uppercase (color) or lowercase (grayscale) sensor family
// for every cell.
func EncodeSegmented(seg Segmented, grouping bounds.GroupingIndex, color bool) (*neuron.MappedData, error) {
	data := neuron.NewMappedData()
	for _, vc := range visionCells {
		kind := vc.gray
		if color {
			kind = vc.color
		}
		area, err := corticalid.NewSensor(kind, grouping)
		if err != nil {
			return nil, err
		}
		data.Set(area, EncodeFrame(vc.get(seg)))
	}
	return data, nil
}
