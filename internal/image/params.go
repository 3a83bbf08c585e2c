package image

import (
	"math"

	"github.com/feagi/feagi-data-processing/internal/bounds"
)

// CropParams is an axis-aligned crop in source pixels.
type CropParams struct {
	X, Y, Width, Height uint32
}

// ResizeParams is a target resolution, nearest-neighbor sampled.
type ResizeParams struct {
	Width, Height uint32
}

// FrameProcessingParameters enumerates the transforms requested for one
// frame. Any combination of fields may be set; Apply fuses them into a
// single pass over the output buffer rather than materializing an
// intermediate frame per transform.
type FrameProcessingParameters struct {
	Crop              *CropParams
	Resize            *ResizeParams
	ConvertColorSpace *bounds.ColorSpace
}

// Apply runs the requested transforms on frame. The observable result
// is identical to applying Crop, then Resize, then
// ConvertColorSpace in sequence; the fusion is only an implementation
// detail that avoids allocating an intermediate buffer per stage.
func Apply(frame Frame, params FrameProcessingParameters) (Frame, error) {
	if err := frame.Validate(); err != nil {
		return Frame{}, err
	}
	if frame.Order != bounds.MemoryOrderRowMajor {
		return Frame{}, ErrUnsupportedMemoryOrder
	}

	cropX, cropY, cropW, cropH := uint32(0), uint32(0), frame.Width, frame.Height
	if params.Crop != nil {
		cropX, cropY, cropW, cropH = params.Crop.X, params.Crop.Y, params.Crop.Width, params.Crop.Height
		if cropX+cropW > frame.Width || cropY+cropH > frame.Height {
			return Frame{}, ErrSegmentOutOfBounds
		}
	}

	outW, outH := cropW, cropH
	if params.Resize != nil {
		outW, outH = params.Resize.Width, params.Resize.Height
	}

	channels := frame.Format.Channels()
	out := make([]byte, int(outW)*int(outH)*channels)

	var convert func(byte) byte
	if params.ConvertColorSpace != nil && *params.ConvertColorSpace != frame.Space {
		convert = colorSpaceConverter(frame.Space, *params.ConvertColorSpace)
	}

	for dy := uint32(0); dy < outH; dy++ {
		srcY := cropY + mapNearest(dy, outH, cropH)
		for dx := uint32(0); dx < outW; dx++ {
			srcX := cropX + mapNearest(dx, outW, cropW)
			srcOff := frame.offsetRowMajor(srcX, srcY)
			dstOff := (int(dy)*int(outW) + int(dx)) * channels
			for c := 0; c < channels; c++ {
				v := frame.Pixels[srcOff+c]
				if convert != nil {
					v = convert(v)
				}
				out[dstOff+c] = v
			}
		}
	}

	resultSpace := frame.Space
	if params.ConvertColorSpace != nil {
		resultSpace = *params.ConvertColorSpace
	}

	return Frame{
		Width: outW, Height: outH,
		Format: frame.Format, Space: resultSpace, Order: frame.Order,
		Pixels: out,
	}, nil
}

// mapNearest maps destination coordinate d, out of dstExtent total, to
// the nearest source coordinate out of srcExtent total.
func mapNearest(d, dstExtent, srcExtent uint32) uint32 {
	if dstExtent <= 1 {
		return 0
	}
	scaled := uint32(math.Round(float64(d) * float64(srcExtent-1) / float64(dstExtent-1)))
	if scaled >= srcExtent {
		return srcExtent - 1
	}
	return scaled
}

// colorSpaceConverter returns a per-channel sample converter between
// linear and gamma-encoded representations using the sRGB-ish gamma of
// 2.2, the common approximation for 8-bit pixel data.
func colorSpaceConverter(from, to bounds.ColorSpace) func(byte) byte {
	const gamma = 2.2
	switch {
	case from == bounds.ColorSpaceLinear && to == bounds.ColorSpaceGamma:
		return func(v byte) byte {
			normalized := float64(v) / 255.0
			return byte(math.Round(math.Pow(normalized, 1/gamma) * 255.0))
		}
	case from == bounds.ColorSpaceGamma && to == bounds.ColorSpaceLinear:
		return func(v byte) byte {
			normalized := float64(v) / 255.0
			return byte(math.Round(math.Pow(normalized, gamma) * 255.0))
		}
	default:
		return func(v byte) byte { return v }
	}
}
