package mem

import (
	"fmt"
	"image"
)

// Plane is one plane of one frame, held in memory. Samples are addressed
// in the native range of the plane's bit depth.
type Plane interface {
	image.Image

	Bits() int
	Peak() int
	Sample(x, y int) int
	SetSample(x, y, value int)

	// CloneEmpty returns a zeroed plane of the same geometry and depth.
	CloneEmpty() Plane
	Clone() Plane
}

// NewPlane allocates a zeroed plane. Depths up to 8 bits are backed by
// image.Gray, deeper ones by image.Gray16.
func NewPlane(bits, width, height int) (Plane, error) {
	switch {
	case bits < 1 || bits > 16:
		return nil, fmt.Errorf("unsupported bit depth %d", bits)
	case bits <= 8:
		return &gray8Plane{
			Gray: image.NewGray(image.Rect(0, 0, width, height)),
			bits: bits,
		}, nil
	default:
		return &gray16Plane{
			Gray16: image.NewGray16(image.Rect(0, 0, width, height)),
			bits:   bits,
		}, nil
	}
}

type gray8Plane struct {
	*image.Gray
	bits int
}

func (p *gray8Plane) Bits() int {
	return p.bits
}

func (p *gray8Plane) Peak() int {
	return 1<<p.bits - 1
}

func (p *gray8Plane) Sample(x, y int) int {
	return int(p.Pix[p.PixOffset(x, y)])
}

func (p *gray8Plane) SetSample(x, y, value int) {
	p.Pix[p.PixOffset(x, y)] = uint8(clamp(value, 0, p.Peak()))
}

func (p *gray8Plane) CloneEmpty() Plane {
	return &gray8Plane{
		Gray: image.NewGray(p.Bounds()),
		bits: p.bits,
	}
}

func (p *gray8Plane) Clone() Plane {
	result := p.CloneEmpty().(*gray8Plane)
	copy(result.Pix, p.Pix)
	return result
}

type gray16Plane struct {
	*image.Gray16
	bits int
}

func (p *gray16Plane) Bits() int {
	return p.bits
}

func (p *gray16Plane) Peak() int {
	return 1<<p.bits - 1
}

func (p *gray16Plane) Sample(x, y int) int {
	offset := p.PixOffset(x, y)
	return int(p.Pix[offset])<<8 | int(p.Pix[offset+1])
}

func (p *gray16Plane) SetSample(x, y, value int) {
	v := uint16(clamp(value, 0, p.Peak()))
	offset := p.PixOffset(x, y)
	p.Pix[offset] = uint8(v >> 8)
	p.Pix[offset+1] = uint8(v)
}

func (p *gray16Plane) CloneEmpty() Plane {
	return &gray16Plane{
		Gray16: image.NewGray16(p.Bounds()),
		bits:   p.bits,
	}
}

func (p *gray16Plane) Clone() Plane {
	result := p.CloneEmpty().(*gray16Plane)
	copy(result.Pix, p.Pix)
	return result
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
