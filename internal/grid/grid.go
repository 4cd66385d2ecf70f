// Package grid builds the spatial coordinate meshes the disk models
// are evaluated on: a linear axis, its 2D broadcast, an optional
// rotation + elongation transform, and the per-pixel radius.
package grid

import (
	"fmt"
	"math"

	"github.com/mscholz/diskmap/internal/compute"
	"github.com/mscholz/diskmap/internal/field"
)

// Params describes a square pixel grid and its projected geometry.
type Params struct {
	Dim       int
	PixelSize float64
	PA        float64 // position angle [rad]
	Elong     float64 // elongation divisor applied to the rotated y-axis
	Elliptic  bool
}

// Axis returns dim samples (start + i·step)·factor with
// step = (stop − start)/dim. The interval is half-open: stop itself is
// never sampled. Downstream grid symmetry depends on that, so the
// endpoint must stay excluded.
func Axis(start, stop float64, dim int, factor float64) ([]float64, error) {
	if dim < 1 {
		return nil, fmt.Errorf("axis: dim must be positive, got %d", dim)
	}
	step := (stop - start) / float64(dim)
	samples := make([]float64, dim)
	for i := range samples {
		samples[i] = (start + float64(i)*step) * factor
	}
	return samples, nil
}

// Along selects which index a mesh varies with.
type Along int

const (
	AlongRows    Along = iota // value varies with the row index i
	AlongColumns              // value varies with the column index j
)

// Mesh expands a 1D axis into a len(axis)×len(axis) field by full
// outer broadcast.
func Mesh(axis []float64, along Along) *field.Field {
	dim := len(axis)
	mesh := field.New(dim)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if along == AlongRows {
				mesh.Set(i, j, axis[i])
			} else {
				mesh.Set(i, j, axis[j])
			}
		}
	}
	return mesh
}

// Build returns the x- and y-coordinate fields of the grid, in the
// same linear units as PixelSize. Before any rotation, xx varies with
// the column index and yy with the row index. In elliptic mode both
// fields are rotated by PA and the rotated y-field is compressed by
// Elong. Ownership of both fields passes to the caller.
func Build(p Params) (xx, yy *field.Field, err error) {
	if p.Dim < 1 {
		return nil, nil, fmt.Errorf("grid: dim must be positive, got %d", p.Dim)
	}
	if p.Elliptic && p.Elong == 0 {
		return nil, nil, fmt.Errorf("grid: elongation must be non-zero in elliptic mode")
	}

	axis, err := Axis(-0.5, 0.5, p.Dim, float64(p.Dim)*p.PixelSize)
	if err != nil {
		return nil, nil, err
	}
	xx = Mesh(axis, AlongColumns)
	yy = Mesh(axis, AlongRows)

	if !p.Elliptic {
		return xx, yy, nil
	}

	// Both rotated components are computed from the pre-rotation pair.
	// Rotating xx in place first would feed the new x into y'.
	sin, cos := math.Sin(p.PA), math.Cos(p.PA)
	rx, ry := field.New(p.Dim), field.New(p.Dim)
	backend := compute.GetBackend()
	backend.Map2(rx.Data, xx.Data, yy.Data, func(x, y float64) float64 {
		return x*cos - y*sin
	})
	backend.Map2(ry.Data, xx.Data, yy.Data, func(x, y float64) float64 {
		return (x*sin + y*cos) / p.Elong
	})
	return rx, ry, nil
}

// Radius returns the per-pixel Euclidean distance from the origin.
// The origin pixel itself carries r = 0, which singular profiles map
// to infinity.
func Radius(xx, yy *field.Field) *field.Field {
	r := field.New(xx.Dim)
	compute.GetBackend().Map2(r.Data, xx.Data, yy.Data, math.Hypot)
	return r
}
