// Package field provides the square 2D double-precision grid shared by
// every pipeline stage. Pixel (i, j) refers to the same physical
// location across all fields derived from the same grid.
package field

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Field is a dim×dim grid of float64 values with flat row-major
// backing. A Field is owned by whoever created it; no pipeline stage
// retains a reference after returning.
type Field struct {
	Dim  int
	Data []float64
}

func New(dim int) *Field {
	return &Field{Dim: dim, Data: make([]float64, dim*dim)}
}

func (f *Field) At(i, j int) float64     { return f.Data[i*f.Dim+j] }
func (f *Field) Set(i, j int, v float64) { f.Data[i*f.Dim+j] = v }
func (f *Field) Len() int                { return len(f.Data) }

// Mul multiplies f elementwise by g in place.
func (f *Field) Mul(g *Field) { floats.Mul(f.Data, g.Data) }

// Scale multiplies every pixel by s in place.
func (f *Field) Scale(s float64) { floats.Scale(s, f.Data) }

// Total is the sum over all pixels.
func (f *Field) Total() float64 { return floats.Sum(f.Data) }

// Peak is the largest pixel value.
func (f *Field) Peak() float64 { return floats.Max(f.Data) }

// MinValue is the smallest pixel value.
func (f *Field) MinValue() float64 { return floats.Min(f.Data) }

// IsFinite reports whether every pixel is a finite number. Singular
// profile evaluations (the r=0 pixel of the irradiated temperature
// law) legitimately produce infinities; callers that need finite data
// should check before reducing.
func (f *Field) IsFinite() bool {
	for _, v := range f.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
