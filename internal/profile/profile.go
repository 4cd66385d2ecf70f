package profile

import (
	"math"

	"github.com/mscholz/diskmap/internal/compute"
	"github.com/mscholz/diskmap/internal/field"
)

// ConstTemperature evaluates the irradiated-disk temperature
// T = stellarTemperature·sqrt(stellarRadius/(2r)). stellarRadius must
// be expressed in the same linear units as the radius field; no unit
// conversion is applied. The r = 0 pixel evaluates to +Inf.
func ConstTemperature(r *field.Field, stellarRadius, stellarTemperature float64) *field.Field {
	out := field.New(r.Dim)
	compute.GetBackend().Map(out.Data, r.Data, func(rv float64) float64 {
		return stellarTemperature * math.Sqrt(stellarRadius/(2.0*rv))
	})
	return out
}

// TemperaturePowerLaw evaluates T = innerTemp·(r/innerRadius)^−q.
// At r = innerRadius the result is exactly innerTemp.
func TemperaturePowerLaw(r *field.Field, innerTemp, innerRadius, q float64) *field.Field {
	out := field.New(r.Dim)
	compute.GetBackend().Map(out.Data, r.Data, func(rv float64) float64 {
		return innerTemp * math.Pow(rv/innerRadius, -q)
	})
	return out
}

// SurfaceDensity evaluates Σ = innerSigma·(r/innerRadius)^−p.
func SurfaceDensity(r *field.Field, innerSigma, innerRadius, p float64) *field.Field {
	out := field.New(r.Dim)
	compute.GetBackend().Map(out.Data, r.Data, func(rv float64) float64 {
		return innerSigma * math.Pow(rv/innerRadius, -p)
	})
	return out
}

// AzimuthalModulation evaluates a·cos(atan2(y, x) − phi) on the grid
// coordinates. phi is in radians; atan2 gives the correctly signed
// angle in (−π, π].
func AzimuthalModulation(xx, yy *field.Field, a, phi float64) *field.Field {
	out := field.New(xx.Dim)
	compute.GetBackend().Map2(out.Data, xx.Data, yy.Data, func(x, y float64) float64 {
		return a * math.Cos(math.Atan2(y, x)-phi)
	})
	return out
}

// OpticalThickness maps a surface density field to τ = 1 − exp(−Σκ),
// dimensionless and in [0, 1) for non-negative Σκ.
func OpticalThickness(sigma *field.Field, opacity float64) *field.Field {
	out := field.New(sigma.Dim)
	compute.GetBackend().Map(out.Data, sigma.Data, func(s float64) float64 {
		return 1.0 - math.Exp(-s*opacity)
	})
	return out
}
