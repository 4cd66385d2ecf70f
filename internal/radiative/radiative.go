// Package radiative converts temperature fields into monochromatic
// intensity maps via the Planck blackbody law, in Jansky-equivalent
// flux density units.
package radiative

import (
	"fmt"
	"math"

	"github.com/mscholz/diskmap/internal/compute"
	"github.com/mscholz/diskmap/internal/field"
)

// Planck evaluates the blackbody spectral radiance
//
//	B(T, λ) = (2hν³/c²) · 1/(exp(hν/(kT)) − 1),  ν = c/λ
//
// in CGS units. Temperature [K] and wavelength [cm] must be strictly
// positive. At very low temperatures or very short wavelengths the
// exponential term overflows to +Inf and the radiance underflows to
// zero; that is a legitimate numeric edge case, not an error.
func Planck(temperature, wavelength float64) (float64, error) {
	if temperature <= 0 {
		return 0, fmt.Errorf("planck: temperature must be positive, got %g", temperature)
	}
	if wavelength <= 0 {
		return 0, fmt.Errorf("planck: wavelength must be positive, got %g", wavelength)
	}
	return planck(temperature, wavelength), nil
}

func planck(temperature, wavelength float64) float64 {
	nu := C / wavelength // Hz
	return (2.0 * H * nu * nu * nu / C2) / (math.Exp(H*nu/(Kb*temperature)) - 1.0)
}

// Intensity converts a temperature field into flux density [Jy] at the
// given wavelength: I = B(T, λ)·pixelSize²·BBToJy per pixel. The pixel
// area stands in for the solid angle; this plane-parallel
// simplification is deliberate and must be preserved. Every pixel of
// the temperature field must be strictly positive (+Inf from a
// singular profile is allowed and propagates).
func Intensity(temperature *field.Field, wavelength, pixelSize float64) (*field.Field, error) {
	if wavelength <= 0 {
		return nil, fmt.Errorf("intensity: wavelength must be positive, got %g", wavelength)
	}
	if pixelSize <= 0 {
		return nil, fmt.Errorf("intensity: pixel size must be positive, got %g", pixelSize)
	}
	for _, t := range temperature.Data {
		if t <= 0 {
			return nil, fmt.Errorf("intensity: temperature field must be strictly positive, got %g", t)
		}
	}

	out := field.New(temperature.Dim)
	compute.GetBackend().Map(out.Data, temperature.Data, func(t float64) float64 {
		return planck(t, wavelength)
	})
	out.Scale(pixelSize * pixelSize * BBToJy)
	return out, nil
}
