// Package disk composes the grid, profile and radiative stages into a
// full synthetic brightness map of a single disk component.
package disk

import (
	"fmt"

	"github.com/mscholz/diskmap/internal/compute"
	"github.com/mscholz/diskmap/internal/field"
	"github.com/mscholz/diskmap/internal/grid"
	"github.com/mscholz/diskmap/internal/profile"
	"github.com/mscholz/diskmap/internal/radiative"
)

// TemperatureLaw selects how the disk temperature falls off with
// radius.
type TemperatureLaw int

const (
	// PowerLaw: T = InnerTemp·(r/Rin)^−Q.
	PowerLaw TemperatureLaw = iota
	// Constant luminosity (irradiated): T = T*·sqrt(R*/2r).
	Constant
)

// Model holds the geometric and physical parameters of one disk
// component. All lengths (Rin, Rout, StellarRadius, pixel size) share
// the same linear unit; unit consistency is a precondition, never a
// silent conversion.
type Model struct {
	// Projected geometry.
	PA       float64 // position angle [rad]
	Elong    float64 // elongation divisor
	Elliptic bool

	// Radial bounds. Pixels outside [Rin, Rout] are zero. Rout <= 0
	// disables the outer truncation.
	Rin  float64
	Rout float64

	Law                TemperatureLaw
	InnerTemp          float64 // [K], power-law only
	Q                  float64 // temperature exponent, power-law only
	StellarRadius      float64 // constant law only
	StellarTemperature float64 // [K], constant law only

	// Emissivity 1 − exp(−Σκ) unless the disk is optically thick.
	InnerSigma     float64
	P              float64 // surface density exponent
	Opacity        float64
	OpticallyThick bool

	// Asymmetric brightness factor 1 + A·cos(atan2(y,x) − Phi).
	Asymmetric bool
	A          float64
	Phi        float64 // [rad]
}

func (m *Model) Validate() error {
	if m.Rin <= 0 {
		return fmt.Errorf("disk: inner radius must be positive, got %g", m.Rin)
	}
	if m.Rout > 0 && m.Rout < m.Rin {
		return fmt.Errorf("disk: outer radius %g is inside inner radius %g", m.Rout, m.Rin)
	}
	if m.Elliptic && m.Elong == 0 {
		return fmt.Errorf("disk: elongation must be non-zero in elliptic mode")
	}
	switch m.Law {
	case PowerLaw:
		if m.InnerTemp <= 0 {
			return fmt.Errorf("disk: inner temperature must be positive, got %g", m.InnerTemp)
		}
	case Constant:
		if m.StellarRadius <= 0 || m.StellarTemperature <= 0 {
			return fmt.Errorf("disk: constant law needs positive stellar radius and temperature")
		}
	default:
		return fmt.Errorf("disk: unknown temperature law %d", m.Law)
	}
	if !m.OpticallyThick && m.InnerSigma <= 0 {
		return fmt.Errorf("disk: inner surface density must be positive, got %g", m.InnerSigma)
	}
	return nil
}

// Image renders the component as a dim×dim flux density map [Jy] at
// the given wavelength [cm]. The caller owns the returned field.
func (m *Model) Image(dim int, pixelSize, wavelength float64) (*field.Field, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if dim < 1 {
		return nil, fmt.Errorf("disk: dim must be positive, got %d", dim)
	}
	if pixelSize <= 0 {
		return nil, fmt.Errorf("disk: pixel size must be positive, got %g", pixelSize)
	}
	if wavelength <= 0 {
		return nil, fmt.Errorf("disk: wavelength must be positive, got %g", wavelength)
	}

	xx, yy, err := grid.Build(grid.Params{
		Dim:       dim,
		PixelSize: pixelSize,
		PA:        m.PA,
		Elong:     m.Elong,
		Elliptic:  m.Elliptic,
	})
	if err != nil {
		return nil, err
	}
	r := grid.Radius(xx, yy)

	var temperature *field.Field
	if m.Law == Constant {
		temperature = profile.ConstTemperature(r, m.StellarRadius, m.StellarTemperature)
	} else {
		temperature = profile.TemperaturePowerLaw(r, m.InnerTemp, m.Rin, m.Q)
	}

	img, err := radiative.Intensity(temperature, wavelength, pixelSize)
	if err != nil {
		return nil, err
	}

	if !m.OpticallyThick {
		sigma := profile.SurfaceDensity(r, m.InnerSigma, m.Rin, m.P)
		img.Mul(profile.OpticalThickness(sigma, m.Opacity))
	}

	backend := compute.GetBackend()
	if m.Asymmetric {
		mod := profile.AzimuthalModulation(xx, yy, m.A, m.Phi)
		backend.Map2(img.Data, img.Data, mod.Data, func(v, mv float64) float64 {
			return v * (1.0 + mv)
		})
	}

	// Annulus mask as a selection, not a multiplication: the masked
	// r=0 pixel can carry an infinite intensity, and 0·Inf is NaN.
	rin, rout := m.Rin, m.Rout
	backend.Map2(img.Data, img.Data, r.Data, func(v, rv float64) float64 {
		if rv < rin || (rout > 0 && rv > rout) {
			return 0
		}
		return v
	})
	return img, nil
}
