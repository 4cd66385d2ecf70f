// Package profile provides the radial and azimuthal physical models
// evaluated over a grid:
//
//   - [ConstTemperature]: irradiated-disk temperature, T = T*·sqrt(R*/2r)
//   - [TemperaturePowerLaw]: flared-disk temperature, T = Tin·(r/Rin)^−q
//   - [SurfaceDensity]: power-law surface density, Σ = Σin·(r/Rin)^−p
//   - [AzimuthalModulation]: cosine asymmetry, a·cos(atan2(y,x) − φ)
//   - [OpticalThickness]: τ = 1 − exp(−Σκ)
//
// Each function is pure and elementwise; the output field is aligned
// pixel-for-pixel with the input. Singular or out-of-domain pixels
// follow IEEE semantics (the origin pixel of the irradiated law is
// +Inf) rather than being clamped.
package profile
