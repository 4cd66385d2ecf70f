package config

import "sort"

var Presets = map[string]*Config{
	"compact": {
		Dim: 256, PixelSize: 0.1, Wavelength: 1.0e-4,
		Geometry:    GeometryConfig{Rin: 0.5, Rout: 5.0, Elong: 1.0},
		Temperature: TemperatureConfig{Law: "powerlaw", InnerTemp: 1500, Q: 0.5},
		Density:     DensityConfig{InnerSigma: 1e-3, P: 0.5, Opacity: 10},
	},
	"extended": {
		Dim: 512, PixelSize: 0.2, Wavelength: 1.0e-3,
		Geometry:    GeometryConfig{Rin: 1.0, Rout: 40.0, Elong: 1.0},
		Temperature: TemperatureConfig{Law: "powerlaw", InnerTemp: 800, Q: 0.75},
		Density:     DensityConfig{InnerSigma: 5e-3, P: 1.0, Opacity: 4},
	},
	"irradiated": {
		Dim: 512, PixelSize: 0.1, Wavelength: 1.3e-3,
		Geometry:    GeometryConfig{Rin: 0.5, Rout: 25.0, Elong: 1.0},
		Temperature: TemperatureConfig{Law: "constant", StellarRadius: 0.05, StellarTemperature: 7800},
		Density:     DensityConfig{InnerSigma: 1e-3, P: 0.5, Opacity: 10},
	},
	"inclined": {
		Dim: 512, PixelSize: 0.1, Wavelength: 1.0e-4,
		Geometry:    GeometryConfig{Rin: 0.5, Rout: 25.0, PA: 0.6, Elong: 1.5, Elliptic: true},
		Temperature: TemperatureConfig{Law: "powerlaw", InnerTemp: 1500, Q: 0.5},
		Density:     DensityConfig{InnerSigma: 1e-3, P: 0.5, Opacity: 10},
	},
	"asymmetric": {
		Dim: 512, PixelSize: 0.1, Wavelength: 1.0e-4,
		Geometry:    GeometryConfig{Rin: 0.5, Rout: 25.0, Elong: 1.0},
		Temperature: TemperatureConfig{Law: "powerlaw", InnerTemp: 1500, Q: 0.5},
		Density:     DensityConfig{InnerSigma: 1e-3, P: 0.5, Opacity: 10},
		Asymmetry:   AsymmetryConfig{Enabled: true, A: 0.5, Phi: 0.61},
	},
}

// GetPreset returns a copy of the named preset; mutating the result
// leaves the preset table untouched.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
