package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDim        = 512
	DefaultPixelSize  = 0.1
	DefaultWavelength = 1.0e-4 // [cm]
	DefaultRin        = 0.5
	DefaultRout       = 25.0
	DefaultInnerTemp  = 1500.0
	DefaultQ          = 0.5
	DefaultInnerSigma = 1e-3
	DefaultP          = 0.5
	DefaultOpacity    = 10.0
)

type Config struct {
	Dim        int     `yaml:"dim"`
	PixelSize  float64 `yaml:"pixel_size"`
	Wavelength float64 `yaml:"wavelength"`

	Geometry    GeometryConfig    `yaml:"geometry"`
	Temperature TemperatureConfig `yaml:"temperature"`
	Density     DensityConfig     `yaml:"density"`
	Asymmetry   AsymmetryConfig   `yaml:"asymmetry"`
}

type GeometryConfig struct {
	Rin      float64 `yaml:"rin"`
	Rout     float64 `yaml:"rout"`
	PA       float64 `yaml:"pa"`
	Elong    float64 `yaml:"elong"`
	Elliptic bool    `yaml:"elliptic"`
}

type TemperatureConfig struct {
	Law                string  `yaml:"law"` // "powerlaw" or "constant"
	InnerTemp          float64 `yaml:"inner_temp"`
	Q                  float64 `yaml:"q"`
	StellarRadius      float64 `yaml:"stellar_radius"`
	StellarTemperature float64 `yaml:"stellar_temperature"`
}

type DensityConfig struct {
	InnerSigma     float64 `yaml:"inner_sigma"`
	P              float64 `yaml:"p"`
	Opacity        float64 `yaml:"opacity"`
	OpticallyThick bool    `yaml:"optically_thick"`
}

type AsymmetryConfig struct {
	Enabled bool    `yaml:"enabled"`
	A       float64 `yaml:"a"`
	Phi     float64 `yaml:"phi"` // [rad]
}

func DefaultConfig() *Config {
	return &Config{
		Dim:        DefaultDim,
		PixelSize:  DefaultPixelSize,
		Wavelength: DefaultWavelength,
		Geometry: GeometryConfig{
			Rin:   DefaultRin,
			Rout:  DefaultRout,
			Elong: 1.0,
		},
		Temperature: TemperatureConfig{
			Law:       "powerlaw",
			InnerTemp: DefaultInnerTemp,
			Q:         DefaultQ,
		},
		Density: DensityConfig{
			InnerSigma: DefaultInnerSigma,
			P:          DefaultP,
			Opacity:    DefaultOpacity,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Dim < 1 {
		return fmt.Errorf("config: dim must be positive, got %d", c.Dim)
	}
	if c.PixelSize <= 0 {
		return fmt.Errorf("config: pixel_size must be positive, got %g", c.PixelSize)
	}
	if c.Wavelength <= 0 {
		return fmt.Errorf("config: wavelength must be positive, got %g", c.Wavelength)
	}
	switch c.Temperature.Law {
	case "powerlaw", "constant":
	default:
		return fmt.Errorf("config: unknown temperature law %q", c.Temperature.Law)
	}
	if c.Geometry.Elliptic && c.Geometry.Elong == 0 {
		return fmt.Errorf("config: elong must be non-zero when elliptic")
	}
	return nil
}
