package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mscholz/diskmap/internal/config"
	"github.com/mscholz/diskmap/internal/disk"
	"github.com/mscholz/diskmap/internal/field"
)

var (
	dim        int
	pixelSize  float64
	wavelength float64

	rin      float64
	rout     float64
	pa       float64
	elong    float64
	elliptic bool

	law                string
	innerTemp          float64
	q                  float64
	stellarRadius      float64
	stellarTemperature float64

	innerSigma     float64
	p              float64
	opacity        float64
	opticallyThick bool

	asymmetric bool
	a          float64
	phi        float64

	configFile string
	preset     string
	format     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "diskmap",
		Short: "synthetic brightness maps of astrophysical disks",
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render an intensity map",
		RunE:  renderImage,
	}
	renderCmd.Flags().IntVar(&dim, "dim", config.DefaultDim, "grid resolution [px]")
	renderCmd.Flags().Float64Var(&pixelSize, "pixel-size", config.DefaultPixelSize, "pixel size")
	renderCmd.Flags().Float64Var(&wavelength, "wavelength", config.DefaultWavelength, "wavelength [cm]")
	renderCmd.Flags().Float64Var(&rin, "rin", config.DefaultRin, "inner radius")
	renderCmd.Flags().Float64Var(&rout, "rout", config.DefaultRout, "outer radius (<=0 for unbounded)")
	renderCmd.Flags().Float64Var(&pa, "pa", 0.0, "position angle [rad]")
	renderCmd.Flags().Float64Var(&elong, "elong", 1.0, "elongation factor")
	renderCmd.Flags().BoolVar(&elliptic, "elliptic", false, "apply rotation + elongation")
	renderCmd.Flags().StringVar(&law, "law", "powerlaw", "temperature law (powerlaw, constant)")
	renderCmd.Flags().Float64Var(&innerTemp, "inner-temp", config.DefaultInnerTemp, "inner temperature [K]")
	renderCmd.Flags().Float64Var(&q, "q", config.DefaultQ, "temperature exponent")
	renderCmd.Flags().Float64Var(&stellarRadius, "stellar-radius", 0.05, "stellar radius (constant law)")
	renderCmd.Flags().Float64Var(&stellarTemperature, "stellar-temp", 7800, "stellar temperature [K] (constant law)")
	renderCmd.Flags().Float64Var(&innerSigma, "inner-sigma", config.DefaultInnerSigma, "inner surface density")
	renderCmd.Flags().Float64Var(&p, "p", config.DefaultP, "surface density exponent")
	renderCmd.Flags().Float64Var(&opacity, "opacity", config.DefaultOpacity, "dust opacity")
	renderCmd.Flags().BoolVar(&opticallyThick, "thick", false, "optically thick (emissivity 1)")
	renderCmd.Flags().BoolVar(&asymmetric, "asymmetric", false, "apply azimuthal brightness asymmetry")
	renderCmd.Flags().Float64Var(&a, "a", 0.5, "asymmetry amplitude")
	renderCmd.Flags().Float64Var(&phi, "phi", 0.0, "asymmetry phase [rad]")
	renderCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	renderCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	renderCmd.Flags().StringVar(&format, "format", "stats", "output format (stats, csv, json)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark rendering across resolutions",
		RunE:  benchRender,
	}

	rootCmd.AddCommand(renderCmd, presetsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func renderImage(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()

	if preset != "" {
		pcfg := config.GetPreset(preset)
		if pcfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = pcfg
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	applyFlags(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	model := modelFromConfig(cfg)

	start := time.Now()
	img, err := model.Image(cfg.Dim, cfg.PixelSize, cfg.Wavelength)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	switch format {
	case "csv":
		return writeCSV(img)
	case "json":
		return writeJSON(cfg, img)
	case "stats":
		fmt.Printf("rendered %dx%d map in %v\n", cfg.Dim, cfg.Dim, elapsed)
		fmt.Printf("wavelength: %g cm\n", cfg.Wavelength)
		fmt.Printf("total flux: %.6g Jy\n", img.Total())
		fmt.Printf("peak: %.6g Jy\n", img.Peak())
		fmt.Printf("min: %.6g Jy\n", img.MinValue())
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// applyFlags lets explicitly set CLI flags override preset and config
// file values.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("dim") {
		cfg.Dim = dim
	}
	if flags.Changed("pixel-size") {
		cfg.PixelSize = pixelSize
	}
	if flags.Changed("wavelength") {
		cfg.Wavelength = wavelength
	}
	if flags.Changed("rin") {
		cfg.Geometry.Rin = rin
	}
	if flags.Changed("rout") {
		cfg.Geometry.Rout = rout
	}
	if flags.Changed("pa") {
		cfg.Geometry.PA = pa
	}
	if flags.Changed("elong") {
		cfg.Geometry.Elong = elong
	}
	if flags.Changed("elliptic") {
		cfg.Geometry.Elliptic = elliptic
	}
	if flags.Changed("law") {
		cfg.Temperature.Law = law
	}
	if flags.Changed("inner-temp") {
		cfg.Temperature.InnerTemp = innerTemp
	}
	if flags.Changed("q") {
		cfg.Temperature.Q = q
	}
	if flags.Changed("stellar-radius") {
		cfg.Temperature.StellarRadius = stellarRadius
	}
	if flags.Changed("stellar-temp") {
		cfg.Temperature.StellarTemperature = stellarTemperature
	}
	if flags.Changed("inner-sigma") {
		cfg.Density.InnerSigma = innerSigma
	}
	if flags.Changed("p") {
		cfg.Density.P = p
	}
	if flags.Changed("opacity") {
		cfg.Density.Opacity = opacity
	}
	if flags.Changed("thick") {
		cfg.Density.OpticallyThick = opticallyThick
	}
	if flags.Changed("asymmetric") {
		cfg.Asymmetry.Enabled = asymmetric
	}
	if flags.Changed("a") {
		cfg.Asymmetry.A = a
	}
	if flags.Changed("phi") {
		cfg.Asymmetry.Phi = phi
	}
}

func modelFromConfig(cfg *config.Config) *disk.Model {
	tlaw := disk.PowerLaw
	if cfg.Temperature.Law == "constant" {
		tlaw = disk.Constant
	}
	return &disk.Model{
		PA:                 cfg.Geometry.PA,
		Elong:              cfg.Geometry.Elong,
		Elliptic:           cfg.Geometry.Elliptic,
		Rin:                cfg.Geometry.Rin,
		Rout:               cfg.Geometry.Rout,
		Law:                tlaw,
		InnerTemp:          cfg.Temperature.InnerTemp,
		Q:                  cfg.Temperature.Q,
		StellarRadius:      cfg.Temperature.StellarRadius,
		StellarTemperature: cfg.Temperature.StellarTemperature,
		InnerSigma:         cfg.Density.InnerSigma,
		P:                  cfg.Density.P,
		Opacity:            cfg.Density.Opacity,
		OpticallyThick:     cfg.Density.OpticallyThick,
		Asymmetric:         cfg.Asymmetry.Enabled,
		A:                  cfg.Asymmetry.A,
		Phi:                cfg.Asymmetry.Phi,
	}
}

func writeCSV(img *field.Field) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	row := make([]string, img.Dim)
	for i := 0; i < img.Dim; i++ {
		for j := 0; j < img.Dim; j++ {
			row[j] = strconv.FormatFloat(img.At(i, j), 'g', -1, 64)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(cfg *config.Config, img *field.Field) error {
	out := struct {
		Dim        int         `json:"dim"`
		PixelSize  float64     `json:"pixel_size"`
		Wavelength float64     `json:"wavelength"`
		TotalFlux  float64     `json:"total_flux"`
		Peak       float64     `json:"peak"`
		Pixels     [][]float64 `json:"pixels"`
	}{
		Dim:        img.Dim,
		PixelSize:  cfg.PixelSize,
		Wavelength: cfg.Wavelength,
		TotalFlux:  img.Total(),
		Peak:       img.Peak(),
		Pixels:     make([][]float64, img.Dim),
	}
	for i := 0; i < img.Dim; i++ {
		out.Pixels[i] = img.Data[i*img.Dim : (i+1)*img.Dim]
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func benchRender(cmd *cobra.Command, args []string) error {
	dims := []int{64, 128, 256, 512, 1024}

	cfg := config.DefaultConfig()
	model := modelFromConfig(cfg)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DIM\tPIXELS\tTIME\tPIXELS/SEC")

	for _, d := range dims {
		start := time.Now()
		img, err := model.Image(d, cfg.PixelSize, cfg.Wavelength)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		pixels := img.Len()
		fmt.Fprintf(w, "%d\t%d\t%v\t%.0f\n",
			d, pixels, elapsed, float64(pixels)/elapsed.Seconds())
	}

	return w.Flush()
}
