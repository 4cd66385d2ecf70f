package radiative

import (
	"math"
	"testing"

	"github.com/mscholz/diskmap/internal/field"
)

func TestPlanckMonotonicInTemperature(t *testing.T) {
	wavelength := 1e-4 // cm

	prev := 0.0
	for temp := 100.0; temp <= 2000.0; temp += 100.0 {
		b, err := Planck(temp, wavelength)
		if err != nil {
			t.Fatalf("planck(%g) failed: %v", temp, err)
		}
		if b <= prev {
			t.Fatalf("radiance not increasing at T=%g: %g <= %g", temp, b, prev)
		}
		prev = b
	}
}

func TestPlanckRejectsNonPositiveInputs(t *testing.T) {
	if _, err := Planck(0, 1e-4); err == nil {
		t.Error("expected error for zero temperature")
	}
	if _, err := Planck(-10, 1e-4); err == nil {
		t.Error("expected error for negative temperature")
	}
	if _, err := Planck(300, 0); err == nil {
		t.Error("expected error for zero wavelength")
	}
	if _, err := Planck(300, -1e-4); err == nil {
		t.Error("expected error for negative wavelength")
	}
}

func TestPlanckUnderflowsToZero(t *testing.T) {
	// At extremely low temperature the exponential term overflows and
	// the radiance underflows to zero. Not an error.
	b, err := Planck(1e-8, 1e-4)
	if err != nil {
		t.Fatalf("planck failed: %v", err)
	}
	if b != 0 {
		t.Errorf("expected underflow to zero, got %g", b)
	}
}

func TestIntensityConstantField(t *testing.T) {
	dim := 4
	wavelength := 1e-4 // cm
	pixelSize := 1.0

	temps := field.New(dim)
	for i := range temps.Data {
		temps.Data[i] = 300.0
	}

	img, err := Intensity(temps, wavelength, pixelSize)
	if err != nil {
		t.Fatalf("intensity failed: %v", err)
	}

	b, err := Planck(300.0, wavelength)
	if err != nil {
		t.Fatalf("planck failed: %v", err)
	}
	want := b * pixelSize * pixelSize * BBToJy

	for i, v := range img.Data {
		if math.Abs(v-want) > 1e-12*want {
			t.Fatalf("pixel %d: expected %g, got %g", i, want, v)
		}
	}
}

func TestIntensityPixelAreaScaling(t *testing.T) {
	temps := field.New(2)
	for i := range temps.Data {
		temps.Data[i] = 500.0
	}

	small, err := Intensity(temps, 1e-4, 1.0)
	if err != nil {
		t.Fatalf("intensity failed: %v", err)
	}
	large, err := Intensity(temps, 1e-4, 2.0)
	if err != nil {
		t.Fatalf("intensity failed: %v", err)
	}

	// Doubling the pixel size quadruples the per-pixel flux.
	ratio := large.Data[0] / small.Data[0]
	if math.Abs(ratio-4.0) > 1e-12 {
		t.Errorf("expected flux ratio 4, got %g", ratio)
	}
}

func TestIntensityRejectsInvalidInputs(t *testing.T) {
	temps := field.New(2)
	for i := range temps.Data {
		temps.Data[i] = 300.0
	}

	if _, err := Intensity(temps, 0, 1.0); err == nil {
		t.Error("expected error for zero wavelength")
	}
	if _, err := Intensity(temps, 1e-4, 0); err == nil {
		t.Error("expected error for zero pixel size")
	}

	temps.Set(1, 1, 0)
	if _, err := Intensity(temps, 1e-4, 1.0); err == nil {
		t.Error("expected error for non-positive temperature pixel")
	}
}

func TestIntensityPropagatesSingularTemperature(t *testing.T) {
	// +Inf from a singular profile is allowed; the Planck term then
	// evaluates to +Inf as well and propagates per IEEE semantics.
	temps := field.New(2)
	for i := range temps.Data {
		temps.Data[i] = 300.0
	}
	temps.Set(0, 0, math.Inf(1))

	img, err := Intensity(temps, 1e-4, 1.0)
	if err != nil {
		t.Fatalf("intensity failed: %v", err)
	}
	if !math.IsInf(img.At(0, 0), 1) {
		t.Errorf("expected +Inf at singular pixel, got %g", img.At(0, 0))
	}
}
