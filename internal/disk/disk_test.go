package disk_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mscholz/diskmap/internal/disk"
)

// powerLawModel is a small truncated disk rendered on a 32×32 grid
// with unit pixels, so coordinates run from −16 to 15 and the pixel
// (16, 16+k) sits at (x=k, y=0).
func powerLawModel() *disk.Model {
	return &disk.Model{
		Elong:      1.0,
		Rin:        2.0,
		Rout:       10.0,
		Law:        disk.PowerLaw,
		InnerTemp:  1500.0,
		Q:          0.5,
		InnerSigma: 1e-3,
		P:          0.5,
		Opacity:    10.0,
	}
}

const (
	dim        = 32
	pixelSize  = 1.0
	wavelength = 1e-4 // cm
)

var _ = Describe("Model", func() {
	Describe("Validate", func() {
		It("accepts the reference power-law model", func() {
			Expect(powerLawModel().Validate()).To(Succeed())
		})

		It("rejects a non-positive inner radius", func() {
			m := powerLawModel()
			m.Rin = 0
			Expect(m.Validate()).NotTo(Succeed())
		})

		It("rejects an outer radius inside the inner radius", func() {
			m := powerLawModel()
			m.Rout = 1.0
			Expect(m.Validate()).NotTo(Succeed())
		})

		It("rejects zero elongation in elliptic mode", func() {
			m := powerLawModel()
			m.Elliptic = true
			m.Elong = 0
			Expect(m.Validate()).NotTo(Succeed())
		})

		It("rejects a constant-law model without stellar parameters", func() {
			m := powerLawModel()
			m.Law = disk.Constant
			Expect(m.Validate()).NotTo(Succeed())
		})
	})

	Describe("Image", func() {
		It("renders a truncated annulus", func() {
			img, err := powerLawModel().Image(dim, pixelSize, wavelength)
			Expect(err).NotTo(HaveOccurred())
			Expect(img.Dim).To(Equal(dim))

			// Origin pixel is inside Rin.
			Expect(img.At(16, 16)).To(BeZero())
			// Corner is outside Rout.
			Expect(img.At(0, 0)).To(BeZero())
			// (x=4, y=0) lies inside the annulus.
			Expect(img.At(16, 20)).To(BeNumerically(">", 0))
			Expect(img.IsFinite()).To(BeTrue())
		})

		It("is brighter when optically thick", func() {
			thin, err := powerLawModel().Image(dim, pixelSize, wavelength)
			Expect(err).NotTo(HaveOccurred())

			m := powerLawModel()
			m.OpticallyThick = true
			thick, err := m.Image(dim, pixelSize, wavelength)
			Expect(err).NotTo(HaveOccurred())

			// Emissivity 1 − exp(−Σκ) < 1 everywhere.
			Expect(thick.At(16, 20)).To(BeNumerically(">", thin.At(16, 20)))
		})

		It("is point-symmetric without asymmetry", func() {
			img, err := powerLawModel().Image(dim, pixelSize, wavelength)
			Expect(err).NotTo(HaveOccurred())

			// (x=4, y=0) and (x=−4, y=0) share a radius.
			Expect(img.At(16, 20)).To(BeNumerically("~", img.At(16, 12), 1e-12))
		})

		It("breaks symmetry with azimuthal modulation", func() {
			m := powerLawModel()
			m.Asymmetric = true
			m.A = 0.5
			m.Phi = 0
			img, err := m.Image(dim, pixelSize, wavelength)
			Expect(err).NotTo(HaveOccurred())

			sym, err := powerLawModel().Image(dim, pixelSize, wavelength)
			Expect(err).NotTo(HaveOccurred())

			// Along +x the factor is 1 + a·cos(0) = 1.5, along −x it
			// is 1 + a·cos(π) = 0.5.
			Expect(img.At(16, 20)).To(BeNumerically("~", 1.5*sym.At(16, 20), 1e-9*sym.At(16, 20)))
			Expect(img.At(16, 12)).To(BeNumerically("~", 0.5*sym.At(16, 12), 1e-9*sym.At(16, 12)))
		})

		It("treats pa=0, elong=1 elliptic mode as identity", func() {
			plain, err := powerLawModel().Image(dim, pixelSize, wavelength)
			Expect(err).NotTo(HaveOccurred())

			m := powerLawModel()
			m.Elliptic = true
			m.PA = 0
			m.Elong = 1
			proj, err := m.Image(dim, pixelSize, wavelength)
			Expect(err).NotTo(HaveOccurred())

			Expect(proj.Data).To(Equal(plain.Data))
		})

		It("compresses the disk along y when elongated", func() {
			m := powerLawModel()
			m.Elliptic = true
			m.PA = 0
			m.Elong = 2.0
			img, err := m.Image(dim, pixelSize, wavelength)
			Expect(err).NotTo(HaveOccurred())

			// (x=0, y=12) has effective radius 6 under elong=2, moving
			// it inside the annulus even though |y| > Rout.
			Expect(img.At(28, 16)).To(BeNumerically(">", 0))
		})

		It("renders the constant-temperature law", func() {
			m := powerLawModel()
			m.Law = disk.Constant
			m.StellarRadius = 0.05
			m.StellarTemperature = 7800
			img, err := m.Image(dim, pixelSize, wavelength)
			Expect(err).NotTo(HaveOccurred())

			Expect(img.At(16, 20)).To(BeNumerically(">", 0))
			Expect(img.IsFinite()).To(BeTrue())
		})

		It("supports an unbounded outer radius", func() {
			m := powerLawModel()
			m.Rout = 0
			img, err := m.Image(dim, pixelSize, wavelength)
			Expect(err).NotTo(HaveOccurred())

			// The corner (r ≈ 22.6) is no longer truncated.
			Expect(img.At(0, 0)).To(BeNumerically(">", 0))
		})

		It("rejects invalid render parameters", func() {
			m := powerLawModel()
			_, err := m.Image(0, pixelSize, wavelength)
			Expect(err).To(HaveOccurred())
			_, err = m.Image(dim, 0, wavelength)
			Expect(err).To(HaveOccurred())
			_, err = m.Image(dim, pixelSize, 0)
			Expect(err).To(HaveOccurred())
		})

		It("decreases outward under a power-law temperature", func() {
			img, err := powerLawModel().Image(dim, pixelSize, wavelength)
			Expect(err).NotTo(HaveOccurred())

			// r=4 vs r=8 along +x, both inside the annulus.
			inner := img.At(16, 20)
			outer := img.At(16, 24)
			Expect(math.IsInf(inner, 0)).To(BeFalse())
			Expect(inner).To(BeNumerically(">", outer))
		})
	})
})
