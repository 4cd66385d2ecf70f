package radiative

// CGS physical constants. Fixed at initialization and read-only; no
// write path exists.
const (
	C      = 2.99792458e+10 // speed of light [cm/s]
	C2     = 8.98755179e+20 // speed of light squared [cm²/s²]
	H      = 6.62607015e-27 // Planck constant [erg s]
	Kb     = 1.380649e-16   // Boltzmann constant [erg/K]
	BBToJy = 1.0e+23        // spectral radiance [erg s⁻¹ cm⁻² Hz⁻¹] to Jansky
)
