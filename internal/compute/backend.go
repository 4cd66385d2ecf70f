package compute

// Backend evaluates elementwise maps over flat float64 buffers.
// Implementations must produce results identical to a serial loop.
type Backend interface {
	Name() string
	Available() bool
	// Map sets dst[i] = fn(src[i]) for every index.
	Map(dst, src []float64, fn func(float64) float64)
	// Map2 sets dst[i] = fn(a[i], b[i]) for every index. dst may alias
	// a or b; each index is read before it is written.
	Map2(dst, a, b []float64, fn func(x, y float64) float64)
	Cleanup()
}

var activeBackend Backend

func init() {
	activeBackend = NewCPUBackend()
}

func SetBackend(b Backend) {
	if activeBackend != nil {
		activeBackend.Cleanup()
	}
	activeBackend = b
}

func GetBackend() Backend {
	return activeBackend
}
