package kernel

import "math"

// Taps is the length of the seam-smoothing kernel.
const Taps = 5

// Gaussian5 generates a symmetric 5-tap Gaussian kernel with the given
// sigma, normalized so all values sum to 1.0.
//
// For sigma <= 0, returns the identity kernel.
func Gaussian5(sigma float64) [Taps]float64 {
	var kernel [Taps]float64
	half := Taps / 2
	if sigma <= 0 {
		kernel[half] = 1
		return kernel
	}

	// G(x) = exp(-x²/(2σ²)); the constant factor cancels on normalization.
	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	for i := range kernel {
		x := float64(i - half)
		kernel[i] = math.Exp(-(x * x) / twoSigmaSq)
		sum += kernel[i]
	}

	inv := 1 / sum
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}
