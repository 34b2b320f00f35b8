package filters

import (
	"github.com/katalvlaran/vlvector/vlvector"
)

const (
	// KernelSide is the row and column count of every convolution kernel.
	KernelSide = 3

	// KernelSize is the number of cells in a kernel.
	KernelSize = KernelSide * KernelSide
)

var (
	blurWeights = [KernelSize]float64{
		0.0625, 0.125, 0.0625,
		0.125, 0.25, 0.125,
		0.0625, 0.125, 0.0625,
	}
	sobelXWeights = [KernelSize]float64{
		0.125, 0, -0.125,
		0.25, 0, -0.25,
		0.125, 0, -0.125,
	}
	sobelYWeights = [KernelSize]float64{
		0.125, 0.25, 0.125,
		0, 0, 0,
		-0.125, -0.25, -0.125,
	}
)

// NewKernel returns a 3×3 kernel holding weights in row-major order.
// Returns ErrKernelShape unless exactly 9 weights are given.
func NewKernel(weights ...float64) (*vlvector.Vector[float64], error) {
	if len(weights) != KernelSize {
		return nil, ErrKernelShape
	}

	return vlvector.FromSlice(weights, vlvector.WithInlineCapacity(KernelSize))
}

// BlurKernel returns the Gaussian kernel used by Blur.
func BlurKernel() *vlvector.Vector[float64] { return fixedKernel(blurWeights) }

// SobelXKernel returns the horizontal gradient kernel used by Sobel.
func SobelXKernel() *vlvector.Vector[float64] { return fixedKernel(sobelXWeights) }

// SobelYKernel returns the vertical gradient kernel used by Sobel.
func SobelYKernel() *vlvector.Vector[float64] { return fixedKernel(sobelYWeights) }

// fixedKernel builds an inline kernel; it cannot fail without a Budget.
func fixedKernel(w [KernelSize]float64) *vlvector.Vector[float64] {
	k := vlvector.New[float64](vlvector.WithInlineCapacity(KernelSize))
	for _, x := range w {
		_ = k.PushBack(x)
	}

	return k
}
