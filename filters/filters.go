package filters

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vlvector/matrix"
	"github.com/katalvlaran/vlvector/vlvector"
)

const (
	// MaxColor is the number of representable color values.
	MaxColor = 256

	minColor = 0
)

// Quantization splits the 256 colors into levels bands of width 256/levels
// and maps every cell to the floor-average of its band. Cells past the last
// full band fall into the last band.
// Returns ErrNilImage or ErrLevels.
func Quantization(img *matrix.Dense, levels int) (*matrix.Dense, error) {
	if img == nil {
		return nil, fmt.Errorf("Quantization: %w", ErrNilImage)
	}
	if levels < 1 || levels > MaxColor {
		return nil, fmt.Errorf("Quantization: %w: got %d", ErrLevels, levels)
	}

	width := MaxColor / levels
	averages := make([]float64, levels)
	for i, lo := 0, 0; i < levels; i, lo = i+1, lo+width {
		averages[i] = float64((lo + lo + width - 1) / 2)
	}

	out := img.Clone().(*matrix.Dense)
	for k := 0; k < out.Len(); k++ {
		x, _ := out.AtFlat(k)
		band := int(math.Floor(x / float64(width)))
		band = max(0, min(band, levels-1))
		_ = out.SetFlat(k, averages[band])
	}

	return out, nil
}

// Blur smooths img with the 3×3 Gaussian kernel.
func Blur(img *matrix.Dense) (*matrix.Dense, error) {
	out, err := Convolve(img, BlurKernel())
	if err != nil {
		return nil, fmt.Errorf("Blur: %w", err)
	}

	return out, nil
}

// Sobel highlights edges: it adds the horizontal and vertical gradient
// convolutions and clamps the sum to [0, 255].
func Sobel(img *matrix.Dense) (*matrix.Dense, error) {
	gx, err := Convolve(img, SobelXKernel())
	if err != nil {
		return nil, fmt.Errorf("Sobel: %w", err)
	}
	gy, err := Convolve(img, SobelYKernel())
	if err != nil {
		return nil, fmt.Errorf("Sobel: %w", err)
	}
	if err = matrix.AddInPlace(gx, gy); err != nil {
		return nil, fmt.Errorf("Sobel: %w", err)
	}

	for k := 0; k < gx.Len(); k++ {
		x, _ := gx.AtFlat(k)
		_ = gx.SetFlat(k, math.Max(minColor, math.Min(x, MaxColor-1)))
	}

	return gx, nil
}

// Convolve applies a 3×3 kernel centred on every cell of img. Neighbours
// outside the image count as zero, and each result is rounded half to even.
// Returns ErrNilImage or ErrKernelShape.
// Complexity: O(r*c).
func Convolve(img *matrix.Dense, kernel *vlvector.Vector[float64]) (*matrix.Dense, error) {
	if img == nil {
		return nil, fmt.Errorf("Convolve: %w", ErrNilImage)
	}
	if kernel.Size() != KernelSize {
		return nil, fmt.Errorf("Convolve: %w: got %d", ErrKernelShape, kernel.Size())
	}

	out, err := matrix.NewDense(img.Rows(), img.Cols())
	if err != nil {
		return nil, fmt.Errorf("Convolve: %w", err)
	}
	w := kernel.Data()
	for i := 0; i < img.Rows(); i++ {
		for j := 0; j < img.Cols(); j++ {
			_ = out.Set(i, j, convolveCell(img, w, i, j))
		}
	}

	return out, nil
}

// convolveCell returns the rounded weighted sum around (row, col).
func convolveCell(img *matrix.Dense, w []float64, row, col int) float64 {
	var sum float64
	for di := 0; di < KernelSide; di++ {
		for dj := 0; dj < KernelSide; dj++ {
			x, err := img.At(row+di-1, col+dj-1)
			if err != nil {
				continue // zero padding
			}
			sum += w[di*KernelSide+dj] * x
		}
	}

	return math.RoundToEven(sum)
}
