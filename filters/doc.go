// Package filters implements grayscale image filters over matrix.Dense
// images whose cells hold color values in [0, 255].
//
// Filters:
//
//   - Quantization: collapse 256 colors into a smaller number of bands.
//   - Blur: 3×3 Gaussian smoothing.
//   - Sobel: edge detection from the sum of horizontal and vertical kernels.
//   - Convolve: the shared 3×3 convolution with zero padding.
//
// Every filter returns a new image and leaves its input untouched.
// Kernels are 9-element vlvector.Vector[float64] values with an inline
// capacity of 9, so building one never allocates a heap buffer.
package filters
