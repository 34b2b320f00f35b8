package filters

import "errors"

var (
	// ErrLevels indicates a quantization level count outside [1, 256].
	ErrLevels = errors.New("filters: levels must be in [1,256]")

	// ErrKernelShape indicates a convolution kernel that does not hold 3×3 values.
	ErrKernelShape = errors.New("filters: kernel must hold 9 values")

	// ErrNilImage indicates a nil image argument.
	ErrNilImage = errors.New("filters: nil image")
)
