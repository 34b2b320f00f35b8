package filters_test

import (
	"fmt"

	"github.com/katalvlaran/vlvector/filters"
	"github.com/katalvlaran/vlvector/matrix"
)

func ExampleQuantization() {
	img, _ := matrix.NewFromData(1, 4, []float64{0, 100, 150, 255})
	q, _ := filters.Quantization(img, 2)
	fmt.Println(q)
	// Output: 63.000000 63.000000 191.000000 191.000000
}
