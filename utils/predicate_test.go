package utils_test

import (
	"fmt"

	"camera2-shim/utils"
)

func ExampleIsInRange() {
	fmt.Println(utils.IsInRange(0, 5, 10), utils.IsInRange(0, -1, 10), utils.IsInRange(0.0, 0.0, 1.0))
	// Output: true false true
}

func ExampleClamp() {
	fmt.Println(utils.Clamp(0, 5, 10), utils.Clamp(0, -3, 10), utils.Clamp(0, 42, 10), utils.Clamp(8.0, 2875.5, 3263.0))
	// Output: 5 0 10 2875.5
}
