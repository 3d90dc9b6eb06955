package utils_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"typekit/utils"
)

func ExampleIsInRange() {
	fmt.Println(utils.IsInRange(0, 64, 64))
	fmt.Println(utils.IsInRange(200, 199, 404))
	// Output:
	// true
	// false
}

func TestFits(t *testing.T) {
	t.Parallel()

	assert.True(t, utils.Fits[int8](127))
	assert.False(t, utils.Fits[int8](128))
	assert.True(t, utils.Fits[int8](-128))
	assert.False(t, utils.Fits[uint8](-1))
	assert.True(t, utils.Fits[uint8](255))
	assert.False(t, utils.Fits[uint64](-1))
	assert.True(t, utils.Fits[uint64](math.MaxInt64))
	assert.True(t, utils.Fits[int64](math.MinInt64))
}
