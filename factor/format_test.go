package factor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "2*3*5*41", FormatFactors([]int64{2, 3, 5, 41}))
	assert.Equal(t, "1", FormatFactors([]int64{1}))
	assert.Equal(t, "2^3 * 11 * 149", FormatExponents(map[int64]int64{149: 1, 2: 3, 11: 1}))
	assert.Equal(t, "1", FormatExponents(map[int64]int64{}))
	assert.EqualValues(t, []int64{2, 11, 149}, SortedPrimes(map[int64]int64{149: 1, 2: 3, 11: 1}))
}

func TestFormatFactorization(t *testing.T) {
	assert.Equal(t, "2^3 * 11 * 149", FormatFactorization(map[int64]int64{2: 3, 11: 1, 149: 1}, 1))
	assert.Equal(t, "1", FormatFactorization(map[int64]int64{}, 1))
	assert.Equal(t, "2 * 3 * (101 unfactored)", FormatFactorization(map[int64]int64{2: 1, 3: 1}, 101))
	assert.Equal(t, "(9223372036854775783 unfactored)", FormatFactorization(map[int64]int64{}, 9223372036854775783))
}
