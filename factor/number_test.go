package factor

import (
	"errors"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libprime/primes"
	"github.com/stretchr/testify/assert"
)

func TestFactorizeNumber(t *testing.T) {
	m, err := FactorizeNumber("13112", utPrimes)
	assert.Nil(t, err)
	assert.EqualValues(t, map[int64]int64{2: 3, 11: 1, 149: 1}, m)

	m, err = FactorizeNumber("1", utPrimes, TraceOption(true), LoggerOption(l.NewConsoleLoggerWrapper()))
	assert.Nil(t, err)
	assert.Empty(t, m)

	m, err = FactorizeNumber(" 1230 ", utPrimes)
	assert.Nil(t, err)
	assert.EqualValues(t, map[int64]int64{2: 1, 3: 1, 5: 1, 41: 1}, m)
}

func TestFactorizeNumberErrors(t *testing.T) {
	for _, input := range []string{"", "abc", "12abc", "-5", "+5", "1.5", "99999999999999999999"} {
		_, err := FactorizeNumber(input, utPrimes)
		assert.True(t, errors.Is(err, ErrInvalidInteger), input)
		assert.True(t, errors.Is(err, commerr.ErrInvalidArgument), input)
	}

	_, err := FactorizeNumber("9223372036854775807", utPrimes)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	assert.True(t, errors.Is(err, commerr.ErrOutOfRange))

	_, err = FactorizeNumber("0", utPrimes)
	assert.True(t, errors.Is(err, ErrZeroValue))
}

func TestFactorizeNumberStrict(t *testing.T) {
	table := primes.Generate(primes.Config{Bound: 100}, nil)

	m, err := FactorizeNumber("606", table.Primes())
	assert.Nil(t, err)
	assert.EqualValues(t, map[int64]int64{2: 1, 3: 1}, m)

	m, err = FactorizeNumber("606", table.Primes(), StrictOption(true))
	assert.True(t, errors.Is(err, ErrIncompleteFactorization))
	assert.EqualValues(t, map[int64]int64{2: 1, 3: 1}, m)

	m, err = FactorizeNumber("4611686018427387904", utPrimes, StrictOption(true))
	assert.Nil(t, err)
	assert.EqualValues(t, map[int64]int64{2: 62}, m)
}

func TestParseInteger(t *testing.T) {
	n, err := ParseInteger("9223372036854775806")
	assert.Nil(t, err)
	assert.EqualValues(t, int64(9223372036854775806), n)

	n, err = ParseInteger("007")
	assert.Nil(t, err)
	assert.EqualValues(t, 7, n)
}
