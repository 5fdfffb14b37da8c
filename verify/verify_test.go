package verify

import (
	"errors"
	"testing"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libprime/primes"
	"github.com/stretchr/testify/assert"
)

func TestVerify(t *testing.T) {
	ps := primes.DefaultCache.Get(primes.Config{}, nil).Primes()

	assert.True(t, Verify(ps, l.NewConsoleLoggerWrapper()))

	for _, check := range Checks() {
		assert.Nil(t, check.Run(ps), check.Name)
	}
}

func TestVerifyEachCheckFailsIndependently(t *testing.T) {
	// 1231 and 149 are missing below 100, so only the checks relying on them fail.
	ps := primes.Generate(primes.Config{Bound: 100}, nil).Primes()

	assert.Nil(t, Factorize1230(ps))
	assert.Nil(t, ReduceDecimal012(ps))
	assert.True(t, errors.Is(Factorize1231(ps), ErrCheckFailed))
	assert.True(t, errors.Is(Exponents13112(ps), ErrCheckFailed))

	results := Run(ps, l.NewConsoleLoggerWrapper())
	assert.Len(t, results, 4)

	failed := make(map[string]bool)
	for _, r := range results {
		failed[r.Name] = !r.OK()
	}

	assert.Equal(t, map[string]bool{
		"factorize1230":     false,
		"factorize1231":     true,
		"reduceDecimal0.12": false,
		"exponents13112":    true,
	}, failed)

	assert.False(t, Verify(ps, nil))
}

func TestVerifyEmptyTable(t *testing.T) {
	assert.False(t, Verify(nil, nil))
}
