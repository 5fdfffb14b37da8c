package fraction

import (
	"os"
	"testing"

	"github.com/sgostarter/libprime/primes"
)

var utPrimes []int64

func TestMain(m *testing.M) {
	utPrimes = primes.DefaultCache.Get(primes.Config{}, nil).Primes()

	os.Exit(m.Run())
}
