package primes

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/sgostarter/i/l"
	"github.com/spf13/cast"
)

// Generate builds the table of all primes below cfg.Bound with the Sieve of Eratosthenes.
//
// Every product i*j (i, j >= 2) that fits below the bound is struck out of the candidate
// list 1, 2, ..., Bound-1; whatever survives, except 1, is prime.
func Generate(cfg Config, logger l.Wrapper) *Table {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	cfg = cfg.normalize()
	start := time.Now()

	candidates := make([]int64, cfg.Bound-1)
	for idx := range candidates {
		candidates[idx] = int64(idx) + 1
	}

	size := int64(len(candidates))

	for i := int64(2); i < size; i++ {
		for j := int64(2); j < size; j++ {
			if i*j >= cfg.Bound {
				break
			}

			candidates[i*j-1] = 0
		}
	}

	ps := make([]int64, 0, approxCount(cfg.Bound))

	for _, n := range candidates {
		if n > 1 {
			ps = append(ps, n)
		}
	}

	t := &Table{
		bound:  cfg.Bound,
		primes: ps,
	}

	if cfg.Trace {
		logger.WithFields(
			l.StringField(l.ClsKey, "sieve"),
			l.IntField("count", t.Len()),
			l.StringField("took", time.Since(start).String()),
			l.StringField("lastTen", joinInts(t.Last(10), " ")),
		).Debug("calculated prime numbers using 'Sieve of Eratosthenes'")
	}

	return t
}

// approxCount is the Rosser-Schoenfeld upper bound of pi(n), so the result slice is allocated once.
func approxCount(bound int64) int {
	if bound < 17 {
		return int(bound)
	}

	return int(1.25506*float64(bound)/math.Log(float64(bound))) + 1
}

type Table struct {
	bound  int64
	primes []int64
}

func (t *Table) Bound() int64 {
	return t.bound
}

// Primes returns the shared backing slice. Callers must not modify it.
func (t *Table) Primes() []int64 {
	return t.primes
}

func (t *Table) Len() int {
	return len(t.primes)
}

func (t *Table) Contains(n int64) bool {
	idx := sort.Search(len(t.primes), func(i int) bool {
		return t.primes[i] >= n
	})

	return idx < len(t.primes) && t.primes[idx] == n
}

// Last returns up to n of the largest primes, largest first.
func (t *Table) Last(n int) []int64 {
	if n > len(t.primes) {
		n = len(t.primes)
	}

	if n <= 0 {
		return nil
	}

	r := make([]int64, 0, n)
	for idx := len(t.primes) - 1; idx >= len(t.primes)-n; idx-- {
		r = append(r, t.primes[idx])
	}

	return r
}

func joinInts(vs []int64, sep string) string {
	ss := make([]string, 0, len(vs))
	for _, v := range vs {
		ss = append(ss, cast.ToString(v))
	}

	return strings.Join(ss, sep)
}
