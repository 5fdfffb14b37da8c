package factor

import (
	"sort"
	"strings"

	"github.com/spf13/cast"
)

// FormatFactors renders a factor list the way it is multiplied out: 2*3*5*41.
func FormatFactors(factors []int64) string {
	ss := make([]string, 0, len(factors))
	for _, f := range factors {
		ss = append(ss, cast.ToString(f))
	}

	return strings.Join(ss, "*")
}

// FormatExponents renders an exponent map in ascending prime order: 2^3 * 11 * 149.
func FormatExponents(m map[int64]int64) string {
	if len(m) == 0 {
		return "1"
	}

	ps := SortedPrimes(m)
	ss := make([]string, 0, len(ps))

	for _, p := range ps {
		if e := m[p]; e != 1 {
			ss = append(ss, cast.ToString(p)+"^"+cast.ToString(e))
		} else {
			ss = append(ss, cast.ToString(p))
		}
	}

	return strings.Join(ss, " * ")
}

func SortedPrimes(m map[int64]int64) []int64 {
	ps := make([]int64, 0, len(m))
	for p := range m {
		ps = append(ps, p)
	}

	sort.Slice(ps, func(i, j int) bool {
		return ps[i] < ps[j]
	})

	return ps
}

// FormatFactorization is FormatExponents plus the part the table could not split, marked
// as such: 2 * 3 * (101 unfactored). A complete factorization renders as FormatExponents.
func FormatFactorization(m map[int64]int64, residual int64) string {
	if residual == 1 {
		return FormatExponents(m)
	}

	unfactored := "(" + cast.ToString(residual) + " unfactored)"

	if len(m) == 0 {
		return unfactored
	}

	return FormatExponents(m) + " * " + unfactored
}
