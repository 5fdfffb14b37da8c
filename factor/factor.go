package factor

// DivideWithPrimes splits n (n >= 1) into its prime factors in ascending order, dividing by
// every prime of the table in turn. 1 factors to [1].
//
// Only primes from the table are tried, so a part of n made of primes at or above the table
// bound is silently dropped. Use Decompose to see it.
func DivideWithPrimes(n int64, primes []int64) []int64 {
	factors, _ := Decompose(n, primes)

	return factors
}

// Decompose is DivideWithPrimes that also returns what is left of n after trial division;
// the residual is 1 when the factorization is complete.
func Decompose(n int64, primes []int64) (factors []int64, residual int64) {
	if n == 1 {
		return []int64{1}, 1
	}

	if n < 1 {
		return nil, n
	}

	for _, p := range primes {
		if n == 1 {
			break
		}

		for n%p == 0 && n != 1 {
			factors = append(factors, p)
			n /= p
		}
	}

	residual = n

	return
}

func CalculateProduct(factors []int64) int64 {
	n := int64(1)
	for _, f := range factors {
		n *= f
	}

	return n
}

// Exponents groups a factor list into prime -> exponent. The [1] factorization of 1 yields an
// empty map.
func Exponents(factors []int64) map[int64]int64 {
	m := make(map[int64]int64)

	for _, f := range factors {
		if f <= 1 {
			continue
		}

		m[f]++
	}

	return m
}

// Residual is what remains of n once the primes of m, raised to their exponents, are divided out.
func Residual(n int64, m map[int64]int64) int64 {
	for p, e := range m {
		for ; e > 0; e-- {
			n /= p
		}
	}

	return n
}
