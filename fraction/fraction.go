package fraction

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libprime/factor"
	"github.com/spf13/cast"
)

// DecimalToFraction reduces a decimal string to lowest terms: both terms of the scaled
// fraction are split into primes and the primes they share are cancelled.
//
// On a parse failure the zero Fraction, the (0, 0) pair, is returned alongside the error.
func DecimalToFraction(input string, primes []int64, opts ...Option) (f Fraction, err error) {
	o := optionNew(opts...)
	logger := o.logger.WithFields(l.StringField(l.ClsKey, "fractionReducer"), l.StringField("input", input))

	numerator, denominator, err := Parse(input)
	if err != nil {
		if errors.Is(err, ErrTooLong) {
			logger.WithFields(l.ErrorField(err)).Error("number has too many digits")
		} else {
			logger.WithFields(l.ErrorField(err)).Error("parse decimal failed")
		}

		return
	}

	if o.trace {
		logger.WithFields(l.StringField("fraction", fmt.Sprintf("%d/%d", numerator, denominator))).
			Debug("remove decimal point by multiplication")
	}

	factorsNumerator := factor.DivideWithPrimes(numerator, primes)
	factorsDenominator := factor.DivideWithPrimes(denominator, primes)

	if o.trace {
		logger.WithFields(
			l.StringField("numerator", factor.FormatFactors(factorsNumerator)),
			l.StringField("denominator", factor.FormatFactors(factorsDenominator)),
		).Debug("calculate prime numbers for numerator and denominator")
	}

	num, den := cancel(factorsNumerator, factorsDenominator, o, logger)

	f = Fraction{
		Numerator:   factor.CalculateProduct(num),
		Denominator: factor.CalculateProduct(den),
	}

	if o.trace {
		if d, e := f.Decimal(); e == nil {
			logger.WithFields(l.StringField("fraction", f.String()), l.StringField("value", d.String())).
				Debug("recalculated numerator and denominator")
		}
	}

	return
}

// Cancel removes the primes two ascending factor lists have in common, counting repeats:
// {2,2,3} and {2,3,3} share {2,3}, leaving {2} and {3}. A side left with nothing becomes {1}.
func Cancel(numerator, denominator []int64) (leftNumerator, leftDenominator []int64) {
	return cancel(numerator, denominator, optionNew(), l.NewNopLoggerWrapper())
}

func cancel(numerator, denominator []int64, o *Options, logger l.Wrapper) (leftNumerator, leftDenominator []int64) {
	common := intersection(numerator, denominator)

	if o.trace {
		logger.WithFields(l.StringField("intersection", joinFactors(common))).
			Debug("remove common numbers, use an intersection for this")
	}

	if len(common) == 0 {
		return numerator, denominator
	}

	leftNumerator = difference(numerator, common)
	if len(leftNumerator) == 0 {
		leftNumerator = []int64{1}
	}

	leftDenominator = difference(denominator, common)
	if len(leftDenominator) == 0 {
		leftDenominator = []int64{1}
	}

	if o.trace {
		logger.WithFields(
			l.StringField("numerator", joinFactors(leftNumerator)),
			l.StringField("denominator", joinFactors(leftDenominator)),
		).Debug("new numerator and denominator")
	}

	return
}

func intersection(a, b []int64) (r []int64) {
	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			r = append(r, a[i])
			i++
			j++
		}
	}

	return
}

// difference keeps the elements of a not matched one-for-one by an element of b.
func difference(a, b []int64) (r []int64) {
	j := 0

	for _, v := range a {
		for j < len(b) && b[j] < v {
			j++
		}

		if j < len(b) && b[j] == v {
			j++

			continue
		}

		r = append(r, v)
	}

	return
}

func joinFactors(vs []int64) string {
	if len(vs) == 0 {
		return "-"
	}

	ss := make([]string, 0, len(vs))
	for _, v := range vs {
		ss = append(ss, cast.ToString(v))
	}

	return strings.Join(ss, " ")
}

// Render formats a reduced fraction for the console, adding the mixed form when the
// fraction is improper: "2.25 = 9/4 ==> 2 1/4".
func Render(input string, f Fraction) string {
	if f.IsImproper() {
		q, r := f.Mixed()

		return fmt.Sprintf("%s = %d/%d ==> %d %d/%d", input, f.Numerator, f.Denominator, q, r, f.Denominator)
	}

	return fmt.Sprintf("%s = %d/%d", input, f.Numerator, f.Denominator)
}
