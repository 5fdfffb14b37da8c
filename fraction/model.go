package fraction

import (
	"fmt"

	"github.com/govalues/decimal"
)

type Fraction struct {
	Numerator   int64 `yaml:"numerator" json:"numerator"`
	Denominator int64 `yaml:"denominator" json:"denominator"`
}

// IsZero reports the (0, 0) pair DecimalToFraction hands back when it fails.
func (f Fraction) IsZero() bool {
	return f.Numerator == 0 && f.Denominator == 0
}

func (f Fraction) IsImproper() bool {
	return f.Numerator > f.Denominator
}

// Mixed splits f into a whole part and what is left over it: 9/4 is 2 and 1/4.
func (f Fraction) Mixed() (quotient, remainder int64) {
	if f.Denominator == 0 {
		return
	}

	quotient = f.Numerator / f.Denominator
	remainder = f.Numerator - quotient*f.Denominator

	return
}

func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Numerator, f.Denominator)
}

func (f Fraction) Decimal() (d decimal.Decimal, err error) {
	num, err := decimal.New(f.Numerator, 0)
	if err != nil {
		return
	}

	den, err := decimal.New(f.Denominator, 0)
	if err != nil {
		return
	}

	d, err = num.Quo(den)
	if err != nil {
		return
	}

	d = d.Trim(0)

	return
}
