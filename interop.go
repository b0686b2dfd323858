package balance

import (
	"fmt"

	govalues "github.com/govalues/decimal"
)

// NewFromCompact converts a compact decimal, as used by the [govalues]
// ecosystem, to a [Decimal].
// The conversion is always exact, as the compact representation is a strict
// subset of the arbitrary-precision one.
//
// [govalues]: https://pkg.go.dev/github.com/govalues/decimal
func NewFromCompact(e govalues.Decimal) Decimal {
	return MustParse(e.String())
}

// Compact converts the decimal to the compact representation used by the
// [govalues] ecosystem.
// This method is useful at boundaries with systems that keep monetary
// values in the fixed-size decimal type.
//
// Compact returns an error if the coefficient has more than
// [govalues.MaxPrec] digits or the scale exceeds [govalues.MaxScale].
//
// [govalues]: https://pkg.go.dev/github.com/govalues/decimal
func (d Decimal) Compact() (govalues.Decimal, error) {
	e, err := govalues.Parse(d.String())
	if err != nil {
		return govalues.Decimal{}, fmt.Errorf("converting %v: %w", d, err)
	}
	return e, nil
}
