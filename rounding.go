package balance

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// RoundingPolicy selects the strategy applied at explicit rounding points,
// such as [Decimal.Round] and the commit point of an [Account] operation.
// Arithmetic itself never rounds.
// The zero value is [RoundHalfEven].
type RoundingPolicy uint8

const (
	// RoundHalfEven rounds half to the nearest even digit (banker's rounding).
	RoundHalfEven RoundingPolicy = iota
	// RoundHalfUp rounds half away from zero.
	RoundHalfUp
	// RoundDown rounds toward zero (truncation).
	RoundDown
	// RoundUp rounds away from zero.
	RoundUp
)

var errInvalidPolicy = errors.New("invalid rounding policy")

// ParseRoundingPolicy converts a string to a rounding policy.
// The input string must be one of the following:
//
//	HALF_EVEN
//	HALF_UP
//	DOWN
//	UP
//
// ParseRoundingPolicy returns an error if the string does not represent
// a valid policy name.
func ParseRoundingPolicy(name string) (RoundingPolicy, error) {
	switch name {
	case "HALF_EVEN":
		return RoundHalfEven, nil
	case "HALF_UP":
		return RoundHalfUp, nil
	case "DOWN":
		return RoundDown, nil
	case "UP":
		return RoundUp, nil
	}
	return RoundHalfEven, fmt.Errorf("parsing %q: %w", name, errInvalidPolicy)
}

// MustParseRoundingPolicy is like [ParseRoundingPolicy] but panics if the
// string cannot be parsed.
// It simplifies safe initialization of global variables holding policies.
func MustParseRoundingPolicy(name string) RoundingPolicy {
	p, err := ParseRoundingPolicy(name)
	if err != nil {
		panic(fmt.Sprintf("ParseRoundingPolicy(%q) failed: %v", name, err))
	}
	return p
}

// String implements the [fmt.Stringer] interface and returns the policy name
// accepted by [ParseRoundingPolicy].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (p RoundingPolicy) String() string {
	switch p {
	case RoundHalfEven:
		return "HALF_EVEN"
	case RoundHalfUp:
		return "HALF_UP"
	case RoundDown:
		return "DOWN"
	case RoundUp:
		return "UP"
	}
	return "HALF_EVEN"
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseRoundingPolicy].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (p *RoundingPolicy) UnmarshalText(text []byte) error {
	var err error
	*p, err = ParseRoundingPolicy(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", RoundHalfEven, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [RoundingPolicy.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (p RoundingPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// apply rescales d to exactly the given scale.
// Widening is exact for every policy; narrowing dispatches on the policy.
func (p RoundingPolicy) apply(d decimal.Decimal, scale int32) decimal.Decimal {
	if d.Exponent() >= -scale {
		// Adding a zero at the target exponent forces exact zero-padding.
		return d.Add(decimal.New(0, -scale))
	}
	switch p {
	case RoundHalfUp:
		return d.Round(scale)
	case RoundDown:
		return d.RoundDown(scale)
	case RoundUp:
		return d.RoundUp(scale)
	default:
		return d.RoundBank(scale)
	}
}
