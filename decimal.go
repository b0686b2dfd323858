package balance

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrMalformedDecimal is returned when a string is not a valid decimal literal.
	ErrMalformedDecimal = errors.New("malformed decimal")

	errNegativeScale = errors.New("negative scale")
)

// Decimal type represents an exact base-10 monetary value as an
// arbitrary-precision coefficient and a non-negative scale, so that
// value = coefficient / 10^scale.
// Its zero value corresponds to "0".
// Decimal is immutable and safe for concurrent use by multiple goroutines.
//
// Addition and subtraction are always exact: operands are aligned to the
// larger scale by lossless widening, never by rounding.
// Precision is discarded only by [Decimal.Round] and [Decimal.Rescale],
// which take an explicit [RoundingPolicy].
type Decimal struct {
	value decimal.Decimal
}

// New returns a decimal equal to coef / 10^scale.
//
// New returns an error if the scale is negative.
func New(coef int64, scale int) (Decimal, error) {
	if scale < 0 {
		return Decimal{}, fmt.Errorf("converting coefficient: %w", errNegativeScale)
	}
	return Decimal{value: decimal.New(coef, -int32(scale))}, nil
}

// MustNew is like [New] but panics if the decimal cannot be constructed.
// It simplifies safe initialization of global variables holding decimals.
func MustNew(coef int64, scale int) Decimal {
	d, err := New(coef, scale)
	if err != nil {
		panic(fmt.Sprintf("New(%v, %v) failed: %v", coef, scale, err))
	}
	return d
}

// Parse converts a canonical decimal string to a decimal.
// The input must match the grammar:
//
//	[-] digits [. digits]
//
// Exponents, leading '+', and bare '.' forms are rejected.
// The scale of the result is the number of digits after the decimal point.
//
// Parse returns [ErrMalformedDecimal] if the string does not match the grammar.
func Parse(text string) (Decimal, error) {
	if !isCanonical(text) {
		return Decimal{}, fmt.Errorf("parsing %q: %w", text, ErrMalformedDecimal)
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return Decimal{}, fmt.Errorf("parsing %q: %w", text, ErrMalformedDecimal)
	}
	return Decimal{value: d}, nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(text string) Decimal {
	d, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", text, err))
	}
	return d
}

// isCanonical reports whether text matches [-]? digit+ ('.' digit+)?.
func isCanonical(text string) bool {
	i := 0
	if i < len(text) && text[i] == '-' {
		i++
	}
	digits := 0
	for ; i < len(text) && text[i] >= '0' && text[i] <= '9'; i++ {
		digits++
	}
	if digits == 0 {
		return false
	}
	if i == len(text) {
		return true
	}
	if text[i] != '.' {
		return false
	}
	i++
	digits = 0
	for ; i < len(text) && text[i] >= '0' && text[i] <= '9'; i++ {
		digits++
	}
	return digits > 0 && i == len(text)
}

// Scale returns the number of digits after the decimal point.
func (d Decimal) Scale() int {
	if exp := d.value.Exponent(); exp < 0 {
		return int(-exp)
	}
	return 0
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d = 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	return d.value.Sign()
}

// IsZero returns:
//
//	true  if d = 0
//	false otherwise
func (d Decimal) IsZero() bool {
	return d.value.IsZero()
}

// IsNeg returns:
//
//	true  if d < 0
//	false otherwise
func (d Decimal) IsNeg() bool {
	return d.value.IsNegative()
}

// IsPos returns:
//
//	true  if d > 0
//	false otherwise
func (d Decimal) IsPos() bool {
	return d.value.IsPositive()
}

// Neg returns a decimal with the opposite sign.
func (d Decimal) Neg() Decimal {
	return Decimal{value: d.value.Neg()}
}

// Abs returns the absolute value of the decimal.
func (d Decimal) Abs() Decimal {
	return Decimal{value: d.value.Abs()}
}

// Add returns the exact sum of decimals d and e.
// The scale of the result is the larger of the two scales; the lower-scale
// operand is widened losslessly, so no rounding ever occurs and addition is
// exactly associative and commutative.
func (d Decimal) Add(e Decimal) Decimal {
	return Decimal{value: d.value.Add(e.value)}
}

// Sub returns the exact difference between decimals d and e.
// Like [Decimal.Add], it aligns scales by lossless widening and never rounds.
func (d Decimal) Sub(e Decimal) Decimal {
	return Decimal{value: d.value.Sub(e.value)}
}

// Cmp numerically compares decimals and returns:
//
//	-1 if d < e
//	 0 if d = e
//	+1 if d > e
//
// Scales are aligned before comparison, so "0.5" and "0.50" compare equal.
func (d Decimal) Cmp(e Decimal) int {
	return d.value.Cmp(e.value)
}

// Equal reports whether decimals d and e are numerically equal.
// See also method [Decimal.Cmp].
func (d Decimal) Equal(e Decimal) bool {
	return d.value.Equal(e.value)
}

// Min returns the smaller decimal.
func (d Decimal) Min(e Decimal) Decimal {
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}

// Max returns the larger decimal.
func (d Decimal) Max(e Decimal) Decimal {
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}

// Round returns a decimal rounded to the given number of digits after the
// decimal point using the given policy.
// Rounding is the only operation that discards precision.
// If scale is greater than or equal to the current scale, Round returns d
// unchanged; widening is never performed implicitly.
// See also method [Decimal.Rescale].
func (d Decimal) Round(scale int, policy RoundingPolicy) Decimal {
	if scale >= d.Scale() {
		return d
	}
	return d.Rescale(scale, policy)
}

// Rescale returns a decimal rounded or zero-padded to exactly the given
// number of digits after the decimal point.
// Padding is always exact; rounding uses the given policy.
func (d Decimal) Rescale(scale int, policy RoundingPolicy) Decimal {
	if scale < 0 {
		scale = 0
	}
	return Decimal{value: policy.apply(d.value, int32(scale))}
}

// Float64 returns the nearest binary floating-point number.
// The second return value reports whether the conversion was exact.
//
// This conversion may lose data; it exists for observability and display,
// never for arithmetic.
func (d Decimal) Float64() (f float64, exact bool) {
	return d.value.Float64()
}

// String implements the [fmt.Stringer] interface and returns the canonical
// form [-]digits.digits with exactly [Decimal.Scale] fractional digits.
// The output always round-trips: Parse(d.String()) equals d.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	return d.value.StringFixed(int32(d.Scale()))
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example | Description              |
//	| ------ | ------- | ------------------------ |
//	| %s, %v | 5.67    | Canonical form           |
//	| %q     | "5.67"  | Quoted canonical form    |
//	| %f     | 5.7     | Fixed-point, precision   |
//
// The '-' format flag and a width can be used with all verbs.
// Precision is only supported for the %f verb and rounds half to even.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Decimal) Format(state fmt.State, verb rune) {
	var out string
	switch verb {
	case 's', 'S', 'v', 'V':
		out = d.String()
	case 'q', 'Q':
		out = strconv.Quote(d.String())
	case 'f', 'F':
		if p, ok := state.Precision(); ok {
			out = d.Rescale(p, RoundHalfEven).String()
		} else {
			out = d.String()
		}
	default:
		fmt.Fprintf(state, "%%!%c(balance.Decimal=%s)", verb, d.String())
		return
	}
	if w, ok := state.Width(); ok && w > len(out) {
		pad := strings.Repeat(" ", w-len(out))
		if state.Flag('-') {
			out += pad
		} else {
			out = pad + out
		}
	}
	//nolint:errcheck
	io.WriteString(state, out)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Decimal{}, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns the canonical form.
// See also method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// The decimal is expected as a JSON string in canonical form.
// See also constructor [Parse].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (d *Decimal) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*d, err = Parse(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Decimal{}, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a quoted canonical form.
// See also method [Decimal.String].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (d Decimal) MarshalJSON() ([]byte, error) {
	s := d.String()
	text := make([]byte, 0, len(s)+2)
	text = append(text, '"')
	text = append(text, s...)
	text = append(text, '"')
	return text, nil
}
