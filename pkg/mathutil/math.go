package mathutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DividePrecision is the max number of fractional digits returned by Div when
// converting between denominations.
const DividePrecision = 18

var (
	// ErrInvalidNumber is returned when a string can't be parsed as a decimal.
	ErrInvalidNumber = errors.New("invalid decimal number")
	// ErrDivisionByZero ...
	ErrDivisionByZero = errors.New("division by zero")
)

// Parse converts the given string into a decimal.Decimal.
func Parse(x string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(x))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidNumber, x)
	}
	return d, nil
}

func parsePair(x, y string) (X, Y decimal.Decimal, err error) {
	if X, err = Parse(x); err != nil {
		return
	}
	Y, err = Parse(y)
	return
}

// Add takes two decimal strings and sum them x + y.
func Add(x, y string) (string, error) {
	X, Y, err := parsePair(x, y)
	if err != nil {
		return "", err
	}
	return X.Add(Y).String(), nil
}

// Sub takes two decimal strings and subtract them x - y.
func Sub(x, y string) (string, error) {
	X, Y, err := parsePair(x, y)
	if err != nil {
		return "", err
	}
	return X.Sub(Y).String(), nil
}

// Mul takes two decimal strings and multiply them x * y. The result is exact.
func Mul(x, y string) (string, error) {
	X, Y, err := parsePair(x, y)
	if err != nil {
		return "", err
	}
	return X.Mul(Y).String(), nil
}

// Div takes two decimal strings and divides them x / y. The quotient is
// truncated (never rounded) to the given number of fractional digits.
func Div(x, y string, precision int32) (string, error) {
	X, Y, err := parsePair(x, y)
	if err != nil {
		return "", err
	}
	z, err := DivDecimal(X, Y, precision)
	if err != nil {
		return "", err
	}
	return z.String(), nil
}

// DivDecimal divides X / Y truncating the result to precision digits.
func DivDecimal(X, Y decimal.Decimal, precision int32) (decimal.Decimal, error) {
	if Y.IsZero() {
		return decimal.Decimal{}, ErrDivisionByZero
	}
	if precision < 0 {
		precision = 0
	}
	q, _ := X.QuoRem(Y, precision)
	return q, nil
}

// Cmp compares x and y and returns -1, 0 or +1.
func Cmp(x, y string) (int, error) {
	X, Y, err := parsePair(x, y)
	if err != nil {
		return 0, err
	}
	return X.Cmp(Y), nil
}

// Lt returns whether x < y.
func Lt(x, y string) (bool, error) {
	c, err := Cmp(x, y)
	return c < 0, err
}

// Gte returns whether x >= y.
func Gte(x, y string) (bool, error) {
	c, err := Cmp(x, y)
	return c >= 0, err
}

// Eq returns whether x == y, regardless of their string representation
// (ie. "1.50" == "1.5").
func Eq(x, y string) (bool, error) {
	c, err := Cmp(x, y)
	return c == 0, err
}

// Abs returns the absolute value of x.
func Abs(x string) (string, error) {
	X, err := Parse(x)
	if err != nil {
		return "", err
	}
	return X.Abs().String(), nil
}

// ToFixed truncates x to at most maxDecimals fractional digits and pads it
// with zeros up to minDecimals.
func ToFixed(x string, minDecimals, maxDecimals int32) (string, error) {
	X, err := Parse(x)
	if err != nil {
		return "", err
	}
	if maxDecimals < minDecimals {
		maxDecimals = minDecimals
	}
	t := X.Truncate(maxDecimals)
	if FractionalDigits(t) < minDecimals {
		return t.StringFixed(minDecimals), nil
	}
	return t.String(), nil
}

// FractionalDigits returns the number of significant fractional digits of d.
func FractionalDigits(d decimal.Decimal) int32 {
	s := d.String()
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}
	return int32(len(s) - i - 1)
}
