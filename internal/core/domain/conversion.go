package domain

import (
	"math"
	"strconv"
	"strings"

	"github.com/tdex-network/walletkit/pkg/mathutil"
)

// Converter turns an amount expressed in one denomination into another.
type Converter func(amount string) (string, error)

// ConvertNativeToDenomination returns a Converter that divides native amounts
// (ie. satoshis) by the given ratio, keeping at most DividePrecision decimals.
func ConvertNativeToDenomination(nativeToTargetRatio string) Converter {
	return func(nativeAmount string) (string, error) {
		return mathutil.Div(nativeAmount, nativeToTargetRatio, DividePrecision)
	}
}

// ConvertNativeToDisplay converts native amounts into amounts ready for
// display.
func ConvertNativeToDisplay(nativeToDisplayRatio string) Converter {
	return ConvertNativeToDenomination(nativeToDisplayRatio)
}

// ConvertNativeToExchange converts native amounts into the exchange
// denomination, the one used by exchange rates.
func ConvertNativeToExchange(nativeToExchangeRatio string) Converter {
	return ConvertNativeToDenomination(nativeToExchangeRatio)
}

// ConvertDisplayToNative returns a Converter that multiplies display amounts
// by the given ratio. An empty amount is returned as is.
func ConvertDisplayToNative(nativeToDisplayRatio string) Converter {
	return func(displayAmount string) (string, error) {
		if displayAmount == "" {
			return "", nil
		}
		return mathutil.Mul(displayAmount, nativeToDisplayRatio)
	}
}

// IsValidInput reports whether input can be typed into an amount field: any
// string representing a finite number, or a lone "." for a number still
// being typed. Blank strings count as zero.
func IsValidInput(input string) bool {
	if input == "." {
		return true
	}
	s := strings.TrimSpace(input)
	if s == "" {
		return true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return false
	}
	// ParseFloat also accepts hex floats and underscores
	_, err = mathutil.Parse(s)
	return err == nil
}

// TruncateDecimals cuts input to at most precision decimals without rounding.
// An empty input is treated as "0" unless allowBlank is set.
func TruncateDecimals(input string, precision int, allowBlank bool) string {
	if input == "" && !allowBlank {
		input = "0"
	}
	if !strings.Contains(input, ".") {
		return input
	}

	parts := strings.Split(input, ".")
	integers, decimals := parts[0], parts[1]
	if precision <= 0 {
		return integers
	}
	if len(decimals) > precision {
		decimals = decimals[:precision]
	}
	return integers + "." + decimals
}

// DecimalOrZero leaves amounts >= 1 untouched, while smaller ones are
// truncated to decimalPlaces. If the truncation is zero, "0" is returned,
// otherwise trailing zeros are removed.
func DecimalOrZero(input string, decimalPlaces int) (string, error) {
	gteOne, err := mathutil.Gte(input, "1")
	if err != nil {
		return "", err
	}
	if gteOne {
		return input, nil
	}

	truncated, err := mathutil.ToFixed(
		input, int32(decimalPlaces), int32(decimalPlaces),
	)
	if err != nil {
		return "", err
	}
	isZero, _ := mathutil.Eq(truncated, "0")
	if isZero {
		return "0", nil
	}
	if strings.Contains(truncated, ".") {
		truncated = strings.TrimRight(truncated, "0")
		truncated = strings.TrimSuffix(truncated, ".")
	}
	return truncated, nil
}
