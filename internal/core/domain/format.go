package domain

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// CutOffText truncates s to n runes adding an ellipsis, if s is at least n
// runes long.
func CutOffText(s string, n int) string {
	runes := []rune(s)
	if len(runes) >= n {
		return string(runes[:n]) + "..."
	}
	return s
}

// UnspacedLowercase strips spaces from the input and lower-cases it.
func UnspacedLowercase(input string) string {
	return strings.ToLower(strings.ReplaceAll(input, " ", ""))
}

// AlphabeticalSort is a comparator returning -1, 0 or 1.
func AlphabeticalSort(a, b string) int {
	return strings.Compare(a, b)
}

// FeeDisplayed formats a fee amount: numbers with more than one decimal are
// printed as they are, others with 2 decimals.
func FeeDisplayed(number float64) string {
	if dec := math.Mod(number, 10); dec != 0 {
		if len(strconv.FormatFloat(dec, 'f', -1, 64)) > 2 {
			return strconv.FormatFloat(number, 'f', -1, 64)
		}
	}
	return strconv.FormatFloat(number, 'f', 2, 64)
}

// WithoutItem returns a copy of items without any occurrence of target.
func WithoutItem[T comparable](items []T, target T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item != target {
			out = append(out, item)
		}
	}
	return out
}

// WithItem returns items with item appended, unless already present.
func WithItem[T comparable](items []T, item T) []T {
	for _, v := range items {
		if v == item {
			return items
		}
	}
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	return append(out, item)
}

// ExchangeData is what's needed to render an exchange rate between a primary
// and a secondary currency.
type ExchangeData struct {
	PrimaryDisplayAmount   string
	PrimaryDisplayName     string
	SecondaryDisplayAmount string
	SecondaryDisplaySymbol string
	SecondaryCurrencyCode  CurrencyCode
}

// IsComplete returns whether all fields are set.
func (e ExchangeData) IsComplete() bool {
	return e.PrimaryDisplayAmount != "" &&
		e.PrimaryDisplayName != "" &&
		e.SecondaryDisplayAmount != "" &&
		e.SecondaryDisplaySymbol != "" &&
		e.SecondaryCurrencyCode != ""
}
