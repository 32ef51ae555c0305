package mathutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/walletkit/pkg/mathutil"
)

func TestDiv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		x, y      string
		precision int32
		expected  string
	}{
		{"100000000", "100000000", 18, "1"},
		{"150000000", "100000000", 18, "1.5"},
		{"1", "3", 18, "0.333333333333333333"},
		{"2", "3", 4, "0.6666"},
		{"-2", "3", 2, "-0.66"},
		{"1", "1000000000000000000000", 18, "0"},
		{"123456789", "1", 0, "123456789"},
	}

	for _, tt := range tests {
		res, err := mathutil.Div(tt.x, tt.y, tt.precision)
		require.NoError(t, err)
		require.Equal(t, tt.expected, res, "%s / %s", tt.x, tt.y)
	}
}

func TestFailingDiv(t *testing.T) {
	t.Parallel()

	_, err := mathutil.Div("1", "0", 18)
	require.ErrorIs(t, err, mathutil.ErrDivisionByZero)

	_, err = mathutil.Div("abc", "1", 18)
	require.ErrorIs(t, err, mathutil.ErrInvalidNumber)
}

func TestMulAddSub(t *testing.T) {
	t.Parallel()

	res, err := mathutil.Mul("1.23456789", "100000000")
	require.NoError(t, err)
	require.Equal(t, "123456789", res)

	res, err = mathutil.Add("0.1", "0.2")
	require.NoError(t, err)
	require.Equal(t, "0.3", res)

	res, err = mathutil.Sub("1", "1.000000000000000001")
	require.NoError(t, err)
	require.Equal(t, "-0.000000000000000001", res)

	_, err = mathutil.Mul("1", "")
	require.Error(t, err)
}

func TestCompare(t *testing.T) {
	t.Parallel()

	ok, err := mathutil.Lt("0.99", "1")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = mathutil.Gte("1.0", "1")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = mathutil.Eq("1.50", "1.5")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestToFixed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		x        string
		min, max int32
		expected string
	}{
		{"0.123456", 2, 2, "0.12"},
		{"0.129", 2, 2, "0.12"},
		{"0.1", 3, 5, "0.100"},
		{"0.0000001", 2, 4, "0.00"},
		{"12", 0, 2, "12"},
		{"1.23456", 0, 3, "1.234"},
	}

	for _, tt := range tests {
		res, err := mathutil.ToFixed(tt.x, tt.min, tt.max)
		require.NoError(t, err)
		require.Equal(t, tt.expected, res)
	}
}
