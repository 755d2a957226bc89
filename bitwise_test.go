package euclid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitwiseSmall(t *testing.T) {
	pl := NewPlane()
	tests := []struct {
		name          string
		a, b          int64
		and, or, xor  int64
	}{
		{"disjoint bits", 5, 2, 5 & 2, 5 | 2, 5 ^ 2},
		{"overlap", 6, 3, 6 & 3, 6 | 3, 6 ^ 3},
		{"equal", 12, 12, 12, 12, 0},
		{"zero left", 0, 9, 0, 9, 9},
		{"zero right", 9, 0, 0, 9, 9},
		{"all ones nibble", 15, 9, 15 & 9, 15 | 9, 15 ^ 9},
		{"larger", 170, 85, 170 & 85, 170 | 85, 170 ^ 85},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := nums(t, pl, tt.a, tt.b)

			got, err := v[0].And(v[1])
			require.NoError(t, err)
			checkInt(t, got, tt.and)

			got, err = v[0].Or(v[1])
			require.NoError(t, err)
			checkInt(t, got, tt.or)

			got, err = v[0].Xor(v[1])
			require.NoError(t, err)
			checkInt(t, got, tt.xor)
		})
	}
}

func TestBitwiseNegative(t *testing.T) {
	pl := NewPlane()
	tests := []struct {
		a, b int64
	}{
		{-1, 5},
		{5, -1},
		{-4, -6},
		{-7, 3},
		{-8, -8},
		{-5, 0},
		// Magnitudes at an exact power of two stress the
		// two's-complement width.
		{-4, 4},
		{-8, 7},
	}
	for _, tt := range tests {
		v := nums(t, pl, tt.a, tt.b)

		got, err := v[0].And(v[1])
		require.NoError(t, err)
		checkInt(t, got, tt.a&tt.b)

		got, err = v[0].Or(v[1])
		require.NoError(t, err)
		checkInt(t, got, tt.a|tt.b)

		got, err = v[0].Xor(v[1])
		require.NoError(t, err)
		checkInt(t, got, tt.a^tt.b)
	}
}

func TestBitwiseIdentities(t *testing.T) {
	pl := NewPlane()
	pairs := [][2]int64{{13, 7}, {21, 10}, {-9, 14}, {6, 6}}
	for _, pair := range pairs {
		v := nums(t, pl, pair[0], pair[1])

		and, err := v[0].And(v[1])
		require.NoError(t, err)
		or, err := v[0].Or(v[1])
		require.NoError(t, err)
		xor, err := v[0].Xor(v[1])
		require.NoError(t, err)

		// a + b == (a AND b) + (a OR b)
		sum, err := v[0].Add(v[1])
		require.NoError(t, err)
		combined, err := and.Add(or)
		require.NoError(t, err)
		require.True(t, sum.Equal(combined), "a+b != and+or for %v", pair)

		// a XOR b == (a OR b) − (a AND b)
		diff, err := or.Sub(and)
		require.NoError(t, err)
		require.True(t, xor.Equal(diff), "xor != or-and for %v", pair)
	}
}
